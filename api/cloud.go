package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/MrEthical07/goEdu/transport"
)

// Cloud covers class file storage: files and the folder hierarchy.
type Cloud struct {
	c *caller
}

// FileUpload is a file destined for a class's cloud storage.
type FileUpload struct {
	ClassID     int64
	File        File
	Description string
	// IsPublic defaults to true when nil.
	IsPublic *bool
	// FolderID places the file in a folder; zero uploads to the root.
	FolderID int64
}

// FolderInput creates a folder.
type FolderInput struct {
	ClassID        int64  `json:"classId"`
	Name           string `json:"name"`
	ParentFolderID int64  `json:"parentFolderId,omitempty"`
}

func (cl *Cloud) Files(ctx context.Context, p Params) ([]CloudFile, error) {
	var out []CloudFile
	err := cl.c.get(ctx, "/cloud/files", p.values(), &out)
	return out, err
}

func (cl *Cloud) File(ctx context.Context, fileID int64) (CloudFile, error) {
	var out CloudFile
	if err := cl.c.require("cloud.file", id("fileId", fileID)); err != nil {
		return out, err
	}
	err := cl.c.get(ctx, path("cloud", "files", fileID), nil, &out)
	return out, err
}

// UploadFile sends a multipart upload with the extended upload timeout.
func (cl *Cloud) UploadFile(ctx context.Context, up FileUpload) (CloudFile, error) {
	const op = "cloud.upload_file"
	var out CloudFile
	if err := cl.c.require(op, id("classId", up.ClassID)); err != nil {
		return out, err
	}
	if err := up.File.validate(op, cl.c); err != nil {
		return out, err
	}

	public := true
	if up.IsPublic != nil {
		public = *up.IsPublic
	}
	form := up.File.form("file").
		AddField("classId", strconv.FormatInt(up.ClassID, 10)).
		AddField("isPublic", strconv.FormatBool(public))
	if up.Description != "" {
		form.AddField("description", up.Description)
	}
	if up.FolderID != 0 {
		form.AddField("folderId", strconv.FormatInt(up.FolderID, 10))
	}

	err := cl.c.upload(ctx, "/cloud/files", form, &out)
	return out, err
}

func (cl *Cloud) UpdateFile(ctx context.Context, fileID int64, in FileUpdate) (CloudFile, error) {
	var out CloudFile
	if err := cl.c.require("cloud.update_file", id("fileId", fileID)); err != nil {
		return out, err
	}
	err := cl.c.put(ctx, path("cloud", "files", fileID), nil, in, &out)
	return out, err
}

// MoveFile moves a file into folderID, or to the root when folderID is zero.
func (cl *Cloud) MoveFile(ctx context.Context, fileID, folderID int64) (CloudFile, error) {
	var out CloudFile
	if err := cl.c.require("cloud.move_file", id("fileId", fileID)); err != nil {
		return out, err
	}
	err := cl.c.put(ctx, path("cloud", "files", fileID, "move"), query("folderId", itoa(folderID)), nil, &out)
	return out, err
}

func (cl *Cloud) DeleteFile(ctx context.Context, fileID int64) error {
	if err := cl.c.require("cloud.delete_file", id("fileId", fileID)); err != nil {
		return err
	}
	return cl.c.delete(ctx, path("cloud", "files", fileID), nil)
}

// DownloadFile returns the file body untouched.
func (cl *Cloud) DownloadFile(ctx context.Context, fileID int64) (*transport.RawResponse, error) {
	if err := cl.c.require("cloud.download_file", id("fileId", fileID)); err != nil {
		return nil, err
	}
	return cl.c.d.DoRaw(ctx, transport.Request{
		Method:  http.MethodGet,
		Path:    path("cloud", "files", fileID, "download"),
		Kind:    transport.Raw,
		Timeout: cl.c.opts.uploadTimeout,
	})
}

// DownloadURL returns the absolute download address of a file without issuing a
// request. The address carries no credential.
func (cl *Cloud) DownloadURL(fileID int64) string {
	return cl.c.d.URL(path("cloud", "files", fileID, "download"), nil)
}

func (cl *Cloud) ClassFiles(ctx context.Context, classID int64, p Params) ([]CloudFile, error) {
	var out []CloudFile
	if err := cl.c.require("cloud.class_files", id("classId", classID)); err != nil {
		return out, err
	}
	err := cl.c.get(ctx, path("class", classID, "files"), p.values(), &out)
	return out, err
}

func (cl *Cloud) FileStatistics(ctx context.Context, classID int64) (Stats, error) {
	var out Stats
	if err := cl.c.require("cloud.file_statistics", id("classId", classID)); err != nil {
		return out, err
	}
	err := cl.c.get(ctx, "/cloud/files/statistics", query("classId", itoa(classID)), &out)
	return out, err
}

func (cl *Cloud) Folders(ctx context.Context, p Params) ([]CloudFolder, error) {
	var out []CloudFolder
	err := cl.c.get(ctx, "/cloud/folders", p.values(), &out)
	return out, err
}

// CreateFolder creates a folder under ParentFolderID, or at the class root.
func (cl *Cloud) CreateFolder(ctx context.Context, in FolderInput) (CloudFolder, error) {
	var out CloudFolder
	if err := cl.c.require("cloud.create_folder", id("classId", in.ClassID)); err != nil {
		return out, err
	}
	q := query("classId", itoa(in.ClassID), "name", in.Name, "parentFolderId", itoa(in.ParentFolderID))
	err := cl.c.d.Do(ctx, transport.Request{Method: http.MethodPost, Path: "/cloud/folders", Query: q}, &out)
	return out, err
}

func (cl *Cloud) RootFolders(ctx context.Context, classID int64) ([]CloudFolder, error) {
	var out []CloudFolder
	if err := cl.c.require("cloud.root_folders", id("classId", classID)); err != nil {
		return out, err
	}
	err := cl.c.get(ctx, "/cloud/folders/root", query("classId", itoa(classID)), &out)
	return out, err
}

func (cl *Cloud) Folder(ctx context.Context, folderID int64) (CloudFolder, error) {
	var out CloudFolder
	if err := cl.c.require("cloud.folder", id("folderId", folderID)); err != nil {
		return out, err
	}
	err := cl.c.get(ctx, path("cloud", "folders", folderID), nil, &out)
	return out, err
}

func (cl *Cloud) Subfolders(ctx context.Context, folderID int64) ([]CloudFolder, error) {
	var out []CloudFolder
	if err := cl.c.require("cloud.subfolders", id("folderId", folderID)); err != nil {
		return out, err
	}
	err := cl.c.get(ctx, path("cloud", "folders", folderID, "subfolders"), nil, &out)
	return out, err
}

// FolderTree returns the folder with its nested subfolders.
func (cl *Cloud) FolderTree(ctx context.Context, folderID int64) ([]CloudFolder, error) {
	var out []CloudFolder
	if err := cl.c.require("cloud.folder_tree", id("folderId", folderID)); err != nil {
		return out, err
	}
	err := cl.c.get(ctx, path("cloud", "folders", folderID, "tree"), nil, &out)
	return out, err
}

func (cl *Cloud) RenameFolder(ctx context.Context, folderID int64, name string) (CloudFolder, error) {
	var out CloudFolder
	if err := cl.c.require("cloud.rename_folder", id("folderId", folderID), str("name", name)); err != nil {
		return out, err
	}
	err := cl.c.put(ctx, path("cloud", "folders", folderID, "rename"), query("name", name), nil, &out)
	return out, err
}

// MoveFolder re-parents a folder; zero parentID moves it to the class root.
func (cl *Cloud) MoveFolder(ctx context.Context, folderID, parentID int64) (CloudFolder, error) {
	var out CloudFolder
	if err := cl.c.require("cloud.move_folder", id("folderId", folderID)); err != nil {
		return out, err
	}
	err := cl.c.put(ctx, path("cloud", "folders", folderID, "move"), query("parentFolderId", itoa(parentID)), nil, &out)
	return out, err
}

func (cl *Cloud) DeleteFolder(ctx context.Context, folderID int64) error {
	if err := cl.c.require("cloud.delete_folder", id("folderId", folderID)); err != nil {
		return err
	}
	return cl.c.delete(ctx, path("cloud", "folders", folderID), nil)
}

func (cl *Cloud) SearchFolders(ctx context.Context, classID int64, keyword string) ([]CloudFolder, error) {
	var out []CloudFolder
	if err := cl.c.require("cloud.search_folders", id("classId", classID), str("keyword", keyword)); err != nil {
		return out, err
	}
	err := cl.c.get(ctx, "/cloud/folders/search", query("classId", itoa(classID), "keyword", keyword), &out)
	return out, err
}

func (cl *Cloud) FolderStatistics(ctx context.Context, classID int64) (Stats, error) {
	var out Stats
	if err := cl.c.require("cloud.folder_statistics", id("classId", classID)); err != nil {
		return out, err
	}
	err := cl.c.get(ctx, "/cloud/folders/statistics", query("classId", itoa(classID)), &out)
	return out, err
}
