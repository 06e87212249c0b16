package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/MrEthical07/goEdu/api"
	"github.com/MrEthical07/goEdu/session"
)

func (e *env) login(c *cli.Context) error {
	client, err := e.open(c)
	if err != nil {
		return err
	}
	pwd, err := e.password(c, "Password: ")
	if err != nil {
		return err
	}

	sess, err := client.Login(c.Context, api.Credentials{Username: c.String("username"), Password: pwd})
	if err != nil {
		return errors.Wrap(err, "login")
	}
	if c.Bool("json") {
		return e.render(c, sess)
	}
	fmt.Fprintf(e.out, "signed in as %s (%s)\n", sess.Username, sess.Role)
	return nil
}

func (e *env) register(c *cli.Context) error {
	client, err := e.open(c)
	if err != nil {
		return err
	}
	pwd, err := e.password(c, "Choose a password: ")
	if err != nil {
		return err
	}

	res, err := client.Register(c.Context, api.Registration{
		Username: c.String("username"),
		Password: pwd,
		Role:     strings.ToUpper(c.String("role")),
		RealName: c.String("real-name"),
		Email:    c.String("email"),
		Phone:    c.String("phone"),
	})
	if err != nil {
		return errors.Wrap(err, "register")
	}
	if c.Bool("json") {
		return e.render(c, res)
	}
	fmt.Fprintf(e.out, "registered %s, run `educli login -u %s` to sign in\n", res.Username, res.Username)
	return nil
}

func (e *env) logout(c *cli.Context) error {
	client, err := e.open(c)
	if err != nil {
		return err
	}
	if err := client.Logout(c.Context); err != nil {
		return errors.Wrap(err, "logout")
	}
	fmt.Fprintln(e.out, "signed out")
	return nil
}

func (e *env) whoami(c *cli.Context) error {
	sess, err := e.signedIn(c)
	if err != nil {
		return err
	}
	return e.render(c, sess)
}

// signedIn returns the active session or errNotSignedIn.
func (e *env) signedIn(c *cli.Context) (session.Session, error) {
	client, err := e.open(c)
	if err != nil {
		return session.Session{}, err
	}
	sess := client.Session(c.Context)
	if !sess.Active(time.Now()) {
		return session.Session{}, errNotSignedIn
	}
	return sess, nil
}

func (e *env) classesList(c *cli.Context) error {
	client, err := e.open(c)
	if err != nil {
		return err
	}
	classes, err := client.Classes.List(c.Context, nil)
	if err != nil {
		return errors.Wrap(err, "list classes")
	}
	return e.render(c, classes)
}

func (e *env) classesJoin(c *cli.Context) error {
	code := c.Args().First()
	if code == "" {
		return errors.New("usage: educli classes join INVITE_CODE")
	}
	client, err := e.open(c)
	if err != nil {
		return err
	}
	cl, err := client.JoinClass(c.Context, code)
	if err != nil {
		return errors.Wrap(err, "join class")
	}
	return e.render(c, cl)
}

func (e *env) classesMembers(c *cli.Context) error {
	id, err := argID(c, "CLASS_ID")
	if err != nil {
		return err
	}
	client, err := e.open(c)
	if err != nil {
		return err
	}
	members, err := client.Classes.Members(c.Context, id, nil)
	if err != nil {
		return errors.Wrap(err, "list members")
	}
	return e.render(c, members)
}

func (e *env) classesCreate(c *cli.Context) error {
	client, err := e.open(c)
	if err != nil {
		return err
	}
	cl, err := client.Classes.Create(c.Context, api.ClassInput{
		Name:        c.String("name"),
		Description: c.String("description"),
	})
	if err != nil {
		return errors.Wrap(err, "create class")
	}
	return e.render(c, cl)
}

func (e *env) coursesList(c *cli.Context) error {
	client, err := e.open(c)
	if err != nil {
		return err
	}
	var courses []api.Course
	if classID := c.Int64("class"); classID != 0 {
		courses, err = client.Courses.ByClass(c.Context, classID, nil)
	} else {
		courses, err = client.Courses.List(c.Context, nil)
	}
	if err != nil {
		return errors.Wrap(err, "list courses")
	}
	return e.render(c, courses)
}

func (e *env) assignmentsList(c *cli.Context) error {
	sess, err := e.signedIn(c)
	if err != nil {
		return err
	}
	client := e.client

	var assignments []api.Assignment
	switch {
	case c.Int64("course") != 0:
		assignments, err = client.Assignments.ByCourse(c.Context, c.Int64("course"), nil)
	case sess.Role == session.RoleStudent:
		assignments, err = client.Assignments.ForStudent(c.Context, nil)
	default:
		assignments, err = client.Assignments.List(c.Context, nil)
	}
	if err != nil {
		return errors.Wrap(err, "list assignments")
	}
	return e.render(c, assignments)
}

func (e *env) submissionsGrade(c *cli.Context) error {
	id, err := argID(c, "SUBMISSION_ID")
	if err != nil {
		return err
	}
	client, err := e.open(c)
	if err != nil {
		return err
	}
	sub, err := client.Submissions.Grade(c.Context, id, api.Grade{
		Score:    c.Float64("score"),
		Feedback: c.String("feedback"),
	})
	if err != nil {
		return errors.Wrap(err, "grade submission")
	}
	return e.render(c, sub)
}

func (e *env) discussionsList(c *cli.Context) error {
	client, err := e.open(c)
	if err != nil {
		return err
	}
	var discussions []api.Discussion
	if classID := c.Int64("class"); classID != 0 {
		discussions, err = client.Discussions.ByClass(c.Context, classID, nil)
	} else {
		discussions, err = client.Discussions.List(c.Context, nil)
	}
	if err != nil {
		return errors.Wrap(err, "list discussions")
	}
	return e.render(c, discussions)
}

func (e *env) filesList(c *cli.Context) error {
	client, err := e.open(c)
	if err != nil {
		return err
	}
	var files []api.CloudFile
	if classID := c.Int64("class"); classID != 0 {
		files, err = client.Cloud.ClassFiles(c.Context, classID, nil)
	} else {
		files, err = client.Cloud.Files(c.Context, nil)
	}
	if err != nil {
		return errors.Wrap(err, "list files")
	}
	return e.render(c, files)
}

func (e *env) filesUpload(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return errors.New("usage: educli files upload --class ID PATH")
	}
	client, err := e.open(c)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open upload")
	}
	defer f.Close()

	public := !c.Bool("private")
	upload := api.FileUpload{
		ClassID: c.Int64("class"),
		File: api.File{
			Name:        filepath.Base(path),
			ContentType: mime.TypeByExtension(filepath.Ext(path)),
			Content:     f,
		},
		Description: c.String("description"),
		IsPublic:    &public,
		FolderID:    c.Int64("folder"),
	}
	if !c.Bool("json") {
		upload.File.OnProgress = func(sent, total int64) {
			if total > 0 {
				fmt.Fprintf(e.errOut, "\ruploading %s: %3d%%", upload.File.Name, sent*100/total)
			}
		}
	}

	file, err := client.Cloud.UploadFile(c.Context, upload)
	if upload.File.OnProgress != nil {
		fmt.Fprintln(e.errOut)
	}
	if err != nil {
		return errors.Wrap(err, "upload file")
	}
	return e.render(c, file)
}

func (e *env) filesDownload(c *cli.Context) error {
	id, err := argID(c, "FILE_ID")
	if err != nil {
		return err
	}
	client, err := e.open(c)
	if err != nil {
		return err
	}

	res, err := client.Cloud.DownloadFile(c.Context, id)
	if err != nil {
		return errors.Wrap(err, "download file")
	}

	dest := c.String("output")
	if dest == "" {
		dest = filepath.Base(res.FileName)
	}
	if dest == "" || dest == "." || dest == string(filepath.Separator) {
		dest = "file-" + strconv.FormatInt(id, 10)
	}
	if err := os.WriteFile(dest, res.Body, 0o644); err != nil {
		return errors.Wrap(err, "write download")
	}
	fmt.Fprintf(e.out, "saved %s (%d bytes)\n", dest, len(res.Body))
	return nil
}

func (e *env) foldersList(c *cli.Context) error {
	client, err := e.open(c)
	if err != nil {
		return err
	}
	folders, err := client.Cloud.RootFolders(c.Context, c.Int64("class"))
	if err != nil {
		return errors.Wrap(err, "list folders")
	}
	return e.render(c, folders)
}

func (e *env) foldersCreate(c *cli.Context) error {
	client, err := e.open(c)
	if err != nil {
		return err
	}
	folder, err := client.Cloud.CreateFolder(c.Context, api.FolderInput{
		ClassID:        c.Int64("class"),
		Name:           c.String("name"),
		ParentFolderID: c.Int64("parent"),
	})
	if err != nil {
		return errors.Wrap(err, "create folder")
	}
	return e.render(c, folder)
}

func (e *env) foldersTree(c *cli.Context) error {
	id, err := argID(c, "FOLDER_ID")
	if err != nil {
		return err
	}
	client, err := e.open(c)
	if err != nil {
		return err
	}
	tree, err := client.Cloud.FolderTree(c.Context, id)
	if err != nil {
		return errors.Wrap(err, "folder tree")
	}
	return e.render(c, tree)
}

func (e *env) notificationsList(c *cli.Context) error {
	client, err := e.open(c)
	if err != nil {
		return err
	}
	notes, err := client.Notifications.List(c.Context, nil)
	if err != nil {
		return errors.Wrap(err, "list notifications")
	}
	return e.render(c, notes)
}

func (e *env) notificationsRead(c *cli.Context) error {
	client, err := e.open(c)
	if err != nil {
		return err
	}
	if c.Bool("all") {
		if err := client.Notifications.MarkAllRead(c.Context); err != nil {
			return errors.Wrap(err, "mark all read")
		}
		fmt.Fprintln(e.out, "all notifications marked read")
		return nil
	}

	id, err := argID(c, "NOTIFICATION_ID")
	if err != nil {
		return err
	}
	if err := client.Notifications.MarkRead(c.Context, id); err != nil {
		return errors.Wrap(err, "mark read")
	}
	fmt.Fprintf(e.out, "notification %d marked read\n", id)
	return nil
}

func (e *env) stats(c *cli.Context) error {
	sess, err := e.signedIn(c)
	if err != nil {
		return err
	}
	client := e.client

	var stats api.Stats
	switch {
	case c.Int64("class") != 0:
		stats, err = client.Statistics.Class(c.Context, c.Int64("class"))
	case sess.Role == session.RoleTeacher:
		stats, err = client.Statistics.Teacher(c.Context)
	default:
		stats, err = client.Statistics.Student(c.Context)
	}
	if err != nil {
		return errors.Wrap(err, "statistics")
	}
	return e.render(c, stats)
}

func (e *env) aiAsk(c *cli.Context) error {
	question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if question == "" {
		return errors.New("usage: educli ai ask QUESTION...")
	}
	sess, err := e.signedIn(c)
	if err != nil {
		return err
	}

	res, err := e.client.AI.Chat(c.Context, api.ChatRequest{
		UserID:   sess.UserID,
		Question: question,
		Context:  c.String("context"),
		Model:    c.String("model"),
	})
	if err != nil {
		return errors.Wrap(err, "ask assistant")
	}
	return e.render(c, res)
}

func argID(c *cli.Context, name string) (int64, error) {
	raw := c.Args().First()
	if raw == "" {
		return 0, errors.Errorf("usage: educli %s %s", c.Command.FullName(), name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Errorf("%s must be a positive number (got %q)", name, raw)
	}
	return id, nil
}
