package api

import (
	"context"
	"io"

	"github.com/MrEthical07/goEdu/transport"
)

// File is an upload source. Content is streamed, never buffered whole; readers
// exposing Len or Seek are sent with a Content-Length, others chunked.
type File struct {
	Name        string
	ContentType string
	Content     io.Reader
	// OnProgress, when set, receives (sent, total) body bytes during the upload.
	OnProgress transport.ProgressFunc
}

func (f File) validate(op string, c *caller) error {
	if f.Content == nil {
		return c.reject(op, &transport.ValidationError{Op: op, Fields: []transport.FieldError{{Field: "file", Tag: "required"}}})
	}
	return c.require(op, str("fileName", f.Name))
}

func (f File) form(field string) *transport.Multipart {
	m := transport.NewMultipart()
	m.OnProgress = f.OnProgress
	return m.AddFileWithType(field, f.Name, f.ContentType, f.Content)
}

// Users covers the signed-in user's account and public profiles.
type Users struct {
	c *caller
}

func (u *Users) Profile(ctx context.Context) (User, error) {
	var out User
	err := u.c.get(ctx, "/user/profile", nil, &out)
	return out, err
}

// UserProfile returns the public profile of another user.
func (u *Users) UserProfile(ctx context.Context, userID int64) (Profile, error) {
	var out Profile
	if err := u.c.require("users.user_profile", id("userId", userID)); err != nil {
		return out, err
	}
	err := u.c.get(ctx, path("users", userID, "profile"), nil, &out)
	return out, err
}

func (u *Users) UpdateProfile(ctx context.Context, p Profile) (User, error) {
	var out User
	err := u.c.put(ctx, "/user/profile", nil, p, &out)
	return out, err
}

func (u *Users) ChangePassword(ctx context.Context, pc PasswordChange) error {
	return u.c.post(ctx, "/user/change-password", pc, nil)
}

// UploadAvatar uploads an avatar image and returns the stored location.
func (u *Users) UploadAvatar(ctx context.Context, f File) (string, error) {
	var out string
	if err := f.validate("users.upload_avatar", u.c); err != nil {
		return out, err
	}
	err := u.c.upload(ctx, "/user/avatar", f.form("avatar"), &out)
	return out, err
}
