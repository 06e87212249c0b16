package api

import "context"

// Uploads is the generic attachment endpoint used by submissions.
type Uploads struct {
	c *caller
}

// UploadFile stores f and returns its location.
func (u *Uploads) UploadFile(ctx context.Context, f File) (string, error) {
	var out string
	if err := f.validate("uploads.upload_file", u.c); err != nil {
		return out, err
	}
	err := u.c.upload(ctx, "/upload/file", f.form("file"), &out)
	return out, err
}
