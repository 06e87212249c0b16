package transport

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// ProgressFunc receives the number of body bytes sent so far and the total size.
// total is -1 when a file's length is not known before it is read.
type ProgressFunc func(sent, total int64)

type formField struct {
	name  string
	value string
}

type formFile struct {
	field       string
	name        string
	contentType string
	content     io.Reader
}

// Multipart is a multipart/form-data body. Fields and files keep insertion order.
// The content type, including the boundary, is always produced by the encoder.
type Multipart struct {
	fields     []formField
	files      []formFile
	OnProgress ProgressFunc
}

// NewMultipart returns an empty form.
func NewMultipart() *Multipart {
	return &Multipart{}
}

// AddField appends a text field.
func (m *Multipart) AddField(name, value string) *Multipart {
	m.fields = append(m.fields, formField{name: name, value: value})
	return m
}

// AddFile appends a file part read from content.
func (m *Multipart) AddFile(field, fileName string, content io.Reader) *Multipart {
	return m.AddFileWithType(field, fileName, "", content)
}

// AddFileWithType appends a file part with an explicit content type.
func (m *Multipart) AddFileWithType(field, fileName, contentType string, content io.Reader) *Multipart {
	m.files = append(m.files, formFile{field: field, name: fileName, contentType: contentType, content: content})
	return m
}

// open streams the form through a pipe so file contents are never held in
// memory. size is the exact body length when every file reports its length
// (Len or Seek), and -1 otherwise.
func (m *Multipart) open() (io.ReadCloser, string, int64, error) {
	boundary := multipart.NewWriter(io.Discard).Boundary()

	size, err := m.size(boundary)
	if err != nil {
		return nil, "", 0, err
	}

	pr, pw := io.Pipe()
	go func() {
		pw.CloseWithError(m.write(pw, boundary))
	}()
	return pr, "multipart/form-data; boundary=" + boundary, size, nil
}

func (m *Multipart) write(dst io.Writer, boundary string) error {
	w := multipart.NewWriter(dst)
	if err := w.SetBoundary(boundary); err != nil {
		return err
	}
	for _, f := range m.fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return fmt.Errorf("write field %s: %w", f.name, err)
		}
	}
	for _, f := range m.files {
		part, err := createFilePart(w, f)
		if err != nil {
			return fmt.Errorf("create part %s: %w", f.field, err)
		}
		if f.content != nil {
			if _, err := io.Copy(part, f.content); err != nil {
				return fmt.Errorf("copy part %s: %w", f.field, err)
			}
		}
	}
	return w.Close()
}

// size renders the form without file contents and adds their lengths.
func (m *Multipart) size(boundary string) (int64, error) {
	var contents int64
	for _, f := range m.files {
		n, ok := contentLength(f.content)
		if !ok {
			return -1, nil
		}
		contents += n
	}

	skeleton := &Multipart{fields: m.fields}
	for _, f := range m.files {
		f.content = nil
		skeleton.files = append(skeleton.files, f)
	}
	cw := &countingWriter{}
	if err := skeleton.write(cw, boundary); err != nil {
		return 0, err
	}
	return cw.n + contents, nil
}

// contentLength reports the unread bytes of r when that is knowable without
// reading it.
func contentLength(r io.Reader) (int64, bool) {
	switch v := r.(type) {
	case nil:
		return 0, true
	case interface{ Len() int }:
		return int64(v.Len()), true
	case io.Seeker:
		cur, err := v.Seek(0, io.SeekCurrent)
		if err != nil {
			return 0, false
		}
		end, err := v.Seek(0, io.SeekEnd)
		if err != nil {
			return 0, false
		}
		if _, err := v.Seek(cur, io.SeekStart); err != nil {
			return 0, false
		}
		return end - cur, true
	default:
		return 0, false
	}
}

type countingWriter struct {
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	c.n += int64(len(p))
	return len(p), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func createFilePart(w *multipart.Writer, f formFile) (io.Writer, error) {
	if f.contentType == "" {
		return w.CreateFormFile(f.field, f.name)
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(f.field), quoteEscaper.Replace(f.name)))
	h.Set("Content-Type", f.contentType)
	return w.CreatePart(h)
}

type progressReader struct {
	r     io.ReadCloser
	sent  int64
	total int64
	fn    ProgressFunc
}

func (p *progressReader) Close() error {
	return p.r.Close()
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.sent += int64(n)
		p.fn(p.sent, p.total)
	}
	return n, err
}
