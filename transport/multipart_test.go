package transport

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultipartUploadWithProgress(t *testing.T) {
	f := newCoreFixture(t, func(w http.ResponseWriter, r *http.Request) {
		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		assert.NoError(t, err)
		assert.Equal(t, "multipart/form-data", mediaType)
		assert.NotEmpty(t, params["boundary"])

		assert.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "12", r.FormValue("classId"))
		assert.Equal(t, "true", r.FormValue("isPublic"))

		file, header, err := r.FormFile("file")
		if assert.NoError(t, err) {
			defer file.Close()
			data, _ := io.ReadAll(file)
			assert.Equal(t, "notes.txt", header.Filename)
			assert.Equal(t, "hello world", string(data))
		}
		writeJSON(w, http.StatusOK, `{"code":0,"data":{"id":99}}`)
	}, Config{})

	var mu sync.Mutex
	var last, total int64
	form := NewMultipart().
		AddField("classId", "12").
		AddField("isPublic", "true").
		AddFile("file", "notes.txt", strings.NewReader("hello world"))
	form.OnProgress = func(sent, size int64) {
		mu.Lock()
		last, total = sent, size
		mu.Unlock()
	}

	var got struct{ ID int64 }
	require.NoError(t, f.core.Do(context.Background(), Request{Method: http.MethodPost, Path: "/cloud/files", Form: form}, &got))
	assert.Equal(t, int64(99), got.ID)

	mu.Lock()
	defer mu.Unlock()
	assert.Positive(t, total)
	assert.Equal(t, total, last)
}

func TestMultipartExplicitContentType(t *testing.T) {
	f := newCoreFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("avatar")
		if assert.NoError(t, err) {
			assert.Equal(t, "image/png", header.Header.Get("Content-Type"))
			assert.Equal(t, `me "1".png`, header.Filename)
		}
		writeJSON(w, http.StatusOK, `{"code":0,"data":"/avatars/1.png"}`)
	}, Config{})

	form := NewMultipart().AddFileWithType("avatar", `me "1".png`, "image/png", strings.NewReader("\x89PNG"))
	var url string
	require.NoError(t, f.core.Do(context.Background(), Request{Method: http.MethodPost, Path: "/user/avatar", Form: form}, &url))
	assert.Equal(t, "/avatars/1.png", url)
}

func TestMultipartSizedContentSetsContentLength(t *testing.T) {
	f := newCoreFixture(t, func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Equal(t, int64(len(body)), r.ContentLength)
		assert.Contains(t, string(body), "hello world")
		writeJSON(w, http.StatusOK, `{"code":0,"data":null}`)
	}, Config{})

	form := NewMultipart().
		AddField("classId", "12").
		AddFile("file", "notes.txt", strings.NewReader("hello world"))
	require.NoError(t, f.core.Do(context.Background(), Request{Method: http.MethodPost, Path: "/cloud/files", Form: form}, nil))
}

func TestMultipartStreamsUnsizedContent(t *testing.T) {
	pr, pw := io.Pipe()
	seen := make(chan struct{})
	f := newCoreFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, int64(-1), r.ContentLength)
		mr, err := r.MultipartReader()
		if !assert.NoError(t, err) {
			return
		}
		part, err := mr.NextPart()
		if !assert.NoError(t, err) {
			return
		}
		head := make([]byte, len("first"))
		_, err = io.ReadFull(part, head)
		assert.NoError(t, err)
		assert.Equal(t, "first", string(head))
		close(seen)

		rest, err := io.ReadAll(part)
		assert.NoError(t, err)
		assert.Equal(t, "second", string(rest))
		writeJSON(w, http.StatusOK, `{"code":0,"data":null}`)
	}, Config{DefaultTimeout: 10 * time.Second})

	// The tail is only written once the server has read the head, so a form
	// that buffered its files would never finish.
	go func() {
		_, _ = io.WriteString(pw, "first")
		select {
		case <-seen:
			_, _ = io.WriteString(pw, "second")
			_ = pw.Close()
		case <-time.After(5 * time.Second):
			_ = pw.CloseWithError(errors.New("upload was buffered"))
		}
	}()

	var mu sync.Mutex
	var total int64
	form := NewMultipart().AddFile("file", "lecture.mp4", pr)
	form.OnProgress = func(_, size int64) {
		mu.Lock()
		total = size
		mu.Unlock()
	}

	require.NoError(t, f.core.Do(context.Background(), Request{Method: http.MethodPost, Path: "/cloud/files", Form: form}, nil))
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, int64(-1), total)
}

func TestContentLengthOfReaders(t *testing.T) {
	r := strings.NewReader("abcdef")
	_, _ = r.Seek(2, io.SeekStart)

	n, ok := contentLength(r)
	assert.True(t, ok)
	assert.Equal(t, int64(4), n)

	n, ok = contentLength(io.MultiReader(strings.NewReader("x")))
	assert.False(t, ok)
	assert.Zero(t, n)

	n, ok = contentLength(nil)
	assert.True(t, ok)
	assert.Zero(t, n)
}
