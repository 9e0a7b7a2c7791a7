package api

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type stagedFile struct {
	Name string
	Path string
}

func valueURL(r *http.Request) string {
	if val := r.FormValue("url"); val != "" {
		return val
	}

	return ""
}

func valueModel(r *http.Request) string {
	if val := r.FormValue("model"); val != "" {
		return val
	}

	return ""
}

func isForm(r *http.Request) bool {
	contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	return contentType == "multipart/form-data" || contentType == "application/x-www-form-urlencoded"
}

func readText(r *http.Request) (string, error) {
	if val := r.FormValue("text"); val != "" {
		return val, nil
	}

	if isForm(r) {
		return "", errors.New("missing text")
	}

	data, err := io.ReadAll(r.Body)

	if err != nil {
		return "", err
	}

	return string(data), nil
}

// stageFile copies an uploaded file (multipart field "file" or the raw
// request body) into a temporary file. The caller removes it.
func (h *Handler) stageFile(r *http.Request) (*stagedFile, error) {
	var name string
	var body io.Reader

	if file, header, err := r.FormFile("file"); err == nil {
		defer file.Close()

		name = header.Filename
		body = file
	} else {
		if isForm(r) {
			return nil, errors.New("missing url or file")
		}

		_, params, _ := mime.ParseMediaType(r.Header.Get("Content-Disposition"))

		name = params["filename*"]
		name = strings.TrimPrefix(name, "UTF-8''")
		name = strings.TrimPrefix(name, "utf-8''")

		if name == "" {
			name = params["filename"]
		}

		body = r.Body
	}

	name = filepath.Base(filepath.Clean("/" + name))

	if name == "/" || name == "." {
		name = ""
	}

	path := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(name))

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)

	if err != nil {
		return nil, err
	}

	n, err := io.Copy(f, body)

	if cerr := f.Close(); err == nil {
		err = cerr
	}

	if err == nil && n == 0 && name == "" {
		err = errors.New("missing url or file")
	}

	if err != nil {
		os.Remove(path)
		return nil, err
	}

	return &stagedFile{
		Name: name,
		Path: path,
	}, nil
}
