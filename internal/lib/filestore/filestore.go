// Package filestore keeps the images uploaded for blogs and products.
//
// Two backends implement FileStore: Local writes under a root directory on
// disk, S3 writes to a bucket (AWS or any S3-compatible service). Paths are
// always slash separated and relative, "<folder>/<name>".
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"path/filepath"
	"strings"

	"github.com/deppfellow/edu-consultancy/internal/config"
)

// ErrNotFound is returned by Open when nothing is stored at the path.
var ErrNotFound = errors.New("file not found")

// ErrInvalidName is returned for filenames that cannot be stored.
var ErrInvalidName = errors.New("invalid file name")

// Upload is a file received from a client.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// Empty reports whether no file was actually supplied. Browsers send an
// empty part with a blank filename when the file input is left untouched.
func (u *Upload) Empty() bool {
	return u == nil || u.Content == nil || u.Size == 0 || strings.TrimSpace(u.Filename) == ""
}

// FileStore is the storage contract used by the blog and product services.
type FileStore interface {
	// Exists reports whether a file is stored at path.
	Exists(ctx context.Context, path string) (bool, error)
	// UploadFile stores upload under folder and returns the stored name.
	// An existing file with the same name is overwritten.
	UploadFile(ctx context.Context, folder string, upload Upload) (string, error)
	// DeleteIfExists removes the file at path. A missing file is not an error.
	DeleteIfExists(ctx context.Context, path string) (bool, error)
	// Open streams the file at path.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// CleanName reduces a client supplied filename to its final element.
// "../../etc/passwd" becomes "passwd", "C:\\photos\\a.jpg" becomes "a.jpg".
func CleanName(filename string) (string, error) {
	name := strings.ReplaceAll(strings.TrimSpace(filename), "\\", "/")
	name = path.Base(name)
	if name == "" || name == "." || name == ".." || name == "/" {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, filename)
	}
	return name, nil
}

// Join builds the store path of name inside folder.
func Join(folder, name string) string {
	return path.Join(folder, name)
}

// ContentType guesses the MIME type of a stored file from its extension.
func ContentType(name string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// New builds the backend selected by cfg.Driver.
func New(ctx context.Context, cfg *config.StorageConfig) (FileStore, error) {
	switch cfg.Driver {
	case config.StorageDriverS3:
		return NewS3(ctx, cfg.S3)
	case config.StorageDriverLocal, "":
		return NewLocal(cfg.RootDir)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
