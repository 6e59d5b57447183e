package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/deppfellow/edu-consultancy/internal/errs"
	"github.com/deppfellow/edu-consultancy/internal/lib/filestore"
)

// imageFolder keeps the images of one entity type inside a single folder of
// the file store.
type imageFolder struct {
	files  filestore.FileStore
	folder string
}

func fileRequired() *errs.HTTPError {
	return errs.NewBadRequestError("Validation failed", true, nil,
		[]errs.FieldError{{Field: "file", Error: "is required"}}, nil)
}

// claim returns the cleaned name of upload and fails with FileExists when
// that name is taken by a file other than owned.
func (f imageFolder) claim(ctx context.Context, upload *filestore.Upload, owned string) (string, error) {
	name, err := filestore.CleanName(upload.Filename)
	if err != nil {
		return "", errs.InvalidImage("File name is not valid")
	}
	if owned != "" && name == owned {
		return name, nil
	}

	exists, err := f.files.Exists(ctx, filestore.Join(f.folder, name))
	if err != nil {
		return "", fmt.Errorf("failed to check file %s: %w", name, err)
	}
	if exists {
		return "", errs.FileExists()
	}
	return name, nil
}

// add stores a new image and fails with FileExists, without writing, when
// the name is already taken.
func (f imageFolder) add(ctx context.Context, upload *filestore.Upload) (string, error) {
	if upload.Empty() {
		return "", fileRequired()
	}

	name, err := f.claim(ctx, upload, "")
	if err != nil {
		return "", err
	}

	stored, err := f.files.UploadFile(ctx, f.folder, *upload)
	if err != nil {
		return "", fmt.Errorf("failed to upload file %s: %w", name, err)
	}
	return stored, nil
}

// replace swaps current for upload and returns the name to record. With no
// upload the current name is kept and the store is not touched. A name held
// by another entity's file fails with FileExists before anything changes.
func (f imageFolder) replace(ctx context.Context, log *zerolog.Logger, current string, upload *filestore.Upload) (string, error) {
	if upload.Empty() {
		return current, nil
	}

	if _, err := f.claim(ctx, upload, current); err != nil {
		return "", err
	}

	f.remove(ctx, log, current)

	stored, err := f.files.UploadFile(ctx, f.folder, *upload)
	if err != nil {
		return "", fmt.Errorf("failed to upload file %s: %w", upload.Filename, err)
	}
	return stored, nil
}

// remove deletes name if present. Errors are only logged.
func (f imageFolder) remove(ctx context.Context, log *zerolog.Logger, name string) {
	if name == "" {
		return
	}
	path := filestore.Join(f.folder, name)
	if _, err := f.files.DeleteIfExists(ctx, path); err != nil {
		loggerFrom(ctx, log).Warn().Err(err).Str("path", path).Msg("failed to delete stored image")
	}
}

// open streams a stored image by its file name.
func (f imageFolder) open(ctx context.Context, fileName string) (io.ReadCloser, string, error) {
	name, err := filestore.CleanName(fileName)
	if err != nil || name != fileName {
		return nil, "", errs.FileNotFound(fileName)
	}

	rc, err := f.files.Open(ctx, filestore.Join(f.folder, name))
	if errors.Is(err, filestore.ErrNotFound) {
		return nil, "", errs.FileNotFound(name)
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file %s: %w", name, err)
	}
	return rc, filestore.ContentType(name), nil
}
