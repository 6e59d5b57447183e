package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Local stores files below a root directory.
type Local struct {
	root string
}

// NewLocal creates root if needed.
func NewLocal(root string) (*Local, error) {
	if root == "" {
		return nil, errors.New("root directory is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create root directory: %w", err)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root directory: %w", err)
	}
	return &Local{root: abs}, nil
}

// resolve maps a store path to a location on disk and refuses anything
// that would escape the root.
func (l *Local) resolve(p string) (string, error) {
	full := filepath.Join(l.root, filepath.FromSlash(p))
	if full != l.root && !strings.HasPrefix(full, l.root+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, p)
	}
	return full, nil
}

func (l *Local) Exists(_ context.Context, p string) (bool, error) {
	full, err := l.resolve(p)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(full)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", p, err)
	}
	return !info.IsDir(), nil
}

func (l *Local) UploadFile(_ context.Context, folder string, upload Upload) (string, error) {
	name, err := CleanName(upload.Filename)
	if err != nil {
		return "", err
	}

	full, err := l.resolve(Join(folder, name))
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	if err := writeAtomic(full, upload.Content); err != nil {
		return "", err
	}
	return name, nil
}

// writeAtomic copies r into a temporary file next to full and renames it
// into place, so a failed copy never leaves a partial file under full.
func writeAtomic(full string, r io.Reader) error {
	tmp, err := os.CreateTemp(filepath.Dir(full), "."+filepath.Base(full)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	tmpName := tmp.Name()

	_, err = io.Copy(tmp, r)
	if closeErr := tmp.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to close file: %w", closeErr)
	} else if err != nil {
		err = fmt.Errorf("failed to write file: %w", err)
	}
	if err == nil {
		if renameErr := os.Rename(tmpName, full); renameErr != nil {
			err = fmt.Errorf("failed to store file: %w", renameErr)
		}
	}
	if err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

func (l *Local) DeleteIfExists(_ context.Context, p string) (bool, error) {
	full, err := l.resolve(p)
	if err != nil {
		return false, err
	}

	err = os.Remove(full)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to delete %s: %w", p, err)
	}
	return true, nil
}

func (l *Local) Open(_ context.Context, p string) (io.ReadCloser, error) {
	full, err := l.resolve(p)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(full)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", p, err)
	}
	return file, nil
}
