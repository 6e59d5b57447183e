package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/edu-consultancy/internal/errs"
	"github.com/deppfellow/edu-consultancy/internal/lib/filestore"
)

// fileField is the multipart field carrying the image.
const fileField = "file"

// pathID reads the numeric :id path parameter.
func pathID(c echo.Context, id *int64) error {
	if err := echo.PathParamsBinder(c).MustInt64("id", id).BindError(); err != nil {
		return errs.NewBadRequestError("id must be a number", true, nil,
			[]errs.FieldError{{Field: "id", Error: "must be a number"}}, nil)
	}
	return nil
}

// parseForm reads the multipart body once, before any part is looked up.
// A body cut off by the upload limit answers 413 like an oversized file.
func parseForm(c echo.Context, maxSize int64) error {
	if _, err := c.MultipartForm(); err != nil {
		var limitErr *echo.HTTPError
		if errors.As(err, &limitErr) && limitErr.Code == http.StatusRequestEntityTooLarge {
			return tooLarge(maxSize)
		}
		return errs.NewBadRequestError("Request must be multipart/form-data", true, nil, nil, nil)
	}
	return nil
}

// jsonPart decodes the first non-empty form value among fields into dst.
// Clients send the DTO as a JSON string next to the file.
func jsonPart(c echo.Context, dst any, fields ...string) error {
	var raw string
	for _, field := range fields {
		if raw = c.FormValue(field); raw != "" {
			break
		}
	}
	if raw == "" {
		return errs.NewBadRequestError(fmt.Sprintf("%s part is required", fields[0]), true, nil,
			[]errs.FieldError{{Field: fields[0], Error: "is required"}}, nil)
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return errs.NewBadRequestError(fmt.Sprintf("%s must be valid JSON", fields[0]), true, nil,
			[]errs.FieldError{{Field: fields[0], Error: "must be valid JSON"}}, nil)
	}
	return nil
}

// readUpload loads the image part into memory. It returns nil, nil when the
// client sent no file or an empty one; the service decides whether that is
// allowed. Oversized and non-image files are rejected here.
func readUpload(c echo.Context, maxSize int64) (*filestore.Upload, error) {
	header, err := c.FormFile(fileField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, errs.NewBadRequestError("Request must be multipart/form-data", true, nil, nil, nil)
	}
	if header.Size == 0 {
		return nil, nil
	}
	if maxSize > 0 && header.Size > maxSize {
		return nil, tooLarge(maxSize)
	}

	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer f.Close()

	reader := io.Reader(f)
	if maxSize > 0 {
		reader = io.LimitReader(f, maxSize+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if maxSize > 0 && int64(len(data)) > maxSize {
		return nil, tooLarge(maxSize)
	}

	contentType, err := filestore.DetectImage(data)
	if err != nil {
		return nil, errs.InvalidImage(err.Error())
	}

	return &filestore.Upload{
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        int64(len(data)),
		Content:     bytes.NewReader(data),
	}, nil
}

func tooLarge(maxSize int64) *errs.HTTPError {
	return errs.NewPayloadTooLargeError(fmt.Sprintf("File must not exceed %d bytes", maxSize))
}
