package filestore

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// ErrUnsupportedImage is returned for uploads that are not jpeg, png, gif or webp.
var ErrUnsupportedImage = errors.New("file must be a JPEG, PNG, GIF or WebP image")

var imageContentTypes = map[string]string{
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
}

// DetectImage decodes only the header of data and returns the image
// content type.
func DetectImage(data []byte) (string, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	contentType, ok := imageContentTypes[format]
	if !ok {
		return "", ErrUnsupportedImage
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return "", fmt.Errorf("%w: empty dimensions", ErrUnsupportedImage)
	}
	return contentType, nil
}
