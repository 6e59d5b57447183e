package filestore

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDetectImage(t *testing.T) {
	ct, err := DetectImage(pngBytes(t))
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)
}

func TestDetectImage_Rejects(t *testing.T) {
	_, err := DetectImage([]byte("definitely not an image"))
	assert.True(t, errors.Is(err, ErrUnsupportedImage))

	_, err = DetectImage(nil)
	assert.True(t, errors.Is(err, ErrUnsupportedImage))
}
