package rearrange

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned when no encoder matches the extension of
// the output path.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// DefaultJPEGQuality is used when Codec.JPEGQuality is zero.
const DefaultJPEGQuality = 95

// Decoder reads an image from a file.
type Decoder interface {
	Decode(path string) (image.Image, error)
}

// Encoder writes an image to a file.
type Encoder interface {
	Encode(path string, img image.Image) error
}

// Codec reads PNG, JPEG, GIF, BMP, TIFF and WebP files and writes all of
// them except WebP. The output format is chosen by file extension.
type Codec struct {
	// JPEGQuality is in 1..100. Zero means DefaultJPEGQuality.
	JPEGQuality int
}

// Decode implements Decoder.
func (c Codec) Decode(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Encode implements Encoder. The file is only created once the image has
// been encoded successfully.
func (c Codec) Encode(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := c.encode(&buf, filepath.Ext(path), img); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func (c Codec) encode(buf *bytes.Buffer, ext string, img image.Image) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(buf, img)
	case ".jpg", ".jpeg":
		quality := c.JPEGQuality
		if quality == 0 {
			quality = DefaultJPEGQuality
		}
		return jpeg.Encode(buf, img, &jpeg.Options{Quality: quality})
	case ".gif":
		return gif.Encode(buf, img, nil)
	case ".bmp":
		return bmp.Encode(buf, img)
	case ".tif", ".tiff":
		return tiff.Encode(buf, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}
