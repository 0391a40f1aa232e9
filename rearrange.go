// Package rearrange cuts an image into equally sized tiles and puts them
// back together in a caller-supplied order.
//
// An ordering maps output slots to source tiles: ordering[i] = j copies
// source tile j into output slot i. Both are row-major tile indices over the
// same grid, so [3, 2, 1, 0] on a 2x2 grid reverses the tiles in reading
// order.
package rearrange

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ErrInvalidRequest is returned when the tile size does not divide the
// image or the ordering is not usable for the resulting grid.
var ErrInvalidRequest = errors.New("The tile size or ordering are not valid for the given image")

// Image returns a new image in which the tiles of src are placed according
// to ordering. The result has the bounds and color model of src. Output
// slots that ordering does not reach are left zeroed.
func Image(src image.Image, tileSize image.Point, ordering []int) (draw.Image, error) {
	bounds := src.Bounds()
	if !Valid(bounds.Size(), tileSize, ordering) {
		return nil, ErrInvalidRequest
	}

	grid := NewGrid(bounds.Size(), tileSize)
	Logger().Debug("rearranging tiles",
		"width", bounds.Dx(), "height", bounds.Dy(),
		"columns", grid.Columns, "rows", grid.Rows,
		"tiles", len(ordering))

	// make new image (slot i receives source tile ordering[i])
	dst := NewLike(src)
	srcPix, srcOK := rawPixelsOf(src)
	dstPix, dstOK := rawPixelsOf(dst)
	raw := srcOK && dstOK && srcPix.bytesPerPixel == dstPix.bytesPerPixel
	for destIndex, sourceIndex := range ordering {
		sourceRect := grid.Rect(sourceIndex).Add(bounds.Min)
		destPoint := grid.Rect(destIndex).Min.Add(bounds.Min)
		if raw {
			copyTile(dstPix, destPoint, srcPix, sourceRect)
			continue
		}
		draw.Copy(dst, destPoint, src, sourceRect, draw.Src, nil)
	}
	return dst, nil
}

// rawPixels is a view of an image stored as packed rows of fixed-size pixels.
type rawPixels struct {
	pix           []uint8
	bytesPerPixel int
	offset        func(x, y int) int
}

// rawPixelsOf returns the raw layout of the image types NewLike reproduces.
// Copying bytes between two of them keeps CMYK values and palette indices
// exactly as they are.
func rawPixelsOf(img image.Image) (rawPixels, bool) {
	switch img := img.(type) {
	case *image.RGBA:
		return rawPixels{img.Pix, 4, img.PixOffset}, true
	case *image.NRGBA:
		return rawPixels{img.Pix, 4, img.PixOffset}, true
	case *image.RGBA64:
		return rawPixels{img.Pix, 8, img.PixOffset}, true
	case *image.NRGBA64:
		return rawPixels{img.Pix, 8, img.PixOffset}, true
	case *image.Gray:
		return rawPixels{img.Pix, 1, img.PixOffset}, true
	case *image.Gray16:
		return rawPixels{img.Pix, 2, img.PixOffset}, true
	case *image.Alpha:
		return rawPixels{img.Pix, 1, img.PixOffset}, true
	case *image.Alpha16:
		return rawPixels{img.Pix, 2, img.PixOffset}, true
	case *image.CMYK:
		return rawPixels{img.Pix, 4, img.PixOffset}, true
	case *image.Paletted:
		return rawPixels{img.Pix, 1, img.PixOffset}, true
	}
	return rawPixels{}, false
}

// copyTile copies the pixels of sr in src to dst, with sr.Min landing on dp.
func copyTile(dst rawPixels, dp image.Point, src rawPixels, sr image.Rectangle) {
	rowBytes := sr.Dx() * src.bytesPerPixel
	for y := 0; y < sr.Dy(); y++ {
		si := src.offset(sr.Min.X, sr.Min.Y+y)
		di := dst.offset(dp.X, dp.Y+y)
		copy(dst.pix[di:di+rowBytes], src.pix[si:si+rowBytes])
	}
}

// NewLike allocates a zeroed image with the bounds of src, using the same
// pixel layout where the standard library has a writable one.
func NewLike(src image.Image) draw.Image {
	b := src.Bounds()
	switch src := src.(type) {
	case *image.RGBA:
		return image.NewRGBA(b)
	case *image.NRGBA:
		return image.NewNRGBA(b)
	case *image.RGBA64:
		return image.NewRGBA64(b)
	case *image.NRGBA64:
		return image.NewNRGBA64(b)
	case *image.Gray:
		return image.NewGray(b)
	case *image.Gray16:
		return image.NewGray16(b)
	case *image.Alpha:
		return image.NewAlpha(b)
	case *image.Alpha16:
		return image.NewAlpha16(b)
	case *image.CMYK:
		return image.NewCMYK(b)
	case *image.Paletted:
		return image.NewPaletted(b, append(color.Palette(nil), src.Palette...))
	case *image.YCbCr:
		// YCbCr is chroma-subsampled and has no Set method
		return image.NewRGBA(b)
	case *image.NYCbCrA:
		return image.NewNRGBA(b)
	}
	return image.NewRGBA64(b)
}
