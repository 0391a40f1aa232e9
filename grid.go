package rearrange

import "image"

// Grid describes how an image is cut into tiles. Tiles are numbered in
// row-major order starting at the top-left corner.
type Grid struct {
	TileWidth  int
	TileHeight int
	Columns    int
	Rows       int
}

// NewGrid returns the grid for an image of the given size. The caller must
// have checked that tileSize is positive and divides imageSize.
func NewGrid(imageSize, tileSize image.Point) Grid {
	return Grid{
		TileWidth:  tileSize.X,
		TileHeight: tileSize.Y,
		Columns:    imageSize.X / tileSize.X,
		Rows:       imageSize.Y / tileSize.Y,
	}
}

// Count returns the number of tiles in the grid.
func (g Grid) Count() int {
	return g.Columns * g.Rows
}

// Rect returns the rectangle covered by tile idx, relative to the image
// origin.
func (g Grid) Rect(idx int) image.Rectangle {
	col := idx % g.Columns
	row := idx / g.Columns
	return image.Rect(
		col*g.TileWidth,
		row*g.TileHeight,
		(col+1)*g.TileWidth,
		(row+1)*g.TileHeight,
	)
}
