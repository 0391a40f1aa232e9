package rearrange

import "image"

// Valid reports whether ordering can rearrange an image of the given size
// using tiles of tileSize. The tile size must divide both image dimensions,
// and every index in ordering must name a distinct tile of the grid.
//
// The length of ordering is not checked against the tile count: a shorter
// ordering without duplicates is accepted and leaves the remaining output
// slots empty.
func Valid(imageSize, tileSize image.Point, ordering []int) bool {
	if tileSize.X <= 0 || tileSize.Y <= 0 {
		return false
	}
	if imageSize.X <= 0 || imageSize.Y <= 0 {
		return false
	}
	if imageSize.X%tileSize.X != 0 || imageSize.Y%tileSize.Y != 0 {
		return false
	}

	count := (imageSize.X / tileSize.X) * (imageSize.Y / tileSize.Y)
	used := make(map[int]struct{}, len(ordering))
	for _, idx := range ordering {
		if idx < 0 || idx >= count {
			return false
		}
		if _, ok := used[idx]; ok {
			return false
		}
		used[idx] = struct{}{}
	}
	return true
}
