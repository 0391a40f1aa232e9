package main

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// parseSize parses "WxH". A single number is used for both dimensions.
func parseSize(s string) (image.Point, error) {
	w, h, found := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !found {
		h = w
	}
	width, err := strconv.Atoi(strings.TrimSpace(w))
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid tile size %q", s)
	}
	height, err := strconv.Atoi(strings.TrimSpace(h))
	if err != nil {
		return image.Point{}, fmt.Errorf("invalid tile size %q", s)
	}
	return image.Point{X: width, Y: height}, nil
}

// parseOrdering parses a comma separated list of tile indices. Range and
// uniqueness are left to rearrange.Valid.
func parseOrdering(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}, nil
	}
	fields := strings.Split(s, ",")
	ordering := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid tile index %q", f)
		}
		ordering[i] = v
	}
	return ordering, nil
}
