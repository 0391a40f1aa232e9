package rearrange

import (
	"image"
	"testing"
)

func TestGrid(t *testing.T) {
	g := NewGrid(image.Pt(6, 4), image.Pt(3, 2))
	if g.Columns != 2 || g.Rows != 2 || g.Count() != 4 {
		t.Fatalf("unexpected grid %+v", g)
	}

	want := []image.Rectangle{
		image.Rect(0, 0, 3, 2),
		image.Rect(3, 0, 6, 2),
		image.Rect(0, 2, 3, 4),
		image.Rect(3, 2, 6, 4),
	}
	for idx, r := range want {
		if got := g.Rect(idx); got != r {
			t.Errorf("Rect(%d) = %v, want %v", idx, got, r)
		}
	}
}
