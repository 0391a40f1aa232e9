package main

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSize(t *testing.T) {
	cases := []struct {
		in   string
		want image.Point
		ok   bool
	}{
		{"2x2", image.Pt(2, 2), true},
		{"64X32", image.Pt(64, 32), true},
		{" 8 x 4 ", image.Pt(8, 4), true},
		{"16", image.Pt(16, 16), true},
		{"", image.Point{}, false},
		{"ax2", image.Point{}, false},
		{"2x", image.Point{}, false},
	}
	for _, c := range cases {
		got, err := parseSize(c.in)
		if (err == nil) != c.ok {
			t.Errorf("parseSize(%q) error = %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("parseSize(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseOrdering(t *testing.T) {
	got, err := parseOrdering("3, 2,1,0")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{3, 2, 1, 0}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	if got, err := parseOrdering(""); err != nil || len(got) != 0 {
		t.Errorf("parseOrdering(\"\") = %v, %v", got, err)
	}
	if _, err := parseOrdering("1,,2"); err == nil {
		t.Error("missing error for empty field")
	}
	// negative values parse; rejecting them is up to the validator
	if got, err := parseOrdering("-1"); err != nil || got[0] != -1 {
		t.Errorf("parseOrdering(\"-1\") = %v, %v", got, err)
	}
}

func TestParseArgs(t *testing.T) {
	cfg, err := parseArgs([]string{"-in", "a.png", "-out", "b.jpg", "-tile", "2x2", "-order", "3,2,1,0"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.in != "a.png" || cfg.out != "b.jpg" || cfg.tile != image.Pt(2, 2) || cfg.shuffle {
		t.Errorf("unexpected config %+v", cfg)
	}
	if diff := cmp.Diff([]int{3, 2, 1, 0}, cfg.ordering); diff != "" {
		t.Errorf("ordering (-want +got):\n%s", diff)
	}

	cfg, err = parseArgs([]string{"-in", "a.png", "-out", "b.png", "-tile", "4", "-seed", "0", "-inverse"})
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.shuffle || cfg.seed != 0 || !cfg.inverse {
		t.Errorf("unexpected config %+v", cfg)
	}

	cfg, err = parseArgs([]string{"-job", "jobs.json"})
	if err != nil || cfg.jobFile != "jobs.json" {
		t.Errorf("parseArgs(-job) = %+v, %v", cfg, err)
	}

	for _, args := range [][]string{
		{"-out", "b.png", "-tile", "2x2"},
		{"-in", "a.png", "-out", "b.png", "-tile", "x"},
		{"-in", "a.png", "-out", "b.png", "-tile", "2", "-order", "0", "-seed", "1"},
		{"-in", "a.png", "-out", "b.png", "-tile", "2", "-seed", "4294967296"},
		{"-in", "a.png", "-out", "b.png", "-tile", "2", "-quality", "0"},
	} {
		if _, err := parseArgs(args); err == nil {
			t.Errorf("parseArgs(%q) succeeded", args)
		}
	}
}
