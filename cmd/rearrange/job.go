package main

import (
	"encoding/json"
	"fmt"
	"image"
	"log"
	"os"
	"sync"

	"github.com/Nebu1eto/rearrange"
)

// JobFile is the JSON schema accepted by -job.
type JobFile struct {
	TileWidth  int   `json:"tile_width"`
	TileHeight int   `json:"tile_height"`
	Quality    int   `json:"quality"`
	Jobs       []Job `json:"jobs"`
}

// Job describes one image. Seed, when present, replaces Ordering with a
// shuffle of all tiles.
type Job struct {
	Input    string  `json:"input"`
	Output   string  `json:"output"`
	Ordering []int   `json:"ordering"`
	Seed     *uint32 `json:"seed,omitempty"`
	Inverse  bool    `json:"inverse"`
}

func loadJobFile(path string) (*JobFile, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("err: failure to read JSON file (%s): %w", path, err)
	}

	var data JobFile
	if err := json.Unmarshal(file, &data); err != nil {
		return nil, fmt.Errorf("err: failure to parse JSON (%s): %w", path, err)
	}
	if data.Quality == 0 {
		data.Quality = rearrange.DefaultJPEGQuality
	}
	return &data, nil
}

// runJobs processes all jobs concurrently and returns how many failed.
func runJobs(data *JobFile) int {
	log.Printf("Processing %d images", len(data.Jobs))

	codec := rearrange.Codec{JPEGQuality: data.Quality}
	tile := image.Point{X: data.TileWidth, Y: data.TileHeight}

	var wg sync.WaitGroup
	var mu sync.Mutex
	failed := 0
	for i, j := range data.Jobs {
		wg.Add(1)
		go func(index int, j Job) {
			defer wg.Done()

			log.Printf("[%3d] rearranging %s...", index+1, j.Input)
			if err := runJob(codec, tile, j); err != nil {
				log.Printf("[%3d] %v", index+1, err)
				mu.Lock()
				failed++
				mu.Unlock()
				return
			}
			log.Printf("[%3d] saved image to %s", index+1, j.Output)
		}(i, j)
	}

	wg.Wait()
	return failed
}

func runJob(codec rearrange.Codec, tile image.Point, j Job) error {
	if j.Seed == nil && !j.Inverse {
		if err := rearrange.File(codec, codec, j.Input, tile, j.Ordering, j.Output); err != nil {
			return fmt.Errorf("err: failure to rearrange (%s): %w", j.Input, err)
		}
		return nil
	}

	src, err := codec.Decode(j.Input)
	if err != nil {
		return fmt.Errorf("err: failure to decode image (%s): %w", j.Input, err)
	}
	ordering, err := j.resolveOrdering(src.Bounds().Size(), tile)
	if err != nil {
		return fmt.Errorf("err: failure to build ordering (%s): %w", j.Input, err)
	}
	dst, err := rearrange.Image(src, tile, ordering)
	if err != nil {
		return fmt.Errorf("err: failure to rearrange (%s): %w", j.Input, err)
	}
	if err := codec.Encode(j.Output, dst); err != nil {
		return fmt.Errorf("err: failure to save image (%s): %w", j.Output, err)
	}
	return nil
}

// resolveOrdering returns the ordering to apply to an image of the given
// size, expanding Seed and Inverse.
func (j Job) resolveOrdering(size, tile image.Point) ([]int, error) {
	ordering := j.Ordering
	if j.Seed != nil {
		if !rearrange.Valid(size, tile, nil) {
			return nil, rearrange.ErrInvalidRequest
		}
		ordering = rearrange.Shuffle(*j.Seed, rearrange.NewGrid(size, tile).Count())
	}
	if j.Inverse {
		return rearrange.Inverse(ordering)
	}
	return ordering, nil
}
