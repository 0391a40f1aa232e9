// rearrange cuts an image into tiles and reassembles them in a given order.
//
// Usage:
//
//	rearrange -in src.png -out dst.png -tile 64x64 -order 3,2,1,0
//	rearrange -in src.png -out dst.png -tile 64x64 -seed 1234 [-inverse]
//	rearrange -job jobs.json
//
// With -seed the ordering is a pseudo-random permutation of all tiles;
// -inverse undoes an ordering, so a scrambled image can be restored with the
// same seed. A job file lists several images that are processed
// concurrently.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"

	"github.com/Nebu1eto/rearrange"
)

type config struct {
	in       string
	out      string
	tile     image.Point
	ordering []int
	seed     uint32
	shuffle  bool
	inverse  bool
	quality  int
	jobFile  string
	verbose  bool
}

func main() {
	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "rearrange: %v\n", err)
		os.Exit(2)
	}

	if cfg.verbose {
		rearrange.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if cfg.jobFile != "" {
		data, err := loadJobFile(cfg.jobFile)
		if err != nil {
			log.Fatal(err)
		}
		if failed := runJobs(data); failed > 0 {
			log.Fatalf("err: %d of %d jobs failed", failed, len(data.Jobs))
		}
		log.Println("Completed to Rearrange Images")
		return
	}

	j := Job{
		Input:    cfg.in,
		Output:   cfg.out,
		Ordering: cfg.ordering,
		Inverse:  cfg.inverse,
	}
	if cfg.shuffle {
		seed := cfg.seed
		j.Seed = &seed
	}
	codec := rearrange.Codec{JPEGQuality: cfg.quality}
	if err := runJob(codec, cfg.tile, j); err != nil {
		log.Fatal(err)
	}
}

func parseArgs(args []string) (*config, error) {
	fs := flag.NewFlagSet("rearrange", flag.ContinueOnError)
	cfg := &config{}
	var tile, order string
	var seed uint64
	fs.StringVar(&cfg.in, "in", "", "input image `path`")
	fs.StringVar(&cfg.out, "out", "", "output image `path`, format chosen by extension")
	fs.StringVar(&tile, "tile", "", "tile size as `WxH`")
	fs.StringVar(&order, "order", "", "comma separated tile `indices`")
	fs.Uint64Var(&seed, "seed", 0, "shuffle all tiles with this `seed` instead of -order")
	fs.BoolVar(&cfg.inverse, "inverse", false, "apply the inverse of the ordering")
	fs.IntVar(&cfg.quality, "quality", rearrange.DefaultJPEGQuality, "JPEG `quality` (1-100)")
	fs.StringVar(&cfg.jobFile, "job", "", "JSON job `file`; other flags are ignored")
	fs.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.jobFile != "" {
		return cfg, nil
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.shuffle = true
		}
	})
	if seed > 1<<32-1 {
		return nil, fmt.Errorf("seed %d does not fit in 32 bits", seed)
	}
	cfg.seed = uint32(seed)

	if cfg.in == "" || cfg.out == "" {
		return nil, fmt.Errorf("both -in and -out are required")
	}
	var err error
	if cfg.tile, err = parseSize(tile); err != nil {
		return nil, err
	}
	if cfg.shuffle && order != "" {
		return nil, fmt.Errorf("-order and -seed are mutually exclusive")
	}
	if !cfg.shuffle {
		if cfg.ordering, err = parseOrdering(order); err != nil {
			return nil, err
		}
	}
	if cfg.quality < 1 || cfg.quality > 100 {
		return nil, fmt.Errorf("quality %d out of range 1-100", cfg.quality)
	}
	return cfg, nil
}
