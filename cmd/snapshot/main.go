// Command snapshot renders showcase frames to PNG files without a window.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"

	"github.com/OpticalFlyer/showcase/canvas"
	"github.com/OpticalFlyer/showcase/config"
	"github.com/OpticalFlyer/showcase/render/raster"
	"github.com/OpticalFlyer/showcase/showcase"
)

var (
	configPath = flag.String("config", "", "YAML config file (default: embedded catalogue)")
	showcaseID = flag.String("showcase", "", "render only this showcase")
	outDir     = flag.String("out", "snapshots", "output directory")
	frames     = flag.Int("frames", 120, "frames to simulate per showcase")
	every      = flag.Int("every", 30, "write every n-th frame")
	sweep      = flag.Bool("sweep", true, "sweep the pointer across the canvas")
	seed       = flag.Uint64("seed", 1, "random seed")
	verbose    = flag.Bool("verbose", false, "log file and line numbers")
)

// options controls one rendering run.
type options struct {
	Frames int
	Every  int
	Sweep  bool
	OutDir string
}

// pointerAt sweeps the pointer left to right through the middle of the
// canvas over the run.
func pointerAt(frame, frames, width, height int) gg.Point {
	if frames <= 1 {
		return gg.Pt(float64(width)/2, float64(height)/2)
	}
	t := float64(frame) / float64(frames-1)
	return gg.Pt(t*float64(width), float64(height)/2)
}

// render runs one showcase headlessly and returns the written files.
func render(sc config.ShowcaseConfig, palettes *canvas.Palettes, rng *rand.Rand, opts options) ([]string, error) {
	host, err := showcase.Build(sc, palettes, rng)
	if err != nil {
		return nil, err
	}
	defer host.Close()

	surface := raster.New(sc.Width, sc.Height)
	defer surface.Close()

	every := max(opts.Every, 1)
	var written []string
	host.Start()
	for f := 0; f < opts.Frames; f++ {
		if opts.Sweep {
			p := pointerAt(f, opts.Frames, sc.Width, sc.Height)
			host.MouseMove(p.X, p.Y)
		}
		host.Step(surface)
		if err := surface.Err(); err != nil {
			return written, fmt.Errorf("showcase %s frame %d: %w", sc.ID, f, err)
		}
		if (f+1)%every != 0 {
			continue
		}
		path := filepath.Join(opts.OutDir, fmt.Sprintf("%s-%04d.png", sc.ID, f+1))
		if err := surface.SavePNG(path); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func main() {
	flag.Parse()

	if *verbose {
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	palettes, err := cfg.BuildPalettes()
	if err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	opts := options{Frames: *frames, Every: *every, Sweep: *sweep, OutDir: *outDir}
	rng := rand.New(rand.NewPCG(*seed, *seed^0x5eed))
	found := false
	for _, sc := range cfg.Showcases {
		if *showcaseID != "" && sc.ID != *showcaseID {
			continue
		}
		found = true
		files, err := render(sc, palettes, rng, opts)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("%s: %d frames, %d files", sc.ID, opts.Frames, len(files))
	}
	if !found {
		log.Fatalf("no showcase %q", *showcaseID)
	}
}
