package main

import (
	"image/png"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"

	"github.com/OpticalFlyer/showcase/config"
)

func TestPointerAt(t *testing.T) {
	tests := []struct {
		frame, frames int
		want          gg.Point
	}{
		{0, 5, gg.Pt(0, 50)},
		{2, 5, gg.Pt(100, 50)},
		{4, 5, gg.Pt(200, 50)},
		{0, 1, gg.Pt(100, 50)},
	}
	for _, tt := range tests {
		if got := pointerAt(tt.frame, tt.frames, 200, 100); got != tt.want {
			t.Errorf("pointerAt(%d, %d) = %v; want %v", tt.frame, tt.frames, got, tt.want)
		}
	}
}

func TestRenderWritesFrames(t *testing.T) {
	cfg := config.Default()
	palettes, err := cfg.BuildPalettes()
	if err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	for _, sc := range cfg.Showcases {
		// Small canvases keep the run short.
		sc.Width, sc.Height = 160, 120
		t.Run(sc.ID, func(t *testing.T) {
			files, err := render(sc, palettes, rand.New(rand.NewPCG(1, 2)), options{
				Frames: 6, Every: 3, Sweep: true, OutDir: dir,
			})
			if err != nil {
				t.Fatal(err)
			}
			want := []string{
				filepath.Join(dir, sc.ID+"-0003.png"),
				filepath.Join(dir, sc.ID+"-0006.png"),
			}
			if len(files) != len(want) {
				t.Fatalf("files = %v; want %v", files, want)
			}
			for i, f := range files {
				if f != want[i] {
					t.Errorf("file %d = %s; want %s", i, f, want[i])
				}
				r, err := os.Open(f)
				if err != nil {
					t.Fatal(err)
				}
				img, err := png.Decode(r)
				r.Close()
				if err != nil {
					t.Fatal(err)
				}
				if b := img.Bounds(); b.Dx() != 160 || b.Dy() != 120 {
					t.Errorf("%s size %v", f, b)
				}
			}
		})
	}
}
