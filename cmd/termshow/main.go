// Command termshow plays one showcase in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/OpticalFlyer/showcase/canvas"
	"github.com/OpticalFlyer/showcase/config"
	"github.com/OpticalFlyer/showcase/render/term"
	"github.com/OpticalFlyer/showcase/showcase"
)

var (
	configPath = flag.String("config", "", "YAML config file (default: embedded catalogue)")
	showcaseID = flag.String("showcase", "tiles3", "showcase id")
	scale      = flag.Int("scale", 4, "canvas pixels per terminal pixel")
	fps        = flag.Int("fps", 30, "frames per second")
	seed       = flag.Uint64("seed", 1, "random seed")
	logPath    = flag.String("log", "", "write logs to this file instead of discarding them")
)

func run(ctx context.Context) error {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	sc := cfg.Showcase(*showcaseID)
	if sc == nil {
		return fmt.Errorf("no showcase %q", *showcaseID)
	}
	palettes, err := cfg.BuildPalettes()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	cols, rows := screen.Size()
	surface := term.New(cols, rows, *scale, canvas.Black)
	defer surface.Close()

	// The canvas fills the terminal.
	w, h := surface.Size()
	sized := *sc
	sized.Width, sized.Height = w, h
	host, err := showcase.Build(sized, palettes, rand.New(rand.NewPCG(*seed, *seed^0x5eed)))
	if err != nil {
		return err
	}
	defer host.Close()
	log.Printf("termshow %s: %dx%d cells, canvas %dx%d", sc.ID, cols, rows, w, h)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan func(*canvas.Host), 100)
	in := &input{surface: surface}
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			update, quit := in.translate(ev)
			if quit {
				cancel()
				return
			}
			if update != nil {
				select {
				case events <- update:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	driver := canvas.Driver{
		Interval: time.Second / time.Duration(max(*fps, 1)),
		Events:   events,
		Present: func() error {
			if err := surface.Err(); err != nil {
				return err
			}
			surface.Present(screen, 0, 0)
			screen.Show()
			return nil
		},
	}
	err = driver.Run(ctx, host, surface)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func main() {
	flag.Parse()

	// The terminal is ours while running; logs go to a file or nowhere.
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if err := run(context.Background()); err != nil {
		log.Print(err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
