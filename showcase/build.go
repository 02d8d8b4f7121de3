// Package showcase assembles canvas hosts from the showcase catalogue.
package showcase

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/OpticalFlyer/showcase/autopath"
	"github.com/OpticalFlyer/showcase/canvas"
	"github.com/OpticalFlyer/showcase/config"
	"github.com/OpticalFlyer/showcase/showcase/background"
	"github.com/OpticalFlyer/showcase/showcase/line"
	"github.com/OpticalFlyer/showcase/showcase/tiles"
)

// ErrUnknownKind is returned for object kinds or tile styles with no builder.
var ErrUnknownKind = errors.New("unknown showcase object")

// Kind names a canvas object type in the config.
type Kind string

const (
	KindColorCycle Kind = "color-cycle"
	KindFrames     Kind = "frames"
	KindLine       Kind = "line"
	KindTiles      Kind = "tiles"
)

const (
	defaultPathColor = "#ff1a4d"
	pathAlpha        = 0.35
)

// Build creates a stopped host for one showcase. Objects are registered in
// config order.
func Build(cfg config.ShowcaseConfig, palettes *canvas.Palettes, rng *rand.Rand) (*canvas.Host, error) {
	cycle, err := palettes.Cycle(cfg.Palettes)
	if err != nil {
		return nil, fmt.Errorf("showcase %s: %w", cfg.ID, err)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	h := canvas.NewHost(cfg.Width, cfg.Height, canvas.WithName(cfg.ID), canvas.WithClear(cfg.Clear))
	for i, oc := range cfg.Objects {
		objects, err := buildObject(cfg, oc, cycle, rng)
		if err != nil {
			return nil, fmt.Errorf("showcase %s object %d: %w", cfg.ID, i, err)
		}
		h.Add(objects...)
	}
	return h, nil
}

// BuildAll builds every showcase in the config.
func BuildAll(cfg *config.Config, rng *rand.Rand) ([]*canvas.Host, error) {
	palettes, err := cfg.BuildPalettes()
	if err != nil {
		return nil, err
	}
	hosts := make([]*canvas.Host, 0, len(cfg.Showcases))
	for _, sc := range cfg.Showcases {
		h, err := Build(sc, palettes, rng)
		if err != nil {
			for _, built := range hosts {
				built.Close()
			}
			return nil, err
		}
		hosts = append(hosts, h)
	}
	return hosts, nil
}

func buildObject(sc config.ShowcaseConfig, oc config.ObjectConfig, cycle []canvas.Palette, rng *rand.Rand) ([]canvas.Object, error) {
	switch Kind(oc.Kind) {
	case KindColorCycle:
		stops := make([]canvas.RGB, 0, len(oc.Stops))
		for _, hex := range oc.Stops {
			c, err := canvas.ParseHex(hex)
			if err != nil {
				return nil, err
			}
			stops = append(stops, c)
		}
		return []canvas.Object{background.NewColorCycle(stops...)}, nil

	case KindFrames:
		frames := background.NewFrames(sc.Width, sc.Height, background.FramesConfig{
			Count:        oc.Count,
			MinLineWidth: oc.MinLineWidth,
			MaxLineWidth: oc.MaxLineWidth,
			Transmission: oc.Transmission,
		}, cycle, rng)
		return []canvas.Object{frames}, nil

	case KindLine:
		return []canvas.Object{line.New(sc.Width, sc.Height)}, nil

	case KindTiles:
		return buildTiles(sc, oc, cycle, rng)

	default:
		return nil, fmt.Errorf("%w: kind %q", ErrUnknownKind, oc.Kind)
	}
}

func buildTiles(sc config.ShowcaseConfig, oc config.ObjectConfig, cycle []canvas.Palette, rng *rand.Rand) ([]canvas.Object, error) {
	style, err := tiles.ParseStyle(oc.Style)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, err)
	}
	opts := tiles.Options{
		Style:      style,
		TileSize:   oc.TileSize,
		EffectSize: oc.EffectSize,
		Palettes:   cycle,
		Rand:       rng,
	}

	var overlay canvas.Object
	switch style {
	case tiles.Hover, tiles.Pulse:
	case tiles.Trail:
		if oc.Path == nil {
			return nil, errors.New("trail tiles need a path")
		}
		cursor, err := buildCursor(sc, oc.Path, rng)
		if err != nil {
			return nil, err
		}
		opts.Target = cursor
		if oc.Path.Show {
			overlay, err = buildOverlay(cursor, oc.Path.Color)
			if err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("%w: style %v", ErrUnknownKind, style)
	}

	grid, err := tiles.NewGrid(sc.Width, sc.Height, opts)
	if err != nil {
		return nil, err
	}
	if overlay != nil {
		return []canvas.Object{grid, overlay}, nil
	}
	return []canvas.Object{grid}, nil
}

func buildCursor(sc config.ShowcaseConfig, pc *config.PathConfig, rng *rand.Rand) (*autopath.Cursor, error) {
	var (
		path *autopath.Path
		err  error
	)
	switch {
	case pc.SVG != "":
		path, err = autopath.ParseSVG(pc.SVG)
	case pc.Shapefile != "":
		path, err = autopath.LoadShapefile(pc.Shapefile, autopath.ShapefileOptions{
			Mercator: pc.Mercator,
			Width:    float64(sc.Width),
			Height:   float64(sc.Height),
			Margin:   pc.Margin,
		})
	default:
		err = errors.New("path has neither svg data nor a shapefile")
	}
	if err != nil {
		return nil, err
	}

	stops, err := autopath.ParseSpeedMap(pc.SpeedMap)
	if err != nil {
		return nil, err
	}
	return autopath.NewCursor(path, stops, pc.Randomness, rng)
}

func buildOverlay(cursor *autopath.Cursor, hex string) (canvas.Object, error) {
	if hex == "" {
		hex = defaultPathColor
	}
	c, err := canvas.ParseHex(hex)
	if err != nil {
		return nil, err
	}
	return autopath.NewOverlay(cursor, c, pathAlpha), nil
}
