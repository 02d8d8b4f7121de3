// Package config loads the showcase page layout and the showcase catalogue
// from YAML.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/OpticalFlyer/showcase/canvas"
)

//go:embed default.yaml
var defaultConfig []byte

// Config is the complete page configuration.
type Config struct {
	Window    WindowConfig     `yaml:"window"`
	Page      PageConfig       `yaml:"page"`
	Palettes  []PaletteConfig  `yaml:"palettes"`
	Showcases []ShowcaseConfig `yaml:"showcases"`
}

// WindowConfig sizes the native window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

// PageConfig lays out showcase cards on the scrolling page.
type PageConfig struct {
	Padding     int `yaml:"padding"`
	ScrollSpeed int `yaml:"scroll_speed"`
	PanelWidth  int `yaml:"panel_width"`
}

// PaletteConfig is a named list of hex colors.
type PaletteConfig struct {
	Name   string   `yaml:"name"`
	Colors []string `yaml:"colors"`
}

// ShowcaseConfig describes one canvas and its objects.
type ShowcaseConfig struct {
	ID     string `yaml:"id"`
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Clear  bool   `yaml:"clear"`
	// Palettes is the cycling order for palette driven objects. Empty
	// means every registered palette.
	Palettes []string       `yaml:"palettes"`
	Objects  []ObjectConfig `yaml:"objects"`
}

// ObjectConfig describes one canvas object. Which fields apply depends on
// Kind.
type ObjectConfig struct {
	Kind string `yaml:"kind"`

	// color-cycle
	Stops []string `yaml:"stops"`

	// frames
	Count        int     `yaml:"count"`
	MinLineWidth float64 `yaml:"min_line_width"`
	MaxLineWidth float64 `yaml:"max_line_width"`
	Transmission float64 `yaml:"transmission"`

	// tiles
	Style      string      `yaml:"style"`
	TileSize   int         `yaml:"tile_size"`
	EffectSize float64     `yaml:"effect_size"`
	Path       *PathConfig `yaml:"path"`
}

// PathConfig is the auto path for trail tiles. Exactly one of SVG and
// Shapefile is used; SVG wins when both are set.
type PathConfig struct {
	SVG        string  `yaml:"svg"`
	Shapefile  string  `yaml:"shapefile"`
	Mercator   bool    `yaml:"mercator"`
	Margin     float64 `yaml:"margin"`
	SpeedMap   string  `yaml:"speed_map"`
	Randomness float64 `yaml:"randomness"`
	Show       bool    `yaml:"show"`
	Color      string  `yaml:"color"`
}

// Default returns the embedded configuration.
func Default() *Config {
	cfg, err := Parse(defaultConfig)
	if err != nil {
		panic(fmt.Sprintf("config: embedded default is invalid: %v", err))
	}
	return cfg
}

// Load reads a config file. An empty path loads the embedded default.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML and fills defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Window.Width == 0 {
		cfg.Window.Width = 1100
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = 800
	}
	if cfg.Window.Title == "" {
		cfg.Window.Title = "Canvas showcases"
	}
	if cfg.Window.TPS == 0 {
		cfg.Window.TPS = 60
	}
	if cfg.Page.Padding == 0 {
		cfg.Page.Padding = 24
	}
	if cfg.Page.ScrollSpeed == 0 {
		cfg.Page.ScrollSpeed = 40
	}
	if cfg.Page.PanelWidth == 0 {
		cfg.Page.PanelWidth = 260
	}

	for i := range cfg.Showcases {
		sc := &cfg.Showcases[i]
		if sc.ID == "" {
			return nil, fmt.Errorf("showcase %d has no id", i)
		}
		if sc.Title == "" {
			sc.Title = sc.ID
		}
		if sc.Width == 0 {
			sc.Width = 640
		}
		if sc.Height == 0 {
			sc.Height = 400
		}
		for j := range sc.Objects {
			obj := &sc.Objects[j]
			if obj.TileSize == 0 {
				obj.TileSize = 20
			}
			if obj.Path != nil && obj.Path.Margin == 0 {
				obj.Path.Margin = 20
			}
		}
	}
	return &cfg, nil
}

// Showcase returns the showcase with the given id, or nil.
func (c *Config) Showcase(id string) *ShowcaseConfig {
	for i := range c.Showcases {
		if c.Showcases[i].ID == id {
			return &c.Showcases[i]
		}
	}
	return nil
}

// BuildPalettes returns the built-in palettes plus the configured ones.
func (c *Config) BuildPalettes() (*canvas.Palettes, error) {
	palettes := canvas.NewPalettes()
	for _, pc := range c.Palettes {
		if len(pc.Colors) == 0 {
			return nil, fmt.Errorf("palette %q has no colors", pc.Name)
		}
		pal := make(canvas.Palette, 0, len(pc.Colors))
		for _, hex := range pc.Colors {
			col, err := canvas.ParseHex(hex)
			if err != nil {
				return nil, fmt.Errorf("palette %q: %w", pc.Name, err)
			}
			pal = append(pal, col)
		}
		palettes.Add(pc.Name, pal)
	}
	return palettes, nil
}
