package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/OpticalFlyer/showcase/canvas"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	wantIDs := []string{"animated-path", "centered-box", "tiles", "tiles2", "tiles3"}
	if len(cfg.Showcases) != len(wantIDs) {
		t.Fatalf("got %d showcases, want %d", len(cfg.Showcases), len(wantIDs))
	}
	for i, id := range wantIDs {
		if cfg.Showcases[i].ID != id {
			t.Errorf("showcase %d = %q, want %q", i, cfg.Showcases[i].ID, id)
		}
	}

	trail := cfg.Showcase("tiles3")
	if trail == nil || trail.Clear {
		t.Fatalf("tiles3 missing or clearing: %+v", trail)
	}
	obj := trail.Objects[0]
	if obj.Style != "trail" || obj.Path == nil || obj.Path.SVG == "" || obj.Path.SpeedMap == "" {
		t.Errorf("tiles3 object incomplete: %+v", obj)
	}
	if obj.Path.Margin != 20 {
		t.Errorf("path margin default %v", obj.Path.Margin)
	}

	if !cfg.Showcase("animated-path").Clear || !cfg.Showcase("centered-box").Clear {
		t.Error("animated-path and centered-box should clear")
	}
	if cfg.Showcase("nope") != nil {
		t.Error("unknown id found")
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
showcases:
  - id: bare
    objects:
      - kind: tiles
`))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Width != 1100 || cfg.Window.Height != 800 || cfg.Window.TPS != 60 {
		t.Errorf("window defaults %+v", cfg.Window)
	}
	if cfg.Page.Padding != 24 || cfg.Page.ScrollSpeed != 40 || cfg.Page.PanelWidth != 260 {
		t.Errorf("page defaults %+v", cfg.Page)
	}
	sc := cfg.Showcases[0]
	if sc.Title != "bare" || sc.Width != 640 || sc.Height != 400 {
		t.Errorf("showcase defaults %+v", sc)
	}
	if sc.Objects[0].TileSize != 20 {
		t.Errorf("tile size default %d", sc.Objects[0].TileSize)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "showcases: [\n"},
		{"missing id", "showcases:\n  - title: x\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	if err != nil || len(cfg.Showcases) == 0 {
		t.Fatalf("Load(\"\") = %v, %v", cfg, err)
	}

	file := filepath.Join(t.TempDir(), "page.yaml")
	if err := os.WriteFile(file, []byte("window:\n  title: Mine\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(file)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Title != "Mine" || len(cfg.Showcases) != 0 {
		t.Errorf("loaded %+v", cfg)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: %v", err)
	}
}

func TestBuildPalettes(t *testing.T) {
	cfg := Default()
	palettes, err := cfg.BuildPalettes()
	if err != nil {
		t.Fatal(err)
	}
	names := palettes.Names()
	if names[len(names)-1] != "mono" {
		t.Errorf("configured palette not appended: %v", names)
	}
	mono, err := palettes.Get("mono")
	if err != nil {
		t.Fatal(err)
	}
	if mono[0] != (canvas.RGB{R: 0x22, G: 0x22, B: 0x22}) {
		t.Errorf("mono[0] = %v", mono[0])
	}

	bad := &Config{Palettes: []PaletteConfig{{Name: "bad", Colors: []string{"zzz"}}}}
	if _, err := bad.BuildPalettes(); err == nil {
		t.Error("invalid hex accepted")
	}
	empty := &Config{Palettes: []PaletteConfig{{Name: "empty"}}}
	if _, err := empty.BuildPalettes(); err == nil {
		t.Error("empty palette accepted")
	}
}
