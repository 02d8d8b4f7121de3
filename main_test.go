package main

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/showcase/canvas"
	"github.com/OpticalFlyer/showcase/settings"
)

func TestLoadConfigShowcaseFilter(t *testing.T) {
	defer func() { *showcaseID = "" }()

	*showcaseID = "tiles3"
	cfg, err := loadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Showcases) != 1 || cfg.Showcases[0].ID != "tiles3" {
		t.Errorf("showcases = %+v; want only tiles3", cfg.Showcases)
	}

	*showcaseID = "missing"
	if _, err := loadConfig(); !errors.Is(err, errUnknownShowcase) {
		t.Errorf("err = %v; want errUnknownShowcase", err)
	}
}

type dial struct {
	size      float64
	destroyed bool
}

func (d *dial) Update(*canvas.FrameState) {}
func (d *dial) Draw(canvas.Surface)       {}
func (d *dial) Destroy()                  { d.destroyed = true }

func (d *dial) Controls() []canvas.Control {
	return []canvas.Control{{
		Kind: canvas.ControlRange, Key: "size", Min: 1, Max: 10, Step: 1, Value: d.size,
		OnChange: func(v float64) { d.size = v },
	}}
}

func TestPlayClosesOnExit(t *testing.T) {
	failed := errors.New("graphics driver lost")
	tests := []struct {
		name    string
		runErr  error
		wantErr error
	}{
		{"loop error", failed, failed},
		{"window closed", ebiten.Termination, nil},
		{"clean exit", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &dial{size: 5}
			h := canvas.NewHost(10, 10)
			h.Add(d)
			c := &card{id: "tiles3", host: h, controls: h.Controls()}
			store := settings.New(nil)
			g := &Showcases{cards: []*card{c}, store: store}

			err := play(g, func(ebiten.Game) error {
				c.controls[0].Set(7)
				return tt.runErr
			})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("play() = %v; want %v", err, tt.wantErr)
			}
			if !d.destroyed {
				t.Error("host not closed")
			}
			st, err := store.Load("tiles3")
			if err != nil {
				t.Fatal(err)
			}
			if st.Controls["size"] != 7 {
				t.Errorf("saved controls = %v; want size 7", st.Controls)
			}
		})
	}
}
