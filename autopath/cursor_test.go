package autopath

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/gogpu/gg"

	"github.com/OpticalFlyer/showcase/canvas"
	"github.com/OpticalFlyer/showcase/canvas/canvastest"
)

func straightPath(length float64) *Path {
	return FromPoints([]gg.Point{gg.Pt(0, 0), gg.Pt(length, 0)})
}

func TestCursorSpeeds(t *testing.T) {
	tests := []struct {
		name      string
		stops     []Stop
		wantSpeed int
		wantPos   []int
	}{
		{"slowest", []Stop{{0, 0}, {1, 0}}, 1, []int{1, 2, 3}},
		{"fastest", []Stop{{0, 1}, {1, 1}}, 64, []int{64, 28, 92}},
		{"half", []Stop{{0, 0.5}, {1, 0.5}}, 33, []int{33, 65, 97}},
		{"beyond fastest", []Stop{{0, 1.5}, {1, 1.5}}, 96, []int{96, 91, 86}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCursor(straightPath(100), tt.stops, 0, nil)
			if err != nil {
				t.Fatal(err)
			}
			if c.Speed() != tt.wantSpeed {
				t.Errorf("initial speed %d, want %d", c.Speed(), tt.wantSpeed)
			}
			if got := c.Point(nil); got.Distance(gg.Pt(0, 0)) > 1e-9 {
				t.Errorf("initial point %v", got)
			}
			for i, want := range tt.wantPos {
				c.Advance()
				if c.Position() != want {
					t.Fatalf("advance %d: position %d, want %d", i, c.Position(), want)
				}
				if got := c.Point(nil); got.Distance(gg.Pt(float64(want), 0)) > 1e-9 {
					t.Errorf("advance %d: point %v", i, got)
				}
			}
		})
	}
}

func TestCursorDeterministic(t *testing.T) {
	stops, err := ParseSpeedMap("0:0.1;0.3:0.8;0.7:0.2")
	if err != nil {
		t.Fatal(err)
	}
	path, err := ParseSVG("M0 0 C 100 0 100 100 200 100 S 300 0 400 50")
	if err != nil {
		t.Fatal(err)
	}
	run := func(seed uint64) []gg.Point {
		c, err := NewCursor(path, stops, 12, rand.New(rand.NewPCG(seed, seed)))
		if err != nil {
			t.Fatal(err)
		}
		var out []gg.Point
		for range 200 {
			c.Advance()
			out = append(out, c.Point(nil))
		}
		return out
	}

	a, b, other := run(42), run(42), run(43)
	same := true
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("frame %d differs for the same seed: %v vs %v", i, a[i], b[i])
		}
		if a[i] != other[i] {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical jitter")
	}
}

func TestCursorJitterBounds(t *testing.T) {
	c, err := NewCursor(straightPath(300), []Stop{{0, 0.3}, {1, 0.6}}, 20, rand.New(rand.NewPCG(1, 1)))
	if err != nil {
		t.Fatal(err)
	}
	samples := c.Samples()
	for range 500 {
		c.Advance()
		p := c.Point(nil)
		base := samples[c.Position()]
		if math.Abs(p.X-base.X) > 10 || math.Abs(p.Y-base.Y) > 10 {
			t.Fatalf("point %v strays from %v by more than 10", p, base)
		}
		if c.Position() < 0 || c.Position() >= c.Len() {
			t.Fatalf("position %d outside [0, %d)", c.Position(), c.Len())
		}
	}

	c.SetRandomness(-4)
	if c.Randomness() != 0 {
		t.Errorf("negative randomness stored as %v", c.Randomness())
	}
}

func TestCursorErrors(t *testing.T) {
	if _, err := NewCursor(straightPath(0.5), []Stop{{0, 0}, {1, 0}}, 0, nil); !errors.Is(err, ErrPathTooShort) {
		t.Errorf("short path: got %v", err)
	}
	if _, err := NewCursor(straightPath(10), []Stop{{0, 0}, {2, 0}}, 0, nil); !errors.Is(err, ErrBadIndex) {
		t.Errorf("bad stops: got %v", err)
	}
}

func TestOverlayDraw(t *testing.T) {
	c, err := NewCursor(straightPath(10), []Stop{{0, 0}, {1, 0}}, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	c.Advance()
	rec := canvastest.New(20, 20)
	o := NewOverlay(c, canvas.RGB{R: 255}, 0.4)
	o.Update(canvas.NewFrameState(20, 20))
	o.Draw(rec)
	if len(rec.Ops) != 2 {
		t.Fatalf("got %d ops", len(rec.Ops))
	}
	if rec.Ops[0].Name != "polyline" || len(rec.Ops[0].Points) != 11 || rec.Ops[0].Alpha != 0.4 {
		t.Errorf("path op %+v", rec.Ops[0])
	}
	if rec.Ops[1].Name != "fill" || rec.Ops[1].X != -2 || rec.Ops[1].Y != -3 {
		t.Errorf("marker op %+v", rec.Ops[1])
	}
}
