package line

import (
	"math"
	"testing"

	"github.com/OpticalFlyer/showcase/canvas"
	"github.com/OpticalFlyer/showcase/canvas/canvastest"
	"github.com/gogpu/gg"
)

func TestNewPoints(t *testing.T) {
	l := New(800, 500)
	want := [4]gg.Point{{X: 400, Y: 0}, {X: 400, Y: 0}, {X: 400, Y: 100}, {X: 100, Y: 0}}
	if l.Points() != want {
		t.Errorf("Points() = %v; want %v", l.Points(), want)
	}
}

func TestFirstUpdate(t *testing.T) {
	l := New(800, 500)
	l.Update(canvas.NewFrameState(800, 500))

	// Gravity gives |v| = 0.1, the force then points right at the anchor.
	wantV := gg.Pt(0.1, 0.1)
	v := l.Velocity()
	if math.Abs(v.X-wantV.X) > 1e-9 || math.Abs(v.Y-wantV.Y) > 1e-9 {
		t.Errorf("velocity = %v; want %v", v, wantV)
	}
	p := l.Points()[3]
	if math.Abs(p.X-100.1) > 1e-9 || math.Abs(p.Y-0.1) > 1e-9 {
		t.Errorf("free end = %v; want (100.1, 0.1)", p)
	}
	if vert := l.Verticalness(); math.Abs(vert) > 1e-9 {
		t.Errorf("Verticalness() = %v; want 0 for horizontal force", vert)
	}
}

func TestAnchorsFixed(t *testing.T) {
	l := New(640, 480)
	start := l.Points()
	state := canvas.NewFrameState(640, 480)
	for i := 0; i < 500; i++ {
		l.Update(state)
	}
	got := l.Points()
	for i := 0; i < 3; i++ {
		if got[i] != start[i] {
			t.Errorf("point %d moved: %v -> %v", i, start[i], got[i])
		}
	}
	if got[3] == start[3] {
		t.Error("free end never moved")
	}
}

func TestDeterministic(t *testing.T) {
	a, b := New(300, 300), New(300, 300)
	state := canvas.NewFrameState(300, 300)
	for i := 0; i < 120; i++ {
		a.Update(state)
		b.Update(state)
	}
	if a.Points() != b.Points() {
		t.Errorf("runs diverged: %v vs %v", a.Points(), b.Points())
	}
}

func TestDraw(t *testing.T) {
	l := New(200, 100)
	rec := canvastest.New(200, 100)
	l.Draw(rec)
	if len(rec.Ops) != 1 || rec.Ops[0].Name != "cubic" || rec.Ops[0].LineWidth != Width {
		t.Fatalf("ops = %+v", rec.Ops)
	}
	if rec.Ops[0].Points[3] != gg.Pt(-200, 0) {
		t.Errorf("end point = %v", rec.Ops[0].Points[3])
	}
}

func TestNormalizeHorizontalAngle(t *testing.T) {
	tests := []struct {
		angle, want float64
	}{
		{0, 0},
		{math.Pi, 0},
		{math.Pi / 2, 1},
		{-math.Pi / 2, 1},
		{math.Pi / 4, 0.5},
	}
	for _, tt := range tests {
		if got := normalizeHorizontalAngle(tt.angle); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("normalizeHorizontalAngle(%v) = %v; want %v", tt.angle, got, tt.want)
		}
	}
}
