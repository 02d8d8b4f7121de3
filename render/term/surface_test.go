package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/OpticalFlyer/showcase/canvas"
)

func near(a, b canvas.RGB) bool {
	d := func(x, y int) bool { return x-y <= 2 && y-x <= 2 }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B)
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(s.Fini)
	return s
}

func TestSize(t *testing.T) {
	s := New(10, 4, 3, canvas.Black)
	defer s.Close()

	if w, h := s.Size(); w != 30 || h != 24 {
		t.Errorf("Size() = %d, %d; want 30, 24", w, h)
	}
	if c, r := s.Cells(); c != 10 || r != 4 {
		t.Errorf("Cells() = %d, %d", c, r)
	}
	if x, y := s.CanvasPoint(2, 1); x != 7.5 || y != 7.5 {
		t.Errorf("CanvasPoint(2, 1) = %v, %v", x, y)
	}
}

func TestPresent(t *testing.T) {
	background := canvas.RGB{R: 0, G: 0, B: 40}
	s := New(4, 2, 2, background)
	defer s.Close()

	red := canvas.RGB{R: 255}
	s.FillRect(0, 0, 4, 4, red, 1)
	s.FillRect(4, 4, 4, 4, canvas.RGB{G: 255}, 0.5)
	if err := s.Err(); err != nil {
		t.Fatal(err)
	}

	screen := newScreen(t)
	s.Present(screen, 1, 0)
	screen.Show()

	tests := []struct {
		x, y int
		want canvas.RGB
	}{
		{0, 0, red},
		{1, 1, red},
		{3, 0, background},
		{2, 2, canvas.RGB{G: 128, B: 20}},
		{0, 3, background},
	}
	for _, tt := range tests {
		if got := s.Pixel(tt.x, tt.y); !near(got, tt.want) {
			t.Errorf("Pixel(%d, %d) = %+v; want %+v", tt.x, tt.y, got, tt.want)
		}
	}

	cells, w, _ := screen.GetContents()
	cell := cells[0*w+1]
	if len(cell.Runes) == 0 || cell.Runes[0] != upperHalf {
		t.Fatalf("cell runes = %q", cell.Runes)
	}
	fg, bg, _ := cell.Style.Decompose()
	if r, g, b := fg.RGB(); r != 255 || g != 0 || b != 0 {
		t.Errorf("foreground = %d %d %d", r, g, b)
	}
	if r, _, _ := bg.RGB(); r != 255 {
		t.Errorf("background red = %d", r)
	}

	// Second cell row holds pixel rows 2 and 3.
	fg, bg, _ = cells[1*w+3].Style.Decompose()
	if _, g, _ := fg.RGB(); g < 120 || g > 135 {
		t.Errorf("blended foreground green = %d", g)
	}
	if _, g, b := bg.RGB(); g < 120 || b < 15 {
		t.Errorf("blended background = %d %d", g, b)
	}
}

func TestClearRestoresBackground(t *testing.T) {
	s := New(2, 1, 1, canvas.RGB{R: 9, G: 9, B: 9})
	defer s.Close()

	s.FillRect(0, 0, 2, 2, canvas.RGB{R: 200, G: 200, B: 200}, 1)
	s.Clear()
	s.Present(newScreen(t), 0, 0)
	if got := s.Pixel(1, 1); got != (canvas.RGB{R: 9, G: 9, B: 9}) {
		t.Errorf("Pixel after clear = %+v", got)
	}
	if got := s.Pixel(5, 5); got != canvas.Black {
		t.Errorf("out of range pixel = %+v", got)
	}
}
