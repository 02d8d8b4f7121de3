package autopath

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestParseSVGLength(t *testing.T) {
	tests := []struct {
		name string
		d    string
		want float64
		tol  float64
	}{
		{"line", "M0 0 L100 0", 100, 1e-9},
		{"relative lines", "m10 10 h10 v10 l-10 0", 30, 1e-9},
		{"close adds the closing line", "M0 0 h10 v10 z", 20 + math.Sqrt(200), 1e-9},
		{"moves add nothing", "M0 0 L10 0 M100 100 L100 110", 20, 1e-9},
		{"straight cubic", "M0 0 C10 0 20 0 30 0", 30, 1e-9},
		{"half circle arc", "M0 0 A10 10 0 0 1 20 0", 10 * math.Pi, 0.05},
		{"full circle from two arcs", "M0 0 A10 10 0 1 1 20 0 A10 10 0 1 1 0 0", 20 * math.Pi, 0.05},
		{"relative arc", "m5 5 a10 10 0 0 0 20 0", 10 * math.Pi, 0.05},
		{"small radii grow to reach", "M0 0 A1 1 0 0 1 20 0", 10 * math.Pi, 0.05},
		{"rotated ellipse quarter", "M0 0 A20 10 90 0 1 10 20", 24.2211, 0.05},
		{"zero radius arc is a line", "M0 0 A0 5 0 0 1 30 40", 50, 1e-9},
		{"arc to the current point", "M3 4 A5 5 0 0 1 3 4 L3 10", 6, 1e-9},
		{"packed numbers and flags", "M0,0L10-0l.5.5-.5-.5A5 5 0 0120 0", 10 + 2*math.Sqrt(0.5) + 5*math.Pi, 0.05},
		{"empty", "", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseSVG(tt.d)
			if err != nil {
				t.Fatalf("ParseSVG(%q): %v", tt.d, err)
			}
			if math.Abs(p.Length()-tt.want) > tt.tol {
				t.Errorf("Length() = %v, want %v", p.Length(), tt.want)
			}
		})
	}
}

func TestParseSVGError(t *testing.T) {
	for _, d := range []string{"M0 0 X10", "10 10", "M0", "M0 0 A10 10 0 2 1 20 0", "M0 0 L1e"} {
		if _, err := ParseSVG(d); err == nil {
			t.Errorf("ParseSVG(%q) accepted", d)
		}
	}
}

func TestArcStaysOnCircle(t *testing.T) {
	tests := []struct {
		name   string
		d      string
		centre gg.Point
		mid    gg.Point
	}{
		{"quarter", "M10 0 A10 10 0 0 1 0 10", gg.Pt(0, 0), gg.Pt(10/math.Sqrt2, 10/math.Sqrt2)},
		{"half", "M0 0 A10 10 0 0 1 20 0", gg.Pt(10, 0), gg.Pt(10, -10)},
		{"half other sweep", "M0 0 A10 10 0 0 0 20 0", gg.Pt(10, 0), gg.Pt(10, 10)},
		{"large three quarters", "M10 0 A10 10 0 1 0 0 10", gg.Pt(0, 0), gg.Pt(-10/math.Sqrt2, -10/math.Sqrt2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseSVG(tt.d)
			if err != nil {
				t.Fatal(err)
			}
			for _, pt := range Sample(p) {
				if r := pt.Distance(tt.centre); math.Abs(r-10) > 0.01 {
					t.Fatalf("sample %v is %v from the centre", pt, r)
				}
			}
			if got := p.PointAt(p.Length() / 2); got.Distance(tt.mid) > 0.01 {
				t.Errorf("midpoint %v, want %v", got, tt.mid)
			}
		})
	}
}

func TestParseSVGMatchesGGWithoutArcs(t *testing.T) {
	for _, d := range []string{
		"M10 80 Q 95 10 180 80 T 300 80 C 320 20 380 20 400 80",
		"m10 10 c10 0 20 10 20 20 s-10 20 -20 20 q-10 0 -10 -10 t0 -10 z",
		"M0 0 10 10 20 0 H40 V30 h-5 v-5 Z M50 50 l10 10",
	} {
		ours, err := ParseSVG(d)
		if err != nil {
			t.Fatal(err)
		}
		shape, err := gg.ParseSVGPath(d)
		if err != nil {
			t.Fatal(err)
		}
		if want := NewPath(shape).Length(); math.Abs(ours.Length()-want) > 1e-9 {
			t.Errorf("%q: Length() = %v, gg parses %v", d, ours.Length(), want)
		}
	}
}

func TestCurveLengthMatchesGG(t *testing.T) {
	d := "M10 80 Q 95 10 180 80 T 300 80 C 320 20 380 20 400 80"
	p, err := ParseSVG(d)
	if err != nil {
		t.Fatal(err)
	}
	want := p.Shape().Length(0.001)
	if math.Abs(p.Length()-want) > 0.05 {
		t.Errorf("Length() = %v, gg measures %v", p.Length(), want)
	}
}

func TestPointAt(t *testing.T) {
	p, err := ParseSVG("M0 0 L10 0 M100 100 L100 110")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		d    float64
		want gg.Point
	}{
		{-5, gg.Pt(0, 0)},
		{0, gg.Pt(0, 0)},
		{2.5, gg.Pt(2.5, 0)},
		{10, gg.Pt(10, 0)},
		{15, gg.Pt(100, 105)},
		{20, gg.Pt(100, 110)},
		{99, gg.Pt(100, 110)},
	}
	for _, tt := range tests {
		if got := p.PointAt(tt.d); got.Distance(tt.want) > 1e-9 {
			t.Errorf("PointAt(%v) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestPointAtOnCurveIsUniform(t *testing.T) {
	p, err := ParseSVG("M0 0 C10 0 20 0 30 0")
	if err != nil {
		t.Fatal(err)
	}
	if got := p.PointAt(15); got.Distance(gg.Pt(15, 0)) > 1e-6 {
		t.Errorf("PointAt(15) = %v", got)
	}
}

func TestSample(t *testing.T) {
	p := FromPoints([]gg.Point{gg.Pt(0, 0), gg.Pt(3, 0), gg.Pt(3, 2.5)})
	points := Sample(p)
	if len(points) != 6 {
		t.Fatalf("got %d samples, want 6", len(points))
	}
	want := []gg.Point{gg.Pt(0, 0), gg.Pt(1, 0), gg.Pt(2, 0), gg.Pt(3, 0), gg.Pt(3, 1), gg.Pt(3, 2)}
	for i := range want {
		if points[i].Distance(want[i]) > 1e-9 {
			t.Errorf("sample %d = %v, want %v", i, points[i], want[i])
		}
	}
}

func TestEmptyPath(t *testing.T) {
	p := FromPoints([]gg.Point{gg.Pt(4, 5)})
	if p.Length() != 0 {
		t.Errorf("Length() = %v", p.Length())
	}
	if got := p.PointAt(3); got != gg.Pt(4, 5) {
		t.Errorf("PointAt = %v", got)
	}
	if n := len(Sample(p)); n != 1 {
		t.Errorf("got %d samples", n)
	}
}
