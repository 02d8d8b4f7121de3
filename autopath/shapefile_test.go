package autopath

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/jonas-p/go-shp"

	"github.com/OpticalFlyer/showcase/geo"
)

func writeShapefile(t *testing.T, kind shp.ShapeType, shapes ...shp.Shape) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "route.shp")
	w, err := shp.Create(file, kind)
	if err != nil {
		t.Fatalf("create shapefile: %v", err)
	}
	for _, s := range shapes {
		w.Write(s)
	}
	w.Close()
	return file
}

func TestLoadShapefilePolyLine(t *testing.T) {
	line := shp.NewPolyLine([][]shp.Point{{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 5}}})
	file := writeShapefile(t, shp.POLYLINE, line)

	p, err := LoadShapefile(file, ShapefileOptions{Width: 200, Height: 100, Margin: 10})
	if err != nil {
		t.Fatal(err)
	}
	start, end := p.PointAt(0), p.PointAt(p.Length())

	// The outline is wider than tall but the canvas is wider still, so the
	// height fills the space between the margins. North is up.
	if math.Abs(start.Y-90) > 1e-6 || math.Abs(end.Y-10) > 1e-6 {
		t.Errorf("start %v end %v not fitted between y=10 and y=90", start, end)
	}
	b := geo.BoundsOf(Sample(p))
	if b.Min.X < 10-1e-6 || b.Max.X > 190+1e-6 {
		t.Errorf("outline %+v escapes the margin", b)
	}
	if p.Length() <= 0 {
		t.Errorf("empty path")
	}
}

func TestLoadShapefileMercatorPolygon(t *testing.T) {
	ring := shp.Polygon(*shp.NewPolyLine([][]shp.Point{{
		{X: 0, Y: 0}, {X: 1000, Y: 0}, {X: 1000, Y: 1000}, {X: 0, Y: 1000},
	}}))
	file := writeShapefile(t, shp.POLYGON, &ring)

	p, err := LoadShapefile(file, ShapefileOptions{Mercator: true, Width: 120, Height: 120, Margin: 10})
	if err != nil {
		t.Fatal(err)
	}
	// A closed 100x100 square.
	if math.Abs(p.Length()-400) > 1e-6 {
		t.Errorf("Length() = %v, want 400", p.Length())
	}
	if p.PointAt(0).Distance(p.PointAt(p.Length())) > 1e-9 {
		t.Errorf("ring not closed")
	}
}

func TestLoadShapefileNoShape(t *testing.T) {
	file := writeShapefile(t, shp.POINT, &shp.Point{X: 1, Y: 2})
	if _, err := LoadShapefile(file, ShapefileOptions{Width: 10, Height: 10}); !errors.Is(err, ErrNoShape) {
		t.Errorf("got %v, want ErrNoShape", err)
	}
	if _, err := LoadShapefile(filepath.Join(t.TempDir(), "missing.shp"), ShapefileOptions{}); err == nil {
		t.Error("missing file accepted")
	}
}
