package autopath

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/jonas-p/go-shp"

	"github.com/OpticalFlyer/showcase/geo"
)

// ErrNoShape is returned when a shapefile holds no line or polygon.
var ErrNoShape = errors.New("no polyline or polygon in shapefile")

// ShapefileOptions controls how a shapefile outline is placed on a canvas.
type ShapefileOptions struct {
	// Mercator marks coordinates as EPSG:3857 metres instead of lon/lat.
	Mercator bool
	Width    float64
	Height   float64
	Margin   float64
}

// LoadShapefile reads the first part of the first PolyLine or Polygon in
// file, projects it onto Web Mercator and fits it to the canvas. Polygon
// rings are closed.
func LoadShapefile(file string, opts ShapefileOptions) (*Path, error) {
	r, err := shp.Open(file)
	if err != nil {
		return nil, fmt.Errorf("open shapefile: %w", err)
	}
	defer r.Close()

	for r.Next() {
		_, shape := r.Shape()
		var (
			parts  []int32
			points []shp.Point
			closed bool
		)
		switch s := shape.(type) {
		case *shp.PolyLine:
			parts, points = s.Parts, s.Points
		case *shp.Polygon:
			parts, points, closed = s.Parts, s.Points, true
		default:
			continue
		}

		ring := firstPart(parts, points)
		if len(ring) < 2 {
			continue
		}
		projected := make([]gg.Point, len(ring))
		for i, p := range ring {
			if opts.Mercator {
				projected[i] = geo.Meters(p.X, p.Y, 0)
			} else {
				projected[i] = geo.LatLon(p.Y, p.X, 0)
			}
		}
		fitted := geo.Fit(projected, opts.Width, opts.Height, opts.Margin)
		if closed && fitted[0] != fitted[len(fitted)-1] {
			fitted = append(fitted, fitted[0])
		}
		return FromPoints(fitted), nil
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("read shapefile: %w", err)
	}
	return nil, fmt.Errorf("%s: %w", file, ErrNoShape)
}

func firstPart(parts []int32, points []shp.Point) []shp.Point {
	if len(parts) < 2 {
		return points
	}
	return points[parts[0]:parts[1]]
}
