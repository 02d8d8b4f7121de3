// Package geo projects geographic coordinates onto Web Mercator and fits
// projected outlines onto a canvas.
package geo

import (
	"math"

	"github.com/gogpu/gg"
)

// Constants for Web Mercator projection
const (
	maxLat    = 85.0511 // arctan(sinh(π))
	minLat    = -85.0511
	maxMeters = 20037508.34
	degToRad  = math.Pi / 180.0

	// MaxZoom is the deepest zoom level with a precomputed scale.
	MaxZoom = 21
)

// pow2 contains pre-calculated powers of 2 for zoom levels 0-21
var pow2 = [MaxZoom + 1]float64{
	1, 2, 4, 8, 16, 32, 64, 128, 256, 512,
	1024, 2048, 4096, 8192, 16384, 32768, 65536,
	131072, 262144, 524288, 1048576, 2097152,
}

func scale(zoom int) float64 {
	if zoom < 0 {
		zoom = 0
	} else if zoom > MaxZoom {
		zoom = MaxZoom
	}
	return pow2[zoom]
}

// LatLon projects WGS84 degrees onto Web Mercator world coordinates at zoom,
// where the whole world spans 2^zoom units and y grows southwards. Latitude
// is clamped to the Mercator limits.
func LatLon(lat, lon float64, zoom int) gg.Point {
	n := scale(zoom)
	x := (lon + 180.0) * (n / 360.0)

	if lat >= maxLat {
		return gg.Pt(x, 0)
	}
	if lat <= minLat {
		return gg.Pt(x, n)
	}

	sinLat := math.Sin(lat * degToRad)
	y := n * (0.5 - 0.25*math.Log((1.0+sinLat)/(1.0-sinLat))/math.Pi)
	return gg.Pt(x, y)
}

// Meters projects EPSG:3857 metres onto world coordinates at zoom.
func Meters(x, y float64, zoom int) gg.Point {
	n := scale(zoom)
	nx := (x + maxMeters) / (2 * maxMeters)
	ny := 1 - ((y + maxMeters) / (2 * maxMeters))
	return gg.Pt(nx*n, ny*n)
}
