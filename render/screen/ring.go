package screen

import (
	earcut "github.com/flywave/go-earcut"
)

// rectRing triangulates the band covered by stroking the rectangle x,y,w,h
// with a centred line of width lw. The outline is returned as flat x,y pairs
// with triangle indices into it. A line wide enough to swallow the hole
// yields the outer rectangle alone.
func rectRing(x, y, w, h, lw float64) ([]float64, []int, error) {
	half := lw / 2
	outer := []float64{
		x - half, y - half,
		x + w + half, y - half,
		x + w + half, y + h + half,
		x - half, y + h + half,
	}
	if w <= lw || h <= lw {
		tris, err := earcut.Earcut(outer, nil, 2)
		return outer, tris, err
	}

	data := append(outer,
		x+half, y+half,
		x+half, y+h-half,
		x+w-half, y+h-half,
		x+w-half, y+half,
	)
	tris, err := earcut.Earcut(data, []int{4}, 2)
	return data, tris, err
}

// triangleArea sums the areas of the triangles, used to sanity check
// triangulations.
func triangleArea(data []float64, tris []int) float64 {
	var area float64
	for i := 0; i+2 < len(tris); i += 3 {
		ax, ay := data[tris[i]*2], data[tris[i]*2+1]
		bx, by := data[tris[i+1]*2], data[tris[i+1]*2+1]
		cx, cy := data[tris[i+2]*2], data[tris[i+2]*2+1]
		a := ((bx-ax)*(cy-ay) - (cx-ax)*(by-ay)) / 2
		if a < 0 {
			a = -a
		}
		area += a
	}
	return area
}
