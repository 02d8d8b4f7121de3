package canvas

import "github.com/gogpu/gg"

// Surface is the 2D drawing backend canvas objects render through.
// Alpha values outside [0,1] are clamped by implementations.
type Surface interface {
	Size() (width, height int)
	Clear()
	FillRect(x, y, w, h float64, c RGB, alpha float64)
	StrokeRect(x, y, w, h, lineWidth float64, c RGB, alpha float64)
	StrokeCubic(p0, p1, p2, p3 gg.Point, lineWidth float64, c RGB)
	StrokePolyline(points []gg.Point, lineWidth float64, c RGB, alpha float64)
}
