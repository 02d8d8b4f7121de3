package autopath

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gogpu/gg"
)

// pathReader builds a gg path from SVG path data. Arcs become cubics with
// handle length 4/3·tan(θ/4) per segment of at most a quarter turn.
type pathReader struct {
	d    string
	pos  int
	path *gg.Path

	cur, start gg.Point

	// last control point of the previous C/S or Q/T command
	ctrl     gg.Point
	ctrlKind byte
}

func parsePathData(d string) (*gg.Path, error) {
	r := &pathReader{d: d, path: gg.NewPath()}
	for {
		r.skipSpace()
		if r.pos >= len(r.d) {
			return r.path, nil
		}
		cmd := r.d[r.pos]
		r.pos++
		if err := r.command(cmd); err != nil {
			return nil, fmt.Errorf("%c at %d: %w", cmd, r.pos-1, err)
		}
	}
}

func (r *pathReader) command(cmd byte) error {
	rel := cmd >= 'a' && cmd <= 'z'
	switch cmd {
	case 'Z', 'z':
		r.path.Close()
		r.cur = r.start
		r.ctrlKind = 0
		return nil
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's', 'Q', 'q', 'T', 't', 'A', 'a':
	default:
		return fmt.Errorf("unknown command")
	}
	for first := true; first || r.moreNumbers(); first = false {
		var err error
		switch cmd {
		case 'M', 'm':
			err = r.moveTo(rel, first)
		case 'L', 'l':
			err = r.lineTo(rel)
		case 'H', 'h':
			err = r.horizontal(rel)
		case 'V', 'v':
			err = r.vertical(rel)
		case 'C', 'c':
			err = r.cubic(rel)
		case 'S', 's':
			err = r.smoothCubic(rel)
		case 'Q', 'q':
			err = r.quad(rel)
		case 'T', 't':
			err = r.smoothQuad(rel)
		case 'A', 'a':
			err = r.arc(rel)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// moveTo starts a subpath. Further pairs after the first are lines.
func (r *pathReader) moveTo(rel, first bool) error {
	p, err := r.point(rel)
	if err != nil {
		return err
	}
	if !first {
		r.line(p)
		return nil
	}
	r.path.MoveTo(p.X, p.Y)
	r.cur, r.start = p, p
	r.ctrlKind = 0
	return nil
}

func (r *pathReader) lineTo(rel bool) error {
	p, err := r.point(rel)
	if err != nil {
		return err
	}
	r.line(p)
	return nil
}

func (r *pathReader) horizontal(rel bool) error {
	x, err := r.number()
	if err != nil {
		return err
	}
	if rel {
		x += r.cur.X
	}
	r.line(gg.Pt(x, r.cur.Y))
	return nil
}

func (r *pathReader) vertical(rel bool) error {
	y, err := r.number()
	if err != nil {
		return err
	}
	if rel {
		y += r.cur.Y
	}
	r.line(gg.Pt(r.cur.X, y))
	return nil
}

func (r *pathReader) line(p gg.Point) {
	r.path.LineTo(p.X, p.Y)
	r.cur = p
	r.ctrlKind = 0
}

func (r *pathReader) cubic(rel bool) error {
	pts, err := r.points(rel, 3)
	if err != nil {
		return err
	}
	r.cubicTo(pts[0], pts[1], pts[2])
	return nil
}

func (r *pathReader) smoothCubic(rel bool) error {
	c1 := r.reflect('C')
	pts, err := r.points(rel, 2)
	if err != nil {
		return err
	}
	r.cubicTo(c1, pts[0], pts[1])
	return nil
}

func (r *pathReader) cubicTo(c1, c2, end gg.Point) {
	r.path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
	r.cur, r.ctrl, r.ctrlKind = end, c2, 'C'
}

func (r *pathReader) quad(rel bool) error {
	pts, err := r.points(rel, 2)
	if err != nil {
		return err
	}
	r.quadTo(pts[0], pts[1])
	return nil
}

func (r *pathReader) smoothQuad(rel bool) error {
	c := r.reflect('Q')
	end, err := r.point(rel)
	if err != nil {
		return err
	}
	r.quadTo(c, end)
	return nil
}

func (r *pathReader) quadTo(c, end gg.Point) {
	r.path.QuadraticTo(c.X, c.Y, end.X, end.Y)
	r.cur, r.ctrl, r.ctrlKind = end, c, 'Q'
}

// reflect mirrors the previous control point through the current point when
// the previous command was of the same kind.
func (r *pathReader) reflect(kind byte) gg.Point {
	if r.ctrlKind != kind {
		return r.cur
	}
	return gg.Pt(2*r.cur.X-r.ctrl.X, 2*r.cur.Y-r.ctrl.Y)
}

func (r *pathReader) arc(rel bool) error {
	var params [3]float64
	for i := range params {
		v, err := r.number()
		if err != nil {
			return err
		}
		params[i] = v
	}
	large, err := r.flag()
	if err != nil {
		return err
	}
	sweep, err := r.flag()
	if err != nil {
		return err
	}
	end, err := r.point(rel)
	if err != nil {
		return err
	}
	r.arcTo(params[0], params[1], params[2]*math.Pi/180, large, sweep, end)
	r.cur = end
	r.ctrlKind = 0
	return nil
}

// arcTo converts an endpoint arc to centre form and emits one cubic per
// quarter turn or less.
func (r *pathReader) arcTo(rx, ry, phi float64, large, sweep bool, end gg.Point) {
	from := r.cur
	if from == end {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		r.path.LineTo(end.X, end.Y)
		return
	}
	cos, sin := math.Cos(phi), math.Sin(phi)

	dx, dy := (from.X-end.X)/2, (from.Y-end.Y)/2
	x1 := cos*dx + sin*dy
	y1 := -sin*dx + cos*dy

	// Radii too small to reach the endpoint are scaled up.
	if l := x1*x1/(rx*rx) + y1*y1/(ry*ry); l > 1 {
		rx *= math.Sqrt(l)
		ry *= math.Sqrt(l)
	}
	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*y1*y1 - ry2*x1*x1
	den := rx2*y1*y1 + ry2*x1*x1
	k := 0.0
	if den > 0 {
		k = math.Sqrt(math.Max(0, num/den))
	}
	if large == sweep {
		k = -k
	}
	cx1, cy1 := k*rx*y1/ry, -k*ry*x1/rx
	cx := cos*cx1 - sin*cy1 + (from.X+end.X)/2
	cy := sin*cx1 + cos*cy1 + (from.Y+end.Y)/2

	theta := math.Atan2((y1-cy1)/ry, (x1-cx1)/rx)
	delta := math.Atan2((-y1-cy1)/ry, (-x1-cx1)/rx) - theta
	switch {
	case sweep && delta < 0:
		delta += 2 * math.Pi
	case !sweep && delta > 0:
		delta -= 2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(delta)/(math.Pi/2) - 1e-9))
	n = max(n, 1)
	step := delta / float64(n)
	handle := 4.0 / 3 * math.Tan(step/4)

	onEllipse := func(a float64) (gg.Point, gg.Point) {
		ca, sa := math.Cos(a), math.Sin(a)
		x, y := rx*ca, ry*sa
		tx, ty := -rx*sa, ry*ca
		p := gg.Pt(cos*x-sin*y+cx, sin*x+cos*y+cy)
		t := gg.Pt(cos*tx-sin*ty, sin*tx+cos*ty)
		return p, t
	}
	p0, t0 := onEllipse(theta)
	for i := 1; i <= n; i++ {
		p1, t1 := onEllipse(theta + float64(i)*step)
		if i == n {
			p1 = end
		}
		r.path.CubicTo(
			p0.X+handle*t0.X, p0.Y+handle*t0.Y,
			p1.X-handle*t1.X, p1.Y-handle*t1.Y,
			p1.X, p1.Y,
		)
		p0, t0 = p1, t1
	}
}

func (r *pathReader) point(rel bool) (gg.Point, error) {
	x, err := r.number()
	if err != nil {
		return gg.Point{}, err
	}
	y, err := r.number()
	if err != nil {
		return gg.Point{}, err
	}
	if rel {
		x += r.cur.X
		y += r.cur.Y
	}
	return gg.Pt(x, y), nil
}

// points reads n points that are all relative to the same current point.
func (r *pathReader) points(rel bool, n int) ([]gg.Point, error) {
	pts := make([]gg.Point, n)
	for i := range pts {
		p, err := r.point(rel)
		if err != nil {
			return nil, err
		}
		pts[i] = p
	}
	return pts, nil
}

func (r *pathReader) skipSpace() {
	for r.pos < len(r.d) {
		switch r.d[r.pos] {
		case ' ', '\t', '\r', '\n', ',':
			r.pos++
		default:
			return
		}
	}
}

func (r *pathReader) moreNumbers() bool {
	r.skipSpace()
	if r.pos >= len(r.d) {
		return false
	}
	c := r.d[r.pos]
	return c == '-' || c == '+' || c == '.' || isDigit(c)
}

// number reads one number. A sign or a second decimal point ends the
// previous number, so "10-20" and ".5.5" are two numbers each.
func (r *pathReader) number() (float64, error) {
	r.skipSpace()
	start := r.pos
	if r.pos < len(r.d) && (r.d[r.pos] == '-' || r.d[r.pos] == '+') {
		r.pos++
	}
	digits := r.digits()
	if r.pos < len(r.d) && r.d[r.pos] == '.' {
		r.pos++
		digits = r.digits() || digits
	}
	if !digits {
		return 0, fmt.Errorf("expected number at %d", start)
	}
	if r.pos < len(r.d) && (r.d[r.pos] == 'e' || r.d[r.pos] == 'E') {
		mark := r.pos
		r.pos++
		if r.pos < len(r.d) && (r.d[r.pos] == '-' || r.d[r.pos] == '+') {
			r.pos++
		}
		if !r.digits() {
			r.pos = mark
		}
	}
	v, err := strconv.ParseFloat(r.d[start:r.pos], 64)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func (r *pathReader) digits() bool {
	start := r.pos
	for r.pos < len(r.d) && isDigit(r.d[r.pos]) {
		r.pos++
	}
	return r.pos > start
}

// flag reads an arc flag, which may touch the next value without a separator.
func (r *pathReader) flag() (bool, error) {
	r.skipSpace()
	if r.pos < len(r.d) {
		switch r.d[r.pos] {
		case '0':
			r.pos++
			return false, nil
		case '1':
			r.pos++
			return true, nil
		}
	}
	return false, fmt.Errorf("expected arc flag at %d", r.pos)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
