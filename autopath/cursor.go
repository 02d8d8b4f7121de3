package autopath

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/gogpu/gg"

	"github.com/OpticalFlyer/showcase/canvas"
)

// Cursor speed range in path units per frame.
const (
	MinSpeed = 1
	MaxSpeed = 64
)

// ErrPathTooShort is returned for paths shorter than one unit.
var ErrPathTooShort = errors.New("path shorter than one unit")

// Cursor walks a sampled path, looping at the end, with a speed taken from an
// expanded speed map at its current position.
type Cursor struct {
	points     []gg.Point
	speeds     []float64
	pos        int
	speed      int
	randomness float64
	rng        *rand.Rand
	current    gg.Point
}

// NewCursor samples path and expands stops over it. rng drives the jitter
// added to every position after the first.
func NewCursor(path *Path, stops []Stop, randomness float64, rng *rand.Rand) (*Cursor, error) {
	points := Sample(path)
	n := len(points) - 1
	if n < 1 {
		return nil, ErrPathTooShort
	}
	speeds, err := ExpandSpeedMap(stops, n)
	if err != nil {
		return nil, fmt.Errorf("expand speed map: %w", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}
	return &Cursor{
		points:     points,
		speeds:     speeds,
		speed:      int(math.Round(canvas.MapToRange(MinSpeed, MaxSpeed, speeds[0]))),
		randomness: randomness,
		rng:        rng,
		current:    points[0],
	}, nil
}

// Point returns the current, jittered position.
func (c *Cursor) Point(*canvas.FrameState) gg.Point {
	return c.current
}

// Advance moves the cursor by its speed, wrapping at the end of the path,
// then takes the speed and jitter for the new position.
func (c *Cursor) Advance() {
	c.pos = (c.pos + c.speed) % len(c.speeds)
	c.speed = int(math.Floor(canvas.MapToRange(MinSpeed, MaxSpeed, c.speeds[c.pos])))

	p := c.points[c.pos]
	c.current = gg.Pt(
		p.X+c.rng.Float64()*c.randomness-c.randomness/2,
		p.Y+c.rng.Float64()*c.randomness-c.randomness/2,
	)
}

// Position returns the index into the sampled path.
func (c *Cursor) Position() int { return c.pos }

// Speed returns the step taken by the next Advance.
func (c *Cursor) Speed() int { return c.speed }

// Len returns the sampled path length.
func (c *Cursor) Len() int { return len(c.speeds) }

// Samples returns the sampled path points.
func (c *Cursor) Samples() []gg.Point { return c.points }

// Randomness returns the jitter span.
func (c *Cursor) Randomness() float64 { return c.randomness }

// SetRandomness sets the jitter span. Negative values count as zero.
func (c *Cursor) SetRandomness(v float64) { c.randomness = math.Max(v, 0) }
