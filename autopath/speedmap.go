package autopath

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/OpticalFlyer/showcase/canvas"
)

var (
	// ErrInvalidSpeedMap is returned for malformed speed map strings.
	ErrInvalidSpeedMap = errors.New("invalid speed map")
	// ErrBadIndex is returned when a speed map stop expands outside the
	// speed array.
	ErrBadIndex = errors.New("bad speed map index")
)

// Stop is a speed map entry: a relative position along the path in [0, 1]
// and the relative speed there. Speed 0 maps to MinSpeed and 1 to MaxSpeed;
// larger speeds extrapolate past MaxSpeed.
type Stop struct {
	Position float64
	Speed    float64
}

// ParseSpeedMap parses "position:speed;position:speed;...". Fields after the
// speed are ignored. The map always starts at position 0 and ends at
// position 1: a {0, 0} stop is prepended and the last speed is carried to 1
// when missing.
func ParseSpeedMap(s string) ([]Stop, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidSpeedMap)
	}

	var stops []Stop
	for _, part := range strings.Split(s, ";") {
		fields := strings.Split(part, ":")
		if len(fields) < 2 {
			return nil, fmt.Errorf("%w: stop %q is not position:speed", ErrInvalidSpeedMap, part)
		}
		var values [2]float64
		for i, field := range fields[:2] {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidSpeedMap, field)
			}
			values[i] = v
		}
		stop := Stop{Position: values[0], Speed: values[1]}
		if stop.Position < 0 || stop.Position > 1 {
			return nil, fmt.Errorf("%w: position %v outside [0, 1]", ErrInvalidSpeedMap, stop.Position)
		}
		// A negative speed would stall or reverse the cursor.
		if stop.Speed < 0 {
			return nil, fmt.Errorf("%w: negative speed %v", ErrInvalidSpeedMap, stop.Speed)
		}
		stops = append(stops, stop)
	}

	if stops[0].Position != 0 {
		stops = append([]Stop{{Position: 0, Speed: 0}}, stops...)
	}
	if last := stops[len(stops)-1]; last.Position != 1 {
		stops = append(stops, Stop{Position: 1, Speed: last.Speed})
	}
	return stops, nil
}

// String formats stops back into speed map syntax.
func (s Stop) String() string {
	return strconv.FormatFloat(s.Position, 'g', -1, 64) + ":" + strconv.FormatFloat(s.Speed, 'g', -1, 64)
}

// ExpandSpeedMap interpolates stops into one speed per unit of path length.
//
// Each pair of stops fills indices floor(n*cur) through floor(n*next)-1,
// blending linearly from the first speed to the second.
func ExpandSpeedMap(stops []Stop, n int) ([]float64, error) {
	speeds := make([]float64, n)
	for i := 0; i+1 < len(stops); i++ {
		cur, next := stops[i], stops[i+1]
		start := int(math.Floor(float64(n) * cur.Position))
		segLen := int(math.Floor(float64(n)*next.Position)) - start - 1

		for j := 0; j <= segLen; j++ {
			idx := start + j
			if idx < 0 || idx >= n {
				return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrBadIndex, idx, n)
			}
			progress := 0.0
			if segLen > 0 {
				progress = float64(j) / float64(segLen)
			}
			speeds[idx] = canvas.MapToRange(cur.Speed, next.Speed, progress)
		}
	}
	return speeds, nil
}
