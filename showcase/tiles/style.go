package tiles

import (
	"fmt"
	"strings"

	"github.com/OpticalFlyer/showcase/canvas"
)

// Style selects how tiles react to the reference point.
type Style int

const (
	// Hover brightens and shrinks tiles under the pointer, then lets them
	// fade back slowly.
	Hover Style = iota
	// Pulse flashes tiles under the pointer at full opacity.
	Pulse
	// Trail lights tiles in palette colors around a point travelling along
	// an auto path.
	Trail
)

// String returns the config name of the style.
func (s Style) String() string {
	switch s {
	case Hover:
		return "hover"
	case Pulse:
		return "pulse"
	case Trail:
		return "trail"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// ParseStyle resolves a config name.
func ParseStyle(name string) (Style, error) {
	switch strings.ToLower(name) {
	case "hover", "":
		return Hover, nil
	case "pulse":
		return Pulse, nil
	case "trail":
		return Trail, nil
	}
	return 0, fmt.Errorf("unknown tile style %q", name)
}

// Rest is the state tiles settle back to away from the reference point.
type Rest struct {
	Color      canvas.RGB
	Opacity    float64
	Padding    float64
	EffectSize float64
}

// Radius is the distance within which tiles react.
func (r Rest) Radius() float64 {
	return r.EffectSize * 20
}

// Rest returns the resting state of the style.
func (s Style) Rest() Rest {
	switch s {
	case Hover:
		return Rest{Color: canvas.Black, Opacity: 0.7, Padding: 0.2, EffectSize: 5}
	case Pulse:
		return Rest{Color: canvas.Black, Opacity: 0.5, Padding: 1, EffectSize: 3}
	case Trail:
		return Rest{Color: canvas.Black, Opacity: 0.1, Padding: 0.2, EffectSize: 5}
	}
	panic(fmt.Sprintf("tiles: unhandled style %v", s))
}

// Bounds returns the opacity and padding range a tile of this style can take.
func (s Style) Bounds() (minOpacity, maxOpacity, minPadding, maxPadding float64) {
	switch s {
	case Hover:
		return 0.7, 1, 0.2, 5
	case Pulse:
		return 0.5, 1, 1, 4
	case Trail:
		return 0.1, 1, -1, 11.2
	}
	panic(fmt.Sprintf("tiles: unhandled style %v", s))
}

// react applies the effect to a tile at distance d from the reference point.
func (s Style) react(t *Tile, d float64, rest Rest) {
	radius := rest.Radius()
	switch s {
	case Hover:
		if d < radius {
			t.Opacity = 1 + max(-d/100, -0.25)
			t.Padding = 5 + max(-d/20, -4.2)
			return
		}
		t.Opacity = fadeLinear(t.Opacity, 0.005, rest.Opacity)
		t.Padding = fadeExp(t.Padding, 0.99, rest.Padding)

	case Pulse:
		t.Opacity = fadeLinear(t.Opacity, 0.01, rest.Opacity)
		t.Padding = fadeLinear(t.Padding, 0.1, rest.Padding)
		if d < radius {
			t.Opacity = min(1+d/100, 1)
			t.Padding = 4
		}

	case Trail:
		if d < radius {
			t.Opacity = 1 + max(-d/80, -0.87)
			t.Padding = -1 + min(d/5, 12.2)
			t.Color = t.Hovered
			return
		}
		t.Opacity = fadeLinear(t.Opacity, 0.05, rest.Opacity)
		t.Padding = fadeExp(t.Padding, 0.98, rest.Padding)
		t.Color.R = fadeChannel(t.Color.R, 4, rest.Color.R)
		t.Color.G = fadeChannel(t.Color.G, 4, rest.Color.G)
		t.Color.B = fadeChannel(t.Color.B, 4, rest.Color.B)

	default:
		panic(fmt.Sprintf("tiles: unhandled style %v", s))
	}
}

// fadeLinear lowers v by step without passing rest. Values at or below rest
// are left alone.
func fadeLinear(v, step, rest float64) float64 {
	if v <= rest {
		return v
	}
	return max(v-step, rest)
}

// fadeExp scales v by factor without passing rest.
func fadeExp(v, factor, rest float64) float64 {
	if v <= rest {
		return v
	}
	return max(v*factor, rest)
}

func fadeChannel(v, step, rest int) int {
	if v <= rest {
		return v
	}
	return max(v-step, rest)
}
