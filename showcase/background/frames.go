package background

import (
	"math/rand/v2"

	"github.com/OpticalFlyer/showcase/canvas"
)

// Frame tunables.
const (
	DefaultFrameCount   = 20
	DefaultMinLineWidth = 3
	DefaultMaxLineWidth = 10
	DefaultTransmission = 1.3

	frameInset             = 20
	frameHorizontalSqueeze = 0.83

	rateIdle   = 1.0
	rateGrow   = 1.2
	rateShrink = 0.9
	ratePulse  = 1.5
)

// frame is one nested rectangle.
type frame struct {
	lineWidth  float64
	opacity    float64
	maxOpacity float64
	rate       float64
	color      canvas.RGB
}

// Frames draws nested rectangles converging on the canvas centre. A pulse
// started on the outermost frame travels inwards as each frame grows past the
// transmission threshold.
type Frames struct {
	width, height int

	frames       []frame
	minLineWidth float64
	maxLineWidth float64
	transmission float64

	palettes []canvas.Palette
	selected int
	rng      *rand.Rand
}

var (
	_ canvas.Object       = (*Frames)(nil)
	_ canvas.Controllable = (*Frames)(nil)
	_ canvas.Paletted     = (*Frames)(nil)
)

// FramesConfig holds the initial Frames settings. Zero values take defaults.
type FramesConfig struct {
	Count        int
	MinLineWidth float64
	MaxLineWidth float64
	Transmission float64
}

// NewFrames builds frames for a width x height canvas. Frames start colored
// from the first palette; the "Next palette" control cycles through the rest.
func NewFrames(width, height int, cfg FramesConfig, palettes []canvas.Palette, rng *rand.Rand) *Frames {
	if cfg.Count == 0 {
		cfg.Count = DefaultFrameCount
	}
	if cfg.MinLineWidth == 0 {
		cfg.MinLineWidth = DefaultMinLineWidth
	}
	if cfg.MaxLineWidth == 0 {
		cfg.MaxLineWidth = DefaultMaxLineWidth
	}
	if cfg.Transmission == 0 {
		cfg.Transmission = DefaultTransmission
	}
	f := &Frames{
		width:        width,
		height:       height,
		minLineWidth: cfg.MinLineWidth,
		maxLineWidth: cfg.MaxLineWidth,
		transmission: cfg.Transmission,
		palettes:     palettes,
		rng:          rng,
	}
	f.rebuild(cfg.Count)
	return f
}

// rebuild recreates count idle frames, never fewer than two, colored from
// the selected palette.
func (f *Frames) rebuild(count int) {
	count = max(count, 2)
	f.frames = make([]frame, count)
	for i := range f.frames {
		f.frames[i] = frame{
			lineWidth:  f.minLineWidth,
			maxOpacity: canvas.MapToRange(1, 0, float64(i+1)/float64(count)),
			rate:       rateIdle,
			color:      f.palettes[f.selected].Random(f.rng),
		}
	}
}

// Pulse starts a wave on the outermost frame.
func (f *Frames) Pulse() {
	last := &f.frames[len(f.frames)-1]
	last.rate = ratePulse
	last.opacity = 1
}

// NextPalette pulses, advances the palette and recolors every frame.
func (f *Frames) NextPalette() {
	f.Pulse()
	f.SetPalette(f.selected + 1)
}

// Palette returns the index of the selected palette.
func (f *Frames) Palette() int {
	return f.selected
}

// SetPalette selects palette i, wrapping around, and recolors every frame.
func (f *Frames) SetPalette(i int) {
	n := len(f.palettes)
	f.selected = (i%n + n) % n
	pal := f.palettes[f.selected]
	for j := range f.frames {
		f.frames[j].color = pal.Random(f.rng)
	}
}

// Len returns the number of frames.
func (f *Frames) Len() int {
	return len(f.frames)
}

func (f *Frames) Update(*canvas.FrameState) {
	for i := len(f.frames) - 1; i >= 0; i-- {
		fr := &f.frames[i]
		if fr.lineWidth > f.maxLineWidth {
			fr.rate = rateShrink
		}
		if fr.lineWidth < f.minLineWidth {
			fr.rate = rateIdle
			fr.lineWidth = f.minLineWidth
			fr.opacity = 0
		}
		fr.lineWidth *= fr.rate

		if i == 0 {
			continue
		}
		next := &f.frames[i-1]
		if next.rate == rateIdle && fr.lineWidth > f.minLineWidth*f.transmission {
			next.rate = rateGrow
			next.opacity = next.maxOpacity
		}
	}
}

// rect returns the geometry of frame i.
func (f *Frames) rect(i int) (x, y, w, h float64) {
	finalX := float64(f.width)/2 - 1
	finalY := float64(f.height)/2 - 1
	progress := float64(i) / float64(len(f.frames)-1)

	x = canvas.MapToRange(frameInset, finalX, progress*frameHorizontalSqueeze)
	y = canvas.MapToRange(frameInset, finalY, progress)
	return x, y, float64(f.width) - x*2, float64(f.height) - y*2
}

func (f *Frames) Draw(s canvas.Surface) {
	for i, fr := range f.frames {
		x, y, w, h := f.rect(i)
		s.StrokeRect(x, y, w, h, fr.lineWidth, fr.color, fr.opacity)
	}
}

func (f *Frames) Destroy() {}

func (f *Frames) Controls() []canvas.Control {
	return []canvas.Control{
		{
			Kind: canvas.ControlRange, Key: "count", Label: "Rects count",
			Min: 3, Max: 30, Step: 1, Value: float64(len(f.frames)),
			OnChange: func(v float64) { f.rebuild(int(v)) },
		},
		{
			Kind: canvas.ControlRange, Key: "max-line-width", Label: "Maximum line width",
			Min: 8, Max: 50, Step: 1, Value: f.maxLineWidth,
			OnChange: func(v float64) { f.maxLineWidth = v },
		},
		{
			Kind: canvas.ControlRange, Key: "min-line-width", Label: "Minimum line width",
			Min: 1, Max: 20, Step: 1, Value: f.minLineWidth,
			OnChange: func(v float64) {
				f.minLineWidth = v
				f.Pulse()
			},
		},
		{
			Kind: canvas.ControlRange, Key: "transmission", Label: "Transmission threshold",
			Min: 1, Max: 3, Step: 0.1, Value: f.transmission,
			OnChange: func(v float64) { f.transmission = v },
		},
		{
			Kind: canvas.ControlButton, Key: "palette", Label: "Next palette",
			OnClick: f.NextPalette,
		},
	}
}
