package canvas

// Host owns a showcase's frame state and runs its objects once per frame.
type Host struct {
	Name string

	state   *FrameState
	objects []Object
	clear   bool
	running bool
	closed  bool
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithClear makes the host clear the surface before every frame. Without it
// frames accumulate on top of each other.
func WithClear(clear bool) HostOption {
	return func(h *Host) {
		h.clear = clear
	}
}

// WithName labels the host.
func WithName(name string) HostOption {
	return func(h *Host) {
		h.Name = name
	}
}

// NewHost creates a stopped host for a canvas of the given size.
func NewHost(width, height int, opts ...HostOption) *Host {
	h := &Host{state: NewFrameState(width, height)}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Add registers objects. Update and draw follow registration order.
func (h *Host) Add(objects ...Object) {
	h.objects = append(h.objects, objects...)
}

// Objects returns the registered objects.
func (h *Host) Objects() []Object {
	return h.objects
}

// State returns the shared frame state.
func (h *Host) State() *FrameState {
	return h.state
}

// Controls collects the controls of every controllable object.
func (h *Host) Controls() []*Control {
	var controls []*Control
	for _, obj := range h.objects {
		c, ok := obj.(Controllable)
		if !ok {
			continue
		}
		for _, ctl := range c.Controls() {
			ctl := ctl
			controls = append(controls, &ctl)
		}
	}
	return controls
}

// Start begins running frames. Starting a closed host has no effect.
func (h *Host) Start() {
	if h.closed {
		return
	}
	h.running = true
}

// Stop pauses the frame loop. Object state is kept.
func (h *Host) Stop() {
	h.running = false
}

// Running reports whether Step renders frames.
func (h *Host) Running() bool {
	return h.running
}

// Step runs one frame: update every object, draw every object, advance the
// tick counter. It does nothing while the host is stopped.
func (h *Host) Step(s Surface) {
	if !h.running {
		return
	}
	if h.clear {
		s.Clear()
	}
	for _, obj := range h.objects {
		obj.Update(h.state)
	}
	for _, obj := range h.objects {
		obj.Draw(s)
	}
	h.state.Ticks++
}

// MouseMove records the pointer given in page coordinates.
func (h *Host) MouseMove(clientX, clientY float64) {
	h.state.Mouse.X = clientX - h.state.Bounds.Left
	h.state.Mouse.Y = clientY - h.state.Bounds.Top
}

// Scroll refreshes the canvas bounding rect. The pointer keeps its canvas
// position until the next move.
func (h *Host) Scroll(left, top float64) {
	h.state.Bounds = Rect{Left: left, Top: top}
}

// Click forwards a page click to every object that handles clicks.
func (h *Host) Click() {
	for _, obj := range h.objects {
		if c, ok := obj.(Clicker); ok {
			c.Click()
		}
	}
}

// Close stops the host and destroys its objects. It is idempotent.
func (h *Host) Close() {
	if h.closed {
		return
	}
	h.Stop()
	h.closed = true
	for _, obj := range h.objects {
		obj.Destroy()
	}
}
