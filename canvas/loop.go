package canvas

import (
	"context"
	"time"
)

// DefaultInterval is one frame at 60 frames per second.
const DefaultInterval = time.Second / 60

// Driver runs a host from a ticker, for backends without their own refresh
// callback. Input arrives on Events as functions applied between frames, so
// the frame state is only ever touched by the driver goroutine.
type Driver struct {
	Interval time.Duration
	Present  func() error
	Events   <-chan func(*Host)
}

// Run starts the host and renders frames until ctx is cancelled or Present
// fails. The host is stopped on return.
func (d Driver) Run(ctx context.Context, h *Host, s Surface) error {
	interval := d.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	h.Start()
	defer h.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-d.Events:
			if !ok {
				return nil
			}
			ev(h)
		case <-ticker.C:
			h.Step(s)
			if d.Present != nil {
				if err := d.Present(); err != nil {
					return err
				}
			}
		}
	}
}
