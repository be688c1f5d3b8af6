package ebitenhost

import "math"

// DefaultClickDeadZone is how far, in pixels, the pointer may travel between
// press and release and still count as a click.
const DefaultClickDeadZone = 4.0

// pointer turns raw press state into clicks. A press that moves beyond the
// dead zone becomes a drag and produces no click on release.
type pointer struct {
	deadZone float64

	down     bool
	startX   float64
	startY   float64
	dragging bool
}

// update feeds one sample and reports a click at the press position when a
// press is released without dragging.
func (p *pointer) update(x, y float64, pressed bool) (cx, cy float64, click bool) {
	switch {
	case pressed && !p.down:
		p.down = true
		p.startX, p.startY = x, y
		p.dragging = false
	case pressed && p.down:
		if !p.dragging && math.Hypot(x-p.startX, y-p.startY) > p.deadZone {
			p.dragging = true
		}
	case !pressed && p.down:
		p.down = false
		if !p.dragging {
			return p.startX, p.startY, true
		}
		p.dragging = false
	}
	return 0, 0, false
}

// syntheticEvent is one injected pointer sample in screen coordinates.
type syntheticEvent struct {
	x, y    float64
	pressed bool
}

// injectQueue feeds synthetic samples to the pointer, one per tick, ahead of
// the real mouse.
type injectQueue []syntheticEvent

// click queues a press followed by a release at (x, y). Consumes two ticks.
func (q *injectQueue) click(x, y float64) {
	*q = append(*q,
		syntheticEvent{x: x, y: y, pressed: true},
		syntheticEvent{x: x, y: y, pressed: false},
	)
}

// pop removes and returns the oldest event.
func (q *injectQueue) pop() (syntheticEvent, bool) {
	if len(*q) == 0 {
		return syntheticEvent{}, false
	}
	evt := (*q)[0]
	copy(*q, (*q)[1:])
	*q = (*q)[:len(*q)-1]
	return evt, true
}
