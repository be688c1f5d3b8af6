package fractree

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Ripple timing and extent.
const (
	RippleDuration = 0.6  // seconds
	RippleRadius   = 40.0 // pixels at the end of the animation
	rippleAlpha    = 0.8
)

// Ripple is the expanding, fading ring shown where a seed point was added.
// It is drawn on top of the canvas by hosts and never touches tree state.
//
// There is no global animation manager; hosts call Update themselves.
type Ripple struct {
	X, Y  float64
	Color Color

	radius *gween.Tween
	alpha  *gween.Tween
	r, a   float64
	Done   bool
}

// NewRipple creates a ripple centered on (x, y).
func NewRipple(x, y float64, c Color) *Ripple {
	return &Ripple{
		X:      x,
		Y:      y,
		Color:  c,
		radius: gween.New(0, RippleRadius, RippleDuration, ease.OutQuad),
		alpha:  gween.New(rippleAlpha, 0, RippleDuration, ease.Linear),
		a:      rippleAlpha,
	}
}

// Update advances the ripple by dt seconds.
func (r *Ripple) Update(dt float32) {
	if r.Done {
		return
	}
	rv, rDone := r.radius.Update(dt)
	av, aDone := r.alpha.Update(dt)
	r.r, r.a = float64(rv), float64(av)
	r.Done = rDone && aDone
}

// Radius returns the current radius.
func (r *Ripple) Radius() float64 { return r.r }

// Alpha returns the current opacity.
func (r *Ripple) Alpha() float64 { return r.a }

// Draw paints the ripple as a translucent disc.
func (r *Ripple) Draw(s Surface) error {
	if r.Done || r.r <= 0 {
		return nil
	}
	return surfaceErr("ripple", s.FillCircle(r.X, r.Y, r.r, r.Color.WithAlpha(r.a*r.Color.A)))
}

// Ripples is a set of live ripples.
type Ripples []*Ripple

// Add starts a new ripple.
func (rs *Ripples) Add(x, y float64, c Color) {
	*rs = append(*rs, NewRipple(x, y, c))
}

// Update advances every ripple and drops the finished ones.
func (rs *Ripples) Update(dt float32) {
	live := (*rs)[:0]
	for _, r := range *rs {
		r.Update(dt)
		if !r.Done {
			live = append(live, r)
		}
	}
	clear((*rs)[len(live):])
	*rs = live
}

// Draw paints every live ripple, stopping at the first surface error.
func (rs Ripples) Draw(s Surface) error {
	for _, r := range rs {
		if err := r.Draw(s); err != nil {
			return err
		}
	}
	return nil
}
