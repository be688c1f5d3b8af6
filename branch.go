package fractree

import "math"

// debugLineAlpha is the opacity of the growth skeleton drawn in debug mode.
const debugLineAlpha = 0.3

// Branch is one pending expansion step. It lives in the scheduler queue
// until it runs and is then dropped.
type Branch struct {
	X, Y   float64
	Size   float64
	Angle  float64 // degrees
	Motif  int     // index into the active motif or palette list
	Depth  int     // generations already grown above this branch
	Target int     // depth at which the tree stops
	Tree   int     // index of the seed point this branch grew from
}

// Terminal reports whether the branch is past the last generation.
func (b Branch) Terminal() bool {
	return b.Depth >= b.Target
}

// next returns the point one step along the branch direction. Screen Y grows
// downward, so the sine term is subtracted.
func (b Branch) next() (x, y float64) {
	rad := b.Angle * math.Pi / 180
	return b.X + b.Size*math.Cos(rad), b.Y - b.Size*math.Sin(rad)
}

// expand runs one branch step: it draws the motif at the branch origin, the
// skeleton line in debug mode, and returns the two children grown from the
// next point. A terminal branch draws nothing and has no children.
//
// The spread is drawn before the scale, once per step, and both children
// share them.
func expand(s Surface, b Branch, cfg Config, rng Rand) ([2]Branch, bool, error) {
	var children [2]Branch
	if b.Terminal() {
		return children, false, nil
	}

	nx, ny := b.next()
	n := cfg.ActiveLen()

	if err := renderMotif(s, cfg, wrapIndex(b.Motif, n), b.X, b.Y, b.Size); err != nil {
		return children, false, err
	}
	if cfg.Debug {
		line := cfg.Foreground.WithAlpha(debugLineAlpha)
		if err := s.DrawLine(b.X, b.Y, nx, ny, 1, line); err != nil {
			return children, false, surfaceErr("line", err)
		}
	}

	spread := cfg.Spread.sample(rng)
	scale := cfg.Scale.sample(rng)

	child := Branch{
		X:      nx,
		Y:      ny,
		Size:   b.Size * scale,
		Depth:  b.Depth + 1,
		Target: b.Target,
		Tree:   b.Tree,
	}
	children[0], children[1] = child, child
	children[0].Angle = b.Angle - spread
	children[0].Motif = wrapIndex(b.Motif+1, n)
	children[1].Angle = b.Angle + spread
	children[1].Motif = wrapIndex(b.Motif+2, n)
	return children, true, nil
}
