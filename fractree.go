package fractree

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default glyph color.
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is the default background.
var ColorBlack = Color{0, 0, 0, 1}

// WithAlpha returns a copy of c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// RGBA converts c to a standard library color, clamping each component.
func (c Color) RGBA() color.NRGBA {
	return color.NRGBA{
		R: clampByte(c.R),
		G: clampByte(c.G),
		B: clampByte(c.B),
		A: clampByte(c.A),
	}
}

func clampByte(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// Vec2 is a 2D vector used for positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Range is a half-open [Min, Max) interval sampled by the growth policy.
type Range struct {
	Min, Max float64
}

// sample draws a value from the range using rng. A zero-width range always
// yields Min.
func (r Range) sample(rng Rand) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// palette is the fixed set of circle colors used when motifs are disabled.
var palette = [5]Color{
	{R: 0.937, G: 0.278, B: 0.435, A: 1}, // rose
	{R: 1.000, G: 0.820, B: 0.400, A: 1}, // amber
	{R: 0.024, G: 0.839, B: 0.627, A: 1}, // mint
	{R: 0.067, G: 0.541, B: 0.698, A: 1}, // teal
	{R: 0.482, G: 0.380, B: 1.000, A: 1}, // violet
}

// PaletteSize is the number of colors in the circle palette.
const PaletteSize = len(palette)

// DefaultPalette returns a copy of the circle palette so callers can inspect
// it without mutating the shared colors.
func DefaultPalette() []Color {
	out := make([]Color, len(palette))
	copy(out, palette[:])
	return out
}

// PaletteColor returns the palette entry for idx, wrapping in both directions.
func PaletteColor(idx int) Color {
	return palette[wrapIndex(idx, PaletteSize)]
}

// wrapIndex maps idx onto [0, n). n values below 1 are treated as 1 so the
// result is always a valid index into a non-empty list.
func wrapIndex(idx, n int) int {
	if n < 1 {
		n = 1
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}
