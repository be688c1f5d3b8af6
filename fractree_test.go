package fractree

import (
	"image/color"
	"testing"
)

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		name string
		in   Color
		want color.NRGBA
	}{
		{"white", ColorWhite, color.NRGBA{255, 255, 255, 255}},
		{"black", ColorBlack, color.NRGBA{0, 0, 0, 255}},
		{"clamped", Color{R: 2, G: -1, B: 0.5, A: 0.5}, color.NRGBA{255, 0, 128, 128}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.RGBA(); got != tt.want {
				t.Errorf("RGBA() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorWithAlpha(t *testing.T) {
	c := ColorWhite.WithAlpha(0.25)
	if c.A != 0.25 || c.R != 1 {
		t.Errorf("WithAlpha = %+v", c)
	}
	if ColorWhite.A != 1 {
		t.Error("WithAlpha mutated the receiver")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	tests := []struct {
		x, y float64
		want bool
	}{
		{15, 15, true},
		{10, 10, true},
		{30, 30, true},
		{9, 15, false},
		{15, 31, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRangeSample(t *testing.T) {
	r := Range{Min: 10, Max: 60}
	if got := r.sample(&seqRand{vals: []float64{0}}); got != 10 {
		t.Errorf("sample(0) = %v, want 10", got)
	}
	if got := r.sample(&seqRand{vals: []float64{0.5}}); got != 35 {
		t.Errorf("sample(0.5) = %v, want 35", got)
	}

	// A degenerate range never consumes randomness.
	rng := &seqRand{vals: []float64{0.9}}
	if got := (Range{Min: 3, Max: 3}).sample(rng); got != 3 || rng.i != 0 {
		t.Errorf("degenerate sample = %v after %d draws", got, rng.i)
	}
}

func TestWrapIndex(t *testing.T) {
	tests := []struct {
		idx, n, want int
	}{
		{0, 3, 0},
		{4, 3, 1},
		{-1, 3, 2},
		{-7, 5, 3},
		{5, 0, 0},
		{5, -2, 0},
	}
	for _, tt := range tests {
		if got := wrapIndex(tt.idx, tt.n); got != tt.want {
			t.Errorf("wrapIndex(%d, %d) = %d, want %d", tt.idx, tt.n, got, tt.want)
		}
	}
}

func TestPalette(t *testing.T) {
	p := DefaultPalette()
	if len(p) != PaletteSize {
		t.Fatalf("palette size = %d, want %d", len(p), PaletteSize)
	}
	p[0] = ColorBlack
	if PaletteColor(0) == ColorBlack {
		t.Error("DefaultPalette exposed the shared colors")
	}
	if PaletteColor(PaletteSize+1) != PaletteColor(1) || PaletteColor(-1) != PaletteColor(PaletteSize-1) {
		t.Error("PaletteColor does not wrap")
	}
}

func TestNewRandDeterministic(t *testing.T) {
	a, b := NewRand(99), NewRand(99)
	for i := 0; i < 100; i++ {
		x, y := a.Float64(), b.Float64()
		if x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
		if x < 0 || x >= 1 {
			t.Fatalf("draw %d out of [0, 1): %v", i, x)
		}
	}
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(epoch)
	c.Advance(DefaultStepDelay)
	if got := c.Now().Sub(epoch); got != DefaultStepDelay {
		t.Errorf("advanced %v, want %v", got, DefaultStepDelay)
	}
	c.Set(epoch)
	if !c.Now().Equal(epoch) {
		t.Error("Set did not move the clock")
	}
}
