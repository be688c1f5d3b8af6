package fractree

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// MaxDepthLimit is the deepest tree a frame will grow. Each extra level
	// doubles the number of motifs per tree.
	MaxDepthLimit = 12

	DefaultFractalCount = 3
	DefaultDepth        = 6
	DefaultStepDelay    = 50 * time.Millisecond
	DefaultInitialSize  = 60.0

	// FallbackMotif replaces an empty motif list in glyph mode.
	FallbackMotif = "*"
)

// Default growth ranges, in degrees and size factor.
var (
	DefaultSpread = Range{Min: 10, Max: 60}
	DefaultScale  = Range{Min: 0.7, Max: 0.9}
)

// Config is an immutable snapshot of everything a frame needs. The
// orchestrator copies it when a frame starts, so later edits only affect the
// next frame.
type Config struct {
	Motifs       []string // glyph strings, cycled per branch
	FractalCount int      // seed points placed by Reseed on an empty store
	MaxDepth     int      // generations per tree, 0..MaxDepthLimit
	Animate      bool     // regrow every tree again after each completed frame
	Debug        bool     // draw growth skeleton and the summary line
	UseMotifs    bool     // glyphs when true, palette circles when false

	StepDelay   time.Duration // pause before every branch step
	InitialSize float64       // motif size at the seed point
	Spread      Range         // angular perturbation per step, degrees
	Scale       Range         // child size factor per step

	Background Color
	Foreground Color
}

// DefaultConfig returns the configuration used by the command and examples.
func DefaultConfig() Config {
	return Config{
		Motifs:       []string{"*", "o", "+", "x"},
		FractalCount: DefaultFractalCount,
		MaxDepth:     DefaultDepth,
		UseMotifs:    true,
		StepDelay:    DefaultStepDelay,
		InitialSize:  DefaultInitialSize,
		Spread:       DefaultSpread,
		Scale:        DefaultScale,
		Background:   Color{R: 0.059, G: 0.055, B: 0.090, A: 1},
		Foreground:   ColorWhite,
	}
}

// ParseMotifs splits a comma-separated motif string. Entries are trimmed and
// empty entries dropped, so "a, ,b," yields ["a", "b"].
func ParseMotifs(csv string) []string {
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// MotifString joins the motif list back into its comma-separated form.
func (c Config) MotifString() string {
	return strings.Join(c.Motifs, ",")
}

// ActiveLen returns the length of the list indexed by the motif counter:
// the motif list in glyph mode, the palette otherwise. It is never below 1.
func (c Config) ActiveLen() int {
	if !c.UseMotifs {
		return PaletteSize
	}
	if len(c.Motifs) == 0 {
		return 1
	}
	return len(c.Motifs)
}

// Validate reports every field Normalize would have to replace.
func (c Config) Validate() error {
	var errs []error
	if c.UseMotifs && len(c.Motifs) == 0 {
		errs = append(errs, &ConfigError{Field: "Motifs", Reason: "empty motif list"})
	}
	if c.MaxDepth < 0 || c.MaxDepth > MaxDepthLimit {
		errs = append(errs, &ConfigError{
			Field:  "MaxDepth",
			Reason: fmt.Sprintf("%d outside [0, %d]", c.MaxDepth, MaxDepthLimit),
		})
	}
	if c.FractalCount < 0 {
		errs = append(errs, &ConfigError{Field: "FractalCount", Reason: "negative"})
	}
	if c.StepDelay < 0 {
		errs = append(errs, &ConfigError{Field: "StepDelay", Reason: "negative"})
	}
	if c.InitialSize <= 0 {
		errs = append(errs, &ConfigError{Field: "InitialSize", Reason: "must be positive"})
	}
	if c.Spread.Max < c.Spread.Min {
		errs = append(errs, &ConfigError{Field: "Spread", Reason: "max below min"})
	}
	if c.Scale.Max < c.Scale.Min {
		errs = append(errs, &ConfigError{Field: "Scale", Reason: "max below min"})
	}
	return errors.Join(errs...)
}

// Normalize returns a copy of c with every invalid field replaced by a
// usable fallback. Each replacement is logged as a warning; the frame is
// never rejected. The motif slice is copied so the snapshot cannot be edited
// through the caller's slice.
func (c Config) Normalize() Config {
	out := c
	out.Motifs = append([]string(nil), c.Motifs...)

	warn := func(field, reason string) {
		Logger().Warn("config fallback", "field", field, "reason", reason)
	}

	if out.UseMotifs && len(out.Motifs) == 0 {
		warn("Motifs", "empty motif list")
		out.Motifs = []string{FallbackMotif}
	}
	switch {
	case out.MaxDepth < 0:
		warn("MaxDepth", "negative")
		out.MaxDepth = 0
	case out.MaxDepth > MaxDepthLimit:
		warn("MaxDepth", "above limit")
		out.MaxDepth = MaxDepthLimit
	}
	if out.FractalCount < 0 {
		warn("FractalCount", "negative")
		out.FractalCount = 0
	}
	if out.StepDelay < 0 {
		warn("StepDelay", "negative")
		out.StepDelay = 0
	}
	if out.InitialSize <= 0 {
		warn("InitialSize", "must be positive")
		out.InitialSize = DefaultInitialSize
	}
	if out.Spread.Max < out.Spread.Min {
		warn("Spread", "max below min")
		out.Spread.Min, out.Spread.Max = out.Spread.Max, out.Spread.Min
	}
	if out.Scale.Max < out.Scale.Min {
		warn("Scale", "max below min")
		out.Scale.Min, out.Scale.Max = out.Scale.Max, out.Scale.Min
	}
	return out
}

// clampDepth limits a requested depth to [0, MaxDepthLimit].
func clampDepth(d int) int {
	return max(0, min(d, MaxDepthLimit))
}
