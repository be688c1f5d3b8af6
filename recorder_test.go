package fractree

import (
	"errors"
	"testing"
	"time"
)

// drawCall is one recorded Surface call.
type drawCall struct {
	Op    string
	Text  string
	X, Y  float64
	Size  float64
	Color Color
}

// recordingSurface records every draw in order. When failOp is set, the
// failAt-th call (1-based) of that op returns errBoom.
type recordingSurface struct {
	w, h   float64
	calls  []drawCall
	failOp string
	failAt int
	seen   map[string]int
}

var errBoom = errors.New("boom")

func newRecorder() *recordingSurface {
	return &recordingSurface{w: 640, h: 480, seen: map[string]int{}}
}

func (r *recordingSurface) record(c drawCall) error {
	r.seen[c.Op]++
	if r.failOp == c.Op && r.seen[c.Op] >= r.failAt {
		return errBoom
	}
	r.calls = append(r.calls, c)
	return nil
}

func (r *recordingSurface) Size() (float64, float64) { return r.w, r.h }

func (r *recordingSurface) Fill(c Color) error {
	return r.record(drawCall{Op: "fill", Color: c})
}

func (r *recordingSurface) FillCircle(x, y, rad float64, c Color) error {
	return r.record(drawCall{Op: "circle", X: x, Y: y, Size: rad, Color: c})
}

func (r *recordingSurface) DrawGlyph(s string, x, y, size float64, c Color) error {
	return r.record(drawCall{Op: "glyph", Text: s, X: x, Y: y, Size: size, Color: c})
}

func (r *recordingSurface) DrawLine(x1, y1, x2, y2, width float64, c Color) error {
	return r.record(drawCall{Op: "line", X: x1, Y: y1, Size: width, Color: c})
}

func (r *recordingSurface) DrawText(s string, x, y, size float64, c Color) error {
	return r.record(drawCall{Op: "text", Text: s, X: x, Y: y, Size: size, Color: c})
}

// motifs returns the glyph and circle calls, in order.
func (r *recordingSurface) motifs() []drawCall {
	var out []drawCall
	for _, c := range r.calls {
		if c.Op == "glyph" || c.Op == "circle" {
			out = append(out, c)
		}
	}
	return out
}

// count returns the number of recorded calls of op.
func (r *recordingSurface) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// seqRand replays vals in a loop.
type seqRand struct {
	vals []float64
	i    int
}

func (s *seqRand) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// testConfig returns a glyph config with a fixed 20 degree spread and 0.8
// scale, so every position is predictable.
func testConfig(depth int, motifs ...string) Config {
	cfg := DefaultConfig()
	cfg.Motifs = motifs
	cfg.MaxDepth = depth
	cfg.Spread = Range{Min: 20, Max: 20}
	cfg.Scale = Range{Min: 0.8, Max: 0.8}
	return cfg
}

// drive advances clock one step delay at a time until exp finishes.
func drive(t *testing.T, exp *Expansion, clock *ManualClock, s Surface, delay time.Duration) {
	t.Helper()
	for i := 0; i < 10000; i++ {
		select {
		case <-exp.Done():
			return
		default:
		}
		clock.Advance(delay)
		if err := exp.Advance(s); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}
	t.Fatal("expansion did not finish")
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
