package fractree

import (
	"errors"
	"testing"
)

func TestRippleLifecycle(t *testing.T) {
	r := NewRipple(10, 20, ColorWhite)
	if r.Radius() != 0 || r.Alpha() != rippleAlpha {
		t.Fatalf("initial radius/alpha = %v/%v", r.Radius(), r.Alpha())
	}

	r.Update(RippleDuration / 2)
	if r.Done {
		t.Fatal("done halfway through")
	}
	if r.Radius() <= 0 || r.Radius() >= RippleRadius {
		t.Errorf("mid radius = %v, want inside (0, %v)", r.Radius(), RippleRadius)
	}
	if r.Alpha() <= 0 || r.Alpha() >= rippleAlpha {
		t.Errorf("mid alpha = %v, want inside (0, %v)", r.Alpha(), rippleAlpha)
	}

	r.Update(RippleDuration)
	if !r.Done {
		t.Fatal("not done after the full duration")
	}
	if r.Radius() != RippleRadius || r.Alpha() != 0 {
		t.Errorf("final radius/alpha = %v/%v", r.Radius(), r.Alpha())
	}
}

func TestRippleDraw(t *testing.T) {
	rec := newRecorder()
	r := NewRipple(10, 20, ColorWhite)

	// Zero radius draws nothing.
	if err := r.Draw(rec); err != nil || len(rec.calls) != 0 {
		t.Fatalf("draw before update: err=%v calls=%d", err, len(rec.calls))
	}

	r.Update(RippleDuration / 2)
	if err := r.Draw(rec); err != nil {
		t.Fatal(err)
	}
	c := rec.calls[0]
	if c.Op != "circle" || c.X != 10 || c.Y != 20 || c.Size != r.Radius() {
		t.Errorf("draw = %+v", c)
	}
	if !approx(c.Color.A, r.Alpha()) {
		t.Errorf("alpha = %v, want %v", c.Color.A, r.Alpha())
	}
}

func TestRipplesDropFinished(t *testing.T) {
	var rs Ripples
	rs.Add(0, 0, ColorWhite)
	rs.Update(0.4)
	rs.Add(5, 5, ColorWhite)

	rs.Update(0.4)
	if len(rs) != 1 {
		t.Fatalf("live ripples = %d, want 1", len(rs))
	}
	if rs[0].X != 5 {
		t.Errorf("kept the wrong ripple: %+v", rs[0])
	}

	rs.Update(RippleDuration)
	if len(rs) != 0 {
		t.Errorf("live ripples = %d, want 0", len(rs))
	}
}

func TestRipplesDrawError(t *testing.T) {
	rec := newRecorder()
	rec.failOp, rec.failAt = "circle", 1
	var rs Ripples
	rs.Add(0, 0, ColorWhite)
	rs.Update(0.1)
	err := rs.Draw(rec)
	var se *SurfaceError
	if !errors.As(err, &se) || se.Op != "ripple" {
		t.Errorf("err = %v, want SurfaceError(ripple)", err)
	}
}
