package fractree

import "testing"

func TestExpectedRenders(t *testing.T) {
	tests := []struct {
		seeds, depth, want int
	}{
		{0, 6, 0},
		{1, 0, 0},
		{1, 1, 1},
		{3, 6, 189},
		{2, 12, 8190},
	}
	for _, tt := range tests {
		if got := expectedRenders(tt.seeds, tt.depth); got != tt.want {
			t.Errorf("expectedRenders(%d, %d) = %d, want %d", tt.seeds, tt.depth, got, tt.want)
		}
	}
}

func TestDrawOverlayError(t *testing.T) {
	rec := newRecorder()
	rec.failOp, rec.failAt = "text", 1
	err := drawOverlay(rec, DefaultConfig(), 1)
	se, ok := err.(*SurfaceError)
	if !ok || se.Op != "text" {
		t.Errorf("err = %v, want SurfaceError(text)", err)
	}
}
