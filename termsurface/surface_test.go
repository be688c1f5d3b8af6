package termsurface

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/fractree"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

func runeAt(s tcell.Screen, col, row int) rune {
	r, _, _, _ := s.GetContent(col, row)
	return r
}

func fgAt(s tcell.Screen, col, row int) (int32, int32, int32) {
	_, _, style, _ := s.GetContent(col, row)
	fg, _, _ := style.Decompose()
	return fg.RGB()
}

func TestSizeInVirtualPixels(t *testing.T) {
	surf := New(newScreen(t, 40, 20), 0, 0)
	if w, h := surf.Size(); w != 40*DefaultCellWidth || h != 20*DefaultCellHeight {
		t.Errorf("Size = %vx%v", w, h)
	}
	if x, y := surf.CellToPixel(2, 3); x != 20 || y != 56 {
		t.Errorf("CellToPixel(2, 3) = (%v, %v), want (20, 56)", x, y)
	}
}

func TestFill(t *testing.T) {
	screen := newScreen(t, 10, 5)
	surf := New(screen, 0, 0)
	_ = surf.DrawText("hi", 0, 0, 14, fractree.ColorWhite)
	if err := surf.Fill(fractree.ColorBlack); err != nil {
		t.Fatal(err)
	}
	if r := runeAt(screen, 0, 0); r != ' ' {
		t.Errorf("cell after fill = %q, want blank", r)
	}
}

func TestGlyphCentered(t *testing.T) {
	screen := newScreen(t, 20, 5)
	surf := New(screen, 0, 0)
	// (84, 40) is cell (10, 2).
	if err := surf.DrawGlyph("abc", 84, 40, 60, fractree.ColorWhite); err != nil {
		t.Fatal(err)
	}
	for i, want := range "abc" {
		if got := runeAt(screen, 9+i, 2); got != want {
			t.Errorf("cell %d = %q, want %q", 9+i, got, want)
		}
	}
	if r, g, b := fgAt(screen, 10, 2); r != 255 || g != 255 || b != 255 {
		t.Errorf("fg = %d,%d,%d, want white", r, g, b)
	}
}

func TestCircleCoversCells(t *testing.T) {
	screen := newScreen(t, 20, 10)
	surf := New(screen, 0, 0)
	red := fractree.Color{R: 1, A: 1}

	// Tiny circles still mark their own cell.
	_ = surf.FillCircle(4, 8, 1, red)
	if runeAt(screen, 0, 0) != circleRune {
		t.Error("small circle not drawn")
	}

	_ = surf.FillCircle(80, 80, 20, red)
	for _, c := range [][2]int{{10, 5}, {9, 5}, {11, 5}, {10, 4}} {
		if runeAt(screen, c[0], c[1]) != circleRune {
			t.Errorf("cell %v not covered", c)
		}
	}
	if runeAt(screen, 15, 5) == circleRune {
		t.Error("cell outside the radius covered")
	}
	if r, _, _ := fgAt(screen, 10, 5); r != 255 {
		t.Errorf("circle red = %d", r)
	}
}

func TestLineEndpoints(t *testing.T) {
	screen := newScreen(t, 20, 10)
	surf := New(screen, 0, 0)
	if err := surf.DrawLine(4, 8, 116, 136, 1, fractree.ColorWhite); err != nil {
		t.Fatal(err)
	}
	// From cell (0, 0) to (14, 8).
	if runeAt(screen, 0, 0) != lineRune || runeAt(screen, 14, 8) != lineRune {
		t.Error("line endpoints not drawn")
	}
	n := 0
	for row := 0; row < 10; row++ {
		for col := 0; col < 20; col++ {
			if runeAt(screen, col, row) == lineRune {
				n++
			}
		}
	}
	if n != 15 {
		t.Errorf("line cells = %d, want 15", n)
	}
}

func TestOutOfBoundsIgnored(t *testing.T) {
	screen := newScreen(t, 5, 5)
	surf := New(screen, 0, 0)
	_ = surf.DrawText("hello world", 16, 0, 14, fractree.ColorWhite)
	_ = surf.FillCircle(-100, -100, 10, fractree.ColorWhite)
	_ = surf.DrawLine(-50, -50, 500, 500, 1, fractree.ColorWhite)
	if runeAt(screen, 4, 0) != 'l' {
		t.Errorf("clipped text cell = %q, want 'l'", runeAt(screen, 4, 0))
	}
}

func TestTranslucentBlendsWithBackground(t *testing.T) {
	screen := newScreen(t, 5, 5)
	surf := New(screen, 0, 0)
	_ = surf.Fill(fractree.ColorBlack)
	_ = surf.DrawText("x", 0, 0, 14, fractree.ColorWhite.WithAlpha(0.5))
	if r, _, _ := fgAt(screen, 0, 0); r != 128 {
		t.Errorf("blended red = %d, want 128", r)
	}
}

func TestClosed(t *testing.T) {
	surf := New(newScreen(t, 5, 5), 0, 0)
	surf.Close()
	if err := surf.Fill(fractree.ColorBlack); err != fractree.ErrClosed {
		t.Errorf("Fill after Close = %v", err)
	}
	if err := surf.DrawGlyph("a", 0, 0, 1, fractree.ColorWhite); err != fractree.ErrClosed {
		t.Errorf("DrawGlyph after Close = %v", err)
	}
}
