// Package termsurface draws fractree frames in a terminal with tcell. Each
// cell stands for a block of virtual pixels, so trees keep the proportions
// they have in a window.
package termsurface

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/fractree"
)

// Default virtual pixels per terminal cell. Cells are roughly twice as tall
// as they are wide.
const (
	DefaultCellWidth  = 8.0
	DefaultCellHeight = 16.0
)

// Runes used for shapes.
const (
	circleRune = '●'
	lineRune   = '·'
)

// Surface is a fractree.Surface over a tcell screen. Drawing only updates
// the back buffer; call Show to flush it.
type Surface struct {
	screen       tcell.Screen
	cellW, cellH float64
	bg           fractree.Color
	closed       bool
}

var _ fractree.Surface = (*Surface)(nil)

// New wraps screen, mapping each cell to cellW x cellH virtual pixels.
// Non-positive sizes fall back to the defaults.
func New(screen tcell.Screen, cellW, cellH float64) *Surface {
	if cellW <= 0 {
		cellW = DefaultCellWidth
	}
	if cellH <= 0 {
		cellH = DefaultCellHeight
	}
	return &Surface{screen: screen, cellW: cellW, cellH: cellH, bg: fractree.ColorBlack}
}

// Size returns the screen size in virtual pixels.
func (s *Surface) Size() (float64, float64) {
	cols, rows := s.screen.Size()
	return float64(cols) * s.cellW, float64(rows) * s.cellH
}

// CellToPixel returns the virtual pixel at the center of cell (col, row).
func (s *Surface) CellToPixel(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * s.cellW, (float64(row) + 0.5) * s.cellH
}

func (s *Surface) cell(x, y float64) (int, int) {
	return int(math.Floor(x / s.cellW)), int(math.Floor(y / s.cellH))
}

func (s *Surface) put(col, row int, r rune, c fractree.Color) {
	cols, rows := s.screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	style := tcell.StyleDefault.Foreground(s.color(c)).Background(s.color(s.bg))
	s.screen.SetContent(col, row, r, nil, style)
}

// color converts c to a terminal color, blending translucent colors over
// the background.
func (s *Surface) color(c fractree.Color) tcell.Color {
	a := math.Max(0, math.Min(1, c.A))
	mix := func(fg, bg float64) int32 {
		return int32(math.Round(math.Max(0, math.Min(1, fg*a+bg*(1-a))) * 255))
	}
	return tcell.NewRGBColor(mix(c.R, s.bg.R), mix(c.G, s.bg.G), mix(c.B, s.bg.B))
}

// Fill paints every cell with c and makes it the blend background.
func (s *Surface) Fill(c fractree.Color) error {
	if s.closed {
		return fractree.ErrClosed
	}
	s.bg = c.WithAlpha(1)
	s.screen.Fill(' ', tcell.StyleDefault.Background(s.color(s.bg)))
	return nil
}

// FillCircle marks every cell whose center lies inside the circle, and at
// least the cell holding the center.
func (s *Surface) FillCircle(x, y, r float64, c fractree.Color) error {
	if s.closed {
		return fractree.ErrClosed
	}
	c0, r0 := s.cell(x-r, y-r)
	c1, r1 := s.cell(x+r, y+r)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			px, py := s.CellToPixel(col, row)
			if math.Hypot(px-x, py-y) <= r {
				s.put(col, row, circleRune, c)
			}
		}
	}
	col, row := s.cell(x, y)
	s.put(col, row, circleRune, c)
	return nil
}

// DrawGlyph writes str centered on the cell holding (x, y). Size is ignored:
// a terminal has one font size.
func (s *Surface) DrawGlyph(str string, x, y, _ float64, c fractree.Color) error {
	if s.closed {
		return fractree.ErrClosed
	}
	runes := []rune(str)
	col, row := s.cell(x, y)
	col -= len(runes) / 2
	for i, r := range runes {
		s.put(col+i, row, r, c)
	}
	return nil
}

// DrawLine walks the cells between the endpoints with Bresenham's algorithm.
func (s *Surface) DrawLine(x1, y1, x2, y2, _ float64, c fractree.Color) error {
	if s.closed {
		return fractree.ErrClosed
	}
	cx, cy := s.cell(x1, y1)
	ex, ey := s.cell(x2, y2)
	dx, dy := abs(ex-cx), -abs(ey-cy)
	sx, sy := sign(ex-cx), sign(ey-cy)
	e := dx + dy
	for {
		s.put(cx, cy, lineRune, c)
		if cx == ex && cy == ey {
			return nil
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			cx += sx
		}
		if e2 <= dx {
			e += dx
			cy += sy
		}
	}
}

// DrawText writes str left to right starting at the cell holding (x, y).
func (s *Surface) DrawText(str string, x, y, _ float64, c fractree.Color) error {
	if s.closed {
		return fractree.ErrClosed
	}
	col, row := s.cell(x, y)
	for _, r := range str {
		s.put(col, row, r, c)
		col++
	}
	return nil
}

// Show flushes pending cells to the terminal.
func (s *Surface) Show() {
	if !s.closed {
		s.screen.Show()
	}
}

// Close stops drawing. The screen itself is owned by the caller.
func (s *Surface) Close() {
	s.closed = true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
