// Package ggsurface renders fractree frames headlessly with gogpu/gg, for
// PNG export and tests.
package ggsurface

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/fractree"
)

// Surface is a fractree.Surface backed by a software gg.Context. It is not
// safe for concurrent use.
type Surface struct {
	dc     *gg.Context
	source *text.FontSource
	faces  map[float64]text.Face
	closed bool
}

var _ fractree.Surface = (*Surface)(nil)

// New creates a w x h surface using the bundled Go Regular font.
func New(w, h int) (*Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("ggsurface: invalid size %dx%d", w, h)
	}
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("ggsurface: load font: %w", err)
	}
	return &Surface{
		dc:     gg.NewContext(w, h),
		source: source,
		faces:  make(map[float64]text.Face),
	}, nil
}

func (s *Surface) face(size float64) text.Face {
	f, ok := s.faces[size]
	if !ok {
		f = s.source.Face(size)
		s.faces[size] = f
	}
	return f
}

func (s *Surface) setColor(c fractree.Color) {
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
}

func (s *Surface) Size() (float64, float64) {
	return float64(s.dc.Width()), float64(s.dc.Height())
}

func (s *Surface) Fill(c fractree.Color) error {
	if s.closed {
		return fractree.ErrClosed
	}
	s.dc.ClearWithColor(gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
	return nil
}

func (s *Surface) FillCircle(x, y, r float64, c fractree.Color) error {
	if s.closed {
		return fractree.ErrClosed
	}
	s.setColor(c)
	s.dc.DrawCircle(x, y, r)
	return s.dc.Fill()
}

func (s *Surface) DrawGlyph(str string, x, y, size float64, c fractree.Color) error {
	if s.closed {
		return fractree.ErrClosed
	}
	s.setColor(c)
	s.dc.SetFont(s.face(size))
	s.dc.DrawStringAnchored(str, x, y, 0.5, 0.5)
	return nil
}

func (s *Surface) DrawLine(x1, y1, x2, y2, width float64, c fractree.Color) error {
	if s.closed {
		return fractree.ErrClosed
	}
	s.setColor(c)
	s.dc.SetLineWidth(width)
	s.dc.DrawLine(x1, y1, x2, y2)
	return s.dc.Stroke()
}

// DrawText places the text baseline one font size below y so (x, y) is
// roughly the top-left corner.
func (s *Surface) DrawText(str string, x, y, size float64, c fractree.Color) error {
	if s.closed {
		return fractree.ErrClosed
	}
	s.setColor(c)
	s.dc.SetFont(s.face(size))
	s.dc.DrawString(str, x, y+size)
	return nil
}

// Image returns a snapshot of the current pixels.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// SavePNG writes the current pixels to path, creating parent directories.
func (s *Surface) SavePNG(path string) error {
	if s.closed {
		return fractree.ErrClosed
	}
	return fractree.WritePNG(path, s.dc.Image())
}

// EncodePNG writes the current pixels to w as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if s.closed {
		return fractree.ErrClosed
	}
	return s.dc.EncodePNG(w)
}

// Close releases the context and font. Later draws return
// fractree.ErrClosed.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	err := s.dc.Close()
	if cerr := s.source.Close(); err == nil {
		err = cerr
	}
	return err
}
