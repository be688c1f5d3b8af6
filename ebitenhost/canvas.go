package ebitenhost

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/fractree"
)

// faceCache hands out one GoTextFace per font size.
type faceCache struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

func newFaceCache() (*faceCache, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("ebitenhost: parse font: %w", err)
	}
	return &faceCache{source: source, faces: make(map[float64]*text.GoTextFace)}, nil
}

func (fc *faceCache) face(size float64) *text.GoTextFace {
	if f, ok := fc.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: fc.source, Size: size}
	fc.faces[size] = f
	return f
}

// Canvas draws fractree primitives onto an ebiten image. The fractal layer
// is a persistent offscreen Canvas; overlays use a Canvas over the screen
// that lives for one Draw call.
type Canvas struct {
	img    *ebiten.Image
	faces  *faceCache
	closed bool
}

var _ fractree.Surface = (*Canvas)(nil)

// NewCanvas allocates an offscreen canvas of w x h pixels.
func NewCanvas(w, h int) (*Canvas, error) {
	faces, err := newFaceCache()
	if err != nil {
		return nil, err
	}
	return &Canvas{img: ebiten.NewImage(w, h), faces: faces}, nil
}

// on returns a canvas drawing to img with the same fonts.
func (c *Canvas) on(img *ebiten.Image) *Canvas {
	return &Canvas{img: img, faces: c.faces}
}

// Image returns the backing image.
func (c *Canvas) Image() *ebiten.Image { return c.img }

// Close releases the backing image. Later draws return fractree.ErrClosed.
func (c *Canvas) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.img.Deallocate()
}

func (c *Canvas) Size() (float64, float64) {
	b := c.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *Canvas) Fill(col fractree.Color) error {
	if c.closed {
		return fractree.ErrClosed
	}
	c.img.Fill(col.RGBA())
	return nil
}

func (c *Canvas) FillCircle(x, y, r float64, col fractree.Color) error {
	if c.closed {
		return fractree.ErrClosed
	}
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(r), col.RGBA(), true)
	return nil
}

func (c *Canvas) DrawGlyph(s string, x, y, size float64, col fractree.Color) error {
	if c.closed {
		return fractree.ErrClosed
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col.RGBA())
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(c.img, s, c.faces.face(size), op)
	return nil
}

func (c *Canvas) DrawLine(x1, y1, x2, y2, width float64, col fractree.Color) error {
	if c.closed {
		return fractree.ErrClosed
	}
	vector.StrokeLine(c.img, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), col.RGBA(), true)
	return nil
}

func (c *Canvas) DrawText(s string, x, y, size float64, col fractree.Color) error {
	if c.closed {
		return fractree.ErrClosed
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col.RGBA())
	text.Draw(c.img, s, c.faces.face(size), op)
	return nil
}
