package gui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/bubblepop/internal/core"
)

var defaultFace = text.NewGoXFace(basicfont.Face7x13)

// imageSurface draws onto an offscreen ebiten image. One surface unit is one
// pixel.
type imageSurface struct {
	img  *ebiten.Image
	bg   color.NRGBA
	face text.Face
}

func newImageSurface(w, h int, bg core.Color) *imageSurface {
	return &imageSurface{
		img:  ebiten.NewImage(max(w, 1), max(h, 1)),
		bg:   toNRGBA(bg),
		face: defaultFace,
	}
}

// resize replaces the backing image when the size changed.
// Returns false if the size was unchanged.
func (s *imageSurface) resize(w, h int) bool {
	w, h = max(w, 1), max(h, 1)
	b := s.img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return false
	}
	s.img.Deallocate()
	s.img = ebiten.NewImage(w, h)
	return true
}

func (s *imageSurface) Width() float64 {
	return float64(s.img.Bounds().Dx())
}

func (s *imageSurface) Height() float64 {
	return float64(s.img.Bounds().Dy())
}

func (s *imageSurface) ClearRect(x, y, w, h float64) {
	r := image.Rect(int(x), int(y), int(x+w), int(y+h)).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	s.img.SubImage(r).(*ebiten.Image).Fill(s.bg)
}

func (s *imageSurface) FillCircle(c core.Circle, fill, stroke core.Color, strokeWidth float64) {
	if c.Radius <= 0 {
		return
	}
	cx, cy, r := float32(c.Center.X), float32(c.Center.Y), float32(c.Radius)
	vector.DrawFilledCircle(s.img, cx, cy, r, toNRGBA(fill), true)
	if strokeWidth > 0 {
		vector.StrokeCircle(s.img, cx, cy, r, float32(strokeWidth), toNRGBA(stroke), true)
	}
}

func (s *imageSurface) FillRect(x, y, w, h float64, fill core.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), toNRGBA(fill), true)
}

func (s *imageSurface) DrawText(x, y float64, str string, fill core.Color, align core.Align) {
	drawText(s.img, s.face, x, y, str, fill, align)
}

// drawText draws one line whose baseline sits at y.
func drawText(dst *ebiten.Image, face text.Face, x, y float64, str string, fill core.Color, align core.Align) {
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(x, y-face.Metrics().HAscent)
	opts.ColorScale.ScaleWithColor(toNRGBA(fill))
	if align == core.AlignCenter {
		opts.PrimaryAlign = text.AlignCenter
	}
	text.Draw(dst, str, face, opts)
}

func toNRGBA(c core.Color) color.NRGBA {
	r, g, b, a := c.RGBA8()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

var _ core.Surface = (*imageSurface)(nil)
