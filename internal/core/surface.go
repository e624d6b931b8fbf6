package core

// Align controls horizontal text placement relative to the anchor point.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Surface is a 2D drawing target sized to the viewport.
// Coordinates are in surface units with the origin at the top-left corner.
// The game never creates or resizes a surface; the platform owns it.
type Surface interface {
	// Width returns the drawable width in surface units.
	Width() float64
	// Height returns the drawable height in surface units.
	Height() float64

	// ClearRect erases the given area back to the background.
	ClearRect(x, y, w, h float64)
	// FillCircle draws a filled disc with an outline of the given width.
	FillCircle(c Circle, fill, stroke Color, strokeWidth float64)
	// FillRect fills an area with a solid color.
	FillRect(x, y, w, h float64, fill Color)
	// DrawText draws a single line of text whose baseline sits at y.
	DrawText(x, y float64, text string, fill Color, align Align)
}

// ClearAll erases the whole surface.
func ClearAll(s Surface) {
	s.ClearRect(0, 0, s.Width(), s.Height())
}
