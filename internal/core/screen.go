package core

import (
	"math"
	"strings"
)

// Default cell size in surface units. A terminal cell is roughly twice as
// tall as it is wide, so these keep circles round on screen.
const (
	DefaultCellW = 8.0
	DefaultCellH = 16.0
)

// Runes used when rasterizing shapes into cells.
const (
	FillRune   = '█'
	StrokeRune = '▓'
	DotRune    = '●'
)

// Cell is one character position of the screen.
// Empty FG/BG mean the terminal's default colors.
type Cell struct {
	Rune rune
	FG   string // "#rrggbb" or ""
	BG   string // "#rrggbb" or ""
}

var blankCell = Cell{Rune: ' '}

// Screen is a 2D character buffer for rendering game graphics.
// It decouples game rendering from the terminal: the game draws through the
// Surface interface in surface units, and the screen rasterizes into cells
// that the platform turns into styled text.
type Screen struct {
	cols  int
	rows  int
	cellW float64
	cellH float64
	bg    Color
	cells [][]Cell
}

// NewScreen creates a new screen buffer with the given size in cells.
func NewScreen(cols, rows int) *Screen {
	s := &Screen{
		cols:  cols,
		rows:  rows,
		cellW: DefaultCellW,
		cellH: DefaultCellH,
		bg:    Black,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.rows)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.cols)
	}
}

// SetBackground sets the color translucent fills are composited onto.
func (s *Screen) SetBackground(c Color) {
	s.bg = c
}

// Cols returns the screen width in cells.
func (s *Screen) Cols() int {
	return s.cols
}

// Rows returns the screen height in cells.
func (s *Screen) Rows() int {
	return s.rows
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(cols, rows int) {
	if cols == s.cols && rows == s.rows {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.cols, s.rows

	s.cols = cols
	s.rows = rows
	s.allocate()
	s.Clear()

	// Copy old content
	copyW := min(oldW, cols)
	copyH := min(oldH, rows)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// Set places a rune at the given cell, keeping the cell's colors.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x].Rune = r
}

// SetCell replaces the cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blankCell
	}
	return s.cells[y][x]
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.cols && y >= 0 && y < s.rows
}

// PutText writes a string horizontally starting at cell (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) PutText(x, y int, text string, fg string) {
	i := 0
	for _, r := range text {
		if s.inBounds(x+i, y) {
			c := s.cells[y][x+i]
			c.Rune = r
			c.FG = fg
			s.cells[y][x+i] = c
		}
		i++
	}
}

// PutRect fills a rectangular area of cells with the given rune.
func (s *Screen) PutRect(r Rect, fill rune) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.Set(x, y, fill)
		}
	}
}

// CellAt returns the cell containing the surface point p.
func (s *Screen) CellAt(p Point) (x, y int) {
	return int(math.Floor(p.X / s.cellW)), int(math.Floor(p.Y / s.cellH))
}

// CellCenter returns the surface point at the center of cell (x, y).
func (s *Screen) CellCenter(x, y int) Point {
	return Point{X: (float64(x) + 0.5) * s.cellW, Y: (float64(y) + 0.5) * s.cellH}
}

// Width returns the surface width in surface units.
func (s *Screen) Width() float64 {
	return float64(s.cols) * s.cellW
}

// Height returns the surface height in surface units.
func (s *Screen) Height() float64 {
	return float64(s.rows) * s.cellH
}

// cellSpan converts a surface-space box into the cells whose centers it covers.
func (s *Screen) cellSpan(x, y, w, h float64) Rect {
	x0 := int(math.Ceil(x/s.cellW - 0.5))
	y0 := int(math.Ceil(y/s.cellH - 0.5))
	x1 := int(math.Ceil((x+w)/s.cellW - 0.5))
	y1 := int(math.Ceil((y+h)/s.cellH - 0.5))
	x0, x1 = Clamp(x0, 0, s.cols), Clamp(x1, 0, s.cols)
	y0, y1 = Clamp(y0, 0, s.rows), Clamp(y1, 0, s.rows)
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// ClearRect implements Surface.
func (s *Screen) ClearRect(x, y, w, h float64) {
	r := s.cellSpan(x, y, w, h)
	for cy := r.Y; cy < r.Bottom(); cy++ {
		for cx := r.X; cx < r.Right(); cx++ {
			s.cells[cy][cx] = blankCell
		}
	}
}

// FillRect implements Surface. Cells are painted through their background.
func (s *Screen) FillRect(x, y, w, h float64, fill Color) {
	hex := fill.Over(s.bg).Hex()
	r := s.cellSpan(x, y, w, h)
	for cy := r.Y; cy < r.Bottom(); cy++ {
		for cx := r.X; cx < r.Right(); cx++ {
			s.cells[cy][cx] = Cell{Rune: ' ', BG: hex}
		}
	}
}

// FillCircle implements Surface.
// Cells whose centers fall inside the rim band get the stroke color; the rest
// of the interior gets the fill color. A circle too small to cover any cell
// center still marks the cell under its center.
func (s *Screen) FillCircle(c Circle, fill, stroke Color, strokeWidth float64) {
	if c.Radius <= 0 {
		return
	}

	fillHex := fill.Over(s.bg).Hex()
	strokeHex := stroke.Over(s.bg).Hex()
	band := math.Max(strokeWidth, s.cellW*0.75)

	span := s.cellSpan(c.Center.X-c.Radius, c.Center.Y-c.Radius, 2*c.Radius, 2*c.Radius)
	painted := false
	for cy := span.Y; cy < span.Bottom(); cy++ {
		for cx := span.X; cx < span.Right(); cx++ {
			d := s.CellCenter(cx, cy).Dist(c.Center)
			if d >= c.Radius {
				continue
			}
			cell := s.cells[cy][cx]
			if d >= c.Radius-band {
				cell.Rune, cell.FG = StrokeRune, strokeHex
			} else {
				cell.Rune, cell.FG = FillRune, fillHex
			}
			s.cells[cy][cx] = cell
			painted = true
		}
	}

	if !painted {
		cx, cy := s.CellAt(c.Center)
		if s.inBounds(cx, cy) {
			s.cells[cy][cx].Rune = DotRune
			s.cells[cy][cx].FG = fillHex
		}
	}
}

// DrawText implements Surface. The text lands on the row containing the
// point just above the baseline.
func (s *Screen) DrawText(x, y float64, text string, fill Color, align Align) {
	col, row := s.CellAt(Point{X: x, Y: y - 1})
	if align == AlignCenter {
		col = int(math.Round(x/s.cellW)) - len([]rune(text))/2
	}
	s.PutText(col, row, text, fill.Over(s.bg).Hex())
}

// String converts the screen buffer to plain text, dropping colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.cols*s.rows + s.rows) // Pre-allocate for efficiency

	for y := 0; y < s.rows; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.cols; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.rows {
		return strings.Repeat(" ", s.cols)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

var _ Surface = (*Screen)(nil)
