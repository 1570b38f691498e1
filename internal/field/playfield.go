// Package field implements PlayField and InnerField: the
// fixed-width grid of piece kinds that a fumen page's field snapshot is
// built from, plus the run-length field-diff codec.
package field

import "fumen/internal/piece"

// Width is the fixed field width.
const Width = 10

// PlayField is a flat grid of piece kinds, Width cells wide. Cell (x, y)
// lives at index x + y*Width; y grows upward.
type PlayField struct {
	cells []piece.Kind
}

// NewPlayField returns an all-Empty PlayField of the given cell count
// (must be a multiple of Width).
func NewPlayField(length int) *PlayField {
	return &PlayField{cells: make([]piece.Kind, length)}
}

func (p *PlayField) index(x, y int) int {
	return x + y*Width
}

// Height is the number of rows (len(cells) / Width).
func (p *PlayField) Height() int {
	return len(p.cells) / Width
}

// Get returns the piece kind at (x, y).
func (p *PlayField) Get(x, y int) piece.Kind {
	return p.cells[p.index(x, y)]
}

// Set overwrites the piece kind at (x, y).
func (p *PlayField) Set(x, y int, k piece.Kind) {
	p.cells[p.index(x, y)] = k
}

// AddOffset adds value to the ordinal at (x, y), used by the field-diff
// decoder to apply a signed delta to a cell.
func (p *PlayField) AddOffset(x, y, value int) {
	idx := p.index(x, y)
	p.cells[idx] = piece.Kind(int(p.cells[idx]) + value)
}

// FillAll sets every cell in positions to k.
func (p *PlayField) FillAll(positions []piece.XY, k piece.Kind) {
	for _, xy := range positions {
		p.Set(xy.X, xy.Y, k)
	}
}

// ClearLine removes every row that is entirely non-Empty, shifting rows
// above it down and filling in Empty rows at the top.
func (p *PlayField) ClearLine() {
	height := p.Height()
	newCells := append([]piece.Kind(nil), p.cells...)

	for y := height - 1; y >= 0; y-- {
		row := p.cells[y*Width : (y+1)*Width]
		filled := true
		for _, c := range row {
			if c == piece.Empty {
				filled = false
				break
			}
		}
		if !filled {
			continue
		}

		bottom := newCells[:y*Width]
		over := newCells[(y+1)*Width:]
		merged := make([]piece.Kind, 0, len(newCells))
		merged = append(merged, bottom...)
		merged = append(merged, over...)
		merged = append(merged, make([]piece.Kind, Width)...)
		newCells = merged
	}

	p.cells = newCells
}

// Up prepends rows (bottom-up) to p, truncating back to p's original
// length. Used to rise a garbage row into the main field.
func (p *PlayField) Up(rows *PlayField) {
	merged := make([]piece.Kind, 0, len(rows.cells)+len(p.cells))
	merged = append(merged, rows.cells...)
	merged = append(merged, p.cells...)
	p.cells = merged[:len(p.cells)]
}

// Mirror reverses the cell order within every row.
func (p *PlayField) Mirror() {
	height := p.Height()
	newCells := make([]piece.Kind, 0, len(p.cells))
	for y := 0; y < height; y++ {
		row := append([]piece.Kind(nil), p.cells[y*Width:(y+1)*Width]...)
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
		newCells = append(newCells, row...)
	}
	p.cells = newCells
}

// ShiftLeft shifts every row one cell left, filling the rightmost column
// with Empty. Not on the decode/encode hot path; exposed
// for the Field façade.
func (p *PlayField) ShiftLeft() {
	height := p.Height()
	for y := 0; y < height; y++ {
		for x := 0; x < Width-1; x++ {
			p.cells[p.index(x, y)] = p.cells[p.index(x+1, y)]
		}
		p.cells[p.index(Width-1, y)] = piece.Empty
	}
}

// ShiftRight shifts every row one cell right, filling the leftmost
// column with Empty.
func (p *PlayField) ShiftRight() {
	height := p.Height()
	for y := 0; y < height; y++ {
		for x := Width - 1; x > 0; x-- {
			p.cells[p.index(x, y)] = p.cells[p.index(x-1, y)]
		}
		p.cells[p.index(0, y)] = piece.Empty
	}
}

// ShiftUp inserts an Empty row at the bottom and drops the top row.
func (p *PlayField) ShiftUp() {
	blanks := make([]piece.Kind, Width)
	merged := append(blanks, p.cells...)
	p.cells = merged[:len(p.cells)]
}

// ShiftDown drops the bottom row and appends an Empty row at the top.
func (p *PlayField) ShiftDown() {
	blanks := make([]piece.Kind, Width)
	if len(p.cells) < Width {
		p.cells = blanks[:len(p.cells)]
		return
	}
	merged := append(append([]piece.Kind{}, p.cells[Width:]...), blanks...)
	p.cells = merged
}

// ToArray returns a copy of the underlying cells.
func (p *PlayField) ToArray() []piece.Kind {
	return append([]piece.Kind(nil), p.cells...)
}

// ClearAll resets every cell to Empty.
func (p *PlayField) ClearAll() {
	for i := range p.cells {
		p.cells[i] = piece.Empty
	}
}

// Copy returns a deep copy of p.
func (p *PlayField) Copy() *PlayField {
	return &PlayField{cells: append([]piece.Kind(nil), p.cells...)}
}

// Equals reports whether p and other have identical cells.
func (p *PlayField) Equals(other *PlayField) bool {
	if len(p.cells) != len(other.cells) {
		return false
	}
	for i := range p.cells {
		if p.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
