package field

import "fumen/internal/piece"

// GarbageHeight is the fixed height of the garbage row beneath a field.
const GarbageHeight = 1

// InnerField pairs a main field with a single garbage row, exposing a
// unified coordinate space where y<0 addresses garbage.
type InnerField struct {
	main    *PlayField
	garbage *PlayField
	height  int
}

// NewInnerField returns an empty InnerField with the given main height
// (23 for v115, 21 for v110 decode; encode always uses 23).
func NewInnerField(height int) *InnerField {
	return &InnerField{
		main:    NewPlayField(Width * height),
		garbage: NewPlayField(Width * GarbageHeight),
		height:  height,
	}
}

// Height returns the main field's row count.
func (f *InnerField) Height() int {
	return f.height
}

func (f *InnerField) resolve(x, y int) (*PlayField, int, int) {
	if y >= 0 {
		return f.main, x, y
	}
	return f.garbage, x, -(y + 1)
}

// GetAt returns the piece kind at the unified coordinate (x, y).
func (f *InnerField) GetAt(x, y int) piece.Kind {
	pf, px, py := f.resolve(x, y)
	return pf.Get(px, py)
}

// SetAt overwrites the piece kind at the unified coordinate (x, y).
func (f *InnerField) SetAt(x, y int, k piece.Kind) {
	pf, px, py := f.resolve(x, y)
	pf.Set(px, py, k)
}

// AddAt adds a signed offset to the ordinal at the unified coordinate
// (x, y), used by the field-diff decoder.
func (f *InnerField) AddAt(x, y, value int) {
	pf, px, py := f.resolve(x, y)
	pf.AddOffset(px, py, value)
}

// Fill sets every cell of op's positions to op.Kind.
func (f *InnerField) Fill(op piece.Operation) error {
	positions, err := op.Positions()
	if err != nil {
		return err
	}
	for _, p := range positions {
		f.SetAt(p.X, p.Y, op.Kind)
	}
	return nil
}

// ClearLine removes every fully non-Empty row in the main field.
func (f *InnerField) ClearLine() {
	f.main.ClearLine()
}

// RiseGarbage prepends the garbage row into the main field (bottom-up),
// keeping the lowest f.height rows so the topmost row is dropped, then
// clears garbage.
func (f *InnerField) RiseGarbage() {
	f.main.Up(f.garbage)
	f.garbage.ClearAll()
}

// Mirror reverses every row of the main field. The garbage row is left
// untouched.
func (f *InnerField) Mirror() {
	f.main.Mirror()
}

// Copy returns a deep copy of f.
func (f *InnerField) Copy() *InnerField {
	return &InnerField{
		main:    f.main.Copy(),
		garbage: f.garbage.Copy(),
		height:  f.height,
	}
}

// Equals reports whether f and other have identical main and garbage
// fields.
func (f *InnerField) Equals(other *InnerField) bool {
	return f.main.Equals(other.main) && f.garbage.Equals(other.garbage)
}

// ShiftLeft, ShiftRight, ShiftUp, ShiftDown translate the main field in
// place.
func (f *InnerField) ShiftLeft()  { f.main.ShiftLeft() }
func (f *InnerField) ShiftRight() { f.main.ShiftRight() }
func (f *InnerField) ShiftUp()    { f.main.ShiftUp() }
func (f *InnerField) ShiftDown()  { f.main.ShiftDown() }

// MainArray returns a copy of the main field's cells.
func (f *InnerField) MainArray() []piece.Kind {
	return f.main.ToArray()
}
