package field

import (
	"strings"

	ferrors "fumen/internal/errors"
	"fumen/internal/piece"
)

// Field is a façade over InnerField for callers building tools on top of
// the codec, exposing placement and collision helpers beyond what the
// decode/encode hot path needs.
type Field struct {
	inner *InnerField
}

// NewField wraps an InnerField in a Field façade.
func NewField(inner *InnerField) *Field {
	return &Field{inner: inner}
}

// Inner returns the wrapped InnerField.
func (f *Field) Inner() *InnerField {
	return f.inner
}

func (f *Field) canFillAt(p piece.XY) bool {
	if p.X < 0 || p.X >= Width || p.Y < 0 || p.Y >= f.inner.height {
		return false
	}
	return f.inner.GetAt(p.X, p.Y) == piece.Empty
}

// CanFill reports whether every cell op occupies is in bounds and empty.
// A nil-like zero Operation (Kind Empty) always returns true.
func (f *Field) CanFill(op piece.Operation) (bool, error) {
	if op.Kind == piece.Empty {
		return true, nil
	}
	positions, err := op.Positions()
	if err != nil {
		return false, err
	}
	for _, p := range positions {
		if !f.canFillAt(p) {
			return false, nil
		}
	}
	return true, nil
}

// CanLock reports whether op can be filled and is resting on the ground
// (the cell one row below is not fillable).
func (f *Field) CanLock(op piece.Operation) (bool, error) {
	if op.Kind == piece.Empty {
		return true, nil
	}
	canFill, err := f.CanFill(op)
	if err != nil || !canFill {
		return false, err
	}
	below := piece.Operation{Kind: op.Kind, Rotation: op.Rotation, X: op.X, Y: op.Y - 1}
	canFillBelow, err := f.CanFill(below)
	if err != nil {
		return false, err
	}
	return !canFillBelow, nil
}

// Fill stamps op's cells with its kind. With force=false, it validates
// CanFill first and returns a FillConflict error on failure.
func (f *Field) Fill(op piece.Operation, force bool) error {
	if op.Kind == piece.Empty {
		return nil
	}
	if !force {
		ok, err := f.CanFill(op)
		if err != nil {
			return err
		}
		if !ok {
			return ferrors.Newf(ferrors.FillConflict, "cannot fill %s at (%d, %d)", op.Kind, op.X, op.Y)
		}
	}
	return f.inner.Fill(op)
}

// Put drops op straight down from its given y until it rests on the
// ground, then fills it there. If no resting position exists at or
// below y, it returns a FillConflict error and fills nothing.
func (f *Field) Put(op piece.Operation) (piece.Operation, error) {
	if op.Kind == piece.Empty {
		return op, nil
	}
	for y := op.Y; y >= 0; y-- {
		candidate := piece.Operation{Kind: op.Kind, Rotation: op.Rotation, X: op.X, Y: y}
		locked, err := f.CanLock(candidate)
		if err != nil {
			return op, err
		}
		if locked {
			if err := f.Fill(candidate, false); err != nil {
				return op, err
			}
			return candidate, nil
		}
	}
	return op, ferrors.Newf(ferrors.FillConflict, "cannot put %s: no resting position", op.Kind)
}

// ClearLine removes every fully non-Empty row.
func (f *Field) ClearLine() {
	f.inner.ClearLine()
}

// At returns the piece kind at (x, y).
func (f *Field) At(x, y int) piece.Kind {
	return f.inner.GetAt(x, y)
}

// Set overwrites the piece kind at (x, y).
func (f *Field) Set(x, y int, k piece.Kind) {
	f.inner.SetAt(x, y, k)
}

func (f *Field) ShiftLeft()  { f.inner.ShiftLeft() }
func (f *Field) ShiftRight() { f.inner.ShiftRight() }
func (f *Field) ShiftUp()    { f.inner.ShiftUp() }
func (f *Field) ShiftDown()  { f.inner.ShiftDown() }

// Copy returns a deep copy of f.
func (f *Field) Copy() *Field {
	return &Field{inner: f.inner.Copy()}
}

// Option controls String's rendering.
type Option struct {
	Reduced   *bool
	Separator string
	Garbage   *bool
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// String renders the field top-down as rows of piece display characters,
// one row per line (or Option.Separator), optionally skipping leading
// blank rows and including the garbage row.
func (f *Field) String(opt Option) string {
	skip := boolOr(opt.Reduced, true)
	separator := opt.Separator
	if separator == "" {
		separator = "\n"
	}
	minY := -1
	if opt.Garbage != nil && !*opt.Garbage {
		minY = 0
	}

	var sb strings.Builder
	for y := f.inner.height - 1; y >= minY; y-- {
		var line strings.Builder
		for x := 0; x < Width; x++ {
			line.WriteString(f.At(x, y).String())
		}
		row := line.String()
		if skip && row == strings.Repeat(piece.Empty.String(), Width) {
			continue
		}
		skip = false
		sb.WriteString(row)
		if y != minY {
			sb.WriteString(separator)
		}
	}
	return sb.String()
}
