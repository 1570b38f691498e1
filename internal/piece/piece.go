// Package piece defines the PieceKind and Rotation enums and the fixed
// block-offset geometry used to fill and collide pieces against a field.
// Ordinals are part of the wire format and must never change.
package piece

import ferrors "fumen/internal/errors"

// Kind is a tagged piece variant. Its numeric ordinal is part of the wire
// format.
type Kind int

const (
	Empty Kind = iota
	I
	L
	O
	Z
	T
	J
	S
	Gray
)

// Mino reports whether k participates in piece geometry and Quiz
// advancement (every kind except Empty and Gray).
func (k Kind) Mino() bool {
	return k != Empty && k != Gray
}

func (k Kind) String() string {
	switch k {
	case Empty:
		return "_"
	case I:
		return "I"
	case L:
		return "L"
	case O:
		return "O"
	case Z:
		return "Z"
	case T:
		return "T"
	case J:
		return "J"
	case S:
		return "S"
	case Gray:
		return "X"
	}
	return "?"
}

// Parse maps a single display character to a Kind.
func Parse(name string) (Kind, error) {
	switch name {
	case "I":
		return I, nil
	case "L":
		return L, nil
	case "O":
		return O, nil
	case "Z":
		return Z, nil
	case "T":
		return T, nil
	case "J":
		return J, nil
	case "S":
		return S, nil
	case "X", "x":
		return Gray, nil
	case "", " ", "_":
		return Empty, nil
	}
	return Empty, ferrors.Newf(ferrors.BadPiece, "unknown piece name %q", name)
}

// FromOrdinal validates and converts a decoded ordinal in [0, 9) to a
// Kind.
func FromOrdinal(n int) (Kind, error) {
	if n < 0 || n > int(Gray) {
		return Empty, ferrors.Newf(ferrors.BadPiece, "piece ordinal %d out of range", n)
	}
	return Kind(n), nil
}

// Rotation is a tagged rotation variant with ordinals fixed by the wire
// format.
type Rotation int

const (
	Reverse Rotation = iota
	Right
	Spawn
	Left
)

func (r Rotation) String() string {
	switch r {
	case Reverse:
		return "reverse"
	case Right:
		return "right"
	case Spawn:
		return "spawn"
	case Left:
		return "left"
	}
	return "?"
}

// ParseRotation maps a rotation name to a Rotation.
func ParseRotation(name string) (Rotation, error) {
	switch name {
	case "reverse":
		return Reverse, nil
	case "right":
		return Right, nil
	case "spawn":
		return Spawn, nil
	case "left":
		return Left, nil
	}
	return Spawn, ferrors.Newf(ferrors.BadRotation, "unknown rotation name %q", name)
}

// RotationFromOrdinal validates and converts a decoded ordinal in [0, 4)
// to a Rotation.
func RotationFromOrdinal(n int) (Rotation, error) {
	if n < 0 || n > int(Left) {
		return Spawn, ferrors.Newf(ferrors.BadRotation, "rotation ordinal %d out of range", n)
	}
	return Rotation(n), nil
}

// Offset is a single (dx, dy) block offset.
type Offset struct {
	DX, DY int
}

// spawnOffsets gives the four block offsets of each mino piece at Spawn
// rotation.
var spawnOffsets = map[Kind][4]Offset{
	I: {{0, 0}, {-1, 0}, {1, 0}, {2, 0}},
	T: {{0, 0}, {-1, 0}, {1, 0}, {0, 1}},
	O: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	L: {{0, 0}, {-1, 0}, {1, 0}, {1, 1}},
	J: {{0, 0}, {-1, 0}, {1, 0}, {-1, 1}},
	S: {{0, 0}, {-1, 0}, {0, 1}, {1, 1}},
	Z: {{0, 0}, {1, 0}, {0, 1}, {-1, 1}},
}

func rotate(offsets [4]Offset, r Rotation) [4]Offset {
	var out [4]Offset
	for i, o := range offsets {
		switch r {
		case Right:
			out[i] = Offset{o.DY, -o.DX}
		case Reverse:
			out[i] = Offset{-o.DX, -o.DY}
		case Left:
			out[i] = Offset{-o.DY, o.DX}
		default: // Spawn
			out[i] = o
		}
	}
	return out
}

// Blocks returns the four block offsets of k at rotation r. k must be a
// mino piece.
func Blocks(k Kind, r Rotation) ([4]Offset, error) {
	base, ok := spawnOffsets[k]
	if !ok {
		return [4]Offset{}, ferrors.Newf(ferrors.BadPiece, "piece %s has no geometry", k)
	}
	return rotate(base, r), nil
}

// XY is a single field cell coordinate.
type XY struct {
	X, Y int
}

// Positions returns the four cells occupied by a k/r piece anchored at
// (x, y), sorted in y-then-x order.
func Positions(k Kind, r Rotation, x, y int) ([]XY, error) {
	blocks, err := Blocks(k, r)
	if err != nil {
		return nil, err
	}
	positions := make([]XY, 4)
	for i, b := range blocks {
		positions[i] = XY{X: x + b.DX, Y: y + b.DY}
	}
	for i := 1; i < len(positions); i++ {
		for j := i; j > 0 && less(positions[j], positions[j-1]); j-- {
			positions[j], positions[j-1] = positions[j-1], positions[j]
		}
	}
	return positions, nil
}

func less(a, b XY) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// Operation is a placement: a piece kind, rotation, and anchor cell.
// Empty is a valid Kind here and means "no placement". The
// original source keeps three overlapping types for this (Operation,
// Mino, InnerOperation) because it mixes string- and enum-typed piece
// names; Go's type system doesn't need that duplication, so they
// collapse to this one struct.
type Operation struct {
	Kind     Kind
	Rotation Rotation
	X, Y     int
}

// Positions returns the four occupied cells of op, sorted y-then-x.
func (op Operation) Positions() ([]XY, error) {
	return Positions(op.Kind, op.Rotation, op.X, op.Y)
}

// InBounds reports whether every cell op occupies lies within a
// width x height field.
func (op Operation) InBounds(width, height int) (bool, error) {
	positions, err := op.Positions()
	if err != nil {
		return false, err
	}
	for _, p := range positions {
		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			return false, nil
		}
	}
	return true, nil
}
