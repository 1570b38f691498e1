// Package action implements the mixed-radix Action codec:
// packing a piece placement and a handful of flags into the 18-bit
// integer pushed as three buffer digits per page.
package action

import (
	"fumen/internal/field"
	"fumen/internal/piece"
)

// Action is a decoded placement plus the flags that ride alongside it on
// the wire.
type Action struct {
	Piece    piece.Operation
	Rise     bool
	Mirror   bool
	Colorize bool
	Comment  bool
	Lock     bool
}

// delta is a coordinate adjustment applied to specific (piece, rotation)
// pairs before computing the wire position.
type delta struct {
	dx, dy int
}

var adjustments = map[piece.Kind]map[piece.Rotation]delta{
	piece.O: {
		piece.Left:    {-1, +1},
		piece.Reverse: {-1, 0},
		piece.Spawn:   {0, +1},
	},
	piece.I: {
		piece.Reverse: {-1, 0},
		piece.Left:    {0, +1},
	},
	piece.S: {
		piece.Spawn: {0, +1},
		piece.Right: {+1, 0},
	},
	piece.Z: {
		piece.Spawn: {0, +1},
		piece.Left:  {-1, 0},
	},
}

func adjustmentFor(k piece.Kind, r piece.Rotation) (delta, bool) {
	byRotation, ok := adjustments[k]
	if !ok {
		return delta{}, false
	}
	d, ok := byRotation[r]
	return d, ok
}

// Codec packs and unpacks Actions for a field of the given width and top
// height (23 for v115, 21 for v110 decode).
type Codec struct {
	width int
	top   int
}

// NewCodec returns a Codec for the given field width and top height.
func NewCodec(width, top int) *Codec {
	return &Codec{width: width, top: top}
}

func (c *Codec) blocks() int {
	return field.Blocks(c.top)
}

// encodePosition maps (kind, rotation, x, y) to the wire position field,
// applying the coordinate adjustment table and forcing non-mino pieces
// to the fixed (0, top-1) slot.
func (c *Codec) encodePosition(k piece.Kind, r piece.Rotation, x, y int) int {
	if !k.Mino() {
		x, y = 0, c.top-1
	} else if d, ok := adjustmentFor(k, r); ok {
		x += d.dx
		y += d.dy
	}
	return (c.top-y-1)*c.width + x
}

// decodePosition is encodePosition's inverse: it recovers (x, y) from a
// wire position, reversing the adjustment for mino pieces.
func (c *Codec) decodePosition(n int, k piece.Kind, r piece.Rotation) (x, y int) {
	x = n % c.width
	originY := n / c.width
	y = c.top - originY - 1

	if d, ok := adjustmentFor(k, r); ok {
		x -= d.dx
		y -= d.dy
	}
	return x, y
}

func encodeBool(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Encode packs a into its 18-bit wire value.
func (c *Codec) Encode(a Action) int {
	rotation := int(a.Piece.Rotation)
	if !a.Piece.Kind.Mino() {
		rotation = 0
	}

	value := encodeBool(!a.Lock)
	value *= 2
	value += encodeBool(a.Comment)
	value *= 2
	value += encodeBool(a.Colorize)
	value *= 2
	value += encodeBool(a.Mirror)
	value *= 2
	value += encodeBool(a.Rise)
	value *= c.blocks()
	value += c.encodePosition(a.Piece.Kind, a.Piece.Rotation, a.Piece.X, a.Piece.Y)
	value *= 4
	value += rotation
	value *= 8
	value += int(a.Piece.Kind)

	return value
}

// Decode unpacks a wire value into an Action.
func (c *Codec) Decode(v int) (Action, error) {
	value := v

	k, err := piece.FromOrdinal(value % 8)
	if err != nil {
		return Action{}, err
	}
	value /= 8

	r, err := piece.RotationFromOrdinal(value % 4)
	if err != nil {
		return Action{}, err
	}
	value /= 4

	blocks := c.blocks()
	x, y := c.decodePosition(value%blocks, k, r)
	value /= blocks

	rise := value%2 != 0
	value /= 2
	mirror := value%2 != 0
	value /= 2
	colorize := value%2 != 0
	value /= 2
	comment := value%2 != 0
	value /= 2
	lock := value%2 == 0

	return Action{
		Piece:    piece.Operation{Kind: k, Rotation: r, X: x, Y: y},
		Rise:     rise,
		Mirror:   mirror,
		Colorize: colorize,
		Comment:  comment,
		Lock:     lock,
	}, nil
}
