// Package buffer implements the base64-like digit sequence that fumen
// strings are built from: an ordered sequence of 6-bit digits supporting
// little-endian variable-width polling from the front and pushing at the
// back.
package buffer

import (
	"strings"

	ferrors "fumen/internal/errors"
)

// alphabet is the fixed 64-symbol table fumen digits are drawn from.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// Base is the radix of a single digit (len(alphabet)).
const Base = len(alphabet)

var digitValue [256]int8

func init() {
	for i := range digitValue {
		digitValue[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		digitValue[alphabet[i]] = int8(i)
	}
}

// Buffer is a mutable ordered sequence of digits in [0, Base).
type Buffer struct {
	digits []int
}

// New returns an empty Buffer.
func New() *Buffer {
	return &Buffer{}
}

// FromString parses s into a Buffer, one digit per character.
func FromString(s string) (*Buffer, error) {
	digits := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		v := digitValue[s[i]]
		if v < 0 {
			return nil, ferrors.Newf(ferrors.BadDigit, "character %q is not in the fumen alphabet", s[i])
		}
		digits[i] = int(v)
	}
	return &Buffer{digits: digits}, nil
}

// Len returns the number of digits remaining in the buffer.
func (b *Buffer) Len() int {
	return len(b.digits)
}

// IsEmpty reports whether the buffer has no digits left.
func (b *Buffer) IsEmpty() bool {
	return len(b.digits) == 0
}

// Poll removes the first n digits from the front of the buffer and
// returns the little-endian integer they encode: sum(d[i] * Base^i).
func (b *Buffer) Poll(n int) (int, error) {
	if len(b.digits) < n {
		return 0, ferrors.Newf(ferrors.Truncated, "need %d digits, only %d remain", n, len(b.digits))
	}
	value := 0
	mult := 1
	for i := 0; i < n; i++ {
		value += b.digits[i] * mult
		mult *= Base
	}
	b.digits = b.digits[n:]
	return value, nil
}

// Push appends n digits encoding value, little-endian, to the back of the
// buffer.
func (b *Buffer) Push(value, n int) {
	for i := 0; i < n; i++ {
		b.digits = append(b.digits, value%Base)
		value /= Base
	}
}

// Get returns the digit at index i.
func (b *Buffer) Get(i int) int {
	return b.digits[i]
}

// Set overwrites the digit at index i.
func (b *Buffer) Set(i, value int) {
	b.digits[i] = value
}

// Merge appends other's digits to the back of b.
func (b *Buffer) Merge(other *Buffer) {
	b.digits = append(b.digits, other.digits...)
}

// String renders the buffer as fumen alphabet characters.
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow(len(b.digits))
	for _, d := range b.digits {
		sb.WriteByte(alphabet[d])
	}
	return sb.String()
}
