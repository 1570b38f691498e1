// Package fumen decodes and encodes the fumen textual format: a compact
// representation of a sequence of Tetris-style playfield snapshots,
// commonly shared as a short string or embedded in a viewer URL.
package fumen

import (
	"fumen/internal/page"
	"fumen/internal/stream"
)

// Decode parses a fumen string, tolerating a surrounding viewer URL, '?'
// chunk separators, and surrounding whitespace, and returns the full
// materialised page sequence.
func Decode(s string) ([]page.Page, error) {
	top, data, err := stream.Extract(s)
	if err != nil {
		return nil, err
	}
	return stream.Decode(data, top)
}

// Encode renders pages into a v115 fumen string, inserting '?' chunk
// separators once the payload is long enough to need them. Fields in
// pages must have been built for a 23-row main height; Encode always
// emits the v115 format.
func Encode(pages []page.Page) (string, error) {
	const top = 23
	data, err := stream.Encode(pages, top)
	if err != nil {
		return "", err
	}
	return stream.FormatHeader(top, data), nil
}
