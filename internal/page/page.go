// Package page defines Page, Flags, and Refs: the per-snapshot record a
// decoded fumen stream is built from.
package page

import (
	"fumen/internal/field"
	"fumen/internal/piece"
)

// Flags are the per-page display bits. Lock, Mirror, Colorize and Rise
// are carried in the Action codec; Quiz is not on the wire and is set by
// the decoder when a quiz comment is active for the page.
type Flags struct {
	Lock     bool
	Mirror   bool
	Colorize bool
	Rise     bool
	Quiz     bool
}

// Refs records which earlier page a field or comment was inherited
// from, when this page didn't carry its own.
type Refs struct {
	Field   *int
	Comment *int
}

// Page is one materialised snapshot: an index, a fully-built field, an
// optional planned piece, display flags, a ref pair, and effective
// comment text.
type Page struct {
	Index     int
	Field     *field.InnerField
	Operation *piece.Operation
	Comment   string
	Flags     Flags
	Refs      Refs
}
