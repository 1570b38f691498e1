// Package errors defines the typed failure modes of the fumen codec.
package errors

import "fmt"

// Kind identifies one of the codec's named failure modes.
type Kind string

const (
	UnsupportedVersion Kind = "UnsupportedVersion"
	Truncated          Kind = "Truncated"
	BadDigit           Kind = "BadDigit"
	BadPiece           Kind = "BadPiece"
	BadRotation        Kind = "BadRotation"
	BadQuiz            Kind = "BadQuiz"
	FillConflict       Kind = "FillConflict"
)

// FumenError is the single error type raised by every package in this
// module. Callers branch on Kind with errors.As, not string matching.
type FumenError struct {
	Kind    Kind
	Message string
	// Page is the 0-based page index being processed when the error was
	// raised, or -1 if the error occurred outside any page (e.g. header
	// extraction).
	Page int
	// Wrapped is the underlying error, if this FumenError was produced by
	// attaching page context to one raised deeper in the call stack.
	Wrapped error
}

func (e *FumenError) Error() string {
	if e.Page >= 0 {
		return fmt.Sprintf("%s: %s (page %d)", e.Kind, e.Message, e.Page)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *FumenError) Unwrap() error {
	return e.Wrapped
}

// New creates a FumenError with no page context.
func New(kind Kind, message string) *FumenError {
	return &FumenError{Kind: kind, Message: message, Page: -1}
}

// Newf creates a FumenError with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *FumenError {
	return &FumenError{Kind: kind, Message: fmt.Sprintf(format, args...), Page: -1}
}

// WithPage attaches the page index currently being decoded or encoded to
// err, wrapping it if err is not already a *FumenError.
func WithPage(err error, page int) error {
	if err == nil {
		return nil
	}
	if fe, ok := err.(*FumenError); ok {
		if fe.Page < 0 {
			fe.Page = page
		}
		return fe
	}
	return &FumenError{Kind: "Unknown", Message: err.Error(), Page: page, Wrapped: err}
}

// Is reports whether err is a *FumenError of the given kind.
func Is(err error, kind Kind) bool {
	fe, ok := err.(*FumenError)
	return ok && fe.Kind == kind
}
