// Package quiz implements the "#Q=[H](C)REST" mini-language: a hold slot and a next-piece queue that advances synchronously
// with piece locks.
package quiz

import (
	"strings"

	ferrors "fumen/internal/errors"
	"fumen/internal/piece"
)

// Prefix is the literal header every quiz comment carries.
const Prefix = "#Q="

// emptyFrame is the canonical "nothing queued" frame that NextIfEnd
// peels off before re-checking for a chained quiz.
const emptyFrame = "#Q=[]()"

// Op names which of the three queue transitions get_operation selected.
type Op int

const (
	Direct Op = iota
	Swap
	Stock
)

func (o Op) String() string {
	switch o {
	case Direct:
		return "direct"
	case Swap:
		return "swap"
	case Stock:
		return "stock"
	}
	return "?"
}

// Quiz is an immutable snapshot of the hold slot, current slot, and
// trailing queue text. A terminal Quiz (ToString() == "") represents
// "no active quiz" and arises from Format() collapsing an exhausted
// payload.
type Quiz struct {
	hold, current, rest string
	terminal bool
}

// IsQuizComment reports whether a page comment is a quiz payload.
func IsQuizComment(comment string) bool {
	return strings.HasPrefix(comment, Prefix)
}

// New validates and parses a quiz payload. An empty string is accepted
// as the terminal "no active quiz" value.
func New(payload string) (*Quiz, error) {
	if payload == "" {
		return &Quiz{terminal: true}, nil
	}
	p, err := parse(payload)
	if err != nil {
		return nil, err
	}
	return &Quiz{hold: p.hold, current: p.current, rest: p.rest}, nil
}

// Create builds a quiz with the given hold piece (possibly empty) and a
// non-empty next-piece queue, whose first letter becomes current.
func Create(hold, nexts string) (*Quiz, error) {
	if nexts == "" {
		return nil, ferrors.New(ferrors.BadQuiz, "quiz queue must have at least one piece")
	}
	return New(Prefix + "[" + hold + "](" + nexts[:1] + ")" + nexts[1:])
}

// ToString renders the canonical payload text.
func (q *Quiz) ToString() string {
	if q.terminal {
		return ""
	}
	return Prefix + "[" + q.hold + "](" + q.current + ")" + q.rest
}

// Hold returns the held piece letter, or "" if the hold slot is empty.
func (q *Quiz) Hold() string { return q.hold }

// Current returns the active piece letter, or "" if empty.
func (q *Quiz) Current() string { return q.current }

// Least returns everything queued after the current slot.
func (q *Quiz) Least() string { return q.rest }

// Next returns the first queued letter after current, or "" if none.
func (q *Quiz) Next() string {
	if q.rest == "" {
		return ""
	}
	return q.rest[:1]
}

// LeastAfterNext2 returns the queue text after the "next" letter.
func (q *Quiz) LeastAfterNext2() string {
	if q.rest == "" {
		return ""
	}
	return q.rest[1:]
}

// LeastInActiveBag returns Least(), truncated at the first ';' (the
// boundary before an additional opaque bag).
func (q *Quiz) LeastInActiveBag() string {
	if idx := strings.IndexByte(q.rest, ';'); idx >= 0 {
		return q.rest[:idx]
	}
	return q.rest
}

// CanOperate reports whether the (next_if_end-trimmed) payload still
// names an active quiz.
func (q *Quiz) CanOperate() bool {
	raw := q.ToString()
	if strings.HasPrefix(raw, emptyFrame) {
		raw = raw[len(emptyFrame):]
	}
	return strings.HasPrefix(raw, Prefix) && raw != emptyFrame
}

// NextIfEnd peels a leading "#Q=[]()" frame, re-parsing whatever
// follows. If the remainder isn't itself a well-formed quiz payload, it
// falls back to the terminal quiz: there is nothing left to operate on.
func (q *Quiz) NextIfEnd() *Quiz {
	raw := q.ToString()
	if !strings.HasPrefix(raw, emptyFrame) {
		return q
	}
	rest := raw[len(emptyFrame):]
	next, err := New(rest)
	if err != nil {
		return &Quiz{terminal: true}
	}
	return next
}

// GetOperation chooses which queue transition advancing over used would
// apply.
func (q *Quiz) GetOperation(used piece.Kind) (Op, error) {
	name := used.String()

	if name == q.current && q.current != "" {
		return Direct, nil
	}
	if name == q.hold && q.hold != "" {
		return Swap, nil
	}
	if q.hold == "" && name == q.Next() && name != "" {
		return Stock, nil
	}
	if q.current == "" && name == q.Next() && name != "" {
		return Direct, nil
	}
	return Direct, ferrors.Newf(ferrors.BadQuiz, "unexpected piece %s for quiz %s", name, q.ToString())
}

// Direct consumes current, promoting the queue by one slot; if current
// is already empty it instead consumes next, promoting the slot after
// it.
func (q *Quiz) Direct() (*Quiz, error) {
	if q.current != "" {
		return &Quiz{hold: q.hold, current: q.Next(), rest: q.LeastAfterNext2()}, nil
	}
	least := q.LeastAfterNext2()
	var newCurrent, newRest string
	if least != "" {
		newCurrent, newRest = least[:1], least[1:]
	}
	return &Quiz{hold: q.hold, current: newCurrent, rest: newRest}, nil
}

// Swap moves current into hold and promotes next into current.
func (q *Quiz) Swap() (*Quiz, error) {
	if q.hold == "" {
		return nil, ferrors.Newf(ferrors.BadQuiz, "cannot swap: hold is empty in %s", q.ToString())
	}
	return &Quiz{hold: q.current, current: q.Next(), rest: q.LeastAfterNext2()}, nil
}

// Stock moves current into hold and promotes next into current,
// requiring hold to start empty.
func (q *Quiz) Stock() (*Quiz, error) {
	if q.hold != "" || q.Next() == "" {
		return nil, ferrors.Newf(ferrors.BadQuiz, "cannot stock: %s", q.ToString())
	}
	return &Quiz{hold: q.current, current: q.Next(), rest: q.LeastAfterNext2()}, nil
}

// Operate applies the named transition.
func (q *Quiz) Operate(op Op) (*Quiz, error) {
	switch op {
	case Direct:
		return q.Direct()
	case Swap:
		return q.Swap()
	case Stock:
		return q.Stock()
	}
	return nil, ferrors.Newf(ferrors.BadQuiz, "unknown quiz operation %d", op)
}

// Format canonicalises q: an exhausted payload collapses to the
// terminal quiz; an empty current slot with a held piece promotes the
// hold into view; an empty current and empty hold promotes the head of
// the queue into current.
func (q *Quiz) Format() *Quiz {
	base := q.NextIfEnd()
	if base.ToString() == emptyFrame {
		return &Quiz{terminal: true}
	}
	if base.current == "" && base.hold != "" {
		return &Quiz{hold: "", current: base.hold, rest: base.rest}
	}
	if base.current == "" {
		least := base.rest
		if least == "" {
			return &Quiz{terminal: true}
		}
		return &Quiz{hold: base.hold, current: least[:1], rest: least[1:]}
	}
	return base
}

// GetHoldPiece returns the held piece, or Empty if none or the quiz is
// inactive.
func (q *Quiz) GetHoldPiece() piece.Kind {
	if !q.CanOperate() || q.hold == "" {
		return piece.Empty
	}
	k, err := piece.Parse(q.hold)
	if err != nil {
		return piece.Empty
	}
	return k
}

// GetNextPieces returns up to maximum upcoming pieces (current, next,
// then the active bag), Empty-padded to maximum. maximum < 0 means "no
// limit, no padding".
func (q *Quiz) GetNextPieces(maximum int) []piece.Kind {
	if !q.CanOperate() {
		if maximum < 0 {
			return nil
		}
		return make([]piece.Kind, maximum)
	}

	afterNext := q.LeastAfterNext2()
	if idx := strings.IndexByte(afterNext, ';'); idx >= 0 {
		afterNext = afterNext[:idx]
	}
	names := q.current + q.Next() + afterNext
	if maximum >= 0 {
		if len(names) > maximum {
			names = names[:maximum]
		} else if len(names) < maximum {
			names += strings.Repeat(" ", maximum-len(names))
		}
	}

	out := make([]piece.Kind, len(names))
	for i := 0; i < len(names); i++ {
		if names[i] == ' ' {
			out[i] = piece.Empty
			continue
		}
		k, err := piece.Parse(string(names[i]))
		if err != nil {
			out[i] = piece.Empty
			continue
		}
		out[i] = k
	}
	return out
}
