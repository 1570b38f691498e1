package stream

import (
	"fumen/internal/action"
	"fumen/internal/buffer"
	"fumen/internal/comment"
	"fumen/internal/field"
	"fumen/internal/page"
	"fumen/internal/piece"
	"fumen/internal/quiz"
)

// Encode renders pages back into a payload string for a field of the
// given main height (23 for v115, 21 for v110).
func Encode(pages []page.Page, top int) (string, error) {
	codec := action.NewCodec(field.Width, top)
	buf := buffer.New()

	prevField := field.NewInnerField(top)
	prevComment := ""
	var prevQuiz *quiz.Quiz
	lastRepeatIndex := -1

	for pageIndex, p := range pages {
		cur := p.Field
		if cur == nil {
			cur = prevField.Copy()
		}

		changed, chunk := field.DiffEncode(prevField, cur, top)
		if changed {
			buf.Merge(chunk)
			lastRepeatIndex = -1
		} else if lastRepeatIndex >= 0 && buf.Get(lastRepeatIndex) < buffer.Base-1 {
			buf.Set(lastRepeatIndex, buf.Get(lastRepeatIndex)+1)
		} else {
			buf.Merge(chunk)
			buf.Push(0, 1)
			lastRepeatIndex = buf.Len() - 1
		}

		op := piece.Operation{Kind: piece.Empty}
		if p.Operation != nil {
			op = *p.Operation
		}

		wantsComment := reconcileComment(pageIndex, p.Comment, &prevComment, &prevQuiz)

		act := action.Action{
			Piece:    op,
			Rise:     p.Flags.Rise,
			Mirror:   p.Flags.Mirror,
			Colorize: p.Flags.Colorize,
			Comment:  wantsComment,
			Lock:     p.Flags.Lock,
		}

		advanceQuiz(&prevQuiz, action.Action{Piece: op, Lock: p.Flags.Lock})

		buf.Push(codec.Encode(act), 3)

		if wantsComment {
			escaped := comment.Escape(p.Comment)
			if len(escaped) > comment.MaxLength {
				escaped = escaped[:comment.MaxLength]
			}
			values, err := comment.EncodeChunks(escaped)
			if err != nil {
				return "", err
			}
			buf.Push(len(escaped), 2)
			for _, v := range values {
				buf.Push(v, 5)
			}
		}

		next := cur.Copy()
		if p.Flags.Lock {
			if err := applyLock(next, act); err != nil {
				return "", err
			}
		}
		prevField = next
	}

	return buf.String(), nil
}

// reconcileComment decides whether the current page needs its own
// comment bytes on the wire, updating prevComment/prevQuiz the way the
// encoder's running state tracks what a decoder would already have
// inferred. A quiz comment that the running quiz would
// already format identically is left implicit; a plain comment
// identical to the last recorded one is likewise left implicit.
func reconcileComment(pageIndex int, text string, prevComment *string, prevQuiz **quiz.Quiz) bool {
	isSet := pageIndex != 0 || text != ""
	if !isSet {
		*prevQuiz = nil
		return false
	}

	if quiz.IsQuizComment(text) {
		if *prevQuiz != nil && (*prevQuiz).Format().ToString() == text {
			return false
		}
		*prevComment = text
		if q, err := quiz.New(text); err == nil {
			*prevQuiz = q
		} else {
			*prevQuiz = nil
		}
		return true
	}

	if *prevQuiz != nil && (*prevQuiz).Format().ToString() == text {
		*prevComment = text
		*prevQuiz = nil
		return false
	}

	*prevQuiz = nil
	if *prevComment != text {
		*prevComment = text
		return true
	}
	return false
}
