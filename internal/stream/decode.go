// Package stream implements the stateful per-page decode and encode
// loops: the driver that composes field diffs,
// repeat runs, action bits, comment payloads, and Quiz advancement.
package stream

import (
	"fumen/internal/action"
	"fumen/internal/buffer"
	"fumen/internal/comment"
	ferrors "fumen/internal/errors"
	"fumen/internal/field"
	"fumen/internal/page"
	"fumen/internal/piece"
	"fumen/internal/quiz"
)

// Decode parses data (the stripped payload after the version header)
// into a materialised page sequence. top is 23 for v115, 21 for v110.
func Decode(data string, top int) ([]page.Page, error) {
	buf, err := buffer.FromString(data)
	if err != nil {
		return nil, err
	}

	codec := action.NewCodec(field.Width, top)
	prevField := field.NewInnerField(top)

	repeatCount := 0
	refField := 0
	refComment := 0
	lastCommentText := ""
	var activeQuiz *quiz.Quiz

	var pages []page.Page
	pageIndex := 0

	for !buf.IsEmpty() {
		current, changed, err := decodeField(buf, prevField, top, &repeatCount)
		if err != nil {
			return nil, ferrors.WithPage(err, pageIndex)
		}

		actionValue, err := buf.Poll(3)
		if err != nil {
			return nil, ferrors.WithPage(err, pageIndex)
		}
		act, err := codec.Decode(actionValue)
		if err != nil {
			return nil, ferrors.WithPage(err, pageIndex)
		}

		text, textSet, err := decodeComment(buf, act, pageIndex, &lastCommentText, &refComment, &activeQuiz)
		if err != nil {
			return nil, ferrors.WithPage(err, pageIndex)
		}

		quizOn := activeQuiz != nil
		advanceQuiz(&activeQuiz, act)

		var op *piece.Operation
		if act.Piece.Kind != piece.Empty {
			p := act.Piece
			op = &p
		}

		var fieldRef *int
		if changed || pageIndex == 0 {
			refField = pageIndex
		} else {
			r := refField
			fieldRef = &r
		}

		var commentRef *int
		if !textSet {
			text = lastCommentText
		}
		if act.Comment {
			// own comment: no ref.
		} else if pageIndex != 0 {
			r := refComment
			commentRef = &r
		}

		pages = append(pages, page.Page{
			Index:     pageIndex,
			Field:     current.Copy(),
			Operation: op,
			Comment:   text,
			Flags: page.Flags{
				Lock:     act.Lock,
				Mirror:   act.Mirror,
				Colorize: act.Colorize,
				Rise:     act.Rise,
				Quiz:     quizOn,
			},
			Refs: page.Refs{Field: fieldRef, Comment: commentRef},
		})

		pageIndex++

		if act.Lock {
			if err := applyLock(current, act); err != nil {
				return nil, ferrors.WithPage(err, pageIndex-1)
			}
		}
		prevField = current
	}

	return pages, nil
}

func decodeField(buf *buffer.Buffer, prevField *field.InnerField, top int, repeatCount *int) (*field.InnerField, bool, error) {
	if *repeatCount > 0 {
		*repeatCount--
		return prevField, false, nil
	}
	changed, result, err := field.DiffDecode(buf, prevField, top)
	if err != nil {
		return nil, false, err
	}
	if !changed {
		rc, err := buf.Poll(1)
		if err != nil {
			return nil, false, err
		}
		*repeatCount = rc
	}
	return result, changed, nil
}

// decodeComment parses or inherits a page's comment. It returns the
// effective text and whether the page carries its own text (false means
// the caller should fall back to *lastCommentText).
func decodeComment(buf *buffer.Buffer, act action.Action, pageIndex int, lastCommentText *string, refComment *int, activeQuiz **quiz.Quiz) (string, bool, error) {
	if act.Comment {
		length, err := buf.Poll(2)
		if err != nil {
			return "", false, err
		}
		chunkCount := (length + 3) / 4
		values := make([]int, chunkCount)
		for i := range values {
			v, err := buf.Poll(5)
			if err != nil {
				return "", false, err
			}
			values[i] = v
		}
		escapedText := comment.DecodeChunks(values, length)
		text := comment.Unescape(escapedText)

		*lastCommentText = text
		*refComment = pageIndex

		if quiz.IsQuizComment(text) {
			q, err := quiz.New(text)
			if err != nil {
				*activeQuiz = nil
			} else {
				*activeQuiz = q
			}
		} else {
			*activeQuiz = nil
		}
		return text, true, nil
	}

	if pageIndex == 0 {
		return "", true, nil
	}

	if *activeQuiz != nil {
		return (*activeQuiz).Format().ToString(), true, nil
	}
	return "", false, nil
}

// advanceQuiz applies GetOperation/Operate to the active quiz for the
// piece this page just locked, falling back to Format() on any failure.
func advanceQuiz(activeQuiz **quiz.Quiz, act action.Action) {
	q := *activeQuiz
	if q == nil {
		return
	}
	if !q.CanOperate() || !act.Lock {
		return
	}
	if !act.Piece.Kind.Mino() {
		*activeQuiz = q.Format()
		return
	}

	next := q.NextIfEnd()
	op, err := next.GetOperation(act.Piece.Kind)
	if err == nil {
		if advanced, err := next.Operate(op); err == nil {
			*activeQuiz = advanced
			return
		}
	}
	*activeQuiz = q.Format()
}

// applyLock stamps a locked piece and carries out the field mutations
// that follow it, in order.
func applyLock(f *field.InnerField, act action.Action) error {
	if act.Piece.Kind.Mino() {
		if err := f.Fill(act.Piece); err != nil {
			return err
		}
	}
	f.ClearLine()
	if act.Rise {
		f.RiseGarbage()
	}
	if act.Mirror {
		f.Mirror()
	}
	return nil
}
