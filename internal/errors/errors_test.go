package errors

import "testing"

func TestErrorFormatsWithAndWithoutPage(t *testing.T) {
	e := New(BadDigit, "unexpected character")
	if got := e.Error(); got != "BadDigit: unexpected character" {
		t.Errorf("unexpected message: %s", got)
	}

	e.Page = 3
	if got := e.Error(); got != "BadDigit: unexpected character (page 3)" {
		t.Errorf("unexpected message: %s", got)
	}
}

func TestWithPageAttachesOnlyOnce(t *testing.T) {
	e := New(Truncated, "buffer underflow")
	wrapped := WithPage(e, 5)
	wrapped = WithPage(wrapped, 9)

	fe, ok := wrapped.(*FumenError)
	if !ok {
		t.Fatalf("expected *FumenError, got %T", wrapped)
	}
	if fe.Page != 5 {
		t.Errorf("expected first page to stick, got %d", fe.Page)
	}
}

func TestIsMatchesKind(t *testing.T) {
	e := New(BadQuiz, "malformed quiz")
	if !Is(e, BadQuiz) {
		t.Errorf("expected Is to match BadQuiz")
	}
	if Is(e, BadPiece) {
		t.Errorf("expected Is to not match BadPiece")
	}
}
