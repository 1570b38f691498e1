package stream

import (
	"testing"

	"fumen/internal/action"
	"fumen/internal/field"
	"fumen/internal/page"
	"fumen/internal/piece"
)

func TestDecodeSinglePageNoOperation(t *testing.T) {
	pages, err := Decode("vhAAgH", 23)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}
	p := pages[0]
	if p.Operation != nil {
		t.Errorf("expected nil operation, got %+v", p.Operation)
	}
	if !p.Flags.Lock || !p.Flags.Colorize || p.Flags.Mirror || p.Flags.Rise || p.Flags.Quiz {
		t.Errorf("got flags %+v", p.Flags)
	}
}

func TestEncodeDecodeRoundTripWithLockedPiece(t *testing.T) {
	f := field.NewInnerField(23)
	op := piece.Operation{Kind: piece.T, Rotation: piece.Spawn, X: 4, Y: 0}

	pages := []page.Page{
		{Index: 0, Field: f, Operation: &op, Comment: "", Flags: page.Flags{Lock: true, Colorize: true}},
	}

	data, err := Encode(pages, 23)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := Decode(data, 23)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("got %d pages, want 1", len(decoded))
	}
	if decoded[0].Operation == nil || decoded[0].Operation.Kind != piece.T {
		t.Fatalf("got operation %+v, want piece T", decoded[0].Operation)
	}
	if !decoded[0].Field.Equals(f) {
		t.Errorf("field diverged across round trip")
	}
}

func TestEncodeDecodeRepeatedUnchangedFields(t *testing.T) {
	f := field.NewInnerField(23)
	pages := []page.Page{
		{Index: 0, Field: f, Flags: page.Flags{}},
		{Index: 1, Field: f, Flags: page.Flags{}},
		{Index: 2, Field: f, Flags: page.Flags{}},
	}

	data, err := Encode(pages, 23)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(data, 23)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(decoded) != 3 {
		t.Fatalf("got %d pages, want 3", len(decoded))
	}
	for i, p := range decoded {
		if !p.Field.Equals(f) {
			t.Errorf("page %d: field diverged", i)
		}
	}
}

func TestEncodeDecodeQuizCommentAdvances(t *testing.T) {
	f := field.NewInnerField(23)
	opT := piece.Operation{Kind: piece.T, Rotation: piece.Spawn, X: 4, Y: 0}
	opI := piece.Operation{Kind: piece.I, Rotation: piece.Spawn, X: 5, Y: 0}

	pages := []page.Page{
		{Index: 0, Field: f, Operation: &opT, Comment: "#Q=[](T)IOZ", Flags: page.Flags{Lock: true, Quiz: true}},
		{Index: 1, Field: f, Operation: &opI, Comment: "#Q=[](I)OZ", Flags: page.Flags{Lock: true, Quiz: true}},
	}

	data, err := Encode(pages, 23)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(data, 23)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("got %d pages, want 2", len(decoded))
	}
	if decoded[0].Comment != "#Q=[](T)IOZ" {
		t.Errorf("page 0 comment = %q", decoded[0].Comment)
	}
	if decoded[1].Comment != "#Q=[](I)OZ" {
		t.Errorf("page 1 comment = %q, want advanced queue", decoded[1].Comment)
	}
}

func TestEncodeFallsBackToPrevFieldWhenAbsent(t *testing.T) {
	f := field.NewInnerField(23)
	op := piece.Operation{Kind: piece.T, Rotation: piece.Spawn, X: 4, Y: 0}

	pages := []page.Page{
		{Index: 0, Field: f, Operation: &op, Flags: page.Flags{Lock: true}},
		{Index: 1, Field: nil, Flags: page.Flags{}},
	}

	data, err := Encode(pages, 23)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := Decode(data, 23)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("got %d pages, want 2", len(decoded))
	}

	want := f.Copy()
	if err := want.Fill(op); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if !decoded[1].Field.Equals(want) {
		t.Errorf("page 1 field diverged from locked prev field, got %+v", decoded[1].Field)
	}
}

func TestExtractRecognisesAllPrefixesAndVersions(t *testing.T) {
	cases := []struct {
		in      string
		top     int
		wantErr bool
	}{
		{"v115@AA", 23, false},
		{"m115@AA", 23, false},
		{"d110@AA", 21, false},
		{"nonsense", 0, true},
	}
	for _, c := range cases {
		top, data, err := Extract(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("Extract(%q): expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("Extract(%q): unexpected error %v", c.in, err)
		}
		if top != c.top || data != "AA" {
			t.Errorf("Extract(%q) = (%d, %q), want (%d, %q)", c.in, top, data, c.top, "AA")
		}
	}
}

func TestFormatHeaderInsertsSeparatorsOnlyWhenLong(t *testing.T) {
	short := FormatHeader(23, "AAAA")
	if short != "v115@AAAA" {
		t.Errorf("got %q", short)
	}

	long := FormatHeader(23, repeatRune('A', 100))
	if !containsQuestionMark(long) {
		t.Errorf("expected '?' separators in long payload output")
	}
}

func repeatRune(r byte, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = r
	}
	return string(b)
}

func containsQuestionMark(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '?' {
			return true
		}
	}
	return false
}

func TestActionLockFlagInverted(t *testing.T) {
	codec := action.NewCodec(field.Width, 23)
	v := codec.Encode(action.Action{Piece: piece.Operation{Kind: piece.Empty}, Lock: true})
	if v != 0 {
		t.Errorf("expected a locked empty action to encode as 0 (lock stored as !lock), got %d", v)
	}
	decoded, err := codec.Decode(v)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !decoded.Lock {
		t.Errorf("expected Lock round trip to survive")
	}
}
