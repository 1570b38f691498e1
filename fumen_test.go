package fumen

import (
	"testing"

	"fumen/internal/field"
	"fumen/internal/page"
	"fumen/internal/piece"
)

func TestDecodeSingleEmptyPage(t *testing.T) {
	pages, err := Decode("v115@vhAAgH")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}

	p := pages[0]
	if p.Operation != nil {
		t.Errorf("expected no operation, got %+v", p.Operation)
	}
	if p.Comment != "" {
		t.Errorf("expected empty comment, got %q", p.Comment)
	}
	want := page.Flags{Lock: true, Mirror: false, Colorize: true, Rise: false, Quiz: false}
	if p.Flags != want {
		t.Errorf("got flags %+v, want %+v", p.Flags, want)
	}

	empty := field.NewInnerField(23)
	if !p.Field.Equals(empty) {
		t.Errorf("expected an empty field")
	}
}

func TestDecodeEmptyPayload(t *testing.T) {
	pages, err := Decode("v115@")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(pages) != 0 {
		t.Errorf("got %d pages, want 0", len(pages))
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	f := field.NewInnerField(23)
	op := piece.Operation{Kind: piece.I, Rotation: piece.Spawn, X: 4, Y: 0}

	pages := []page.Page{
		{
			Index:     0,
			Field:     f,
			Operation: &op,
			Comment:   "hello",
			Flags:     page.Flags{Lock: true, Colorize: true},
		},
	}

	encoded, err := Encode(pages)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("got %d pages, want 1", len(decoded))
	}
	if decoded[0].Comment != "hello" {
		t.Errorf("got comment %q, want %q", decoded[0].Comment, "hello")
	}
	if decoded[0].Operation == nil || decoded[0].Operation.Kind != piece.I {
		t.Errorf("got operation %+v, want piece I", decoded[0].Operation)
	}
	if !decoded[0].Flags.Lock || !decoded[0].Flags.Colorize {
		t.Errorf("got flags %+v, want lock and colorize set", decoded[0].Flags)
	}
}

func TestDecodeToleratesURLAndSeparators(t *testing.T) {
	a, err := Decode("v115@vhAAgH")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	b, err := Decode("https://example.com/fumen/?v115@vhAAgH")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("got %d vs %d pages", len(a), len(b))
	}
	c, err := Decode("v115@vh?AA?gH")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(a) != len(c) {
		t.Fatalf("got %d vs %d pages", len(a), len(c))
	}
}
