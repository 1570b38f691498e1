package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestEncodeRoundTripsThroughDecodeOutput(t *testing.T) {
	var decoded bytes.Buffer
	if err := Decode([]string{"v115@vhAAgH"}, &decoded); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "pages.json")
	if err := os.WriteFile(path, decoded.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var encoded bytes.Buffer
	if err := Encode([]string{path}, &encoded); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if encoded.Len() == 0 {
		t.Fatalf("expected non-empty encoded output")
	}
}

func TestEncodeRejectsMissingFile(t *testing.T) {
	var out bytes.Buffer
	if err := Encode([]string{"/nonexistent/pages.json"}, &out); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestEncodeRejectsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var out bytes.Buffer
	if err := Encode([]string{path}, &out); err == nil {
		t.Fatalf("expected an error for malformed JSON")
	}
}

func TestEncodeRejectsUnknownPieceKind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pages.json")
	body := `[{"index":0,"field":["Q"],"comment":"","flags":{},"refs":{}}]`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var out bytes.Buffer
	if err := Encode([]string{path}, &out); err == nil {
		t.Fatalf("expected an error for an unrecognised piece letter")
	}
}
