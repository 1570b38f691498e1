package corpus

import (
	"fmt"
	"path/filepath"
	"testing"

	"fumen/internal/store"
)

func TestVerifyReportsOKAndFailure(t *testing.T) {
	dir := t.TempDir()
	s, err := store.Open(filepath.Join(dir, "corpus.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	if err := s.Add("v115@vhAAgH", 1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Add("v115@broken", 0); err != nil {
		t.Fatalf("Add: %v", err)
	}

	decode := func(fumen string) (int, error) {
		if fumen == "v115@broken" || fumen == "re:v115@broken" {
			return 0, fmt.Errorf("bad digit")
		}
		return 1, nil
	}
	reencode := func(fumen string) (string, error) {
		if fumen == "v115@broken" {
			return "", fmt.Errorf("bad digit")
		}
		return "re:" + fumen, nil
	}

	results, err := Verify(s, decode, reencode)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	byHash := map[string]bool{}
	for _, r := range results {
		byHash[r.Hash] = r.OK
	}
	if !byHash[store.Hash("v115@vhAAgH")] {
		t.Errorf("expected the valid fumen to round-trip OK")
	}
	if byHash[store.Hash("v115@broken")] {
		t.Errorf("expected the broken fumen to fail verification")
	}
}
