package report

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, JSON, []Result{{Hash: "abc", PageCount: 3, OK: true}})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), `"hash": "abc"`) {
		t.Errorf("missing hash field: %s", buf.String())
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, CSV, []Result{
		{Hash: "abc", PageCount: 3, OK: true},
		{Hash: "def", PageCount: 1, OK: false, Error: "boom"},
	})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3 (header + 2 rows)", len(lines))
	}
	if !strings.Contains(lines[2], "boom") {
		t.Errorf("expected error column in failing row: %s", lines[2])
	}
}

func TestWriteUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Format("xml"), nil); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
