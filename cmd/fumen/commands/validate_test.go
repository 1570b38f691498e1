package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestValidateReportsOKForWellFormedFumen(t *testing.T) {
	var out bytes.Buffer
	if err := Validate([]string{"v115@vhAAgH"}, &out); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !strings.HasPrefix(out.String(), "OK:") {
		t.Fatalf("expected an OK report, got %q", out.String())
	}
}

func TestValidateReportsFailForMalformedFumen(t *testing.T) {
	var out bytes.Buffer
	if err := Validate([]string{"garbage"}, &out); err != nil {
		t.Fatalf("Validate should report failures, not return an error: %v", err)
	}
	if !strings.HasPrefix(out.String(), "FAIL:") {
		t.Fatalf("expected a FAIL report, got %q", out.String())
	}
}

func TestValidateRejectsWrongArgCount(t *testing.T) {
	var out bytes.Buffer
	if err := Validate(nil, &out); err == nil {
		t.Fatalf("expected an error for missing argument")
	}
}
