package commands

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// withTempCorpus chdirs into a scratch directory so corpus commands
// create fumen_corpus.db there instead of next to the test binary.
func withTempCorpus(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestCorpusAddThenVerify(t *testing.T) {
	withTempCorpus(t)

	var add bytes.Buffer
	if err := CorpusAdd([]string{"v115@vhAAgH"}, &add); err != nil {
		t.Fatalf("CorpusAdd: %v", err)
	}
	if !strings.HasPrefix(add.String(), "added ") {
		t.Fatalf("expected an \"added\" confirmation, got %q", add.String())
	}

	var verify bytes.Buffer
	if err := CorpusVerify(nil, &verify); err != nil {
		t.Fatalf("CorpusVerify: %v", err)
	}
	if !strings.HasPrefix(verify.String(), "1/1 passed") {
		t.Fatalf("expected 1/1 passed, got %q", verify.String())
	}
}

func TestCorpusAddRejectsMalformedFumen(t *testing.T) {
	withTempCorpus(t)

	var out bytes.Buffer
	if err := CorpusAdd([]string{"garbage"}, &out); err == nil {
		t.Fatalf("expected an error for an unrecognised fumen string")
	}
}

func TestCorpusReportJSON(t *testing.T) {
	withTempCorpus(t)

	var add bytes.Buffer
	if err := CorpusAdd([]string{"v115@vhAAgH"}, &add); err != nil {
		t.Fatalf("CorpusAdd: %v", err)
	}

	var out bytes.Buffer
	if err := CorpusReport([]string{"json"}, &out); err != nil {
		t.Fatalf("CorpusReport: %v", err)
	}
	if !strings.Contains(out.String(), "\"hash\"") {
		t.Fatalf("expected JSON report output, got %q", out.String())
	}
}

func TestCorpusReportRejectsUnknownFormat(t *testing.T) {
	withTempCorpus(t)

	var out bytes.Buffer
	if err := CorpusReport([]string{"xml"}, &out); err == nil {
		t.Fatalf("expected an error for an unsupported report format")
	}
}
