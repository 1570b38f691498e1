package commands

import (
	"fmt"
	"io"

	"github.com/golang/glog"
	"github.com/google/uuid"

	"fumen"
	"fumen/internal/corpus"
	"fumen/internal/report"
	"fumen/internal/store"
)

const defaultCorpusPath = "fumen_corpus.db"

func openStore() (*store.Store, error) {
	return store.Open(defaultCorpusPath)
}

func decodeCount(f string) (int, error) {
	pages, err := fumen.Decode(f)
	if err != nil {
		return 0, err
	}
	return len(pages), nil
}

func reencode(f string) (string, error) {
	pages, err := fumen.Decode(f)
	if err != nil {
		return "", err
	}
	return fumen.Encode(pages)
}

// CorpusAdd runs `fumen corpus add <string>`: decodes the fumen (to
// validate it and count its pages) and persists it.
func CorpusAdd(args []string, out io.Writer) error {
	traceID := uuid.NewString()
	if len(args) != 1 {
		return fmt.Errorf("usage: fumen corpus add <string>")
	}

	pages, err := fumen.Decode(args[0])
	if err != nil {
		glog.Errorf("[%s] corpus add: %v", traceID, err)
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Add(args[0], len(pages)); err != nil {
		glog.Errorf("[%s] corpus add: %v", traceID, err)
		return err
	}

	glog.V(0).Infof("[%s] corpus add: stored %s (%d pages)", traceID, store.Hash(args[0]), len(pages))
	fmt.Fprintf(out, "added %s (%d pages)\n", store.Hash(args[0]), len(pages))
	return nil
}

// CorpusVerify runs `fumen corpus verify`: streams every stored fumen
// through decode -> encode -> decode and reports pass/fail counts.
func CorpusVerify(args []string, out io.Writer) error {
	traceID := uuid.NewString()

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	results, err := corpus.Verify(s, decodeCount, reencode)
	if err != nil {
		glog.Errorf("[%s] corpus verify: %v", traceID, err)
		return err
	}

	ok := 0
	for _, r := range results {
		if r.OK {
			ok++
		}
	}
	glog.V(0).Infof("[%s] corpus verify: %d/%d passed", traceID, ok, len(results))
	fmt.Fprintf(out, "%d/%d passed\n", ok, len(results))
	for _, r := range results {
		if !r.OK {
			fmt.Fprintf(out, "FAIL %s: %s\n", r.Hash, r.Error)
		}
	}
	return nil
}

// CorpusReport runs `fumen corpus report <json|csv>`.
func CorpusReport(args []string, out io.Writer) error {
	traceID := uuid.NewString()
	if len(args) != 1 {
		return fmt.Errorf("usage: fumen corpus report <json|csv>")
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	results, err := corpus.Verify(s, decodeCount, reencode)
	if err != nil {
		glog.Errorf("[%s] corpus report: %v", traceID, err)
		return err
	}

	glog.V(1).Infof("[%s] corpus report: rendering %d results as %s", traceID, len(results), args[0])
	return report.Write(out, report.Format(args[0]), results)
}
