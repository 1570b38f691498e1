// Package report renders corpus verification results as JSON or CSV.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
)

// Result is one corpus entry's round-trip outcome.
type Result struct {
	Hash      string `json:"hash"`
	PageCount int    `json:"page_count"`
	OK        bool   `json:"ok"`
	Error     string `json:"error,omitempty"`
}

// Format names a supported output format.
type Format string

const (
	JSON Format = "json"
	CSV  Format = "csv"
)

// Write renders results to w in the named format.
func Write(w io.Writer, format Format, results []Result) error {
	switch format {
	case JSON:
		return writeJSON(w, results)
	case CSV:
		return writeCSV(w, results)
	}
	return fmt.Errorf("unsupported report format %q", format)
}

func writeJSON(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func writeCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"hash", "page_count", "ok", "error"}); err != nil {
		return err
	}
	for _, r := range results {
		ok := "true"
		if !r.OK {
			ok = "false"
		}
		if err := cw.Write([]string{r.Hash, fmt.Sprint(r.PageCount), ok, r.Error}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
