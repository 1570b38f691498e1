package commands

import (
	"fmt"
	"io"

	"github.com/golang/glog"
	"github.com/google/uuid"

	"fumen"
)

// Validate runs `fumen validate <string>`: decodes then re-encodes a
// fumen and reports whether the re-encoded string decodes to the same
// number of pages. Page contents are not compared.
func Validate(args []string, out io.Writer) error {
	traceID := uuid.NewString()
	if len(args) != 1 {
		return fmt.Errorf("usage: fumen validate <string>")
	}

	pages, err := fumen.Decode(args[0])
	if err != nil {
		glog.Errorf("[%s] validate: decode failed: %v", traceID, err)
		fmt.Fprintf(out, "FAIL: decode error: %v\n", err)
		return nil
	}

	reencoded, err := fumen.Encode(pages)
	if err != nil {
		glog.Errorf("[%s] validate: encode failed: %v", traceID, err)
		fmt.Fprintf(out, "FAIL: encode error: %v\n", err)
		return nil
	}

	roundTripped, err := fumen.Decode(reencoded)
	if err != nil {
		glog.Errorf("[%s] validate: re-decode failed: %v", traceID, err)
		fmt.Fprintf(out, "FAIL: re-decode error: %v\n", err)
		return nil
	}

	if len(roundTripped) != len(pages) {
		fmt.Fprintf(out, "FAIL: page count changed (%d -> %d)\n", len(pages), len(roundTripped))
		return nil
	}

	glog.V(0).Infof("[%s] validate: OK (%d pages)", traceID, len(pages))
	fmt.Fprintf(out, "OK: %d pages, re-encoded as %s\n", len(pages), reencoded)
	return nil
}
