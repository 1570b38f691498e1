// Package commands implements the per-subcommand logic dispatched by
// cmd/fumen's main: one exported function per subcommand, each taking
// its raw args and an output writer.
package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/golang/glog"
	"github.com/google/uuid"

	"fumen"
	"fumen/internal/page"
)

// pageDTO is the JSON-friendly projection of a page.Page: the internal
// Field type's cells aren't exported, so CLI output goes through this
// instead of json.Marshal on the domain type directly.
type pageDTO struct {
	Index     int        `json:"index"`
	Field     []string   `json:"field"`
	Operation *opDTO     `json:"operation,omitempty"`
	Comment   string     `json:"comment"`
	Flags     page.Flags `json:"flags"`
	Refs      page.Refs  `json:"refs"`
}

type opDTO struct {
	Piece    string `json:"piece"`
	Rotation string `json:"rotation"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
}

func toDTO(p page.Page) pageDTO {
	dto := pageDTO{
		Index:   p.Index,
		Comment: p.Comment,
		Flags:   p.Flags,
		Refs:    p.Refs,
	}
	for _, k := range p.Field.MainArray() {
		dto.Field = append(dto.Field, k.String())
	}
	if p.Operation != nil {
		dto.Operation = &opDTO{
			Piece:    p.Operation.Kind.String(),
			Rotation: p.Operation.Rotation.String(),
			X:        p.Operation.X,
			Y:        p.Operation.Y,
		}
	}
	return dto
}

// Decode runs `fumen decode <string>`: parses the fumen and prints its
// pages as JSON.
func Decode(args []string, out io.Writer) error {
	traceID := uuid.NewString()
	if len(args) != 1 {
		return fmt.Errorf("usage: fumen decode <string>")
	}

	glog.V(1).Infof("[%s] decode: parsing fumen (%d bytes)", traceID, len(args[0]))
	pages, err := fumen.Decode(args[0])
	if err != nil {
		glog.Errorf("[%s] decode failed: %v", traceID, err)
		return err
	}

	dtos := make([]pageDTO, len(pages))
	for i, p := range pages {
		dtos[i] = toDTO(p)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	glog.V(0).Infof("[%s] decode: %d pages", traceID, len(pages))
	return enc.Encode(dtos)
}
