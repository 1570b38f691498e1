package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/google/uuid"

	"fumen"
	"fumen/internal/field"
	"fumen/internal/page"
	"fumen/internal/piece"
)

// fumenFieldTop is the main field height fumen.Encode always targets
// (v115).
const fumenFieldTop = 23

func fromDTO(dto pageDTO) (page.Page, error) {
	f := field.NewInnerField(fumenFieldTop)
	for i, name := range dto.Field {
		k, err := piece.Parse(name)
		if err != nil {
			return page.Page{}, fmt.Errorf("page %d: field cell %d: %w", dto.Index, i, err)
		}
		f.SetAt(i%field.Width, i/field.Width, k)
	}

	p := page.Page{
		Index:   dto.Index,
		Field:   f,
		Comment: dto.Comment,
		Flags:   dto.Flags,
		Refs:    dto.Refs,
	}

	if dto.Operation != nil {
		kind, err := piece.Parse(dto.Operation.Piece)
		if err != nil {
			return page.Page{}, fmt.Errorf("page %d: operation piece: %w", dto.Index, err)
		}
		rotation, err := piece.ParseRotation(dto.Operation.Rotation)
		if err != nil {
			return page.Page{}, fmt.Errorf("page %d: operation rotation: %w", dto.Index, err)
		}
		op := piece.Operation{Kind: kind, Rotation: rotation, X: dto.Operation.X, Y: dto.Operation.Y}
		p.Operation = &op
	}

	return p, nil
}

// Encode runs `fumen encode <file.json>`: reads a JSON page list in the
// shape Decode prints, and writes the encoded fumen string to out.
func Encode(args []string, out io.Writer) error {
	traceID := uuid.NewString()
	if len(args) != 1 {
		return fmt.Errorf("usage: fumen encode <file.json>")
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		glog.Errorf("[%s] encode: cannot read %s: %v", traceID, args[0], err)
		return err
	}

	var dtos []pageDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		glog.Errorf("[%s] encode: malformed page JSON: %v", traceID, err)
		return err
	}

	pages := make([]page.Page, len(dtos))
	for i, dto := range dtos {
		p, err := fromDTO(dto)
		if err != nil {
			glog.Errorf("[%s] encode: %v", traceID, err)
			return err
		}
		pages[i] = p
	}

	glog.V(1).Infof("[%s] encode: %d pages", traceID, len(pages))
	result, err := fumen.Encode(pages)
	if err != nil {
		glog.Errorf("[%s] encode failed: %v", traceID, err)
		return err
	}

	glog.V(0).Infof("[%s] encode: produced %d-byte fumen", traceID, len(result))
	_, err = fmt.Fprintln(out, result)
	return err
}
