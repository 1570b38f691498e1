// Package corpus runs the round-trip regression check (decode then
// re-encode, compare) over a persisted store of known fumen strings.
package corpus

import (
	"fumen/internal/report"
	"fumen/internal/store"
)

// Verify streams every stored fumen through decode -> encode and checks
// that re-encoding still decodes back to the same page count. A
// byte-identical round trip isn't required: re-encoding may choose
// different repeat-run or comment compaction than the original
// producer.
func Verify(s *store.Store, decode func(string) (int, error), reencode func(string) (string, error)) ([]report.Result, error) {
	records, err := s.All()
	if err != nil {
		return nil, err
	}

	results := make([]report.Result, 0, len(records))
	for _, rec := range records {
		results = append(results, verifyOne(rec, decode, reencode))
	}
	return results, nil
}

func verifyOne(rec store.Record, decode func(string) (int, error), reencode func(string) (string, error)) report.Result {
	originalCount, err := decode(rec.Fumen)
	if err != nil {
		return report.Result{Hash: rec.Hash, PageCount: rec.PageCount, OK: false, Error: err.Error()}
	}

	reencoded, err := reencode(rec.Fumen)
	if err != nil {
		return report.Result{Hash: rec.Hash, PageCount: rec.PageCount, OK: false, Error: err.Error()}
	}

	roundTrippedCount, err := decode(reencoded)
	if err != nil {
		return report.Result{Hash: rec.Hash, PageCount: rec.PageCount, OK: false, Error: err.Error()}
	}

	if roundTrippedCount != originalCount {
		return report.Result{
			Hash: rec.Hash, PageCount: rec.PageCount, OK: false,
			Error: "re-encoded fumen decodes to a different page count",
		}
	}

	return report.Result{Hash: rec.Hash, PageCount: rec.PageCount, OK: true}
}
