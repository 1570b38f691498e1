package stream

import (
	"strings"

	ferrors "fumen/internal/errors"
)

// prefixes names the three URL path fragments a fumen is commonly
// embedded under: the Fumen viewer's own prefix, and two
// third-party tool prefixes that reuse the same wire format.
var prefixes = [...]string{"v", "m", "d"}

// versions are the two wire versions in the order they're probed: 115
// before 110, so when a string holds both headers the 115 one wins.
var versions = [...]struct {
	suffix string
	top    int
}{
	{"115", 23},
	{"110", 21},
}

// Extract locates a version header anywhere in s (a raw fumen string or
// a full viewer URL) and returns the field top height and the data that
// follows it, with whitespace trimmed and any '?' chunk separators
// removed.
func Extract(s string) (top int, data string, err error) {
	trimmed := s
	if idx := strings.IndexByte(trimmed, '&'); idx >= 0 {
		trimmed = trimmed[:idx]
	}

	for _, v := range versions {
		for _, prefix := range prefixes {
			needle := prefix + v.suffix
			match := strings.Index(trimmed, needle)
			if match < 0 {
				continue
			}
			start := match + len(needle) + 1
			if start > len(trimmed) {
				return v.top, "", nil
			}
			sub := trimmed[start:]
			return v.top, formatData(sub), nil
		}
	}

	return 0, "", ferrors.New(ferrors.UnsupportedVersion, "no recognised fumen version header found")
}

// formatData trims whitespace and strips the '?' chunk separators that
// long payloads are split on.
func formatData(data string) string {
	trimmed := strings.TrimSpace(data)
	return strings.ReplaceAll(trimmed, "?", "")
}

// headerChunk is the length of the first data segment carried before the
// first '?' separator: v115@ occupies 5 of the 47-character line budget,
// so the opening chunk is 47-5=42 characters.
const headerChunk = 42

// chunkSize is every subsequent '?'-delimited segment's length.
const chunkSize = 47

// FormatHeader renders the v115@ (or v110@) version prefix and inserts
// the '?' separator every chunkSize characters once data is long enough
// that a viewer URL would otherwise exceed one query-string segment.
func FormatHeader(top int, data string) string {
	prefix := "v110@"
	if top == 23 {
		prefix = "v115@"
	}

	if len(data) < headerChunk-1 {
		return prefix + data
	}

	head := headerChunk
	if head > len(data) {
		head = len(data)
	}
	chunks := []string{data[:head]}
	for rest := data[head:]; rest != ""; {
		end := chunkSize
		if end > len(rest) {
			end = len(rest)
		}
		chunks = append(chunks, rest[:end])
		rest = rest[end:]
	}
	return prefix + strings.Join(chunks, "?")
}
