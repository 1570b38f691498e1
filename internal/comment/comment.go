// Package comment implements the comment chunk codec:
// printable text mapped to 5-digit base-96 chunks, plus the legacy
// JavaScript escape/unescape pair fumen encoders rely on for
// compatibility.
package comment

import (
	"fmt"
	"strconv"
	"strings"

	ferrors "fumen/internal/errors"
)

// table is the comment alphabet: every printable ASCII character from
// space (0x20) through tilde (0x7E).
const table = ` !"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\]^_` + "`" + `abcdefghijklmnopqrstuvwxyz{|}~`

// Base is the radix of one character slot: len(table)+1, the padding
// slack that lets a chunk of fewer than 4 characters decode cleanly.
const Base = len(table) + 1

// MaxLength is the longest comment the wire format can carry.
const MaxLength = 4095

// ChunkSize is the number of characters packed into a single 5-digit
// push.
const ChunkSize = 4

// DigitsPerChunk is the buffer digit width of one encoded chunk.
const DigitsPerChunk = 5

// LengthDigits is the buffer digit width of the comment length header.
const LengthDigits = 2

var charIndex [256]int16

func init() {
	for i := range charIndex {
		charIndex[i] = -1
	}
	for i := 0; i < len(table); i++ {
		charIndex[table[i]] = int16(i)
	}
}

// EncodeChunk maps up to ChunkSize characters of chunk to a single
// integer, little-endian over Base.
func EncodeChunk(chunk string) (int, error) {
	value := 0
	mult := 1
	for i := 0; i < len(chunk); i++ {
		idx := charIndex[chunk[i]]
		if idx < 0 {
			return 0, ferrors.Newf(ferrors.BadDigit, "character %q is not in the comment alphabet", chunk[i])
		}
		value += int(idx) * mult
		mult *= Base
	}
	return value, nil
}

// DecodeChunk is EncodeChunk's inverse: it recovers up to ChunkSize
// characters from a chunk integer. Indices beyond the alphabet (which
// can only arise from a corrupt or adversarial buffer) clamp to the
// table's last character, matching the tolerant decode described in
//.5.
func DecodeChunk(value int) string {
	var sb strings.Builder
	v := value
	for i := 0; i < ChunkSize; i++ {
		idx := v % Base
		if idx >= len(table) {
			idx = len(table) - 1
		}
		sb.WriteByte(table[idx])
		v /= Base
	}
	return sb.String()
}

// Escape renders s using the legacy JavaScript escape() semantics: the
// unreserved character set passes through unchanged, codepoints below
// 256 become %HH, and codepoints at or above 256 become %uHHHH.
func Escape(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if isUnreserved(r) {
			sb.WriteRune(r)
			continue
		}
		if r < 256 {
			fmt.Fprintf(&sb, "%%%02X", r)
		} else {
			fmt.Fprintf(&sb, "%%u%04X", r)
		}
	}
	return sb.String()
}

const unreservedTable = "0123456789QWERTYUIOPASDFGHJKLZXCVBNMqwertyuiopasdfghjklzxcvbnm@*_+-./"

func isUnreserved(r rune) bool {
	if r > 0x7F {
		return false
	}
	return strings.ContainsRune(unreservedTable, r)
}

// Unescape is Escape's inverse: it recognises %uHHHH before %HH (the
// four-hex form takes priority when both match a prefix), leaving any
// other text unchanged.
func Unescape(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); {
		if s[i] != '%' {
			sb.WriteByte(s[i])
			i++
			continue
		}
		if i+1 < len(s) && s[i+1] == 'u' && i+6 <= len(s) && isHex(s[i+2:i+6]) {
			cp, _ := strconv.ParseInt(s[i+2:i+6], 16, 32)
			sb.WriteRune(rune(cp))
			i += 6
			continue
		}
		if i+3 <= len(s) && isHex(s[i+1:i+3]) {
			cp, _ := strconv.ParseInt(s[i+1:i+3], 16, 32)
			sb.WriteRune(rune(cp))
			i += 3
			continue
		}
		sb.WriteByte(s[i])
		i++
	}
	return sb.String()
}

// EncodeChunks splits an already-escaped comment into ChunkSize-rune
// groups and maps each to its wire integer.
func EncodeChunks(escaped string) ([]int, error) {
	values := make([]int, 0, (len(escaped)+ChunkSize-1)/ChunkSize)
	for i := 0; i < len(escaped); i += ChunkSize {
		end := i + ChunkSize
		if end > len(escaped) {
			end = len(escaped)
		}
		v, err := EncodeChunk(escaped[i:end])
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// DecodeChunks concatenates DecodeChunk over every value and truncates
// to length runes of escaped text.
func DecodeChunks(values []int, length int) string {
	var sb strings.Builder
	for _, v := range values {
		sb.WriteString(DecodeChunk(v))
	}
	text := sb.String()
	if length < len(text) {
		text = text[:length]
	}
	return text
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}
