package bitx

import (
	"strconv"
	"strings"
)

// Strlcpy copies src into dst, writing at most len(dst)-1 bytes and always
// terminating dst with a 0 byte at an index <= len(dst)-1. Copying stops
// early at an embedded 0 byte in src. An empty dst is left untouched.
func Strlcpy(dst []byte, src string) {
	if len(dst) == 0 {
		return
	}

	n := len(dst) - 1
	i := 0
	for ; i < n && i < len(src); i++ {
		dst[i] = src[i]
		if src[i] == 0 {
			return
		}
	}
	dst[i] = 0
}

// Format word-wraps input to the given column width. The first line opens
// with firstPrefix and every wrapped line with prefix. Words are runs of
// bytes other than space, tab, newline, carriage return and form feed; each
// committed word is followed by a single space. The result always ends with
// a newline.
//
// A word longer than width is never split; it lands on a line of its own.
func Format(input, firstPrefix, prefix string, width uint) string {
	var out strings.Builder
	out.WriteString(firstPrefix)

	col := uint(len(firstPrefix))
	var word []byte

	for i := 0; i < len(input); i++ {
		c := input[i]
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' && c != '\f' {
			word = append(word, c)
			continue
		}

		if col+uint(len(word)) > width {
			out.WriteByte('\n')
			out.WriteString(prefix)
			col = uint(len(prefix))
		}
		if len(word) > 0 {
			out.Write(word)
			out.WriteByte(' ')
			col += uint(len(word)) + 1
			word = word[:0]
		}
	}

	if col+uint(len(word)) > width {
		out.WriteByte('\n')
		out.WriteString(prefix)
	}
	out.Write(word)
	out.WriteByte('\n')
	return out.String()
}

// BinaryToUint parses a binary literal of the form "0b" followed by one or
// more '0' or '1' digits.
//
// The digit order is LSB first: the first digit after "0b" is bit 0, the
// next is bit 1, and so on. This is the reverse of positional notation and
// is kept for compatibility with existing callers; BinaryToUint("0b1011")
// is 13, not 11. Use strconv.ParseUint(s[2:], 2, 64) for the conventional
// reading.
//
// A malformed literal is a caller bug and panics.
func BinaryToUint(s string) uint64 {
	if len(s) <= 2 || s[0] != '0' || s[1] != 'b' {
		panic("bitx: binary literal must have a 0b prefix and at least one digit")
	}

	var result uint64
	mask := uint64(1)
	for i := 2; i < len(s); i++ {
		switch s[i] {
		case '1':
			result |= mask
		case '0':
		default:
			panic("bitx: binary literal digit must be 0 or 1")
		}
		mask <<= 1
	}
	return result
}

// ToGraphVizParsableLabel returns s with '{' and '}' replaced by '[' and
// ']', which GraphViz record labels cannot otherwise contain.
func ToGraphVizParsableLabel(s string) string {
	var out strings.Builder
	out.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '{':
			out.WriteByte('[')
		case '}':
			out.WriteByte(']')
		default:
			out.WriteByte(c)
		}
	}
	return out.String()
}

// AddLineNumbers prefixes the first line of s with "1 " and each subsequent
// line with the next integer and a space.
func AddLineNumbers(s string) string {
	var out strings.Builder
	line := 1
	out.WriteString(strconv.Itoa(line))
	out.WriteByte(' ')

	for i := 0; i < len(s); i++ {
		c := s[i]
		out.WriteByte(c)
		if c == '\n' {
			line++
			out.WriteString(strconv.Itoa(line))
			out.WriteByte(' ')
		}
	}
	return out.String()
}
