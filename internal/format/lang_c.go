package format

import (
	"math"
	"strconv"
)

// formatC scans printf-style format strings of the C language.
type formatC struct{}

func (formatC) NextChar(s string, pos int) (int, bool) {
	if pos+1 >= len(s) || s[pos] != '%' {
		return pos, false
	}
	return pos + 1, s[pos+1] != '%'
}

func (formatC) FindEndFormat(s string, pos int) int {
	n := len(s)
	end := pos

	// Skip flags / width / precision / reordering.
	for end < n && isCFlagChar(s[end]) {
		end++
	}

	// Parse length modifiers (h, hh, l, ll, q, L, j, z, Z, t).
	if end < n {
		switch s[end] {
		case 'h':
			end++
			if end < n && s[end] == 'h' {
				end++
			}
		case 'l':
			end++
			if end < n && s[end] == 'l' {
				end++
			}
		case 'q', 'L', 'j', 'z', 'Z', 't':
			end++
		}
	}

	// Parse conversion specifier (e.g. s, d, f, etc.).
	if end < n && isASCIIAlpha(s[end]) {
		end++
	}

	return end
}

func isCFlagChar(b byte) bool {
	switch b {
	case '-', '+', ' ', '#', '.', '$':
		return true
	}
	return b >= '0' && b <= '9'
}

func isASCIIAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// SortIndex returns the reordering index of a C format string if
// present, otherwise math.MaxInt.
//
// For example, for format "%3$d", this function returns 3.
func SortIndex(fmt string) int {
	if len(fmt) == 0 || fmt[0] != '%' {
		return math.MaxInt
	}
	pos := 1
	for pos < len(fmt) && fmt[pos] >= '0' && fmt[pos] <= '9' {
		pos++
	}
	if pos == 1 || pos >= len(fmt) || fmt[pos] != '$' {
		return math.MaxInt
	}
	index, err := strconv.Atoi(fmt[1:pos])
	if err != nil {
		return math.MaxInt
	}
	return index
}

// StripIndex returns the format string without its reordering part.
//
// For example, for format "%3$d", this function returns "%d".
func StripIndex(fmt string) string {
	if len(fmt) == 0 || fmt[0] != '%' {
		return fmt
	}
	pos := 1
	for pos < len(fmt) && fmt[pos] >= '0' && fmt[pos] <= '9' {
		pos++
	}
	if pos == 1 || pos >= len(fmt) || fmt[pos] != '$' {
		return fmt
	}
	return "%" + fmt[pos+1:]
}
