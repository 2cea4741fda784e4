package format

import "strings"

// formatPython scans printf-style format strings of the Python language.
// See: https://docs.python.org/3/library/stdtypes.html#printf-style-string-formatting
type formatPython struct{}

func (formatPython) NextChar(s string, pos int) (int, bool) {
	if pos+1 >= len(s) || s[pos] != '%' {
		return pos, false
	}
	return pos + 1, s[pos+1] != '%'
}

func (formatPython) FindEndFormat(s string, pos int) int {
	n := len(s)
	end := pos

	if end < n && s[end] == '(' {
		closing := strings.IndexByte(s[end:], ')')
		if closing < 0 {
			return n
		}
		end += closing + 1
	}

	// Skip conversion flags.
	for end < n && isPythonFlagChar(s[end]) {
		end++
	}

	// Parse length modifiers (h, l, L).
	if end < n && (s[end] == 'h' || s[end] == 'l' || s[end] == 'L') {
		end++
	}

	// Parse conversion type (e.g. s, d, f, etc.).
	if end < n && isASCIIAlpha(s[end]) {
		end++
	}

	return end
}

func isPythonFlagChar(b byte) bool {
	switch b {
	case '-', '+', ' ', '#', '.':
		return true
	}
	return b >= '0' && b <= '9'
}

// formatPythonBrace scans str.format-style format strings.
// See: https://peps.python.org/pep-3101/
type formatPythonBrace struct{}

func (formatPythonBrace) NextChar(s string, pos int) (int, bool) {
	if pos+1 >= len(s) || s[pos] != '{' {
		return pos, false
	}
	return pos + 1, s[pos+1] != '{'
}

func (formatPythonBrace) FindEndFormat(s string, pos int) int {
	n := len(s)
	end := pos

	// Find the closing curly bracket, skipping any nested curly brackets.
	level := 1
	for end < n {
		switch s[end] {
		case '{':
			level++
		case '}':
			level--
			if level <= 0 {
				return end + 1
			}
		}
		end++
	}
	return end
}
