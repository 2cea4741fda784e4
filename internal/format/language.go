// Package format provides scanners for printf-style format strings and
// word/char iterators that can skip them.
package format

// Language identifies the format-string dialect of a catalog entry,
// derived from its "*-format" keyword.
type Language uint8

const (
	LangNull Language = iota
	LangC
	LangPython
	LangPythonBrace
)

// LanguageFrom maps a format keyword value (the part before "-format")
// to a Language. Unknown values map to LangNull.
func LanguageFrom(keyword string) Language {
	switch keyword {
	case "c":
		return LangC
	case "python":
		return LangPython
	case "python-brace":
		return LangPythonBrace
	}
	return LangNull
}

func (l Language) String() string {
	switch l {
	case LangC:
		return "C"
	case LangPython:
		return "Python"
	case LangPythonBrace:
		return "Python brace"
	}
	return "none"
}

// Parser detects format strings of one language.
type Parser interface {
	// NextChar returns the position of the next char to read and true if
	// the start of a format string has been detected at pos.
	NextChar(s string, pos int) (int, bool)

	// FindEndFormat returns the index just past the end of the format
	// string starting at pos.
	FindEndFormat(s string, pos int) int
}

func (l Language) parser() Parser {
	switch l {
	case LangC:
		return formatC{}
	case LangPython:
		return formatPython{}
	case LangPythonBrace:
		return formatPythonBrace{}
	}
	return formatNull{}
}

// Match is one scanned token: a format string, a word, or a char.
type Match struct {
	Text  string
	Start int
	End   int
}
