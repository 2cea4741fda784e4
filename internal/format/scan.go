package format

import (
	"unicode"
	"unicode/utf8"
)

// Formats returns all format strings of s for the given language, in
// order of appearance. Doubled escape characters ("%%", "{{") are not
// reported.
func Formats(s string, lang Language) []Match {
	p := lang.parser()
	n := len(s)
	var out []Match
	pos := 0
	for pos < n {
		start := pos
		newPos, isFormat := p.NextChar(s, pos)
		pos = newPos
		if pos >= n {
			return out
		}
		if isFormat {
			pos = p.FindEndFormat(s, pos)
			out = append(out, Match{Text: s[start:pos], Start: start, End: pos})
			continue
		}
		_, size := utf8.DecodeRuneInString(s[pos:])
		if size == 0 {
			return out
		}
		pos += size
	}
	return out
}

// Words returns the words of s, skipping format strings of the given
// language. A word is a run of alphanumeric chars, dashes allowed inside.
func Words(s string, lang Language) []Match {
	p := lang.parser()
	n := len(s)
	var out []Match
	pos := 0
	for {
		start, end := -1, -1
		for pos < n {
			if start < 0 {
				newPos, isFormat := p.NextChar(s, pos)
				pos = newPos
				if pos >= n {
					return out
				}
				if isFormat {
					pos = p.FindEndFormat(s, pos)
					continue
				}
			}
			r, size := utf8.DecodeRuneInString(s[pos:])
			if size == 0 {
				return out
			}
			if isWordRune(r) || (start >= 0 && r == '-') {
				if start < 0 {
					start = pos
				}
				end = pos + size
			} else if start >= 0 {
				break
			}
			pos += size
		}
		if start < 0 || end < 0 {
			return out
		}
		out = append(out, Match{Text: s[start:end], Start: start, End: end})
	}
}

// Chars returns the alphanumeric chars (and dashes) of s, skipping
// format strings of the given language.
func Chars(s string, lang Language) []Match {
	p := lang.parser()
	n := len(s)
	var out []Match
	pos := 0
	for pos < n {
		newPos, isFormat := p.NextChar(s, pos)
		pos = newPos
		if pos >= n {
			return out
		}
		if isFormat {
			pos = p.FindEndFormat(s, pos)
			continue
		}
		r, size := utf8.DecodeRuneInString(s[pos:])
		if size == 0 {
			return out
		}
		if isWordRune(r) || r == '-' {
			out = append(out, Match{Text: s[pos : pos+size], Start: pos, End: pos + size})
		}
		pos += size
	}
	return out
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}
