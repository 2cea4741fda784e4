package rules

import (
	"fmt"
	"strings"
	"unicode"

	"polint/internal/checker"
	"polint/internal/diag"
	"polint/internal/po"
)

type puncStartRule struct{ meta }

func newPuncStartRule() *puncStartRule {
	return &puncStartRule{meta{"punc-start", diag.SevInfo, true, true}}
}

// CheckMsg reports inconsistent leading punctuation between source and
// translation. Leading dots are ignored: they are often used for
// hidden files or filename extensions and the translation may change
// the order of words, for example:
//
//	msgid ".po file broken"
//	msgstr "fichier .po cassé"
func (r *puncStartRule) CheckMsg(c *checker.Checker, entry *po.Entry, msgid, msgstr string) {
	language := c.LanguageCode()
	idPunc := puncStart(msgid)
	strPunc := puncStart(msgstr)
	idNorm := puncNormalize(strings.TrimSpace(idPunc), language)
	strNorm := puncNormalize(strings.TrimSpace(strPunc), language)
	if strings.HasPrefix(idNorm, ".") || strings.HasPrefix(strNorm, ".") {
		return
	}
	if idNorm != strNorm {
		c.ReportMsg(
			fmt.Sprintf("inconsistent leading punctuation ('%s' / '%s')", idNorm, strNorm),
			msgid, []diag.Span{{Start: 0, End: uint32(len(idPunc))}},
			msgstr, []diag.Span{{Start: 0, End: uint32(len(strPunc))}},
		)
	}
}

type puncEndRule struct{ meta }

func newPuncEndRule() *puncEndRule {
	return &puncEndRule{meta{"punc-end", diag.SevInfo, true, true}}
}

// CheckMsg reports inconsistent trailing punctuation between source and
// translation.
func (r *puncEndRule) CheckMsg(c *checker.Checker, entry *po.Entry, msgid, msgstr string) {
	language := c.LanguageCode()
	idPunc := puncEnd(msgid)
	strPunc := puncEnd(msgstr)
	idNorm := puncNormalize(strings.TrimSpace(idPunc), language)
	strNorm := puncNormalize(strings.TrimSpace(strPunc), language)
	if idNorm != strNorm {
		c.ReportMsg(
			fmt.Sprintf("inconsistent trailing punctuation ('%s' / '%s')", idNorm, strNorm),
			msgid, []diag.Span{{Start: uint32(len(msgid) - len(idPunc)), End: uint32(len(msgid))}},
			msgstr, []diag.Span{{Start: uint32(len(msgstr) - len(strPunc)), End: uint32(len(msgstr))}},
		)
	}
}

// isPunc reports whether the character is considered as punctuation for
// these rules: colons, semicolons, full stops, commas, exclamation and
// question marks, in half-width, full-width and Arabic forms.
func isPunc(r rune) bool {
	switch r {
	case ':', '：', ';', '；', '؛', '.', '。', '…', ',', '，', '،', '!', '！', '?', '？', '؟':
		return true
	}
	return false
}

// puncStart returns the leading punctuation of a string, including
// interior whitespace (line feeds excluded).
func puncStart(s string) string {
	whitespaceEnded := false
	pos := 0
	for _, r := range s {
		if isPunc(r) {
			whitespaceEnded = true
		} else if unicode.IsSpace(r) && r != '\n' {
			if whitespaceEnded {
				break
			}
		} else {
			break
		}
		pos += len(string(r))
	}
	return s[:pos]
}

// puncEnd returns the trailing punctuation of a string, including
// interior whitespace (line feeds excluded).
func puncEnd(s string) string {
	whitespaceEnded := false
	pos := 0
	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		r := runes[i]
		if isPunc(r) {
			whitespaceEnded = true
		} else if unicode.IsSpace(r) && r != '\n' {
			if whitespaceEnded {
				break
			}
		} else {
			break
		}
		pos += len(string(r))
	}
	return s[len(s)-pos:]
}

// puncNormalize maps punctuation to English symbols: full-width to
// half-width, with a special case for the Greek question mark.
func puncNormalize(s, language string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '?' && language == "el":
			b.WriteRune(';')
		case r == '：':
			b.WriteRune(':')
		case r == '；' || r == '؛':
			b.WriteRune(';')
		case r == '。':
			b.WriteRune('.')
		case r == '，' || r == '،':
			b.WriteRune(',')
		case r == '！':
			b.WriteRune('!')
		case r == '？' || r == '؟':
			b.WriteRune('?')
		default:
			b.WriteRune(r)
		}
	}
	return strings.ReplaceAll(b.String(), "...", "…")
}
