package rules

import (
	"fmt"
	"sort"
	"strings"

	"polint/internal/checker"
	"polint/internal/diag"
	"polint/internal/po"
)

var bracketPairs = []struct {
	open, close rune
	name        string
}{
	{'(', ')', "round"},
	{'[', ']', "square"},
	{'{', '}', "curly"},
	{'<', '>', "angle"},
}

type bracketsRule struct{ meta }

func newBracketsRule() *bracketsRule {
	return &bracketsRule{meta{"brackets", diag.SevInfo, true, true}}
}

// CheckMsg reports missing or extra round/square/curly/angle brackets
// in the translation.
//
// Extra parentheses on both sides in the translation are ignored: they
// are often used to precise a word in the translated language, for
// example:
//
//	msgid "the position: bottom, top, left or right"
//	msgstr "la position : bottom (bas), top (haut), left (gauche) ou right (droite)"
func (r *bracketsRule) CheckMsg(c *checker.Checker, entry *po.Entry, msgid, msgstr string) {
	for _, pair := range bracketPairs {
		idOpen := openingBrackets(msgid, pair.open)
		strOpen := openingBrackets(msgstr, pair.open)
		idClose := closingBrackets(msgid, pair.close)
		strClose := closingBrackets(msgstr, pair.close)
		if pair.open == '(' && len(idOpen) < len(strOpen) && len(idClose) < len(strClose) {
			continue
		}
		if (len(idOpen) > len(strOpen) && len(idClose) > len(strClose)) ||
			(len(idOpen) < len(strOpen) && len(idClose) < len(strClose)) {
			word := "missing"
			if len(idOpen) < len(strOpen) {
				word = "extra"
			}
			message := fmt.Sprintf("%s opening and closing %s brackets '%c' (%d / %d) and '%c' (%d / %d)",
				word, pair.name, pair.open, len(idOpen), len(strOpen), pair.close, len(idClose), len(strClose))
			c.ReportMsg(message, msgid, mergeSpans(idOpen, idClose), msgstr, mergeSpans(strOpen, strClose))
			continue
		}
		if len(idOpen) > len(strOpen) {
			message := fmt.Sprintf("missing opening %s brackets '%c' (%d / %d)",
				pair.name, pair.open, len(idOpen), len(strOpen))
			c.ReportMsg(message, msgid, idOpen, msgstr, strOpen)
		}
		if len(idOpen) < len(strOpen) {
			message := fmt.Sprintf("extra opening %s brackets '%c' (%d / %d)",
				pair.name, pair.open, len(idOpen), len(strOpen))
			c.ReportMsg(message, msgid, idOpen, msgstr, strOpen)
		}
		if len(idClose) > len(strClose) {
			message := fmt.Sprintf("missing closing %s brackets '%c' (%d / %d)",
				pair.name, pair.close, len(idClose), len(strClose))
			c.ReportMsg(message, msgid, idClose, msgstr, strClose)
		}
		if len(idClose) < len(strClose) {
			message := fmt.Sprintf("extra closing %s brackets '%c' (%d / %d)",
				pair.name, pair.close, len(idClose), len(strClose))
			c.ReportMsg(message, msgid, idClose, msgstr, strClose)
		}
	}
}

// openingBrackets returns the spans of opening brackets, excluding the
// "(s)" and "(S)" patterns often used for optional plural forms.
func openingBrackets(s string, bracket rune) []diag.Span {
	spans := charSpans(s, bracket)
	if bracket != '(' {
		return spans
	}
	kept := spans[:0]
	for _, span := range spans {
		rest := s[span.Start:]
		if strings.HasPrefix(rest, "(s)") || strings.HasPrefix(rest, "(S)") {
			continue
		}
		kept = append(kept, span)
	}
	return kept
}

// closingBrackets returns the spans of closing brackets, excluding the
// "(s)" and "(S)" patterns often used for optional plural forms.
func closingBrackets(s string, bracket rune) []diag.Span {
	spans := charSpans(s, bracket)
	if bracket != ')' {
		return spans
	}
	kept := spans[:0]
	for _, span := range spans {
		head := s[:span.End]
		if strings.HasSuffix(head, "(s)") || strings.HasSuffix(head, "(S)") {
			continue
		}
		kept = append(kept, span)
	}
	return kept
}

func mergeSpans(a, b []diag.Span) []diag.Span {
	merged := make([]diag.Span, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	sort.Slice(merged, func(i, j int) bool {
		if merged[i].Start != merged[j].Start {
			return merged[i].Start < merged[j].Start
		}
		return merged[i].End < merged[j].End
	})
	return merged
}
