package rules

import (
	"fmt"
	"strings"

	"polint/internal/checker"
	"polint/internal/diag"
	"polint/internal/po"
)

// substrSpans returns the byte spans of all non overlapping occurrences
// of sub in s.
func substrSpans(s, sub string) []diag.Span {
	var spans []diag.Span
	for pos := 0; ; {
		idx := strings.Index(s[pos:], sub)
		if idx < 0 {
			break
		}
		start := pos + idx
		spans = append(spans, diag.Span{Start: uint32(start), End: uint32(start + len(sub))})
		pos = start + len(sub)
	}
	return spans
}

// charSpans returns the byte spans of all occurrences of any of the
// given characters in s.
func charSpans(s string, chars ...rune) []diag.Span {
	var spans []diag.Span
	for idx, r := range s {
		for _, c := range chars {
			if r == c {
				spans = append(spans, diag.Span{Start: uint32(idx), End: uint32(idx + len(string(r)))})
				break
			}
		}
	}
	return spans
}

// checkCounts reports a missing/extra diagnostic when the number of
// matches differs between source and translation.
func checkCounts(c *checker.Checker, what, msgid string, id []diag.Span, msgstr string, str []diag.Span) {
	switch {
	case len(id) > len(str):
		c.ReportMsg(fmt.Sprintf("missing %s (%d / %d)", what, len(id), len(str)), msgid, id, msgstr, str)
	case len(id) < len(str):
		c.ReportMsg(fmt.Sprintf("extra %s (%d / %d)", what, len(id), len(str)), msgid, id, msgstr, str)
	}
}

type doubleQuotesRule struct{ meta }

func newDoubleQuotesRule() *doubleQuotesRule {
	return &doubleQuotesRule{meta{"double-quotes", diag.SevInfo, true, true}}
}

// CheckMsg reports missing or extra double quotes (", „ and ”) in the
// translation.
func (r *doubleQuotesRule) CheckMsg(c *checker.Checker, entry *po.Entry, msgid, msgstr string) {
	idQuotes := charSpans(msgid, '"', '„', '”')
	strQuotes := charSpans(msgstr, '"', '„', '”')
	checkCounts(c, "double quotes", msgid, idQuotes, msgstr, strQuotes)
}

type doubleSpacesRule struct{ meta }

func newDoubleSpacesRule() *doubleSpacesRule {
	return &doubleSpacesRule{meta{"double-spaces", diag.SevInfo, true, true}}
}

// CheckMsg reports missing or extra double spaces in the translation.
func (r *doubleSpacesRule) CheckMsg(c *checker.Checker, entry *po.Entry, msgid, msgstr string) {
	idSpaces := substrSpans(msgid, "  ")
	strSpaces := substrSpans(msgstr, "  ")
	checkCounts(c, "double spaces '  '", msgid, idSpaces, msgstr, strSpaces)
}

type pipesRule struct{ meta }

func newPipesRule() *pipesRule {
	return &pipesRule{meta{"pipes", diag.SevInfo, true, true}}
}

// CheckMsg reports missing or extra pipes in the translation.
func (r *pipesRule) CheckMsg(c *checker.Checker, entry *po.Entry, msgid, msgstr string) {
	idPipes := substrSpans(msgid, "|")
	strPipes := substrSpans(msgstr, "|")
	checkCounts(c, "pipes '|'", msgid, idPipes, msgstr, strPipes)
}

type tabsRule struct{ meta }

func newTabsRule() *tabsRule {
	return &tabsRule{meta{"tabs", diag.SevError, true, true}}
}

// CheckMsg reports missing or extra tabs in the translation.
func (r *tabsRule) CheckMsg(c *checker.Checker, entry *po.Entry, msgid, msgstr string) {
	idTabs := substrSpans(msgid, "\t")
	strTabs := substrSpans(msgstr, "\t")
	checkCounts(c, `tabs '\t'`, msgid, idTabs, msgstr, strTabs)
}
