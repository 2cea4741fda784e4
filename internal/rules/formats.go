package rules

import (
	"fmt"
	"sort"

	"polint/internal/checker"
	"polint/internal/diag"
	"polint/internal/format"
	"polint/internal/po"
)

// normalizedFormats returns the format specifiers of s sorted by
// reordering index and stripped of it, so that "%3$d %1$s" compares
// equal to "%s %d".
func normalizedFormats(matches []format.Match) []string {
	sorted := make([]format.Match, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		si, sj := format.SortIndex(sorted[i].Text), format.SortIndex(sorted[j].Text)
		if si != sj {
			return si < sj
		}
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})
	stripped := make([]string, len(sorted))
	for i, m := range sorted {
		stripped[i] = format.StripIndex(m.Text)
	}
	return stripped
}

func matchSpans(matches []format.Match) []diag.Span {
	if len(matches) == 0 {
		return nil
	}
	spans := make([]diag.Span, len(matches))
	for i, m := range matches {
		spans[i] = diag.Span{Start: uint32(m.Start), End: uint32(m.End)}
	}
	return spans
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

type cFormatsRule struct{ meta }

func newCFormatsRule() *cFormatsRule {
	return &cFormatsRule{meta{"c-formats", diag.SevError, true, true}}
}

// CheckMsg reports inconsistent C format strings between source and
// translation. Only entries marked with the c-format keyword are
// checked. Reordered specifiers are supported: "%3$d %1$s %2$f" is
// considered equivalent to "%s %f %d".
func (r *cFormatsRule) CheckMsg(c *checker.Checker, entry *po.Entry, msgid, msgstr string) {
	if entry.Format != "c" {
		return
	}
	idFmt := format.Formats(msgid, format.LangC)
	strFmt := format.Formats(msgstr, format.LangC)
	if !equalStrings(normalizedFormats(idFmt), normalizedFormats(strFmt)) {
		c.ReportMsg("inconsistent C format strings", msgid, matchSpans(idFmt), msgstr, matchSpans(strFmt))
	}
}

type formatsRule struct{ meta }

func newFormatsRule() *formatsRule {
	return &formatsRule{meta{"formats", diag.SevError, false, true}}
}

// CheckMsg reports inconsistent format strings between source and
// translation for all supported format languages (C, Python and Python
// brace). Entries without a format keyword are skipped.
func (r *formatsRule) CheckMsg(c *checker.Checker, entry *po.Entry, msgid, msgstr string) {
	lang := format.LanguageFrom(entry.Format)
	if lang == format.LangNull {
		return
	}
	idFmt := format.Formats(msgid, lang)
	strFmt := format.Formats(msgstr, lang)
	if !equalStrings(normalizedFormats(idFmt), normalizedFormats(strFmt)) {
		c.ReportMsg(fmt.Sprintf("inconsistent format strings (%s)", lang),
			msgid, matchSpans(idFmt), msgstr, matchSpans(strFmt))
	}
}
