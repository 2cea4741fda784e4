package rules

import (
	"fmt"
	"strings"

	"polint/internal/checker"
	"polint/internal/diag"
	"polint/internal/po"
)

type newlinesRule struct{ meta }

func newNewlinesRule() *newlinesRule {
	return &newlinesRule{meta{"newlines", diag.SevError, true, true}}
}

// CheckMsg reports missing or extra newlines in the translation:
// carriage returns (\r) or line feeds (\n), counted over the whole
// string and checked at the beginning and the end.
func (r *newlinesRule) CheckMsg(c *checker.Checker, entry *po.Entry, msgid, msgstr string) {
	r.checkCount(c, msgid, msgstr, "\r", `carriage returns '\r'`)
	r.checkCount(c, msgid, msgstr, "\n", `line feeds '\n'`)
	r.checkEdge(c, msgid, msgstr, strings.HasPrefix, "\r", `carriage return '\r' at the beginning`)
	r.checkEdge(c, msgid, msgstr, strings.HasPrefix, "\n", `line feed '\n' at the beginning`)
	r.checkEdge(c, msgid, msgstr, strings.HasSuffix, "\r", `carriage return '\r' at the end`)
	r.checkEdge(c, msgid, msgstr, strings.HasSuffix, "\n", `line feed '\n' at the end`)
}

func (r *newlinesRule) checkCount(c *checker.Checker, msgid, msgstr, char, what string) {
	idCount := strings.Count(msgid, char)
	strCount := strings.Count(msgstr, char)
	switch {
	case idCount > strCount:
		c.ReportMsg(fmt.Sprintf("missing %s (%d / %d)", what, idCount, strCount), msgid, nil, msgstr, nil)
	case idCount < strCount:
		c.ReportMsg(fmt.Sprintf("extra %s (%d / %d)", what, idCount, strCount), msgid, nil, msgstr, nil)
	}
}

func (r *newlinesRule) checkEdge(c *checker.Checker, msgid, msgstr string, has func(string, string) bool, char, what string) {
	idHas := has(msgid, char)
	strHas := has(msgstr, char)
	switch {
	case idHas && !strHas:
		c.ReportMsg("missing "+what, msgid, nil, msgstr, nil)
	case !idHas && strHas:
		c.ReportMsg("extra "+what, msgid, nil, msgstr, nil)
	}
}
