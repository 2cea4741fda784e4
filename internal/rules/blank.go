package rules

import (
	"strings"

	"polint/internal/checker"
	"polint/internal/diag"
	"polint/internal/po"
)

type blankRule struct{ meta }

func newBlankRule() *blankRule {
	return &blankRule{meta{"blank", diag.SevWarning, true, true}}
}

// CheckMsg reports a translation that contains only whitespace: it is
// used in place of the source text but carries no translated content.
func (r *blankRule) CheckMsg(c *checker.Checker, entry *po.Entry, msgid, msgstr string) {
	if strings.TrimSpace(msgid) != "" && msgstr != "" && strings.TrimSpace(msgstr) == "" {
		c.ReportMsg("blank translation", msgid, nil, msgstr, []diag.Span{{Start: 0, End: uint32(len(msgstr))}})
	}
}
