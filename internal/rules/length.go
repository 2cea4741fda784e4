package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"polint/internal/checker"
	"polint/internal/diag"
	"polint/internal/po"
)

type longRule struct{ meta }

func newLongRule() *longRule {
	return &longRule{meta{"long", diag.SevWarning, true, true}}
}

// CheckMsg reports a translation that is suspiciously long compared to
// the source: at least 10 times more characters, or more than one
// character when the source has exactly one. Leading and trailing
// whitespace is ignored.
func (r *longRule) CheckMsg(c *checker.Checker, entry *po.Entry, msgid, msgstr string) {
	lenID := utf8.RuneCountInString(strings.TrimSpace(msgid))
	if lenID == 0 {
		return
	}
	lenStr := utf8.RuneCountInString(strings.TrimSpace(msgstr))
	if lenStr == 0 {
		return
	}
	if lenID*10 <= lenStr || (lenID == 1 && lenStr > 1) {
		c.ReportMsg(fmt.Sprintf("translation too long (%d / %d)", lenID, lenStr), msgid, nil, msgstr, nil)
	}
}

type shortRule struct{ meta }

func newShortRule() *shortRule {
	return &shortRule{meta{"short", diag.SevWarning, true, true}}
}

// CheckMsg reports a translation that is suspiciously short compared to
// the source: at least 10 times fewer characters, or exactly one
// character when the source has more. Leading and trailing whitespace
// is ignored.
func (r *shortRule) CheckMsg(c *checker.Checker, entry *po.Entry, msgid, msgstr string) {
	lenID := utf8.RuneCountInString(strings.TrimSpace(msgid))
	if lenID == 0 {
		return
	}
	lenStr := utf8.RuneCountInString(strings.TrimSpace(msgstr))
	if lenStr == 0 {
		return
	}
	if lenStr*10 <= lenID || (lenStr == 1 && lenID > 1) {
		c.ReportMsg(fmt.Sprintf("translation too short (%d / %d)", lenID, lenStr), msgid, nil, msgstr, nil)
	}
}
