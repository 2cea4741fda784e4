package rules

import (
	"strings"
	"unicode"

	"polint/internal/checker"
	"polint/internal/diag"
	"polint/internal/po"
)

type unchangedRule struct{ meta }

func newUnchangedRule() *unchangedRule {
	return &unchangedRule{meta{"unchanged", diag.SevInfo, false, false}}
}

// CheckMsg reports a translation identical to the source string.
// Sources that contain only upper case letters are ignored, they are
// usually acronyms or keywords kept as-is.
func (r *unchangedRule) CheckMsg(c *checker.Checker, entry *po.Entry, msgid, msgstr string) {
	if strings.TrimSpace(msgid) == "" || strings.TrimSpace(msgstr) == "" || msgstr != msgid {
		return
	}
	allUpper := true
	for _, r := range msgid {
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			allUpper = false
			break
		}
	}
	if !allUpper && strings.ToUpper(msgid) != msgid {
		c.ReportMsg("unchanged translation", msgid, nil, msgstr, nil)
	}
}

type changedRule struct{ meta }

func newChangedRule() *changedRule {
	return &changedRule{meta{"changed", diag.SevInfo, false, false}}
}

// CheckMsg reports a translation different from the source string.
// Useful in rare cases, for example an en.po file that carries English
// translations with typos fixed: the reported entries show which
// source strings must be fixed in the source code.
func (r *changedRule) CheckMsg(c *checker.Checker, entry *po.Entry, msgid, msgstr string) {
	if strings.TrimSpace(msgid) != "" && strings.TrimSpace(msgstr) != "" && msgstr != msgid {
		c.ReportMsg("changed translation", msgid, nil, msgstr, nil)
	}
}
