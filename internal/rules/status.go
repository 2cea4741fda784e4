package rules

import (
	"polint/internal/checker"
	"polint/internal/diag"
	"polint/internal/po"
)

// The fuzzy, obsolete and untranslated rules do not check the content
// of the translation: they flag entry states, which helps to list them
// in a PO file. Like changed and unchanged they stay outside the
// "checks" selection group.

type fuzzyRule struct{ meta }

func newFuzzyRule() *fuzzyRule {
	return &fuzzyRule{meta{"fuzzy", diag.SevInfo, false, false}}
}

// CheckEntry reports a fuzzy entry.
func (r *fuzzyRule) CheckEntry(c *checker.Checker, entry *po.Entry) {
	if entry.Fuzzy {
		c.ReportEntry("fuzzy entry", entry)
	}
}

type obsoleteRule struct{ meta }

func newObsoleteRule() *obsoleteRule {
	return &obsoleteRule{meta{"obsolete", diag.SevInfo, false, false}}
}

// CheckEntry reports an obsolete entry.
func (r *obsoleteRule) CheckEntry(c *checker.Checker, entry *po.Entry) {
	if entry.Obsolete {
		c.ReportEntry("obsolete entry", entry)
	}
}

type untranslatedRule struct{ meta }

func newUntranslatedRule() *untranslatedRule {
	return &untranslatedRule{meta{"untranslated", diag.SevInfo, false, false}}
}

// CheckMsg reports an untranslated message.
func (r *untranslatedRule) CheckMsg(c *checker.Checker, entry *po.Entry, msgid, msgstr string) {
	if msgstr == "" {
		c.ReportMsg("untranslated message", msgid, nil, msgstr, nil)
	}
}
