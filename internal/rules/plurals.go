package rules

import (
	"fmt"

	"polint/internal/checker"
	"polint/internal/diag"
	"polint/internal/po"
)

type pluralsRule struct{ meta }

func newPluralsRule() *pluralsRule {
	return &pluralsRule{meta{"plurals", diag.SevError, true, true}}
}

// CheckEntry reports an incorrect number of translated plural forms.
// Only entries with a plural form are checked, and only when the
// nplurals value is declared in the PO file header.
func (r *pluralsRule) CheckEntry(c *checker.Checker, entry *po.Entry) {
	expected := int(c.NPlurals())
	if expected == 0 || !entry.HasPluralForm() {
		return
	}
	found := len(entry.Msgstr)
	switch {
	case found < expected:
		c.ReportEntry(fmt.Sprintf("missing translated plural form (found: %d, expected: %d)", found, expected), entry)
	case found > expected:
		c.ReportEntry(fmt.Sprintf("extra translated plural form (found: %d, expected: %d)", found, expected), entry)
	}
}
