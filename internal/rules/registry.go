package rules

import (
	"polint/internal/checker"
	"polint/internal/diag"
)

// meta carries the static properties shared by all rules.
type meta struct {
	name     string
	severity diag.Severity
	def      bool
	check    bool
}

func (m meta) Name() string            { return m.name }
func (m meta) Severity() diag.Severity { return m.severity }
func (m meta) Default() bool           { return m.def }
func (m meta) IsCheck() bool           { return m.check }

var (
	_ checker.MsgChecker   = (*blankRule)(nil)
	_ checker.MsgChecker   = (*bracketsRule)(nil)
	_ checker.MsgChecker   = (*cFormatsRule)(nil)
	_ checker.MsgChecker   = (*changedRule)(nil)
	_ checker.MsgChecker   = (*doubleQuotesRule)(nil)
	_ checker.MsgChecker   = (*doubleSpacesRule)(nil)
	_ checker.EntryChecker = (*encodingRule)(nil)
	_ checker.MsgChecker   = (*escapesRule)(nil)
	_ checker.MsgChecker   = (*formatsRule)(nil)
	_ checker.EntryChecker = (*fuzzyRule)(nil)
	_ checker.MsgChecker   = (*longRule)(nil)
	_ checker.MsgChecker   = (*newlinesRule)(nil)
	_ checker.EntryChecker = (*obsoleteRule)(nil)
	_ checker.MsgChecker   = (*pipesRule)(nil)
	_ checker.EntryChecker = (*pluralsRule)(nil)
	_ checker.MsgChecker   = (*puncEndRule)(nil)
	_ checker.MsgChecker   = (*puncStartRule)(nil)
	_ checker.MsgChecker   = (*shortRule)(nil)
	_ checker.CtxtChecker  = (*spellingCtxtRule)(nil)
	_ checker.MsgChecker   = (*spellingIDRule)(nil)
	_ checker.MsgChecker   = (*spellingStrRule)(nil)
	_ checker.MsgChecker   = (*tabsRule)(nil)
	_ checker.MsgChecker   = (*unchangedRule)(nil)
	_ checker.MsgChecker   = (*untranslatedRule)(nil)
	_ checker.MsgChecker   = (*whitespaceEndRule)(nil)
	_ checker.MsgChecker   = (*whitespaceStartRule)(nil)
)

// All returns every known rule, sorted by name.
func All() []checker.Rule {
	return []checker.Rule{
		newBlankRule(),
		newBracketsRule(),
		newCFormatsRule(),
		newChangedRule(),
		newDoubleQuotesRule(),
		newDoubleSpacesRule(),
		newEncodingRule(),
		newEscapesRule(),
		newFormatsRule(),
		newFuzzyRule(),
		newLongRule(),
		newNewlinesRule(),
		newObsoleteRule(),
		newPipesRule(),
		newPluralsRule(),
		newPuncEndRule(),
		newPuncStartRule(),
		newShortRule(),
		newSpellingCtxtRule(),
		newSpellingIDRule(),
		newSpellingStrRule(),
		newTabsRule(),
		newUnchangedRule(),
		newUntranslatedRule(),
		newWhitespaceEndRule(),
		newWhitespaceStartRule(),
	}
}
