package checker

import (
	"polint/internal/diag"
	"polint/internal/po"
)

// Rule describes one check applied to catalog entries.
//
// Rules implement one or more of the hook interfaces below. Hooks are
// optional: a rule that only inspects entry flags implements just
// EntryChecker, while most content rules implement MsgChecker.
type Rule interface {
	// Name is the stable identifier used in rule selection, noqa
	// comments and reports.
	Name() string
	// Severity of the diagnostics this rule produces.
	Severity() diag.Severity
	// Default reports whether the rule is enabled without selection.
	Default() bool
	// IsCheck reports whether the rule checks the translation
	// content. The status rules (changed, fuzzy, obsolete, unchanged,
	// untranslated) return false and stay outside the "checks"
	// selection group.
	IsCheck() bool
}

// EntryChecker checks the entry as a whole (flags, plural count, встроенные
// проблемы кодировки).
type EntryChecker interface {
	CheckEntry(c *Checker, entry *po.Entry)
}

// CtxtChecker checks the message context (msgctxt).
type CtxtChecker interface {
	CheckCtxt(c *Checker, entry *po.Entry, msgctxt string)
}

// MsgChecker checks a source/translation string pair: msgid with
// msgstr[0], then msgid_plural with each msgstr[n] for n > 0.
type MsgChecker interface {
	CheckMsg(c *Checker, entry *po.Entry, msgid, msgstr string)
}

// RuleSet is a frozen selection of rules with cached status lookups
// used by the entry gating logic.
type RuleSet struct {
	Enabled []Rule

	HasFuzzy        bool
	HasObsolete     bool
	HasUntranslated bool
	HasSpellingCtxt bool
	HasSpellingID   bool
	HasSpellingStr  bool
}

// NewRuleSet freezes the given rules and computes the status lookups.
func NewRuleSet(enabled []Rule) *RuleSet {
	rs := &RuleSet{Enabled: enabled}
	for _, rule := range enabled {
		switch rule.Name() {
		case "fuzzy":
			rs.HasFuzzy = true
		case "obsolete":
			rs.HasObsolete = true
		case "untranslated":
			rs.HasUntranslated = true
		case "spelling-ctxt":
			rs.HasSpellingCtxt = true
		case "spelling-id":
			rs.HasSpellingID = true
		case "spelling-str":
			rs.HasSpellingStr = true
		}
	}
	return rs
}

// Names returns the names of the enabled rules, in order.
func (rs *RuleSet) Names() []string {
	names := make([]string, len(rs.Enabled))
	for i, rule := range rs.Enabled {
		names[i] = rule.Name()
	}
	return names
}

// NeedsDictID reports whether the identifier dictionary must be loaded.
func (rs *RuleSet) NeedsDictID() bool {
	return rs.HasSpellingCtxt || rs.HasSpellingID
}
