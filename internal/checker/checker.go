// Package checker runs a rule set over the entries of one catalog file
// and collects the resulting diagnostics.
package checker

import (
	"sort"

	"polint/internal/diag"
	"polint/internal/po"
	"polint/internal/source"
	"polint/internal/spell"
)

// Options configures a Checker for one file.
type Options struct {
	Path          string
	Rules         *RuleSet
	CheckFuzzy    bool
	CheckNoqa     bool
	CheckObsolete bool

	// DictID is the dictionary for identifiers and contexts (the
	// --lang-id language), shared by all files of a run.
	DictID *spell.Dict
	// Dicts loads per-language translation dictionaries on demand.
	Dicts *spell.Cache
}

// Checker checks the entries of a single PO file.
type Checker struct {
	path   string
	file   *source.File
	parser *po.Parser
	rules  *RuleSet
	bag    *diag.Bag

	checkFuzzy    bool
	checkNoqa     bool
	checkObsolete bool

	dictID     *spell.Dict
	dicts      *spell.Cache
	dictStr    *spell.Dict
	misspelled map[string]struct{}

	currentRule     string
	currentSeverity diag.Severity
	currentLineCtxt uint32
	currentLineID   uint32
	currentLineStr  uint32
}

// New creates a checker over a normalized source file.
func New(file *source.File, opts Options) *Checker {
	rules := opts.Rules
	if rules == nil {
		rules = NewRuleSet(nil)
	}
	return &Checker{
		path:          opts.Path,
		file:          file,
		parser:        po.NewParser(file.Content),
		rules:         rules,
		bag:           diag.NewBag(0),
		checkFuzzy:    opts.CheckFuzzy,
		checkNoqa:     opts.CheckNoqa,
		checkObsolete: opts.CheckObsolete,
		dictID:        opts.DictID,
		dicts:         opts.Dicts,
		misspelled:    make(map[string]struct{}),
	}
}

// Bag returns the collected diagnostics.
func (c *Checker) Bag() *diag.Bag {
	return c.bag
}

// Misspelled returns the distinct misspelled words found, sorted.
func (c *Checker) Misspelled() []string {
	words := make([]string, 0, len(c.misspelled))
	for word := range c.misspelled {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

// AddMisspelled records a misspelled word for the run summary.
func (c *Checker) AddMisspelled(word string) {
	c.misspelled[word] = struct{}{}
}

// Language returns the language of the file being checked (e.g. "pt_BR").
func (c *Checker) Language() string {
	return c.parser.Language
}

// LanguageCode returns the language code of the file being checked (e.g. "pt").
func (c *Checker) LanguageCode() string {
	return c.parser.LanguageCode
}

// Country returns the country of the file being checked (e.g. "BR").
func (c *Checker) Country() string {
	return c.parser.Country
}

// EncodingName returns the charset name declared in the header.
func (c *Checker) EncodingName() string {
	return c.parser.EncodingName()
}

// NPlurals returns the number of plural forms declared in the header.
func (c *Checker) NPlurals() uint32 {
	return c.parser.NPlurals
}

// DictID returns the identifier dictionary, or nil when not loaded.
func (c *Checker) DictID() *spell.Dict {
	return c.dictID
}

// DictStr returns the translation dictionary, or nil when not loaded.
func (c *Checker) DictStr() *spell.Dict {
	return c.dictStr
}

// ReportFile adds a diagnostic about the file itself, without lines.
func (c *Checker) ReportFile(rule string, severity diag.Severity, message string) {
	c.bag.Add(diag.New(severity, rule, c.path, message))
}

// ReportEntry adds a diagnostic showing the whole entry, without highlights.
func (c *Checker) ReportEntry(message string, entry *po.Entry) {
	d := diag.New(c.currentSeverity, c.currentRule, c.path, message)
	for _, line := range entry.PoLines() {
		d.Lines = append(d.Lines, diag.Line{Number: line.Number, Message: line.Text})
	}
	c.bag.Add(d)
}

// ReportEntrySource adds a diagnostic showing the entry's raw source
// lines. Decoded values can hide the problem, for example bytes that
// are invalid in the declared charset get replacement characters, so
// the report shows the original text of each message line instead.
func (c *Checker) ReportEntrySource(message string, entry *po.Entry) {
	d := diag.New(c.currentSeverity, c.currentRule, c.path, message)
	for _, line := range entry.PoLines() {
		text := line.Text
		if raw := c.file.GetLine(line.Number); len(raw) > 0 {
			text = string(raw)
		}
		d.Lines = append(d.Lines, diag.Line{Number: line.Number, Message: text})
	}
	c.bag.Add(d)
}

// ReportCtxt adds a diagnostic about the message context.
func (c *Checker) ReportCtxt(message, msgctxt string, highlights []diag.Span) {
	d := diag.New(c.currentSeverity, c.currentRule, c.path, message)
	d.Lines = append(d.Lines, diag.Line{
		Number:     c.currentLineCtxt,
		Message:    msgctxt,
		Highlights: highlights,
	})
	c.bag.Add(d)
}

// ReportMsg adds a diagnostic about a source/translation pair. The
// report shows the source line, a separator, and the translation line.
func (c *Checker) ReportMsg(message, msgid string, hlID []diag.Span, msgstr string, hlStr []diag.Span) {
	d := diag.New(c.currentSeverity, c.currentRule, c.path, message)
	d.Lines = append(d.Lines,
		diag.Line{Number: c.currentLineID, Message: msgid, Highlights: hlID},
		diag.Line{Number: 0, Message: ""},
		diag.Line{Number: c.currentLineStr, Message: msgstr, Highlights: hlStr},
	)
	c.bag.Add(d)
}

// checkEntry runs one rule over one entry, dispatching to the hooks the
// rule implements: CheckEntry for the whole entry, CheckCtxt for the
// context, CheckMsg for msgid/msgstr[0] and msgid_plural/msgstr[n].
func (c *Checker) checkEntry(entry *po.Entry, rule Rule) {
	c.currentRule = rule.Name()
	c.currentSeverity = rule.Severity()
	ruleIsUntranslated := c.currentRule == "untranslated"

	if ec, ok := rule.(EntryChecker); ok {
		ec.CheckEntry(c, entry)
	}
	if entry.Msgctxt != nil {
		if cc, ok := rule.(CtxtChecker); ok {
			c.currentLineCtxt = entry.Msgctxt.Line
			cc.CheckCtxt(c, entry, entry.Msgctxt.Value)
		}
	}
	mc, isMsgChecker := rule.(MsgChecker)
	if !isMsgChecker {
		return
	}
	if msgstr0, ok := entry.Msgstr[0]; ok && entry.Msgid != nil {
		if msgstr0.Value != "" || (c.rules.HasUntranslated && ruleIsUntranslated) {
			c.currentLineID = entry.Msgid.Line
			c.currentLineStr = msgstr0.Line
			mc.CheckMsg(c, entry, entry.Msgid.Value, msgstr0.Value)
		}
	}
	if entry.MsgidPlural != nil {
		for _, idx := range entry.MsgstrIndices() {
			if idx == 0 {
				continue
			}
			msgstrN := entry.Msgstr[idx]
			if msgstrN.Value != "" || (c.rules.HasUntranslated && ruleIsUntranslated) {
				c.currentLineID = entry.MsgidPlural.Line
				c.currentLineStr = msgstrN.Line
				mc.CheckMsg(c, entry, entry.MsgidPlural.Value, msgstrN.Value)
			}
		}
	}
}

// Run performs all checks on every entry of the file.
func (c *Checker) Run() {
	dictStrFailed := false
	for {
		entry := c.parser.Next()
		if entry == nil {
			return
		}
		if entry.IsHeader() {
			// The header gives us the language: load the translation
			// dictionary lazily, reporting a failure once per file.
			if c.rules.HasSpellingStr && c.dictStr == nil && c.dicts != nil && !dictStrFailed {
				dict, err := c.dicts.Get(c.parser.Language)
				if err != nil {
					c.ReportFile("spelling-str", diag.SevWarning, err.Error())
					dictStrFailed = true
				} else {
					c.dictStr = dict
				}
			}
			continue
		}
		if (!entry.IsTranslated() && !c.rules.HasUntranslated) ||
			(entry.Fuzzy && !c.checkFuzzy && !c.rules.HasFuzzy) ||
			(entry.Noqa && !c.checkNoqa) ||
			(entry.Obsolete && !c.checkObsolete && !c.rules.HasObsolete) {
			continue
		}
		for _, rule := range c.rules.Enabled {
			if entry.HasNoqaRule(rule.Name()) {
				continue
			}
			c.checkEntry(entry, rule)
		}
	}
}
