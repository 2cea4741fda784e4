package rules

import (
	"fmt"
	"sort"
	"strings"

	"polint/internal/checker"
	"polint/internal/diag"
	"polint/internal/format"
	"polint/internal/po"
	"polint/internal/spell"
)

type spellingCtxtRule struct{ meta }

func newSpellingCtxtRule() *spellingCtxtRule {
	return &spellingCtxtRule{meta{"spelling-ctxt", diag.SevInfo, false, true}}
}

// CheckCtxt reports misspelled words in the context string, checked
// with the identifier dictionary (English by default).
func (r *spellingCtxtRule) CheckCtxt(c *checker.Checker, entry *po.Entry, msgctxt string) {
	dict := c.DictID()
	if dict == nil {
		return
	}
	words, spans := checkWords(entry, msgctxt, dict)
	if len(words) == 0 {
		return
	}
	c.ReportCtxt(fmt.Sprintf("misspelled words in context: %s", strings.Join(words, ", ")), msgctxt, spans)
	for _, word := range words {
		c.AddMisspelled(word)
	}
}

type spellingIDRule struct{ meta }

func newSpellingIDRule() *spellingIDRule {
	return &spellingIDRule{meta{"spelling-id", diag.SevInfo, false, true}}
}

// CheckMsg reports misspelled words in the source string, checked with
// the identifier dictionary (English by default).
func (r *spellingIDRule) CheckMsg(c *checker.Checker, entry *po.Entry, msgid, msgstr string) {
	dict := c.DictID()
	if dict == nil {
		return
	}
	words, spans := checkWords(entry, msgid, dict)
	if len(words) == 0 {
		return
	}
	c.ReportMsg(fmt.Sprintf("misspelled words in source: %s", strings.Join(words, ", ")),
		msgid, spans, msgstr, nil)
	for _, word := range words {
		c.AddMisspelled(word)
	}
}

type spellingStrRule struct{ meta }

func newSpellingStrRule() *spellingStrRule {
	return &spellingStrRule{meta{"spelling-str", diag.SevInfo, false, true}}
}

// CheckMsg reports misspelled words in the translated string, checked
// with the dictionary of the language declared in the PO file.
func (r *spellingStrRule) CheckMsg(c *checker.Checker, entry *po.Entry, msgid, msgstr string) {
	dict := c.DictStr()
	if dict == nil {
		return
	}
	words, spans := checkWords(entry, msgstr, dict)
	if len(words) == 0 {
		return
	}
	c.ReportMsg(fmt.Sprintf("misspelled words in translation: %s", strings.Join(words, ", ")),
		msgid, nil, msgstr, spans)
	for _, word := range words {
		c.AddMisspelled(word)
	}
}

// checkWords checks the words of a string against a dictionary. Format
// specifiers of the entry format language are not treated as words.
// It returns the sorted distinct misspelled words and the spans of all
// their occurrences.
func checkWords(entry *po.Entry, s string, dict *spell.Dict) ([]string, []diag.Span) {
	lang := format.LanguageFrom(entry.Format)
	seen := make(map[string]bool)
	misspelled := make(map[string]bool)
	var spans []diag.Span
	for _, m := range format.Words(s, lang) {
		if seen[m.Text] {
			if misspelled[m.Text] {
				spans = append(spans, diag.Span{Start: uint32(m.Start), End: uint32(m.End)})
			}
			continue
		}
		seen[m.Text] = true
		if !dict.Check(m.Text) {
			misspelled[m.Text] = true
			spans = append(spans, diag.Span{Start: uint32(m.Start), End: uint32(m.End)})
		}
	}
	if len(misspelled) == 0 {
		return nil, nil
	}
	words := make([]string, 0, len(misspelled))
	for word := range misspelled {
		words = append(words, word)
	}
	sort.Strings(words)
	return words, spans
}
