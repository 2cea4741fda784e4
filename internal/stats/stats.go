// Package stats computes translation statistics for PO files: entry
// counters by status, plus optional word and character counters.
package stats

import (
	"fmt"
	"sort"

	"polint/internal/format"
	"polint/internal/po"
)

// Entries counts catalog entries by status. The header entry is not
// counted.
type Entries struct {
	Total        uint64 `json:"total" msgpack:"total"`
	Translated   uint64 `json:"translated" msgpack:"translated"`
	Fuzzy        uint64 `json:"fuzzy" msgpack:"fuzzy"`
	Untranslated uint64 `json:"untranslated" msgpack:"untranslated"`
	Obsolete     uint64 `json:"obsolete" msgpack:"obsolete"`
}

func pct(part, total uint64) uint64 {
	if total == 0 {
		return 0
	}
	return part * 100 / total
}

// ratio scales part/total to 1,000,000, for sorting with more
// precision than integer percentages.
func ratio(part, total uint64) uint64 {
	if total == 0 {
		return 0
	}
	return part * 1_000_000 / total
}

func (e Entries) PctTranslated() uint64   { return pct(e.Translated, e.Total) }
func (e Entries) PctFuzzy() uint64        { return pct(e.Fuzzy, e.Total) }
func (e Entries) PctUntranslated() uint64 { return pct(e.Untranslated, e.Total) }
func (e Entries) PctObsolete() uint64     { return pct(e.Obsolete, e.Total) }

func (e Entries) RatioTranslated() uint64   { return ratio(e.Translated, e.Total) }
func (e Entries) RatioFuzzy() uint64        { return ratio(e.Fuzzy, e.Total) }
func (e Entries) RatioUntranslated() uint64 { return ratio(e.Untranslated, e.Total) }
func (e Entries) RatioObsolete() uint64     { return ratio(e.Obsolete, e.Total) }

// Add accumulates the counters of another Entries.
func (e *Entries) Add(other Entries) {
	e.Total += other.Total
	e.Translated += other.Translated
	e.Fuzzy += other.Fuzzy
	e.Untranslated += other.Untranslated
	e.Obsolete += other.Obsolete
}

// Counts holds word or character counters, split between source (id)
// and translation (str), by entry status.
type Counts struct {
	IDTotal        uint64 `json:"id_total" msgpack:"id_total"`
	IDTranslated   uint64 `json:"id_translated" msgpack:"id_translated"`
	IDFuzzy        uint64 `json:"id_fuzzy" msgpack:"id_fuzzy"`
	IDUntranslated uint64 `json:"id_untranslated" msgpack:"id_untranslated"`
	IDObsolete     uint64 `json:"id_obsolete" msgpack:"id_obsolete"`
	StrTranslated  uint64 `json:"str_translated" msgpack:"str_translated"`
	StrFuzzy       uint64 `json:"str_fuzzy" msgpack:"str_fuzzy"`
	// StrUntranslated is always 0, kept for symmetry.
	StrUntranslated uint64 `json:"str_untranslated" msgpack:"str_untranslated"`
	StrObsolete     uint64 `json:"str_obsolete" msgpack:"str_obsolete"`
}

func (c Counts) PctIDTranslated() uint64   { return pct(c.IDTranslated, c.IDTotal) }
func (c Counts) PctIDFuzzy() uint64        { return pct(c.IDFuzzy, c.IDTotal) }
func (c Counts) PctIDUntranslated() uint64 { return pct(c.IDUntranslated, c.IDTotal) }
func (c Counts) PctIDObsolete() uint64     { return pct(c.IDObsolete, c.IDTotal) }

// Add accumulates the counters of another Counts.
func (c *Counts) Add(other Counts) {
	c.IDTotal += other.IDTotal
	c.IDTranslated += other.IDTranslated
	c.IDFuzzy += other.IDFuzzy
	c.IDUntranslated += other.IDUntranslated
	c.IDObsolete += other.IDObsolete
	c.StrTranslated += other.StrTranslated
	c.StrFuzzy += other.StrFuzzy
	c.StrUntranslated += other.StrUntranslated
	c.StrObsolete += other.StrObsolete
}

// File holds the statistics of one PO file.
type File struct {
	Path    string  `json:"path" msgpack:"path"`
	Entries Entries `json:"entries" msgpack:"entries"`
	Words   *Counts `json:"words,omitempty" msgpack:"words,omitempty"`
	Chars   *Counts `json:"chars,omitempty" msgpack:"chars,omitempty"`
}

// Collect parses raw file bytes and computes its statistics. Word and
// character counters are only computed when withWords is set, they
// need a full scan of every string.
func Collect(path string, data []byte, withWords bool) *File {
	parser := po.NewParser(data)
	file := &File{Path: path}
	var words, chars Counts
	for {
		entry := parser.Next()
		if entry == nil {
			break
		}
		if entry.IsHeader() {
			continue
		}
		lang := format.LanguageFrom(entry.Format)
		var wordsID, charsID, wordsStr, charsStr uint64
		if withWords {
			if entry.Msgid != nil {
				wordsID = uint64(len(format.Words(entry.Msgid.Value, lang)))
				charsID = uint64(len(format.Chars(entry.Msgid.Value, lang)))
			}
			if msgstr0, ok := entry.Msgstr[0]; ok {
				wordsStr = uint64(len(format.Words(msgstr0.Value, lang)))
				charsStr = uint64(len(format.Chars(msgstr0.Value, lang)))
			}
		}
		file.Entries.Total++
		words.IDTotal += wordsID
		chars.IDTotal += charsID
		switch {
		case entry.Fuzzy:
			file.Entries.Fuzzy++
			words.IDFuzzy += wordsID
			chars.IDFuzzy += charsID
			words.StrFuzzy += wordsStr
			chars.StrFuzzy += charsStr
		case entry.Obsolete:
			file.Entries.Obsolete++
			words.IDObsolete += wordsID
			chars.IDObsolete += charsID
			words.StrObsolete += wordsStr
			chars.StrObsolete += charsStr
		case entry.IsTranslated():
			file.Entries.Translated++
			words.IDTranslated += wordsID
			chars.IDTranslated += charsID
			words.StrTranslated += wordsStr
			chars.StrTranslated += charsStr
		default:
			file.Entries.Untranslated++
			words.IDUntranslated += wordsID
			chars.IDUntranslated += charsID
		}
	}
	if withWords {
		file.Words = &words
		file.Chars = &chars
	}
	return file
}

// Total sums the statistics of all files into a synthetic "Total (n)"
// entry.
func Total(files []*File) *File {
	total := &File{Path: fmt.Sprintf("Total (%d)", len(files))}
	var words, chars Counts
	addWords, addChars := false, false
	for _, f := range files {
		total.Entries.Add(f.Entries)
		if f.Words != nil {
			words.Add(*f.Words)
			addWords = true
		}
		if f.Chars != nil {
			chars.Add(*f.Chars)
			addChars = true
		}
	}
	if addWords {
		total.Words = &words
	}
	if addChars {
		total.Chars = &chars
	}
	return total
}

// SortByPath sorts the files by path.
func SortByPath(files []*File) {
	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
}

// SortByStatus sorts the files from most to least complete: descending
// translated ratio, then fuzzy, untranslated and obsolete ratios, with
// the path as final tie breaker.
func SortByStatus(files []*File) {
	key := func(f *File) [8]uint64 {
		e := f.Entries
		return [8]uint64{
			e.RatioTranslated(), e.Translated,
			e.RatioFuzzy(), e.Fuzzy,
			e.RatioUntranslated(), e.Untranslated,
			e.RatioObsolete(), e.Obsolete,
		}
	}
	sort.Slice(files, func(i, j int) bool {
		ki, kj := key(files[i]), key(files[j])
		for n := range ki {
			if ki[n] != kj[n] {
				return ki[n] > kj[n]
			}
		}
		return files[i].Path < files[j].Path
	})
}
