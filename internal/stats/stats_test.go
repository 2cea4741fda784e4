package stats

import (
	"testing"
)

const testContent = `
msgid ""
msgstr "Language: fr\n"

msgid "this is a test"
msgstr "ceci est un test"

#, fuzzy
msgid "second test"
msgstr "mauvaise traduction"

msgid "third test"
msgstr ""

#~ msgid "old test"
#~ msgstr "vieux test"
`

func TestCollect(t *testing.T) {
	f := Collect("test.po", []byte(testContent), false)
	if f.Path != "test.po" {
		t.Errorf("path = %q", f.Path)
	}
	e := f.Entries
	if e.Total != 4 || e.Translated != 1 || e.Fuzzy != 1 || e.Untranslated != 1 || e.Obsolete != 1 {
		t.Fatalf("entries = %+v", e)
	}
	if e.PctTranslated() != 25 {
		t.Errorf("PctTranslated() = %d, want 25", e.PctTranslated())
	}
	if e.RatioTranslated() != 250_000 {
		t.Errorf("RatioTranslated() = %d, want 250000", e.RatioTranslated())
	}
	if f.Words != nil || f.Chars != nil {
		t.Error("words/chars must be nil without withWords")
	}
}

func TestCollectWords(t *testing.T) {
	f := Collect("test.po", []byte(`
msgid "this is a test"
msgstr "ceci est un test"
`), true)
	if f.Words == nil || f.Chars == nil {
		t.Fatal("words/chars not computed")
	}
	if f.Words.IDTotal != 4 {
		t.Errorf("words.IDTotal = %d, want 4", f.Words.IDTotal)
	}
	if f.Words.StrTranslated != 4 {
		t.Errorf("words.StrTranslated = %d, want 4", f.Words.StrTranslated)
	}
	// "thisisatest" and "ceciestuntest".
	if f.Chars.IDTotal != 11 {
		t.Errorf("chars.IDTotal = %d, want 11", f.Chars.IDTotal)
	}
	if f.Chars.StrTranslated != 13 {
		t.Errorf("chars.StrTranslated = %d, want 13", f.Chars.StrTranslated)
	}
}

func TestTotal(t *testing.T) {
	a := Collect("a.po", []byte(testContent), false)
	b := Collect("b.po", []byte(testContent), false)
	total := Total([]*File{a, b})
	if total.Path != "Total (2)" {
		t.Errorf("path = %q, want Total (2)", total.Path)
	}
	if total.Entries.Total != 8 || total.Entries.Translated != 2 {
		t.Errorf("entries = %+v", total.Entries)
	}
}

func TestSortByStatus(t *testing.T) {
	full := &File{Path: "full.po", Entries: Entries{Total: 2, Translated: 2}}
	half := &File{Path: "half.po", Entries: Entries{Total: 2, Translated: 1, Untranslated: 1}}
	empty := &File{Path: "empty.po", Entries: Entries{Total: 2, Untranslated: 2}}
	files := []*File{empty, full, half}
	SortByStatus(files)
	want := []string{"full.po", "half.po", "empty.po"}
	for i, f := range files {
		if f.Path != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, f.Path, want[i])
		}
	}
}

func TestSortByPath(t *testing.T) {
	files := []*File{{Path: "b.po"}, {Path: "a.po"}, {Path: "c.po"}}
	SortByPath(files)
	if files[0].Path != "a.po" || files[1].Path != "b.po" || files[2].Path != "c.po" {
		t.Errorf("order = %q %q %q", files[0].Path, files[1].Path, files[2].Path)
	}
}
