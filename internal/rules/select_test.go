package rules

import (
	"strings"
	"testing"

	"polint/internal/diag"
)

func TestSelectDefaults(t *testing.T) {
	rs, err := Select("", "", nil)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if len(rs.Enabled) != 17 {
		t.Fatalf("got %d default rules %q, want 17", len(rs.Enabled), rs.Names())
	}
	for _, rule := range rs.Enabled {
		if !rule.Default() {
			t.Errorf("non-default rule %q selected by default", rule.Name())
		}
	}
	if rs.HasFuzzy || rs.HasObsolete || rs.HasUntranslated {
		t.Error("status rules must not be enabled by default")
	}
}

func TestSelectAll(t *testing.T) {
	rs, err := Select("all", "", nil)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if len(rs.Enabled) != 26 {
		t.Fatalf("got %d rules, want 26", len(rs.Enabled))
	}
	if !rs.HasFuzzy || !rs.HasObsolete || !rs.HasUntranslated {
		t.Error("status rules missing from all")
	}
}

func TestSelectChecks(t *testing.T) {
	rs, err := Select("checks", "", nil)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if len(rs.Enabled) != 21 {
		t.Fatalf("got %d rules %q, want 21", len(rs.Enabled), rs.Names())
	}
	for _, name := range []string{"changed", "fuzzy", "obsolete", "unchanged", "untranslated"} {
		for _, got := range rs.Names() {
			if got == name {
				t.Errorf("status rule %q enabled by the checks group", name)
			}
		}
	}
	if rs.HasFuzzy || rs.HasObsolete || rs.HasUntranslated {
		t.Error("status lookups set for the checks group")
	}
}

func TestSelectSpellingGroup(t *testing.T) {
	rs, err := Select("spelling", "", nil)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	want := []string{"spelling-ctxt", "spelling-id", "spelling-str"}
	got := rs.Names()
	if len(got) != len(want) {
		t.Fatalf("got %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rule %d: got %q, want %q", i, got[i], want[i])
		}
	}
	if !rs.NeedsDictID() {
		t.Error("spelling selection must need the identifier dictionary")
	}
}

func TestSelectNames(t *testing.T) {
	rs, err := Select("blank, tabs", "", nil)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	got := rs.Names()
	if len(got) != 2 || got[0] != "blank" || got[1] != "tabs" {
		t.Fatalf("got %q, want [blank tabs]", got)
	}
}

func TestSelectUnknown(t *testing.T) {
	_, err := Select("blank,xxx,yyy", "", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "unknown selected rules: xxx, yyy" {
		t.Errorf("got error %q", err)
	}

	_, err = Select("", "zzz", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "unknown rules to ignore: zzz" {
		t.Errorf("got error %q", err)
	}
}

func TestSelectIgnore(t *testing.T) {
	rs, err := Select("", "blank,long,short", nil)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if len(rs.Enabled) != 14 {
		t.Fatalf("got %d rules, want 14", len(rs.Enabled))
	}
	for _, name := range rs.Names() {
		switch name {
		case "blank", "long", "short":
			t.Errorf("ignored rule %q still enabled", name)
		}
	}
}

func TestSelectIgnoreGroup(t *testing.T) {
	rs, err := Select("all", "spelling", nil)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if len(rs.Enabled) != 23 {
		t.Fatalf("got %d rules, want 23", len(rs.Enabled))
	}
	for _, name := range rs.Names() {
		if strings.HasPrefix(name, "spelling-") {
			t.Errorf("ignored rule %q still enabled", name)
		}
	}
}

func TestSelectSeverityFilter(t *testing.T) {
	rs, err := Select("", "", []diag.Severity{diag.SevError})
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	for _, rule := range rs.Enabled {
		if rule.Severity() != diag.SevError {
			t.Errorf("rule %q has severity %v", rule.Name(), rule.Severity())
		}
	}
	// Default error rules: c-formats, escapes, newlines, plurals, tabs.
	if len(rs.Enabled) != 5 {
		t.Fatalf("got %d rules %q, want 5", len(rs.Enabled), rs.Names())
	}

	// A rule filtered out by severity is unknown to the selection.
	_, err = Select("blank", "", []diag.Severity{diag.SevError})
	if err == nil || err.Error() != "unknown selected rules: blank" {
		t.Errorf("got error %v, want unknown selected rules: blank", err)
	}
}
