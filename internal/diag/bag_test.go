package diag

import (
	"testing"
)

func TestBagSortDeterministic(t *testing.T) {
	bag := NewBag(0)
	bag.Add(Diagnostic{Rule: "tabs", Severity: SevError, Message: "b", Lines: []Line{{Number: 10}}})
	bag.Add(Diagnostic{Rule: "blank", Severity: SevWarning, Message: "a", Lines: []Line{{Number: 3}}})
	bag.Add(Diagnostic{Rule: "pipes", Severity: SevInfo, Message: "c", Lines: []Line{{Number: 3}}})
	bag.Add(Diagnostic{Rule: "blank", Severity: SevWarning, Message: "z", Lines: []Line{{Number: 3}}})
	bag.Add(Diagnostic{Rule: "read-error", Severity: SevError, Message: "io"})

	bag.Sort()

	wantRules := []string{"read-error", "blank", "blank", "pipes", "tabs"}
	for i, d := range bag.Items() {
		if d.Rule != wantRules[i] {
			t.Fatalf("position %d: expected rule %q, got %q", i, wantRules[i], d.Rule)
		}
	}
	if bag.Items()[1].Message != "a" || bag.Items()[2].Message != "z" {
		t.Fatalf("equal line and rule must be ordered by message")
	}
}

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(Diagnostic{Rule: "a"}) || !bag.Add(Diagnostic{Rule: "b"}) {
		t.Fatalf("first two adds must succeed")
	}
	if bag.Add(Diagnostic{Rule: "c"}) {
		t.Fatalf("third add must be rejected")
	}
	if bag.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", bag.Len())
	}
}

func TestBagCounts(t *testing.T) {
	bag := NewBag(0)
	bag.Add(Diagnostic{Severity: SevError})
	bag.Add(Diagnostic{Severity: SevWarning})
	bag.Add(Diagnostic{Severity: SevWarning})
	bag.Add(Diagnostic{Severity: SevInfo})

	if !bag.HasErrors() || !bag.HasWarnings() {
		t.Fatalf("expected errors and warnings")
	}
	if got := bag.CountSeverity(SevWarning); got != 2 {
		t.Fatalf("expected 2 warnings, got %d", got)
	}
	if got := bag.CountSeverity(SevInfo); got != 1 {
		t.Fatalf("expected 1 info, got %d", got)
	}
}

func TestMergeGrowsLimit(t *testing.T) {
	a := NewBag(2)
	a.Add(Diagnostic{Rule: "x"})
	a.Add(Diagnostic{Rule: "y"})

	b := NewBag(2)
	b.Add(Diagnostic{Rule: "z"})

	a.Merge(b)
	if a.Len() != 3 {
		t.Fatalf("expected 3 items after merge, got %d", a.Len())
	}
}

func TestParseSeverity(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Severity
	}{
		{"info", SevInfo},
		{"warning", SevWarning},
		{"error", SevError},
	} {
		got, err := ParseSeverity(tt.in)
		if err != nil {
			t.Fatalf("ParseSeverity(%q) returned error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseSeverity(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
	if _, err := ParseSeverity("fatal"); err == nil {
		t.Fatalf("expected error for unknown severity")
	}
}
