package diagfmt_test

import (
	"strings"
	"testing"

	"polint/internal/diagfmt"
	"polint/internal/rules"
)

func TestWriteRules(t *testing.T) {
	var buf strings.Builder
	diagfmt.WriteRules(&buf, rules.All())

	out := buf.String()
	if !strings.Contains(out, "Total: 26 rules (17 enabled by default)") {
		t.Errorf("missing totals line:\n%s", out)
	}
	wanted := []string{
		"blank", "spelling-str", "untranslated", "status", "Special rules:",
		"changed, fuzzy, obsolete, unchanged and untranslated",
	}
	for _, want := range wanted {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
