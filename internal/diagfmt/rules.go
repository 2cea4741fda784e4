package diagfmt

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"polint/internal/checker"
)

// WriteRules prints the registered rules as a table: name, severity,
// whether enabled by default and whether it is an actual check or a
// status flag.
func WriteRules(w io.Writer, rules []checker.Rule) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Rule", "Severity", "Default", "Type"})
	defaults := 0
	for _, rule := range rules {
		if rule.Default() {
			defaults++
		}
		kind := "check"
		if !rule.IsCheck() {
			kind = "status"
		}
		t.AppendRow(table.Row{
			rule.Name(),
			severityColor(rule.Severity()),
			yesNo(rule.Default()),
			kind,
		})
	}
	t.Render()
	fmt.Fprintf(w, "Total: %d rules (%d enabled by default)\n", len(rules), defaults)
	fmt.Fprintln(w, "Special rules:")
	fmt.Fprintln(w, "  all: select all rules")
	fmt.Fprintln(w, "  checks: select rules that check the translation content (all rules except the status rules changed, fuzzy, obsolete, unchanged and untranslated)")
	fmt.Fprintln(w, "  default: select the rules enabled by default")
	fmt.Fprintln(w, "  spelling: select the spelling rules")
}
