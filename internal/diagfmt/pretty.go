package diagfmt

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"polint/internal/diag"
)

var (
	colorPath      = color.New(color.FgWhite, color.Bold)
	colorInfo      = color.New(color.FgCyan)
	colorWarning   = color.New(color.FgYellow)
	colorError     = color.New(color.FgHiRed, color.Bold)
	colorGutter    = color.New(color.FgCyan)
	colorHighlight = color.New(color.FgHiYellow, color.Bold, color.BgRed)
)

// severityColor возвращает цветную строчную метку важности.
func severityColor(sev diag.Severity) string {
	switch sev {
	case diag.SevInfo:
		return colorInfo.Sprint("info")
	case diag.SevWarning:
		return colorWarning.Sprint("warning")
	case diag.SevError:
		return colorError.Sprint("error")
	}
	return sev.Label()
}

// highlightSpans colors the given byte ranges of s. Ranges must be
// ordered by start; a range overlapping the previous one is skipped.
func highlightSpans(s string, spans []diag.Span) string {
	var b strings.Builder
	pos := uint32(0)
	for _, span := range spans {
		if span.Start < pos {
			continue
		}
		b.WriteString(s[pos:span.Start])
		b.WriteString(colorHighlight.Sprint(s[span.Start:span.End]))
		pos = span.End
	}
	b.WriteString(s[pos:])
	return b.String()
}

// formatLine renders one report line with its gutter prefix. A line
// number of 0 and every continuation after a newline get the empty
// prefix.
func formatLine(line diag.Line) string {
	prefixEmpty := colorGutter.Sprint("        | ")
	prefix := prefixEmpty
	if line.Number > 0 {
		prefix = colorGutter.Sprintf("%7d | ", line.Number)
	}
	if line.Message == "" {
		return prefix
	}
	message := line.Message
	if len(line.Highlights) > 0 {
		message = highlightSpans(message, line.Highlights)
	}
	var b strings.Builder
	for idx, part := range strings.Split(message, "\n") {
		if idx == 0 {
			b.WriteString(prefix)
		} else {
			b.WriteByte('\n')
			b.WriteString(prefixEmpty)
		}
		b.WriteString(part)
	}
	return b.String()
}

func formatLines(d diag.Diagnostic) string {
	if len(d.Lines) == 0 {
		return "\n"
	}
	parts := make([]string, 0, len(d.Lines)+4)
	parts = append(parts, "", colorGutter.Sprint("        |"))
	for _, line := range d.Lines {
		parts = append(parts, formatLine(line))
	}
	parts = append(parts, colorGutter.Sprint("        |"), "")
	return strings.Join(parts, "\n")
}

// FormatDiagnostic renders one diagnostic in the human report format:
// the location header followed by the numbered report lines with
// highlighted ranges.
func FormatDiagnostic(d diag.Diagnostic) string {
	firstLine := ""
	if len(d.Lines) > 0 {
		firstLine = fmt.Sprintf(":%d", d.Lines[0].Number)
	}
	return fmt.Sprintf("%s%s: [%s:%s] %s%s",
		colorPath.Sprint(d.Path),
		firstLine,
		severityColor(d.Severity),
		d.Rule,
		d.Message,
		formatLines(d),
	)
}

// compareLineNumbers lexicographically compares the report line
// numbers of two diagnostics.
func compareLineNumbers(a, b diag.Diagnostic) int {
	for i := range a.Lines {
		if i >= len(b.Lines) {
			return 1
		}
		if a.Lines[i].Number != b.Lines[i].Number {
			if a.Lines[i].Number < b.Lines[i].Number {
				return -1
			}
			return 1
		}
	}
	if len(a.Lines) < len(b.Lines) {
		return -1
	}
	return 0
}

// SortDiagnostics orders diagnostics for display according to mode.
func SortDiagnostics(diags []diag.Diagnostic, mode SortMode) {
	sort.SliceStable(diags, func(i, j int) bool {
		a, b := diags[i], diags[j]
		switch mode {
		case SortMessage:
			am, bm := "", ""
			if len(a.Lines) > 0 {
				am = a.Lines[0].Message
			}
			if len(b.Lines) > 0 {
				bm = b.Lines[0].Message
			}
			if am != bm {
				return am < bm
			}
		case SortRule:
			if a.Rule != b.Rule {
				return a.Rule < b.Rule
			}
		}
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		return compareLineNumbers(a, b) < 0
	})
}

// WriteDiagnostics prints every diagnostic in the human format.
func WriteDiagnostics(w io.Writer, diags []diag.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintln(w, FormatDiagnostic(d))
	}
}

// WriteRuleStats prints per-rule diagnostic counts, most frequent
// first, ties broken by rule name.
func WriteRuleStats(w io.Writer, diags []diag.Diagnostic) {
	counts := make(map[string]int)
	for _, d := range diags {
		counts[d.Rule]++
	}
	rules := make([]string, 0, len(counts))
	for rule := range counts {
		rules = append(rules, rule)
	}
	sort.Slice(rules, func(i, j int) bool {
		if counts[rules[i]] != counts[rules[j]] {
			return counts[rules[i]] > counts[rules[j]]
		}
		return rules[i] < rules[j]
	})
	fmt.Fprintln(w, "Errors by rule:")
	for _, rule := range rules {
		fmt.Fprintf(w, "  %s: %d\n", rule, counts[rule])
	}
}

// FileTally counts diagnostics of one file by severity.
type FileTally struct {
	Path     string
	Info     int
	Warnings int
	Errors   int
}

func (t FileTally) total() int {
	return t.Info + t.Warnings + t.Errors
}

// WriteFileStats prints one problem summary line per file, sorted by
// path.
func WriteFileStats(w io.Writer, tallies []FileTally) {
	sort.Slice(tallies, func(i, j int) bool {
		return tallies[i].Path < tallies[j].Path
	})
	for _, t := range tallies {
		if t.total() == 0 {
			fmt.Fprintf(w, "%s: all OK!\n", t.Path)
		} else {
			fmt.Fprintf(w, "%s: %d problems (%d errors, %d warnings, %d info)\n",
				t.Path, t.total(), t.Errors, t.Warnings, t.Info)
		}
	}
}

// WriteMisspelled prints the distinct misspelled words collected
// across all files, one per line, sorted.
func WriteMisspelled(w io.Writer, words [][]string) {
	seen := make(map[string]struct{})
	for _, list := range words {
		for _, word := range list {
			seen[word] = struct{}{}
		}
	}
	distinct := make([]string, 0, len(seen))
	for word := range seen {
		distinct = append(distinct, word)
	}
	sort.Strings(distinct)
	for _, word := range distinct {
		fmt.Fprintln(w, word)
	}
}
