package diagfmt_test

import (
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"polint/internal/checker"
	"polint/internal/diag"
	"polint/internal/diagfmt"
	"polint/internal/rules"
)

func init() {
	color.NoColor = true
}

func TestFormatDiagnosticWithLines(t *testing.T) {
	d := diag.New(diag.SevError, "tabs", "fr.po", "missing tabs '\\t' (0 / 1)")
	d = d.WithLine(diag.Line{Number: 12, Message: `msgid "a\tb"`})
	d = d.WithLine(diag.Line{Number: 0, Message: ""})
	d = d.WithLine(diag.Line{Number: 13, Message: `msgstr "ab"`})

	got := diagfmt.FormatDiagnostic(d)
	want := strings.Join([]string{
		`fr.po:12: [error:tabs] missing tabs '\t' (0 / 1)`,
		"        |",
		`     12 | msgid "a\tb"`,
		"        | ",
		`     13 | msgstr "ab"`,
		"        |",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("FormatDiagnostic() = %q, want %q", got, want)
	}
}

func TestFormatDiagnosticWithoutLines(t *testing.T) {
	d := diag.NewError("read-error", "missing.po", "could not open file")
	got := diagfmt.FormatDiagnostic(d)
	want := "missing.po: [error:read-error] could not open file\n"
	if got != want {
		t.Fatalf("FormatDiagnostic() = %q, want %q", got, want)
	}
}

func TestFormatDiagnosticMultilineMessage(t *testing.T) {
	d := diag.New(diag.SevWarning, "long", "de.po", "translation too long (2 / 40)")
	d = d.WithLine(diag.Line{Number: 5, Message: "msgid \"\"\n\"a\""})

	got := diagfmt.FormatDiagnostic(d)
	if !strings.Contains(got, "      5 | msgid \"\"\n        | \"a\"") {
		t.Fatalf("continuation line not prefixed:\n%s", got)
	}
}

func TestFormatDiagnosticHighlightsKeepText(t *testing.T) {
	// Без цвета подсветка не меняет текст, в том числе при
	// пересекающихся диапазонах (второй пропускается).
	d := diag.New(diag.SevInfo, "pipes", "fr.po", "missing pipes '|' (0 / 1)")
	d = d.WithLine(diag.Line{
		Number:  3,
		Message: `msgstr "a|b"`,
		Highlights: []diag.Span{
			{Start: 8, End: 10},
			{Start: 9, End: 11},
		},
	})
	got := diagfmt.FormatDiagnostic(d)
	if !strings.Contains(got, `      3 | msgstr "a|b"`) {
		t.Fatalf("highlighted line altered:\n%s", got)
	}
}

func makeDiag(path, rule string, line uint32, lineMsg string) diag.Diagnostic {
	d := diag.New(diag.SevInfo, rule, path, "msg")
	return d.WithLine(diag.Line{Number: line, Message: lineMsg})
}

func TestSortDiagnostics(t *testing.T) {
	diags := []diag.Diagnostic{
		makeDiag("b.po", "tabs", 10, "bbb"),
		makeDiag("a.po", "pipes", 20, "ccc"),
		makeDiag("a.po", "tabs", 5, "aaa"),
	}

	order := func(diags []diag.Diagnostic) []string {
		keys := make([]string, len(diags))
		for i, d := range diags {
			keys[i] = d.Path + "/" + d.Rule
		}
		return keys
	}

	tests := []struct {
		mode diagfmt.SortMode
		want []string
	}{
		{diagfmt.SortLine, []string{"a.po/tabs", "a.po/pipes", "b.po/tabs"}},
		{diagfmt.SortMessage, []string{"a.po/tabs", "b.po/tabs", "a.po/pipes"}},
		{diagfmt.SortRule, []string{"a.po/pipes", "a.po/tabs", "b.po/tabs"}},
	}
	for _, tt := range tests {
		sorted := make([]diag.Diagnostic, len(diags))
		copy(sorted, diags)
		diagfmt.SortDiagnostics(sorted, tt.mode)
		got := order(sorted)
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("mode %s: order = %v, want %v", tt.mode, got, tt.want)
				break
			}
		}
	}
}

func TestWriteRuleStats(t *testing.T) {
	diags := []diag.Diagnostic{
		diag.New(diag.SevInfo, "pipes", "a.po", "m"),
		diag.New(diag.SevError, "tabs", "a.po", "m"),
		diag.New(diag.SevError, "tabs", "b.po", "m"),
	}
	var buf strings.Builder
	diagfmt.WriteRuleStats(&buf, diags)
	want := "Errors by rule:\n  tabs: 2\n  pipes: 1\n"
	if buf.String() != want {
		t.Fatalf("WriteRuleStats() = %q, want %q", buf.String(), want)
	}
}

func TestWriteFileStats(t *testing.T) {
	tallies := []diagfmt.FileTally{
		{Path: "b.po", Info: 1, Warnings: 2, Errors: 3},
		{Path: "a.po"},
	}
	var buf strings.Builder
	diagfmt.WriteFileStats(&buf, tallies)
	want := "a.po: all OK!\nb.po: 6 problems (3 errors, 2 warnings, 1 info)\n"
	if buf.String() != want {
		t.Fatalf("WriteFileStats() = %q, want %q", buf.String(), want)
	}
}

func TestWriteMisspelled(t *testing.T) {
	var buf strings.Builder
	diagfmt.WriteMisspelled(&buf, [][]string{{"zebra", "apple"}, {"apple", "mango"}})
	want := "apple\nmango\nzebra\n"
	if buf.String() != want {
		t.Fatalf("WriteMisspelled() = %q, want %q", buf.String(), want)
	}
}

func TestRenderCheckSummary(t *testing.T) {
	clean := diagfmt.FileReport{Path: "a.po"}
	dirty := diagfmt.FileReport{
		Path: "b.po",
		Diags: []diag.Diagnostic{
			diag.New(diag.SevError, "tabs", "b.po", "m"),
			diag.New(diag.SevInfo, "pipes", "b.po", "m"),
		},
	}
	elapsed := 250 * time.Millisecond

	var buf strings.Builder
	code := diagfmt.RenderCheck(&buf, []diagfmt.FileReport{clean}, diagfmt.CheckRenderOpts{}, elapsed)
	if code != 0 {
		t.Fatalf("clean run exit code = %d, want 0", code)
	}
	if !strings.Contains(buf.String(), "1 files checked: all OK! [250ms]") {
		t.Errorf("missing all OK summary:\n%s", buf.String())
	}

	buf.Reset()
	code = diagfmt.RenderCheck(&buf, []diagfmt.FileReport{clean, dirty}, diagfmt.CheckRenderOpts{}, elapsed)
	if code != 1 {
		t.Fatalf("dirty run exit code = %d, want 1", code)
	}
	want := "2 files checked: 2 problems in 1 files (1 errors, 0 warnings, 1 info) [250ms]"
	if !strings.Contains(buf.String(), want) {
		t.Errorf("missing summary %q:\n%s", want, buf.String())
	}

	buf.Reset()
	code = diagfmt.RenderCheck(&buf, nil, diagfmt.CheckRenderOpts{}, elapsed)
	if code != 0 {
		t.Fatalf("empty run exit code = %d, want 0", code)
	}
	if !strings.Contains(buf.String(), "No files checked [250ms]") {
		t.Errorf("missing empty summary:\n%s", buf.String())
	}
}

func TestRenderCheckQuiet(t *testing.T) {
	dirty := diagfmt.FileReport{
		Path:  "b.po",
		Diags: []diag.Diagnostic{diag.New(diag.SevError, "tabs", "b.po", "m")},
	}
	var buf strings.Builder
	code := diagfmt.RenderCheck(&buf, []diagfmt.FileReport{dirty}, diagfmt.CheckRenderOpts{Quiet: true}, time.Millisecond)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if buf.String() != "" {
		t.Fatalf("quiet run produced output: %q", buf.String())
	}
}

func TestRenderCheckMisspelled(t *testing.T) {
	report := diagfmt.FileReport{
		Path:       "b.po",
		Diags:      []diag.Diagnostic{diag.New(diag.SevInfo, "spelling-str", "b.po", "m")},
		Misspelled: []string{"wrd", "abc"},
	}
	var buf strings.Builder
	diagfmt.RenderCheck(&buf, []diagfmt.FileReport{report},
		diagfmt.CheckRenderOpts{Output: diagfmt.OutputMisspelled}, time.Millisecond)
	if buf.String() != "abc\nwrd\n" {
		t.Fatalf("misspelled output = %q", buf.String())
	}
}

func TestWriteSettings(t *testing.T) {
	set, err := rules.Select("tabs,fuzzy", "", nil)
	if err != nil {
		t.Fatalf("Select() error: %v", err)
	}
	var buf strings.Builder
	diagfmt.WriteSettings(&buf, diagfmt.Settings{
		Rules:         set,
		CheckNoqa:     true,
		CheckObsolete: false,
		Output:        diagfmt.OutputHuman,
	})
	want := strings.Join([]string{
		"Configuration:",
		"  Rules enabled: fuzzy, tabs",
		"  Check fuzzy entries: yes",
		"  Check noqa entries: yes",
		"  Check obsolete entries: no",
		"  Output format: human",
		"",
	}, "\n")
	if buf.String() != want {
		t.Fatalf("WriteSettings() = %q, want %q", buf.String(), want)
	}
}

func TestWriteSettingsNoRules(t *testing.T) {
	var buf strings.Builder
	diagfmt.WriteSettings(&buf, diagfmt.Settings{
		Rules:  checker.NewRuleSet(nil),
		Output: diagfmt.OutputJSON,
	})
	if !strings.Contains(buf.String(), "  Rules enabled: <none>\n") {
		t.Errorf("missing <none> marker:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "  Output format: json\n") {
		t.Errorf("missing output format:\n%s", buf.String())
	}
}
