package diagfmt

import (
	"fmt"
	"io"
	"strings"
	"time"

	"polint/internal/checker"
	"polint/internal/diag"
)

// FileReport is the renderable outcome of checking one file.
type FileReport struct {
	Path       string
	Diags      []diag.Diagnostic
	Misspelled []string
}

// CheckRenderOpts configures rendering of a check run.
type CheckRenderOpts struct {
	Output    OutputFormat
	Sort      SortMode
	NoErrors  bool
	RuleStats bool
	FileStats bool
	Quiet     bool
}

// RenderCheck prints the result of a check run in the requested
// format and returns the exit code: 0 when no file had a finding, 1
// otherwise.
func RenderCheck(w io.Writer, reports []FileReport, opts CheckRenderOpts, elapsed time.Duration) int {
	filesChecked := len(reports)
	filesWithErrors := 0
	var countInfo, countWarnings, countErrors int
	var diags []diag.Diagnostic
	var words [][]string
	tallies := make([]FileTally, 0, len(reports))
	for _, report := range reports {
		tally := FileTally{Path: report.Path}
		if len(report.Diags) > 0 {
			filesWithErrors++
			for _, d := range report.Diags {
				switch d.Severity {
				case diag.SevInfo:
					countInfo++
					tally.Info++
				case diag.SevWarning:
					countWarnings++
					tally.Warnings++
				case diag.SevError:
					countErrors++
					tally.Errors++
				}
			}
		}
		diags = append(diags, report.Diags...)
		words = append(words, report.Misspelled)
		tallies = append(tallies, tally)
	}

	if !opts.Quiet {
		switch opts.Output {
		case OutputHuman:
			if !opts.NoErrors {
				SortDiagnostics(diags, opts.Sort)
				WriteDiagnostics(w, diags)
			}
			if opts.RuleStats {
				WriteRuleStats(w, diags)
			}
			if opts.FileStats {
				WriteFileStats(w, tallies)
			}
		case OutputJSON:
			if !opts.NoErrors {
				WriteJSON(w, diags)
			}
		case OutputMsgpack:
			if !opts.NoErrors {
				WriteMsgpack(w, diags)
			}
		case OutputMisspelled:
			if !opts.NoErrors {
				WriteMisspelled(w, words)
			}
		}
	}

	if filesWithErrors == 0 {
		if !opts.Quiet && opts.Output == OutputHuman {
			if filesChecked > 0 {
				fmt.Fprintf(w, "%d files checked: all OK! [%s]\n", filesChecked, elapsed)
			} else {
				fmt.Fprintf(w, "No files checked [%s]\n", elapsed)
			}
		}
		return 0
	}
	if !opts.Quiet && opts.Output == OutputHuman {
		fmt.Fprintf(w, "%d files checked: %d problems in %d files (%d errors, %d warnings, %d info) [%s]\n",
			filesChecked,
			countErrors+countWarnings+countInfo,
			filesWithErrors,
			countErrors, countWarnings, countInfo,
			elapsed)
	}
	return 1
}

// Settings describes the effective configuration of a check run.
type Settings struct {
	Rules         *checker.RuleSet
	CheckFuzzy    bool
	CheckNoqa     bool
	CheckObsolete bool
	Output        OutputFormat
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// WriteSettings prints the effective configuration block shown with
// --show-settings.
func WriteSettings(w io.Writer, s Settings) {
	fmt.Fprintln(w, "Configuration:")
	names := "<none>"
	if len(s.Rules.Enabled) > 0 {
		names = strings.Join(s.Rules.Names(), ", ")
	}
	fmt.Fprintf(w, "  Rules enabled: %s\n", names)
	fmt.Fprintf(w, "  Check fuzzy entries: %s\n", yesNo(s.Rules.HasFuzzy || s.CheckFuzzy))
	fmt.Fprintf(w, "  Check noqa entries: %s\n", yesNo(s.CheckNoqa))
	fmt.Fprintf(w, "  Check obsolete entries: %s\n", yesNo(s.Rules.HasObsolete || s.CheckObsolete))
	fmt.Fprintf(w, "  Output format: %s\n", s.Output)
}
