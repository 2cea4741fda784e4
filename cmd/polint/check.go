package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"polint/internal/diag"
	"polint/internal/diagfmt"
	"polint/internal/driver"
	"polint/internal/project"
	"polint/internal/rules"
	"polint/internal/spell"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file|directory...]",
	Short: "Check PO files against the enabled rules",
	Long: `Check gettext PO files against the enabled rules.

Directories are searched recursively for *.po files. With no paths the
current directory is searched.`,
	Args: cobra.ArbitraryArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("show-settings", false, "display the effective configuration before checking")
	checkCmd.Flags().Bool("fuzzy", false, "check fuzzy entries")
	checkCmd.Flags().Bool("noqa", false, "check entries with a noqa comment")
	checkCmd.Flags().Bool("obsolete", false, "check obsolete entries")
	checkCmd.Flags().StringP("select", "s", "", "comma-separated rules or groups to enable (all|checks|default|spelling|rule names)")
	checkCmd.Flags().StringP("ignore", "i", "", "comma-separated rules or groups to disable")
	checkCmd.Flags().String("path-dicts", "/usr/share/hunspell", "directory with hunspell dictionaries")
	checkCmd.Flags().String("path-words", "", "extra word list accepted by the spelling rules")
	checkCmd.Flags().String("lang-id", "en_US", "dictionary language for contexts and source messages")
	checkCmd.Flags().StringArrayP("severity", "e", nil, "keep only rules with this severity (repeatable: info|warning|error)")
	checkCmd.Flags().BoolP("no-errors", "n", false, "do not display the diagnostics")
	checkCmd.Flags().String("sort", "line", "diagnostics sort order (line|message|rule)")
	checkCmd.Flags().BoolP("rule-stats", "r", false, "display per-rule problem counts")
	checkCmd.Flags().BoolP("file-stats", "f", false, "display per-file problem counts")
	checkCmd.Flags().StringP("output", "o", "human", "output format (human|json|msgpack|misspelled)")
	checkCmd.Flags().BoolP("quiet", "q", false, "suppress all output, only set the exit code")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().String("ui", "off", "interactive progress display (auto|on|off)")
}

type checkFlags struct {
	showSettings bool
	fuzzy        bool
	noqa         bool
	obsolete     bool
	selectList   string
	ignoreList   string
	pathDicts    string
	pathWords    string
	langID       string
	severity     []string
	noErrors     bool
	sortOrder    string
	ruleStats    bool
	fileStats    bool
	output       string
	quiet        bool
	jobs         int
	ui           string
}

func readCheckFlags(cmd *cobra.Command) (checkFlags, error) {
	var flags checkFlags
	var err error
	if flags.showSettings, err = cmd.Flags().GetBool("show-settings"); err != nil {
		return flags, fmt.Errorf("failed to get show-settings flag: %w", err)
	}
	if flags.fuzzy, err = cmd.Flags().GetBool("fuzzy"); err != nil {
		return flags, fmt.Errorf("failed to get fuzzy flag: %w", err)
	}
	if flags.noqa, err = cmd.Flags().GetBool("noqa"); err != nil {
		return flags, fmt.Errorf("failed to get noqa flag: %w", err)
	}
	if flags.obsolete, err = cmd.Flags().GetBool("obsolete"); err != nil {
		return flags, fmt.Errorf("failed to get obsolete flag: %w", err)
	}
	if flags.selectList, err = cmd.Flags().GetString("select"); err != nil {
		return flags, fmt.Errorf("failed to get select flag: %w", err)
	}
	if flags.ignoreList, err = cmd.Flags().GetString("ignore"); err != nil {
		return flags, fmt.Errorf("failed to get ignore flag: %w", err)
	}
	if flags.pathDicts, err = cmd.Flags().GetString("path-dicts"); err != nil {
		return flags, fmt.Errorf("failed to get path-dicts flag: %w", err)
	}
	if flags.pathWords, err = cmd.Flags().GetString("path-words"); err != nil {
		return flags, fmt.Errorf("failed to get path-words flag: %w", err)
	}
	if flags.langID, err = cmd.Flags().GetString("lang-id"); err != nil {
		return flags, fmt.Errorf("failed to get lang-id flag: %w", err)
	}
	if flags.severity, err = cmd.Flags().GetStringArray("severity"); err != nil {
		return flags, fmt.Errorf("failed to get severity flag: %w", err)
	}
	if flags.noErrors, err = cmd.Flags().GetBool("no-errors"); err != nil {
		return flags, fmt.Errorf("failed to get no-errors flag: %w", err)
	}
	if flags.sortOrder, err = cmd.Flags().GetString("sort"); err != nil {
		return flags, fmt.Errorf("failed to get sort flag: %w", err)
	}
	if flags.ruleStats, err = cmd.Flags().GetBool("rule-stats"); err != nil {
		return flags, fmt.Errorf("failed to get rule-stats flag: %w", err)
	}
	if flags.fileStats, err = cmd.Flags().GetBool("file-stats"); err != nil {
		return flags, fmt.Errorf("failed to get file-stats flag: %w", err)
	}
	if flags.output, err = cmd.Flags().GetString("output"); err != nil {
		return flags, fmt.Errorf("failed to get output flag: %w", err)
	}
	if flags.quiet, err = cmd.Flags().GetBool("quiet"); err != nil {
		return flags, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if flags.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return flags, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if flags.ui, err = cmd.Flags().GetString("ui"); err != nil {
		return flags, fmt.Errorf("failed to get ui flag: %w", err)
	}
	return flags, nil
}

// applyCheckConfig fills flags that were not given on the command line
// from the [check] section of polint.toml.
func applyCheckConfig(cmd *cobra.Command, flags *checkFlags, cfg *project.Config) {
	if cfg == nil {
		return
	}
	changed := cmd.Flags().Changed
	if !changed("select") && cfg.Has("check", "select") {
		flags.selectList = cfg.Check.Select
	}
	if !changed("ignore") && cfg.Has("check", "ignore") {
		flags.ignoreList = cfg.Check.Ignore
	}
	if !changed("fuzzy") && cfg.Has("check", "fuzzy") {
		flags.fuzzy = cfg.Check.Fuzzy
	}
	if !changed("noqa") && cfg.Has("check", "noqa") {
		flags.noqa = cfg.Check.Noqa
	}
	if !changed("obsolete") && cfg.Has("check", "obsolete") {
		flags.obsolete = cfg.Check.Obsolete
	}
	if !changed("path-dicts") && cfg.Has("check", "path_dicts") {
		flags.pathDicts = cfg.Check.PathDicts
	}
	if !changed("path-words") && cfg.Has("check", "path_words") {
		flags.pathWords = cfg.Check.PathWords
	}
	if !changed("lang-id") && cfg.Has("check", "lang_id") {
		flags.langID = cfg.Check.LangID
	}
	if !changed("severity") && cfg.Has("check", "severity") {
		flags.severity = cfg.Check.Severity
	}
	if !changed("sort") && cfg.Has("check", "sort") {
		flags.sortOrder = cfg.Check.Sort
	}
	if !changed("output") && cfg.Has("check", "output") {
		flags.output = cfg.Check.Output
	}
	if !changed("jobs") && cfg.Has("check", "jobs") {
		flags.jobs = cfg.Check.Jobs
	}
}

// checkRoots verifies that explicitly named paths exist before the
// walk starts: a missing argument is an invocation error, not a file
// diagnostic.
func checkRoots(args []string) error {
	for _, root := range args {
		if _, err := os.Stat(root); err != nil {
			return fmt.Errorf("cannot access %q: %w", root, err)
		}
	}
	return nil
}

var warningColor = color.New(color.FgYellow)

func runCheck(cmd *cobra.Command, args []string) error {
	start := time.Now()

	flags, err := readCheckFlags(cmd)
	if err != nil {
		return err
	}
	cfg, _, err := project.LoadNearest(".")
	if err != nil {
		return err
	}
	applyCheckConfig(cmd, &flags, cfg)

	severities := make([]diag.Severity, 0, len(flags.severity))
	for _, s := range flags.severity {
		sev, err := diag.ParseSeverity(s)
		if err != nil {
			return err
		}
		severities = append(severities, sev)
	}
	set, err := rules.Select(flags.selectList, flags.ignoreList, severities)
	if err != nil {
		return err
	}
	output, err := diagfmt.ParseOutputFormat(flags.output)
	if err != nil {
		return err
	}
	sortMode, err := diagfmt.ParseSortMode(flags.sortOrder)
	if err != nil {
		return err
	}
	mode, err := readUIMode(flags.ui)
	if err != nil {
		return err
	}
	if err := checkRoots(args); err != nil {
		return err
	}

	if flags.showSettings && !flags.quiet {
		diagfmt.WriteSettings(cmd.OutOrStdout(), diagfmt.Settings{
			Rules:         set,
			CheckFuzzy:    flags.fuzzy,
			CheckNoqa:     flags.noqa,
			CheckObsolete: flags.obsolete,
			Output:        output,
		})
	}

	files, warnings := driver.FindFiles(args)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "%s: %s\n", warningColor.Sprint("Warning"), w)
	}

	var dictID *spell.Dict
	if set.NeedsDictID() {
		dictID, err = spell.Load(flags.pathDicts, flags.pathWords, flags.langID)
		if err != nil {
			// Без словаря проверяются остальные правила.
			fmt.Fprintf(os.Stderr, "%s: %v\n", warningColor.Sprint("Warning"), err)
			dictID = nil
		}
	}

	opts := driver.CheckOptions{
		Rules:         set,
		CheckFuzzy:    flags.fuzzy,
		CheckNoqa:     flags.noqa,
		CheckObsolete: flags.obsolete,
		DictID:        dictID,
		Dicts:         spell.NewCache(flags.pathDicts, flags.pathWords),
		Jobs:          flags.jobs,
	}

	var results []driver.CheckResult
	useTUI := shouldUseTUI(mode) && output == diagfmt.OutputHuman && !flags.quiet
	if useTUI && len(files) > 0 {
		results, err = runCheckWithUI(cmd.Context(), "checking PO files", files, opts)
	} else {
		results, err = driver.CheckFiles(cmd.Context(), files, opts)
	}
	if err != nil {
		return err
	}

	reports := make([]diagfmt.FileReport, 0, len(results))
	for _, res := range results {
		reports = append(reports, diagfmt.FileReport{
			Path:       res.Path,
			Diags:      res.Bag.Items(),
			Misspelled: res.Misspelled,
		})
	}
	code := diagfmt.RenderCheck(cmd.OutOrStdout(), reports, diagfmt.CheckRenderOpts{
		Output:    output,
		Sort:      sortMode,
		NoErrors:  flags.noErrors,
		RuleStats: flags.ruleStats,
		FileStats: flags.fileStats,
		Quiet:     flags.quiet,
	}, time.Since(start))
	if code != 0 {
		os.Exit(code)
	}
	return nil
}
