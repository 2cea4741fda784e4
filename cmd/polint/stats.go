package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"polint/internal/diagfmt"
	"polint/internal/driver"
	"polint/internal/project"
	"polint/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats [flags] [file|directory...]",
	Short: "Compute translation statistics for PO files",
	Long: `Compute per-file translation statistics: entry counts by status
with an optional word and character breakdown.`,
	Args: cobra.ArbitraryArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringP("output", "o", "human", "output format (human|json)")
	statsCmd.Flags().StringP("sort", "s", "path", "sort order (path|status)")
	statsCmd.Flags().BoolP("words", "w", false, "count words and characters too")
	statsCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
}

type statsFlags struct {
	output    string
	sortOrder string
	words     bool
	jobs      int
}

func readStatsFlags(cmd *cobra.Command) (statsFlags, error) {
	var flags statsFlags
	var err error
	if flags.output, err = cmd.Flags().GetString("output"); err != nil {
		return flags, fmt.Errorf("failed to get output flag: %w", err)
	}
	if flags.sortOrder, err = cmd.Flags().GetString("sort"); err != nil {
		return flags, fmt.Errorf("failed to get sort flag: %w", err)
	}
	if flags.words, err = cmd.Flags().GetBool("words"); err != nil {
		return flags, fmt.Errorf("failed to get words flag: %w", err)
	}
	if flags.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return flags, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	return flags, nil
}

func applyStatsConfig(cmd *cobra.Command, flags *statsFlags, cfg *project.Config) {
	if cfg == nil {
		return
	}
	changed := cmd.Flags().Changed
	if !changed("output") && cfg.Has("stats", "output") {
		flags.output = cfg.Stats.Output
	}
	if !changed("sort") && cfg.Has("stats", "sort") {
		flags.sortOrder = cfg.Stats.Sort
	}
	if !changed("words") && cfg.Has("stats", "words") {
		flags.words = cfg.Stats.Words
	}
	if !changed("jobs") && cfg.Has("stats", "jobs") {
		flags.jobs = cfg.Stats.Jobs
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	flags, err := readStatsFlags(cmd)
	if err != nil {
		return err
	}
	cfg, _, err := project.LoadNearest(".")
	if err != nil {
		return err
	}
	applyStatsConfig(cmd, &flags, cfg)

	output, err := diagfmt.ParseStatsFormat(flags.output)
	if err != nil {
		return err
	}
	sortMode, err := diagfmt.ParseStatsSort(flags.sortOrder)
	if err != nil {
		return err
	}
	if err := checkRoots(args); err != nil {
		return err
	}

	files, warnings := driver.FindFiles(args)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "%s: %s\n", warningColor.Sprint("Warning"), w)
	}

	results, err := driver.StatsFiles(cmd.Context(), files, driver.StatsOptions{
		WithWords: flags.words,
		Jobs:      flags.jobs,
	})
	if err != nil {
		return err
	}

	collected := make([]*stats.File, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "Error processing file %s: %v\n", res.Path, res.Err)
			continue
		}
		collected = append(collected, res.Stats)
	}
	switch sortMode {
	case diagfmt.StatsSortStatus:
		stats.SortByStatus(collected)
	default:
		stats.SortByPath(collected)
	}
	if len(collected) > 1 {
		collected = append(collected, stats.Total(collected))
	}
	diagfmt.RenderStats(cmd.OutOrStdout(), collected, diagfmt.StatsRenderOpts{
		Output: output,
		Words:  flags.words,
	})
	return nil
}
