package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"

	"polint/internal/stats"
)

var (
	colorDim         = color.New(color.Faint)
	colorBarDone     = color.New(color.FgGreen)
	colorBarPart     = color.New(color.FgGreen, color.Faint)
	colorBarFuzzy    = color.New(color.FgYellow, color.Faint)
	colorBarMissing  = color.New(color.FgRed)
	colorBarObsolete = color.New(color.FgMagenta)
	colorTranslated  = color.New(color.FgHiGreen)
	colorTranslPct   = color.New(color.FgGreen)
	colorFuzzy       = color.New(color.FgHiYellow)
	colorFuzzyPct    = color.New(color.FgYellow)
	colorUntransl    = color.New(color.FgHiRed)
	colorUntranslPct = color.New(color.FgRed)
	colorObsolete    = color.New(color.FgHiMagenta)
	colorObsoletePct = color.New(color.FgMagenta)
	colorTotal       = color.New(color.FgHiWhite)
)

// entriesBar renders the 20 character translation progress bar: full
// blocks for translated entries, shaded blocks for fuzzy, red space
// for untranslated and magenta space for the rest. The translated
// part is dimmed until the file is fully translated.
func entriesBar(e stats.Entries) string {
	charsTranslated := int(e.PctTranslated() / 5)
	charsFuzzy := int(e.PctFuzzy() / 5)
	charsUntranslated := int(e.PctUntranslated() / 5)
	charsObsolete := 20 - charsTranslated - charsFuzzy - charsUntranslated

	var bar strings.Builder
	if e.Translated == e.Total {
		bar.WriteString(colorBarDone.Sprint(strings.Repeat("█", charsTranslated)))
	} else {
		bar.WriteString(colorBarPart.Sprint(strings.Repeat("█", charsTranslated)))
	}
	bar.WriteString(colorBarFuzzy.Sprint(strings.Repeat("▒", charsFuzzy)))
	bar.WriteString(colorBarMissing.Sprint(strings.Repeat(" ", charsUntranslated)))
	bar.WriteString(colorBarObsolete.Sprint(strings.Repeat(" ", charsObsolete)))
	return bar.String()
}

// FormatEntries renders the one line entry summary with the progress
// bar and per-status counts.
func FormatEntries(e stats.Entries) string {
	return fmt.Sprintf("%s%s%s %d = %s %s + %s %s + %s %s + %s %s",
		colorDim.Sprint("["),
		entriesBar(e),
		colorDim.Sprint("]"),
		e.Total,
		colorTranslated.Sprintf("%d", e.Translated),
		colorTranslPct.Sprintf("(%d%%)", e.PctTranslated()),
		colorFuzzy.Sprintf("%d", e.Fuzzy),
		colorFuzzyPct.Sprintf("(%d%%)", e.PctFuzzy()),
		colorUntransl.Sprintf("%d", e.Untranslated),
		colorUntranslPct.Sprintf("(%d%%)", e.PctUntranslated()),
		colorObsolete.Sprintf("%d", e.Obsolete),
		colorObsoletePct.Sprintf("(%d%%)", e.PctObsolete()),
	)
}

func countCell(c *color.Color, pc *color.Color, count, pct uint64) string {
	return fmt.Sprintf("%s %s", c.Sprintf("%d", count), pc.Sprintf("(%d%%)", pct))
}

// writeWordsTable prints the entry, word and character counters of
// one file as a table, one row per entry status.
func writeWordsTable(w io.Writer, f *stats.File) {
	words, chars := f.Words, f.Chars
	if words == nil || chars == nil {
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{
		"", "Entries",
		"Words (src)", "Words (translated)",
		"Chars (src)", "Chars (translated)",
	})
	e := f.Entries
	t.AppendRow(table.Row{
		colorTranslated.Sprint("Translated"),
		countCell(colorTranslated, colorTranslPct, e.Translated, e.PctTranslated()),
		countCell(colorTranslated, colorTranslPct, words.IDTranslated, words.PctIDTranslated()),
		colorTranslated.Sprintf("%d", words.StrTranslated),
		countCell(colorTranslated, colorTranslPct, chars.IDTranslated, chars.PctIDTranslated()),
		colorTranslated.Sprintf("%d", chars.StrTranslated),
	})
	t.AppendRow(table.Row{
		colorFuzzyPct.Sprint("Fuzzy"),
		countCell(colorFuzzy, colorFuzzyPct, e.Fuzzy, e.PctFuzzy()),
		countCell(colorFuzzy, colorFuzzyPct, words.IDFuzzy, words.PctIDFuzzy()),
		colorFuzzy.Sprintf("%d", words.StrFuzzy),
		countCell(colorFuzzy, colorFuzzyPct, chars.IDFuzzy, chars.PctIDFuzzy()),
		colorFuzzy.Sprintf("%d", chars.StrFuzzy),
	})
	t.AppendRow(table.Row{
		colorUntransl.Sprint("Untranslated"),
		countCell(colorUntransl, colorUntranslPct, e.Untranslated, e.PctUntranslated()),
		countCell(colorUntransl, colorUntranslPct, words.IDUntranslated, words.PctIDUntranslated()),
		colorUntranslPct.Sprintf("%d", words.StrUntranslated),
		countCell(colorUntransl, colorUntranslPct, chars.IDUntranslated, chars.PctIDUntranslated()),
		colorUntranslPct.Sprintf("%d", chars.StrUntranslated),
	})
	t.AppendRow(table.Row{
		colorObsolete.Sprint("Obsolete"),
		countCell(colorObsolete, colorObsoletePct, e.Obsolete, e.PctObsolete()),
		countCell(colorObsolete, colorObsoletePct, words.IDObsolete, words.PctIDObsolete()),
		colorObsolete.Sprintf("%d", words.StrObsolete),
		countCell(colorObsolete, colorObsoletePct, chars.IDObsolete, chars.PctIDObsolete()),
		colorObsolete.Sprintf("%d", chars.StrObsolete),
	})
	t.AppendFooter(table.Row{
		colorTotal.Sprint("Total"),
		fmt.Sprintf("%d", e.Total),
		fmt.Sprintf("%d", words.IDTotal),
		fmt.Sprintf("%d", words.StrTranslated),
		fmt.Sprintf("%d", chars.IDTotal),
		fmt.Sprintf("%d", chars.StrTranslated),
	})
	t.Render()
}

// StatsRenderOpts configures rendering of a stats run.
type StatsRenderOpts struct {
	Output StatsFormat
	Words  bool
}

// RenderStats prints file statistics in the requested format.
func RenderStats(w io.Writer, files []*stats.File, opts StatsRenderOpts) {
	if opts.Output == StatsJSON {
		data, err := json.Marshal(files)
		if err != nil {
			return
		}
		fmt.Fprintln(w, string(data))
		return
	}
	if opts.Words {
		for idx, f := range files {
			if idx > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s:\n", f.Path)
			writeWordsTable(w, f)
		}
		return
	}
	// Пути выравниваются по самому длинному, ширина в колонках
	// терминала, не в байтах.
	maxWidth := 0
	for _, f := range files {
		if width := runewidth.StringWidth(f.Path); width > maxWidth {
			maxWidth = width
		}
	}
	for _, f := range files {
		pad := strings.Repeat(" ", maxWidth-runewidth.StringWidth(f.Path))
		fmt.Fprintf(w, "%s%s %s\n", f.Path, pad, FormatEntries(f.Entries))
	}
}
