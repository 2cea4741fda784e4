package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/vmihailenco/msgpack/v5"

	"polint/internal/diag"
)

// LineJSON представляет одну строку отчёта в машиночитаемом выводе.
type LineJSON struct {
	LineNumber uint32   `json:"line_number" msgpack:"line_number"`
	Message    string   `json:"message" msgpack:"message"`
	Highlights [][2]int `json:"highlights" msgpack:"highlights"`
}

// DiagnosticJSON представляет диагностику в машиночитаемом выводе.
type DiagnosticJSON struct {
	Path     string     `json:"path" msgpack:"path"`
	Rule     string     `json:"rule" msgpack:"rule"`
	Severity string     `json:"severity" msgpack:"severity"`
	Message  string     `json:"message" msgpack:"message"`
	Lines    []LineJSON `json:"lines" msgpack:"lines"`
}

func severityJSON(sev diag.Severity) string {
	switch sev {
	case diag.SevInfo:
		return "Info"
	case diag.SevWarning:
		return "Warning"
	case diag.SevError:
		return "Error"
	}
	return "Unknown"
}

// makeLine converts one report line, translating highlight byte
// offsets into character offsets: consumers index by characters, not
// by UTF-8 bytes.
func makeLine(line diag.Line) LineJSON {
	highlights := make([][2]int, 0, len(line.Highlights))
	for _, span := range line.Highlights {
		highlights = append(highlights, [2]int{
			utf8.RuneCountInString(line.Message[:span.Start]),
			utf8.RuneCountInString(line.Message[:span.End]),
		})
	}
	return LineJSON{
		LineNumber: line.Number,
		Message:    line.Message,
		Highlights: highlights,
	}
}

// BuildDiagnosticsOutput формирует структуру машиночитаемого вывода
// без сериализации.
func BuildDiagnosticsOutput(diags []diag.Diagnostic) []DiagnosticJSON {
	out := make([]DiagnosticJSON, 0, len(diags))
	for _, d := range diags {
		lines := make([]LineJSON, 0, len(d.Lines))
		for _, line := range d.Lines {
			lines = append(lines, makeLine(line))
		}
		out = append(out, DiagnosticJSON{
			Path:     d.Path,
			Rule:     d.Rule,
			Severity: severityJSON(d.Severity),
			Message:  d.Message,
			Lines:    lines,
		})
	}
	return out
}

// WriteJSON prints all diagnostics as one JSON array followed by a
// newline.
func WriteJSON(w io.Writer, diags []diag.Diagnostic) {
	data, err := json.Marshal(BuildDiagnosticsOutput(diags))
	if err != nil {
		return
	}
	fmt.Fprintln(w, string(data))
}

// WriteMsgpack writes all diagnostics as one msgpack array carrying
// the same payload as the JSON form.
func WriteMsgpack(w io.Writer, diags []diag.Diagnostic) {
	_ = msgpack.NewEncoder(w).Encode(BuildDiagnosticsOutput(diags))
}
