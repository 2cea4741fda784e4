package diag

// Line is one rendered line of a diagnostic report.
// Number is the 1-based line in the catalog file; 0 marks a separator
// line without a number. Highlights are byte ranges within Message.
type Line struct {
	Number     uint32
	Message    string
	Highlights []Span
}

// Diagnostic is a single finding for a catalog file.
type Diagnostic struct {
	Path     string
	Rule     string
	Severity Severity
	Message  string
	Lines    []Line
}

// FirstLine returns the line number of the first report line, or 0
// when the diagnostic has no lines attached.
func (d Diagnostic) FirstLine() uint32 {
	if len(d.Lines) == 0 {
		return 0
	}
	return d.Lines[0].Number
}

// LineNumbers returns all attached line numbers, in report order.
func (d Diagnostic) LineNumbers() []uint32 {
	nums := make([]uint32, len(d.Lines))
	for i := range d.Lines {
		nums[i] = d.Lines[i].Number
	}
	return nums
}

func New(sev Severity, rule, path, msg string) Diagnostic {
	return Diagnostic{
		Path:     path,
		Rule:     rule,
		Severity: sev,
		Message:  msg,
	}
}

func NewError(rule, path, msg string) Diagnostic {
	return New(SevError, rule, path, msg)
}

func (d Diagnostic) WithLine(line Line) Diagnostic {
	d.Lines = append(d.Lines, line)
	return d
}
