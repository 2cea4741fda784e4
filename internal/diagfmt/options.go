package diagfmt

import "fmt"

// OutputFormat selects how check results are rendered.
type OutputFormat uint8

const (
	// OutputHuman is the colored, human readable report.
	OutputHuman OutputFormat = iota
	// OutputJSON is one JSON document with all diagnostics.
	OutputJSON
	// OutputMsgpack is the msgpack encoding of the JSON payload.
	OutputMsgpack
	OutputMisspelled
)

func (f OutputFormat) String() string {
	switch f {
	case OutputHuman:
		return "human"
	case OutputJSON:
		return "json"
	case OutputMsgpack:
		return "msgpack"
	case OutputMisspelled:
		return "misspelled"
	}
	return "unknown"
}

// ParseOutputFormat разбирает значение флага --output команды check.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "human":
		return OutputHuman, nil
	case "json":
		return OutputJSON, nil
	case "msgpack":
		return OutputMsgpack, nil
	case "misspelled":
		return OutputMisspelled, nil
	}
	return 0, fmt.Errorf("unknown output format: %s", s)
}

// SortMode selects the order of diagnostics in human output.
type SortMode uint8

const (
	// SortLine orders by path, then by report line numbers.
	SortLine SortMode = iota
	// SortMessage orders by first report line text, then path.
	SortMessage
	// SortRule orders by rule name, then path.
	SortRule
)

func (m SortMode) String() string {
	switch m {
	case SortLine:
		return "line"
	case SortMessage:
		return "message"
	case SortRule:
		return "rule"
	}
	return "unknown"
}

func ParseSortMode(s string) (SortMode, error) {
	switch s {
	case "line":
		return SortLine, nil
	case "message":
		return SortMessage, nil
	case "rule":
		return SortRule, nil
	}
	return 0, fmt.Errorf("unknown sort mode: %s", s)
}

// StatsFormat selects how statistics are rendered.
type StatsFormat uint8

const (
	StatsHuman StatsFormat = iota
	StatsJSON
)

func (f StatsFormat) String() string {
	switch f {
	case StatsHuman:
		return "human"
	case StatsJSON:
		return "json"
	}
	return "unknown"
}

func ParseStatsFormat(s string) (StatsFormat, error) {
	switch s {
	case "human":
		return StatsHuman, nil
	case "json":
		return StatsJSON, nil
	}
	return 0, fmt.Errorf("unknown output format: %s", s)
}

// StatsSort selects the order of files in statistics output.
type StatsSort uint8

const (
	// StatsSortPath orders by file path.
	StatsSortPath StatsSort = iota
	// StatsSortStatus orders by translation progress, best first.
	StatsSortStatus
)

func (m StatsSort) String() string {
	switch m {
	case StatsSortPath:
		return "path"
	case StatsSortStatus:
		return "status"
	}
	return "unknown"
}

func ParseStatsSort(s string) (StatsSort, error) {
	switch s {
	case "path":
		return StatsSortPath, nil
	case "status":
		return StatsSortStatus, nil
	}
	return 0, fmt.Errorf("unknown sort mode: %s", s)
}
