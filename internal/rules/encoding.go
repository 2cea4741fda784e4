package rules

import (
	"fmt"

	"polint/internal/checker"
	"polint/internal/diag"
	"polint/internal/po"
)

type encodingRule struct{ meta }

func newEncodingRule() *encodingRule {
	return &encodingRule{meta{"encoding", diag.SevInfo, true, true}}
}

// CheckEntry reports an entry with characters that are invalid for the
// encoding declared in the PO file header (UTF-8 when not declared).
func (r *encodingRule) CheckEntry(c *checker.Checker, entry *po.Entry) {
	if entry.EncodingError {
		c.ReportEntrySource(fmt.Sprintf("invalid characters for encoding %s", c.EncodingName()), entry)
	}
}
