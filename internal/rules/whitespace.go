package rules

import (
	"fmt"
	"strings"
	"unicode"

	"polint/internal/checker"
	"polint/internal/diag"
	"polint/internal/po"
)

type whitespaceStartRule struct{ meta }

func newWhitespaceStartRule() *whitespaceStartRule {
	return &whitespaceStartRule{meta{"whitespace-start", diag.SevInfo, true, true}}
}

// CheckMsg reports inconsistent leading whitespace between source and
// translation.
func (r *whitespaceStartRule) CheckMsg(c *checker.Checker, entry *po.Entry, msgid, msgstr string) {
	if strings.TrimSpace(msgid) == "" || strings.TrimSpace(msgstr) == "" {
		return
	}
	idWs := whitespaceStart(msgid)
	strWs := whitespaceStart(msgstr)
	if idWs != strWs {
		c.ReportMsg(
			fmt.Sprintf("inconsistent leading whitespace ('%s' / '%s')", idWs, strWs),
			msgid, []diag.Span{{Start: 0, End: uint32(len(idWs))}},
			msgstr, []diag.Span{{Start: 0, End: uint32(len(strWs))}},
		)
	}
}

type whitespaceEndRule struct{ meta }

func newWhitespaceEndRule() *whitespaceEndRule {
	return &whitespaceEndRule{meta{"whitespace-end", diag.SevInfo, true, true}}
}

// CheckMsg reports inconsistent trailing whitespace between source and
// translation.
func (r *whitespaceEndRule) CheckMsg(c *checker.Checker, entry *po.Entry, msgid, msgstr string) {
	if strings.TrimSpace(msgid) == "" || strings.TrimSpace(msgstr) == "" {
		return
	}
	idWs := whitespaceEnd(msgid)
	strWs := whitespaceEnd(msgstr)
	if idWs != strWs {
		c.ReportMsg(
			fmt.Sprintf("inconsistent trailing whitespace ('%s' / '%s')", idWs, strWs),
			msgid, []diag.Span{{Start: uint32(len(msgid) - len(idWs)), End: uint32(len(msgid))}},
			msgstr, []diag.Span{{Start: uint32(len(msgstr) - len(strWs)), End: uint32(len(msgstr))}},
		)
	}
}

// whitespaceStart returns the leading whitespace of a string, line
// feeds excluded.
func whitespaceStart(s string) string {
	pos := 0
	for _, r := range s {
		if !unicode.IsSpace(r) || r == '\n' {
			break
		}
		pos += len(string(r))
	}
	return s[:pos]
}

// whitespaceEnd returns the trailing whitespace of a string, line feeds
// excluded.
func whitespaceEnd(s string) string {
	pos := 0
	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		if !unicode.IsSpace(runes[i]) || runes[i] == '\n' {
			break
		}
		pos += len(string(runes[i]))
	}
	return s[len(s)-pos:]
}
