package rules

import (
	"polint/internal/checker"
	"polint/internal/diag"
	"polint/internal/po"
)

type escapesRule struct{ meta }

func newEscapesRule() *escapesRule {
	return &escapesRule{meta{"escapes", diag.SevError, true, true}}
}

// CheckMsg reports missing or extra escape characters in the
// translation. Escaped escapes (`\\`) are compared first; single
// backslashes are only compared when the escaped counts match, so a
// doubled escape is not reported twice.
func (r *escapesRule) CheckMsg(c *checker.Checker, entry *po.Entry, msgid, msgstr string) {
	idEsc := substrSpans(msgid, `\\`)
	strEsc := substrSpans(msgstr, `\\`)
	if len(idEsc) != len(strEsc) {
		checkCounts(c, `escaped escape characters '\\'`, msgid, idEsc, msgstr, strEsc)
		return
	}
	idEsc = substrSpans(msgid, `\`)
	strEsc = substrSpans(msgstr, `\`)
	checkCounts(c, `escape characters '\'`, msgid, idEsc, msgstr, strEsc)
}
