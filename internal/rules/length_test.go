package rules

import (
	"testing"
)

func TestLong(t *testing.T) {
	rule := ruleByName(t, "long")
	diags := checkContent(t, `
msgid "ok"
msgstr "ok, ceci est une traduction беспричинно trop longue pour le test"
`, rule)
	expectMessages(t, diags, "translation too long (2 / 64)")

	// One source character against several translated ones.
	diags = checkContent(t, `
msgid " :"
msgstr " ... :"
`, rule)
	expectMessages(t, diags, "translation too long (1 / 5)")

	diags = checkContent(t, `
msgid "this is a test"
msgstr "ceci est un test"
`, rule)
	expectMessages(t, diags)
}

func TestShort(t *testing.T) {
	rule := ruleByName(t, "short")
	diags := checkContent(t, `
msgid "ok, this is a very long test message, far longer than that"
msgstr "ok"
`, rule)
	expectMessages(t, diags, "translation too short (58 / 2)")

	diags = checkContent(t, `
msgid " ... :"
msgstr " :"
`, rule)
	expectMessages(t, diags, "translation too short (5 / 1)")

	diags = checkContent(t, `
msgid "this is a test"
msgstr "ceci est un test"
`, rule)
	expectMessages(t, diags)
}
