// Package rules implements the checks applied to PO catalog entries.
//
// Every rule satisfies checker.Rule plus one or more of the hook
// interfaces (EntryChecker, CtxtChecker, MsgChecker). The registry in
// All lists the rules alphabetically; Select resolves the --select,
// --ignore and --severity command line parameters into the final set.
package rules
