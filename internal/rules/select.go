package rules

import (
	"fmt"
	"sort"
	"strings"

	"polint/internal/checker"
	"polint/internal/diag"
)

// Group names accepted in --select and --ignore in addition to rule
// names. Groups expand to several rules at once.
const (
	GroupAll      = "all"      // every rule
	GroupChecks   = "checks"   // rules that perform an actual check
	GroupSpelling = "spelling" // the spelling-* rules
	GroupDefault  = "default"  // rules enabled without selection
)

func isGroup(name string) bool {
	switch name {
	case GroupAll, GroupChecks, GroupSpelling, GroupDefault:
		return true
	}
	return false
}

func inGroup(rule checker.Rule, group string) bool {
	switch group {
	case GroupAll:
		return true
	case GroupChecks:
		return rule.IsCheck()
	case GroupSpelling:
		return strings.HasPrefix(rule.Name(), "spelling-")
	case GroupDefault:
		return rule.Default()
	}
	return false
}

// splitNames splits a comma separated list of rule names, trimming
// whitespace and dropping empty items.
func splitNames(list string) []string {
	var names []string
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// unknownNames returns the sorted distinct names that match neither a
// rule from candidates nor a group name.
func unknownNames(names []string, candidates map[string]checker.Rule) []string {
	seen := make(map[string]bool)
	var unknown []string
	for _, name := range names {
		if isGroup(name) || candidates[name] != nil || seen[name] {
			continue
		}
		seen[name] = true
		unknown = append(unknown, name)
	}
	sort.Strings(unknown)
	return unknown
}

// Select resolves the selected rules from the --select, --ignore and
// --severity command line parameters.
//
// Without --select, all default rules are enabled. With --select, the
// listed rules and groups are enabled instead, left to right. Rules
// listed in --ignore are then removed. When severities are given, only
// rules of those severities are considered at all.
func Select(selectList, ignoreList string, severities []diag.Severity) (*checker.RuleSet, error) {
	sevOK := func(rule checker.Rule) bool {
		if len(severities) == 0 {
			return true
		}
		for _, sev := range severities {
			if rule.Severity() == sev {
				return true
			}
		}
		return false
	}

	var candidates []checker.Rule
	byName := make(map[string]checker.Rule)
	for _, rule := range All() {
		if !sevOK(rule) {
			continue
		}
		candidates = append(candidates, rule)
		byName[rule.Name()] = rule
	}

	enabled := make(map[string]bool)
	if selectList != "" {
		names := splitNames(selectList)
		if unknown := unknownNames(names, byName); len(unknown) > 0 {
			return nil, fmt.Errorf("unknown selected rules: %s", strings.Join(unknown, ", "))
		}
		for _, name := range names {
			if isGroup(name) {
				for _, rule := range candidates {
					if inGroup(rule, name) {
						enabled[rule.Name()] = true
					}
				}
				continue
			}
			enabled[name] = true
		}
	} else {
		for _, rule := range candidates {
			if rule.Default() {
				enabled[rule.Name()] = true
			}
		}
	}

	if ignoreList != "" {
		names := splitNames(ignoreList)
		if unknown := unknownNames(names, byName); len(unknown) > 0 {
			return nil, fmt.Errorf("unknown rules to ignore: %s", strings.Join(unknown, ", "))
		}
		for _, name := range names {
			if isGroup(name) {
				for _, rule := range candidates {
					if inGroup(rule, name) {
						delete(enabled, rule.Name())
					}
				}
				continue
			}
			delete(enabled, name)
		}
	}

	var selected []checker.Rule
	for _, rule := range candidates {
		if enabled[rule.Name()] {
			selected = append(selected, rule)
		}
	}
	return checker.NewRuleSet(selected), nil
}
