package spell

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// affixRule is one SFX/PFX line of an .aff file.
type affixRule struct {
	strip     string
	affix     string
	condition condition
}

// affixClass groups the rules sharing one flag.
type affixClass struct {
	prefix bool
	rules  []affixRule
}

// condition matches the hunspell rule condition: a sequence of literal
// chars and [..] / [^..] classes, anchored at the affected end of the word.
type condition struct {
	raw   string
	parts []condPart
}

type condPart struct {
	chars  string
	negate bool
	any    bool
}

func parseCondition(raw string) condition {
	cond := condition{raw: raw}
	for i := 0; i < len(raw); {
		switch raw[i] {
		case '.':
			cond.parts = append(cond.parts, condPart{any: true})
			i++
		case '[':
			end := strings.IndexByte(raw[i:], ']')
			if end < 0 {
				cond.parts = append(cond.parts, condPart{chars: raw[i:]})
				return cond
			}
			class := raw[i+1 : i+end]
			negate := false
			if strings.HasPrefix(class, "^") {
				negate = true
				class = class[1:]
			}
			cond.parts = append(cond.parts, condPart{chars: class, negate: negate})
			i += end + 1
		default:
			cond.parts = append(cond.parts, condPart{chars: raw[i : i+1]})
			i++
		}
	}
	return cond
}

// matchEnd reports whether the condition matches the end of the word.
func (c condition) matchEnd(word string) bool {
	runes := []rune(word)
	if len(c.parts) > len(runes) {
		return false
	}
	tail := runes[len(runes)-len(c.parts):]
	return c.matchRunes(tail)
}

// matchStart reports whether the condition matches the start of the word.
func (c condition) matchStart(word string) bool {
	runes := []rune(word)
	if len(c.parts) > len(runes) {
		return false
	}
	return c.matchRunes(runes[:len(c.parts)])
}

func (c condition) matchRunes(runes []rune) bool {
	for i, part := range c.parts {
		if part.any {
			continue
		}
		found := strings.ContainsRune(part.chars, runes[i])
		if part.negate {
			found = !found
		}
		if !found {
			return false
		}
	}
	return true
}

// parseAffixFile reads SFX and PFX classes from an .aff file. Other
// directives (TRY, REP, compounding) are not used for word lookup.
func parseAffixFile(r io.Reader) map[string]*affixClass {
	classes := make(map[string]*affixClass)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 {
			continue
		}
		prefix := false
		switch fields[0] {
		case "SFX":
		case "PFX":
			prefix = true
		default:
			continue
		}
		flag := fields[1]
		// Header line: SFX flag cross_product count.
		if _, err := strconv.Atoi(fields[3]); err == nil && (fields[2] == "Y" || fields[2] == "N") {
			classes[flag] = &affixClass{prefix: prefix}
			continue
		}
		class, ok := classes[flag]
		if !ok {
			class = &affixClass{prefix: prefix}
			classes[flag] = class
		}
		strip := fields[2]
		if strip == "0" {
			strip = ""
		}
		affix := fields[3]
		if affix == "0" {
			affix = ""
		}
		// The affix may carry continuation flags after a slash.
		if pos := strings.IndexByte(affix, '/'); pos >= 0 {
			affix = affix[:pos]
		}
		cond := "."
		if len(fields) >= 5 {
			cond = fields[4]
		}
		class.rules = append(class.rules, affixRule{
			strip:     strip,
			affix:     affix,
			condition: parseCondition(cond),
		})
	}
	return classes
}

// expand applies the affix classes for the given flags to a stem and
// returns all derived forms (the stem itself is not included).
func expand(stem string, flags string, classes map[string]*affixClass) []string {
	var out []string
	for _, flag := range flags {
		class, ok := classes[string(flag)]
		if !ok {
			continue
		}
		for _, rule := range class.rules {
			if class.prefix {
				if !rule.condition.matchStart(stem) {
					continue
				}
				base := stem
				if rule.strip != "" {
					if !strings.HasPrefix(base, rule.strip) {
						continue
					}
					base = base[len(rule.strip):]
				}
				out = append(out, rule.affix+base)
			} else {
				if !rule.condition.matchEnd(stem) {
					continue
				}
				base := stem
				if rule.strip != "" {
					if !strings.HasSuffix(base, rule.strip) {
						continue
					}
					base = base[:len(base)-len(rule.strip)]
				}
				out = append(out, base+rule.affix)
			}
		}
	}
	return out
}
