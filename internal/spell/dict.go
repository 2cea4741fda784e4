// Package spell implements dictionary lookups for the spelling rules.
//
// Dictionaries use the hunspell file layout: a {lang}.dic word list with
// optional affix flags and a {lang}.aff file describing how flags expand
// into derived word forms. Lookups are exact-or-lowercase, so title-cased
// words at the start of a sentence still match.
package spell

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Dict is a loaded dictionary for a single language.
type Dict struct {
	words map[string]struct{}
}

// Check reports whether the word is known, either exactly or after
// lowercasing.
func (d *Dict) Check(word string) bool {
	if d == nil {
		return true
	}
	if _, ok := d.words[word]; ok {
		return true
	}
	lower := strings.ToLower(word)
	if lower == word {
		return false
	}
	_, ok := d.words[lower]
	return ok
}

// Size returns the number of known word forms.
func (d *Dict) Size() int {
	return len(d.words)
}

func (d *Dict) add(word string) {
	if word == "" {
		return
	}
	d.words[word] = struct{}{}
}

// loadWordList reads a .dic file into the dictionary, expanding affix
// flags with the given classes (may be nil).
func (d *Dict) loadWordList(path string, classes map[string]*affixClass) error {
	// #nosec G304 -- path is derived from user-provided dictionary dirs
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if first {
			first = false
			// Первая строка .dic — количество слов, пропускаем.
			if _, err := strconv.Atoi(line); err == nil {
				continue
			}
		}
		word := line
		flags := ""
		if pos := strings.IndexByte(line, '/'); pos >= 0 {
			word = line[:pos]
			flags = line[pos+1:]
		}
		if pos := strings.IndexAny(word, " \t"); pos >= 0 {
			word = word[:pos]
		}
		d.add(word)
		if flags != "" && classes != nil {
			for _, form := range expand(word, flags, classes) {
				d.add(form)
			}
		}
	}
	return scanner.Err()
}

// dictFiles returns the .dic path for a language inside a directory, or
// "" when the file does not exist.
func dictFile(dir, language string) string {
	path := filepath.Join(dir, language+".dic")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// Load finds and loads the dictionary for a language.
//
// The {language}.dic file is searched in pathDicts, falling back to the
// language code before the underscore (fr_BE -> fr). When pathWords is
// set, an extra word list {language}.dic from that directory is merged
// in, with the same fallback.
func Load(pathDicts, pathWords, language string) (*Dict, error) {
	if language == "" {
		return nil, fmt.Errorf(
			"dictionary not found for language '%s' (path: %s), spelling rule ignored",
			language, pathDicts)
	}

	dicPath := dictFile(pathDicts, language)
	if dicPath == "" {
		if pos := strings.IndexByte(language, '_'); pos > 0 {
			dicPath = dictFile(pathDicts, language[:pos])
		}
	}
	if dicPath == "" {
		return nil, fmt.Errorf(
			"dictionary not found for language '%s' (path: %s), spelling rule ignored",
			language, pathDicts)
	}

	var classes map[string]*affixClass
	affPath := strings.TrimSuffix(dicPath, ".dic") + ".aff"
	// #nosec G304 -- path is derived from user-provided dictionary dirs
	if f, err := os.Open(affPath); err == nil {
		classes = parseAffixFile(f)
		f.Close()
	}

	dict := &Dict{words: make(map[string]struct{})}
	if err := dict.loadWordList(dicPath, classes); err != nil {
		return nil, fmt.Errorf(
			"dictionary not found for language '%s' (path: %s), spelling rule ignored",
			language, pathDicts)
	}

	if pathWords != "" {
		extraPath := dictFile(pathWords, language)
		if extraPath == "" {
			if pos := strings.IndexByte(language, '_'); pos > 0 {
				extraPath = dictFile(pathWords, language[:pos])
			}
		}
		if extraPath != "" {
			// Extra word lists have no affix file.
			if err := dict.loadWordList(extraPath, nil); err != nil {
				return nil, err
			}
		}
	}

	return dict, nil
}
