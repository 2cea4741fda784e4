package spell

import "sync"

// Cache loads each language dictionary at most once, even when several
// files request it concurrently.
type Cache struct {
	PathDicts string
	PathWords string

	dicts sync.Map // language -> *cacheEntry
}

type cacheEntry struct {
	once sync.Once
	dict *Dict
	err  error
}

// NewCache creates a cache over the given dictionary directories.
func NewCache(pathDicts, pathWords string) *Cache {
	return &Cache{PathDicts: pathDicts, PathWords: pathWords}
}

// Get returns the dictionary for a language, loading it on first use.
// All callers for the same language share one load result.
func (c *Cache) Get(language string) (*Dict, error) {
	actual, _ := c.dicts.LoadOrStore(language, &cacheEntry{})
	entry := actual.(*cacheEntry)
	entry.once.Do(func() {
		entry.dict, entry.err = Load(c.PathDicts, c.PathWords, language)
	})
	return entry.dict, entry.err
}
