package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigName is the manifest file looked up from the working
// directory upwards.
const ConfigName = "polint.toml"

// CheckConfig holds the [check] section of polint.toml. Every field
// mirrors a flag of the check command; flags given on the command
// line win over the manifest.
type CheckConfig struct {
	Select    string   `toml:"select"`
	Ignore    string   `toml:"ignore"`
	Fuzzy     bool     `toml:"fuzzy"`
	Noqa      bool     `toml:"noqa"`
	Obsolete  bool     `toml:"obsolete"`
	PathDicts string   `toml:"path_dicts"`
	PathWords string   `toml:"path_words"`
	LangID    string   `toml:"lang_id"`
	Severity  []string `toml:"severity"`
	Sort      string   `toml:"sort"`
	Output    string   `toml:"output"`
	Jobs      int      `toml:"jobs"`
}

// StatsConfig holds the [stats] section of polint.toml.
type StatsConfig struct {
	Words  bool   `toml:"words"`
	Sort   string `toml:"sort"`
	Output string `toml:"output"`
	Jobs   int    `toml:"jobs"`
}

// Config is a parsed polint.toml manifest.
type Config struct {
	Check CheckConfig `toml:"check"`
	Stats StatsConfig `toml:"stats"`

	meta toml.MetaData
}

// Has reports whether the given key path was present in the manifest,
// e.g. Has("check", "select"). Absent keys keep the flag defaults.
func (c *Config) Has(keys ...string) bool {
	return c.meta.IsDefined(keys...)
}

// Load parses a polint.toml manifest.
func Load(path string) (*Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	for _, key := range meta.Undecoded() {
		return nil, fmt.Errorf("%s: unknown key %q", path, key.String())
	}
	cfg.meta = meta
	return &cfg, nil
}

// Find walks up from startDir to locate polint.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ConfigName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadNearest loads the closest manifest above startDir, if any.
func LoadNearest(startDir string) (*Config, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, true, err
	}
	return cfg, true, nil
}
