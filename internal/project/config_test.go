package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[check]
select = "default,spelling-str"
ignore = "long,short"
fuzzy = true
path_dicts = "/opt/dicts"
severity = ["warning", "error"]
jobs = 4

[stats]
words = true
sort = "status"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Check.Select != "default,spelling-str" {
		t.Errorf("Check.Select = %q", cfg.Check.Select)
	}
	if !cfg.Check.Fuzzy || cfg.Check.Noqa {
		t.Errorf("Check flags = %+v", cfg.Check)
	}
	if cfg.Check.PathDicts != "/opt/dicts" {
		t.Errorf("Check.PathDicts = %q", cfg.Check.PathDicts)
	}
	if len(cfg.Check.Severity) != 2 || cfg.Check.Severity[0] != "warning" {
		t.Errorf("Check.Severity = %v", cfg.Check.Severity)
	}
	if cfg.Check.Jobs != 4 {
		t.Errorf("Check.Jobs = %d", cfg.Check.Jobs)
	}
	if !cfg.Stats.Words || cfg.Stats.Sort != "status" {
		t.Errorf("Stats = %+v", cfg.Stats)
	}
	if !cfg.Has("check", "select") {
		t.Errorf("Has(check, select) = false")
	}
	if cfg.Has("check", "lang_id") {
		t.Errorf("Has(check, lang_id) = true for absent key")
	}
}

func TestLoadUnknownKey(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[check]\nselekt = \"tabs\"\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("Load() accepted unknown key")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[check\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("Load() accepted invalid TOML")
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[check]\nfuzzy = true\n")
	nested := filepath.Join(root, "po", "fr")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, ok, err := Find(nested)
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	if !ok {
		t.Fatalf("Find() did not locate the manifest")
	}
	if filepath.Base(path) != ConfigName {
		t.Errorf("Find() = %q", path)
	}

	cfg, ok, err := LoadNearest(nested)
	if err != nil || !ok {
		t.Fatalf("LoadNearest() = %v, %v", ok, err)
	}
	if !cfg.Check.Fuzzy {
		t.Errorf("Check.Fuzzy = false")
	}
}

func TestFindMissing(t *testing.T) {
	dir := t.TempDir()
	_, ok, err := Find(dir)
	if err != nil {
		t.Fatalf("Find() error: %v", err)
	}
	if ok {
		t.Fatalf("Find() reported a manifest in an empty tree")
	}
}
