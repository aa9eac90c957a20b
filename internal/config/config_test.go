package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bookrab/errdoc/internal/catalog"
	"github.com/bookrab/errdoc/internal/docsync"
)

// writeConfig writes config data to a temp file and returns its path.
func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}
	return path
}

func TestLoad_Minimal(t *testing.T) {
	path := writeConfig(t, `{"project": {"name": "bookrab"}}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Project.Name != "bookrab" {
		t.Errorf("Project.Name = %q, want %q", cfg.Project.Name, "bookrab")
	}
	if cfg.Sync != nil {
		t.Error("Sync should be nil before defaults are applied")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Load() on missing file should fail")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{broken`)

	if _, err := Load(path); err == nil {
		t.Error("Load() on malformed JSON should fail")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	path := writeConfig(t, `{"project": {"name": "bookrab"}}`)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults() error = %v", err)
	}

	if cfg.Sync == nil {
		t.Fatal("Sync is nil after defaults")
	}
	if len(cfg.Sync.Files) != 1 || cfg.Sync.Files[0] != docsync.DefaultFile {
		t.Errorf("Sync.Files = %v, want [%q]", cfg.Sync.Files, docsync.DefaultFile)
	}
	if cfg.Sync.Header != docsync.DefaultHeader {
		t.Errorf("Sync.Header = %q, want %q", cfg.Sync.Header, docsync.DefaultHeader)
	}
	if cfg.Sync.Footer != docsync.DefaultFooter {
		t.Errorf("Sync.Footer = %q, want %q", cfg.Sync.Footer, docsync.DefaultFooter)
	}
	if cfg.Sync.Pattern != catalog.DefaultPattern {
		t.Errorf("Sync.Pattern = %q, want %q", cfg.Sync.Pattern, catalog.DefaultPattern)
	}
	if cfg.Sync.LinePrefix != docsync.DefaultLinePrefix {
		t.Errorf("Sync.LinePrefix = %q, want %q", cfg.Sync.LinePrefix, docsync.DefaultLinePrefix)
	}
}

func TestLoadWithDefaults_ExplicitValuesKept(t *testing.T) {
	path := writeConfig(t, `{
		"project": {"name": "bookrab"},
		"sync": {
			"files": ["core/errors.rs"],
			"header": "// Errors:",
			"footer": "// end",
			"line_prefix": "// "
		}
	}`)

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults() error = %v", err)
	}

	if cfg.Sync.Header != "// Errors:" {
		t.Errorf("Sync.Header = %q, explicit value was overwritten", cfg.Sync.Header)
	}
	if len(cfg.Sync.Files) != 1 || cfg.Sync.Files[0] != "core/errors.rs" {
		t.Errorf("Sync.Files = %v", cfg.Sync.Files)
	}
	// Pattern was not set, so the default applies.
	if cfg.Sync.Pattern != catalog.DefaultPattern {
		t.Errorf("Sync.Pattern = %q, want default", cfg.Sync.Pattern)
	}
}

func TestLoadAndValidate_Valid(t *testing.T) {
	path := writeConfig(t, `{"project": {"name": "bookrab"}}`)

	cfg, warnings, err := LoadAndValidate(path)
	if err != nil {
		t.Fatalf("LoadAndValidate() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if cfg.Sync == nil {
		t.Error("defaults were not applied")
	}
}

func TestLoadAndValidate_UnknownFields(t *testing.T) {
	path := writeConfig(t, `{
		"project": {"name": "bookrab"},
		"sink": {},
		"sync": {"fils": ["typo"]}
	}`)

	_, warnings, err := LoadAndValidate(path)
	if err != nil {
		t.Fatalf("LoadAndValidate() error = %v", err)
	}
	if len(warnings) != 2 {
		t.Fatalf("got %d warnings, want 2: %v", len(warnings), warnings)
	}

	joined := strings.Join(warnings, "\n")
	if !strings.Contains(joined, `"sink"`) {
		t.Errorf("missing root-level warning: %v", warnings)
	}
	if !strings.Contains(joined, `"fils"`) {
		t.Errorf("missing sync-section warning: %v", warnings)
	}
}

func TestLoadAndValidate_SchemaRejectsWrongType(t *testing.T) {
	path := writeConfig(t, `{"project": {"name": "bookrab"}, "sync": {"files": 42}}`)

	if _, _, err := LoadAndValidate(path); err == nil {
		t.Error("LoadAndValidate() should fail schema validation")
	}
}

func TestValidate_BadPattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"malformed", `"(E[`},
		{"no capture group", `"E\d{4}:.+?"`},
		{"two capture groups", `"(E\d{4}):(.+?)"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Project: ProjectConfig{Name: "ok"}}
			applyDefaults(cfg)
			cfg.Sync.Pattern = tt.pattern

			if err := Validate(cfg); err == nil {
				t.Errorf("Validate() should reject pattern %q", tt.pattern)
			}
		})
	}
}

func TestValidate_EmptyFileEntry(t *testing.T) {
	cfg := &Config{Project: ProjectConfig{Name: "ok"}}
	applyDefaults(cfg)
	cfg.Sync.Files = []string{"src/errors.rs", ""}

	err := Validate(cfg)
	if err == nil {
		t.Fatal("Validate() should reject empty file entries")
	}
	if !strings.Contains(err.Error(), "sync.files[1]") {
		t.Errorf("error = %v, want field reference sync.files[1]", err)
	}
}

func TestValidateProjectName(t *testing.T) {
	valid := []string{"bookrab", "my-project", "a1", "x-1-y"}
	for _, name := range valid {
		if err := ValidateProjectName(name); err != nil {
			t.Errorf("ValidateProjectName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"", "Bookrab", "1abc", "a--b", "trailing-", "-leading", "has space"}
	for _, name := range invalid {
		if err := ValidateProjectName(name); err == nil {
			t.Errorf("ValidateProjectName(%q) = nil, want error", name)
		}
	}
}
