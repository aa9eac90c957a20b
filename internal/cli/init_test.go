package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bookrab/errdoc/internal/errors"
	"github.com/bookrab/errdoc/internal/project"
)

func TestSanitizeProjectName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"bookrab", "bookrab"},
		{"My Project", "my-project"},
		{"UPPER", "upper"},
		{"weird__chars!!", "weird-chars"},
		{"--edges--", "edges"},
		{"1numeric", "numeric"},
		{"???", "project"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := sanitizeProjectName(tt.input); got != tt.want {
				t.Errorf("sanitizeProjectName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCmdInit_CreatesConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	if got := Run([]string{"init"}); got != 0 {
		t.Fatalf("Run(init) = %d, want 0", got)
	}

	configPath := filepath.Join(dir, project.ConfigDirName, project.ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("config was not created: %v", err)
	}
	if !strings.Contains(string(data), `"name"`) {
		t.Errorf("config missing project name:\n%s", data)
	}

	// The generated config must load cleanly.
	if _, err := project.LoadProjectFrom(dir); err != nil {
		t.Errorf("generated config does not load: %v", err)
	}
}

func TestCmdInit_Idempotent(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	if got := Run([]string{"init"}); got != 0 {
		t.Fatalf("first Run(init) = %d, want 0", got)
	}

	configPath := filepath.Join(dir, project.ConfigDirName, project.ConfigFileName)
	before, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}

	if got := Run([]string{"init"}); got != 0 {
		t.Fatalf("second Run(init) = %d, want 0", got)
	}

	after, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	if string(before) != string(after) {
		t.Error("second init modified the existing config")
	}
}

func TestCmdInit_UnknownOption(t *testing.T) {
	t.Chdir(t.TempDir())

	if got := Run([]string{"init", "--bogus"}); got != errors.ExitConfigError {
		t.Errorf("Run(init --bogus) = %d, want %d", got, errors.ExitConfigError)
	}
}
