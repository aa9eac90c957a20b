package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bookrab/errdoc/internal/config"
	"github.com/bookrab/errdoc/internal/errors"
	"github.com/bookrab/errdoc/internal/project"
)

// cmdInit initializes a new errdoc project in the current directory.
// The command is idempotent - it only creates files that don't exist.
func cmdInit(args []string) int {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			printInitUsage()
			return 0
		}
		if strings.HasPrefix(arg, "-") {
			out.ErrorPrefix("init: unknown option %q", arg)
			return errors.ExitConfigError
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitFailure
	}

	configDir := filepath.Join(cwd, project.ConfigDirName)
	configPath := filepath.Join(configDir, project.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil {
		out.Info("%s already exists; nothing to do", filepath.Join(project.ConfigDirName, project.ConfigFileName))
		return 0
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitFailure
	}

	cfg := &config.Config{
		Project: config.ProjectConfig{
			Name: sanitizeProjectName(filepath.Base(cwd)),
		},
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitFailure
	}
	data = append(data, '\n')

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitFailure
	}

	out.Success("Created %s", filepath.Join(project.ConfigDirName, project.ConfigFileName))
	out.Hint("Defaults sync src/errors.rs; add a \"sync\" section to customize files and markers.")
	return 0
}

// invalidNameChars matches characters that are not allowed in project names.
var invalidNameChars = regexp.MustCompile(`[^a-z0-9-]+`)

// sanitizeProjectName converts a directory name into a valid project name.
func sanitizeProjectName(name string) string {
	name = strings.ToLower(name)
	name = invalidNameChars.ReplaceAllString(name, "-")

	// Collapse consecutive hyphens and trim them from the ends.
	for strings.Contains(name, "--") {
		name = strings.ReplaceAll(name, "--", "-")
	}
	name = strings.Trim(name, "-")

	// Names must start with a letter.
	name = strings.TrimLeft(name, "0123456789-")

	if name == "" {
		return "project"
	}
	return name
}

func printInitUsage() {
	w := out
	w.HelpTitle("errdoc init - initialize an errdoc project")

	w.HelpSection("Usage:")
	w.HelpUsage("errdoc init")

	w.HelpSection("Description:")
	w.Println("  Creates .errdoc/config.json in the current directory with the")
	w.Println("  project name derived from the directory name. Existing files")
	w.Println("  are never overwritten.")
	w.Println("")
}
