package config

import (
	"fmt"
	"regexp"
)

// Project name: must start with lowercase letter, may contain lowercase,
// digits, hyphens. Hyphens must not be consecutive or trailing.
var projectNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a configuration for errors. It expects defaults to have
// been applied already.
func Validate(cfg *Config) error {
	if err := ValidateProjectName(cfg.Project.Name); err != nil {
		return err
	}
	return validateSync(cfg.Sync)
}

// ValidateProjectName checks that a project name is well-formed.
func ValidateProjectName(name string) error {
	if name == "" {
		return &ValidationError{
			Field:   "project.name",
			Message: "is required",
		}
	}
	if !projectNamePattern.MatchString(name) {
		return &ValidationError{
			Field:   "project.name",
			Message: "must match pattern ^[a-z][a-z0-9]*(-[a-z0-9]+)*$ (lowercase letters, digits, single hyphens)",
		}
	}
	return nil
}

func validateSync(sync *SyncConfig) error {
	for i, file := range sync.Files {
		if file == "" {
			return &ValidationError{
				Field:   fmt.Sprintf("sync.files[%d]", i),
				Message: "must not be empty",
			}
		}
	}

	if sync.Header == "" {
		return &ValidationError{
			Field:   "sync.header",
			Message: "must not be empty",
		}
	}
	if sync.Footer == "" {
		return &ValidationError{
			Field:   "sync.footer",
			Message: "must not be empty",
		}
	}

	re, err := regexp.Compile(sync.Pattern)
	if err != nil {
		return &ValidationError{
			Field:   "sync.pattern",
			Message: fmt.Sprintf("is not a valid regexp: %v", err),
		}
	}
	if re.NumSubexp() != 1 {
		return &ValidationError{
			Field:   "sync.pattern",
			Message: fmt.Sprintf("must have exactly one capture group, got %d", re.NumSubexp()),
		}
	}

	return nil
}
