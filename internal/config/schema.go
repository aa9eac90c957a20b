// Package config provides configuration loading and validation for config.json.
package config

// Config represents the complete config.json configuration.
type Config struct {
	Project ProjectConfig `json:"project"`
	Sync    *SyncConfig   `json:"sync,omitempty"`
}

// ProjectConfig contains project metadata.
type ProjectConfig struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Repository  string `json:"repository,omitempty"`
}

// SyncConfig configures the documentation-block synchronization.
type SyncConfig struct {
	// Files lists the source files whose error listing is kept in sync,
	// relative to the project root.
	Files []string `json:"files,omitempty"`

	// Header is the first line of the documentation block.
	Header string `json:"header,omitempty"`

	// Footer is the end-marker line closing the documentation block.
	Footer string `json:"footer,omitempty"`

	// Pattern is the extraction regexp with exactly one capture group.
	Pattern string `json:"pattern,omitempty"`

	// LinePrefix is prepended to each generated listing line.
	LinePrefix string `json:"line_prefix,omitempty"`
}
