package config

import (
	"github.com/bookrab/errdoc/internal/catalog"
	"github.com/bookrab/errdoc/internal/docsync"
)

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Sync == nil {
		cfg.Sync = &SyncConfig{}
	}
	if len(cfg.Sync.Files) == 0 {
		cfg.Sync.Files = []string{docsync.DefaultFile}
	}
	if cfg.Sync.Header == "" {
		cfg.Sync.Header = docsync.DefaultHeader
	}
	if cfg.Sync.Footer == "" {
		cfg.Sync.Footer = docsync.DefaultFooter
	}
	if cfg.Sync.Pattern == "" {
		cfg.Sync.Pattern = catalog.DefaultPattern
	}
	if cfg.Sync.LinePrefix == "" {
		cfg.Sync.LinePrefix = docsync.DefaultLinePrefix
	}
}
