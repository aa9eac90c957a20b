package project

import (
	"path/filepath"

	"github.com/bookrab/errdoc/internal/config"
	"github.com/bookrab/errdoc/internal/errors"
)

// Project represents a loaded errdoc project.
type Project struct {
	Root     string
	Config   *config.Config
	Warnings []string
}

// LoadProject finds and loads a project from the current directory.
func LoadProject() (*Project, error) {
	root, err := FindRoot()
	if err != nil {
		return nil, err
	}
	return LoadProjectFrom(root)
}

// LoadProjectFrom loads a project from a specified root directory.
func LoadProjectFrom(root string) (*Project, error) {
	configPath := filepath.Join(root, ConfigDirName, ConfigFileName)

	cfg, warnings, err := config.LoadAndValidate(configPath)
	if err != nil {
		return nil, &errors.ErrdocError{
			Kind:    errors.KindConfig,
			Message: "failed to load configuration",
			Path:    configPath,
			Cause:   err,
		}
	}

	return &Project{
		Root:     root,
		Config:   cfg,
		Warnings: warnings,
	}, nil
}

// SyncFiles returns the configured sync files resolved against the project root.
func (p *Project) SyncFiles() []string {
	files := make([]string, 0, len(p.Config.Sync.Files))
	for _, f := range p.Config.Sync.Files {
		if filepath.IsAbs(f) {
			files = append(files, f)
			continue
		}
		files = append(files, filepath.Join(p.Root, f))
	}
	return files
}
