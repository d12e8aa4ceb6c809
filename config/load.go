package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/binver/binver/internal/log"
)

// LoadHierarchy walks from startDir up to the filesystem root, collecting
// every config file found along the way, nearest directory first. Malformed
// files are collected into a single aggregated error rather than stopping at
// the first failure.
func LoadHierarchy(startDir string) (*Manager, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("unable to resolve start directory %q: %w", startDir, err)
	}

	var files []File
	var errs error

	for {
		path := filepath.Join(dir, FileName)

		file, err := loadFile(path)
		switch {
		case err != nil:
			errs = multierror.Append(errs, err)
		case file != nil:
			log.WithFields("file", path).Trace("loaded config file")
			files = append(files, *file)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if errs != nil {
		return nil, errs
	}

	return NewManager(files...), nil
}

func loadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read config file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config file %q: %w", path, err)
	}

	return &File{Path: path, Config: cfg}, nil
}
