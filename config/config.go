package config

import (
	"path/filepath"
)

// FileName is the name of the config file searched for in each ancestor
// directory of the working directory.
const FileName = ".binver.yaml"

// Config is the parsed contents of a single config file.
type Config struct {
	// Tools maps tool ids to unresolved version spec strings.
	Tools map[string]string `json:"tools" yaml:"tools" mapstructure:"tools"`

	Settings Settings `json:"settings" yaml:"settings" mapstructure:"settings"`
}

type Settings struct {
	DetectStrategy DetectStrategy `json:"detect-strategy" yaml:"detect-strategy" mapstructure:"detect-strategy"`
}

// File pairs a config file path with its parsed configuration. Files are
// read-only snapshots loaded once per resolution.
type File struct {
	Path   string
	Config Config
}

// Dir is the directory the config file lives in.
func (f File) Dir() string {
	return filepath.Dir(f.Path)
}

// ToolVersion returns the version spec string recorded for the given tool id
// in this file, if any.
func (f File) ToolVersion(id string) (string, bool) {
	if f.Config.Tools == nil {
		return "", false
	}
	v, ok := f.Config.Tools[id]
	return v, ok
}

// Manager owns the ordered sequence of config files for one resolution. Order
// is nearest-to-working-directory first and defines search priority.
type Manager struct {
	Files []File

	override DetectStrategy
}

func NewManager(files ...File) *Manager {
	return &Manager{
		Files: files,
	}
}

// WithStrategy forces a detect strategy, taking precedence over anything the
// config files set.
func (m *Manager) WithStrategy(s DetectStrategy) *Manager {
	m.override = s
	return m
}

// Strategy returns the forced strategy if one is set, otherwise the strategy
// from the nearest file that sets one, falling back to the default.
func (m Manager) Strategy() DetectStrategy {
	if m.override != "" {
		return m.override
	}
	for _, f := range m.Files {
		if f.Config.Settings.DetectStrategy != "" {
			return f.Config.Settings.DetectStrategy
		}
	}
	return DefaultStrategy
}
