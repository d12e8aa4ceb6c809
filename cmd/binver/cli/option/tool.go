package option

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/binver/binver"
	"github.com/binver/binver/tool"
	"github.com/binver/binver/tool/golang"
	"github.com/binver/binver/tool/nodejs"
	"github.com/binver/binver/tool/pinfile"
)

// Tool configures how ecosystem detection works for a single tool.
type Tool struct {
	Name   string         `json:"name" yaml:"name" mapstructure:"name"`
	Method string         `json:"method" yaml:"method,omitempty" mapstructure:"method"`
	With   map[string]any `json:"with" yaml:"with,omitempty" mapstructure:"with"`
}

type Tools []Tool

func (t Tools) Get(name string) *Tool {
	for i := range t {
		if t[i].Name == name {
			return &t[i]
		}
	}
	return nil
}

// ToTool builds the named tool, honoring any configured detector override and
// falling back to name-based defaults.
func (t Tools) ToTool(name string) (binver.Tool, error) {
	cfg := tool.Config{Name: name}

	if opt := t.Get(name); opt != nil && opt.Method != "" {
		method, params, err := deriveDetectorParameters(opt.Method, opt.With)
		if err != nil {
			return nil, fmt.Errorf("failed to derive detector parameters for tool %q: %w", name, err)
		}

		cfg.DetectorConfig = tool.DetailConfig{
			Method:     method,
			Parameters: params,
		}
	}

	toolObj, err := tool.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to inflate tool %q: %w", name, err)
	}

	return toolObj, nil
}

func deriveDetectorParameters(method string, with map[string]any) (string, any, error) {
	switch {
	case nodejs.IsDetectMethod(method):
		var params nodejs.DetectorParameters
		if err := mapstructure.Decode(with, &params); err != nil {
			return "", nil, fmt.Errorf("invalid nodejs detector parameters: %w", err)
		}
		return nodejs.DetectMethod, params, nil

	case golang.IsDetectMethod(method):
		var params golang.DetectorParameters
		if err := mapstructure.Decode(with, &params); err != nil {
			return "", nil, fmt.Errorf("invalid golang detector parameters: %w", err)
		}
		return golang.DetectMethod, params, nil

	case pinfile.IsDetectMethod(method):
		var params pinfile.DetectorParameters
		if err := mapstructure.Decode(with, &params); err != nil {
			return "", nil, fmt.Errorf("invalid pinfile detector parameters: %w", err)
		}
		return pinfile.DetectMethod, params, nil
	}

	return "", nil, fmt.Errorf("unknown detect method %q (available: %+v)", method, tool.DetectMethods())
}
