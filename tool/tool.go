package tool

import (
	"fmt"
	"strings"

	"github.com/binver/binver"
	"github.com/binver/binver/tool/golang"
	"github.com/binver/binver/tool/nodejs"
	"github.com/binver/binver/tool/pinfile"
)

var _ binver.Tool = (*compositeTool)(nil)

type compositeTool struct {
	config Config
	binver.EcosystemDetector
}

type Config struct {
	Name           string
	DetectorConfig DetailConfig
}

type DetailConfig struct {
	Method     string
	Parameters any
}

func DetectMethods() []string {
	return []string{
		nodejs.DetectMethod,
		golang.DetectMethod,
		pinfile.DetectMethod,
	}
}

func (t *Config) normalize() error {
	if t.Name == "" {
		return fmt.Errorf("tool name is required")
	}

	// fall back to a detector based on the tool name
	if t.DetectorConfig.Method == "" {
		method, params := defaultDetectorConfig(t.Name)
		t.DetectorConfig.Method = method
		t.DetectorConfig.Parameters = params
	}

	return nil
}

func New(t Config) (binver.Tool, error) {
	if err := t.normalize(); err != nil {
		return nil, fmt.Errorf("failed to normalize tool config: %w", err)
	}

	detector, err := getDetector(t.DetectorConfig.Method, t.DetectorConfig.Parameters)
	if err != nil {
		return nil, fmt.Errorf("failed to get ecosystem detector for tool %q: %w", t.Name, err)
	}

	return &compositeTool{
		config:            t,
		EcosystemDetector: detector,
	}, nil
}

func defaultDetectorConfig(name string) (method string, parameters any) {
	switch {
	case nodejs.IsDetectMethod(name):
		return nodejs.DetectMethod, nodejs.DetectorParameters{}
	case golang.IsDetectMethod(name):
		return golang.DetectMethod, golang.DetectorParameters{}
	}

	return pinfile.DetectMethod, pinfile.DetectorParameters{
		Files: []string{fmt.Sprintf(".%s-version", strings.ToLower(name))},
	}
}

func getDetector(method string, detectParams any) (binver.EcosystemDetector, error) {
	switch {
	case nodejs.IsDetectMethod(method):
		params, ok := detectParams.(nodejs.DetectorParameters)
		if !ok {
			return nil, fmt.Errorf("invalid nodejs detector parameters")
		}

		return nodejs.NewDetector(params), nil
	case golang.IsDetectMethod(method):
		params, ok := detectParams.(golang.DetectorParameters)
		if !ok {
			return nil, fmt.Errorf("invalid golang detector parameters")
		}

		return golang.NewDetector(params), nil
	case pinfile.IsDetectMethod(method):
		params, ok := detectParams.(pinfile.DetectorParameters)
		if !ok {
			return nil, fmt.Errorf("invalid pinfile detector parameters")
		}

		return pinfile.NewDetector(params), nil
	}

	return nil, fmt.Errorf("unknown detect method %q", method)
}

func (c compositeTool) ID() string {
	return c.config.Name
}

func (c compositeTool) EnvPrefix() string {
	name := strings.ToUpper(strings.ReplaceAll(c.config.Name, "-", "_"))
	return "BINVER_" + name
}
