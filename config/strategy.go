package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DetectStrategy selects how the hierarchy search consults config file
// entries vs tool ecosystem files. The set is closed: new strategies change
// search semantics materially.
type DetectStrategy string

const (
	// FirstAvailable checks the config entry at each level, then the tool's
	// ecosystem files at that same level, before moving to the next ancestor.
	FirstAvailable DetectStrategy = "first-available"

	// PreferConfig checks config entries across the whole hierarchy before
	// any ecosystem detection begins.
	PreferConfig DetectStrategy = "prefer-config"

	// OnlyConfig never consults ecosystem files.
	OnlyConfig DetectStrategy = "only-config"
)

const DefaultStrategy = FirstAvailable

// ParseDetectStrategy accepts the canonical strategy names plus a few common
// spellings.
func ParseDetectStrategy(value string) (DetectStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(DefaultStrategy), "first_available", "first":
		return FirstAvailable, nil
	case string(PreferConfig), "prefer_config", "prefer":
		return PreferConfig, nil
	case string(OnlyConfig), "only_config", "only":
		return OnlyConfig, nil
	}
	return "", fmt.Errorf("invalid detect strategy %q (expected one of: %s, %s, %s)", value, FirstAvailable, PreferConfig, OnlyConfig)
}

func (s DetectStrategy) String() string {
	return string(s)
}

func (s *DetectStrategy) UnmarshalYAML(node *yaml.Node) error {
	var value string
	if err := node.Decode(&value); err != nil {
		return err
	}

	if value == "" {
		*s = ""
		return nil
	}

	strategy, err := ParseDetectStrategy(value)
	if err != nil {
		return err
	}

	*s = strategy
	return nil
}
