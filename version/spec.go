package version

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/scylladb/go-set/strset"
)

// Kind describes the shape of a version spec before it is pinned against a
// real release.
type Kind string

const (
	// KindVersion is a literal, fully specified version (e.g. "1.2.3").
	KindVersion Kind = "version"

	// KindConstraint is a version range (e.g. "^18.0", ">=1.21 <1.23").
	KindConstraint Kind = "constraint"

	// KindAlias is a named release channel (e.g. "latest", "lts-gallium").
	KindAlias Kind = "alias"
)

// well-known channel names that short-circuit alias detection
var wellKnownAliases = strset.New("latest", "stable", "canary", "next")

var aliasPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*([.-][a-zA-Z0-9]+)*$`)

// Spec is an unresolved version expression: parsed and structurally valid, but
// not yet checked against an actual release registry.
type Spec struct {
	raw        string
	kind       Kind
	version    *semver.Version
	constraint *semver.Constraints
}

type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid version spec %q: %v", e.Raw, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse interprets a free-form string as a literal version, a constraint, or
// an alias (tried in that order). Anything else fails with a *ParseError
// carrying the offending string.
func Parse(raw string) (*Spec, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, &ParseError{Raw: raw, Err: fmt.Errorf("empty version spec")}
	}

	if wellKnownAliases.Has(strings.ToLower(value)) {
		return &Spec{raw: value, kind: KindAlias}, nil
	}

	if v, err := semver.NewVersion(value); err == nil {
		return &Spec{raw: value, kind: KindVersion, version: v}, nil
	}

	c, constraintErr := semver.NewConstraint(value)
	if constraintErr == nil {
		return &Spec{raw: value, kind: KindConstraint, constraint: c}, nil
	}

	if aliasPattern.MatchString(value) {
		return &Spec{raw: value, kind: KindAlias}, nil
	}

	return nil, &ParseError{Raw: raw, Err: constraintErr}
}

// MustParse is a test and wiring convenience that panics on parse failure.
func MustParse(raw string) *Spec {
	s, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Spec) String() string {
	return s.raw
}

func (s Spec) Kind() Kind {
	return s.kind
}

// Version returns the parsed literal version, or nil for non-literal specs.
func (s Spec) Version() *semver.Version {
	return s.version
}

// Constraint returns the parsed range, or nil for non-range specs.
func (s Spec) Constraint() *semver.Constraints {
	return s.constraint
}

// Satisfies reports whether a concrete version is acceptable for this spec.
// Aliases cannot be checked locally and always report false.
func (s Spec) Satisfies(v *semver.Version) bool {
	switch s.kind {
	case KindVersion:
		return s.version.Equal(v)
	case KindConstraint:
		return s.constraint.Check(v)
	}
	return false
}
