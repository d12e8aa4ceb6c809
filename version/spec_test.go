package version

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind Kind
		wantErr  require.ErrorAssertionFunc
	}{
		{
			name:     "full version",
			input:    "18.20.3",
			wantKind: KindVersion,
		},
		{
			name:     "v-prefixed version",
			input:    "v1.2.3",
			wantKind: KindVersion,
		},
		{
			name:     "major only",
			input:    "20",
			wantKind: KindVersion,
		},
		{
			name:     "caret range",
			input:    "^18.0",
			wantKind: KindConstraint,
		},
		{
			name:     "compound range",
			input:    ">=1.21 <1.23",
			wantKind: KindConstraint,
		},
		{
			name:     "wildcard range",
			input:    "1.x",
			wantKind: KindConstraint,
		},
		{
			name:     "well-known alias",
			input:    "latest",
			wantKind: KindAlias,
		},
		{
			name:     "channel alias",
			input:    "lts-gallium",
			wantKind: KindAlias,
		},
		{
			name:     "surrounding whitespace",
			input:    "  18.0.0  ",
			wantKind: KindVersion,
		},
		{
			name:    "garbage",
			input:   "not-a-version!!",
			wantErr: require.Error,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: require.Error,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr == nil {
				tt.wantErr = require.NoError
			}

			spec, err := Parse(tt.input)
			tt.wantErr(t, err)

			if err != nil {
				var parseErr *ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Equal(t, tt.input, parseErr.Raw)
				return
			}

			assert.Equal(t, tt.wantKind, spec.Kind())
		})
	}
}

func Test_Parse_accessors(t *testing.T) {
	v := MustParse("1.2.3")
	require.NotNil(t, v.Version())
	assert.Nil(t, v.Constraint())
	assert.Equal(t, "1.2.3", v.String())

	c := MustParse("^1.2")
	require.NotNil(t, c.Constraint())
	assert.Nil(t, c.Version())

	a := MustParse("latest")
	assert.Nil(t, a.Version())
	assert.Nil(t, a.Constraint())
}

func Test_Satisfies(t *testing.T) {
	concrete := semver.MustParse("1.5.0")

	assert.True(t, MustParse("1.5.0").Satisfies(concrete))
	assert.False(t, MustParse("1.5.1").Satisfies(concrete))
	assert.True(t, MustParse("^1.2").Satisfies(concrete))
	assert.False(t, MustParse("^2.0").Satisfies(concrete))
	assert.False(t, MustParse("latest").Satisfies(concrete), "aliases cannot be checked locally")
}

func Test_MustParse_panics(t *testing.T) {
	assert.Panics(t, func() {
		MustParse("not-a-version!!")
	})
}
