package tool

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binver/binver/tool/pinfile"
)

func Test_New(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantID  string
		wantEnv string
		wantErr require.ErrorAssertionFunc
	}{
		{
			name: "explicit method with wrong parameter type",
			config: Config{
				Name:           "node",
				DetectorConfig: DetailConfig{Method: "nodejs", Parameters: "bogus"},
			},
			wantErr: require.Error,
		},
		{
			name:    "node defaults to nodejs detector",
			config:  Config{Name: "node"},
			wantID:  "node",
			wantEnv: "BINVER_NODE",
		},
		{
			name:    "go defaults to golang detector",
			config:  Config{Name: "go"},
			wantID:  "go",
			wantEnv: "BINVER_GO",
		},
		{
			name:    "unknown tool defaults to pinfile detector",
			config:  Config{Name: "terraform"},
			wantID:  "terraform",
			wantEnv: "BINVER_TERRAFORM",
		},
		{
			name:    "hyphenated name",
			config:  Config{Name: "golangci-lint"},
			wantID:  "golangci-lint",
			wantEnv: "BINVER_GOLANGCI_LINT",
		},
		{
			name:    "missing name",
			config:  Config{},
			wantErr: require.Error,
		},
		{
			name: "unknown method",
			config: Config{
				Name:           "node",
				DetectorConfig: DetailConfig{Method: "bogus"},
			},
			wantErr: require.Error,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr == nil {
				tt.wantErr = require.NoError
			}

			tool, err := New(tt.config)
			tt.wantErr(t, err)
			if err != nil {
				return
			}

			assert.Equal(t, tt.wantID, tool.ID())
			assert.Equal(t, tt.wantEnv, tool.EnvPrefix())
		})
	}
}

func Test_New_defaultPinfileDetector(t *testing.T) {
	tool, err := New(Config{Name: "terraform"})
	require.NoError(t, err)

	dir := t.TempDir()
	pinPath := filepath.Join(dir, ".terraform-version")
	require.NoError(t, os.WriteFile(pinPath, []byte("1.5.0\n"), 0644))

	spec, source, err := tool.DetectVersionFrom(context.Background(), dir)
	require.NoError(t, err)
	require.NotNil(t, spec)
	assert.Equal(t, "1.5.0", spec.String())
	assert.Equal(t, pinPath, source)
}

func Test_New_explicitPinfileParameters(t *testing.T) {
	tool, err := New(Config{
		Name: "ruby",
		DetectorConfig: DetailConfig{
			Method: pinfile.DetectMethod,
			Parameters: pinfile.DetectorParameters{
				Files: []string{".tool-versions.ruby"},
			},
		},
	})
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".tool-versions.ruby"), []byte("3.2.2\n"), 0644))

	spec, _, err := tool.DetectVersionFrom(context.Background(), dir)
	require.NoError(t, err)
	require.NotNil(t, spec)
	assert.Equal(t, "3.2.2", spec.String())
}

func Test_DetectMethods(t *testing.T) {
	assert.Equal(t, []string{"nodejs", "golang", "pinfile"}, DetectMethods())
}
