package nodejs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binver/binver/version"
)

func Test_Detector_DetectVersionFrom(t *testing.T) {
	tests := []struct {
		name       string
		files      map[string]string
		params     DetectorParameters
		wantSpec   string
		wantKind   version.Kind
		wantSource string
		wantErr    require.ErrorAssertionFunc
	}{
		{
			name: "nvmrc",
			files: map[string]string{
				".nvmrc": "18.20.3\n",
			},
			wantSpec:   "18.20.3",
			wantKind:   version.KindVersion,
			wantSource: ".nvmrc",
		},
		{
			name: "node-version file",
			files: map[string]string{
				".node-version": "v20.11.0\n",
			},
			wantSpec:   "20.11.0",
			wantKind:   version.KindVersion,
			wantSource: ".node-version",
		},
		{
			name: "nvmrc wins over node-version",
			files: map[string]string{
				".nvmrc":        "18.20.3\n",
				".node-version": "20.11.0\n",
			},
			wantSpec:   "18.20.3",
			wantKind:   version.KindVersion,
			wantSource: ".nvmrc",
		},
		{
			name: "nvmrc alias",
			files: map[string]string{
				".nvmrc": "lts/hydrogen\n",
			},
			wantErr: require.Error,
		},
		{
			name: "package.json engines",
			files: map[string]string{
				"package.json": `{"name": "app", "engines": {"node": ">=18 <21"}}`,
			},
			wantSpec:   ">=18 <21",
			wantKind:   version.KindConstraint,
			wantSource: "package.json",
		},
		{
			name: "pin files win over engines",
			files: map[string]string{
				".nvmrc":       "18.20.3\n",
				"package.json": `{"engines": {"node": "^20"}}`,
			},
			wantSpec:   "18.20.3",
			wantKind:   version.KindVersion,
			wantSource: ".nvmrc",
		},
		{
			name:   "engines skipped when configured",
			params: DetectorParameters{SkipEngines: true},
			files: map[string]string{
				"package.json": `{"engines": {"node": "^20"}}`,
			},
		},
		{
			name: "package.json without engines",
			files: map[string]string{
				"package.json": `{"name": "app"}`,
			},
		},
		{
			name: "malformed package.json",
			files: map[string]string{
				"package.json": `{"engines": `,
			},
			wantErr: require.Error,
		},
		{
			name: "nothing found",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr == nil {
				tt.wantErr = require.NoError
			}

			dir := t.TempDir()
			for name, contents := range tt.files {
				require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0644))
			}

			spec, source, err := NewDetector(tt.params).DetectVersionFrom(context.Background(), dir)
			tt.wantErr(t, err)

			if tt.wantSpec == "" {
				assert.Nil(t, spec)
				return
			}

			require.NotNil(t, spec)
			assert.Equal(t, tt.wantSpec, spec.String())
			assert.Equal(t, tt.wantKind, spec.Kind())
			assert.Equal(t, filepath.Join(dir, tt.wantSource), source)
		})
	}
}
