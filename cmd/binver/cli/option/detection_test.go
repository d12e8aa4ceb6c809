package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Detection_PostLoad(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr require.ErrorAssertionFunc
	}{
		{
			name:  "empty strategy passes through",
			input: "",
			want:  "",
		},
		{
			name:  "canonical spelling is kept",
			input: "prefer-config",
			want:  "prefer-config",
		},
		{
			name:  "tolerant spelling is canonicalized",
			input: "Only_Config",
			want:  "only-config",
		},
		{
			name:    "invalid strategy",
			input:   "bogus",
			wantErr: require.Error,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr == nil {
				tt.wantErr = require.NoError
			}

			o := Detection{Strategy: tt.input}
			tt.wantErr(t, o.PostLoad())
			if tt.want != "" || tt.input == "" {
				assert.Equal(t, tt.want, o.Strategy)
			}
		})
	}
}
