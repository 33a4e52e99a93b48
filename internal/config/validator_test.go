package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	termtinterrors "github.com/alexisbeaulieu97/termtint/pkg/errors"
)

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{
			name: "valid overlay",
			cfg: &Config{Colors: map[string]ColorFamily{
				"brand": {500: "#ff00aa", 700: "#aa0066"},
			}},
		},
		{
			name: "short hex form is accepted",
			cfg: &Config{Colors: map[string]ColorFamily{
				"brand": {500: "#f0a"},
			}},
		},
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: true,
		},
		{
			name:    "empty colors",
			cfg:     &Config{Colors: map[string]ColorFamily{}},
			wantErr: true,
		},
		{
			name: "uppercase family name",
			cfg: &Config{Colors: map[string]ColorFamily{
				"Brand": {500: "#ff00aa"},
			}},
			wantErr: true,
		},
		{
			name: "negative shade",
			cfg: &Config{Colors: map[string]ColorFamily{
				"brand": {-1: "#ff00aa"},
			}},
			wantErr: true,
		},
		{
			name: "value without hash prefix",
			cfg: &Config{Colors: map[string]ColorFamily{
				"brand": {500: "ff00aa"},
			}},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateConfig(tc.cfg)
			if tc.wantErr {
				require.Error(t, err)

				var validationErr *termtinterrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestOverlayFlattensFamilies(t *testing.T) {
	t.Parallel()

	cfg := &Config{Colors: map[string]ColorFamily{
		"brand": {500: "#ff00aa", 700: "#aa0066"},
		"mint":  {50: "#eefff5"},
	}}

	entries := cfg.Overlay()

	require.Equal(t, map[string]string{
		"BRAND_500": "#ff00aa",
		"BRAND_700": "#aa0066",
		"MINT_50":   "#eefff5",
	}, entries)
}
