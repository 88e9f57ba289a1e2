package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		secret  string
		wantErr error
	}{
		{"production with the dev secret fails", "production", devSessionSecret, ErrMissingSessionSecret},
		{"production with an empty secret fails", "production", "", ErrMissingSessionSecret},
		{"production with a real secret passes", "production", "0f1e2d3c4b5a69788796a5b4c3d2e1f0", nil},
		{"development tolerates the dev secret", "development", devSessionSecret, nil},
		{"staging tolerates the dev secret", "staging", devSessionSecret, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Env: tt.env, SessionSecret: tt.secret}
			err := cfg.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestEnvPredicates(t *testing.T) {
	assert.True(t, (&Config{Env: "production"}).IsProduction())
	assert.False(t, (&Config{Env: "development"}).IsProduction())
	assert.True(t, (&Config{Env: "development"}).IsDevelopment())
	assert.False(t, (&Config{Env: "staging"}).IsDevelopment())
}

func TestCORSOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: "http://localhost:3000, https://evenly.example ,"}
	assert.Equal(t, []string{"http://localhost:3000", "https://evenly.example"}, cfg.CORSOrigins())
}
