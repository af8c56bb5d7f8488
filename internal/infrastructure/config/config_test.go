package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, OutputTable, cfg.Output)
	assert.False(t, cfg.NoColor)
	assert.False(t, cfg.Verbose)
}

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectError bool
		check       func(t *testing.T, cfg Config)
	}{
		{
			name:    "ValidConfig",
			content: `{"output": "json", "no_color": true}`,
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, OutputJSON, cfg.Output)
				assert.True(t, cfg.NoColor)
			},
		},
		{
			name:    "PartialConfigKeepsDefaults",
			content: `{"verbose": true}`,
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, OutputTable, cfg.Output)
				assert.True(t, cfg.Verbose)
			},
		},
		{
			name:        "MalformedConfig",
			content:     `{"output": `,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			cfg := Default()
			err := loadFile(path, &cfg)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadFile_MissingFileIsNotAnError(t *testing.T) {
	cfg := Default()
	err := loadFile(filepath.Join(t.TempDir(), "nope.json"), &cfg)
	assert.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("RETROABI_OUTPUT", "YAML")
	t.Setenv("RETROABI_VERBOSE", "true")
	t.Setenv("NO_COLOR", "1")

	cfg := Default()
	loadEnv(&cfg)

	assert.Equal(t, OutputYAML, cfg.Output)
	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.NoColor)
}

func TestValidate_RejectsUnknownFormat(t *testing.T) {
	cfg := Config{Output: "xml"}
	assert.Error(t, cfg.validate())
}
