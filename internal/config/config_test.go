package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"input": "resume.txt",
		"output": "out.json",
		"pretty": true,
		"current_year": 2026
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "resume.txt", cfg.Input)
	assert.Equal(t, "out.json", cfg.Output)
	assert.True(t, cfg.Pretty)
	assert.Equal(t, 2026, cfg.CurrentYear)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(t *testing.T) string
	}{
		{
			name:    "Empty path",
			prepare: func(*testing.T) string { return "" },
		},
		{
			name: "Missing file",
			prepare: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "absent.json")
			},
		},
		{
			name: "Malformed JSON",
			prepare: func(t *testing.T) string {
				return writeConfig(t, `{not json`)
			},
		},
		{
			name: "Implausible current year",
			prepare: func(t *testing.T) string {
				return writeConfig(t, `{"current_year": 1492}`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(tt.prepare(t))
			assert.Error(t, err)
		})
	}
}

func TestValidate_ZeroValue(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}
