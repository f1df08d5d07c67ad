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

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
api:
  lang: de
  token: test-token
  timeout: 10
filter:
  default: Done == false
  presets:
    repeatable: "\"Repeatable\" in Flags"
logging:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "de", cfg.API.Lang)
	assert.Equal(t, "test-token", cfg.API.Token)
	assert.Equal(t, 10, cfg.API.Timeout)
	assert.Equal(t, "Done == false", cfg.Filter.Default)
	assert.Contains(t, cfg.Filter.Presets, "repeatable")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
api:
  token: test-token
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.API.Lang)
	assert.Equal(t, 30, cfg.API.Timeout)
	assert.Empty(t, cfg.API.URL)
	assert.True(t, cfg.Output.ShowDetails)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Logging.Color)
}

func TestLoadNoToken(t *testing.T) {
	// Public endpoints work without a token, so an empty one is valid
	path := writeConfig(t, `
api:
  lang: fr
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.API.Token)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name: "invalid language",
			content: `
api:
  lang: xx
`,
			errMsg: "invalid api language",
		},
		{
			name: "invalid timeout",
			content: `
api:
  timeout: -1
`,
			errMsg: "api.timeout must be positive",
		},
		{
			name: "invalid logging level",
			content: `
logging:
  level: loud
`,
			errMsg: "invalid logging level",
		},
		{
			name: "invalid logging format",
			content: `
logging:
  format: xml
`,
			errMsg: "invalid logging format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
