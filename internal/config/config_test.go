package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"log_level": "debug",
		"log_format": "json",
		"output_dir": "out",
		"strict": true,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, FormatJSON, cfg.LogFormat)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.True(t, cfg.Strict)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvOutputDir, "/tmp/signatures")
	t.Setenv(EnvStrict, "true")

	cfg := Config{LogLevel: "debug"}
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, FormatJSON, cfg.LogFormat)
	assert.Equal(t, "/tmp/signatures", cfg.OutputDir)
	assert.True(t, cfg.Strict)
}

func TestApplyEnv_UnsetLeavesValues(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvStrict, "")

	cfg := Config{LogLevel: "error", Strict: true}
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, "error", cfg.LogLevel)
	assert.True(t, cfg.Strict)
}

func TestApplyEnv_InvalidBool(t *testing.T) {
	t.Setenv(EnvStrict, "sometimes")

	cfg := Config{}
	err := cfg.ApplyEnv()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), EnvStrict)
}

func TestValidate(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"empty", Config{}, ""},
		{"defaults", Defaults(), ""},
		{"json format", Config{LogLevel: "error", LogFormat: FormatJSON}, ""},
		{"missing output dir is created later", Config{OutputDir: filepath.Join(t.TempDir(), "new")}, ""},
		{"bad level", Config{LogLevel: "loud"}, "log_level"},
		{"bad format", Config{LogFormat: "xml"}, "log_format"},
		{"output dir is a file", Config{OutputDir: file}, "not a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		LogLevel:  "info",
		LogFormat: FormatConsole,
		OutputDir: "signatures",
	}

	partial := Config{
		LogLevel: "debug",
		Strict:   true,
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "debug", merged.LogLevel)
	assert.True(t, merged.Strict)

	// Default values should fill in empty fields
	assert.Equal(t, FormatConsole, merged.LogFormat)
	assert.Equal(t, "signatures", merged.OutputDir)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{LogLevel: "warn"}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "warn", merged.LogLevel)
	assert.Empty(t, merged.LogFormat)
}

func TestOutputPath(t *testing.T) {
	cfg := Config{OutputDir: "out"}

	assert.Equal(t, filepath.Join("out", "sig.json"), cfg.OutputPath("sig.json"))
	assert.Equal(t, "/abs/sig.json", cfg.OutputPath("/abs/sig.json"))
	assert.Equal(t, "", cfg.OutputPath(""))

	var empty Config
	assert.Equal(t, "sig.json", empty.OutputPath("sig.json"))
}
