//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("ValidConfig", func(t *testing.T) {
		configContent := `logging:
  level: debug
  format: compact

discovery:
  port: 15566
  interval_seconds: 5
  hostname: hampter-one
`
		configFile := filepath.Join(tempDir, "valid.yml")
		err := os.WriteFile(configFile, []byte(configContent), 0644)
		require.NoError(t, err)

		config, err := Load(configFile)
		require.NoError(t, err)
		assert.Equal(t, "debug", config.Logging.Level)
		assert.Equal(t, "compact", config.Logging.Format)
		assert.Equal(t, 15566, config.Discovery.Port)
		assert.Equal(t, 5, config.Discovery.IntervalSeconds)
		assert.Equal(t, "hampter-one", config.Discovery.Hostname)
	})

	t.Run("EmptyPathUsesDefaults", func(t *testing.T) {
		config, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "info", config.Logging.Level)
		assert.Equal(t, 5566, config.Discovery.Port)
		assert.Equal(t, 2, config.Discovery.IntervalSeconds)
		assert.Empty(t, config.Discovery.Hostname)
	})

	t.Run("PartialConfigKeepsDefaults", func(t *testing.T) {
		configContent := `logging:
  level: warn
`
		configFile := filepath.Join(tempDir, "partial.yml")
		err := os.WriteFile(configFile, []byte(configContent), 0644)
		require.NoError(t, err)

		config, err := Load(configFile)
		require.NoError(t, err)
		assert.Equal(t, "warn", config.Logging.Level)
		assert.Equal(t, 5566, config.Discovery.Port)
		assert.Equal(t, 2, config.Discovery.IntervalSeconds)
	})

	t.Run("NonExistentFile", func(t *testing.T) {
		_, err := Load(filepath.Join(tempDir, "missing.yml"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		configFile := filepath.Join(tempDir, "broken.yml")
		err := os.WriteFile(configFile, []byte("discovery: [not a map"), 0644)
		require.NoError(t, err)

		_, err = Load(configFile)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestValidate(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		assert.NoError(t, Default().Validate())
	})

	t.Run("PortOutOfRange", func(t *testing.T) {
		config := Default()
		config.Discovery.Port = 70000
		assert.Error(t, config.Validate())
	})

	t.Run("IntervalTooShort", func(t *testing.T) {
		config := Default()
		config.Discovery.IntervalSeconds = 0
		assert.Error(t, config.Validate())
	})
}
