package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:5000", cfg.Server.URL)
		assert.Equal(t, "warn", cfg.UI.LogLevel)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "client.hcl")
		require.NoError(t, os.WriteFile(path, []byte(`
server {
  url = "http://poker.example.com:5000"
}

player {
  name = "Alice"
}

ui {
  log_level = "debug"
}
`), 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "http://poker.example.com:5000", cfg.Server.URL)
		assert.Equal(t, "Alice", cfg.Player.Name)
		assert.Equal(t, "debug", cfg.UI.LogLevel)
		// unset values still defaulted
		assert.Equal(t, "indianpoker.log", cfg.UI.LogFile)
		assert.Equal(t, 10, cfg.Server.ConnectTimeout)
	})

	t.Run("invalid HCL is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "client.hcl")
		require.NoError(t, os.WriteFile(path, []byte(`server {`), 0o644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.UI.LogLevel = "loud"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Server.URL = ""
	assert.Error(t, cfg.Validate())
}
