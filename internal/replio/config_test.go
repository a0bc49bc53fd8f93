package replio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))

	assert.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverlaysValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".lalr1rc.toml")
	err := os.WriteFile(path, []byte("debug = true\nprompt = \"expr> \"\n"), 0644)
	assert.NoError(t, err)

	cfg, err := LoadConfig(path)

	assert.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.Partials)
	assert.Equal(t, "expr> ", cfg.Prompt)
}

func TestLoadConfigRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".lalr1rc.toml")
	err := os.WriteFile(path, []byte("debug = [not toml"), 0644)
	assert.NoError(t, err)

	_, err = LoadConfig(path)
	assert.Error(t, err)
}
