package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENVELOPE_ADDR", "")
	t.Setenv("ENVELOPE_DATA_FILE", "")
	t.Setenv("ENVELOPE_STORE", "")
	t.Setenv("ENVELOPE_ENV", "")

	cfg := Load()
	assert.Equal(t, ":8087", cfg.Addr)
	assert.Equal(t, "budget_data.json", cfg.DataFile)
	assert.Equal(t, "json", cfg.Store)
	assert.Equal(t, "development", cfg.Env)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENVELOPE_ADDR", ":9999")
	t.Setenv("ENVELOPE_DATA_FILE", "/tmp/envelope.db")
	t.Setenv("ENVELOPE_STORE", "sqlite")
	t.Setenv("ENVELOPE_ENV", "production")

	cfg := Load()
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "/tmp/envelope.db", cfg.DataFile)
	assert.Equal(t, "sqlite", cfg.Store)
	assert.Equal(t, "production", cfg.Env)
}
