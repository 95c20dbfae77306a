package base

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/half-nothing/adventurous-traveler/internal/interfaces/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuietLogger() *Logger {
	logger := NewLoggerWithOutput(&bytes.Buffer{})
	logger.Init(false)
	return logger
}

func TestReadConfigCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, result := readConfig(newQuietLogger(), path)

	assert.Nil(t, cfg)
	assert.True(t, result.IsFail())
	assert.FileExists(t, path)

	cfg, result = readConfig(newQuietLogger(), path)
	require.False(t, result.IsFail(), "%v", result.Error())
	assert.Equal(t, 10000, cfg.Game.StartMoney)
	assert.Equal(t, config.SQLite, cfg.Database.DBType)
	assert.Equal(t, "0.0.0.0:5000", cfg.Server.HttpServer.Address)
}

func TestReadConfigToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	defaults := config.DefaultConfig()
	defaults.Game.MaxFlights = 12
	defaults.Game.EventPolicy = string(config.WeightedEventPolicy)
	require.NoError(t, saveConfig(path, defaults))

	cfg, result := readConfig(newQuietLogger(), path)

	require.False(t, result.IsFail(), "%v", result.Error())
	assert.Equal(t, 12, cfg.Game.MaxFlights)
	assert.Equal(t, config.WeightedEventPolicy, cfg.Game.SelectionPolicy)
	assert.Equal(t, 5000, cfg.Game.Lootbox.Gold.Money.Max)
}

func TestReadConfigRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"config_version": "1.2.0", "game": {"event_chance": 2}}`), 0644))

	_, result := readConfig(newQuietLogger(), path)

	assert.True(t, result.IsFail())
}

func TestReadConfigRejectsVersionMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"config_version": "0.1.0"}`), 0644))

	_, result := readConfig(newQuietLogger(), path)

	require.True(t, result.IsFail())
	assert.Contains(t, result.Error().Error(), "version mismatch")
}
