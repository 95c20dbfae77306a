// Package config
package config

import (
	"errors"
	"fmt"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/log"
)

type Config struct {
	ConfigVersion string          `json:"config_version" toml:"config_version"`
	Server        *ServerConfig   `json:"server" toml:"server"`
	Database      *DatabaseConfig `json:"database" toml:"database"`
	Game          *GameConfig     `json:"game" toml:"game"`
}

func DefaultConfig() *Config {
	return &Config{
		ConfigVersion: ConfVersion.String(),
		Server:        defaultServerConfig(),
		Database:      defaultDatabaseConfig(),
		Game:          DefaultGameConfig(),
	}
}

func (c *Config) CheckValid(logger log.LoggerInterface) *ValidResult {
	if version, err := newVersion(c.ConfigVersion); err != nil {
		return ValidFailWith(errors.New("version string parse fail"), err)
	} else if result := ConfVersion.checkVersion(version); result != AllMatch {
		return ValidFail(fmt.Errorf("config version mismatch, expected %s, got %s", ConfVersion.String(), version.String()))
	}
	if c.Server == nil || c.Database == nil || c.Game == nil {
		return ValidFail(errors.New("configuration file is missing one of the server, database or game sections"))
	}
	if result := c.Database.checkValid(logger); result.IsFail() {
		return result
	}
	if result := c.Server.checkValid(logger); result.IsFail() {
		return result
	}
	if result := c.Game.CheckValid(logger); result.IsFail() {
		return result
	}
	return ValidPass()
}
