// Package config
package config

import (
	"errors"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/log"
	"github.com/thanhpk/randstr"
	"time"
)

// JWTConfig signs the game tokens handed out when a game is created
type JWTConfig struct {
	Secret          string        `json:"secret" toml:"secret"`
	ExpiresTime     string        `json:"expires_time" toml:"expires_time"`
	ExpiresDuration time.Duration `json:"-" toml:"-"`
}

func defaultJWTConfig() *JWTConfig {
	return &JWTConfig{
		Secret:      randstr.String(64),
		ExpiresTime: "72h",
	}
}

func (config *JWTConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if duration, err := time.ParseDuration(config.ExpiresTime); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.jwt.expires_time"), err)
	} else if duration <= 0 {
		return ValidFail(errors.New("invalid json field http_server.jwt.expires_time, value must larger than 0"))
	} else {
		config.ExpiresDuration = duration
	}

	if config.Secret == "" {
		config.Secret = randstr.String(64)
		logger.Debug("Generated a random JWT secret, game tokens will not survive a restart")
	}

	return ValidPass()
}
