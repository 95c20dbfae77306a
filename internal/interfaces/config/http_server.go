// Package config
package config

import (
	"fmt"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/log"
)

type HttpServerConfig struct {
	Enabled       bool             `json:"enabled" toml:"enabled"`
	ServerAddress string           `json:"server_address" toml:"server_address"`
	Host          string           `json:"host" toml:"host"`
	Port          uint             `json:"port" toml:"port"`
	Address       string           `json:"-" toml:"-"`
	ProxyType     int              `json:"proxy_type" toml:"proxy_type"`
	BodyLimit     string           `json:"body_limit" toml:"body_limit"`
	Limits        *HttpServerLimit `json:"limits" toml:"limits"`
	JWT           *JWTConfig       `json:"jwt" toml:"jwt"`
	SSL           *SSLConfig       `json:"ssl" toml:"ssl"`
}

func defaultHttpServerConfig() *HttpServerConfig {
	return &HttpServerConfig{
		Enabled:       true,
		Host:          "0.0.0.0",
		Port:          5000,
		ServerAddress: "http://127.0.0.1:5000",
		ProxyType:     0,
		BodyLimit:     "64KB",
		Limits:        defaultHttpServerLimit(),
		JWT:           defaultJWTConfig(),
		SSL:           defaultSSLConfig(),
	}
}

func (config *HttpServerConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if !config.Enabled {
		return ValidPass()
	}
	if result := checkPort(config.Port); result.IsFail() {
		return result
	}

	config.Address = fmt.Sprintf("%s:%d", config.Host, config.Port)

	if config.BodyLimit == "" {
		logger.WarnF("body_limit is empty, where the length of the request body is not restricted. This is a very dangerous behavior")
	}

	if config.Limits == nil {
		config.Limits = defaultHttpServerLimit()
	}
	if config.JWT == nil {
		config.JWT = defaultJWTConfig()
	}
	if config.SSL == nil {
		config.SSL = defaultSSLConfig()
	}

	if result := config.SSL.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.Limits.checkValid(logger); result.IsFail() {
		return result
	}
	if result := config.JWT.checkValid(logger); result.IsFail() {
		return result
	}
	return ValidPass()
}
