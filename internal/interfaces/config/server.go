// Package config
package config

import "github.com/half-nothing/adventurous-traveler/internal/interfaces/log"

type ServerConfig struct {
	HttpServer *HttpServerConfig `json:"http_server" toml:"http_server"`
}

func defaultServerConfig() *ServerConfig {
	return &ServerConfig{
		HttpServer: defaultHttpServerConfig(),
	}
}

func (config *ServerConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	if config.HttpServer == nil {
		config.HttpServer = defaultHttpServerConfig()
	}
	return config.HttpServer.checkValid(logger)
}
