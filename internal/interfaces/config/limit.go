// Package config
package config

import (
	"errors"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/log"
	"time"
)

type HttpServerLimit struct {
	RateLimit           int           `json:"rate_limit" toml:"rate_limit"`
	RateLimitWindow     string        `json:"rate_limit_window" toml:"rate_limit_window"`
	RateLimitDuration   time.Duration `json:"-" toml:"-"`
	PlayerNameLengthMin int           `json:"player_name_length_min" toml:"player_name_length_min"`
	PlayerNameLengthMax int           `json:"player_name_length_max" toml:"player_name_length_max"`
	SearchLengthMax     int           `json:"search_length_max" toml:"search_length_max"`
	PageSizeMax         int           `json:"page_size_max" toml:"page_size_max"`
}

func defaultHttpServerLimit() *HttpServerLimit {
	return &HttpServerLimit{
		RateLimit:           120,
		RateLimitWindow:     "1m",
		PlayerNameLengthMin: 1,
		PlayerNameLengthMax: 32,
		SearchLengthMax:     64,
		PageSizeMax:         100,
	}
}

func (config *HttpServerLimit) checkValid(_ log.LoggerInterface) *ValidResult {
	if duration, err := time.ParseDuration(config.RateLimitWindow); err != nil {
		return ValidFailWith(errors.New("invalid json field http_server.limits.rate_limit_window"), err)
	} else {
		config.RateLimitDuration = duration
	}

	if config.PlayerNameLengthMin <= 0 {
		return ValidFailField("http_server.limits.player_name_length_min", "value must larger than 0")
	}
	if config.PlayerNameLengthMax > 64 {
		return ValidFailField("http_server.limits.player_name_length_max", "value must less than 64")
	}
	if config.PlayerNameLengthMin >= config.PlayerNameLengthMax {
		return ValidFailField("http_server.limits.player_name_length_min", "value must less than http_server.limits.player_name_length_max")
	}

	if config.SearchLengthMax <= 0 {
		return ValidFailField("http_server.limits.search_length_max", "value must larger than 0")
	}

	if config.PageSizeMax <= 0 {
		return ValidFailField("http_server.limits.page_size_max", "value must larger than 0")
	}

	return ValidPass()
}
