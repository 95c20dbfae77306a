// Package interfaces
package interfaces

import (
	. "github.com/half-nothing/adventurous-traveler/internal/interfaces/config"
)

type ConfigManagerInterface interface {
	Config() *Config
	SaveConfig() error
}
