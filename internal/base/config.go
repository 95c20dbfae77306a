package base

import (
	"encoding/json"
	"errors"
	. "github.com/half-nothing/adventurous-traveler/internal/interfaces/config"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/global"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/log"
	"github.com/half-nothing/adventurous-traveler/internal/utils"
	"github.com/pelletier/go-toml/v2"
	"os"
	"path/filepath"
	"strings"
)

func isToml(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func unmarshalConfig(path string, data []byte, config *Config) error {
	if isToml(path) {
		return toml.Unmarshal(data, config)
	}
	return json.Unmarshal(data, config)
}

func marshalConfig(path string, config *Config) ([]byte, error) {
	if isToml(path) {
		return toml.Marshal(config)
	}
	return json.MarshalIndent(config, "", "\t")
}

func readConfig(logger log.LoggerInterface, path string) (*Config, *ValidResult) {
	config := DefaultConfig()

	if bytes, err := os.ReadFile(path); err != nil {
		if err := saveConfig(path, config); err != nil {
			return nil, ValidFailWith(errors.New("fail to save configuration file while creating configuration file"), err)
		}
		return nil, ValidFail(errors.New("the configuration file does not exist and has been created. Please try again after editing the configuration file"))
	} else if err := unmarshalConfig(path, bytes, config); err != nil {
		return nil, ValidFailWith(errors.New("the configuration file could not be parsed"), err)
	} else if result := config.CheckValid(logger); result.IsFail() {
		return nil, result
	}
	return config, ValidPass()
}

func saveConfig(path string, config *Config) error {
	data, err := marshalConfig(path, config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, global.DefaultFilePermissions)
}

type Manager struct {
	path   string
	config *utils.CachedValue[Config]
	logger log.LoggerInterface
}

func NewManager(logger log.LoggerInterface) *Manager {
	return NewManagerWithPath(logger, *global.ConfigFilePath)
}

func NewManagerWithPath(logger log.LoggerInterface, path string) *Manager {
	manager := &Manager{
		path:   path,
		logger: logger,
	}
	manager.config = utils.NewCachedValue(0, manager.getConfig)
	return manager
}

func (manager *Manager) getConfig() *Config {
	if config, result := readConfig(manager.logger, manager.path); result.IsFail() {
		manager.logger.Fatal(result.Error().Error())
		panic(result.Error())
	} else {
		return config
	}
}

func (manager *Manager) Config() *Config {
	return manager.config.GetValue()
}

func (manager *Manager) SaveConfig() error {
	return saveConfig(manager.path, manager.Config())
}
