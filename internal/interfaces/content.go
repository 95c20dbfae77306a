// Package interfaces
package interfaces

import (
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/game"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/log"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/operation"
)

type ApplicationContent struct {
	configManager ConfigManagerInterface
	cleaner       CleanerInterface
	logger        log.LoggerInterface
	operations    *operation.DatabaseOperations
	engine        game.EngineInterface
}

func NewApplicationContent(
	configManager ConfigManagerInterface,
	cleaner CleanerInterface,
	logger log.LoggerInterface,
	db *operation.DatabaseOperations,
	engine game.EngineInterface,
) *ApplicationContent {
	return &ApplicationContent{
		configManager: configManager,
		cleaner:       cleaner,
		logger:        logger,
		operations:    db,
		engine:        engine,
	}
}

func (app *ApplicationContent) ConfigManager() ConfigManagerInterface {
	return app.configManager
}

func (app *ApplicationContent) Cleaner() CleanerInterface { return app.cleaner }

func (app *ApplicationContent) Logger() log.LoggerInterface { return app.logger }

func (app *ApplicationContent) Operations() *operation.DatabaseOperations { return app.operations }

func (app *ApplicationContent) Engine() game.EngineInterface { return app.engine }
