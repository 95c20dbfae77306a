package main

import (
	"flag"
	"fmt"
	"github.com/half-nothing/adventurous-traveler/internal/base"
	"github.com/half-nothing/adventurous-traveler/internal/database"
	"github.com/half-nothing/adventurous-traveler/internal/game"
	"github.com/half-nothing/adventurous-traveler/internal/http_server"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces"
	"github.com/half-nothing/adventurous-traveler/internal/interfaces/global"
)

func recoverFromError() {
	if r := recover(); r != nil {
		fmt.Printf("It looks like there are some serious errors, the details are as follows: %v", r)
	}
}

func main() {
	flag.Parse()

	defer recoverFromError()

	logger := base.NewLogger()
	logger.Init(*global.DebugMode)

	logger.InfoF("Adventurous Traveler %s initializing...", global.AppVersion)

	cleaner := base.NewCleaner(logger)
	cleaner.Init()
	defer cleaner.Clean()

	configManager := base.NewManager(logger)
	config := configManager.Config()

	shutdownCallback, databaseOperation, err := database.ConnectDatabase(logger, config, *global.DebugMode)
	if err != nil {
		logger.FatalF("Error occurred while initializing database, details: %v", err)
		return
	}

	cleaner.Add(shutdownCallback)

	seed, err := database.LoadSeedData(logger, config.Game)
	if err != nil {
		logger.FatalF("Error occurred while loading seed data, details: %v", err)
		return
	}
	if seeded, err := databaseOperation.ReferenceOperation().SeedReferenceData(seed); err != nil {
		logger.FatalF("Error occurred while seeding reference data, details: %v", err)
		return
	} else if seeded {
		logger.InfoF("Reference data seeded: %d airports, %d artifacts, %d shop items, %d event types",
			len(seed.Airports), len(seed.Artifacts), len(seed.ShopItems), len(seed.EventTypes))
	}

	engine := game.NewStateMachine(logger, config.Game, databaseOperation.GameOperation(), game.NewSystemRandom())

	applicationContent := interfaces.NewApplicationContent(configManager, cleaner, logger, databaseOperation, engine)

	if !config.Server.HttpServer.Enabled {
		logger.Warn("Http server is disabled, nothing to serve")
		return
	}

	http_server.StartHttpServer(applicationContent)
}
