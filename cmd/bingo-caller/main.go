package main

import (
	"os"

	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/api"
	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/config"
	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/constants"
	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/logging"
	"github.com/JoseAlvarezDev/alexa-skill-virtual-bingo/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Local development convenience; absence of a .env file is fine.
	_ = godotenv.Load()

	// Tuning file is optional. Path may be provided via BINGO_CONFIG or
	// defaults to ./bingo_config.json in the current working directory.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = constants.DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if os.IsNotExist(err) {
		logging.Warn("no config file found, using defaults", logging.Fields{constants.LogFieldConfigPath: configPath})
		cfg = config.Default()
	} else if err != nil {
		logging.Fatal("Invalid bingo configuration", err, logging.Fields{constants.LogFieldConfigPath: configPath, "hint": "provide a bingo_config.json with optional 'server.address' and 'caller' keys (batch_size, ambient_chance, checkpoint_every, pacing)"})
	}

	// Allow the DB path to be configured via BINGO_DB. Default to a
	// `data/` directory inside the module for local development.
	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = constants.DefaultDBPath
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}

	repo := storage.NewSQLiteRepository(db)
	handler := api.NewCallerHandler(repo, cfg.Batch)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, api.Version)
		apiRoutes.POST(constants.RouteSessions, handler.StartGame)
		apiRoutes.POST(constants.RouteSessionContinue, handler.ContinueGame)
		apiRoutes.POST(constants.RouteSessionPause, handler.PauseGame)
		apiRoutes.POST(constants.RouteSessionStop, handler.StopGame)
		apiRoutes.GET(constants.RouteSessionStats, handler.GetStats)
		apiRoutes.GET(constants.RouteSessionNumbers, handler.GetCalledNumbers)
		apiRoutes.POST(constants.RouteSessionVerify, handler.VerifyCard)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
