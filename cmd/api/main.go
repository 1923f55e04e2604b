package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/bekzod/unilib/internal/pkg/logger"
	"github.com/bekzod/unilib/internal/server"
)

// @title UniLib API
// @version 1.0
// @description Administration backend for university library catalogs

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// .env is optional; real deployments set environment variables.
	_ = godotenv.Load()

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
