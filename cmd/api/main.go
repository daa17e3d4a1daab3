package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/mertcan/coursehub/internal/pkg/logger"
	"github.com/mertcan/coursehub/internal/server"
)

// @title CourseHub API
// @version 1.0
// @description Course marketplace publishing API

// @contact.name API Support
// @contact.email support@coursehub.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	// Optional .env for local development; real deployments use the environment
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
