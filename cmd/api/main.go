package main

import (
	"context"
	"os"

	"github.com/yigit/registrar/internal/pkg/logger" // Still needed for initial error logging
	"github.com/yigit/registrar/internal/server"
)

// @title Registrar API
// @version 1.0
// @description API for managing course types, courses, course offerings and student registrations

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	configPath := os.Getenv("REGISTRAR_CONFIG")

	srv, err := server.NewServer(context.Background(), configPath)
	if err != nil {
		// Use the default logger setup by the logger package's init
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
