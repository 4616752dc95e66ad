package main

import (
	"os"

	"github.com/communiteer/welcomehub/internal/pkg/logger" // Still needed for initial error logging
	"github.com/communiteer/welcomehub/internal/server"
)

// @title Welcome Hub API
// @version 1.0
// @description Check-in and expression of interest intake for the Welcome Hub

// @host localhost:8080
// @BasePath /
// @schemes http https

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
