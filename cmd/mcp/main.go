package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/interprep/internal/mcpadapter"
	"github.com/povarna/generative-ai-agents/interprep/internal/setup"
	applog "github.com/povarna/generative-ai-agents/interprep/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load env
	_ = godotenv.Load()

	// Load Config
	cfg := setup.LoadConfig()

	// stdout carries the protocol, logs must stay on stderr
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = applog.New(cfg.LogLevel, "console")
	logger := log.Logger

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Wire dependencies
	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		logger.Error().Err(err).Msg("Unable to load dependencies")
		os.Exit(1)
	}

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "interprep",
			Version: "1.0.0",
		}, nil,
	)
	mcpadapter.Register(server, deps.Executor, deps.Lessons, deps.Catalog)

	// Run over stdio
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		// EOF / "server is closing" is expected when stdin closes
		if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "server is closing") {
			logger.Debug().Err(err).Msg("MCP server stopped")
			return
		}
		logger.Error().Err(err).Msg("Failed to run mcp server")
		os.Exit(1)
	}
}
