package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/fadedpez/drawpoker/internal/config"
	"github.com/fadedpez/drawpoker/internal/console"
	"github.com/fadedpez/drawpoker/internal/logging"
	"github.com/fadedpez/drawpoker/pkg/cards"
	"github.com/fadedpez/drawpoker/pkg/games/draw"
	"github.com/fadedpez/drawpoker/pkg/repositories/game"
	"github.com/fadedpez/drawpoker/pkg/services/statistics"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "drawpoker: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.New(os.Stderr, level, cfg.LogPretty)
	logging.Default = logger

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo := openRepository(ctx, cfg, logger)
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("Error closing history: %v", err)
		}
	}()

	session := draw.NewSession(newShuffler(cfg.ShuffleSeed))
	manager := draw.NewManager(session, repo, logger)
	logger.Info("Session %s started (%s, history in %s)", session.ID, cfg.Environment, cfg.HistoryBackend)

	controller := console.New(manager, statistics.NewService(repo), logger, os.Stdin, os.Stdout, cfg.HistoryLimit)
	if err := controller.Run(ctx); err != nil && err != context.Canceled {
		return err
	}

	logger.Info("Session %s ended with %d points over %d rounds", session.ID, session.Score(), session.Rounds())
	return nil
}

// openRepository picks the history backend. SQLite falls back to memory when it cannot start.
func openRepository(ctx context.Context, cfg *config.Config, logger *logging.Logger) game.Repository {
	if cfg.HistoryBackend != config.BackendSQLite {
		logger.Debug("Using in-memory repository for round history")
		return game.NewMemoryRepository()
	}

	repo, err := game.NewSQLiteRepository(ctx, logger)
	if err != nil {
		logger.Warn("Failed to initialize SQLite repository: %v", err)
		logger.Warn("Falling back to in-memory repository")
		return game.NewMemoryRepository()
	}

	logger.Debug("Using in-memory SQLite repository for round history")
	return repo
}

// newShuffler seeds from the clock unless a fixed seed is configured
func newShuffler(seed int64) cards.Shuffler {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(seed))
}
