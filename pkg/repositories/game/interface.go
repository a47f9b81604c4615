package game

import (
	"context"

	"github.com/fadedpez/drawpoker/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_game

// Repository defines storage operations for the round history of a process
type Repository interface {
	// SaveRound records a completed round. Round IDs are unique.
	SaveRound(ctx context.Context, round *entities.RoundResult) error

	// GetSessionRounds returns the most recent rounds of a session, oldest first.
	// A limit of zero or less returns every round.
	GetSessionRounds(ctx context.Context, sessionID string, limit int) ([]*entities.RoundResult, error)

	// GetSessionStatistics aggregates every round of a session
	GetSessionStatistics(ctx context.Context, sessionID string) (*entities.SessionStatistics, error)

	// Close closes any resources used by the repository
	Close() error
}
