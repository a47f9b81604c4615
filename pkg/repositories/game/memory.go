package game

import (
	"context"
	"fmt"
	"sync"

	"github.com/fadedpez/drawpoker/pkg/entities"
)

// MemoryRepository implements Repository interface with in-memory storage
type MemoryRepository struct {
	mu sync.RWMutex
	// Map of sessionID to rounds in play order
	sessionRounds map[string][]*entities.RoundResult
	// Set of round IDs already stored
	ids map[string]bool
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		sessionRounds: make(map[string][]*entities.RoundResult),
		ids:           make(map[string]bool),
	}
}

// SaveRound stores a copy of the round under its session
func (r *MemoryRepository) SaveRound(ctx context.Context, round *entities.RoundResult) error {
	if round == nil {
		return fmt.Errorf("round cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ids[round.ID] {
		return fmt.Errorf("round %s already recorded", round.ID)
	}

	r.ids[round.ID] = true
	r.sessionRounds[round.SessionID] = append(r.sessionRounds[round.SessionID], copyRound(round))
	return nil
}

// GetSessionRounds retrieves the most recent rounds of a session, oldest first
func (r *MemoryRepository) GetSessionRounds(ctx context.Context, sessionID string, limit int) ([]*entities.RoundResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rounds := r.sessionRounds[sessionID]
	if limit > 0 && len(rounds) > limit {
		rounds = rounds[len(rounds)-limit:]
	}

	out := make([]*entities.RoundResult, 0, len(rounds))
	for _, round := range rounds {
		out = append(out, copyRound(round))
	}
	return out, nil
}

// GetSessionStatistics folds every round of a session into statistics
func (r *MemoryRepository) GetSessionStatistics(ctx context.Context, sessionID string) (*entities.SessionStatistics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := entities.NewSessionStatistics(sessionID)
	for _, round := range r.sessionRounds[sessionID] {
		stats.Add(round)
	}
	return stats, nil
}

// Close is a no-op for the in-memory repository
func (r *MemoryRepository) Close() error {
	return nil
}

func copyRound(round *entities.RoundResult) *entities.RoundResult {
	c := *round
	c.DealtCards = append([]int(nil), round.DealtCards...)
	c.FinalCards = append([]int(nil), round.FinalCards...)
	c.Discarded = append([]int(nil), round.Discarded...)
	return &c
}
