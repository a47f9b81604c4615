package draw

import (
	"context"
	"time"

	"github.com/fadedpez/drawpoker/internal/logging"
	"github.com/fadedpez/drawpoker/internal/types"
	"github.com/fadedpez/drawpoker/pkg/cards"
	"github.com/fadedpez/drawpoker/pkg/entities"
	"github.com/fadedpez/drawpoker/pkg/repositories/game"
	"github.com/oklog/ulid/v2"
)

// Manager drives a session and records every committed round
type Manager struct {
	session *Session
	repo    game.Repository
	logger  *logging.Logger
	now     func() time.Time
}

// NewManager creates a manager for the session
func NewManager(session *Session, repo game.Repository, logger *logging.Logger) *Manager {
	if session == nil {
		panic("session cannot be nil")
	}
	if repo == nil {
		panic("repository cannot be nil")
	}
	if logger == nil {
		logger = logging.Default
	}
	return &Manager{
		session: session,
		repo:    repo,
		logger:  logger.With("session", session.ID),
		now:     time.Now,
	}
}

// Session returns the managed session for read access
func (m *Manager) Session() *Session {
	return m.session
}

// Deal starts a new round
func (m *Manager) Deal() (cards.Hand, error) {
	hand, err := m.session.Deal()
	if err != nil {
		m.logger.Debug("Deal rejected: %v", err)
		return nil, err
	}

	m.logger.Debug("Dealt %s, %d cards left in deck", hand, m.session.DeckSize())
	return hand, nil
}

// Toggle marks or unmarks a card and returns the resulting selection
func (m *Manager) Toggle(index int) ([]int, error) {
	if err := m.session.ToggleSelect(index); err != nil {
		m.logger.Debug("Toggle of position %d rejected: %v", index, err)
		return nil, err
	}
	return m.session.Selection(), nil
}

// Commit finishes the round and records it. When recording fails the round still
// stands and is returned together with a DATABASE_ERROR.
func (m *Manager) Commit(ctx context.Context) (*Round, error) {
	round, err := m.session.Commit()
	if err != nil {
		m.logger.Debug("Commit rejected: %v", err)
		return nil, err
	}

	m.logger.Info("Round %d: %s for %d points, total %d", round.Number, round.Category, round.Score, round.Total)

	if err := m.session.Audit(); err != nil {
		m.logger.LogError(err)
	}

	result := NewRoundResult(m.session.ID, round, m.now())
	if err := m.repo.SaveRound(ctx, result); err != nil {
		wrapped := types.WrapError(types.ErrDatabaseError, "failed to record round", err)
		m.logger.LogError(wrapped)
		return round, wrapped
	}

	return round, nil
}

// NewRoundResult converts a committed round into its history record
func NewRoundResult(sessionID string, round *Round, completedAt time.Time) *entities.RoundResult {
	return &entities.RoundResult{
		ID:          ulid.MustNew(ulid.Timestamp(completedAt), ulid.DefaultEntropy()).String(),
		SessionID:   sessionID,
		Number:      round.Number,
		DealtCards:  round.Dealt.Codes(),
		FinalCards:  round.Final.Codes(),
		Discarded:   append([]int(nil), round.Discarded...),
		Category:    round.Category.String(),
		Score:       round.Score,
		TotalScore:  round.Total,
		CompletedAt: completedAt,
	}
}
