package statistics

import (
	"context"
	"fmt"
	"sort"

	"github.com/fadedpez/drawpoker/pkg/entities"
	"github.com/fadedpez/drawpoker/pkg/repositories/game"
	"github.com/fadedpez/drawpoker/pkg/services/poker"
)

// DefaultRecentRounds is used when a scoreboard is requested without a limit
const DefaultRecentRounds = 10

// Service provides methods for retrieving and summarising session history
type Service struct {
	repository game.Repository
}

// NewService creates a new statistics service
func NewService(repository game.Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// CategoryLine is one row of the per-category breakdown
type CategoryLine struct {
	Category string  `json:"category"`
	Points   int     `json:"points"`
	Count    int     `json:"count"`
	Rate     float64 `json:"rate"`
}

// Scoreboard summarises a session
type Scoreboard struct {
	*entities.SessionStatistics
	AverageScore float64                 `json:"average_score"`
	Categories   []*CategoryLine         `json:"categories"`
	Recent       []*entities.RoundResult `json:"recent"`
}

// GetScoreboard builds the scoreboard for a session with up to limit recent rounds, oldest first
func (s *Service) GetScoreboard(ctx context.Context, sessionID string, limit int) (*Scoreboard, error) {
	if limit < 1 {
		limit = DefaultRecentRounds
	}

	stats, err := s.repository.GetSessionStatistics(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session statistics: %w", err)
	}

	recent, err := s.repository.GetSessionRounds(ctx, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent rounds: %w", err)
	}

	return &Scoreboard{
		SessionStatistics: stats,
		AverageScore:      stats.AverageScore(),
		Categories:        categoryLines(stats),
		Recent:            recent,
	}, nil
}

// categoryLines lists every category made at least once, best first.
// Names the evaluator does not know sort last, alphabetically.
func categoryLines(stats *entities.SessionStatistics) []*CategoryLine {
	lines := make([]*CategoryLine, 0, len(stats.CategoryCounts))
	for name, count := range stats.CategoryCounts {
		if count == 0 {
			continue
		}
		points := -1
		if category, ok := poker.ParseCategory(name); ok {
			points = category.Score()
		}
		lines = append(lines, &CategoryLine{
			Category: name,
			Points:   points,
			Count:    count,
			Rate:     stats.CategoryRate(name),
		})
	}

	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Points != lines[j].Points {
			return lines[i].Points > lines[j].Points
		}
		return lines[i].Category < lines[j].Category
	})

	return lines
}
