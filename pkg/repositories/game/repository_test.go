package game

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/fadedpez/drawpoker/internal/logging"
	"github.com/fadedpez/drawpoker/pkg/entities"
	"github.com/stretchr/testify/suite"
)

// RepositorySuite runs the same behaviour checks against every backend
type RepositorySuite struct {
	suite.Suite
	newRepo func() Repository
	repo    Repository
	ctx     context.Context
	start   time.Time
}

func (s *RepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = s.newRepo()
	s.start = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
}

func (s *RepositorySuite) TearDownTest() {
	s.NoError(s.repo.Close())
}

func TestMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositorySuite{
		newRepo: func() Repository { return NewMemoryRepository() },
	})
}

func TestSQLiteRepositorySuite(t *testing.T) {
	logger := logging.New(io.Discard, logging.ERROR, false)
	suite.Run(t, &RepositorySuite{
		newRepo: func() Repository {
			repo, err := NewSQLiteRepository(context.Background(), logger)
			if err != nil {
				t.Fatalf("NewSQLiteRepository() error = %v", err)
			}
			return repo
		},
	})
}

func (s *RepositorySuite) round(sessionID string, number int, category string, score int, discarded ...int) *entities.RoundResult {
	return &entities.RoundResult{
		ID:          fmt.Sprintf("%s-%03d", sessionID, number),
		SessionID:   sessionID,
		Number:      number,
		DealtCards:  []int{1, 2, 3, 4, 5},
		FinalCards:  []int{1, 2, 3, 4, 6},
		Discarded:   discarded,
		Category:    category,
		Score:       score,
		TotalScore:  score * number,
		CompletedAt: s.start.Add(time.Duration(number) * time.Minute),
	}
}

func (s *RepositorySuite) TestSaveAndGetRounds() {
	saved := s.round("alpha", 1, "Pair", 1, 5)
	s.Require().NoError(s.repo.SaveRound(s.ctx, saved))

	rounds, err := s.repo.GetSessionRounds(s.ctx, "alpha", 0)
	s.Require().NoError(err)
	s.Require().Len(rounds, 1)

	got := rounds[0]
	s.Equal(saved.ID, got.ID)
	s.Equal("alpha", got.SessionID)
	s.Equal(1, got.Number)
	s.Equal([]int{1, 2, 3, 4, 5}, got.DealtCards)
	s.Equal([]int{1, 2, 3, 4, 6}, got.FinalCards)
	s.Equal([]int{5}, got.Discarded)
	s.Equal("Pair", got.Category)
	s.Equal(1, got.Score)
	s.Equal(1, got.TotalScore)
	s.True(saved.CompletedAt.Equal(got.CompletedAt), "completed at %v, want %v", got.CompletedAt, saved.CompletedAt)
}

func (s *RepositorySuite) TestRoundWithoutExchange() {
	s.Require().NoError(s.repo.SaveRound(s.ctx, s.round("alpha", 1, "Flush", 15)))

	rounds, err := s.repo.GetSessionRounds(s.ctx, "alpha", 0)
	s.Require().NoError(err)
	s.Require().Len(rounds, 1)
	s.Empty(rounds[0].Discarded)
}

func (s *RepositorySuite) TestGetRoundsLimitKeepsMostRecentOldestFirst() {
	for n := 1; n <= 5; n++ {
		s.Require().NoError(s.repo.SaveRound(s.ctx, s.round("alpha", n, "Nothing", 0)))
	}
	s.Require().NoError(s.repo.SaveRound(s.ctx, s.round("beta", 1, "Pair", 1)))

	tests := []struct {
		name  string
		limit int
		want  []int
	}{
		{name: "no limit", limit: 0, want: []int{1, 2, 3, 4, 5}},
		{name: "negative limit", limit: -3, want: []int{1, 2, 3, 4, 5}},
		{name: "last three", limit: 3, want: []int{3, 4, 5}},
		{name: "limit above count", limit: 10, want: []int{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rounds, err := s.repo.GetSessionRounds(s.ctx, "alpha", tt.limit)
			s.Require().NoError(err)

			var numbers []int
			for _, r := range rounds {
				s.Equal("alpha", r.SessionID)
				numbers = append(numbers, r.Number)
			}
			s.Equal(tt.want, numbers)
		})
	}
}

func (s *RepositorySuite) TestUnknownSession() {
	rounds, err := s.repo.GetSessionRounds(s.ctx, "nobody", 5)
	s.Require().NoError(err)
	s.Empty(rounds)

	stats, err := s.repo.GetSessionStatistics(s.ctx, "nobody")
	s.Require().NoError(err)
	s.Equal("nobody", stats.SessionID)
	s.Zero(stats.RoundsPlayed)
	s.Zero(stats.TotalScore)
	s.Empty(stats.BestCategory)
	s.Empty(stats.CategoryCounts)
}

func (s *RepositorySuite) TestDuplicateRoundRejected() {
	round := s.round("alpha", 1, "Pair", 1)
	s.Require().NoError(s.repo.SaveRound(s.ctx, round))
	s.Error(s.repo.SaveRound(s.ctx, round))

	rounds, err := s.repo.GetSessionRounds(s.ctx, "alpha", 0)
	s.Require().NoError(err)
	s.Len(rounds, 1)
}

func (s *RepositorySuite) TestNilRoundRejected() {
	s.Error(s.repo.SaveRound(s.ctx, nil))
}

func (s *RepositorySuite) TestStoredRoundIsIsolated() {
	round := s.round("alpha", 1, "Pair", 1, 7)
	s.Require().NoError(s.repo.SaveRound(s.ctx, round))
	round.Discarded[0] = 99
	round.Category = "Changed"

	rounds, err := s.repo.GetSessionRounds(s.ctx, "alpha", 0)
	s.Require().NoError(err)
	s.Equal([]int{7}, rounds[0].Discarded)
	s.Equal("Pair", rounds[0].Category)
}

func (s *RepositorySuite) TestSessionStatistics() {
	s.Require().NoError(s.repo.SaveRound(s.ctx, s.round("alpha", 1, "Nothing", 0, 1, 2, 3)))
	s.Require().NoError(s.repo.SaveRound(s.ctx, s.round("alpha", 2, "Pair", 1, 4)))
	s.Require().NoError(s.repo.SaveRound(s.ctx, s.round("alpha", 3, "Full House", 18)))
	s.Require().NoError(s.repo.SaveRound(s.ctx, s.round("alpha", 4, "Pair", 1, 8, 9)))
	s.Require().NoError(s.repo.SaveRound(s.ctx, s.round("beta", 1, "Royal Flush", 40)))

	stats, err := s.repo.GetSessionStatistics(s.ctx, "alpha")
	s.Require().NoError(err)

	s.Equal("alpha", stats.SessionID)
	s.Equal(4, stats.RoundsPlayed)
	s.Equal(20, stats.TotalScore)
	s.Equal(18, stats.BestScore)
	s.Equal("Full House", stats.BestCategory)
	s.Equal(6, stats.CardsExchanged)
	s.Equal(map[string]int{"Nothing": 1, "Pair": 2, "Full House": 1}, stats.CategoryCounts)
	s.True(s.start.Add(4*time.Minute).Equal(stats.LastUpdated), "last updated %v", stats.LastUpdated)
	s.InDelta(5.0, stats.AverageScore(), 0.0001)
}

func (s *RepositorySuite) TestBestCategoryTieKeepsEarliest() {
	s.Require().NoError(s.repo.SaveRound(s.ctx, s.round("alpha", 1, "Nothing", 0)))
	s.Require().NoError(s.repo.SaveRound(s.ctx, s.round("alpha", 2, "Nothing", 0)))

	stats, err := s.repo.GetSessionStatistics(s.ctx, "alpha")
	s.Require().NoError(err)
	s.Equal("Nothing", stats.BestCategory)
	s.Equal(0, stats.BestScore)
}
