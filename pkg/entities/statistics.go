package entities

import "time"

// SessionStatistics represents aggregated results for one session
type SessionStatistics struct {
	SessionID      string
	RoundsPlayed   int
	TotalScore     int
	BestScore      int
	BestCategory   string
	CardsExchanged int
	CategoryCounts map[string]int
	LastUpdated    time.Time
}

// NewSessionStatistics creates empty statistics for a session
func NewSessionStatistics(sessionID string) *SessionStatistics {
	return &SessionStatistics{
		SessionID:      sessionID,
		CategoryCounts: make(map[string]int),
	}
}

// Add folds a round into the statistics. Rounds are expected in play order.
func (s *SessionStatistics) Add(r *RoundResult) {
	if s.CategoryCounts == nil {
		s.CategoryCounts = make(map[string]int)
	}

	if s.RoundsPlayed == 0 || r.Score > s.BestScore {
		s.BestScore = r.Score
		s.BestCategory = r.Category
	}
	s.RoundsPlayed++
	s.TotalScore += r.Score
	s.CardsExchanged += r.Exchanged()
	s.CategoryCounts[r.Category]++
	if r.CompletedAt.After(s.LastUpdated) {
		s.LastUpdated = r.CompletedAt
	}
}

// AverageScore calculates the mean score per round
func (s *SessionStatistics) AverageScore() float64 {
	if s.RoundsPlayed == 0 {
		return 0.0
	}
	return float64(s.TotalScore) / float64(s.RoundsPlayed)
}

// CategoryRate calculates how often a category was made as a percentage of rounds
func (s *SessionStatistics) CategoryRate(category string) float64 {
	if s.RoundsPlayed == 0 {
		return 0.0
	}
	return float64(s.CategoryCounts[category]) / float64(s.RoundsPlayed) * 100.0
}
