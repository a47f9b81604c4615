package entities

import "time"

// RoundResult is the record of one completed round
type RoundResult struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"session_id"`
	Number      int       `json:"number"`
	DealtCards  []int     `json:"dealt_cards"`
	FinalCards  []int     `json:"final_cards"`
	Discarded   []int     `json:"discarded"`
	Category    string    `json:"category"`
	Score       int       `json:"score"`
	TotalScore  int       `json:"total_score"`
	CompletedAt time.Time `json:"completed_at"`
}

// Exchanged returns how many cards were swapped during the round
func (r *RoundResult) Exchanged() int {
	return len(r.Discarded)
}
