package draw

import (
	"fmt"

	"github.com/fadedpez/drawpoker/internal/types"
	"github.com/fadedpez/drawpoker/pkg/cards"
	"github.com/fadedpez/drawpoker/pkg/entities"
	"github.com/fadedpez/drawpoker/pkg/services/poker"
	"github.com/google/uuid"
)

// Round is the outcome of one committed round
type Round struct {
	Number    int
	Dealt     cards.Hand
	Final     cards.Hand
	Discarded cards.Discard
	Category  poker.Category
	Score     int
	Total     int
}

// Session is a single-player draw poker game. It is not safe for concurrent use;
// one goroutine owns it.
type Session struct {
	ID string

	deck      *cards.Deck
	hand      cards.Hand
	dealt     cards.Hand
	discard   cards.Discard
	selection []int
	score     int
	rounds    int
	state     entities.GameState
}

// NewSession creates an idle session with a fresh deck. A nil shuffler seeds from the clock.
func NewSession(shuffler cards.Shuffler) *Session {
	return &Session{
		ID:    uuid.New().String(),
		deck:  cards.NewDeck(shuffler),
		state: entities.StateIdle,
	}
}

// Deal shuffles the deck and deals a new hand
func (s *Session) Deal() (cards.Hand, error) {
	if s.state != entities.StateIdle {
		return nil, s.transitionError("deal")
	}

	hand, err := s.deck.Deal()
	if err != nil {
		return nil, err
	}

	s.hand = hand
	s.dealt = hand.Clone()
	s.selection = nil
	s.state = entities.StateDealt

	return hand.Clone(), nil
}

// ToggleSelect marks or unmarks the card at index for exchange. When three cards are
// already marked, the one marked first is released to make room.
func (s *Session) ToggleSelect(index int) error {
	if s.state != entities.StateDealt {
		return s.transitionError("select a card")
	}
	if index < 0 || index >= cards.HandSize {
		return types.Errorf(types.ErrIndexOutOfRange, "card position %d outside [0,%d]", index, cards.HandSize-1)
	}

	selection := make([]int, 0, cards.MaxExchange)
	for _, selected := range s.selection {
		if selected != index {
			selection = append(selection, selected)
		}
	}

	if len(selection) == len(s.selection) {
		if len(selection) == cards.MaxExchange {
			selection = selection[1:]
		}
		selection = append(selection, index)
	}

	s.selection = selection
	return nil
}

// Commit exchanges the selected cards, scores the final hand and returns every card to
// the deck. The session is unchanged if any step fails.
func (s *Session) Commit() (*Round, error) {
	if s.state != entities.StateDealt {
		return nil, s.transitionError("commit")
	}

	deck := s.deck.Clone()
	hand := s.hand.Clone()
	discard := append(cards.Discard(nil), s.discard...)

	if len(s.selection) > 0 {
		discarded, err := deck.Change(hand, s.selection)
		if err != nil {
			return nil, err
		}
		discard = append(discard, discarded...)
	}

	category, err := poker.Evaluate(hand)
	if err != nil {
		return nil, err
	}

	round := &Round{
		Number:    s.rounds + 1,
		Dealt:     s.dealt.Clone(),
		Final:     hand.Clone(),
		Discarded: append(cards.Discard(nil), discard...),
		Category:  category,
		Score:     category.Score(),
		Total:     s.score + category.Score(),
	}

	deck.Reset(&hand, &discard)

	s.deck = deck
	s.hand = nil
	s.dealt = nil
	s.discard = nil
	s.selection = nil
	s.score = round.Total
	s.rounds = round.Number
	s.state = entities.StateIdle

	return round, nil
}

// State returns the current state
func (s *Session) State() entities.GameState {
	return s.state
}

// Hand returns a copy of the current hand, nil when idle
func (s *Session) Hand() cards.Hand {
	return s.hand.Clone()
}

// Selection returns the marked positions in the order they were marked
func (s *Session) Selection() []int {
	if len(s.selection) == 0 {
		return nil
	}
	return append([]int(nil), s.selection...)
}

// IsSelected reports whether the card at index is marked for exchange
func (s *Session) IsSelected(index int) bool {
	for _, selected := range s.selection {
		if selected == index {
			return true
		}
	}
	return false
}

// Score returns the cumulative score
func (s *Session) Score() int {
	return s.score
}

// Rounds returns the number of committed rounds
func (s *Session) Rounds() int {
	return s.rounds
}

// Discard returns a copy of the discard pile
func (s *Session) Discard() cards.Discard {
	if len(s.discard) == 0 {
		return nil
	}
	return append(cards.Discard(nil), s.discard...)
}

// DeckSize returns the number of cards left in the deck
func (s *Session) DeckSize() int {
	return s.deck.Len()
}

// Audit checks that every card is accounted for and that the state fields agree
func (s *Session) Audit() error {
	if err := cards.VerifyPartition(s.deck, s.hand, s.discard); err != nil {
		return err
	}

	switch s.state {
	case entities.StateIdle:
		if s.hand != nil || len(s.selection) > 0 {
			return types.NewGameError(types.ErrInternalError, "idle session still holds a hand or selection")
		}
	case entities.StateDealt:
		if len(s.hand) != cards.HandSize {
			return types.Errorf(types.ErrInternalError, "dealt session holds %d cards", len(s.hand))
		}
	default:
		return types.Errorf(types.ErrInternalError, "unknown state %q", s.state)
	}

	if len(s.selection) > cards.MaxExchange {
		return types.Errorf(types.ErrInternalError, "%d cards selected", len(s.selection))
	}
	seen := make(map[int]bool, len(s.selection))
	for _, idx := range s.selection {
		if idx < 0 || idx >= cards.HandSize || seen[idx] {
			return types.Errorf(types.ErrInternalError, "invalid selection %v", s.selection)
		}
		seen[idx] = true
	}

	return nil
}

func (s *Session) transitionError(action string) error {
	return types.NewGameError(types.ErrInvalidStateTransition, fmt.Sprintf("cannot %s while %s", action, s.state))
}
