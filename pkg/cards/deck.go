package cards

import (
	"math/rand"
	"time"

	"github.com/fadedpez/drawpoker/internal/types"
)

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Discard is the pile of codes removed from the hand during the current round
type Discard []int

// Deck is the draw pile. The top of the deck is the end of the code slice.
type Deck struct {
	codes    []int
	shuffler Shuffler
}

// GenerateDeck creates a fresh deck holding the codes 1..52 in ascending order
func GenerateDeck() *Deck {
	return NewDeck(nil)
}

// NewDeck creates a fresh deck that shuffles with the given source.
// A nil shuffler falls back to a generator seeded from the clock.
func NewDeck(shuffler Shuffler) *Deck {
	if shuffler == nil {
		shuffler = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	codes := make([]int, 0, DeckSize)
	for code := MinCode; code <= MaxCode; code++ {
		codes = append(codes, code)
	}

	return &Deck{codes: codes, shuffler: shuffler}
}

// Len returns the number of codes left in the deck
func (d *Deck) Len() int {
	return len(d.codes)
}

// Codes returns a copy of the deck, bottom first
func (d *Deck) Codes() []int {
	out := make([]int, len(d.codes))
	copy(out, d.codes)
	return out
}

// Clone returns an independent copy of the deck sharing the same shuffler
func (d *Deck) Clone() *Deck {
	return &Deck{codes: d.Codes(), shuffler: d.shuffler}
}

// Shuffle permutes the whole deck
func (d *Deck) Shuffle() {
	d.shuffler.Shuffle(len(d.codes), func(i, j int) {
		d.codes[i], d.codes[j] = d.codes[j], d.codes[i]
	})
}

// Deal shuffles the deck and pops the top five codes into a new hand
func (d *Deck) Deal() (Hand, error) {
	if len(d.codes) < HandSize {
		return nil, types.Errorf(types.ErrDeckExhausted, "deck has %d cards, need %d to deal", len(d.codes), HandSize)
	}

	d.Shuffle()

	hand := make(Hand, 0, HandSize)
	for i := 1; i <= HandSize; i++ {
		card, err := NewCard(d.codes[len(d.codes)-i])
		if err != nil {
			return nil, err
		}
		hand = append(hand, card)
	}

	d.codes = d.codes[:len(d.codes)-HandSize]
	return hand, nil
}

// Change exchanges the cards at the given hand positions for cards popped off the deck.
// Each old card's code goes to the returned discard list and the new card takes the same
// position, so indices never shift. Nothing is modified unless every check passes.
func (d *Deck) Change(hand Hand, indices []int) (Discard, error) {
	if len(hand) != HandSize {
		return nil, types.Errorf(types.ErrInvalidHand, "hand has %d cards, need %d", len(hand), HandSize)
	}
	if len(indices) > MaxExchange {
		return nil, types.Errorf(types.ErrIndexOutOfRange, "cannot exchange %d cards, at most %d", len(indices), MaxExchange)
	}

	seen := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= HandSize {
			return nil, types.Errorf(types.ErrIndexOutOfRange, "index %d outside [0,%d]", idx, HandSize-1)
		}
		if seen[idx] {
			return nil, types.Errorf(types.ErrIndexOutOfRange, "index %d requested twice", idx)
		}
		seen[idx] = true
	}

	if len(d.codes) < len(indices) {
		return nil, types.Errorf(types.ErrDeckExhausted, "deck has %d cards, need %d to exchange", len(d.codes), len(indices))
	}

	drawn := make([]Card, len(indices))
	for i := range indices {
		card, err := NewCard(d.codes[len(d.codes)-1-i])
		if err != nil {
			return nil, err
		}
		drawn[i] = card
	}

	discarded := make(Discard, 0, len(indices))
	for i, idx := range indices {
		discarded = append(discarded, hand[idx].code)
		hand[idx] = drawn[i]
	}
	d.codes = d.codes[:len(d.codes)-len(indices)]

	return discarded, nil
}

// Reset puts the discard pile and then the hand back on the deck and clears both
func (d *Deck) Reset(hand *Hand, discard *Discard) {
	if discard != nil {
		d.codes = append(d.codes, (*discard)...)
		*discard = nil
	}
	if hand != nil {
		for _, c := range *hand {
			d.codes = append(d.codes, c.code)
		}
		*hand = nil
	}
}

// VerifyPartition checks that deck, hand and discard together hold every code in [1,52] exactly once
func VerifyPartition(deck *Deck, hand Hand, discard Discard) error {
	var seen [MaxCode + 1]bool
	count := 0

	mark := func(where string, code int) error {
		if code < MinCode || code > MaxCode {
			return types.Errorf(types.ErrInternalError, "%s holds invalid code %d", where, code)
		}
		if seen[code] {
			return types.Errorf(types.ErrInternalError, "code %d appears twice (again in %s)", code, where)
		}
		seen[code] = true
		count++
		return nil
	}

	if deck != nil {
		for _, code := range deck.codes {
			if err := mark("deck", code); err != nil {
				return err
			}
		}
	}
	for _, c := range hand {
		if err := mark("hand", c.code); err != nil {
			return err
		}
	}
	for _, code := range discard {
		if err := mark("discard", code); err != nil {
			return err
		}
	}

	if count != DeckSize {
		return types.Errorf(types.ErrInternalError, "partition holds %d cards, want %d", count, DeckSize)
	}
	return nil
}
