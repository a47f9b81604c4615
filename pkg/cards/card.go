package cards

import (
	"strconv"
	"strings"

	"github.com/fadedpez/drawpoker/internal/types"
)

const (
	// MinCode and MaxCode bound the integer codes of the 52-card universe
	MinCode = 1
	MaxCode = 52

	// DeckSize is the number of cards in a full deck
	DeckSize = MaxCode

	// HandSize is the number of cards in a dealt hand
	HandSize = 5

	// MaxExchange is the most cards a player may exchange in one round
	MaxExchange = 3

	ranksPerSuit = 13
)

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

var suitNames = [...]string{"Spades", "Hearts", "Diamonds", "Clubs"}
var suitSymbols = [...]string{"♠", "♥", "♦", "♣"}

// String returns the suit name
func (s Suit) String() string {
	if s < Spades || s > Clubs {
		return "Suit(" + strconv.Itoa(int(s)) + ")"
	}
	return suitNames[s]
}

// Symbol returns the suit symbol
func (s Suit) Symbol() string {
	if s < Spades || s > Clubs {
		return "?"
	}
	return suitSymbols[s]
}

// IsRed reports whether the suit is printed in red
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank, 1 (Ace) through 13 (King)
type Rank int

const (
	Ace   Rank = 1
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

var rankNames = [...]string{"", "Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

// String returns the short rank label (A, 2-10, J, Q, K)
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return strconv.Itoa(int(r))
}

// Name returns the spelled out rank
func (r Rank) Name() string {
	if r < Ace || r > King {
		return r.String()
	}
	return rankNames[r]
}

// Card represents a playing card. It is derived from, and remembers, an integer code in [1,52].
type Card struct {
	code int
	suit Suit
	rank Rank
}

// NewCard creates the card for a code in [1,52]
func NewCard(code int) (Card, error) {
	if code < MinCode || code > MaxCode {
		return Card{}, types.Errorf(types.ErrInvalidCardCode, "card code %d outside [%d,%d]", code, MinCode, MaxCode)
	}

	rank := Rank(code % ranksPerSuit)
	if rank == 0 {
		rank = King
	}

	return Card{
		code: code,
		suit: Suit((code - 1) / ranksPerSuit),
		rank: rank,
	}, nil
}

// Code returns the integer code the card was built from
func (c Card) Code() int {
	return c.code
}

// Suit returns the card suit
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the card rank
func (c Card) Rank() Rank {
	return c.rank
}

// String returns a short representation of the card, e.g. "10♥"
func (c Card) String() string {
	return c.rank.String() + c.suit.Symbol()
}

// Name returns the long representation of the card, e.g. "Queen of Clubs"
func (c Card) Name() string {
	return c.rank.Name() + " of " + c.suit.String()
}

// Hand is the ordered set of cards held by the player
type Hand []Card

// NewHand builds a hand from card codes
func NewHand(codes ...int) (Hand, error) {
	hand := make(Hand, 0, len(codes))
	for _, code := range codes {
		card, err := NewCard(code)
		if err != nil {
			return nil, err
		}
		hand = append(hand, card)
	}
	return hand, nil
}

// Codes returns the codes of the cards in hand order
func (h Hand) Codes() []int {
	codes := make([]int, len(h))
	for i, c := range h {
		codes[i] = c.code
	}
	return codes
}

// Clone returns a copy of the hand that shares no storage with h
func (h Hand) Clone() Hand {
	if h == nil {
		return nil
	}
	out := make(Hand, len(h))
	copy(out, h)
	return out
}

func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
