package poker

import (
	"sort"

	"github.com/fadedpez/drawpoker/internal/types"
	"github.com/fadedpez/drawpoker/pkg/cards"
)

// Category is the class a five card hand falls into
type Category int

const (
	Nothing Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// aceHigh is the value an Ace takes when closing a ten-to-ace straight
const aceHigh = 14

var categoryScores = [...]int{
	Nothing:       0,
	Pair:          1,
	TwoPair:       3,
	ThreeOfAKind:  5,
	Straight:      10,
	Flush:         15,
	FullHouse:     18,
	FourOfAKind:   20,
	StraightFlush: 30,
	RoyalFlush:    40,
}

var categoryNames = [...]string{
	Nothing:       "Nothing",
	Pair:          "Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
	RoyalFlush:    "Royal Flush",
}

// Categories lists every category from worst to best
func Categories() []Category {
	return []Category{Nothing, Pair, TwoPair, ThreeOfAKind, Straight, Flush, FullHouse, FourOfAKind, StraightFlush, RoyalFlush}
}

// Score returns the points awarded for the category
func (c Category) Score() int {
	if c < Nothing || c > RoyalFlush {
		return 0
	}
	return categoryScores[c]
}

func (c Category) String() string {
	if c < Nothing || c > RoyalFlush {
		return "Unknown"
	}
	return categoryNames[c]
}

// ParseCategory maps a category name back to its value
func ParseCategory(name string) (Category, bool) {
	for _, c := range Categories() {
		if c.String() == name {
			return c, true
		}
	}
	return Nothing, false
}

// CheckHand scores a five card hand
func CheckHand(hand cards.Hand) (int, error) {
	category, err := Evaluate(hand)
	if err != nil {
		return 0, err
	}
	return category.Score(), nil
}

// Evaluate classifies a five card hand. The result does not depend on card order.
func Evaluate(hand cards.Hand) (Category, error) {
	if len(hand) != cards.HandSize {
		return Nothing, types.Errorf(types.ErrInvalidHand, "hand has %d cards, need %d", len(hand), cards.HandSize)
	}

	rankCounts := make(map[cards.Rank]int, cards.HandSize)
	suitCounts := make(map[cards.Suit]int, 4)
	codes := make(map[int]bool, cards.HandSize)
	for _, c := range hand {
		if codes[c.Code()] {
			return Nothing, types.Errorf(types.ErrInvalidHand, "card %s appears twice", c)
		}
		codes[c.Code()] = true
		rankCounts[c.Rank()]++
		suitCounts[c.Suit()]++
	}

	for _, n := range rankCounts {
		if n == 4 {
			return FourOfAKind, nil
		}
	}

	// With four of a kind ruled out, two ranks over five cards is a 3+2 split
	if len(rankCounts) == 2 {
		return FullHouse, nil
	}

	flush := len(suitCounts) == 1

	straight := false
	top := 0
	if len(rankCounts) == cards.HandSize {
		straight, top = straightTop(rankCounts)
	}

	switch {
	case flush && straight:
		if top == aceHigh {
			return RoyalFlush, nil
		}
		return StraightFlush, nil
	case flush:
		return Flush, nil
	case straight:
		return Straight, nil
	}

	pairs := 0
	for _, n := range rankCounts {
		if n == 3 {
			return ThreeOfAKind, nil
		}
		if n == 2 {
			pairs++
		}
	}

	switch pairs {
	case 1:
		return Pair, nil
	case 2:
		return TwoPair, nil
	}
	return Nothing, nil
}

// straightTop reports whether five distinct ranks run consecutively and the highest value
// of the run. An Ace is tried low first and then as 14.
func straightTop(rankCounts map[cards.Rank]int) (bool, int) {
	values := make([]int, 0, len(rankCounts))
	for r := range rankCounts {
		values = append(values, int(r))
	}
	sort.Ints(values)
	if consecutive(values) {
		return true, values[len(values)-1]
	}

	if values[0] != int(cards.Ace) {
		return false, 0
	}
	values[0] = aceHigh
	sort.Ints(values)
	if consecutive(values) {
		return true, values[len(values)-1]
	}
	return false, 0
}

func consecutive(values []int) bool {
	for i := 1; i < len(values); i++ {
		if values[i] != values[i-1]+1 {
			return false
		}
	}
	return true
}
