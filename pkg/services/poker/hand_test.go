package poker

import (
	"testing"

	"github.com/fadedpez/drawpoker/internal/types"
	"github.com/fadedpez/drawpoker/pkg/cards"
	"github.com/stretchr/testify/suite"
)

type HandTestSuite struct {
	suite.Suite
}

func TestHandSuite(t *testing.T) {
	suite.Run(t, new(HandTestSuite))
}

func (s *HandTestSuite) hand(codes ...int) cards.Hand {
	hand, err := cards.NewHand(codes...)
	s.Require().NoError(err)
	return hand
}

func (s *HandTestSuite) TestCheckHand() {
	testCases := []struct {
		name     string
		codes    []int
		expected Category
		score    int
	}{
		{name: "nothing", codes: []int{10, 8, 42, 17, 26}, expected: Nothing, score: 0},
		{name: "pair of aces", codes: []int{1, 4, 18, 14, 45}, expected: Pair, score: 1},
		{name: "two pair kings and queens", codes: []int{13, 51, 25, 26, 2}, expected: TwoPair, score: 3},
		{name: "three fives", codes: []int{5, 25, 31, 47, 44}, expected: ThreeOfAKind, score: 5},
		{name: "ace low straight", codes: []int{1, 43, 15, 44, 29}, expected: Straight, score: 10},
		{name: "flush of spades", codes: []int{1, 2, 5, 10, 13}, expected: Flush, score: 15},
		{name: "full house aces over fives", codes: []int{5, 14, 1, 27, 44}, expected: FullHouse, score: 18},
		{name: "four jacks", codes: []int{11, 24, 37, 4, 50}, expected: FourOfAKind, score: 20},
		{name: "straight flush hearts three to seven", codes: []int{16, 17, 18, 19, 20}, expected: StraightFlush, score: 30},
		{name: "royal flush clubs", codes: []int{40, 49, 50, 51, 52}, expected: RoyalFlush, score: 40},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			hand := s.hand(tc.codes...)

			category, err := Evaluate(hand)
			s.Require().NoError(err)
			s.Equal(tc.expected, category)

			score, err := CheckHand(hand)
			s.Require().NoError(err)
			s.Equal(tc.score, score)
		})
	}
}

func (s *HandTestSuite) TestStraights() {
	testCases := []struct {
		name     string
		codes    []int
		expected Category
	}{
		{name: "ten to ace", codes: []int{1, 24, 23, 26, 25}, expected: Straight},
		{name: "ace low straight flush", codes: []int{3, 1, 5, 2, 4}, expected: StraightFlush},
		{name: "ace high mixed suits is not royal", codes: []int{52, 51, 49, 27, 50}, expected: Straight},
		{name: "no wrap around the ace", codes: []int{15, 14, 12, 11, 13}, expected: Nothing},
		{name: "gap in the run", codes: []int{2, 16, 30, 44, 7}, expected: Nothing},
		{name: "pair blocks straight", codes: []int{2, 3, 4, 5, 18}, expected: Pair},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			category, err := Evaluate(s.hand(tc.codes...))
			s.Require().NoError(err)
			s.Equal(tc.expected, category)
		})
	}
}

func (s *HandTestSuite) TestFourOfAKindIsNotFullHouse() {
	category, err := Evaluate(s.hand(44, 40, 14, 1, 27))
	s.Require().NoError(err)
	s.Equal(FourOfAKind, category)
}

func (s *HandTestSuite) TestPermutationInvariant() {
	hands := [][]int{
		{10, 8, 42, 17, 26},
		{13, 51, 25, 26, 2},
		{1, 43, 15, 44, 29},
		{5, 14, 1, 27, 44},
		{40, 49, 50, 51, 52},
	}

	for _, codes := range hands {
		want, err := Evaluate(s.hand(codes...))
		s.Require().NoError(err)

		permute(codes, 0, func(p []int) {
			got, err := Evaluate(s.hand(p...))
			s.Require().NoError(err)
			s.Equal(want, got, "order %v should not change the category", p)
		})
	}
}

// permute calls fn with every ordering of codes[k:], leaving codes[:k] fixed
func permute(codes []int, k int, fn func([]int)) {
	if k == len(codes) {
		fn(append([]int(nil), codes...))
		return
	}
	for i := k; i < len(codes); i++ {
		codes[k], codes[i] = codes[i], codes[k]
		permute(codes, k+1, fn)
		codes[k], codes[i] = codes[i], codes[k]
	}
}

func (s *HandTestSuite) TestInvalidHand() {
	testCases := []struct {
		name  string
		codes []int
	}{
		{name: "empty", codes: nil},
		{name: "four cards", codes: []int{1, 2, 3, 4}},
		{name: "six cards", codes: []int{1, 2, 3, 4, 5, 6}},
		{name: "duplicate card", codes: []int{2, 3, 4, 5, 5}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := CheckHand(s.hand(tc.codes...))
			s.True(types.IsGameError(err, types.ErrInvalidHand), "expected INVALID_HAND, got %v", err)
		})
	}
}

func (s *HandTestSuite) TestScoreTable() {
	expected := map[Category]int{
		Nothing: 0, Pair: 1, TwoPair: 3, ThreeOfAKind: 5, Straight: 10,
		Flush: 15, FullHouse: 18, FourOfAKind: 20, StraightFlush: 30, RoyalFlush: 40,
	}
	for category, score := range expected {
		s.Equal(score, category.Score(), "%s", category)
	}

	previous := -1
	for _, category := range Categories() {
		s.Greater(category.Score(), previous, "%s should outscore the category below it", category)
		previous = category.Score()
	}
	s.Equal(0, Category(42).Score())
}

func (s *HandTestSuite) TestCategoryNames() {
	s.Equal("Two Pair", TwoPair.String())
	s.Equal("Royal Flush", RoyalFlush.String())
	s.Equal("Unknown", Category(-1).String())

	for _, category := range Categories() {
		parsed, ok := ParseCategory(category.String())
		s.True(ok)
		s.Equal(category, parsed)
	}
	_, ok := ParseCategory("Five of a Kind")
	s.False(ok)
}
