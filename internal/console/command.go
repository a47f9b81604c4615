package console

import (
	"strconv"
	"strings"

	"github.com/fadedpez/drawpoker/internal/types"
)

// Action is what a line of input asks for
type Action int

const (
	// ActionNext deals when idle and commits when a hand is out
	ActionNext Action = iota + 1
	ActionDeal
	ActionToggle
	ActionCommit
	ActionStats
	ActionHelp
	ActionQuit
)

// Command is a parsed line of input. Indices are zero-based hand positions.
type Command struct {
	Action  Action
	Indices []int
}

var keywords = map[string]Action{
	"deal":   ActionDeal,
	"d":      ActionDeal,
	"toggle": ActionToggle,
	"t":      ActionToggle,
	"commit": ActionCommit,
	"c":      ActionCommit,
	"stats":  ActionStats,
	"s":      ActionStats,
	"help":   ActionHelp,
	"h":      ActionHelp,
	"?":      ActionHelp,
	"quit":   ActionQuit,
	"q":      ActionQuit,
	"exit":   ActionQuit,
}

// ParseCommand reads one line of input. Card positions are typed 1-based, so
// "toggle 2 5" and "2 5" both toggle the second and fifth cards.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Command{Action: ActionNext}, nil
	}

	keyword := fields[0]
	action, ok := keywords[keyword]
	if !ok {
		// A bare list of positions is a toggle
		if _, err := strconv.Atoi(keyword); err != nil {
			return Command{}, types.Errorf(types.ErrInvalidCommand, "unknown command %q, type help for the list", keyword)
		}
		action = ActionToggle
	} else {
		fields = fields[1:]
	}

	if action != ActionToggle {
		if len(fields) > 0 {
			return Command{}, types.Errorf(types.ErrInvalidCommand, "%s takes no arguments", keyword)
		}
		return Command{Action: action}, nil
	}

	if len(fields) == 0 {
		return Command{}, types.NewGameError(types.ErrInvalidCommand, "toggle needs at least one card position")
	}

	indices := make([]int, 0, len(fields))
	for _, field := range fields {
		position, err := strconv.Atoi(field)
		if err != nil {
			return Command{}, types.Errorf(types.ErrInvalidCommand, "%q is not a card position", field)
		}
		indices = append(indices, position-1)
	}

	return Command{Action: ActionToggle, Indices: indices}, nil
}
