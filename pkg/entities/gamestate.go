package entities

// GameState is the state of a draw poker session
type GameState string

const (
	// StateIdle means no hand is held and the next move is a deal
	StateIdle GameState = "IDLE"
	// StateDealt means a hand is held and cards may be selected for exchange
	StateDealt GameState = "DEALT"
)

// GameType identifies the game recorded in a round result
const GameType = "draw_poker"
