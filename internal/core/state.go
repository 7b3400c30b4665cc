package core

// GameState represents the externally visible state of a playthrough.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining player lives
	GameOver bool // Whether the playthrough has ended
}

// StepResult is returned by Step after each simulation tick.
// Contains the updated game state and the events that occurred during the tick.
type StepResult struct {
	State  GameState
	Events []Event
}
