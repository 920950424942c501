package models

import "github.com/google/uuid"

// Round records a single delivery of the innings
type Round struct {
	Number int  // 1-based
	Run    int  // value entered by the player
	Drawn  int  // value drawn by the computer
	Out    bool // Run == Drawn
	Total  int  // score after this round
}

// Game holds the round state of one session (ephemeral)
type Game struct {
	ID      string
	Score   int
	Status  GameStatus
	History []Round
}

// NewGame creates a game in the playing state with a zero score
func NewGame() *Game {
	return &Game{
		ID:     uuid.NewString(),
		Status: StatusPlaying,
	}
}

// Active reports whether rounds continue
func (g *Game) Active() bool {
	return g.Status == StatusPlaying
}

// RoundsPlayed returns the number of completed rounds, including the OUT round
func (g *Game) RoundsPlayed() int {
	return len(g.History)
}
