package game

import (
	"errors"
	"math"

	"github.com/aaronzipp/hand-cricket/internal/models"
)

// ErrGameOver is returned when a round is played on an ended game
var ErrGameOver = errors.New("game is over")

// ErrScoreOverflow is returned when adding a run would overflow the score.
// The game is left unchanged.
var ErrScoreOverflow = errors.New("score overflow")

// PlayRound applies one round to the game. A match ends the game and leaves
// the score untouched, anything else adds run to the score.
func PlayRound(g *models.Game, run, drawn int) (models.Round, error) {
	if !g.Active() {
		return models.Round{}, ErrGameOver
	}
	if run != drawn && overflows(g.Score, run) {
		return models.Round{}, ErrScoreOverflow
	}

	round := models.Round{
		Number: g.RoundsPlayed() + 1,
		Run:    run,
		Drawn:  drawn,
		Out:    run == drawn,
	}
	if round.Out {
		g.Status = models.StatusEnded
	} else {
		g.Score += run
	}
	round.Total = g.Score
	g.History = append(g.History, round)
	return round, nil
}

func overflows(score, run int) bool {
	if run > 0 {
		return score > math.MaxInt-run
	}
	return score < math.MinInt-run
}

// Summarize builds the end-of-session summary
func Summarize(g *models.Game) models.Summary {
	s := models.Summary{
		GameID:     g.ID,
		FinalScore: g.Score,
		Rounds:     g.RoundsPlayed(),
		Out:        g.Status == models.StatusEnded,
	}
	for _, r := range g.History {
		if !r.Out && r.Run > s.BestRun {
			s.BestRun = r.Run
		}
	}
	return s
}
