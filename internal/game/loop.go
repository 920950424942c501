package game

import (
	"fmt"
	"log/slog"

	"github.com/aaronzipp/hand-cricket/internal/models"
)

// RunSource supplies the player's value for each round
type RunSource interface {
	NextRun() (int, error)
}

// Reporter receives round results as they happen
type Reporter interface {
	Round(r models.Round)
	Final(g *models.Game)
}

// Loop holds the dependencies of a game session
type Loop struct {
	Runs     RunSource
	Roller   Roller
	Reporter Reporter
	Logger   *slog.Logger
}

// Play drives rounds until the game is OUT. The run is read before the draw,
// so a failing RunSource stops the session without a draw and without the
// final score; the game stays active in that case.
func (l *Loop) Play(g *models.Game) error {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("game_id", g.ID)

	for g.Active() {
		run, err := l.Runs.NextRun()
		if err != nil {
			logger.Info("session stopped", "rounds", g.RoundsPlayed(), "score", g.Score, "error", err)
			return fmt.Errorf("round %d: %w", g.RoundsPlayed()+1, err)
		}

		round, err := PlayRound(g, run, l.Roller.Roll())
		if err != nil {
			logger.Info("session stopped", "rounds", g.RoundsPlayed(), "score", g.Score, "run", run, "error", err)
			return fmt.Errorf("round %d: %w", g.RoundsPlayed()+1, err)
		}
		logger.Debug("round played",
			"round", round.Number, "run", round.Run, "drawn", round.Drawn,
			"out", round.Out, "total", round.Total)
		l.Reporter.Round(round)
	}

	logger.Info("game over", "rounds", g.RoundsPlayed(), "score", g.Score)
	l.Reporter.Final(g)
	return nil
}
