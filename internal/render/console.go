package render

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aaronzipp/hand-cricket/internal/game"
	"github.com/aaronzipp/hand-cricket/internal/models"
)

// Console writes round results as plain lines. It implements game.Reporter.
type Console struct {
	Out io.Writer

	// ShowSummary and ShareQR add blocks after the final score
	ShowSummary bool
	ShareQR     bool

	Logger *slog.Logger
}

// Round prints the draw, then either OUT or the new total
func (c *Console) Round(r models.Round) {
	fmt.Fprintln(c.Out, Drawn(r.Drawn))
	if r.Out {
		fmt.Fprintln(c.Out, Out())
		return
	}
	fmt.Fprintln(c.Out, Scored(r.Run, r.Total))
}

// Final prints the final score and any requested extras
func (c *Console) Final(g *models.Game) {
	fmt.Fprintln(c.Out, FinalScore(g.Score))
	if !c.ShowSummary && !c.ShareQR {
		return
	}

	s := game.Summarize(g)
	if c.ShowSummary {
		fmt.Fprintln(c.Out)
		fmt.Fprint(c.Out, SummaryTable(s, g.History))
	}
	if c.ShareQR {
		code, err := ShareCode(s)
		if err != nil {
			// the game is already over, a missing share code is not fatal
			c.logger().Warn("share code failed", "game_id", g.ID, "error", err)
			return
		}
		fmt.Fprintln(c.Out)
		fmt.Fprint(c.Out, code)
	}
}

func (c *Console) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}
