package render

import (
	"strconv"
	"strings"

	"github.com/aaronzipp/hand-cricket/internal/models"
)

// Welcome is printed once before the first round
func Welcome() string {
	return "🎮 Welcome to Hand Cricket!"
}

// Drawn reports the computer's value for a round
func Drawn(drawn int) string {
	return "Computer chose: " + strconv.Itoa(drawn)
}

// Out reports the round that ended the game
func Out() string {
	return "❌ OUT!"
}

// Scored reports a run and the new total
func Scored(run, total int) string {
	var b strings.Builder
	b.WriteString("✅ You scored ")
	b.WriteString(strconv.Itoa(run))
	b.WriteString(". Total = ")
	b.WriteString(strconv.Itoa(total))
	return b.String()
}

// FinalScore is printed exactly once, after the OUT
func FinalScore(score int) string {
	return "🏏 Final Score: " + strconv.Itoa(score)
}

// SummaryTable generates the optional end-of-game block with one row per round
func SummaryTable(s models.Summary, history []models.Round) string {
	var b strings.Builder
	b.WriteString("Session ")
	b.WriteString(s.GameID)
	b.WriteString("\nRounds: ")
	b.WriteString(strconv.Itoa(s.Rounds))
	b.WriteString("  Best run: ")
	b.WriteString(strconv.Itoa(s.BestRun))
	b.WriteString("\n\n #  You  CPU  Total\n")
	for _, r := range history {
		b.WriteString(pad(strconv.Itoa(r.Number), 2))
		b.WriteString(pad(strconv.Itoa(r.Run), 5))
		b.WriteString(pad(strconv.Itoa(r.Drawn), 5))
		b.WriteString(pad(strconv.Itoa(r.Total), 7))
		if r.Out {
			b.WriteString("  OUT")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// pad right-aligns s in a column of the given width
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
