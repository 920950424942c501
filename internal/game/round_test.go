package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/hand-cricket/internal/models"
)

func TestPlayRound(t *testing.T) {
	g := models.NewGame()

	r, err := PlayRound(g, 5, 2)
	require.NoError(t, err)
	assert.Equal(t, models.Round{Number: 1, Run: 5, Drawn: 2, Total: 5}, r)
	assert.True(t, g.Active())

	r, err = PlayRound(g, 6, 6)
	require.NoError(t, err)
	assert.Equal(t, models.Round{Number: 2, Run: 6, Drawn: 6, Out: true, Total: 5}, r)
	assert.False(t, g.Active())
	assert.Equal(t, models.StatusEnded, g.Status)
	assert.Equal(t, 5, g.Score)
}

func TestPlayRound_EndedGameIsReadOnly(t *testing.T) {
	g := models.NewGame()
	_, err := PlayRound(g, 3, 3)
	require.NoError(t, err)

	_, err = PlayRound(g, 4, 1)
	require.ErrorIs(t, err, ErrGameOver)
	assert.Equal(t, 0, g.Score)
	assert.Len(t, g.History, 1)
}

func TestPlayRound_Overflow(t *testing.T) {
	tests := []struct {
		name      string
		start     int
		run       int
		drawn     int
		wantErr   error
		wantScore int
	}{
		{name: "max int from zero", start: 0, run: math.MaxInt, drawn: 1, wantScore: math.MaxInt},
		{name: "one past max int", start: math.MaxInt, run: 5, drawn: 1, wantErr: ErrScoreOverflow, wantScore: math.MaxInt},
		{name: "large run near max", start: math.MaxInt - 10, run: 11, drawn: 2, wantErr: ErrScoreOverflow, wantScore: math.MaxInt - 10},
		{name: "exactly reaches max", start: math.MaxInt - 6, run: 6, drawn: 1, wantScore: math.MaxInt},
		{name: "below min int", start: math.MinInt + 1, run: -2, drawn: 1, wantErr: ErrScoreOverflow, wantScore: math.MinInt + 1},
		{name: "out never overflows", start: math.MaxInt, run: 4, drawn: 4, wantScore: math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := models.NewGame()
			g.Score = tt.start

			_, err := PlayRound(g, tt.run, tt.drawn)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, g.Active())
				assert.Empty(t, g.History)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantScore, g.Score)
		})
	}
}

func TestSummarize(t *testing.T) {
	g := models.NewGame()
	for _, rd := range [][2]int{{2, 1}, {6, 3}, {4, 5}, {1, 1}} {
		_, err := PlayRound(g, rd[0], rd[1])
		require.NoError(t, err)
	}

	s := Summarize(g)
	assert.Equal(t, models.Summary{
		GameID:     g.ID,
		FinalScore: 12,
		Rounds:     4,
		BestRun:    6,
		Out:        true,
	}, s)
}

func TestSummarize_OutOnlyRun(t *testing.T) {
	g := models.NewGame()
	_, err := PlayRound(g, 6, 6)
	require.NoError(t, err)

	s := Summarize(g)
	assert.Zero(t, s.BestRun)
	assert.Zero(t, s.FinalScore)
	assert.True(t, s.Out)
}
