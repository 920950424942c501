package game

const (
	// MinRun is the smallest value a player or the computer can show
	MinRun = 1

	// MaxRun is the largest value a player or the computer can show
	MaxRun = 6
)
