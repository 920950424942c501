package models

// Summary is the end-of-session view of a game
type Summary struct {
	GameID     string
	FinalScore int
	Rounds     int
	BestRun    int  // largest run that scored, 0 if none did
	Out        bool // false when the session stopped before an OUT
}
