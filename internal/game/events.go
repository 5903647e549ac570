package game

// Events receives session notifications. Implementations must not block and
// must not call back into the session from inside a handler; hand the work
// to a channel or goroutine instead.
type Events interface {
	// Reveal sub-protocol: a sequence tile lit up / went dark.
	OnRoundTileActivated(tile int)
	OnRoundTileDeactivated(tile int)

	// The player's own submission was accepted and acknowledged visually.
	OnInputTileFlashed(tile int)

	// Fired after each successfully completed round.
	OnScoreChanged(score, multiplier int)

	// Fired when the running score first exceeds the stored high score.
	OnHighScore(score int, difficulty Difficulty)

	// Fired on every transition into game over, including explicit stop.
	OnSessionEnded(finalScore int, difficulty Difficulty, sequenceLength int)
}

// HighScoreSource supplies the persisted per-difficulty high score so a
// session knows the baseline for new-record detection. Missing records
// report 0.
type HighScoreSource interface {
	CurrentHighScore(d Difficulty) int
}

// NopEvents discards all notifications.
type NopEvents struct{}

func (NopEvents) OnRoundTileActivated(int)            {}
func (NopEvents) OnRoundTileDeactivated(int)          {}
func (NopEvents) OnInputTileFlashed(int)              {}
func (NopEvents) OnScoreChanged(int, int)             {}
func (NopEvents) OnHighScore(int, Difficulty)         {}
func (NopEvents) OnSessionEnded(int, Difficulty, int) {}

type zeroHighScores struct{}

func (zeroHighScores) CurrentHighScore(Difficulty) int { return 0 }
