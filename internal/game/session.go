package game

import (
	"sync"
	"time"
)

// State of a session. Idle is both the initial state and the state after an
// explicit reset.
type State string

const (
	StateIdle            State = "idle"
	StateShowingSequence State = "showing_sequence"
	StateWaitingForInput State = "waiting_for_input"
	StateGameOver        State = "game_over"
)

// DefaultInterRoundDelay is the pause between a completed round and the next
// reveal pass. Fixed across difficulties.
const DefaultInterRoundDelay = time.Second

// Session is one continuous play attempt: reveal the sequence, collect input,
// validate, advance or terminate. One active session per player; commands and
// timer callbacks are serialized by the internal mutex.
type Session struct {
	ID     string
	UserID int64

	mu         sync.Mutex
	createdAt  time.Time
	lastActive time.Time
	state      State
	difficulty Difficulty
	profile    Profile
	sequence   []int
	input      []int
	score      int
	multiplier int
	highScore  int
	mismatchAt int // input position that ended the session, -1 if none

	tiles      TileSource
	clock      Scheduler
	events     Events
	highScores HighScoreSource

	interRoundDelay time.Duration
	cancelTimer     CancelFunc
	gen             uint64 // bumped on every cancel; stale timer callbacks check it
}

// NewSession creates an idle session for one player. Nil collaborators get
// production defaults (crypto/rand tiles, wall-clock timers, no-op events).
func NewSession(id string, userID int64, tiles TileSource, clock Scheduler, events Events, highScores HighScoreSource) *Session {
	if tiles == nil {
		tiles = CryptoTileSource{}
	}
	if clock == nil {
		clock = NewScheduler()
	}
	if events == nil {
		events = NopEvents{}
	}
	if highScores == nil {
		highScores = zeroHighScores{}
	}

	return &Session{
		ID:              id,
		UserID:          userID,
		createdAt:       time.Now(),
		lastActive:      time.Now(),
		state:           StateIdle,
		difficulty:      DifficultyEasy,
		profile:         ProfileFor(DifficultyEasy),
		mismatchAt:      -1,
		tiles:           tiles,
		clock:           clock,
		events:          events,
		highScores:      highScores,
		interRoundDelay: DefaultInterRoundDelay,
	}
}

// SetDifficulty changes the difficulty level. Ignored unless the session is
// idle: difficulty is fixed once play begins.
func (s *Session) SetDifficulty(d Difficulty) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return
	}
	s.difficulty = d
	s.profile = ProfileFor(d)
	s.multiplier = s.profile.BaseMultiplier
}

// Start begins a new run. Calling it while a run is active is an implicit
// restart: pending timers are cancelled and all fields reinitialized, as if
// stop() had been issued first (no session-ended event is emitted for the
// abandoned run).
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelPendingLocked()

	s.sequence = s.sequence[:0]
	s.input = s.input[:0]
	s.score = 0
	s.multiplier = s.profile.BaseMultiplier
	s.mismatchAt = -1
	s.highScore = s.highScores.CurrentHighScore(s.difficulty)
	s.lastActive = time.Now()

	s.sequence = append(s.sequence, s.tiles.NextTile())
	s.state = StateShowingSequence
	s.scheduleRevealLocked(0, 0)
}

// SubmitTile records one player input. Outside waiting-for-input it is a
// no-op. A tile outside [0,GridSize) counts as an automatic mismatch.
func (s *Session) SubmitTile(tile int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateWaitingForInput {
		return
	}
	if len(s.input) >= len(s.sequence) {
		return // round already complete, inter-round delay pending
	}
	s.lastActive = time.Now()

	s.events.OnInputTileFlashed(tile)
	s.input = append(s.input, tile)
	pos := len(s.input) - 1

	if tile < 0 || tile >= GridSize || tile != s.sequence[pos] {
		s.mismatchAt = pos
		s.gameOverLocked()
		return
	}

	if len(s.input) < len(s.sequence) {
		return // await the next tile
	}

	// Round complete: score reflects the full sequence just reproduced.
	s.multiplier = ComputeMultiplier(s.profile.BaseMultiplier, len(s.sequence))
	s.score = ComputeRoundScore(s.score, s.multiplier)
	s.events.OnScoreChanged(s.score, s.multiplier)

	if s.score > s.highScore {
		s.highScore = s.score
		s.events.OnHighScore(s.score, s.difficulty)
	}

	gen := s.gen
	s.cancelTimer = s.clock.AfterFunc(s.interRoundDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.gen != gen || s.state != StateWaitingForInput {
			return
		}
		s.sequence = append(s.sequence, s.tiles.NextTile())
		s.input = s.input[:0]
		s.state = StateShowingSequence
		s.scheduleRevealLocked(0, 0)
	})
}

// Stop terminates the run early. Permitted mid-reveal; finalizes exactly like
// a mismatch does, with the score of the last fully completed round.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateShowingSequence && s.state != StateWaitingForInput {
		return
	}
	s.gameOverLocked()
}

// Reset clears all session fields and returns to idle without emitting
// further events.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelPendingLocked()
	s.sequence = s.sequence[:0]
	s.input = s.input[:0]
	s.score = 0
	s.multiplier = s.profile.BaseMultiplier
	s.mismatchAt = -1
	s.state = StateIdle
	s.lastActive = time.Now()
}

// gameOverLocked is the single terminal transition: every path into game over
// (mismatch, stop, out-of-range tile) funnels through here.
func (s *Session) gameOverLocked() {
	s.cancelPendingLocked()
	s.state = StateGameOver
	s.lastActive = time.Now()
	s.events.OnSessionEnded(s.score, s.difficulty, len(s.sequence))
}

// cancelPendingLocked invalidates any scheduled reveal or inter-round timer.
func (s *Session) cancelPendingLocked() {
	s.gen++
	if s.cancelTimer != nil {
		s.cancelTimer()
		s.cancelTimer = nil
	}
}

// scheduleRevealLocked drives the reveal sub-protocol for sequence[idx:].
// Every pass replays the sequence from its first element. Each tile is
// active for RevealDuration, then inactive for PauseDuration, strictly
// sequentially; after the last tile's full cycle the session starts
// accepting input.
func (s *Session) scheduleRevealLocked(idx int, delay time.Duration) {
	gen := s.gen
	s.cancelTimer = s.clock.AfterFunc(delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.gen != gen || s.state != StateShowingSequence {
			return
		}
		tile := s.sequence[idx]
		s.events.OnRoundTileActivated(tile)

		s.cancelTimer = s.clock.AfterFunc(s.profile.RevealDuration, func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.gen != gen || s.state != StateShowingSequence {
				return
			}
			s.events.OnRoundTileDeactivated(tile)

			if idx+1 < len(s.sequence) {
				// Lock held since the generation check, so gen is still
				// current and the next step captures it again.
				s.scheduleRevealLocked(idx+1, s.profile.PauseDuration)
				return
			}

			// Last tile still owes its off-time before input opens.
			s.cancelTimer = s.clock.AfterFunc(s.profile.PauseDuration, func() {
				s.mu.Lock()
				defer s.mu.Unlock()
				if s.gen != gen || s.state != StateShowingSequence {
					return
				}
				s.state = StateWaitingForInput
			})
		})
	})
}

// Snapshot is the client-facing view of a session.
type Snapshot struct {
	ID             string     `json:"id"`
	State          State      `json:"state"`
	Difficulty     Difficulty `json:"difficulty"`
	Score          int        `json:"score"`
	Multiplier     int        `json:"multiplier"`
	SequenceLength int        `json:"sequence_length"`
	InputLength    int        `json:"input_length"`
	MismatchAt     int        `json:"mismatch_at"` // -1 while no mismatch happened
	HighScore      int        `json:"high_score"`
}

// GetSnapshot returns the current state, safe for serialization. The pending
// sequence itself is never exposed to the client.
func (s *Session) GetSnapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		ID:             s.ID,
		State:          s.state,
		Difficulty:     s.difficulty,
		Score:          s.score,
		Multiplier:     s.multiplier,
		SequenceLength: len(s.sequence),
		InputLength:    len(s.input),
		MismatchAt:     s.mismatchAt,
		HighScore:      s.highScore,
	}
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Difficulty returns the session's difficulty level.
func (s *Session) Difficulty() Difficulty {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.difficulty
}

// Score returns the current score.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// LastActivity returns the time of the last command or state transition,
// used to reap abandoned sessions.
func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// IsActive reports whether a run is in progress (revealing or collecting
// input).
func (s *Session) IsActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateShowingSequence || s.state == StateWaitingForInput
}
