package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"simon_webapp/internal/domain"
	"simon_webapp/internal/game"
	"simon_webapp/internal/logger"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

var ErrNoSession = errors.New("no active session")

var (
	activeSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "simon_active_sessions",
		Help: "Sessions currently held in memory",
	})
	sessionsStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "simon_sessions_started_total",
		Help: "Total session starts (including restarts)",
	})
	sessionsEnded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "simon_sessions_ended_total",
		Help: "Total session terminations",
	}, []string{"difficulty"})
)

func init() {
	prometheus.MustRegister(activeSessions, sessionsStarted, sessionsEnded)
}

// ScoreStore is the persistence surface a running session needs: append the
// final record, read and conditionally raise the high score.
type ScoreStore interface {
	Create(ctx context.Context, rec *domain.ScoreRecord) error
	GetHighScore(ctx context.Context, userID int64, d game.Difficulty) (int, error)
	UpsertHighScoreIfGreater(ctx context.Context, userID int64, d game.Difficulty, score int) (bool, error)
}

// EventSink receives presentation events for delivery to the player's
// browser. Push must not block.
type EventSink interface {
	Push(userID int64, event string, data map[string]any)
}

// SessionService owns the single active session per player and bridges
// engine events to persistence, leaderboard and the event stream. The
// engine never waits on any of them: persistence runs fire-and-forget and
// its failures never stall or corrupt in-session state.
type SessionService struct {
	scores       ScoreStore
	achievements *AchievementService
	leaderboard  *LeaderboardService
	sink         EventSink

	// Overridable for tests; production defaults set in the constructor.
	Tiles game.TileSource
	Clock game.Scheduler

	mu       sync.RWMutex
	sessions map[int64]*game.Session
}

func NewSessionService(scores ScoreStore, achievements *AchievementService, leaderboard *LeaderboardService, sink EventSink) *SessionService {
	s := &SessionService{
		scores:       scores,
		achievements: achievements,
		leaderboard:  leaderboard,
		sink:         sink,
		Tiles:        game.CryptoTileSource{},
		Clock:        game.NewScheduler(),
		sessions:     make(map[int64]*game.Session),
	}

	go s.reapAbandoned()

	return s
}

// StartSession begins a run at the given difficulty. An existing run is
// discarded first (implicit restart), without emitting a session-ended
// event for it.
func (s *SessionService) StartSession(userID int64, d game.Difficulty) game.Snapshot {
	sess := s.getOrCreate(userID)

	// Difficulty can only change while idle; force idle first.
	sess.Reset()
	sess.SetDifficulty(d)
	sess.Start()
	sessionsStarted.Inc()

	return sess.GetSnapshot()
}

// SubmitTile forwards one tile press to the player's session.
func (s *SessionService) SubmitTile(userID int64, tile int) (game.Snapshot, error) {
	sess := s.get(userID)
	if sess == nil {
		return game.Snapshot{}, ErrNoSession
	}
	sess.SubmitTile(tile)
	return sess.GetSnapshot(), nil
}

// StopSession ends the run early, finalizing the current score.
func (s *SessionService) StopSession(userID int64) (game.Snapshot, error) {
	sess := s.get(userID)
	if sess == nil {
		return game.Snapshot{}, ErrNoSession
	}
	sess.Stop()
	return sess.GetSnapshot(), nil
}

// ResetSession returns the session to idle without emitting events.
func (s *SessionService) ResetSession(userID int64) (game.Snapshot, error) {
	sess := s.get(userID)
	if sess == nil {
		return game.Snapshot{}, ErrNoSession
	}
	sess.Reset()
	return sess.GetSnapshot(), nil
}

// SetDifficulty changes the difficulty of an idle session. Outside idle the
// engine ignores it; the returned snapshot shows the difficulty actually in
// effect.
func (s *SessionService) SetDifficulty(userID int64, d game.Difficulty) game.Snapshot {
	sess := s.getOrCreate(userID)
	sess.SetDifficulty(d)
	return sess.GetSnapshot()
}

// GetState returns the player's current session snapshot.
func (s *SessionService) GetState(userID int64) (game.Snapshot, error) {
	sess := s.get(userID)
	if sess == nil {
		return game.Snapshot{}, ErrNoSession
	}
	return sess.GetSnapshot(), nil
}

// ActiveCount reports sessions held in memory.
func (s *SessionService) ActiveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *SessionService) get(userID int64) *game.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[userID]
}

func (s *SessionService) getOrCreate(userID int64) *game.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[userID]; ok {
		return sess
	}

	id := uuid.New().String()[:8]
	listener := &sessionListener{svc: s, userID: userID}
	baseline := &highScoreBaseline{svc: s, userID: userID}
	sess := game.NewSession(id, userID, s.Tiles, s.Clock, listener, baseline)
	s.sessions[userID] = sess
	activeSessions.Set(float64(len(s.sessions)))
	return sess
}

// reapAbandoned drops sessions with no activity for over an hour.
func (s *SessionService) reapAbandoned() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		for userID, sess := range s.sessions {
			if time.Since(sess.LastActivity()) > time.Hour {
				sess.Reset() // cancels any pending timers
				delete(s.sessions, userID)
			}
		}
		activeSessions.Set(float64(len(s.sessions)))
		s.mu.Unlock()
	}
}

// persistResult writes the score record, raises the stored high score if
// beaten, mirrors the leaderboard and re-evaluates achievements. Runs on
// its own goroutine with a bounded context; errors are logged and dropped.
func (s *SessionService) persistResult(userID int64, finalScore int, d game.Difficulty, seqLen int) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rec := &domain.ScoreRecord{
		UserID:         userID,
		Score:          finalScore,
		Difficulty:     d,
		SequenceLength: seqLen,
	}
	if err := s.scores.Create(ctx, rec); err != nil {
		logger.Error("failed to persist score record", "error", err, "user_id", userID)
		return
	}

	improved, err := s.scores.UpsertHighScoreIfGreater(ctx, userID, d, finalScore)
	if err != nil {
		logger.Error("failed to update high score", "error", err, "user_id", userID)
	}
	if improved && s.leaderboard != nil {
		s.leaderboard.RecordScore(ctx, userID, d, finalScore)
	}

	if s.achievements != nil {
		unlocked, err := s.achievements.EvaluateForUser(ctx, userID)
		if err != nil {
			logger.Error("achievement evaluation failed", "error", err, "user_id", userID)
		}
		for _, code := range unlocked {
			s.push(userID, "achievement_unlocked", map[string]any{"code": code})
		}
	}
}

func (s *SessionService) push(userID int64, event string, data map[string]any) {
	if s.sink != nil {
		s.sink.Push(userID, event, data)
	}
}

// sessionListener forwards engine events to the player's event stream and
// hands terminal results to persistence. Called from inside the session;
// must stay non-blocking.
type sessionListener struct {
	svc    *SessionService
	userID int64
}

func (l *sessionListener) OnRoundTileActivated(tile int) {
	l.svc.push(l.userID, "tile_on", map[string]any{"tile": tile})
}

func (l *sessionListener) OnRoundTileDeactivated(tile int) {
	l.svc.push(l.userID, "tile_off", map[string]any{"tile": tile})
}

func (l *sessionListener) OnInputTileFlashed(tile int) {
	l.svc.push(l.userID, "input_flash", map[string]any{"tile": tile})
}

func (l *sessionListener) OnScoreChanged(score, multiplier int) {
	l.svc.push(l.userID, "score", map[string]any{"score": score, "multiplier": multiplier})
}

func (l *sessionListener) OnHighScore(score int, d game.Difficulty) {
	l.svc.push(l.userID, "high_score", map[string]any{"score": score, "difficulty": d})
}

func (l *sessionListener) OnSessionEnded(finalScore int, d game.Difficulty, seqLen int) {
	sessionsEnded.WithLabelValues(string(d)).Inc()
	l.svc.push(l.userID, "game_over", map[string]any{
		"final_score":     finalScore,
		"difficulty":      d,
		"sequence_length": seqLen,
	})
	go l.svc.persistResult(l.userID, finalScore, d, seqLen)
}

// highScoreBaseline reads the stored best at session start so the engine
// knows the threshold for new-record detection. Errors report 0.
type highScoreBaseline struct {
	svc    *SessionService
	userID int64
}

func (h *highScoreBaseline) CurrentHighScore(d game.Difficulty) int {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	score, err := h.svc.scores.GetHighScore(ctx, h.userID, d)
	if err != nil {
		logger.Warn("high score lookup failed, using 0", "error", err, "user_id", h.userID)
		return 0
	}
	return score
}
