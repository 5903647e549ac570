package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5/pgxpool"

	"simon_webapp/internal/config"
	httpserver "simon_webapp/internal/http"
	"simon_webapp/internal/repository"
	"simon_webapp/internal/service"
	"simon_webapp/internal/ws"
)

func newTestServer(t *testing.T, db *pgxpool.Pool) (*httptest.Server, *ws.Hub) {
	t.Helper()

	cfg := &config.Config{
		APIRateLimit:   1000,
		APIRateWindow:  time.Minute,
		AuthRateLimit:  1000,
		AuthRateWindow: time.Minute,
		GameRateLimit:  1000,
		GameRateWindow: time.Minute,
	}

	scoreRepo := repository.NewScoreRepository(db)
	achievements := service.NewAchievementService(scoreRepo, repository.NewAchievementRepository(db))
	leaderboard := service.NewLeaderboardService(repository.NewLeaderboardRepository(db), nil)

	hub := ws.NewHub()
	sessions := service.NewSessionService(scoreRepo, achievements, leaderboard, hub)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	httpserver.RegisterRoutes(r, db, sessions, leaderboard, hub, cfg, "test")

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, hub
}

// Full round trip: register over HTTP, open the event stream, start a game
// and watch the first sequence reveal arrive over the socket.
func TestE2E_SessionEventStream(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}
	os.Setenv("JWT_SECRET", "test-secret")
	service.InitJWT()

	db, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	defer db.Close()
	applyMigrations(t, db)

	srv, _ := newTestServer(t, db)

	// register (or log in on re-runs)
	username := fmt.Sprintf("e2e_%d", time.Now().UnixNano())
	body, _ := json.Marshal(map[string]string{"username": username, "password": "e2e-password-1"})
	resp, err := http.Post(srv.URL+"/api/v1/auth/register", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: status %d", resp.StatusCode)
	}

	var reg struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&reg); err != nil {
		t.Fatalf("decode register response: %v", err)
	}

	// open the event stream before starting, so no event is missed
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=" + reg.Token
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial ws: %v", err)
	}
	defer conn.Close()

	// skip the hello frame
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err != nil {
		t.Fatalf("read hello: %v", err)
	}

	// start an easy game
	startBody, _ := json.Marshal(map[string]string{"difficulty": "easy"})
	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/game/start", bytes.NewReader(startBody))
	req.Header.Set("Authorization", "Bearer "+reg.Token)
	req.Header.Set("Content-Type", "application/json")
	startResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("start game: %v", err)
	}
	startResp.Body.Close()
	if startResp.StatusCode != http.StatusOK {
		t.Fatalf("start game: status %d", startResp.StatusCode)
	}

	// the first reveal is tile_on followed by tile_off
	conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read event: %v", err)
	}
	var env ws.Envelope
	if err := json.Unmarshal(msg, &env); err != nil {
		t.Fatalf("unmarshal %q: %v", msg, err)
	}
	if env.Type != ws.MsgTileOn {
		t.Fatalf("first event = %q; want %q", env.Type, ws.MsgTileOn)
	}
	tile, ok := env.Data["tile"].(float64)
	if !ok || tile < 0 || tile > 8 {
		t.Fatalf("tile out of grid: %v", env.Data["tile"])
	}

	_, msg, err = conn.ReadMessage()
	if err != nil {
		t.Fatalf("read second event: %v", err)
	}
	if err := json.Unmarshal(msg, &env); err != nil {
		t.Fatalf("unmarshal %q: %v", msg, err)
	}
	if env.Type != ws.MsgTileOff {
		t.Fatalf("second event = %q; want %q", env.Type, ws.MsgTileOff)
	}
}
