package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/websocket"

	"simon_webapp/internal/db"
	"simon_webapp/internal/repository"
	"simon_webapp/internal/service"
)

// Smoke test against a running server: creates a user, opens the event
// stream, starts an easy session and prints everything the server pushes.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	repo := repository.NewUserRepository(pool)
	auth := service.NewAuthService(repo)
	ctx := context.Background()

	const username = "ws_smoke"
	u, err := repo.GetByUsername(ctx, username)
	if err != nil {
		u, err = auth.Register(ctx, username, "smoke-password-1")
		if err != nil {
			log.Fatalf("create user: %v", err)
		}
	}

	service.InitJWT()
	token, err := service.GenerateJWT(u.ID)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	// open the event stream first so no event is missed
	wsURL := fmt.Sprintf("ws://localhost:%s/ws?token=%s", port, token)
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		log.Fatalf("dial ws: %v", err)
	}
	defer conn.Close()

	// start an easy session over the REST API
	body, _ := json.Marshal(map[string]string{"difficulty": "easy"})
	req, _ := http.NewRequest(http.MethodPost,
		fmt.Sprintf("http://localhost:%s/api/v1/game/start", port), bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("start game: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("start game: status %d", resp.StatusCode)
	}

	log.Println("session started, reading events for 5s...")

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		conn.SetReadDeadline(deadline)
		_, msg, err := conn.ReadMessage()
		if err != nil {
			break
		}
		fmt.Printf("event: %s\n", msg)
	}

	log.Println("done")
}
