package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// dialTestClient upgrades a connection and runs a Client for userID,
// returning the browser side of the socket.
func dialTestClient(t *testing.T, hub *Hub, userID int64) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		go NewClient(userID, conn, hub).Run()
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) Envelope {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var env Envelope
	if err := json.Unmarshal(msg, &env); err != nil {
		t.Fatalf("unmarshal %q: %v", msg, err)
	}
	return env
}

func TestHubPushDeliversToUser(t *testing.T) {
	hub := NewHub()
	conn := dialTestClient(t, hub, 7)

	if env := readEnvelope(t, conn); env.Type != MsgHello {
		t.Fatalf("first message type = %q; want %q", env.Type, MsgHello)
	}

	// Registration happens inside Client.Run; wait for it.
	deadline := time.Now().Add(2 * time.Second)
	for hub.ConnectionCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	hub.Push(7, MsgTileOn, map[string]any{"tile": 3})

	env := readEnvelope(t, conn)
	if env.Type != MsgTileOn {
		t.Fatalf("type = %q; want %q", env.Type, MsgTileOn)
	}
	if got := env.Data["tile"].(float64); got != 3 {
		t.Fatalf("tile = %v; want 3", got)
	}
}

func TestHubPushIgnoresOtherUsers(t *testing.T) {
	hub := NewHub()
	conn := dialTestClient(t, hub, 7)
	readEnvelope(t, conn) // hello

	hub.Push(8, MsgScore, map[string]any{"score": 5})

	conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if _, msg, err := conn.ReadMessage(); err == nil {
		t.Fatalf("unexpected message for other user: %s", msg)
	}
}

func TestHubUnregisterOnDisconnect(t *testing.T) {
	hub := NewHub()
	conn := dialTestClient(t, hub, 7)
	readEnvelope(t, conn) // hello

	deadline := time.Now().Add(2 * time.Second)
	for hub.ConnectionCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if hub.ConnectionCount() != 1 {
		t.Fatalf("connections = %d; want 1", hub.ConnectionCount())
	}

	conn.Close()

	deadline = time.Now().Add(2 * time.Second)
	for hub.ConnectionCount() != 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if hub.ConnectionCount() != 0 {
		t.Fatalf("connections = %d after close; want 0", hub.ConnectionCount())
	}
}
