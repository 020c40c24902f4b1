package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialTestHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWs))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered with the hub")
		}
		time.Sleep(10 * time.Millisecond)
	}
	return conn
}

func TestHubBroadcastReachesClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	conn := dialTestHub(t, hub)

	if ok := hub.BroadcastEvent(EventRunUpdated, map[string]int{"floor": 5}); !ok {
		t.Fatal("BroadcastEvent rejected on a running hub")
	}

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage failed: %v", err)
	}
	if !strings.Contains(string(payload), EventRunUpdated) {
		t.Errorf("payload %s missing event type", payload)
	}
}

func TestHubStopRejectsBroadcasts(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	hub.Stop()

	// Give the loop a moment to drain.
	time.Sleep(50 * time.Millisecond)

	if hub.BroadcastEvent(EventAdvice, nil) {
		t.Error("BroadcastEvent accepted after Stop")
	}
}

func TestHubStopIsIdempotent(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	hub.Stop()
	hub.Stop()
}
