package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/BauerAlexandr/the-snake/pkg/game"
	"github.com/gorilla/websocket"
)

func newTestServer(t *testing.T, runs chan<- game.RunStats) (*Server, string) {
	t.Helper()
	srv := &Server{
		Board: game.Board{Width: 640, Height: 480, Cell: 20},
		Tick:  5 * time.Millisecond,
		Seed:  1,
	}
	if runs != nil {
		srv.OnRunEnd = func(rs game.RunStats) { runs <- rs }
	}
	ts := httptest.NewServer(http.HandlerFunc(srv.HandleWebSocket))
	t.Cleanup(ts.Close)
	return srv, "ws" + strings.TrimPrefix(ts.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func TestWebSocketGame(t *testing.T) {
	runs := make(chan game.RunStats, 1)
	_, url := newTestServer(t, runs)
	conn := dial(t, url)

	var msg ServerMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read config failed: %v", err)
	}
	if msg.Type != "config" || msg.Board == nil || msg.Board.Width != 640 {
		t.Fatalf("expected config message, got %+v", msg)
	}

	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read state failed: %v", err)
	}
	if msg.Type != "state" || msg.State.Head != (game.Point{X: 320, Y: 240}) {
		t.Fatalf("expected initial state at the center, got %+v", msg.State)
	}

	if err := conn.WriteJSON(ClientMessage{Action: "down"}); err != nil {
		t.Fatal(err)
	}

	turned := false
	for i := 0; i < 200 && !turned; i++ {
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatalf("read state failed: %v", err)
		}
		turned = msg.State.Heading == game.Down
	}
	if !turned {
		t.Fatal("snake never turned down")
	}

	if err := conn.WriteJSON(ClientMessage{Action: "quit"}); err != nil {
		t.Fatal(err)
	}
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				t.Errorf("expected normal close, got %v", err)
			}
			break
		}
	}

	select {
	case rs := <-runs:
		if rs.Length < 1 || rs.Ticks < 1 {
			t.Errorf("unexpected run stats %+v", rs)
		}
	case <-time.After(2 * time.Second):
		t.Error("run end was not reported")
	}
}

func TestWebSocketRejectsSecondConnection(t *testing.T) {
	_, url := newTestServer(t, nil)
	first := dial(t, url)

	var msg ServerMessage
	if err := first.ReadJSON(&msg); err != nil || msg.Type != "config" {
		t.Fatalf("first connection not accepted: %v %+v", err, msg)
	}

	second := dial(t, url)
	_, _, err := second.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		t.Fatalf("expected close for the second connection, got %v", err)
	}
	if ce, ok := err.(*websocket.CloseError); ok && ce.Text != "Already connected" {
		t.Errorf("unexpected close reason %q", ce.Text)
	}
}

func TestEventQueueDrain(t *testing.T) {
	q := newEventQueue()
	for i := 0; i < 100; i++ {
		q.push(game.EventUp)
	}
	if n := len(q.Drain()); n != 64 {
		t.Errorf("expected the queue to cap at 64 events, got %d", n)
	}
	if n := len(q.Drain()); n != 0 {
		t.Errorf("expected empty drain, got %d", n)
	}
}
