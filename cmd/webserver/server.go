package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/BauerAlexandr/the-snake/pkg/game"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// ServerMessage is sent to the browser
type ServerMessage struct {
	Type  string          `json:"type"`
	Board *game.Board     `json:"board,omitempty"`
	State *game.GameState `json:"state,omitempty"`
}

// ClientMessage is received from the browser
type ClientMessage struct {
	Action string `json:"action"`
}

// Server runs one game per websocket connection
type Server struct {
	Board    game.Board
	Tick     time.Duration
	Seed     int64 // 0 means seed from the clock
	OnRunEnd func(game.RunStats)

	// Tracks active IP connections, one game per address
	activeIPs sync.Map
}

// eventQueue buffers client actions between ticks
type eventQueue struct {
	ch chan game.Event
}

func newEventQueue() *eventQueue {
	return &eventQueue{ch: make(chan game.Event, 64)}
}

// push enqueues ev, dropping it when the queue is full
func (q *eventQueue) push(ev game.Event) {
	select {
	case q.ch <- ev:
	default:
	}
}

// Drain implements game.InputSource
func (q *eventQueue) Drain() []game.Event {
	var events []game.Event
	for {
		select {
		case ev := <-q.ch:
			events = append(events, ev)
		default:
			return events
		}
	}
}

// stateWriter renders the game by sending a state message over the socket
type stateWriter struct {
	conn   *websocket.Conn
	cancel context.CancelFunc
	err    error
}

// Render implements game.Renderer
func (w *stateWriter) Render(g *game.Game) {
	if w.err != nil {
		return
	}
	state := g.Snapshot()
	if err := w.conn.WriteJSON(ServerMessage{Type: "state", State: &state}); err != nil {
		w.err = err
		w.cancel()
	}
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// HandleWebSocket plays one game over the connection
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	defer conn.Close()

	ip := remoteIP(r)
	if _, loaded := s.activeIPs.LoadOrStore(ip, true); loaded {
		log.Printf("Connection rejected: IP %s is already connected\n", ip)
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "Already connected"))
		return
	}
	defer s.activeIPs.Delete(ip)

	log.Println("New WebSocket connection from:", r.RemoteAddr)

	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, err := game.NewGame(s.Board, rand.New(rand.NewSource(seed)))
	if err != nil {
		log.Println("Failed to create game:", err)
		return
	}
	if s.OnRunEnd != nil {
		g.OnRunEnd(s.OnRunEnd)
	}

	if err := conn.WriteJSON(ServerMessage{Type: "config", Board: &s.Board}); err != nil {
		log.Println("Write error:", err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	queue := newEventQueue()

	// Input goroutine only enqueues; the game is touched by the tick loop alone
	go func() {
		defer cancel()
		for {
			var msg ClientMessage
			if err := conn.ReadJSON(&msg); err != nil {
				if ctx.Err() == nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					log.Println("Read error:", err)
				}
				return
			}
			if ev := game.EventFromAction(msg.Action); ev != game.EventNone {
				queue.push(ev)
			}
		}
	}()

	ticker := time.NewTicker(s.Tick)
	defer ticker.Stop()

	out := &stateWriter{conn: conn, cancel: cancel}
	err = g.Run(ctx, queue, out, ticker.C)
	switch {
	case err == nil:
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "Thanks for playing"))
	case out.err != nil:
		log.Println("Write error:", out.err)
	case !errors.Is(err, context.Canceled):
		log.Println("Game stopped:", err)
	}
}
