package game

import (
	"fmt"
	"time"
)

// Point is the top-left pixel coordinate of a board cell
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Heading is a unit direction vector
type Heading = Point

// Movement headings
var (
	Up    = Heading{X: 0, Y: -1}
	Down  = Heading{X: 0, Y: 1}
	Left  = Heading{X: -1, Y: 0}
	Right = Heading{X: 1, Y: 0}
)

// Opposite returns the reversed vector
func (p Point) Opposite() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// IsZero reports whether p is the zero vector ("no heading")
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Board is the toroidal playing field, measured in pixels
type Board struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Cell   int `json:"cell"`
}

// Validate checks that the board is a whole number of cells on both axes
func (b Board) Validate() error {
	if b.Cell <= 0 {
		return fmt.Errorf("invalid cell size %d", b.Cell)
	}
	if b.Width <= 0 || b.Width%b.Cell != 0 {
		return fmt.Errorf("board width %d is not a positive multiple of cell size %d", b.Width, b.Cell)
	}
	if b.Height <= 0 || b.Height%b.Cell != 0 {
		return fmt.Errorf("board height %d is not a positive multiple of cell size %d", b.Height, b.Cell)
	}
	return nil
}

// Columns returns the number of cells per row
func (b Board) Columns() int { return b.Width / b.Cell }

// Rows returns the number of cells per column
func (b Board) Rows() int { return b.Height / b.Cell }

// Center returns the starting cell of the snake, always on the grid
func (b Board) Center() Point {
	return Point{X: b.Columns() / 2 * b.Cell, Y: b.Rows() / 2 * b.Cell}
}

// Wrap folds a coordinate that left the board back in from the opposite edge.
// Each axis is handled independently.
func (b Board) Wrap(p Point) Point {
	if p.X < 0 {
		p.X = b.Width - b.Cell
	} else if p.X >= b.Width {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = b.Height - b.Cell
	} else if p.Y >= b.Height {
		p.Y = 0
	}
	return p
}

// Event is a discrete input delivered by an input collaborator
type Event int

const (
	EventNone Event = iota
	EventUp
	EventDown
	EventLeft
	EventRight
	EventPause
	EventQuit
)

// Heading returns the movement vector of a directional event
func (e Event) Heading() (Heading, bool) {
	switch e {
	case EventUp:
		return Up, true
	case EventDown:
		return Down, true
	case EventLeft:
		return Left, true
	case EventRight:
		return Right, true
	}
	return Heading{}, false
}

// EventFromAction maps a textual client action ("up", "quit", ...) to an event
func EventFromAction(action string) Event {
	switch action {
	case "up":
		return EventUp
	case "down":
		return EventDown
	case "left":
		return EventLeft
	case "right":
		return EventRight
	case "pause":
		return EventPause
	case "quit":
		return EventQuit
	}
	return EventNone
}

// TickResult reports what happened during one tick
type TickResult struct {
	Quit     bool `json:"quit,omitempty"`
	Paused   bool `json:"paused,omitempty"`
	Collided bool `json:"collided,omitempty"`
	Ate      bool `json:"ate,omitempty"`
}

// GameState is a snapshot of the game for rendering and serialization
type GameState struct {
	Board        Board   `json:"board"`
	Snake        []Point `json:"snake"`
	Head         Point   `json:"head"`
	Food         Point   `json:"food"`
	Heading      Heading `json:"heading"`
	Vacated      *Point  `json:"vacated,omitempty"`
	Length       int     `json:"length"`
	TargetLength int     `json:"targetLength"`
	BestLength   int     `json:"bestLength"`
	Resets       int     `json:"resets"`
	Tick         int     `json:"tick"`
	Paused       bool    `json:"paused"`
}

// StepRecord is one line of a game recording
type StepRecord struct {
	SessionID string     `json:"sessionId"`
	Time      time.Time  `json:"time"`
	Result    TickResult `json:"result"`
	State     GameState  `json:"state"`
}

// RunStats summarizes a finished run (from start or last reset up to the next reset or quit)
type RunStats struct {
	SessionID string
	Length    int
	Ticks     int
	Start     time.Time
	End       time.Time
}
