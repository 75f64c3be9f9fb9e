package game

import (
	"context"
	"fmt"
	"time"

	"github.com/BauerAlexandr/the-snake/pkg/config"
	"github.com/google/uuid"
)

// Game owns the snake and the food and advances them one tick at a time.
// It is not safe for concurrent use; front-ends feed it from a single goroutine.
type Game struct {
	Board     Board
	SessionID string

	snake *Snake
	food  *Food

	paused     bool
	ended      bool
	tick       int
	resets     int
	bestLength int

	runStart     time.Time
	runStartTick int

	recorder *GameRecorder
	onRunEnd func(RunStats)
}

// NewGame creates a game on the given board. The board must be a whole number
// of cells on both axes.
func NewGame(board Board, rng Source) (*Game, error) {
	if err := board.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	g := &Game{
		Board:      board,
		SessionID:  uuid.New().String(),
		snake:      NewSnake(board, config.SnakeColor),
		food:       NewFood(board, rng, config.AppleColor),
		bestLength: 1,
		runStart:   time.Now(),
	}
	return g, nil
}

// SetRecorder attaches a recorder that receives every completed tick
func (g *Game) SetRecorder(r *GameRecorder) {
	g.recorder = r
}

// OnRunEnd registers a callback invoked when a run ends by collision or quit
func (g *Game) OnRunEnd(fn func(RunStats)) {
	g.onRunEnd = fn
}

// Snake returns the player's snake
func (g *Game) Snake() *Snake { return g.snake }

// Food returns the food
func (g *Game) Food() *Food { return g.food }

// Paused reports whether ticks are currently skipped
func (g *Game) Paused() bool { return g.paused }

// Ticks returns the number of completed ticks
func (g *Game) Ticks() int { return g.tick }

// Resets returns how many times the snake ran into itself
func (g *Game) Resets() int { return g.resets }

// BestLength returns the longest body reached in this session
func (g *Game) BestLength() int { return g.bestLength }

// TogglePause toggles the pause state
func (g *Game) TogglePause() {
	g.paused = !g.paused
}

// Tick applies buffered input and advances the game by one step.
// Once the session has ended every call reports Quit and changes nothing.
func (g *Game) Tick(events []Event) TickResult {
	var res TickResult
	if g.ended {
		res.Quit = true
		return res
	}

	for _, ev := range events {
		switch ev {
		case EventQuit:
			g.End()
			res.Quit = true
			return res
		case EventPause:
			g.TogglePause()
		default:
			if h, ok := ev.Heading(); ok {
				g.snake.SetPendingHeading(h)
			}
		}
	}

	if g.paused {
		res.Paused = true
		return res
	}

	g.snake.CommitHeading()
	length := g.snake.Length()

	if g.snake.Step() {
		res.Collided = true
		g.resets++
		g.finishRun(length, g.tick+1)
	} else if g.snake.Head() == g.food.Position() {
		g.snake.Grow()
		g.food.Relocate()
		res.Ate = true
	}

	if l := g.snake.Length(); l > g.bestLength {
		g.bestLength = l
	}
	g.tick++

	if g.recorder != nil {
		g.recorder.RecordStep(StepRecord{
			SessionID: g.SessionID,
			Time:      time.Now(),
			Result:    res,
			State:     g.Snapshot(),
		})
	}
	return res
}

// End closes the current run. Further calls are no-ops.
func (g *Game) End() {
	if g.ended {
		return
	}
	g.ended = true
	g.finishRun(g.snake.Length(), g.tick)
}

// finishRun reports a run that covered ticks up to (not including) endTick
func (g *Game) finishRun(length, endTick int) {
	now := time.Now()
	if g.onRunEnd != nil {
		g.onRunEnd(RunStats{
			SessionID: g.SessionID,
			Length:    length,
			Ticks:     endTick - g.runStartTick,
			Start:     g.runStart,
			End:       now,
		})
	}
	g.runStart = now
	g.runStartTick = endTick
}

// Draw paints the snake and the food on c
func (g *Game) Draw(c Canvas) {
	for _, d := range []Drawable{g.snake, g.food} {
		d.Draw(c)
	}
}

// Snapshot returns a copy of the current state for rendering and serialization
func (g *Game) Snapshot() GameState {
	state := GameState{
		Board:        g.Board,
		Snake:        g.snake.Body(),
		Head:         g.snake.Head(),
		Food:         g.food.Position(),
		Heading:      g.snake.Heading(),
		Length:       g.snake.Length(),
		TargetLength: g.snake.TargetLength(),
		BestLength:   g.bestLength,
		Resets:       g.resets,
		Tick:         g.tick,
		Paused:       g.paused,
	}
	if last, ok := g.snake.Vacated(); ok {
		state.Vacated = &last
	}
	return state
}

// Run drives the game from a tick channel until a quit event arrives or ctx is
// cancelled. Each tick drains src, advances the game and renders it.
func (g *Game) Run(ctx context.Context, src InputSource, r Renderer, ticks <-chan time.Time) error {
	if r != nil {
		r.Render(g)
	}
	for {
		select {
		case <-ctx.Done():
			g.End()
			return ctx.Err()
		case <-ticks:
			res := g.Tick(src.Drain())
			if res.Quit {
				return nil
			}
			if r != nil {
				r.Render(g)
			}
		}
	}
}
