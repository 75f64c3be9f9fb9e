package renderer

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/BauerAlexandr/the-snake/pkg/config"
	"github.com/BauerAlexandr/the-snake/pkg/game"
)

// TerminalRenderer handles terminal-based rendering
type TerminalRenderer struct {
	out    io.Writer
	cell   int
	board  [][]int
	buffer strings.Builder
}

// Cell types for the board
const (
	cellEmpty = iota
	cellHead
	cellBody
	cellFood
)

const charWall = "⬜"

// NewTerminalRenderer creates a renderer for a board of the given size in pixels
func NewTerminalRenderer(b game.Board) *TerminalRenderer {
	return NewTerminalRendererTo(os.Stdout, b)
}

// NewTerminalRendererTo creates a renderer writing to out
func NewTerminalRendererTo(out io.Writer, b game.Board) *TerminalRenderer {
	// Pre-allocate board to reduce GC pressure
	board := make([][]int, b.Rows())
	for i := range board {
		board[i] = make([]int, b.Columns())
	}

	return &TerminalRenderer{
		out:   out,
		cell:  b.Cell,
		board: board,
	}
}

// clearScreen moves the cursor home and clears the terminal
func (r *TerminalRenderer) clearScreen() {
	r.buffer.WriteString("\033[H\033[2J\033[3J")
}

// ShowCursor shows the cursor (call on exit)
func (r *TerminalRenderer) ShowCursor() {
	fmt.Fprint(r.out, "\033[?25h")
}

// HideCursor hides the cursor (call on start)
func (r *TerminalRenderer) HideCursor() {
	fmt.Fprint(r.out, "\033[?25l")
}

// FillCell implements game.Canvas
func (r *TerminalRenderer) FillCell(p game.Point, c color.RGBA) {
	x, y := p.X/r.cell, p.Y/r.cell
	if y < 0 || y >= len(r.board) || x < 0 || x >= len(r.board[y]) {
		return
	}
	switch c {
	case config.AppleColor:
		// The snake is drawn first and stays on top of food under its body
		if r.board[y][x] == cellEmpty {
			r.board[y][x] = cellFood
		}
	default:
		r.board[y][x] = cellBody
	}
}

// ClearCell implements game.Canvas
func (r *TerminalRenderer) ClearCell(p game.Point) {
	x, y := p.X/r.cell, p.Y/r.cell
	if y < 0 || y >= len(r.board) || x < 0 || x >= len(r.board[y]) {
		return
	}
	r.board[y][x] = cellEmpty
}

func (r *TerminalRenderer) reset() {
	for y := range r.board {
		for x := range r.board[y] {
			r.board[y][x] = cellEmpty
		}
	}
}

func (r *TerminalRenderer) markHead(p game.Point) {
	x, y := p.X/r.cell, p.Y/r.cell
	if y >= 0 && y < len(r.board) && x >= 0 && x < len(r.board[y]) {
		r.board[y][x] = cellHead
	}
}

// Render implements game.Renderer
func (r *TerminalRenderer) Render(g *game.Game) {
	r.reset()
	g.Draw(r)
	r.markHead(g.Snake().Head())
	r.flush(g.Snapshot())
}

// RenderState draws a recorded snapshot
func (r *TerminalRenderer) RenderState(state game.GameState) {
	r.reset()
	for _, p := range state.Snake {
		r.FillCell(p, config.SnakeColor)
	}
	r.FillCell(state.Food, config.AppleColor)
	r.markHead(state.Head)
	r.flush(state)
}

func (r *TerminalRenderer) flush(state game.GameState) {
	r.buffer.Reset()
	r.clearScreen()

	r.buffer.WriteString("\n  🐍 SNAKE 🐍\n")
	r.buffer.WriteString(fmt.Sprintf("  Length: %d  |  Best: %d  |  Resets: %d  |  Tick: %d\n\n",
		state.Length, state.BestLength, state.Resets, state.Tick))

	width := 0
	if len(r.board) > 0 {
		width = len(r.board[0])
	}
	frame := "  " + strings.Repeat(charWall, width+2) + "\n"

	r.buffer.WriteString(frame)
	for _, row := range r.board {
		r.buffer.WriteString("  " + charWall)
		for _, cell := range row {
			switch cell {
			case cellEmpty:
				r.buffer.WriteString(config.CharEmpty)
			case cellHead:
				r.buffer.WriteString(config.CharHead)
			case cellBody:
				r.buffer.WriteString(config.CharBody)
			case cellFood:
				r.buffer.WriteString(config.CharApple)
			}
		}
		r.buffer.WriteString(charWall + "\n")
	}
	r.buffer.WriteString(frame)

	r.buffer.WriteString("\n  Use WASD or Arrow keys to move\n")
	r.buffer.WriteString("  P to pause, Q to quit\n")

	if state.Paused {
		r.buffer.WriteString("\n  ⏸️  PAUSED - Press P to continue\n")
	}

	fmt.Fprint(r.out, r.buffer.String())
}

var (
	_ game.Canvas   = (*TerminalRenderer)(nil)
	_ game.Renderer = (*TerminalRenderer)(nil)
)
