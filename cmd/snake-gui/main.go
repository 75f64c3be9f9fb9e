package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/BauerAlexandr/the-snake/pkg/config"
	"github.com/BauerAlexandr/the-snake/pkg/game"
	"github.com/BauerAlexandr/the-snake/pkg/store"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// keyEvents maps window keys to game events
var keyEvents = map[ebiten.Key]game.Event{
	ebiten.KeyArrowUp:    game.EventUp,
	ebiten.KeyW:          game.EventUp,
	ebiten.KeyArrowDown:  game.EventDown,
	ebiten.KeyS:          game.EventDown,
	ebiten.KeyArrowLeft:  game.EventLeft,
	ebiten.KeyA:          game.EventLeft,
	ebiten.KeyArrowRight: game.EventRight,
	ebiten.KeyD:          game.EventRight,
	ebiten.KeyP:          game.EventPause,
	ebiten.KeySpace:      game.EventPause,
	ebiten.KeyEscape:     game.EventQuit,
	ebiten.KeyQ:          game.EventQuit,
}

// Window runs the game inside an ebiten window. ebiten calls Update once per
// tick at the configured TPS, so every Update is exactly one game tick.
type Window struct {
	game *game.Game
	cell float32
	keys []ebiten.Key
	dst  *ebiten.Image
}

// Update drains the keys pressed since the last tick and advances the game
func (w *Window) Update() error {
	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])

	var events []game.Event
	for _, k := range w.keys {
		if ev, ok := keyEvents[k]; ok {
			events = append(events, ev)
		}
	}

	if res := w.game.Tick(events); res.Quit {
		return ebiten.Termination
	}
	return nil
}

// Draw paints the board with a filled, bordered square per occupied cell
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(config.BoardBackgroundColor)
	w.dst = screen
	w.game.Draw(w)
	w.dst = nil

	hud := fmt.Sprintf("Length: %d  Best: %d  Resets: %d",
		w.game.Snake().Length(), w.game.BestLength(), w.game.Resets())
	if w.game.Paused() {
		hud += "  PAUSED"
	}
	ebitenutil.DebugPrint(screen, hud)
}

// Layout keeps the logical screen at the board size
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.game.Board.Width, w.game.Board.Height
}

// FillCell implements game.Canvas
func (w *Window) FillCell(p game.Point, c color.RGBA) {
	x, y := float32(p.X), float32(p.Y)
	vector.DrawFilledRect(w.dst, x, y, w.cell, w.cell, c, false)
	vector.StrokeRect(w.dst, x, y, w.cell, w.cell, 1, config.BorderColor, false)
}

// ClearCell implements game.Canvas
func (w *Window) ClearCell(p game.Point) {
	vector.DrawFilledRect(w.dst, float32(p.X), float32(p.Y), w.cell, w.cell, config.BoardBackgroundColor, false)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	board := game.Board{Width: cfg.Width, Height: cfg.Height, Cell: cfg.Cell}
	g, err := game.NewGame(board, rand.New(rand.NewSource(seed)))
	if err != nil {
		log.Fatal(err)
	}

	if cfg.Record {
		rec, err := game.NewRecorder(cfg.RecordDir, g.SessionID)
		if err != nil {
			log.Fatal(err)
		}
		defer rec.Close()
		g.SetRecorder(rec)
	}

	if cfg.DBPath != "" {
		stats, err := store.Open(cfg.DBPath)
		if err != nil {
			log.Fatal(err)
		}
		defer stats.Close()
		g.OnRunEnd(func(rs game.RunStats) {
			if err := stats.SaveRun(rs); err != nil {
				log.Println("Failed to save run:", err)
			}
		})
	}

	ebiten.SetTPS(cfg.Speed)
	ebiten.SetWindowSize(board.Width, board.Height)
	ebiten.SetWindowTitle(config.Title)

	w := &Window{game: g, cell: float32(board.Cell)}
	if err := ebiten.RunGame(w); err != nil && err != ebiten.Termination {
		log.Println("Game stopped:", err)
	}
	g.End()
}
