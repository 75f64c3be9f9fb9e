package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/BauerAlexandr/the-snake/pkg/config"
	"github.com/BauerAlexandr/the-snake/pkg/game"
	"github.com/BauerAlexandr/the-snake/pkg/input"
	"github.com/BauerAlexandr/the-snake/pkg/renderer"
	"github.com/BauerAlexandr/the-snake/pkg/store"
)

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

	var stats *store.Store
	if cfg.DBPath != "" {
		stats, err = store.Open(cfg.DBPath)
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

	// Initialize input handler
	inputHandler := input.NewKeyboardHandler()
	if err := inputHandler.Start(); err != nil {
		fmt.Println("Error opening keyboard:", err)
		return
	}
	defer inputHandler.Stop()

	render := renderer.NewTerminalRenderer(board)
	render.HideCursor()
	defer render.ShowCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ticker := time.NewTicker(cfg.TickInterval())
	defer ticker.Stop()

	if err := g.Run(ctx, inputHandler, render, ticker.C); err != nil && !errors.Is(err, context.Canceled) {
		log.Println("Game stopped:", err)
	}

	fmt.Printf("\n  Best length this session: %d\n", g.BestLength())
	if stats != nil {
		if best, err := stats.Best(1); err == nil && len(best) > 0 {
			fmt.Printf("  Best length ever: %d (%s)\n", best[0].Length, best[0].End.Local().Format("2006-01-02 15:04"))
		}
	}
	fmt.Println("  Thanks for playing! 👋")
}
