package main

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"net/http"

	"github.com/BauerAlexandr/the-snake/pkg/config"
	"github.com/BauerAlexandr/the-snake/pkg/game"
	"github.com/BauerAlexandr/the-snake/pkg/store"
)

//go:embed static
var staticFiles embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	srv := &Server{
		Board: game.Board{Width: cfg.Width, Height: cfg.Height, Cell: cfg.Cell},
		Tick:  cfg.TickInterval(),
		Seed:  cfg.Seed,
	}
	if err := srv.Board.Validate(); err != nil {
		log.Fatal(err)
	}

	if cfg.DBPath != "" {
		stats, err := store.Open(cfg.DBPath)
		if err != nil {
			log.Fatal(err)
		}
		defer stats.Close()
		srv.OnRunEnd = func(rs game.RunStats) {
			if err := stats.SaveRun(rs); err != nil {
				log.Println("Failed to save run:", err)
			}
		}
	}

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		log.Fatal(err)
	}
	http.Handle("/", http.FileServer(http.FS(static)))
	http.HandleFunc("/ws", srv.HandleWebSocket)

	fmt.Printf("🚀 Snake Web Server starting on http://localhost%s\n", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, nil))
}
