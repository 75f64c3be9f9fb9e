package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BauerAlexandr/the-snake/pkg/config"
	"github.com/BauerAlexandr/the-snake/pkg/game"
	"github.com/BauerAlexandr/the-snake/pkg/renderer"
)

// RecordFile describes one recording on disk
type RecordFile struct {
	Name      string
	Size      int64
	Time      time.Time
	SessionID string
}

// listRecords returns the recordings in dir, newest first
func listRecords(dir string) ([]RecordFile, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var records []RecordFile
	for _, f := range files {
		if filepath.Ext(f.Name()) != ".jsonl" {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		// expecting format: game_{sessionID}_{timestamp}.jsonl
		sessID := ""
		parts := strings.Split(strings.TrimSuffix(f.Name(), ".jsonl"), "_")
		if len(parts) >= 3 {
			sessID = strings.Join(parts[1:len(parts)-1], "_")
		}
		records = append(records, RecordFile{
			Name:      f.Name(),
			Size:      info.Size(),
			Time:      info.ModTime(),
			SessionID: sessID,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Time.After(records[j].Time)
	})
	return records, nil
}

func main() {
	dir := flag.String("dir", config.DefaultRecordDir, "directory holding recordings")
	speed := flag.Int("speed", config.Speed, "playback ticks per second")
	flag.Parse()

	if flag.NArg() == 0 {
		records, err := listRecords(*dir)
		if err != nil {
			log.Fatal(err)
		}
		if len(records) == 0 {
			fmt.Printf("No recordings found in %s\n", *dir)
			return
		}
		fmt.Println("📼 Recordings:")
		for _, r := range records {
			fmt.Printf("  %s  session=%s  %d bytes  %s\n",
				r.Name, r.SessionID, r.Size, r.Time.Format("2006-01-02 15:04:05"))
		}
		fmt.Println("\nUsage: replay [-dir records] [-speed 20] <file>")
		return
	}

	path := flag.Arg(0)
	if !filepath.IsAbs(path) && filepath.Dir(path) == "." {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			path = filepath.Join(*dir, path)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatal("Failed to open record:", err)
	}
	records, err := game.ReadRecording(f)
	f.Close()
	if err != nil {
		log.Fatal(err)
	}
	if len(records) == 0 {
		fmt.Println("Recording is empty")
		return
	}
	if *speed <= 0 {
		*speed = config.Speed
	}

	render := renderer.NewTerminalRenderer(records[0].State.Board)
	render.HideCursor()
	defer render.ShowCursor()

	ticker := time.NewTicker(time.Second / time.Duration(*speed))
	defer ticker.Stop()

	for _, rec := range records {
		<-ticker.C
		render.RenderState(rec.State)
	}
	fmt.Printf("\n  End of replay: %d ticks, session %s\n", len(records), records[0].SessionID)
}
