package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/BauerAlexandr/the-snake/pkg/config"
	"github.com/BauerAlexandr/the-snake/pkg/game"
	"github.com/BauerAlexandr/the-snake/pkg/store"
)

// runsFromRecords splits a recording into runs at every collision. The last
// run ends with the recording itself.
func runsFromRecords(records []game.StepRecord) []game.RunStats {
	if len(records) == 0 {
		return nil
	}

	var runs []game.RunStats
	sessionID := records[0].SessionID
	start := records[0].Time
	startTick := records[0].State.Tick - 1
	prevLen := 1

	for _, rec := range records {
		if rec.Result.Collided {
			runs = append(runs, game.RunStats{
				SessionID: sessionID,
				Length:    prevLen,
				Ticks:     rec.State.Tick - startTick,
				Start:     start,
				End:       rec.Time,
			})
			start = rec.Time
			startTick = rec.State.Tick
		}
		prevLen = rec.State.Length
	}

	last := records[len(records)-1]
	if last.State.Tick > startTick {
		runs = append(runs, game.RunStats{
			SessionID: sessionID,
			Length:    last.State.Length,
			Ticks:     last.State.Tick - startTick,
			Start:     start,
			End:       last.Time,
		})
	}
	return runs
}

// importFile stores the runs of one recording unless its session is already known
func importFile(s *store.Store, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open record: %w", err)
	}
	defer f.Close()

	records, err := game.ReadRecording(f)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	known, err := s.SessionRuns(records[0].SessionID)
	if err != nil {
		return 0, err
	}
	if known > 0 {
		return 0, nil
	}

	count := 0
	for _, rs := range runsFromRecords(records) {
		if err := s.SaveRun(rs); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	dir := flag.String("dir", cfg.RecordDir, "directory holding recordings")
	dbPath := flag.String("db", cfg.DBPath, "statistics database")
	flag.Parse()

	if *dbPath == "" {
		*dbPath = filepath.Join("data", "stats.db")
	}

	s, err := store.Open(*dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer s.Close()

	paths, err := filepath.Glob(filepath.Join(*dir, "*.jsonl"))
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Found %d recordings to import...", len(paths))

	total := 0
	for _, p := range paths {
		n, err := importFile(s, p)
		if err != nil {
			log.Printf("Error importing %s: %v\n", p, err)
			continue
		}
		total += n
	}

	fmt.Printf("✅ Import complete! Stored %d runs into %s\n", total, *dbPath)
}
