package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestRecorderRoundTrip records a few ticks and reads them back
func TestRecorderRoundTrip(t *testing.T) {
	dir := t.TempDir()
	g := newTestGame(t, 19, 12, 0, 0)

	rec, err := NewRecorder(dir, g.SessionID)
	if err != nil {
		t.Fatalf("NewRecorder failed: %v", err)
	}
	g.SetRecorder(rec)

	for i := 0; i < 5; i++ {
		g.Tick(nil)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	// Recording after close is ignored
	rec.RecordStep(StepRecord{})

	if !strings.HasPrefix(filepath.Base(rec.Path()), "game_"+g.SessionID+"_") {
		t.Errorf("unexpected file name %s", rec.Path())
	}

	f, err := os.Open(rec.Path())
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := ReadRecording(f)
	if err != nil {
		t.Fatalf("ReadRecording failed: %v", err)
	}
	if len(records)+rec.Dropped() != 5 {
		t.Fatalf("expected 5 records, got %d (dropped %d)", len(records), rec.Dropped())
	}
	for i, r := range records {
		if r.State.Tick != i+1 {
			t.Errorf("record %d: expected tick %d, got %d", i, i+1, r.State.Tick)
		}
		if r.SessionID != g.SessionID {
			t.Errorf("record %d: wrong session %q", i, r.SessionID)
		}
	}
	if !records[2].Result.Ate {
		t.Errorf("expected the third tick to eat the food at (380,240)")
	}
}

func TestReadRecordingSkipsBadLines(t *testing.T) {
	input := `{"sessionId":"a","state":{"tick":1}}
not json
{"sessionId":"a","state":{"tick":2}}
`
	records, err := ReadRecording(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 || records[1].State.Tick != 2 {
		t.Errorf("unexpected records %+v", records)
	}
}
