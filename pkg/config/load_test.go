package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

// TestFromEnvDefaults checks that an empty environment gives the classic game
func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults %+v, got %+v", Default(), cfg)
	}
	if cfg.TickInterval() != 50*time.Millisecond {
		t.Errorf("expected 50ms tick at 20 ticks/s, got %v", cfg.TickInterval())
	}
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"SNAKE_WIDTH":      "400",
		"SNAKE_HEIGHT":     "200",
		"SNAKE_CELL":       "10",
		"SNAKE_SPEED":      "10",
		"SNAKE_SEED":       "42",
		"SNAKE_RECORD":     "true",
		"SNAKE_RECORD_DIR": "out",
		"SNAKE_DB":         "stats.db",
		"SNAKE_ADDR":       ":9000",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Config{
		Width: 400, Height: 200, Cell: 10, Speed: 10, Seed: 42,
		Record: true, RecordDir: "out", DBPath: "stats.db", Addr: ":9000",
	}
	if cfg != want {
		t.Errorf("expected %+v, got %+v", want, cfg)
	}
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad width", map[string]string{"SNAKE_WIDTH": "wide"}},
		{"bad seed", map[string]string{"SNAKE_SEED": "x"}},
		{"bad record flag", map[string]string{"SNAKE_RECORD": "maybe"}},
		{"zero speed", map[string]string{"SNAKE_SPEED": "0"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FromEnv(envMap(tc.env)); err == nil {
				t.Errorf("expected error for %v", tc.env)
			}
		})
	}
}

// TestLoadDotEnv checks that values from a .env file reach the config
func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("SNAKE_SPEED=5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SNAKE_SPEED", "")
	os.Unsetenv("SNAKE_SPEED")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Speed != 5 {
		t.Errorf("expected speed 5 from .env, got %d", cfg.Speed)
	}
}
