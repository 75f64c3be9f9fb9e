package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of one game process
type Config struct {
	Width     int
	Height    int
	Cell      int
	Speed     int   // ticks per second
	Seed      int64 // 0 means seed from the clock
	Record    bool
	RecordDir string
	DBPath    string // empty disables run statistics
	Addr      string
}

// Default returns the settings of the classic 640x480 game
func Default() Config {
	return Config{
		Width:     ScreenWidth,
		Height:    ScreenHeight,
		Cell:      GridSize,
		Speed:     Speed,
		RecordDir: DefaultRecordDir,
		Addr:      DefaultAddr,
	}
}

// TickInterval returns the time between two ticks
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Speed)
}

// Load reads an optional .env file and then overrides the defaults from
// SNAKE_* environment variables.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function such as os.Getenv
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	ints := []struct {
		key string
		dst *int
	}{
		{"SNAKE_WIDTH", &cfg.Width},
		{"SNAKE_HEIGHT", &cfg.Height},
		{"SNAKE_CELL", &cfg.Cell},
		{"SNAKE_SPEED", &cfg.Speed},
	}
	for _, it := range ints {
		v := getenv(it.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", it.key, err)
		}
		*it.dst = n
	}

	if v := getenv("SNAKE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse SNAKE_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := getenv("SNAKE_RECORD"); v != "" {
		rec, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse SNAKE_RECORD: %w", err)
		}
		cfg.Record = rec
	}
	if v := getenv("SNAKE_RECORD_DIR"); v != "" {
		cfg.RecordDir = v
	}
	if v := getenv("SNAKE_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := getenv("SNAKE_ADDR"); v != "" {
		cfg.Addr = v
	}

	if cfg.Speed <= 0 {
		return Config{}, fmt.Errorf("SNAKE_SPEED must be positive, got %d", cfg.Speed)
	}
	return cfg, nil
}
