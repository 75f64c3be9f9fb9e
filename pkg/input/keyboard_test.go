package input

import (
	"testing"

	"github.com/BauerAlexandr/the-snake/pkg/game"
	"github.com/eiannone/keyboard"
)

func TestParseEvent(t *testing.T) {
	tests := []struct {
		name  string
		input KeyInput
		want  game.Event
	}{
		{"arrow up", KeyInput{Key: keyboard.KeyArrowUp}, game.EventUp},
		{"arrow down", KeyInput{Key: keyboard.KeyArrowDown}, game.EventDown},
		{"arrow left", KeyInput{Key: keyboard.KeyArrowLeft}, game.EventLeft},
		{"arrow right", KeyInput{Key: keyboard.KeyArrowRight}, game.EventRight},
		{"w", KeyInput{Char: 'w'}, game.EventUp},
		{"S", KeyInput{Char: 'S'}, game.EventDown},
		{"a", KeyInput{Char: 'a'}, game.EventLeft},
		{"D", KeyInput{Char: 'D'}, game.EventRight},
		{"p", KeyInput{Char: 'p'}, game.EventPause},
		{"q", KeyInput{Char: 'q'}, game.EventQuit},
		{"esc", KeyInput{Key: keyboard.KeyEsc}, game.EventQuit},
		{"other", KeyInput{Char: 'x'}, game.EventNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseEvent(tc.input); got != tc.want {
				t.Errorf("ParseEvent(%+v) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

// TestDrain checks that all buffered keys are returned once, in order
func TestDrain(t *testing.T) {
	h := NewKeyboardHandler()
	h.inputChan <- KeyInput{Char: 'w'}
	h.inputChan <- KeyInput{Char: 'x'}
	h.inputChan <- KeyInput{Key: keyboard.KeyArrowLeft}

	events := h.Drain()
	want := []game.Event{game.EventUp, game.EventLeft}
	if len(events) != len(want) {
		t.Fatalf("expected %v, got %v", want, events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d: expected %v, got %v", i, want[i], events[i])
		}
	}

	if again := h.Drain(); len(again) != 0 {
		t.Errorf("second drain should be empty, got %v", again)
	}
}
