package input

import (
	"github.com/BauerAlexandr/the-snake/pkg/game"
	"github.com/eiannone/keyboard"
)

// KeyboardHandler handles keyboard input
type KeyboardHandler struct {
	inputChan chan KeyInput
}

// KeyInput represents a keyboard input event
type KeyInput struct {
	Char rune
	Key  keyboard.Key
}

// NewKeyboardHandler creates a new keyboard input handler
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{
		inputChan: make(chan KeyInput, 64),
	}
}

// Start begins listening for keyboard input
func (h *KeyboardHandler) Start() error {
	if err := keyboard.Open(); err != nil {
		return err
	}

	go func() {
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			h.inputChan <- KeyInput{Char: char, Key: key}
		}
	}()

	return nil
}

// Stop stops the keyboard handler
func (h *KeyboardHandler) Stop() {
	keyboard.Close()
}

// Drain returns the events of all keys pressed since the previous drain
func (h *KeyboardHandler) Drain() []game.Event {
	var events []game.Event
	for {
		select {
		case in := <-h.inputChan:
			if ev := ParseEvent(in); ev != game.EventNone {
				events = append(events, ev)
			}
		default:
			return events
		}
	}
}

// ParseEvent maps a key to a game event
func ParseEvent(input KeyInput) game.Event {
	// Handle arrow keys
	switch input.Key {
	case keyboard.KeyArrowUp:
		return game.EventUp
	case keyboard.KeyArrowDown:
		return game.EventDown
	case keyboard.KeyArrowLeft:
		return game.EventLeft
	case keyboard.KeyArrowRight:
		return game.EventRight
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return game.EventQuit
	case keyboard.KeySpace:
		return game.EventPause
	}

	// Handle WASD keys
	switch input.Char {
	case 'w', 'W':
		return game.EventUp
	case 's', 'S':
		return game.EventDown
	case 'a', 'A':
		return game.EventLeft
	case 'd', 'D':
		return game.EventRight
	case 'p', 'P', ' ':
		return game.EventPause
	case 'q', 'Q':
		return game.EventQuit
	}

	return game.EventNone
}

var _ game.InputSource = (*KeyboardHandler)(nil)
