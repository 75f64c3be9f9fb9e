package config

import "image/color"

// Board dimensions in pixels
const (
	ScreenWidth  = 640
	ScreenHeight = 480
	GridSize     = 20 // side of one cell
)

// Speed in ticks per second
const Speed = 20

// Colors
var (
	BoardBackgroundColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	BorderColor          = color.RGBA{R: 93, G: 216, B: 228, A: 255}
	AppleColor           = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	SnakeColor           = color.RGBA{R: 0, G: 255, B: 0, A: 255}
)

// Window
const (
	Title = "Snake"
)

// Characters for terminal rendering
const (
	CharEmpty = "  " // Two spaces to match emoji width
	CharHead  = "🟢"
	CharBody  = "🟩"
	CharApple = "🍎"
)

// Recording and storage defaults
const (
	DefaultRecordDir = "records"
	DefaultAddr      = ":8080"
)
