package game

import "image/color"

// Canvas is a cell-addressed drawing surface owned by a renderer
type Canvas interface {
	FillCell(p Point, c color.RGBA)
	ClearCell(p Point)
}

// Drawable is implemented by entities that know how to paint themselves
type Drawable interface {
	Draw(c Canvas)
}

// InputSource is drained once per tick for the events buffered since the last drain
type InputSource interface {
	Drain() []Event
}

// Renderer presents the game after each tick
type Renderer interface {
	Render(g *Game)
}

var (
	_ Drawable = (*Snake)(nil)
	_ Drawable = (*Food)(nil)
)
