package game

import "image/color"

// Source draws uniformly distributed integers in [0, n).
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Food is the single target the snake eats
type Food struct {
	board Board
	rng   Source
	pos   Point
	color color.RGBA
}

// NewFood creates food at a random cell
func NewFood(board Board, rng Source, clr color.RGBA) *Food {
	f := &Food{board: board, rng: rng, color: clr}
	f.Relocate()
	return f
}

// Relocate moves the food to a uniformly random cell. Cells under the snake
// are not excluded.
func (f *Food) Relocate() {
	f.pos = Point{
		X: f.rng.Intn(f.board.Columns()) * f.board.Cell,
		Y: f.rng.Intn(f.board.Rows()) * f.board.Cell,
	}
}

// Position returns the food cell
func (f *Food) Position() Point {
	return f.pos
}

// Color returns the display color
func (f *Food) Color() color.RGBA {
	return f.color
}

// Draw paints the food cell
func (f *Food) Draw(c Canvas) {
	c.FillCell(f.pos, f.color)
}
