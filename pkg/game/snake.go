package game

import "image/color"

// Snake is the player's creature. The body is ordered head first.
type Snake struct {
	board   Board
	body    []Point
	heading Heading
	pending Heading // zero value means no change requested
	target  int
	vacated Point
	hasLast bool
	color   color.RGBA
}

// NewSnake creates a snake of length 1 at the board center, heading right
func NewSnake(board Board, clr color.RGBA) *Snake {
	s := &Snake{board: board, color: clr}
	s.Reset()
	return s
}

// Reset returns the snake to its starting state in place
func (s *Snake) Reset() {
	s.body = append(s.body[:0], s.board.Center())
	s.target = 1
	s.heading = Right
	s.pending = Heading{}
	s.vacated = Point{}
	s.hasLast = false
}

// SetPendingHeading buffers a heading change for the next commit.
// A request that reverses the committed heading is ignored.
func (s *Snake) SetPendingHeading(h Heading) bool {
	if h.IsZero() || h == s.heading.Opposite() {
		return false
	}
	s.pending = h
	return true
}

// CommitHeading applies the buffered heading, if any
func (s *Snake) CommitHeading() {
	if s.pending.IsZero() {
		return
	}
	s.heading = s.pending
	s.pending = Heading{}
}

// Step advances the snake by one cell and reports whether it ran into itself.
// On collision the snake has already been reset when Step returns.
func (s *Snake) Step() (collided bool) {
	head := s.body[0]
	next := s.board.Wrap(Point{
		X: head.X + s.heading.X*s.board.Cell,
		Y: head.Y + s.heading.Y*s.board.Cell,
	})

	// The head and the segment right behind it are never counted
	if len(s.body) > 2 {
		for _, p := range s.body[2:] {
			if p == next {
				s.Reset()
				return true
			}
		}
	}

	s.body = append(s.body, Point{})
	copy(s.body[1:], s.body)
	s.body[0] = next

	if len(s.body) > s.target {
		s.vacated = s.body[len(s.body)-1]
		s.hasLast = true
		s.body = s.body[:len(s.body)-1]
	} else {
		s.vacated = Point{}
		s.hasLast = false
	}
	return false
}

// Grow raises the target length by one; the body catches up on the next step
func (s *Snake) Grow() {
	s.target++
}

// Head returns the head cell
func (s *Snake) Head() Point {
	return s.body[0]
}

// Body returns a copy of the occupied cells, head first
func (s *Snake) Body() []Point {
	out := make([]Point, len(s.body))
	copy(out, s.body)
	return out
}

// Vacated returns the tail cell dropped by the last step, if any
func (s *Snake) Vacated() (Point, bool) {
	return s.vacated, s.hasLast
}

// Heading returns the committed heading
func (s *Snake) Heading() Heading { return s.heading }

// Pending returns the buffered heading, or the zero vector
func (s *Snake) Pending() Heading { return s.pending }

// Length returns the current number of body cells
func (s *Snake) Length() int { return len(s.body) }

// TargetLength returns the length the body converges to
func (s *Snake) TargetLength() int { return s.target }

// Draw paints every body cell and erases the vacated one
func (s *Snake) Draw(c Canvas) {
	if last, ok := s.Vacated(); ok {
		c.ClearCell(last)
	}
	for _, p := range s.body {
		c.FillCell(p, s.color)
	}
}
