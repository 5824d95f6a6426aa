package watch

// Direction of travel between two screens.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Transition describes one screen change.
type Transition struct {
	From      int
	To        int
	Direction Direction
}

// Carousel tracks which of n screens is active. Exactly one is.
type Carousel struct {
	n      int
	active int
}

func NewCarousel(n int) Carousel {
	if n < 1 {
		n = 1
	}
	return Carousel{n: n}
}

func (c Carousel) Active() int { return c.active }
func (c Carousel) Len() int    { return c.n }

// GoTo activates screen i. It returns false, with no transition, when i is
// already active or out of range.
func (c *Carousel) GoTo(i int) (Transition, bool) {
	if i == c.active || i < 0 || i >= c.n {
		return Transition{}, false
	}
	t := Transition{From: c.active, To: i, Direction: Backward}
	if i > c.active {
		t.Direction = Forward
	}
	c.active = i
	return t, true
}

func (c *Carousel) Next() (Transition, bool) {
	return c.GoTo((c.active + 1) % c.n)
}

func (c *Carousel) Previous() (Transition, bool) {
	return c.GoTo((c.active - 1 + c.n) % c.n)
}
