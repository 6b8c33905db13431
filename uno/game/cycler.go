package game

const (
	left  = -1
	right = 1
)

// Cycler walks seat indexes around the table in the current direction.
type Cycler struct {
	size      int
	current   int
	direction int
}

func NewCycler(size int) *Cycler {
	return &Cycler{
		size:      size,
		current:   0,
		direction: right,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Direction() int {
	return c.direction
}

func (c *Cycler) Next() int {
	c.current = c.Peek()
	return c.current
}

// Peek returns the seat Next would move to.
func (c *Cycler) Peek() int {
	return ((c.current+c.direction)%c.size + c.size) % c.size
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case right:
		c.direction = left
	case left:
		c.direction = right
	}
}

func (c *Cycler) Reset() {
	c.current = 0
	c.direction = right
}
