package metrics

// Concession measures how far below its opening expectation a
// trajectory ended. Negative values mean the wage settled above where
// it started.
type Concession struct {
	name    string
	opening float64
	last    float64
	seen    bool
}

func NewConcession() *Concession {
	return &Concession{
		name: "concession",
	}
}

func (c *Concession) Name() string {
	return c.name
}

func (c *Concession) Observe(wage float64, step int) {
	if !c.seen {
		c.opening = wage
		c.seen = true
	}
	c.last = wage
}

func (c *Concession) Value() float64 {
	if !c.seen {
		return 0
	}
	return c.opening - c.last
}

func (c *Concession) Reset() {
	c.opening = 0
	c.last = 0
	c.seen = false
}
