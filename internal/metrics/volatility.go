package metrics

import (
	"math"
)

type Volatility struct {
	name  string
	prev  float64
	sum   float64
	moves int
}

func NewVolatility() *Volatility {
	return &Volatility{
		name: "volatility",
	}
}

func (v *Volatility) Name() string {
	return v.name
}

func (v *Volatility) Observe(wage float64, step int) {
	if step > 0 {
		v.sum += math.Abs(wage - v.prev)
		v.moves++
	}
	v.prev = wage
}

func (v *Volatility) Value() float64 {
	if v.moves == 0 {
		return 0
	}
	return v.sum / float64(v.moves)
}

func (v *Volatility) Reset() {
	v.prev = 0
	v.sum = 0
	v.moves = 0
}
