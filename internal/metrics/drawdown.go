package metrics

type Drawdown struct {
	name string
	peak float64
	max  float64
	seen bool
}

func NewDrawdown() *Drawdown {
	return &Drawdown{
		name: "drawdown",
	}
}

func (d *Drawdown) Name() string {
	return d.name
}

func (d *Drawdown) Observe(wage float64, step int) {
	if !d.seen || wage > d.peak {
		d.peak = wage
		d.seen = true
	}
	if drop := d.peak - wage; drop > d.max {
		d.max = drop
	}
}

func (d *Drawdown) Value() float64 {
	return d.max
}

func (d *Drawdown) Reset() {
	d.peak = 0
	d.max = 0
	d.seen = false
}
