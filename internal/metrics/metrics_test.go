package metrics

import (
	"testing"
)

func observe(m interface {
	Observe(wage float64, step int)
}, wages ...float64) {
	for i, w := range wages {
		m.Observe(w, i)
	}
}

func TestVolatility(t *testing.T) {
	v := NewVolatility()
	observe(v, 100, 90, 95)

	if got := v.Value(); got != 7.5 {
		t.Errorf("expected 7.5, got %g", got)
	}
}

func TestVolatilityNoMoves(t *testing.T) {
	v := NewVolatility()
	v.Observe(100, 0)

	if got := v.Value(); got != 0 {
		t.Errorf("expected 0, got %g", got)
	}
}

func TestDrawdown(t *testing.T) {
	tests := []struct {
		name  string
		wages []float64
		want  float64
	}{
		{"peak then trough", []float64{100, 120, 80, 110}, 40},
		{"monotone rise", []float64{100, 110, 120}, 0},
		{"monotone fall", []float64{100, 90, 70}, 30},
		{"flat", []float64{100, 100, 100}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDrawdown()
			observe(d, tt.wages...)
			if got := d.Value(); got != tt.want {
				t.Errorf("expected %g, got %g", tt.want, got)
			}
		})
	}
}

func TestConcession(t *testing.T) {
	tests := []struct {
		name  string
		wages []float64
		want  float64
	}{
		{"settled below", []float64{100, 92, 85}, 15},
		{"settled above", []float64{100, 105, 110}, -10},
		{"unchanged", []float64{100, 100}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConcession()
			observe(c, tt.wages...)
			if got := c.Value(); got != tt.want {
				t.Errorf("expected %g, got %g", tt.want, got)
			}
		})
	}
}

func TestReset(t *testing.T) {
	v := NewVolatility()
	d := NewDrawdown()
	c := NewConcession()

	observe(v, 100, 50)
	observe(d, 100, 50)
	observe(c, 100, 50)

	v.Reset()
	d.Reset()
	c.Reset()

	if v.Value() != 0 || d.Value() != 0 || c.Value() != 0 {
		t.Error("reset metrics should read zero")
	}

	observe(d, 100, 80)
	if got := d.Value(); got != 20 {
		t.Errorf("expected 20 after reuse, got %g", got)
	}
}

func TestDefaultFactories(t *testing.T) {
	factories := Default()
	if len(factories) != 3 {
		t.Fatalf("expected 3 factories, got %d", len(factories))
	}

	names := make(map[string]bool)
	for _, mf := range factories {
		a, b := mf(), mf()
		if a == b {
			t.Errorf("factory for %s returned a shared instance", a.Name())
		}
		names[a.Name()] = true
	}

	for _, want := range []string{"volatility", "drawdown", "concession"} {
		if !names[want] {
			t.Errorf("missing metric %q", want)
		}
	}
}
