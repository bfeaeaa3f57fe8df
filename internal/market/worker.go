package market

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	// MaxAttempts caps how many offers a worker can make before
	// leaving the table.
	MaxAttempts = 5

	// MinHireEfficiency is the floor below which no employer will
	// take a worker on.
	MinHireEfficiency = 0.6

	concessionRate   = 0.05
	offerPerDistance = 1000.0
	offerPerCrowd    = 1000.0
	underAgeCut      = 1000.0
	primeAge         = 30

	minEfficiency     = 0.5
	stressPerPoint    = 0.01
	negotiationStress = 5.0
)

// Worker is one job seeker. Offers start from the previous wage and
// move with commute distance, age, and how crowded the market is; each
// failed attempt concedes 5%.
type Worker struct {
	ID       string
	Age      int
	Distance float64
	PrevWage float64

	Attempts   int
	Stress     float64
	Efficiency float64
	Employed   bool
}

func NewWorker(id string, age int, distance, prevWage float64) *Worker {
	return &Worker{
		ID:         id,
		Age:        age,
		Distance:   distance,
		PrevWage:   prevWage,
		Efficiency: 1.0,
	}
}

// RandomWorker draws a worker profile around a base wage: age 20-59,
// commute 1-5, and a previous wage within 20% of the base.
func RandomWorker(id string, baseWage float64, rng *rand.Rand) *Worker {
	lo := int(baseWage * 0.8)
	span := int(baseWage*1.2) - lo
	if span < 1 {
		span = 1
	}
	return NewWorker(
		id,
		20+rng.Intn(40),
		math.Round((1+rng.Float64()*4)*100)/100,
		float64(lo+rng.Intn(span)),
	)
}

// NextOffer computes the wage this worker proposes and burns one
// attempt. Exhausted workers offer nothing.
func (w *Worker) NextOffer(population float64) float64 {
	if w.Attempts >= MaxAttempts {
		return 0
	}
	offer := w.PrevWage + w.Distance*offerPerDistance + w.ageFactor() + math.Log(population+1)*offerPerCrowd
	offer *= 1 - concessionRate*float64(w.Attempts)
	w.Attempts++
	return offer
}

func (w *Worker) ageFactor() float64 {
	if w.Age < primeAge {
		return float64(w.Age-primeAge) * underAgeCut
	}
	return 0
}

func (w *Worker) Exhausted() bool { return w.Attempts >= MaxAttempts }

func (w *Worker) String() string {
	return fmt.Sprintf("%s (age %d, commute %.2f, prev %.0f)", w.ID, w.Age, w.Distance, w.PrevWage)
}
