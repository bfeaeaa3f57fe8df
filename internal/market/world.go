package market

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultPopulation is the job-seeker headcount workers price their
// offers against.
const DefaultPopulation = 1000.0

// World wires agents and submarkets into a persistent labor market
// that evolves tick by tick. State carries across ticks: competition
// keeps rising, stress accumulates, and hiring saturates demand.
type World struct {
	Market     *Environment
	Secondary  *Environment
	Employer   *Employer
	Workers    []*Worker
	Population float64
}

func NewWorld(competitiveness, initialWage float64, workerCount int, rng *rand.Rand) *World {
	w := &World{
		Market:     &Environment{Name: "market", Demand: 1000, Supply: 800, Competition: competitiveness},
		Secondary:  &Environment{Name: "secondary", Demand: 900, Supply: 850, Competition: 0.3},
		Employer:   NewEmployer("employer1", DefaultPropertySize),
		Population: DefaultPopulation,
	}
	for j := 0; j < workerCount; j++ {
		w.Workers = append(w.Workers, RandomWorker(fmt.Sprintf("worker%d", j+1), initialWage, rng))
	}
	return w
}

// Offer is one logged negotiation attempt.
type Offer struct {
	Worker    string
	Attempt   int
	Wage      float64
	Headcount int
	Profit    float64
	Accepted  bool
}

// TickResult carries the per-tick aggregates the operator charts:
// total employer profit and the mean wage of that tick's hires.
type TickResult struct {
	Tick          int
	Hired         int
	TotalProfit   float64
	MeanHiredWage float64
	Offers        []Offer
}

// Tick advances the world once: competition rises and spills into the
// secondary submarket, unemployed workers bargain until hired or out
// of attempts, then the market digests the outcome.
func (w *World) Tick(n int) TickResult {
	res := TickResult{Tick: n}

	w.Market.RaiseCompetition(w.Secondary)

	var wageSum float64
	for _, wk := range w.Workers {
		if wk.Employed {
			continue
		}
		for attempt := 1; attempt <= MaxAttempts; attempt++ {
			offer := wk.NextOffer(w.Population)
			if offer <= 0 {
				break
			}
			headcount := w.Employer.OptimalHeadcount(offer)
			profit := w.Employer.Profit(offer, 1, w.Market.Competition)
			accepted := w.Employer.WouldHire(wk, offer, w.Market.Competition)
			res.Offers = append(res.Offers, Offer{
				Worker:    wk.ID,
				Attempt:   attempt,
				Wage:      offer,
				Headcount: headcount,
				Profit:    profit,
				Accepted:  accepted,
			})
			if accepted {
				wk.Employed = true
				wk.Stress += negotiationStress
				w.Employer.Hired++
				res.Hired++
				res.TotalProfit += profit
				wageSum += offer
				break
			}
		}
	}
	if res.Hired > 0 {
		res.MeanHiredWage = wageSum / float64(res.Hired)
	}

	w.settle()
	return res
}

// settle closes out a tick: submarkets stress their workers,
// efficiency tracks accumulated stress, and employment feeds supply
// while saturating demand.
func (w *World) settle() {
	for _, wk := range w.Workers {
		w.Market.Affect(wk)
		w.Secondary.Affect(wk)
		wk.Efficiency = math.Max(minEfficiency, 1-stressPerPoint*wk.Stress)
	}

	employed := 0
	for _, wk := range w.Workers {
		if wk.Employed {
			employed++
		}
	}
	w.Market.Supply += float64(employed) * supplyPerHire
	w.Market.Demand *= demandSaturation
}

// Scenario drives a fresh world for a fixed number of ticks.
type Scenario struct {
	Competitiveness float64
	InitialWage     float64
	Ticks           int
	Workers         int
	Seed            int64
}

func (s Scenario) Run() []TickResult {
	rng := rand.New(rand.NewSource(s.Seed))
	w := NewWorld(s.Competitiveness, s.InitialWage, s.Workers, rng)

	out := make([]TickResult, 0, s.Ticks)
	for i := 1; i <= s.Ticks; i++ {
		out = append(out, w.Tick(i))
	}
	return out
}
