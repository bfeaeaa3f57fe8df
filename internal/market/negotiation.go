package market

import (
	"math/rand"

	"github.com/hanbyul-kim/laborsim/internal/sim"
)

// NegotiationProcess replays one worker's bargaining as a wage
// trajectory. Each step is the worker's current offer; acceptance
// settles the path, and an exhausted worker leaves the wage where the
// last offer stood.
//
// Acceptance gets easier as competitiveness rises: a wider market
// raises output per worker and with it the highest offer an employer
// will take.
type NegotiationProcess struct {
	worker     *Worker
	employer   *Employer
	comp       float64
	population float64
	accepted   bool
}

// NewNegotiationFactory builds one randomized worker per trial facing
// a fresh employer.
func NewNegotiationFactory() sim.Factory {
	return func(p sim.Params, rng *rand.Rand) (sim.Process, error) {
		return &NegotiationProcess{
			worker:     RandomWorker("worker1", p.InitialWage, rng),
			employer:   NewEmployer("employer1", DefaultPropertySize),
			comp:       p.Competitiveness,
			population: DefaultPopulation,
		}, nil
	}
}

func (n *NegotiationProcess) Step(wage float64, step int, rng *rand.Rand) float64 {
	if n.accepted || n.worker.Exhausted() {
		return wage
	}
	offer := n.worker.NextOffer(n.population)
	if offer <= 0 {
		return wage
	}
	if n.employer.WouldHire(n.worker, offer, n.comp) {
		n.accepted = true
	}
	return offer
}

func (n *NegotiationProcess) Settled(wage float64, step int) bool { return n.accepted }
