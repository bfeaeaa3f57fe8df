package market

const (
	competitionStep  = 0.1
	demandSpillCut   = 0.95
	stressThreshold  = 0.7
	stressPerComp    = 10.0
	supplyPerHire    = 1000.0
	demandSaturation = 0.99
)

// Environment is one labor submarket.
type Environment struct {
	Name        string
	Demand      float64
	Supply      float64
	Competition float64
}

// RaiseCompetition bumps this submarket's competition and, when a
// spillover target is given, cuts its demand by 5%.
func (e *Environment) RaiseCompetition(spillover *Environment) {
	e.Competition += competitionStep
	if spillover != nil {
		spillover.Demand *= demandSpillCut
	}
}

// Affect applies this submarket's pressure on a worker: past the
// stress threshold, competition grinds people down.
func (e *Environment) Affect(w *Worker) {
	if e.Competition > stressThreshold {
		w.Stress += e.Competition * stressPerComp
	}
}
