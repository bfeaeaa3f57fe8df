package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/hanbyul-kim/laborsim/internal/sim"
)

// Envelope is the serialized form of an ensemble report, with the inputs
// echoed back so downstream tooling can tell runs apart.
type Envelope struct {
	Process      string        `json:"process"`
	Params       ParamsView    `json:"params"`
	Summary      SummaryView   `json:"summary"`
	Trajectories [][]PointView `json:"trajectories"`
}

type ParamsView struct {
	Competitiveness float64 `json:"competitiveness"`
	InitialWage     float64 `json:"initial_wage"`
	Runs            int     `json:"runs"`
	Seed            int64   `json:"seed"`
}

type SummaryView struct {
	MeanTerminalWage     float64            `json:"mean_terminal_wage"`
	VarianceTerminalWage float64            `json:"variance_terminal_wage"`
	MeanSteps            float64            `json:"mean_steps"`
	Runs                 int                `json:"runs"`
	Metrics              map[string]float64 `json:"metrics,omitempty"`
}

type PointView struct {
	Step int     `json:"step"`
	Wage float64 `json:"wage"`
}

func NewEnvelope(process string, p sim.Params, rep *sim.Report) Envelope {
	env := Envelope{
		Process: process,
		Params: ParamsView{
			Competitiveness: p.Competitiveness,
			InitialWage:     p.InitialWage,
			Runs:            p.Runs,
			Seed:            p.Seed,
		},
		Summary: SummaryView{
			MeanTerminalWage:     rep.MeanTerminalWage,
			VarianceTerminalWage: rep.VarianceTerminalWage,
			MeanSteps:            rep.MeanSteps,
			Runs:                 len(rep.Runs),
			Metrics:              rep.Metrics,
		},
		Trajectories: make([][]PointView, len(rep.Trajectories)),
	}
	for i, traj := range rep.Trajectories {
		pts := make([]PointView, len(traj))
		for j, pt := range traj {
			pts[j] = PointView{Step: pt.Step, Wage: pt.Wage}
		}
		env.Trajectories[i] = pts
	}
	return env
}

// WriteJSON writes the envelope with two-space indentation.
func WriteJSON(w io.Writer, env Envelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

func SaveJSON(path string, env Envelope) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteJSON(f, env)
}
