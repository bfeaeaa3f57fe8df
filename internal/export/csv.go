package export

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/hanbyul-kim/laborsim/internal/analysis"
	"github.com/hanbyul-kim/laborsim/internal/sim"
)

// WriteReportCSV writes the report in long format, one row per trajectory
// point: run, step, wage.
func WriteReportCSV(w io.Writer, rep *sim.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"run", "step", "wage"}); err != nil {
		return err
	}
	for run, traj := range rep.Trajectories {
		for _, p := range traj {
			row := []string{
				strconv.Itoa(run),
				strconv.Itoa(p.Step),
				strconv.FormatFloat(p.Wage, 'f', 6, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSweepCSV writes one row per competitiveness grid point.
func WriteSweepCSV(w io.Writer, pts []analysis.SweepPoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"competitiveness", "mean_terminal_wage", "variance_terminal_wage", "mean_steps"}); err != nil {
		return err
	}
	for _, p := range pts {
		row := []string{
			strconv.FormatFloat(p.Competitiveness, 'f', 6, 64),
			strconv.FormatFloat(p.MeanTerminalWage, 'f', 6, 64),
			strconv.FormatFloat(p.VarianceTerminalWage, 'f', 6, 64),
			strconv.FormatFloat(p.MeanSteps, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func SaveReportCSV(path string, rep *sim.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteReportCSV(f, rep)
}

func SaveSweepCSV(path string, pts []analysis.SweepPoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteSweepCSV(f, pts)
}
