package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/hanbyul-kim/laborsim/internal/sim"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type model struct {
	process string
	params  sim.Params
	report  *sim.Report

	cursor int
	all    bool

	width  int
	height int
}

// NewBrowser builds a report browser over a completed ensemble run.
func NewBrowser(process string, p sim.Params, rep *sim.Report) model {
	return model{
		process: process,
		params:  p,
		report:  rep,
		width:   80,
		height:  24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			m.all = false
		case "down", "j":
			if m.cursor < len(m.report.Trajectories)-1 {
				m.cursor++
			}
			m.all = false
		case "a":
			m.all = !m.all
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString("\n   " + cyan.Render("laborsim") + "  " + white.Render(m.process) +
		dim.Render(fmt.Sprintf("  c=%.2f  w0=%.0f  runs=%d  seed=%d",
			m.params.Competitiveness, m.params.InitialWage, m.params.Runs, m.params.Seed)) + "\n")
	b.WriteString(dimmer.Render("   "+strings.Repeat("─", 44)) + "\n\n")

	b.WriteString(m.chart() + "\n\n")

	for i, traj := range m.report.Trajectories {
		line := fmt.Sprintf("run %-2d  terminal %14.2f  steps %2d", i, traj.Terminal(), traj.Steps())
		if i == m.cursor && !m.all {
			b.WriteString("   " + cyan.Render("▸ ") + white.Render(line) + "\n")
		} else {
			b.WriteString("     " + dim.Render(line) + "\n")
		}
	}

	b.WriteString("\n   " + green.Render(fmt.Sprintf("mean %.2f", m.report.MeanTerminalWage)) +
		dim.Render(fmt.Sprintf("  variance %.2f  mean steps %.1f",
			m.report.VarianceTerminalWage, m.report.MeanSteps)) + "\n")

	if len(m.report.Metrics) > 0 {
		names := make([]string, 0, len(m.report.Metrics))
		for name := range m.report.Metrics {
			names = append(names, name)
		}
		sort.Strings(names)
		parts := make([]string, 0, len(names))
		for _, name := range names {
			parts = append(parts, fmt.Sprintf("%s %.2f", name, m.report.Metrics[name]))
		}
		b.WriteString("   " + yellow.Render(strings.Join(parts, "  ")) + "\n")
	}

	b.WriteString("\n" + dim.Render("   ↑↓ run  a all runs  q quit") + "\n")

	return b.String()
}

func (m model) chart() string {
	if len(m.report.Trajectories) == 0 {
		return dim.Render("   no trajectories")
	}

	w := m.width - 16
	if w < 40 {
		w = 40
	}
	h := m.height - 16
	if h < 8 {
		h = 8
	}

	if m.all {
		series := make([][]float64, len(m.report.Trajectories))
		for i, traj := range m.report.Trajectories {
			series[i] = traj.Wages()
		}
		return asciigraph.PlotMany(series,
			asciigraph.Height(h), asciigraph.Width(w),
			asciigraph.Caption("all runs"))
	}

	return asciigraph.Plot(m.report.Trajectories[m.cursor].Wages(),
		asciigraph.Height(h), asciigraph.Width(w),
		asciigraph.Caption(fmt.Sprintf("run %d", m.cursor)))
}

// Browse opens the report browser in the alternate screen and blocks until
// the user quits.
func Browse(process string, p sim.Params, rep *sim.Report) error {
	prog := tea.NewProgram(NewBrowser(process, p, rep), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}
