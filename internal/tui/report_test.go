package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hanbyul-kim/laborsim/internal/sim"
)

func browserFixture() model {
	t0 := sim.Trajectory{{Step: 0, Wage: 100}, {Step: 1, Wage: 90}, {Step: 2, Wage: 85}}
	t1 := sim.Trajectory{{Step: 0, Wage: 100}, {Step: 1, Wage: 92}, {Step: 2, Wage: 86}}
	rep := &sim.Report{
		MeanTerminalWage:     85.5,
		VarianceTerminalWage: 0.25,
		MeanSteps:            2,
		Runs: []sim.RunResult{
			{Run: 0, TerminalWage: 85, Steps: 2, Converged: true, Trajectory: t0},
			{Run: 1, TerminalWage: 86, Steps: 2, Converged: true, Trajectory: t1},
		},
		Metrics:      map[string]float64{"volatility": 7.5},
		Trajectories: []sim.Trajectory{t0, t1},
	}
	p := sim.Params{Competitiveness: 0.5, InitialWage: 100, Runs: 2, Seed: 42}
	return NewBrowser("pull", p, rep)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBrowserViewShowsRuns(t *testing.T) {
	view := browserFixture().View()

	for _, want := range []string{"laborsim", "pull", "run 0", "run 1", "mean 85.50", "volatility 7.50", "q quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestBrowserCursorMoves(t *testing.T) {
	m := browserFixture()

	next, _ := m.Update(key("j"))
	m = next.(model)
	if m.cursor != 1 {
		t.Errorf("expected cursor 1 after j, got %d", m.cursor)
	}

	// Cursor stops at the last run.
	next, _ = m.Update(key("j"))
	m = next.(model)
	if m.cursor != 1 {
		t.Errorf("expected cursor to stay at 1, got %d", m.cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(model)
	if m.cursor != 0 {
		t.Errorf("expected cursor 0 after up, got %d", m.cursor)
	}
}

func TestBrowserAggregateToggle(t *testing.T) {
	m := browserFixture()

	next, _ := m.Update(key("a"))
	m = next.(model)
	if !m.all {
		t.Error("expected aggregate view after a")
	}
	if !strings.Contains(m.View(), "all runs") {
		t.Error("expected all runs caption in aggregate view")
	}

	// Selecting a run leaves the aggregate view.
	next, _ = m.Update(key("k"))
	m = next.(model)
	if m.all {
		t.Error("expected run view after selecting a run")
	}
}

func TestBrowserQuit(t *testing.T) {
	m := browserFixture()
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestBrowserResize(t *testing.T) {
	m := browserFixture()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(model)
	if m.width != 120 || m.height != 40 {
		t.Errorf("expected 120x40, got %dx%d", m.width, m.height)
	}
}

func TestBrowserEmptyReport(t *testing.T) {
	rep := &sim.Report{}
	m := NewBrowser("pull", sim.Params{}, rep)
	if !strings.Contains(m.View(), "no trajectories") {
		t.Error("expected placeholder for empty report")
	}
}
