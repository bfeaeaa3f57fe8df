package config

import "sort"

// Presets are named market scenarios. "balanced" matches the documented
// reference run (competitiveness 0.5, 3,000,000 starting wage, 3 trials).
var Presets = map[string]*Config{
	"slack": {
		Process: "pull",
		Params:  ParamsConfig{Competitiveness: 0.15, InitialWage: 3_000_000, Runs: 5},
		Engine:  EngineConfig{StepLimit: DefaultStepLimit, Tolerance: DefaultTolerance},
		Agents:  AgentsConfig{Ticks: 10, Workers: 3},
	},
	"balanced": {
		Process: "pull",
		Params:  ParamsConfig{Competitiveness: 0.5, InitialWage: 3_000_000, Runs: 3},
		Engine:  EngineConfig{StepLimit: DefaultStepLimit, Tolerance: DefaultTolerance},
		Agents:  AgentsConfig{Ticks: 10, Workers: 3},
	},
	"cutthroat": {
		Process: "pull",
		Params:  ParamsConfig{Competitiveness: 0.95, InitialWage: 3_000_000, Runs: 5},
		Engine:  EngineConfig{StepLimit: DefaultStepLimit, Tolerance: DefaultTolerance},
		Agents:  AgentsConfig{Ticks: 15, Workers: 12},
	},
	"boomtown": {
		Process:  "pull",
		Params:   ParamsConfig{Competitiveness: 0.7, InitialWage: 2_400_000, Runs: 5},
		Engine:   EngineConfig{StepLimit: DefaultStepLimit, Tolerance: DefaultTolerance},
		Tunables: map[string]float64{"equilibrium_ratio": 1.15},
		Agents:   AgentsConfig{Ticks: 10, Workers: 6},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
