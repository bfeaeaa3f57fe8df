package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hanbyul-kim/laborsim/internal/market"
	"github.com/hanbyul-kim/laborsim/internal/sim"
)

const (
	DefaultCompetitiveness = 0.5
	DefaultInitialWage     = 3_000_000.0
	DefaultRuns            = 3
	DefaultStepLimit       = 50
	DefaultTolerance       = 1e-3
	DefaultTicks           = 10
	DefaultWorkers         = 3
)

type Config struct {
	Process  string             `yaml:"process"`
	Params   ParamsConfig       `yaml:"params"`
	Engine   EngineConfig       `yaml:"engine"`
	Tunables map[string]float64 `yaml:"tunables,omitempty"`
	Agents   AgentsConfig       `yaml:"agents"`
}

type ParamsConfig struct {
	Competitiveness float64 `yaml:"competitiveness"`
	InitialWage     float64 `yaml:"initial_wage"`
	Runs            int     `yaml:"runs"`
	Seed            int64   `yaml:"seed"`
}

type EngineConfig struct {
	StepLimit int     `yaml:"step_limit"`
	Tolerance float64 `yaml:"tolerance"`
}

type AgentsConfig struct {
	Ticks   int `yaml:"ticks"`
	Workers int `yaml:"workers"`
}

func DefaultConfig() *Config {
	return &Config{
		Process: "pull",
		Params: ParamsConfig{
			Competitiveness: DefaultCompetitiveness,
			InitialWage:     DefaultInitialWage,
			Runs:            DefaultRuns,
		},
		Engine: EngineConfig{
			StepLimit: DefaultStepLimit,
			Tolerance: DefaultTolerance,
		},
		Agents: AgentsConfig{
			Ticks:   DefaultTicks,
			Workers: DefaultWorkers,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) SimParams() sim.Params {
	return sim.Params{
		Competitiveness: c.Params.Competitiveness,
		InitialWage:     c.Params.InitialWage,
		Runs:            c.Params.Runs,
		Seed:            c.Params.Seed,
	}
}

func (c *Config) SimConfig() sim.Config {
	return sim.Config{
		StepLimit: c.Engine.StepLimit,
		Tolerance: c.Engine.Tolerance,
	}
}

func (c *Config) Scenario() market.Scenario {
	return market.Scenario{
		Competitiveness: c.Params.Competitiveness,
		InitialWage:     c.Params.InitialWage,
		Ticks:           c.Agents.Ticks,
		Workers:         c.Agents.Workers,
		Seed:            c.Params.Seed,
	}
}
