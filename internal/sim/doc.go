// Package sim provides the core primitives for Monte Carlo wage simulation.
//
// The package defines the fundamental interfaces and types for simulating
// discrete-time wage adjustment in a labor market:
//
//   - [Params]: operator-facing inputs of one simulation request
//   - [Process]: a wage-adjustment rule (wage[t+1] = f(wage[t]))
//   - [Simulator]: advances a single trajectory to convergence
//   - [Ensemble]: fans a request out over independent trials
//   - [Report]: aggregate statistics over all trials
//
// # Example
//
//	ens := sim.NewEnsemble(sim.DefaultConfig(), market.NewPullFactory())
//	report, _ := ens.Run(ctx, sim.Params{Competitiveness: 0.5, InitialWage: 3000000, Runs: 5})
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe. [Ensemble] builds a fresh
// process, simulator, and metric set for every trial, so trials share
// no mutable state and results depend only on parameters and seed.
package sim
