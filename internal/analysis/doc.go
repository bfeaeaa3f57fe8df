// Package analysis provides parameter-sweep tools for wage simulations.
//
// The package runs the simulation engine across a grid of market conditions
// and summarizes each grid point:
//
//   - [CompetitivenessSweep]: sweep competitiveness and record wage statistics
//   - [SweepPoint]: per-point summary (mean terminal wage, variance, mean steps)
//
// # Reading a Sweep
//
// Mean steps falling as competitiveness rises indicates faster settlement
// toward the market equilibrium:
//
//	pts, err := analysis.CompetitivenessSweep(ctx, cfg, factory, base, 0, 1, 11)
//	for _, p := range pts {
//	    fmt.Printf("c=%.2f wage=%.0f steps=%.1f\n",
//	        p.Competitiveness, p.MeanTerminalWage, p.MeanSteps)
//	}
package analysis
