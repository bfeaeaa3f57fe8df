// Package market provides the wage-adjustment processes and agents
// driving the simulation.
//
// Each process implements the [sim.Process] interface, defining how a
// wage moves from one step to the next:
//
//   - [PullProcess]: drift toward the competitive equilibrium with
//     competitiveness-damped noise
//   - [NegotiationProcess]: a single worker bargaining with an
//     employer, settling on acceptance
//
// The agent types ([Worker], [Employer], [Environment], [World]) model
// the underlying market: workers ask, employers hire against a land
// budget, and submarkets evolve tick by tick as competition rises and
// hiring feeds supply.
//
// Processes also implement [sim.Tunable] for runtime parameter
// adjustment where their coefficients are worth exploring.
package market
