// Package epi provides the compartmental epidemic models driven by the
// simulation core.
//
// The package defines the SIR family over absolute population counts:
//
//   - [Params]: transmission/recovery rates and population size
//   - [State]: typed (S, I, R) view over a raw state vector
//   - [Model]: mass-action SIR dynamics implementing [sim.System]
//
// Rates follow the classical mass-action form
//
//	S' = -beta*S*I/N
//	I' =  beta*S*I/N - gamma*I
//	R' =  gamma*I
//
// so the compartment sum is conserved exactly by construction.
package epi
