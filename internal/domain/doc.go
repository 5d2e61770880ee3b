// Package domain contains the core model for crossedwires: lattice points,
// paths traced from move instructions, and the intersection analysis over a
// set of paths.
//
// The domain is I/O-agnostic: it does not read files, parse YAML or write
// reports. Infra/adapters feed raw instruction strings in and map results out.
package domain
