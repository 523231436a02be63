// Package physics2d is a 2D rigid-body physics core: integration,
// uniform-grid broad-phase, SAT narrow-phase with contact extraction, and
// an impulse resolver with restitution, Coulomb friction and positional
// correction. It has no renderer, no input handling and no persisted
// state — a World advances given only a body set and a per-step dt.
package physics2d
