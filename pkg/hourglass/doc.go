// Package hourglass simulates a physical hourglass: a procedurally generated
// glass shape containing sand grains that flow under stochastic gravity-like
// rules, used to visualize elapsed time.
//
// # Architecture
//
// The package is a grid-based cellular automaton built from three parts:
//
//   - [Grid]: generic fixed-size 2D container over a flat row-major slice
//   - [LayoutCell]: wall-or-empty cell values, generated once per glass
//   - [Hourglass]: the simulation API composing a layout grid, a sand grid,
//     and a pinch flag
//
// The layout generator draws the glass outline for any odd width and any
// height greater than the width: '=' border rows, '|' straight side walls,
// and '\' / '/' tapers converging on a single-column neck at the vertical
// midpoint.
//
// # Simulation
//
// Each [Hourglass.Advance] call is one discrete tick. Every occupied cell
// draws one candidate direction uniformly from {down, right, left} and moves
// a grain only if the draw is legal: down needs open space below, lateral
// moves level uneven piles or spill over open edges once the grain is
// resting. Cells hold at most [MaxCellSand] grains; a saturated cell acts as
// solid so grains stack. Pinching the glass suppresses downward flow through
// the neck row, pausing the simulated passage of time.
//
// Randomness is injected per call through the one-method [Rand] interface,
// satisfied by *rand.Rand from math/rand/v2, so callers control seeding and
// tests can script exact tick-by-tick outcomes.
//
// # Usage
//
//	glass := hourglass.New(7, 12)
//	glass.FillWithSandFromTop(0.375)
//	glass.Pinch()
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	glass.Settle(rng)
//
//	glass.Unpinch()
//	for glass.CountTopSand() > 0 {
//		glass.Advance(rng)
//	}
//	fmt.Println(glass)
//
// A timer built on this package pairs the simulation with a wall clock:
// compare elapsed-time progress against CountBottomSand over the total grain
// count and pinch or unpinch accordingly, so the sand drains in step with
// real time.
//
// # Concurrency
//
// All operations are single-threaded and complete atomically from the
// caller's perspective. An Hourglass is exclusively owned; it is not safe
// for concurrent use without external locking.
package hourglass
