// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adex

import "github.com/emer/emergent/v2/etime"

// adex.Time holds the shared timing state for a simulation run.  The
// driving loop owns one Time, advances it one cycle per tick, and
// invokes the stepping operations for every neuron at each tick before
// advancing: everything is synchronous and single-threaded, so neurons
// never see a partially advanced clock.
type Time struct {

	// accumulated simulation time, in time units (Cycle * TimePerCyc)
	Time float32

	// cycle counter: number of discrete steps taken since Reset
	Cycle int

	// amount of time to increment per cycle: the dt passed to the
	// neuron stepping operations
	TimePerCyc float32 `def:"1"`

	// total duration of the run, in time units: the bound on synaptic
	// delivery times and input-buffer extents
	Duration float32

	// current evaluation mode, e.g., Train, Test; used to scope
	// recorded tables
	Mode etime.Modes
}

// NewTime returns a new Time struct with default parameters
func NewTime() *Time {
	tm := &Time{}
	tm.Defaults()
	return tm
}

// Defaults sets default values
func (tm *Time) Defaults() {
	tm.TimePerCyc = 1
}

// Reset resets the counters all back to zero
func (tm *Time) Reset() {
	tm.Time = 0
	tm.Cycle = 0
	if tm.TimePerCyc == 0 {
		tm.Defaults()
	}
}

// CycleInc increments at the cycle level
func (tm *Time) CycleInc() {
	tm.Cycle++
	tm.Time += tm.TimePerCyc
}

// Done reports whether the run has reached its configured Duration.
func (tm *Time) Done() bool {
	return tm.Time >= tm.Duration
}
