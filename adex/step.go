// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adex

import "fmt"

///////////////////////////////////////////////////////////////////////
//  step.go contains the two per-tick stepping paths: the buffered
//  (array-indexed, delayed-delivery) path and the online
//  (scalar-accumulation, no-delay) path

// StepMode names the two simulation modes.  A driving loop picks one
// mode for an entire run and sticks with it: the buffered path reads
// time-indexed current and input arrays and schedules synaptic delivery
// by delay, while the online path reads the scalar GSyn accumulator and
// delivers spikes immediately.
type StepMode int32

const (
	// Buffered is the array-indexed mode: ComputePotential, ComputeSpike,
	// ApplyPreSynaptic and Reset, with delayed synaptic delivery into
	// per-step input buffers.
	Buffered StepMode = iota

	// Online is the self-contained mode: Step does integration, spike
	// evaluation and immediate scalar injection in one call, with no
	// propagation delay.
	Online

	StepModeN
)

var stepModeNames = [StepModeN]string{"Buffered", "Online"}

func (sm StepMode) String() string {
	if sm < 0 || sm >= StepModeN {
		return fmt.Sprintf("StepMode(%d)", int32(sm))
	}
	return stepModeNames[sm]
}

// NeuronModel is the capability contract that every neuron in a
// population supports, regardless of model: the four buffered-mode
// operations plus the online Step.  The driving loop owns the iteration
// over time and over the population; it calls these with the current
// simulated time t and fixed step size dt, for all neurons at each tick
// before advancing.  All operations are synchronous and single-threaded.
type NeuronModel interface {

	// ComputePotential integrates the membrane equation over one step
	// using the driving current at time t, appends the result to the
	// potential history, and returns it.  Does not check for firing and
	// does not commit the internal potential.
	ComputePotential(t, dt float32) float32

	// ComputeSpike evaluates whether the most recent potential crosses
	// the threshold and commits the spike-or-no-spike side effects:
	// clamp-then-reset of the history, spike recording, delayed synaptic
	// propagation, threshold regularization, and (AdaptiveELIF) the
	// adaptation current update.
	ComputeSpike(t, dt float32)

	// ApplyPreSynaptic folds the pending synaptic input at time t
	// directly into the last recorded potential, returning the delta.
	// Used when synaptic currents are applied between integration and
	// spike-check rather than through the current source.
	ApplyPreSynaptic(t, dt float32) float32

	// Reset propagates a decaying correction into the next few steps of
	// the input buffer, approximating a short refractory smoothing.
	Reset(t, dt, alpha float32)

	// Step performs integration, spike evaluation, reset-to-rest, spike
	// recording, and immediate scalar injection into postsynaptic
	// accumulators in one call (online mode).
	Step(t, dt float32)
}

var _ NeuronModel = (*Neuron)(nil)

// ResetWindow is the number of subsequent input-buffer entries the
// Reset smoothing correction is propagated into.
const ResetWindow = 5

// StepIndex returns the input / current buffer index for time t at step
// size dt.
func StepIndex(t, dt float32) int {
	return int(t / dt)
}

// CurrentAt returns the driving current at buffer index ti, or 0 if no
// current source is configured or ti is out of range.  The current
// source is caller-supplied and pre-validated; a missing entry reads as
// zero rather than faulting.
func (nrn *Neuron) CurrentAt(ti int) float32 {
	if ti < 0 || ti >= len(nrn.Current) {
		return 0
	}
	return nrn.Current[ti]
}

// AddInput adds a synaptic contribution into the input buffer at step
// index ti.  Writes outside the buffer are silently dropped: this is the
// hard simulation-duration boundary, not an error.
func (nrn *Neuron) AddInput(ti int, val float32) {
	if ti < 0 || ti >= len(nrn.Input) {
		return
	}
	nrn.Input[ti] += val
}

// SynWt returns this neuron's outgoing contribution for synaptic weight
// wt, with the inhibitory sign applied.
func (nrn *Neuron) SynWt(wt float32) float32 {
	if nrn.Inhib {
		return -wt
	}
	return wt
}

// newU returns the Euler-integrated potential one step ahead of the
// committed potential U, for driving current i.
func (nrn *Neuron) newU(i, dt float32) float32 {
	return nrn.U + nrn.Act.TauDuDt(nrn.U, i, nrn.W)*(dt/nrn.Act.Leak.Tau)
}

// addPotential appends u to the potential history and folds it into the
// observed range.
func (nrn *Neuron) addPotential(u float32) {
	nrn.Potentials = append(nrn.Potentials, u)
	nrn.PotRange.FitValInRange(u)
}

// spikedAt returns 1 if the most recent recorded spike is at exactly
// time t, else 0.
func (nrn *Neuron) spikedAt(t float32) float32 {
	if n := len(nrn.SpikeTimes); n > 0 && nrn.SpikeTimes[n-1] == t {
		return 1
	}
	return 0
}

///////////////////////////////////////////////////////////////////////
//  Buffered mode

// ComputePotential integrates the membrane equation over one step using
// the driving current at time t, appends the result to the potential
// history, and returns it.  Firing is evaluated separately by
// ComputeSpike; the committed potential U is only updated there.
func (nrn *Neuron) ComputePotential(t, dt float32) float32 {
	u := nrn.newU(nrn.CurrentAt(StepIndex(t, dt)), dt)
	nrn.addPotential(u)
	return u
}

// checkSpike is the spike evaluation and propagation logic shared by all
// models.  If the last recorded potential is at or above the live
// threshold: the history tail is replaced with exactly the threshold
// value (so the potential at threshold is recorded once, for
// observability), then the reset potential Urest is appended, the spike
// time is recorded, and the spike is delivered through every outgoing
// synapse at time t + delay + dt, dropped silently if beyond Duration.
// Threshold regularization moves the live threshold up on a spike and
// down otherwise.  Returns the now-current potential: Urest if a spike
// occurred, else the unchanged potential.
func (nrn *Neuron) checkSpike(t, dt float32) float32 {
	li := len(nrn.Potentials) - 1
	u := nrn.Potentials[li]
	if u >= nrn.Thr {
		nrn.Potentials[li] = nrn.Thr
		nrn.PotRange.FitValInRange(nrn.Thr)
		u = nrn.Act.Leak.Urest
		nrn.SpikeTimes = append(nrn.SpikeTimes, t)
		nrn.addPotential(u)
		for _, sy := range nrn.Syns {
			tm := t + sy.Delay + dt
			if tm < nrn.Duration {
				sy.Recv.AddInput(StepIndex(tm, dt), nrn.SynWt(sy.Wt))
			}
		}
		if nrn.Act.Regul.On {
			nrn.Thr += nrn.Act.Regul.Up
		}
	} else if nrn.Act.Regul.On {
		nrn.Thr -= nrn.Act.Regul.Down
	}
	return u
}

// ComputeSpike evaluates and commits the spike-or-no-spike outcome for
// the most recent potential (see checkSpike), then for AdaptiveELIF
// advances the adaptation current exactly once, using the previously
// committed potential and the spiked-at-exactly-t indicator, and finally
// commits the new potential.
func (nrn *Neuron) ComputeSpike(t, dt float32) {
	u := nrn.checkSpike(t, dt)
	if nrn.Act.Model == AdaptiveELIF {
		nrn.W += nrn.Act.Adapt.TauDwDt(nrn.U, nrn.Act.Leak.Urest, nrn.W, nrn.spikedAt(t)) * (dt / nrn.Act.Adapt.TauW)
	}
	nrn.U = u
}

// ApplyPreSynaptic folds the pending synaptic input at time t into the
// last recorded potential as an incremental correction
// du = input[t/dt] * R * dt / tau, and returns du.  The committed
// potential U is not touched: the correction is picked up by the
// subsequent ComputeSpike.
func (nrn *Neuron) ApplyPreSynaptic(t, dt float32) float32 {
	var in float32
	if ti := StepIndex(t, dt); ti >= 0 && ti < len(nrn.Input) {
		in = nrn.Input[ti]
	}
	du := in * nrn.Act.Leak.R * dt / nrn.Act.Leak.Tau
	li := len(nrn.Potentials) - 1
	nrn.Potentials[li] += du
	nrn.PotRange.FitValInRange(nrn.Potentials[li])
	return du
}

// Reset propagates a decaying correction forward over the next
// ResetWindow input-buffer entries: input[i] += input[i-1] * alpha,
// approximating a short refractory smoothing effect.
// Note: the window guard compares t plus the step count against
// Duration, reproducing the established smoothing behavior exactly;
// out-of-buffer indices are silently skipped.
func (nrn *Neuron) Reset(t, dt, alpha float32) {
	ti := StepIndex(t, dt)
	for i := 1; i <= ResetWindow; i++ {
		if t+float32(i) >= nrn.Duration {
			continue
		}
		idx := ti + i
		if idx < 1 || idx >= len(nrn.Input) {
			continue
		}
		nrn.Input[idx] += nrn.Input[idx-1] * alpha
	}
}

///////////////////////////////////////////////////////////////////////
//  Online mode

// Step performs one full online-mode tick: integrate from the committed
// potential with drive = current + GSyn, evaluate the threshold, record
// the spike and inject immediately into each postsynaptic GSyn
// accumulator (no delay), then advance the adaptation current
// (AdaptiveELIF) and commit.  GSyn persists across ticks until the
// driving loop clears it.  Unlike the buffered path there is no
// clamp-and-replace (the threshold value is appended directly) and no
// threshold regularization.
func (nrn *Neuron) Step(t, dt float32) {
	u := nrn.newU(nrn.CurrentAt(StepIndex(t, dt))+nrn.GSyn, dt)
	if u >= nrn.Thr {
		nrn.addPotential(nrn.Thr)
		u = nrn.Act.Leak.Urest
		nrn.SpikeTimes = append(nrn.SpikeTimes, t)
		nrn.addPotential(u)
		for _, sy := range nrn.Syns {
			sy.Recv.GSyn += nrn.SynWt(sy.Wt)
		}
	} else {
		nrn.addPotential(u)
	}
	if nrn.Act.Model == AdaptiveELIF {
		nrn.W += nrn.Act.Adapt.TauDwDt(nrn.U, nrn.Act.Leak.Urest, nrn.W, nrn.spikedAt(t)) * (dt / nrn.Act.Adapt.TauW)
	}
	nrn.U = u
}
