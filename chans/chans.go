// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package chans provides the membrane-equation parameters for the
integrate-and-fire family of point neurons: the basic leaky (LIF)
term, the exponential spike-initiation term (ELIF / AdEx), and the
slow adaptation current (AdEx).  Each is a standalone params struct
with Defaults / Update / Validate, composed by the adex package into
the full per-neuron activation parameters.
*/
package chans

import (
	"fmt"

	"cogentcore.org/core/math32"
)

//////////////////////////////////////////////////////////////////////////////////////
//  LeakParams

// LeakParams are the parameters of the basic leaky-integrator membrane
// equation: tau * dU/dt = -(U - Urest) + R * I.
// All potentials are in mV and currents in model units, matching the
// standard textbook LIF formulation rather than normalized 0-1 units.
type LeakParams struct {

	// membrane time constant in msec: how quickly the potential decays back to rest
	Tau float32 `def:"10" min:"0.001"`

	// resting membrane potential in mV: the potential with no input, and the reset value after a spike
	Urest float32 `def:"-70"`

	// membrane resistance: scales the driving current's contribution to dU/dt
	R float32 `def:"5"`
}

func (lk *LeakParams) Defaults() {
	lk.Tau = 10
	lk.Urest = -70
	lk.R = 5
}

func (lk *LeakParams) Update() {
}

// Validate returns an error for parameter values that produce
// mathematically invalid dynamics.
func (lk *LeakParams) Validate() error {
	if lk.Tau <= 0 {
		return fmt.Errorf("chans.LeakParams: Tau must be > 0, got: %g", lk.Tau)
	}
	return nil
}

// TauDuDt returns tau * dU/dt for the leak equation, for membrane
// potential u and driving current i.
func (lk *LeakParams) TauDuDt(u, i float32) float32 {
	return -(u - lk.Urest) + lk.R*i
}

//////////////////////////////////////////////////////////////////////////////////////
//  ExpParams

// ExpParams are the parameters of the exponential spike-initiation term
// added to the leak equation in the ELIF and AdEx models:
// DeltaT * exp((U - ThetaRh) / DeltaT).
// The term is negligible below the rheobase threshold ThetaRh and grows
// rapidly above it, driving the upswing of the spike.
type ExpParams struct {

	// slope factor in mV: sharpness of the spike initiation -- smaller = closer to the hard LIF threshold
	DeltaT float32 `def:"1" min:"0.001"`

	// rheobase threshold in mV: potential at which the exponential term starts to dominate
	ThetaRh float32 `def:"-55"`
}

func (ex *ExpParams) Defaults() {
	ex.DeltaT = 1
	ex.ThetaRh = -55
}

func (ex *ExpParams) Update() {
}

func (ex *ExpParams) Validate() error {
	if ex.DeltaT <= 0 {
		return fmt.Errorf("chans.ExpParams: DeltaT must be > 0, got: %g", ex.DeltaT)
	}
	return nil
}

// TauDuDt returns the exponential spike-initiation contribution to
// tau * dU/dt for membrane potential u.
func (ex *ExpParams) TauDuDt(u float32) float32 {
	return ex.DeltaT * math32.Exp((u-ex.ThetaRh)/ex.DeltaT)
}

//////////////////////////////////////////////////////////////////////////////////////
//  AdaptParams

// AdaptParams are the parameters of the slow adaptation current w in the
// AdEx model: tau_w * dw/dt = A * (U - Urest) - w + B * tau_w * spike.
// w opposes depolarization (the voltage equation subtracts R * w), and
// jumps on every spike, producing spike-frequency adaptation.
type AdaptParams struct {

	// adaptation time constant in msec: how slowly w tracks the subthreshold potential
	TauW float32 `def:"5" min:"0.001"`

	// subthreshold coupling: strength of the voltage dependence of w
	A float32 `def:"5"`

	// spike-triggered increment factor: contributes B * TauW to tau_w * dw/dt on the step where a spike occurred
	B float32 `def:"1"`

	// initial adaptation current at construction
	Winit float32 `def:"2"`
}

func (aa *AdaptParams) Defaults() {
	aa.TauW = 5
	aa.A = 5
	aa.B = 1
	aa.Winit = 2
}

func (aa *AdaptParams) Update() {
}

func (aa *AdaptParams) Validate() error {
	if aa.TauW <= 0 {
		return fmt.Errorf("chans.AdaptParams: TauW must be > 0, got: %g", aa.TauW)
	}
	return nil
}

// TauDwDt returns tau_w * dw/dt for membrane potential u, resting
// potential urest, current adaptation value w, and spike = 1 if the
// neuron spiked at exactly this time, else 0.
func (aa *AdaptParams) TauDwDt(u, urest, w, spike float32) float32 {
	return aa.A*(u-urest) - w + aa.B*aa.TauW*spike
}
