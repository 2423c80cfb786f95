// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adex

import (
	"fmt"

	"github.com/emer/adex/chans"
)

///////////////////////////////////////////////////////////////////////
//  act.go contains the activation params and voltage-update functions
//  for the integrate-and-fire model family

// ModelType selects the voltage-update law for a neuron.
// The models form a refinement sequence: ELIF adds the exponential
// spike-initiation term to LIF, and AdaptiveELIF adds the slow
// adaptation current to ELIF.  All other behavior (spike evaluation,
// propagation, reset) is shared across models.
type ModelType int32

const (
	// LIF is the basic leaky integrate-and-fire model: linear decay
	// toward rest plus driving current, hard threshold.
	LIF ModelType = iota

	// ELIF is the exponential LIF model: adds an exponential
	// spike-initiation term above the rheobase threshold.
	ELIF

	// AdaptiveELIF is the adaptive exponential (AdEx) model: adds a slow
	// adaptation current w that opposes depolarization and grows with
	// firing, producing spike-frequency adaptation.
	AdaptiveELIF

	ModelTypeN
)

var modelTypeNames = [ModelTypeN]string{"LIF", "ELIF", "AdaptiveELIF"}

func (mt ModelType) String() string {
	if mt < 0 || mt >= ModelTypeN {
		return fmt.Sprintf("ModelType(%d)", int32(mt))
	}
	return modelTypeNames[mt]
}

//////////////////////////////////////////////////////////////////////////////////////
//  RegulParams

// RegulParams implement slow homeostatic adaptation of the firing
// threshold: the threshold rises by Up on every spike and decays by Down
// on every non-spiking spike-evaluation, regulating long-run firing rate.
// Off by default: the threshold is then constant for the entire run.
type RegulParams struct {

	// enable threshold regularization
	On bool

	// threshold increase on each spike, in mV
	Up float32 `def:"0.1"`

	// threshold decrease on each spike-evaluation without a spike, in mV
	Down float32 `def:"0.1"`
}

func (rg *RegulParams) Defaults() {
	rg.Up = 0.1
	rg.Down = 0.1
}

func (rg *RegulParams) Update() {
}

//////////////////////////////////////////////////////////////////////////////////////
//  ActParams

// adex.ActParams contains all the per-neuron activation parameters for
// the integrate-and-fire family, selected by Model.  One shared params
// and state record covers all three models: the unused terms (Exp, Adapt)
// simply do not enter the voltage equation for the simpler models.
type ActParams struct {

	// which voltage-update law to use
	Model ModelType

	// leaky-integrator membrane equation parameters, used by all models
	Leak chans.LeakParams `display:"inline"`

	// firing threshold in mV: initial value of the neuron's live
	// threshold, which Regul may then adapt over the run
	Thr float32 `def:"-50"`

	// exponential spike-initiation parameters (ELIF, AdaptiveELIF)
	Exp chans.ExpParams `display:"inline"`

	// adaptation current parameters (AdaptiveELIF)
	Adapt chans.AdaptParams `display:"inline"`

	// homeostatic threshold regularization, shared by all models
	Regul RegulParams `display:"inline"`
}

func (ac *ActParams) Defaults() {
	ac.Model = LIF
	ac.Leak.Defaults()
	ac.Thr = -50
	ac.Exp.Defaults()
	ac.Adapt.Defaults()
	ac.Regul.Defaults()
	ac.Update()
}

// Update must be called after any changes to parameters
func (ac *ActParams) Update() {
	ac.Leak.Update()
	ac.Exp.Update()
	ac.Adapt.Update()
	ac.Regul.Update()
}

// Validate returns an error for parameter configurations that produce
// mathematically invalid dynamics: a threshold at or below the resting
// potential would fire the neuron forever, and non-positive time
// constants break the Euler update.  Called by NewNeuron to fail fast
// at construction rather than silently propagate incorrect dynamics.
func (ac *ActParams) Validate() error {
	if err := ac.Leak.Validate(); err != nil {
		return err
	}
	if ac.Thr <= ac.Leak.Urest {
		return fmt.Errorf("adex.ActParams: Thr (%g) must be above resting potential Urest (%g)", ac.Thr, ac.Leak.Urest)
	}
	if ac.Model == ELIF || ac.Model == AdaptiveELIF {
		if err := ac.Exp.Validate(); err != nil {
			return err
		}
	}
	if ac.Model == AdaptiveELIF {
		if err := ac.Adapt.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// TauDuDt returns tau * dU/dt for the selected model, for membrane
// potential u, driving current i, and adaptation current w (ignored
// except for AdaptiveELIF).
func (ac *ActParams) TauDuDt(u, i, w float32) float32 {
	du := ac.Leak.TauDuDt(u, i)
	switch ac.Model {
	case ELIF:
		du += ac.Exp.TauDuDt(u)
	case AdaptiveELIF:
		du += ac.Exp.TauDuDt(u) - ac.Leak.R*w
	}
	return du
}
