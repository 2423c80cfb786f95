// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adex

import (
	"testing"

	"cogentcore.org/core/math32"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-5)

func CmprFloats(got, trg []float32, msg string, t *testing.T) {
	t.Helper()
	for i := range got {
		dif := math32.Abs(got[i] - trg[i])
		if dif > difTol { // allow for small numerical diffs
			t.Errorf("%v err: idx: %v, got: %v, trg: %v, dif: %v\n", msg, i, got[i], trg[i], dif)
		}
	}
}

func TestDefaults(t *testing.T) {
	ac := ActParams{}
	ac.Defaults()
	got := []float32{ac.Leak.Tau, ac.Leak.Urest, ac.Leak.R, ac.Thr, ac.Exp.DeltaT, ac.Exp.ThetaRh, ac.Adapt.TauW, ac.Adapt.A, ac.Adapt.B, ac.Adapt.Winit}
	trg := []float32{10, -70, 5, -50, 1, -55, 5, 5, 1, 2}
	CmprFloats(got, trg, "defaults", t)
}

func TestLIFPotential(t *testing.T) {
	// hand-computed Euler steps for tau=10, urest=-70, r=5, I=1, dt=1:
	// u' = u + (-(u - urest) + r*I) / tau
	cor := []float32{-69.5, -69.05, -68.645, -68.2805}

	ac := ActParams{}
	ac.Defaults()
	nrn, err := NewNeuron(0, ac)
	if err != nil {
		t.Fatal(err)
	}
	cur := []float32{1, 1, 1, 1}
	nrn.ConfigBuffered(cur, 4, 1)

	us := make([]float32, len(cor))
	for ti := 0; ti < len(cor); ti++ {
		tt := float32(ti)
		us[ti] = nrn.ComputePotential(tt, 1)
		nrn.ComputeSpike(tt, 1)
	}
	CmprFloats(us, cor, "LIF potential", t)

	if len(nrn.SpikeTimes) != 0 {
		t.Errorf("subthreshold LIF should not spike, got: %v", nrn.SpikeTimes)
	}
}

func TestLIFNoInput(t *testing.T) {
	// no driving current: potential stays at rest forever, no spikes
	ac := ActParams{}
	ac.Defaults()
	nrn, err := NewNeuron(0, ac)
	if err != nil {
		t.Fatal(err)
	}
	nrn.ConfigBuffered(nil, 100, 1)

	for ti := 0; ti < 100; ti++ {
		tt := float32(ti)
		nrn.ComputePotential(tt, 1)
		nrn.ComputeSpike(tt, 1)
	}
	for i, u := range nrn.Potentials {
		if u != -70 {
			t.Fatalf("potential should stay at rest, idx: %v, got: %v", i, u)
		}
	}
	if len(nrn.SpikeTimes) != 0 {
		t.Errorf("no-input LIF should never spike, got: %v", nrn.SpikeTimes)
	}
}

func TestLIFSpike(t *testing.T) {
	// constant current with urest + r*I = -20 > threshold: rises
	// monotonically, crosses -50, clamps and resets
	ac := ActParams{}
	ac.Defaults()
	nrn, err := NewNeuron(0, ac)
	if err != nil {
		t.Fatal(err)
	}
	cur := make([]float32, 40)
	for i := range cur {
		cur[i] = 10
	}
	nrn.ConfigBuffered(cur, 40, 1)

	for ti := 0; ti < 40; ti++ {
		tt := float32(ti)
		nrn.ComputePotential(tt, 1)
		nrn.ComputeSpike(tt, 1)
		if len(nrn.SpikeTimes) > 0 {
			break
		}
	}
	if len(nrn.SpikeTimes) != 1 {
		t.Fatalf("expected exactly one spike, got: %v", nrn.SpikeTimes)
	}

	// monotonic rise up to the clamp
	np := len(nrn.Potentials)
	for i := 1; i < np-1; i++ {
		if nrn.Potentials[i] <= nrn.Potentials[i-1] {
			t.Errorf("potential should rise monotonically before spike, idx: %v", i)
		}
	}
	// the two most recent entries are exactly threshold then rest
	CmprFloats([]float32{nrn.Potentials[np-2], nrn.Potentials[np-1]}, []float32{-50, -70}, "clamp-then-reset", t)
	if nrn.U != -70 {
		t.Errorf("committed potential after spike should be urest, got: %v", nrn.U)
	}
}

func TestELIFPotential(t *testing.T) {
	// ELIF adds delta_t * exp((u - theta_rh) / delta_t) to the LIF term
	ac := ActParams{}
	ac.Defaults()
	ac.Model = ELIF
	nrn, err := NewNeuron(0, ac)
	if err != nil {
		t.Fatal(err)
	}
	cur := []float32{2, 2, 2}
	nrn.ConfigBuffered(cur, 3, 1)

	u := float32(-70)
	cor := make([]float32, 3)
	for i := range cor {
		du := -(u - (-70)) + 5*2 + 1*math32.Exp((u-(-55))/1)
		u = u + du/10
		cor[i] = u
	}

	us := make([]float32, 3)
	for ti := 0; ti < 3; ti++ {
		tt := float32(ti)
		us[ti] = nrn.ComputePotential(tt, 1)
		nrn.ComputeSpike(tt, 1)
	}
	CmprFloats(us, cor, "ELIF potential", t)
}

func TestNewNeuronValidation(t *testing.T) {
	ac := ActParams{}
	ac.Defaults()
	ac.Thr = -80 // below rest: invalid
	if _, err := NewNeuron(0, ac); err == nil {
		t.Errorf("threshold below rest should fail construction")
	}

	ac.Defaults()
	ac.Leak.Tau = 0
	if _, err := NewNeuron(0, ac); err == nil {
		t.Errorf("zero tau should fail construction")
	}

	ac.Defaults()
	ac.Model = ELIF
	ac.Exp.DeltaT = 0
	if _, err := NewNeuron(0, ac); err == nil {
		t.Errorf("zero DeltaT should fail ELIF construction")
	}

	ac.Defaults()
	if _, err := NewNeuron(0, ac); err != nil {
		t.Errorf("default params should construct: %v", err)
	}
}

func TestRegulThreshold(t *testing.T) {
	// without regularization the threshold is constant for the whole run
	ac := ActParams{}
	ac.Defaults()
	nrn, _ := NewNeuron(0, ac)
	cur := make([]float32, 30)
	for i := range cur {
		cur[i] = 10
	}
	nrn.ConfigBuffered(cur, 30, 1)
	for ti := 0; ti < 30; ti++ {
		tt := float32(ti)
		nrn.ComputePotential(tt, 1)
		nrn.ComputeSpike(tt, 1)
		if nrn.Thr != -50 {
			t.Fatalf("threshold should be constant without regularization, got: %v", nrn.Thr)
		}
	}

	// with regularization: up by Up on each spike, down by Down otherwise
	ac.Regul.On = true
	ac.Regul.Up = 1
	ac.Regul.Down = 0.5
	nrn, _ = NewNeuron(1, ac)
	nrn.ConfigBuffered(nil, 10, 1)

	nrn.ComputePotential(0, 1) // stays at rest: no spike
	nrn.ComputeSpike(0, 1)
	if dif := math32.Abs(nrn.Thr - (-50.5)); dif > difTol {
		t.Errorf("threshold should decay without spike, got: %v", nrn.Thr)
	}

	nrn.Potentials[len(nrn.Potentials)-1] = -40 // force a crossing
	nrn.ComputeSpike(1, 1)
	if dif := math32.Abs(nrn.Thr - (-49.5)); dif > difTol {
		t.Errorf("threshold should rise on spike, got: %v", nrn.Thr)
	}
}
