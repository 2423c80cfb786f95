// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adex

import (
	"fmt"
	"reflect"

	"github.com/emer/etable/v2/minmax"
	"github.com/emer/emergent/v2/params"
)

// adex.Neuron holds the full state for one simulated spiking neuron:
// the activation parameters, the live threshold and committed membrane
// potential, the per-step current and input buffers, and the append-only
// potential and spike histories read by external reporting collaborators.
// One Neuron covers all models in the family; Act.Model selects the
// voltage-update law.
type Neuron struct {

	// caller-assigned index of this neuron within the simulation --
	// identity is owned by the network-assembly collaborator, not the
	// neuron itself
	Index int32

	// name, for params styling (#Name selectors); optional
	Nm string

	// class tag(s) for params styling (.Class selectors), space separated
	Cls string

	// inhibitory neuron: flips the sign of all outgoing synaptic
	// contributions
	Inhib bool

	// activation parameters: model selection, membrane equation,
	// threshold, adaptation, regularization
	Act ActParams `display:"add-fields"`

	// live firing threshold in mV; starts at Act.Thr and is mutated only
	// by Act.Regul, at most once per spike-evaluation
	Thr float32

	// committed membrane potential in mV: the value as of the last
	// ComputeSpike or Step call.  ComputePotential integrates from here
	// but does not commit.
	U float32

	// adaptation current (AdaptiveELIF only), advanced exactly once per
	// ComputeSpike or Step call
	W float32

	// externally supplied driving current, indexed by time step
	// (buffered mode)
	Current []float32

	// incoming synaptic current indexed by time step, written by
	// presynaptic neurons during spike propagation (buffered mode)
	Input []float32

	// incoming synaptic accumulator (online mode); the two input paths
	// are separate simulation modes, never intermixed within one run
	GSyn float32

	// append-only record of the membrane potential at every processed
	// time step; the last element is always the current potential
	Potentials []float32

	// append-only record of the discrete times at which this neuron fired
	SpikeTimes []float32

	// outgoing synapses: where this neuron's spikes are delivered
	Syns []*Synapse

	// simulation duration in time units: upper bound on valid delivery
	// times; synaptic deliveries beyond it are silently dropped
	Duration float32

	// observed min / max of all recorded potentials, for reporting
	PotRange minmax.F32 `edit:"-"`
}

// NewNeuron returns a new Neuron with the given caller-assigned index
// and activation parameters, validating the parameters first: an
// inconsistent configuration (threshold at or below rest, non-positive
// time constants) is an error at construction, not a silent source of
// invalid dynamics.
func NewNeuron(index int32, act ActParams) (*Neuron, error) {
	act.Update()
	if err := act.Validate(); err != nil {
		return nil, err
	}
	nrn := &Neuron{Index: index, Act: act}
	nrn.Init()
	return nrn, nil
}

// Init resets all dynamic state back to construction values, without
// touching parameters or buffers: potential to rest, threshold to the
// configured value, adaptation to its initial value, empty histories.
func (nrn *Neuron) Init() {
	nrn.U = nrn.Act.Leak.Urest
	nrn.Thr = nrn.Act.Thr
	nrn.W = nrn.Act.Adapt.Winit
	nrn.GSyn = 0
	nrn.Potentials = nrn.Potentials[:0]
	nrn.SpikeTimes = nrn.SpikeTimes[:0]
	nrn.PotRange.SetInfinity()
}

// ConfigBuffered configures this neuron for a buffered-mode run of the
// given duration and step size: sets the driving current source and
// allocates a zeroed input buffer with one entry per time step.
// The current slice is used as-is (not copied).
func (nrn *Neuron) ConfigBuffered(current []float32, duration, dt float32) {
	nrn.Current = current
	nrn.Duration = duration
	nsteps := int(duration / dt)
	if cap(nrn.Input) >= nsteps {
		nrn.Input = nrn.Input[:nsteps]
		for i := range nrn.Input {
			nrn.Input[i] = 0
		}
	} else {
		nrn.Input = make([]float32, nsteps)
	}
}

// SetInhib marks this neuron as inhibitory and returns it, for chaining
// during population construction.
func (nrn *Neuron) SetInhib() *Neuron {
	nrn.Inhib = true
	return nrn
}

// params.Styler interface, for parameter sheet selectors

func (nrn *Neuron) TypeName() string { return "Neuron" }
func (nrn *Neuron) Name() string     { return nrn.Nm }
func (nrn *Neuron) Class() string    { return nrn.Act.Model.String() + " " + nrn.Cls }

// ApplyParams applies given parameter style Sheet to this neuron.
// Calls UpdateParams on anything set to ensure derived parameters are
// all updated.
// If setMsg is true, then a message is printed to confirm each parameter
// that is set.  It always prints a message if a parameter fails to be set.
// Returns true if any params were set, and error if there were any errors.
func (nrn *Neuron) ApplyParams(pars *params.Sheet, setMsg bool) (bool, error) {
	app, err := pars.Apply(nrn, setMsg)
	if app {
		nrn.UpdateParams()
	}
	return app, err
}

// UpdateParams updates all params given any changes that might have been
// made to individual values
func (nrn *Neuron) UpdateParams() {
	nrn.Act.Update()
}

//////////////////////////////////////////////////////////////////////////////////////
//  Neuron variables

// NeuronVars are the scalar state variables accessible by name, for the
// observability surface (external reporting / plotting collaborators).
var NeuronVars = []string{"U", "Thr", "W", "GSyn"}

var NeuronVarsMap map[string]int

func init() {
	NeuronVarsMap = make(map[string]int, len(NeuronVars))
	for i, v := range NeuronVars {
		NeuronVarsMap[v] = i
	}
}

func (nrn *Neuron) VarNames() []string {
	return NeuronVars
}

// NeuronVarIndexByName returns the index of the variable in the Neuron, or error
func NeuronVarIndexByName(varNm string) (int, error) {
	i, ok := NeuronVarsMap[varNm]
	if !ok {
		return -1, fmt.Errorf("Neuron VarByName: variable name: %v not valid", varNm)
	}
	return i, nil
}

// VarByIndex returns variable using index (0 = first variable in NeuronVars list)
func (nrn *Neuron) VarByIndex(idx int) float32 {
	v := reflect.ValueOf(*nrn)
	return v.FieldByName(NeuronVars[idx]).Interface().(float32)
}

// VarByName returns variable by name, or error
func (nrn *Neuron) VarByName(varNm string) (float32, error) {
	i, err := NeuronVarIndexByName(varNm)
	if err != nil {
		return 0, err
	}
	return nrn.VarByIndex(i), nil
}
