// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adex

import (
	"fmt"
	"reflect"
)

// adex.Synapse is the connection from a sending neuron to a receiving
// neuron.  The dynamics core only ever reads a synapse: the weight and
// delay are set by the network-assembly collaborator and the sign of the
// delivered contribution comes from the sending neuron's Inhib flag.
type Synapse struct {

	// synaptic weight: magnitude of the contribution delivered to the
	// receiver per presynaptic spike
	Wt float32

	// synaptic delay in time units: a spike at time t reaches the
	// receiver's input buffer at t + Delay + dt
	Delay float32

	// sending (presynaptic) neuron
	Send *Neuron `display:"-"`

	// receiving (postsynaptic) neuron
	Recv *Neuron `display:"-"`
}

// Connect creates a synapse from send to recv with the given weight and
// delay, appends it to the sender's outgoing synapses, and returns it.
func Connect(send, recv *Neuron, wt, delay float32) *Synapse {
	sy := &Synapse{Wt: wt, Delay: delay, Send: send, Recv: recv}
	send.Syns = append(send.Syns, sy)
	return sy
}

//////////////////////////////////////////////////////////////////////////////////////
//  Synapse variables

var SynapseVars = []string{"Wt", "Delay"}

var SynapseVarsMap map[string]int

func init() {
	SynapseVarsMap = make(map[string]int, len(SynapseVars))
	for i, v := range SynapseVars {
		SynapseVarsMap[v] = i
	}
}

func (sy *Synapse) VarNames() []string {
	return SynapseVars
}

// SynapseVarByName returns the index of the variable in the Synapse, or error
func SynapseVarByName(varNm string) (int, error) {
	i, ok := SynapseVarsMap[varNm]
	if !ok {
		return 0, fmt.Errorf("Synapse VarByName: variable name: %v not valid", varNm)
	}
	return i, nil
}

// VarByIndex returns variable using index (0 = first variable in SynapseVars list)
func (sy *Synapse) VarByIndex(idx int) float32 {
	v := reflect.ValueOf(*sy)
	return v.FieldByName(SynapseVars[idx]).Interface().(float32)
}

// VarByName returns variable by name, or error
func (sy *Synapse) VarByName(varNm string) (float32, error) {
	i, err := SynapseVarByName(varNm)
	if err != nil {
		return 0, err
	}
	return sy.VarByIndex(i), nil
}
