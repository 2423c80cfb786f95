// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package adex

import (
	"strconv"

	"github.com/emer/emergent/v2/etime"
	table "github.com/emer/etable/v2/etable"
	tensor "github.com/emer/etable/v2/etensor"
)

// LogPrec is precision for saving float values in logs
const LogPrec = 4

// ConfigPotentialTable configures dt with the schema for a potential
// history export: one row per recorded potential entry.
func (nrn *Neuron) ConfigPotentialTable(dt *table.Table, tm *Time) {
	dt.SetMetaData("name", "NeuronPotentials")
	dt.SetMetaData("scope", string(etime.Scope(tm.Mode, etime.Cycle)))
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))

	sch := table.Schema{
		{"Neuron", tensor.FLOAT64, nil, nil},
		{"Entry", tensor.FLOAT64, nil, nil},
		{"Potential", tensor.FLOAT64, nil, nil},
	}
	dt.SetFromSchema(sch, 0)
}

// PotentialTable fills dt with this neuron's full potential history.
// The history is append-only and time-ordered, so repeated exports only
// ever grow; rows are never reordered or rewritten.
// Note: a spiking step records two entries (the threshold clamp and the
// reset), so Entry is a history index, not a cycle count.
func (nrn *Neuron) PotentialTable(dt *table.Table) {
	dt.SetNumRows(len(nrn.Potentials))
	for i, u := range nrn.Potentials {
		dt.SetCellFloat("Neuron", i, float64(nrn.Index))
		dt.SetCellFloat("Entry", i, float64(i))
		dt.SetCellFloat("Potential", i, float64(u))
	}
}

// ConfigSpikeTable configures dt with the schema for a spike-times
// export: one row per recorded spike.
func (nrn *Neuron) ConfigSpikeTable(dt *table.Table, tm *Time) {
	dt.SetMetaData("name", "NeuronSpikes")
	dt.SetMetaData("scope", string(etime.Scope(tm.Mode, etime.Cycle)))
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))

	sch := table.Schema{
		{"Neuron", tensor.FLOAT64, nil, nil},
		{"SpikeTime", tensor.FLOAT64, nil, nil},
	}
	dt.SetFromSchema(sch, 0)
}

// SpikeTable fills dt with this neuron's recorded spike times, in order.
func (nrn *Neuron) SpikeTable(dt *table.Table) {
	dt.SetNumRows(len(nrn.SpikeTimes))
	for i, st := range nrn.SpikeTimes {
		dt.SetCellFloat("Neuron", i, float64(nrn.Index))
		dt.SetCellFloat("SpikeTime", i, float64(st))
	}
}
