// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package adex implements the integrate-and-fire family of spiking point
neurons for discrete-time network simulation: leaky integrate-and-fire
(LIF), exponential LIF (ELIF), and adaptive exponential LIF (AdEx).

All three models share one state record (adex.Neuron) and one set of
stepping operations; ActParams.Model selects the voltage-update law.
A driving loop, external to this package, advances a shared discrete time
one dt per tick and calls the stepping operations for every neuron at
each tick.  Two stepping modes exist and are never intermixed within a
run:

  - Buffered: ComputePotential / ComputeSpike / ApplyPreSynaptic / Reset,
    with a per-step driving current array and delayed synaptic delivery
    into per-step input buffers.
  - Online: Step, with immediate scalar injection into the postsynaptic
    GSyn accumulator and no propagation delay.

Potential and spike histories are append-only and time-ordered, so that
external reporting code never sees reordering or retroactive edits;
logging.go exports them as tables.
*/
package adex
