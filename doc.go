// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package adex is the overall repository for the integrate-and-fire spiking
neuron models (LIF, ELIF, AdEx) implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* adex: the core neuron dynamics engine -- per-neuron state, the two
per-tick stepping paths (buffered array-indexed with synaptic delay, and
online scalar accumulation), spike evaluation and propagation, and the
potential / spike history recording read by external plotting and
reporting code.

* chans: the membrane-equation parameter structs for the model family --
the leaky-integrator term, the exponential spike-initiation term, and the
slow adaptation current.

Network assembly, learning rules, visualization and experiment
orchestration live in separate layers that drive this engine through the
stepping interface.
*/
package adex
