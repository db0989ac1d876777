// SPDX-License-Identifier: MIT

// Package model declares the host-model surface the detection engine
// consumes: an ordered constraint list, an ordered variable list, a
// per-constraint "variables involved" accessor and a relevance predicate
// for variables fixed out of the active view.
//
// The engine never owns or mutates the model; a host solver adapts its own
// representation to the Model interface. For tests, tooling and standalone
// use the package ships Linear, a minimal in-memory implementation.
package model
