// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dual provides forward-mode automatic differentiation over dual
// numbers with per-value derivative channels.
//
// # Overview
//
// A Number pairs a scalar with one partial derivative per tracked channel,
// where a channel names one independent variable. Channel sets differ per
// Number and are merged deterministically when two differently-tracked
// Numbers meet in a binary operation: channels common to both operands take
// the two-sided derivative rule, channels tracked by one side only take the
// matching one-sided rule. Value and derivatives for every channel are
// produced in a single forward pass.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/dual/dual"
//	    "github.com/born-ml/dual/ops"
//	)
//
//	func main() {
//	    x := dual.New(3.0, 0) // independent variable on channel 0
//	    n := dual.New(2.0, 1) // independent variable on channel 1
//
//	    r := ops.Pow(x, n)    // tracks channels {0, 1}
//	    _ = r.Value()         // 9
//	    _ = r.DValue(0)       // d/dx x^n = n*x^(n-1) = 6
//	    _ = r.DValue(1)       // d/dn x^n = x^n * ln x = 9*ln 3
//	}
//
// # Seeding
//
// Every channel listed at construction starts with derivative 1, expressing
// that a variable is its own derivative with respect to itself. Results of
// operations derive their channels once, at construction, and the set never
// changes afterwards.
//
// # Error Handling
//
// The numeric core returns no errors: domain and range problems propagate as
// IEEE-754 NaN/Inf through ordinary arithmetic (sqrt of a negative value,
// division by a zero-valued channel, log outside its domain). Violating an
// API precondition, such as reading an untracked channel, panics.
//
// # Collections
//
// Array holds a fixed number of Numbers, each slot with its own channel set.
// Transform, Transform2, and Broadcast lift operators position-wise over
// Arrays; slots never interact.
package dual
