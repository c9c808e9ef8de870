// SPDX-License-Identifier: MIT
// Package: influence/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with "%s: ...: %w" using the method tag.
//   • Validation priority: size first, then probability, then RNG presence.
package builder

import "errors"

// ErrTooFewVertices indicates that n is smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that p lies outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor needs an RNG
// (WithSeed/WithRand) and none was configured.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a programmer error (nil constructor) or a
// core invariant violation during construction.
var ErrConstructFailed = errors.New("builder: construction failed")
