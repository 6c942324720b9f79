// Package testutil provides testing utilities for liteset.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic, seedable random source for driving
// randomized add/remove churn against a set under test.
//
//	rng := testutil.NewRNG(seed)
//	i := rng.Intn(poolSize)   // pick a member
//	if rng.Bool() { ... }     // pick an operation
package testutil
