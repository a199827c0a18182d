package model

import "math/rand"

// NormalSource supplies independent standard-normal draws. It is the only
// source of randomness in the simulation; injecting a fixed source makes a
// whole run reproducible.
//
// *math/rand.Rand satisfies this interface directly.
type NormalSource interface {
	NormFloat64() float64
}

// NewSeededSource returns a NormalSource backed by its own generator, so
// independent paths can draw concurrently without sharing state.
func NewSeededSource(seed int64) NormalSource {
	return rand.New(rand.NewSource(seed))
}
