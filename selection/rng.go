// Package selection - RNG utilities for pivot randomization.
//
// This file centralizes deterministic random generation for quickselect.
//
// Goals:
//   - Determinism: same inputs ⇒ identical pivot sequence across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; pure helpers.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each selection call builds its
//     own private stream, so concurrent calls on disjoint buffers stay
//     independent.
package selection

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// mixSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Rationale:
//   - Pivot streams for different range sizes should be decorrelated.
//   - The SplitMix64-style avalanche mix eliminates correlations; the
//     constants are the canonical SplitMix64 multipliers/finalizer
//     (Vigna 2014) and provide strong bit diffusion.
//
// Complexity: O(1).
func mixSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// pivotRNG returns the deterministic pivot stream for a range of length n.
// Mixing the length in keeps pivot sequences decorrelated across calls of
// different sizes while staying fully reproducible.
//
// Complexity: O(1).
func pivotRNG(n int) *rand.Rand {
	return rngFromSeed(mixSeed(defaultRNGSeed, uint64(n)))
}
