// Package keccak provides the Keccak-f[1600] permutation.
//
// The permutation operates in place on a 200-byte state, interpreted as 25
// 64-bit little-endian lanes regardless of host byte order. It is exposed as
// a standalone primitive for callers building other sponge and duplex
// constructions.
package keccak

// F1600 applies the Keccak-f[1600] permutation to the state (24 rounds).
func F1600(state *[200]byte) {
	f1600Generic(state, 24)
}
