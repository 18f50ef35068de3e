// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccak

import (
	"encoding/binary"
	"math/bits"
)

// rho is the per-lane rotation offset for the ρ step, in the lane order
// walked by the π step. Lane (0, 0) is never rotated and is not listed.
var rho = [24]int{
	1, 3, 6, 10, 15, 21,
	28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43,
	62, 18, 39, 61, 20, 44,
}

// pi is the destination index of each lane in the π step, excluding lane
// (0, 0), which is fixed.
var pi = [24]int{
	10, 7, 11, 17, 18, 3,
	5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2,
	20, 14, 22, 9, 6, 1,
}

// rc is the ι step round constant for each of the 24 rounds.
var rc = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a, 0x8000000080008000,
	0x000000000000808b, 0x0000000080000001, 0x8000000080008081, 0x8000000000008009,
	0x000000000000008a, 0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080, 0x000000000000800a, 0x800000008000000a,
	0x8000000080008081, 0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}

// f1600Generic applies the last rounds rounds of Keccak-f[1600] to the
// state. Keccak-p[1600, n] for n < 24 uses the final n round constants, so
// rounds selects a suffix of rc.
func f1600Generic(a *[200]byte, rounds int) {
	var lanes [25]uint64
	for i := range lanes {
		lanes[i] = binary.LittleEndian.Uint64(a[i*8:])
	}

	var b [5]uint64
	for r := 24 - rounds; r < 24; r++ {
		// θ: XOR each lane with the parities of two neighboring columns.
		for x := range 5 {
			b[x] = lanes[x] ^ lanes[x+5] ^ lanes[x+10] ^ lanes[x+15] ^ lanes[x+20]
		}
		for x := range 5 {
			d := b[(x+4)%5] ^ bits.RotateLeft64(b[(x+1)%5], 1)
			for y := 0; y < 25; y += 5 {
				lanes[y+x] ^= d
			}
		}

		// ρ and π, fused: rotate each lane and move it to its new position,
		// following the cycle starting at lane (1, 0).
		t := lanes[1]
		for x := range 24 {
			next := lanes[pi[x]]
			lanes[pi[x]] = bits.RotateLeft64(t, rho[x])
			t = next
		}

		// χ: the only non-linear step.
		for y := 0; y < 25; y += 5 {
			copy(b[:], lanes[y:y+5])
			for x := range 5 {
				lanes[y+x] = b[x] ^ (^b[(x+1)%5] & b[(x+2)%5])
			}
		}

		// ι: break the symmetry between rounds.
		lanes[0] ^= rc[r]
	}

	for i, v := range lanes {
		binary.LittleEndian.PutUint64(a[i*8:], v)
	}
}
