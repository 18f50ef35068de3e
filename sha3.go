// Package sha3 implements the SHA-3 fixed-output hash functions and the
// SHAKE extendable-output functions defined in FIPS 202, as well as the
// pre-standardization Keccak variants used by Ethereum and other systems.
//
// All variants share a single sponge construction over the Keccak-f[1600]
// permutation, differing only in their rate and domain separation byte. The
// permutation itself is available to other constructions as
// [github.com/codahale/sha3/hazmat/keccak.F1600].
package sha3

import (
	"encoding"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"

	"github.com/codahale/sha3/hazmat/keccak"
	"github.com/codahale/sha3/internal/mem"
)

// stateSize is the width of the Keccak-f[1600] permutation in bytes.
const stateSize = 200

// Hasher is an incremental sponge instance that implements io.ReadWriter and
// hash.Hash. Writes absorb data into the sponge and reads squeeze output
// from it. Once Read has been called, no further writes are permitted.
type Hasher struct {
	s         [stateSize]byte
	rate      int
	pos       int
	ds        byte
	size      int
	squeezing bool
}

// New returns a new Hasher with the given rate in bytes and domain
// separation byte, for callers building custom sponge constructions. The
// digest size defaults to half the capacity, the sponge's generic security
// level. New panics if the rate is not in (0, 200].
//
// Most callers should use one of the named variant constructors instead.
func New(rate int, ds byte) *Hasher {
	if rate <= 0 || rate > stateSize {
		panic("sha3: invalid rate")
	}
	return &Hasher{rate: rate, ds: ds, size: (stateSize - rate) / 2} //nolint:exhaustruct // state starts zeroed
}

// Write absorbs p into the sponge state, permuting at each rate boundary.
// The resulting digest depends only on the concatenation of all writes, not
// on how the input is chunked. It panics if called after Read.
func (h *Hasher) Write(p []byte) (int, error) {
	if h.squeezing {
		panic("sha3: Write after Read")
	}
	n := len(p)
	for len(p) > 0 {
		w := min(h.rate-h.pos, len(p))
		mem.XORInPlace(h.s[h.pos:h.pos+w], p[:w])
		h.pos += w
		p = p[w:]
		if h.pos == h.rate {
			keccak.F1600(&h.s)
			h.pos = 0
		}
	}
	return n, nil
}

// Read squeezes output from the sponge state into p. On the first call, it
// finalizes absorption by applying padding and permuting; afterwards the
// Hasher accepts no further writes. Subsequent calls continue squeezing, so
// the SHAKE variants can produce output of any length.
func (h *Hasher) Read(p []byte) (int, error) {
	if !h.squeezing {
		h.pad()
	}
	n := len(p)
	for len(p) > 0 {
		if h.pos == h.rate {
			keccak.F1600(&h.s)
			h.pos = 0
		}
		r := copy(p, h.s[h.pos:h.rate])
		h.pos += r
		p = p[r:]
	}
	return n, nil
}

// pad applies multi-rate padding and transitions the sponge to its squeezing
// phase. When pos == rate-1, the delimiter and the final 0x80 land on the
// same byte.
func (h *Hasher) pad() {
	h.s[h.pos] ^= h.ds
	h.s[h.rate-1] ^= 0x80
	keccak.F1600(&h.s)
	h.pos = 0
	h.squeezing = true
}

// Sum appends the variant's digest to b and returns the result. Unlike Read,
// it finalizes a copy of the sponge, leaving the Hasher writable.
func (h *Hasher) Sum(b []byte) []byte {
	c := *h
	out := make([]byte, h.size)
	_, _ = c.Read(out)
	return append(b, out...)
}

// Reset zeros the sponge state, returning the Hasher to its freshly
// constructed state.
func (h *Hasher) Reset() {
	clear(h.s[:])
	h.pos = 0
	h.squeezing = false
}

// Clone returns an independent copy of the Hasher, allowing a computation to
// be branched (e.g. a digest of a prefix while the original continues).
func (h *Hasher) Clone() *Hasher {
	c := *h
	return &c
}

// Size returns the digest size in bytes: the fixed digest length for the
// SHA-3 and Keccak variants, the minimum output for full security for the
// SHAKE variants.
func (h *Hasher) Size() int {
	return h.size
}

// BlockSize returns the sponge's rate in bytes.
func (h *Hasher) BlockSize() int {
	return h.rate
}

// String returns the sponge state as hex, with ^ marking the current offset
// and | marking the rate boundary.
func (h *Hasher) String() string {
	s := hex.EncodeToString(h.s[:])
	return s[:2*h.pos] + "^" + s[2*h.pos:2*h.rate] + "|" + s[2*h.rate:]
}

// marshaledSize is the length of a marshaled Hasher: the state plus rate,
// domain separator, digest size, offset, and phase.
const marshaledSize = stateSize + 5

func (h *Hasher) AppendBinary(b []byte) ([]byte, error) {
	b = append(b, h.s[:]...)
	b = append(b, byte(h.rate), h.ds, byte(h.size), byte(h.pos))
	if h.squeezing {
		return append(b, 1), nil
	}
	return append(b, 0), nil
}

func (h *Hasher) MarshalBinary() ([]byte, error) {
	return h.AppendBinary(make([]byte, 0, marshaledSize))
}

func (h *Hasher) UnmarshalBinary(data []byte) error {
	if len(data) != marshaledSize {
		return errors.New("sha3: invalid state length")
	}
	rate, ds, size, pos, phase := int(data[stateSize]), data[stateSize+1], int(data[stateSize+2]), int(data[stateSize+3]), data[stateSize+4]
	if rate == 0 || rate > stateSize || pos > rate || phase > 1 {
		return errors.New("sha3: invalid state encoding")
	}
	copy(h.s[:], data)
	h.rate, h.ds, h.size, h.pos, h.squeezing = rate, ds, size, pos, phase == 1
	return nil
}

var (
	_ hash.Hash                  = (*Hasher)(nil)
	_ io.Reader                  = (*Hasher)(nil)
	_ fmt.Stringer               = (*Hasher)(nil)
	_ encoding.BinaryAppender    = (*Hasher)(nil)
	_ encoding.BinaryMarshaler   = (*Hasher)(nil)
	_ encoding.BinaryUnmarshaler = (*Hasher)(nil)
)
