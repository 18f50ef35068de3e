package sha3

// Domain separation bytes distinguishing the padding of each family.
const (
	dsKeccak byte = 0x01
	dsSHA3   byte = 0x06
	dsSHAKE  byte = 0x1f
)

// rate returns the rate in bytes of a variant with the given security level
// in bits, leaving a capacity of twice the security level.
func rate(bits int) int {
	return stateSize - bits/4
}

// New224 returns a Hasher computing the 28-byte SHA3-224 digest.
func New224() *Hasher { return New(rate(224), dsSHA3) }

// New256 returns a Hasher computing the 32-byte SHA3-256 digest.
func New256() *Hasher { return New(rate(256), dsSHA3) }

// New384 returns a Hasher computing the 48-byte SHA3-384 digest.
func New384() *Hasher { return New(rate(384), dsSHA3) }

// New512 returns a Hasher computing the 64-byte SHA3-512 digest.
func New512() *Hasher { return New(rate(512), dsSHA3) }

// NewLegacyKeccak224 returns a Hasher computing the 28-byte digest of the
// pre-standardization Keccak-224 function.
func NewLegacyKeccak224() *Hasher { return New(rate(224), dsKeccak) }

// NewLegacyKeccak256 returns a Hasher computing the 32-byte digest of the
// pre-standardization Keccak-256 function, as used by Ethereum.
func NewLegacyKeccak256() *Hasher { return New(rate(256), dsKeccak) }

// NewLegacyKeccak384 returns a Hasher computing the 48-byte digest of the
// pre-standardization Keccak-384 function.
func NewLegacyKeccak384() *Hasher { return New(rate(384), dsKeccak) }

// NewLegacyKeccak512 returns a Hasher computing the 64-byte digest of the
// pre-standardization Keccak-512 function.
func NewLegacyKeccak512() *Hasher { return New(rate(512), dsKeccak) }

// NewSHAKE128 returns a Hasher computing the SHAKE128 extendable-output
// function. Read as many bytes as needed; Sum appends 32.
func NewSHAKE128() *Hasher {
	h := New(rate(128), dsSHAKE)
	h.size = 32
	return h
}

// NewSHAKE256 returns a Hasher computing the SHAKE256 extendable-output
// function. Read as many bytes as needed; Sum appends 64.
func NewSHAKE256() *Hasher {
	h := New(rate(256), dsSHAKE)
	h.size = 64
	return h
}

// Sum224 returns the SHA3-224 digest of data.
func Sum224(data []byte) (out [28]byte) {
	sum(New224(), data, out[:])
	return out
}

// Sum256 returns the SHA3-256 digest of data.
func Sum256(data []byte) (out [32]byte) {
	sum(New256(), data, out[:])
	return out
}

// Sum384 returns the SHA3-384 digest of data.
func Sum384(data []byte) (out [48]byte) {
	sum(New384(), data, out[:])
	return out
}

// Sum512 returns the SHA3-512 digest of data.
func Sum512(data []byte) (out [64]byte) {
	sum(New512(), data, out[:])
	return out
}

// SumLegacyKeccak256 returns the pre-standardization Keccak-256 digest of
// data.
func SumLegacyKeccak256(data []byte) (out [32]byte) {
	sum(NewLegacyKeccak256(), data, out[:])
	return out
}

// SumLegacyKeccak512 returns the pre-standardization Keccak-512 digest of
// data.
func SumLegacyKeccak512(data []byte) (out [64]byte) {
	sum(NewLegacyKeccak512(), data, out[:])
	return out
}

// SumSHAKE128 returns length bytes of SHAKE128 output over data.
func SumSHAKE128(data []byte, length int) []byte {
	out := make([]byte, length)
	sum(NewSHAKE128(), data, out)
	return out
}

// SumSHAKE256 returns length bytes of SHAKE256 output over data.
func SumSHAKE256(data []byte, length int) []byte {
	out := make([]byte, length)
	sum(NewSHAKE256(), data, out)
	return out
}

func sum(h *Hasher, data, out []byte) {
	_, _ = h.Write(data)
	_, _ = h.Read(out)
}
