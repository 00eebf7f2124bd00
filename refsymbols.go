package riblt

import (
	"encoding/binary"

	"github.com/dchest/siphash"
)

// fixedBytesSize is the width of a FixedBytes symbol, matching the
// Rust rateless-iblt crate's TEST_SYMBOL_SIZE test constant.
const fixedBytesSize = 64

// FixedBytes is a reference Symbol implementation over a fixed-width byte
// array. Combine is byte-wise XOR; Hash is keyed SipHash-2-4 with the key
// pair (567, 890), matching the TestSymbol reference type this package's
// algorithm was ported from.
type FixedBytes [fixedBytesSize]byte

// fixedBytesHashK0, fixedBytesHashK1 are the fixed SipHash key halves for
// FixedBytes, chosen to match the Rust rateless-iblt crate's
// SipHasher::new_with_keys(567, 890) exactly so cross-implementation test
// vectors agree.
const (
	fixedBytesHashK0 = 567
	fixedBytesHashK1 = 890
)

// NewFixedBytesFromUint64 builds a FixedBytes symbol whose first bytes are
// the little-endian encoding of x and the rest are zero, mirroring the
// Rust rateless-iblt crate's new_test_symbol helper.
func NewFixedBytesFromUint64(x uint64) FixedBytes {
	var b FixedBytes
	binary.LittleEndian.PutUint64(b[:8], x)
	return b
}

// Zero returns the all-zero FixedBytes value.
func (FixedBytes) Zero() FixedBytes {
	return FixedBytes{}
}

// Xor returns the byte-wise XOR of b and other.
func (b FixedBytes) Xor(other FixedBytes) FixedBytes {
	var out FixedBytes
	for i := range out {
		out[i] = b[i] ^ other[i]
	}
	return out
}

// Hash returns the keyed SipHash-2-4 digest of b.
func (b FixedBytes) Hash() uint64 {
	return siphash.Hash(fixedBytesHashK0, fixedBytesHashK1, b[:])
}

// Uint64Symbol is a reference Symbol implementation over a plain uint64.
// Combine is XOR; Hash is keyed SipHash-2-4 with the key pair (123, 456),
// matching the Rust rateless-iblt crate's TestU64 reference type.
type Uint64Symbol uint64

const (
	uint64SymbolHashK0 = 123
	uint64SymbolHashK1 = 456
)

// Zero returns 0.
func (Uint64Symbol) Zero() Uint64Symbol {
	return 0
}

// Xor returns the bitwise XOR of u and other.
func (u Uint64Symbol) Xor(other Uint64Symbol) Uint64Symbol {
	return u ^ other
}

// Hash returns the keyed SipHash-2-4 digest of u's little-endian bytes.
func (u Uint64Symbol) Hash() uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(u))
	return siphash.Hash(uint64SymbolHashK0, uint64SymbolHashK1, buf[:])
}
