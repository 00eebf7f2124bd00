package riblt

import "errors"

// Symbol is the capability set an element type must satisfy to be coded by
// this package. Xor must form an abelian group over S with Zero as the
// identity and every element its own inverse: for all a, b, c of type S,
//
//	a.Xor(Zero()) == a
//	a.Xor(a)      == Zero()
//	a.Xor(b)      == b.Xor(a)
//	a.Xor(b).Xor(c) == a.Xor(b.Xor(c))
//
// Hash must be deterministic: two equal values of S must hash identically,
// and (in practice, not by contract) two unequal values should hash
// differently often enough that 64 bits of hash resolve collisions. Both
// peers of a reconciliation session must use the same Hash implementation;
// it is part of the wire contract, not an implementation detail.
type Symbol[S any] interface {
	comparable

	// Zero returns the identity element.
	Zero() S

	// Xor returns the receiver combined with other under the group law.
	Xor(other S) S

	// Hash returns a 64-bit digest of the receiver.
	Hash() uint64
}

// HashedSymbol pairs a symbol with its cached hash. The hash is computed
// once, at insertion time, and never recomputed.
type HashedSymbol[S Symbol[S]] struct {
	Symbol S
	Hash   uint64
}

// Direction is the sign a symbol contributes to a CodedSymbol's count.
type Direction int64

const (
	// Add contributes +1 to a cell's count.
	Add Direction = 1
	// Remove contributes -1 to a cell's count.
	Remove Direction = -1
)

var (
	// ErrInvalidDegree is returned by TryDecode when a cell on the
	// decodable worklist no longer has a peelable residual (|count| > 1,
	// or count == 0 with a nonzero hash). This indicates either a bug in
	// the decodable bookkeeping or that the two peers disagree on the
	// symbol hash or the random mapping.
	ErrInvalidDegree = errors.New("riblt: cell has unpeelable residual degree")

	// ErrInvalidSize is returned by Sketch.Subtract when the two sketches
	// have different cell counts.
	ErrInvalidSize = errors.New("riblt: sketches have different sizes")

	// ErrDecodeFailed is returned by Decoder.Finish when the input stream
	// was exhausted without every coded symbol becoming explained. It is
	// never returned by TryDecode itself: running out of coded symbols is
	// not an error at that layer, only at the caller's discretion.
	ErrDecodeFailed = errors.New("riblt: decoding did not complete")
)
