package riblt

// CodedSymbol is a single cell of the rateless code: the XOR of every
// contributing symbol and hash, plus a signed count of how many symbols
// (with sign) have been applied. A zero-value CodedSymbol is the identity
// cell: Symbol is the zero element of S, Hash is 0, Count is 0.
//
// On the wire, Hash is a little-endian uint64 and Count is a two's
// complement int64; Symbol's encoding is whatever the two peers agree on.
type CodedSymbol[S Symbol[S]] struct {
	Symbol S
	Hash   uint64
	Count  int64
}

// Apply mutates the cell by combining it with a hashed symbol in the given
// direction: the symbol and hash are XORed in, and count is adjusted by
// +1 (Add) or -1 (Remove).
func (c *CodedSymbol[S]) Apply(sym HashedSymbol[S], direction Direction) {
	c.Symbol = c.Symbol.Xor(sym.Symbol)
	c.Hash ^= sym.Hash
	c.Count += int64(direction)
}

// isPure reports whether the cell's residual is either empty (count == 0,
// hash == 0) or exactly one symbol (|count| == 1 and hash matches the
// symbol's own hash).
func (c CodedSymbol[S]) isPure() bool {
	switch c.Count {
	case 1, -1:
		return c.Hash == c.Symbol.Hash()
	case 0:
		return c.Hash == 0
	default:
		return false
	}
}
