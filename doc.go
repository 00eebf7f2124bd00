// Package riblt implements a Rateless Invertible Bloom Lookup Table codec.
//
// # Overview
//
// Two parties holding sets A and B can discover the symmetric difference
// A△B by streaming coded symbols from one party to the other. The stream
// is rateless: the sender produces coded symbols one at a time, forever,
// and the receiver stops as soon as it can decode. The number of coded
// symbols needed is close to |A△B|, with no rate negotiated in advance.
//
// # Components
//
//   - Symbol: the capability set a caller's element type must satisfy
//     (Zero, Xor, Hash). FixedBytes and Uint64Symbol are ready-to-use
//     reference instantiations.
//   - RandomMapping: the deterministic sequence of coded indices a given
//     symbol contributes to.
//   - Encoder: streams coded symbols for a set of inserted symbols, in
//     amortized O(log n) per symbol via a heap-scheduled queue.
//   - Decoder: consumes a peer's coded symbols against a local window of
//     symbols and peels degree-1 cells until the stream is fully explained.
//   - Sketch: a fixed-size, non-streaming counterpart that reconciles two
//     sets by subtracting their sketches and decoding the residual.
//
// # What this package does not do
//
// It does not authenticate or encrypt the stream, persist any state, pick
// a hash function for you beyond the two reference Symbol types, or define
// a wire format — callers serialize CodedSymbol however their transport
// wants, provided both peers agree on the Symbol encoding, the endianness
// of the hash, and the sign convention of the count (see the CodedSymbol
// type documentation).
package riblt
