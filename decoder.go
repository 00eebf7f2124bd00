package riblt

// Decoder consumes coded symbols from a peer and performs peeling
// decoding against the local party's own symbol set. It maintains three
// Encoders: window (the local party's full set, used to cancel known
// local contributions from incoming cells before peeling), remote
// (symbols discovered to be present only on the peer), and local
// (symbols discovered to be present only locally).
type Decoder[S Symbol[S]] struct {
	coded      []CodedSymbol[S]
	local      *Encoder[S]
	remote     *Encoder[S]
	window     *Encoder[S]
	decodable  []int
	numDecoded int
}

// NewDecoder returns an empty Decoder.
func NewDecoder[S Symbol[S]]() *Decoder[S] {
	return &Decoder[S]{
		local:  NewEncoder[S](),
		remote: NewEncoder[S](),
		window: NewEncoder[S](),
	}
}

// NewDecoderFromEncoder returns a Decoder whose window is seeded from a
// clone of e, useful when the caller already maintains an Encoder over
// its full local set for other purposes, akin to the Rust rateless-iblt
// crate's Encoder::to_decoder.
func NewDecoderFromEncoder[S Symbol[S]](e *Encoder[S]) *Decoder[S] {
	d := NewDecoder[S]()
	d.window = e.Clone()
	return d
}

// Reset clears all received coded symbols and discovered symbols,
// restoring the Decoder to its freshly-constructed state.
func (d *Decoder[S]) Reset() {
	d.coded = d.coded[:0]
	d.local.Reset()
	d.remote.Reset()
	d.window.Reset()
	d.decodable = d.decodable[:0]
	d.numDecoded = 0
}

// AddSymbol inserts the local party's symbol into the window encoder. All
// AddSymbol calls must precede any AddCodedSymbol call.
func (d *Decoder[S]) AddSymbol(sym S) {
	d.window.AddHashedSymbol(HashedSymbol[S]{Symbol: sym, Hash: sym.Hash()})
}

// AddCodedSymbol processes one incoming coded symbol from the peer. It
// must be called with the peer's coded symbols in the order they were
// produced; the decoder does not tolerate reordering or gaps.
func (d *Decoder[S]) AddCodedSymbol(sym CodedSymbol[S]) {
	next := d.window.ApplyWindow(sym, Remove)
	next = d.remote.ApplyWindow(next, Remove)
	next = d.local.ApplyWindow(next, Add)

	d.coded = append(d.coded, next)
	if next.isPure() {
		d.decodable = append(d.decodable, len(d.coded)-1)
	}
}

// applyNewSymbol applies a newly-discovered symbol, in the given
// direction, to every coded cell its mapping touches, enqueueing any cell
// that becomes a new degree-one pivot as a result. A cell that lands on
// count == 0 here held only this symbol (normally the pivot cell it was
// peeled from) and is already on the decodable worklist, queued either by
// AddCodedSymbol or by an earlier applyNewSymbol call when it reached
// degree one; enqueueing it again would count it twice and overshoot
// numDecoded. It returns the mapping at the
// point it stopped advancing (coded index reached len(d.coded)), which the
// caller threads into the discovered symbol's entry in remote/local.
func (d *Decoder[S]) applyNewSymbol(sym HashedSymbol[S], direction Direction) RandomMapping {
	mapp := NewRandomMapping(sym.Hash)

	for mapp.LastIndex() < uint64(len(d.coded)) {
		idx := mapp.LastIndex()
		cell := &d.coded[idx]
		cell.Apply(sym, direction)
		if (cell.Count == 1 || cell.Count == -1) && cell.Hash == cell.Symbol.Hash() {
			d.decodable = append(d.decodable, int(idx))
		}
		mapp.NextIndex()
	}

	return mapp
}

// TryDecode peels cells until the decodable worklist is exhausted. The
// worklist may grow during processing, as newly discovered symbols turn
// other cells pure; each index is still visited exactly once in append
// order.
func (d *Decoder[S]) TryDecode() error {
	for didx := 0; didx < len(d.decodable); didx++ {
		cidx := d.decodable[didx]
		cell := d.coded[cidx]

		switch cell.Count {
		case 1:
			newSym := HashedSymbol[S]{Symbol: cell.Symbol, Hash: cell.Hash}
			mapp := d.applyNewSymbol(newSym, Remove)
			d.remote.AddHashedSymbolWithMapping(newSym, mapp)
			d.numDecoded++

		case -1:
			newSym := HashedSymbol[S]{Symbol: cell.Symbol, Hash: cell.Hash}
			mapp := d.applyNewSymbol(newSym, Add)
			d.local.AddHashedSymbolWithMapping(newSym, mapp)
			d.numDecoded++

		case 0:
			if cell.Hash != 0 {
				return ErrInvalidDegree
			}
			d.numDecoded++

		default:
			return ErrInvalidDegree
		}
	}

	d.decodable = d.decodable[:0]
	return nil
}

// Decoded reports whether every coded symbol received so far has been
// fully explained by peeling.
func (d *Decoder[S]) Decoded() bool {
	return d.numDecoded == len(d.coded)
}

// Finish returns ErrDecodeFailed if the decoder has not fully decoded,
// nil otherwise. It performs no decoding of its own; it is a convenience
// around Decoded() for callers who want an error value instead of a bool.
func (d *Decoder[S]) Finish() error {
	if !d.Decoded() {
		return ErrDecodeFailed
	}
	return nil
}

// GetRemoteSymbols returns the hashed symbols discovered to be present
// only in the peer's set (A∖B, if the peer encoded A).
func (d *Decoder[S]) GetRemoteSymbols() []HashedSymbol[S] {
	return append([]HashedSymbol[S](nil), d.remote.symbols...)
}

// GetLocalSymbols returns the hashed symbols discovered to be present
// only in the local set (B∖A, if the local window holds B).
func (d *Decoder[S]) GetLocalSymbols() []HashedSymbol[S] {
	return append([]HashedSymbol[S](nil), d.local.symbols...)
}
