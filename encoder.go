package riblt

import (
	"container/heap"
	"log"
)

// defaultLogger is the fallback sink for Encoder.RemoveSymbol's missing-
// symbol diagnostic. It is never mutated; each Encoder holds its own
// logger reference instead of sharing process-wide state.
var defaultLogger = log.Default()

// symbolMapping is a heap entry: the position of a symbol in the owning
// Encoder's symbols slice, and the next coded index that symbol will
// contribute to.
type symbolMapping struct {
	sourceIdx uint64
	codedIdx  uint64
}

// mappingQueue is an array-backed binary min-heap on symbolMapping.codedIdx,
// implementing container/heap.Interface.
type mappingQueue []symbolMapping

func (q mappingQueue) Len() int           { return len(q) }
func (q mappingQueue) Less(i, j int) bool { return q[i].codedIdx < q[j].codedIdx }
func (q mappingQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *mappingQueue) Push(x any)        { *q = append(*q, x.(symbolMapping)) }
func (q *mappingQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}

// Encoder maintains a working set of hashed symbols and a min-heap of
// (next coded index, source index) entries, streaming out coded symbols in
// order of increasing coded index. It is the write side of the codec: the
// Decoder's window/local/remote fields are each an Encoder.
type Encoder[S Symbol[S]] struct {
	symbols  []HashedSymbol[S]
	mappings []RandomMapping
	queue    mappingQueue
	nextIdx  uint64
	logger   *log.Logger
}

// NewEncoder returns an empty Encoder with nextIdx == 0. RemoveSymbol's
// missing-symbol diagnostic goes to log.Default() until SetLogger
// replaces it.
func NewEncoder[S Symbol[S]]() *Encoder[S] {
	return &Encoder[S]{logger: defaultLogger}
}

// SetLogger redirects where RemoveSymbol reports a missing symbol. A nil
// logger silences the diagnostic.
func (e *Encoder[S]) SetLogger(logger *log.Logger) {
	e.logger = logger
}

// Reset clears all inserted symbols and restarts nextIdx at 0.
func (e *Encoder[S]) Reset() {
	e.symbols = e.symbols[:0]
	e.mappings = e.mappings[:0]
	e.queue = e.queue[:0]
	e.nextIdx = 0
}

// Clone returns a deep copy of e, independent of further mutation to
// either copy. Used to seed a Decoder's window from an Encoder a caller
// already built for other purposes (see NewDecoderFromEncoder).
func (e *Encoder[S]) Clone() *Encoder[S] {
	c := &Encoder[S]{
		symbols:  append([]HashedSymbol[S](nil), e.symbols...),
		mappings: append([]RandomMapping(nil), e.mappings...),
		queue:    append(mappingQueue(nil), e.queue...),
		nextIdx:  e.nextIdx,
		logger:   e.logger,
	}
	return c
}

// AddSymbol hashes sym and inserts it.
func (e *Encoder[S]) AddSymbol(sym S) {
	e.AddHashedSymbol(HashedSymbol[S]{Symbol: sym, Hash: sym.Hash()})
}

// AddHashedSymbol inserts a pre-hashed symbol, seeding a fresh
// RandomMapping for it.
func (e *Encoder[S]) AddHashedSymbol(sym HashedSymbol[S]) {
	e.AddHashedSymbolWithMapping(sym, NewRandomMapping(sym.Hash))
}

// AddHashedSymbolWithMapping inserts sym using a caller-supplied, possibly
// already-advanced, RandomMapping. The Decoder uses this when it discovers
// a symbol mid-stream and must resume that symbol's mapping from wherever
// peeling left it, rather than from index 0.
func (e *Encoder[S]) AddHashedSymbolWithMapping(sym HashedSymbol[S], mapp RandomMapping) {
	e.symbols = append(e.symbols, sym)
	e.mappings = append(e.mappings, mapp)

	heap.Push(&e.queue, symbolMapping{
		sourceIdx: uint64(len(e.symbols) - 1),
		codedIdx:  mapp.LastIndex(),
	})
}

// ProduceNextCodedSymbol produces the coded symbol at the current nextIdx
// and advances nextIdx. Equivalent to ApplyWindow on a zero cell with Add.
func (e *Encoder[S]) ProduceNextCodedSymbol() CodedSymbol[S] {
	return e.ApplyWindow(CodedSymbol[S]{}, Add)
}

// ApplyWindow returns a copy of cell after applying, in the given
// direction, every symbol whose next contribution lands on the current
// nextIdx; it then advances nextIdx by one. Symbols that fire are
// rescheduled at their next coded index before this call returns.
func (e *Encoder[S]) ApplyWindow(cell CodedSymbol[S], direction Direction) CodedSymbol[S] {
	next := cell

	for len(e.queue) > 0 && e.queue[0].codedIdx == e.nextIdx {
		root := &e.queue[0]
		next.Apply(e.symbols[root.sourceIdx], direction)
		root.codedIdx = e.mappings[root.sourceIdx].NextIndex()
		heap.Fix(&e.queue, 0)
	}

	e.nextIdx++
	return next
}

// RemoveSymbol removes the first symbol equal to sym (by hash and value),
// preventing it from contributing to any coded symbol produced from this
// point on. It does not rewind coded symbols already produced. A symbol
// not found in the encoder is reported to e's logger, not returned as an
// error: removal is best-effort.
func (e *Encoder[S]) RemoveSymbol(sym S) {
	hash := sym.Hash()

	pos := -1
	for i, s := range e.symbols {
		if s.Hash == hash && s.Symbol == sym {
			pos = i
			break
		}
	}
	if pos < 0 {
		if e.logger != nil {
			e.logger.Printf("riblt: RemoveSymbol: symbol not found in encoder")
		}
		return
	}

	e.symbols = append(e.symbols[:pos], e.symbols[pos+1:]...)
	e.mappings = append(e.mappings[:pos], e.mappings[pos+1:]...)

	filtered := e.queue[:0]
	for _, sm := range e.queue {
		switch {
		case sm.sourceIdx == uint64(pos):
			// dropped: its mapping no longer exists.
		case sm.sourceIdx > uint64(pos):
			filtered = append(filtered, symbolMapping{sourceIdx: sm.sourceIdx - 1, codedIdx: sm.codedIdx})
		default:
			filtered = append(filtered, sm)
		}
	}
	e.queue = filtered
	heap.Init(&e.queue)
}
