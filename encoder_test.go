package riblt

import (
	"math/rand"
	"testing"
)

func produceN[S Symbol[S]](e *Encoder[S], n int) []CodedSymbol[S] {
	out := make([]CodedSymbol[S], n)
	for i := range out {
		out[i] = e.ProduceNextCodedSymbol()
	}
	return out
}

func TestEncoderProduceDeterministic(t *testing.T) {
	values := []uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	e1 := NewEncoder[Uint64Symbol]()
	for _, v := range values {
		e1.AddSymbol(Uint64Symbol(v))
	}

	shuffled := append([]uint64(nil), values...)
	r := rand.New(rand.NewSource(7))
	r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	e2 := NewEncoder[Uint64Symbol]()
	for _, v := range shuffled {
		e2.AddSymbol(Uint64Symbol(v))
	}

	got1 := produceN[Uint64Symbol](e1, 30)
	got2 := produceN[Uint64Symbol](e2, 30)

	for i := range got1 {
		if got1[i] != got2[i] {
			t.Fatalf("coded symbol %d differs by insertion order: %+v != %+v", i, got1[i], got2[i])
		}
	}
}

func TestEncoderResetIsFreshState(t *testing.T) {
	e := NewEncoder[Uint64Symbol]()
	for i := uint64(0); i < 20; i++ {
		e.AddSymbol(Uint64Symbol(i))
	}
	produceN[Uint64Symbol](e, 10)
	e.Reset()

	fresh := NewEncoder[Uint64Symbol]()
	for i := 0; i < 5; i++ {
		if got, want := e.ProduceNextCodedSymbol(), fresh.ProduceNextCodedSymbol(); got != want {
			t.Fatalf("coded symbol %d after reset: %+v != %+v from a fresh encoder", i, got, want)
		}
	}
}

func TestEncoderRemoveDoesNotRewindHistory(t *testing.T) {
	e := NewEncoder[Uint64Symbol]()
	for i := uint64(1); i <= 10; i++ {
		e.AddSymbol(Uint64Symbol(i))
	}

	// Produce a few coded symbols before removing anything.
	produced := produceN[Uint64Symbol](e, 4)

	e.RemoveSymbol(Uint64Symbol(5))

	// Future coded symbols from e (net set {1,2,3,4,6,7,8,9,10}) must match
	// a fresh encoder built directly from that net set, from here on.
	fresh := NewEncoder[Uint64Symbol]()
	for _, v := range []uint64{1, 2, 3, 4, 6, 7, 8, 9, 10} {
		fresh.AddSymbol(Uint64Symbol(v))
	}
	// Advance the fresh encoder past the indices already produced by e.
	produceN[Uint64Symbol](fresh, 4)

	for i := 0; i < 20; i++ {
		got, want := e.ProduceNextCodedSymbol(), fresh.ProduceNextCodedSymbol()
		if got != want {
			t.Fatalf("coded symbol %d after removal: %+v != %+v", i+4, got, want)
		}
	}

	if len(produced) != 4 {
		t.Fatalf("sanity: expected 4 pre-removal coded symbols, got %d", len(produced))
	}
}

func TestEncoderRemoveMissingSymbolIsDiagnosticOnly(t *testing.T) {
	e := NewEncoder[Uint64Symbol]()
	e.AddSymbol(Uint64Symbol(1))

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("RemoveSymbol on a missing symbol must not panic, got: %v", r)
		}
	}()
	e.RemoveSymbol(Uint64Symbol(999))

	// The encoder must still work normally afterwards.
	_ = e.ProduceNextCodedSymbol()
}

func TestEncoderCloneIsIndependent(t *testing.T) {
	e := NewEncoder[Uint64Symbol]()
	e.AddSymbol(Uint64Symbol(1))
	e.AddSymbol(Uint64Symbol(2))

	clone := e.Clone()
	e.AddSymbol(Uint64Symbol(3))

	got := produceN[Uint64Symbol](clone, 10)

	fresh := NewEncoder[Uint64Symbol]()
	fresh.AddSymbol(Uint64Symbol(1))
	fresh.AddSymbol(Uint64Symbol(2))
	want := produceN[Uint64Symbol](fresh, 10)

	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("clone diverged from its snapshot at %d: %+v != %+v", i, got[i], want[i])
		}
	}
}
