package riblt

import "testing"

func TestUint64SymbolGroupLaw(t *testing.T) {
	a, b := Uint64Symbol(5), Uint64Symbol(9)

	if got := a.Xor(a.Zero()); got != a {
		t.Fatalf("a xor zero = %v, want %v", got, a)
	}
	if got := a.Xor(a); got != a.Zero() {
		t.Fatalf("a xor a = %v, want zero", got)
	}
	if got, want := a.Xor(b), b.Xor(a); got != want {
		t.Fatalf("xor not commutative: %v != %v", got, want)
	}
}

func TestUint64SymbolHashDeterministic(t *testing.T) {
	if Uint64Symbol(42).Hash() != Uint64Symbol(42).Hash() {
		t.Fatalf("hash is not deterministic")
	}
	if Uint64Symbol(42).Hash() == Uint64Symbol(43).Hash() {
		t.Fatalf("distinct symbols hashed identically (statistically implausible, check key setup)")
	}
}

func TestFixedBytesGroupLaw(t *testing.T) {
	a := NewFixedBytesFromUint64(123)
	b := NewFixedBytesFromUint64(456)

	var zero FixedBytes
	if got := a.Xor(zero); got != a {
		t.Fatalf("a xor zero = %v, want %v", got, a)
	}
	if got := a.Xor(a); got != zero {
		t.Fatalf("a xor a = %v, want zero", got)
	}
	if got, want := a.Xor(b), b.Xor(a); got != want {
		t.Fatalf("xor not commutative")
	}
}

func TestFixedBytesHashDeterministic(t *testing.T) {
	a := NewFixedBytesFromUint64(7)
	if a.Hash() != a.Hash() {
		t.Fatalf("hash is not deterministic")
	}
	b := NewFixedBytesFromUint64(8)
	if a.Hash() == b.Hash() {
		t.Fatalf("distinct symbols hashed identically (statistically implausible, check key setup)")
	}
}
