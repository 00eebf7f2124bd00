package riblt

import "math"

// twoPow32 is (1 << 32) as a float64, matching the original source's
// "(1i64 << 32) as f64" literal exactly.
const twoPow32 = 4294967296.0

// RandomMapping is the deterministic pseudo-random generator of the
// strictly increasing sequence of coded indices a symbol contributes to.
// The zero value is not a valid mapping; construct one with
// NewRandomMapping, seeded from a symbol's hash.
type RandomMapping struct {
	prng    uint64
	lastIdx uint64
}

// NewRandomMapping returns a mapping seeded from seed (a symbol's hash),
// positioned at coded index 0, the first index every symbol contributes
// to; the next call to NextIndex returns the symbol's second coded index.
func NewRandomMapping(seed uint64) RandomMapping {
	return RandomMapping{prng: seed, lastIdx: 0}
}

// LastIndex returns the most recently produced coded index, or 0 if
// NextIndex has not yet been called.
func (m RandomMapping) LastIndex() uint64 {
	return m.lastIdx
}

// NextIndex advances the mapping and returns the next coded index. The
// recurrence is part of the wire contract: both peers must reproduce it
// bit-for-bit, including the IEEE-754 double-precision arithmetic and the
// wrapping uint64 casts.
func (m *RandomMapping) NextIndex() uint64 {
	r := m.prng * 0xda942042e4dd58b5
	m.prng = r

	step := (float64(m.lastIdx) + 1.5) * (twoPow32/math.Sqrt(float64(r)+1.0) - 1.0)
	// Go leaves the conversion of an out-of-range float64 to uint64 to the
	// implementation, so the ceiling is reduced modulo 2^64 first to make
	// the cast wrap the same way on every platform.
	const twoPow64 = 18446744073709551616.0
	c := math.Ceil(step)
	if c >= twoPow64 {
		c = math.Mod(c, twoPow64)
	}
	m.lastIdx += uint64(c)

	return m.lastIdx
}
