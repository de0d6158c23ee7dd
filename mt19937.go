package stablerand

const (
	stateWords = 624
	shiftWords = 397

	matrixA   uint32 = 0x9908b0df
	upperMask uint32 = 0x80000000 // most significant bit
	lowerMask uint32 = 0x7fffffff // 31 least significant bits

	temperMaskB uint32 = 0x9d2c5680
	temperMaskC uint32 = 0xefc60000

	seedMultiplier uint32 = 1812433253
	keyBaseSeed    uint32 = 19650218
	keyMultiplierA uint32 = 1664525
	keyMultiplierB uint32 = 1566083941
)

// MT19937 is a Deterministic Pseudo-Random Number Generator implementing the
// Mersenne Twister algorithm of Matsumoto and Nishimura (the 32-bit MT19937
// variant, see https://en.wikipedia.org/wiki/Mersenne_Twister).
// This random number generator is deterministic in the sequence of numbers it generates:
// the same seed produces the same sequence on every platform, architecture, and Go release.
// It has a period of 2^19937-1.
// This random number generator is not cryptographically secure.
// This random number generator is not thread-safe; callers sharing one instance
// across goroutines must serialize access themselves.
// This random number generator has a fixed memory footprint (624 32-bit words plus a cursor).
type MT19937 struct {
	mt     [stateWords]uint32
	index  int // words consumed from mt since the last twist, in [0, stateWords]
	seeded bool
}

// NewMT19937 creates a new generator seeded with the given 32-bit scalar seed.
// Every seed value is valid, including 0. The first extraction triggers a
// state refresh, so construction is cheap relative to the first draw.
func NewMT19937(seed uint32) *MT19937 {
	g := &MT19937{}
	g.reseed(seed)
	return g
}

// NewMT19937FromKey creates a new generator seeded from a non-empty sequence
// of 32-bit words using the reference init_by_array procedure. Array seeding
// mixes the key into a scalar-seeded base state in two interleaved passes and
// avoids the zero-excess initialization issue of sparse scalar seeds.
// An empty key fails with ErrInvalidArgument.
func NewMT19937FromKey(key []uint32) (*MT19937, error) {
	if len(key) == 0 {
		return nil, errEmptyKey
	}
	g := &MT19937{}
	g.reseedFromKey(key)
	return g, nil
}

// NewMT19937FromClock creates a new generator seeded from a high-resolution
// platform timestamp. The resulting sequence is NOT reproducible across runs;
// use NewMT19937 or NewMT19937FromKey when reproducibility matters.
func NewMT19937FromClock() *MT19937 {
	return NewMT19937(clockSeed())
}

func (g *MT19937) reseed(seed uint32) {
	g.mt[0] = seed
	for i := 1; i < stateWords; i++ {
		prev := g.mt[i-1]
		g.mt[i] = seedMultiplier*(prev^prev>>30) + uint32(i)
	}
	g.index = stateWords // stale: force a twist on first extraction
	g.seeded = true
}

func (g *MT19937) reseedFromKey(key []uint32) {
	g.reseed(keyBaseSeed)

	i, j := 1, 0
	rounds := stateWords
	if len(key) > rounds {
		rounds = len(key)
	}
	for ; rounds > 0; rounds-- {
		prev := g.mt[i-1]
		g.mt[i] = (g.mt[i]^(prev^prev>>30)*keyMultiplierA) + key[j] + uint32(j)
		i++
		j++
		if i >= stateWords {
			g.mt[0] = g.mt[stateWords-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for rounds = stateWords - 1; rounds > 0; rounds-- {
		prev := g.mt[i-1]
		g.mt[i] = (g.mt[i] ^ (prev^prev>>30)*keyMultiplierB) - uint32(i)
		i++
		if i >= stateWords {
			g.mt[0] = g.mt[stateWords-1]
			i = 1
		}
	}
	// A non-zero most significant word guarantees a non-zero initial state.
	g.mt[0] = 0x80000000
}

// twist refreshes the full state array in place. It is the only mutation
// point for the state outside seeding and runs once every 624 extractions.
func (g *MT19937) twist() {
	for i := 0; i < stateWords; i++ {
		y := g.mt[i]&upperMask | g.mt[(i+1)%stateWords]&lowerMask
		next := g.mt[(i+shiftWords)%stateWords] ^ y>>1
		if y&1 != 0 {
			next ^= matrixA
		}
		g.mt[i] = next
	}
	g.index = 0
}

// Uint32 returns the next 32-bit word of the sequence.
// It refreshes the state when all 624 words of the current state have been
// consumed, then tempers and returns one state word. Calling Uint32 on an
// unseeded (zero-value) generator is a programming error and panics with
// ErrInvalidState; use one of the constructors.
func (g *MT19937) Uint32() uint32 {
	if !g.seeded {
		panic(errUnseeded)
	}
	if g.index >= stateWords {
		g.twist()
	}

	y := g.mt[g.index]
	g.index++

	y ^= y >> 11
	y ^= y << 7 & temperMaskB
	y ^= y << 15 & temperMaskC
	y ^= y >> 18
	return y
}
