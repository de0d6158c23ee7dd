package stablerand

import (
	"fmt"
	"math"
)

// Uint64 returns a uniformly distributed uint64 built from two consecutive
// 32-bit draws, first draw in the high half. Consumes exactly two words.
func (g *MT19937) Uint64() uint64 {
	hi := uint64(g.Uint32())
	lo := uint64(g.Uint32())
	return hi<<32 | lo
}

// Int63 returns a non-negative int64 (the high 63 bits of Uint64).
// Together with Seed it lets the generator back math/rand.New as a
// rand.Source64.
func (g *MT19937) Int63() int64 {
	return int64(g.Uint64() >> 1)
}

// Seed reseeds the generator for math/rand.Source compatibility. The int64
// seed is reduced to 32 bits by XORing its high and low halves, so seeds that
// only differ above bit 31 may collide; prefer NewMT19937 with an explicit
// 32-bit seed when the seed value itself matters.
func (g *MT19937) Seed(seed int64) {
	g.reseed(uint32(seed>>32) ^ uint32(seed))
}

// Float64 returns a uniformly distributed float64 in [0.0, 1.0).
// This function will never return 1.0.
// This function will never return NaN or Inf.
// It combines two consecutive 32-bit draws into 53 random bits (27 high, 26
// low) following the reference genrand_res53 formula, so the exact bit
// pattern is reproducible across implementations of the reference algorithm.
// Consumes exactly two words per call.
func (g *MT19937) Float64() float64 {
	a := g.Uint32() >> 5 // 27 bits
	b := g.Uint32() >> 6 // 26 bits
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}

// Float32 returns a uniformly distributed float32 in [0.0, 1.0).
// This function will never return -0.0.
// This function will never return 1.0.
// This function will never return NaN or Inf.
// This function uses 23 random bits for the mantissa. This is the maximum
// randomness that can be represented in a float32 without breaking uniformity.
// If you need more randomness, use Float64 instead.
// Consumes exactly one word per call.
func (g *MT19937) Float32() float32 {
	u := g.Uint32() & 0x7FFFFF // 23 random bits for mantissa

	const sign uint32 = 0
	const exp uint32 = 127
	bits := sign<<31 | exp<<23 | u
	return math.Float32frombits(bits) - 1.0
}

// Bool returns a uniformly distributed boolean (the low bit of one raw
// 32-bit draw). Consumes exactly one word.
func (g *MT19937) Bool() bool {
	return g.Uint32()&1 != 0
}

// Uint32N returns a uniformly distributed uint32 in the half-open interval [0,n).
// The reduction policy is pinned for reproducibility: floor(Float64()*n),
// clamped to n-1 in case floating rounding ever lands on n exactly. This is
// the scaled-float policy rather than a rejection or Lemire reduction, so a
// bounded draw always consumes exactly two raw words regardless of n.
// For n=0, Uint32N fails with ErrInvalidArgument.
func (g *MT19937) Uint32N(n uint32) (uint32, error) {
	if n == 0 {
		return 0, fmt.Errorf("bound must be positive, got 0: %w", ErrInvalidArgument)
	}
	v := uint32(g.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v, nil
}

// IntN returns a uniformly distributed int in the half-open interval [0,n),
// using the same pinned floor(Float64()*n) policy as Uint32N.
// For n<=0 or n exceeding the 32-bit range, IntN fails with ErrInvalidArgument.
func (g *MT19937) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("bound must be positive, got %d: %w", n, ErrInvalidArgument)
	}
	if int64(n) > 1<<32 {
		return 0, fmt.Errorf("bound %d exceeds 32-bit range: %w", n, ErrInvalidArgument)
	}
	v := int(g.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v, nil
}

// NormFloat64 returns a normally distributed float64 with mean 0 and standard
// deviation 1, via the Box-Muller transform on two uniform draws:
//
//	sqrt(-2 ln(x1+1e-10)) * cos(2π x2)
//
// The 1e-10 offset guards against ln(0) when x1 draws exactly zero.
// Consumes exactly four raw words (two Float64 draws).
func (g *MT19937) NormFloat64() float64 {
	x1 := g.Float64()
	x2 := g.Float64()
	return math.Sqrt(-2.0*math.Log(x1+1e-10)) * math.Cos(2.0*math.Pi*x2)
}

// Shuffle pseudo-randomizes the order of n elements via swap(i, j), which
// exchanges the elements with indices i and j. It runs a Fisher-Yates pass
// from the last index down, choosing j = floor(Float64()*(i+1)) at each step,
// so the permutation for a given seed is reproducible.
// For n<0, Shuffle fails with ErrInvalidArgument; n of 0 or 1 is a no-op.
func (g *MT19937) Shuffle(n int, swap func(i, j int)) error {
	if n < 0 {
		return fmt.Errorf("shuffle length must be non-negative, got %d: %w", n, ErrInvalidArgument)
	}
	for i := n - 1; i > 0; i-- {
		j, err := g.IntN(i + 1)
		if err != nil {
			return err
		}
		swap(i, j)
	}
	return nil
}

// Discard advances the sequence by drawing and dropping k raw 32-bit words.
// Discarding k words and then drawing is identical to drawing the (k+1)-th
// word directly, so two generators with the same seed can be brought to the
// same stream position without comparing intermediate values.
func (g *MT19937) Discard(k uint64) {
	for ; k > 0; k-- {
		g.Uint32()
	}
}
