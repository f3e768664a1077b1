package random

import (
	"gonum.org/v1/gonum/mathext/prng"
)

// NewMT19937 returns a Mersenne Twister seeded with init_genrand on the low 32
// bits of seed. This is also how numpy's legacy RandomState seeds itself for
// np.random.seed(n), so a given seed yields the same stream as numpy.
func NewMT19937(seed uint64) *prng.MT19937 {
	m := prng.NewMT19937()
	m.Seed(seed)
	return m
}

// uniform53 returns a uniform value in [0, 1) with 53 bits of precision,
// built from two outputs the same way genrand_res53 does.
func uniform53(m *prng.MT19937) float64 {
	a := m.Uint32() >> 5
	b := m.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) / 9007199254740992.0
}
