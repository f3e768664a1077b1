// Package random provides the seedable normal generators used by the path
// simulator. Every generator is built from an explicit seed; nothing here
// touches global random state.
package random

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext/prng"
)

// Normal draws standard normal variates.
type Normal interface {
	NormFloat64() float64
}

// Kind names a generator algorithm.
type Kind string

const (
	// KindMT19937 is MT19937 with the polar Gaussian transform. It reproduces
	// numpy's legacy np.random.seed / standard_normal stream.
	KindMT19937 Kind = "mt19937"
	// KindPCG is the PCG source from golang.org/x/exp/rand with ziggurat sampling.
	KindPCG Kind = "pcg"
)

// ErrUnknownGenerator is returned for an unrecognised generator name.
var ErrUnknownGenerator = errors.New("unknown generator")

// ParseKind maps a generator name to its Kind. The empty string selects KindMT19937.
func ParseKind(name string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(name))) {
	case "", KindMT19937:
		return KindMT19937, nil
	case KindPCG:
		return KindPCG, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
}

// New returns a freshly seeded generator of the given kind.
func New(kind Kind, seed uint64) (Normal, error) {
	switch kind {
	case "", KindMT19937:
		return NewLegacyNormal(seed), nil
	case KindPCG:
		return rand.New(rand.NewSource(seed)), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, kind)
}

// LegacyNormal is the Marsaglia polar method over MT19937. Each accepted pair
// returns one variate and caches the other for the next call.
type LegacyNormal struct {
	src       *prng.MT19937
	cached    float64
	hasCached bool
}

func NewLegacyNormal(seed uint64) *LegacyNormal {
	return &LegacyNormal{src: NewMT19937(seed)}
}

func (n *LegacyNormal) NormFloat64() float64 {
	if n.hasCached {
		n.hasCached = false
		v := n.cached
		n.cached = 0
		return v
	}

	var x1, x2, r2 float64
	for {
		x1 = 2*uniform53(n.src) - 1
		x2 = 2*uniform53(n.src) - 1
		r2 = x1*x1 + x2*x2
		if r2 < 1 && r2 != 0 {
			break
		}
	}

	f := math.Sqrt(-2 * math.Log(r2) / r2)
	n.cached = f * x1
	n.hasCached = true
	return f * x2
}
