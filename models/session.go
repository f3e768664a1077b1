package models

import (
	"time"

	"github.com/bcdannyboy/asianmc/logger"
	"github.com/bcdannyboy/asianmc/probability"
	"github.com/bcdannyboy/asianmc/random"
	"gonum.org/v1/gonum/mat"
)

// Session is one pricing run: a single seeded path matrix shared by the plain
// and the control-variate estimators.
type Session struct {
	option    *AsianOption
	seed      uint64
	generator random.Kind

	paths      *mat.Dense
	arithmetic []float64
	geometric  []float64
	corrected  []float64
	analytic   float64
}

type sessionConfig struct {
	generator random.Kind
	progress  func(done, total int)
}

// SessionOption customises NewSession.
type SessionOption func(*sessionConfig)

// WithGenerator selects the normal generator. The default is random.KindMT19937.
func WithGenerator(kind random.Kind) SessionOption {
	return func(c *sessionConfig) {
		c.generator = kind
	}
}

// WithProgress registers a callback invoked after each simulated path.
func WithProgress(fn func(done, total int)) SessionOption {
	return func(c *sessionConfig) {
		c.progress = fn
	}
}

// NewSession seeds a fresh generator, simulates the paths once and evaluates
// every per-path payoff. The only possible error is an unknown generator.
func (o *AsianOption) NewSession(seed uint64, opts ...SessionOption) (*Session, error) {
	cfg := sessionConfig{generator: random.KindMT19937}
	for _, opt := range opts {
		opt(&cfg)
	}

	normal, err := random.New(cfg.generator, seed)
	if err != nil {
		return nil, err
	}
	return o.simulate(seed, cfg.generator, normal, cfg.progress), nil
}

// simulate draws the paths from an already seeded generator and evaluates
// every per-path payoff.
func (o *AsianOption) simulate(seed uint64, kind random.Kind, normal random.Normal, progress func(done, total int)) *Session {
	start := time.Now()
	paths := SimulatePaths(o, normal, progress)
	logger.Debugf("simulated %d paths x %d steps in %v (seed=%d generator=%s)",
		o.simulations, o.m, time.Since(start), seed, kind)

	s := &Session{
		option:    o,
		seed:      seed,
		generator: kind,
		paths:     paths,
		analytic:  o.GeometricAsianOption(),
	}
	s.arithmetic = ArithmeticPayoffs(o, paths)
	s.geometric = GeometricPayoffs(o, paths)
	s.corrected = ControlVariatePayoffs(s.arithmetic, s.geometric, s.analytic)
	logger.Tracef("geometric closed form %.6f", s.analytic)

	return s
}

func (s *Session) Option() *AsianOption { return s.option }

func (s *Session) Seed() uint64 { return s.seed }

func (s *Session) Generator() random.Kind { return s.generator }

// GeometricAsianOption is the closed-form control value used by this session.
func (s *Session) GeometricAsianOption() float64 { return s.analytic }

// PricePath returns a copy of the simulated price matrix, shape (Simulations, M).
func (s *Session) PricePath() *mat.Dense {
	return mat.DenseCopyOf(s.paths)
}

// Value is the plain Monte-Carlo estimate of the arithmetic option.
func (s *Session) Value() probability.Estimate {
	return probability.Summarize(s.arithmetic)
}

// ValueWithControlVariate is the estimate corrected by the geometric control variate.
func (s *Session) ValueWithControlVariate() probability.Estimate {
	return probability.Summarize(s.corrected)
}

// Payoffs returns copies of the discounted arithmetic payoffs and of their
// control-variate corrections, one entry per path.
func (s *Session) Payoffs() (arithmetic, corrected []float64) {
	arithmetic = append([]float64(nil), s.arithmetic...)
	corrected = append([]float64(nil), s.corrected...)
	return arithmetic, corrected
}

// Diagnostics compares the two estimators on this session's paths.
func (s *Session) Diagnostics() probability.VarianceReduction {
	return probability.CompareVariance(s.arithmetic, s.geometric, s.corrected)
}

// PricePath simulates with the default generator seeded by seed.
func (o *AsianOption) PricePath(seed uint64) *mat.Dense {
	return SimulatePaths(o, random.NewLegacyNormal(seed), nil)
}

// Value runs a default session and returns its plain estimate.
func (o *AsianOption) Value(seed uint64) probability.Estimate {
	return o.defaultSession(seed).Value()
}

// ValueWithControlVariate runs a default session and returns its corrected estimate.
func (o *AsianOption) ValueWithControlVariate(seed uint64) probability.Estimate {
	return o.defaultSession(seed).ValueWithControlVariate()
}

func (o *AsianOption) defaultSession(seed uint64) *Session {
	return o.simulate(seed, random.KindMT19937, random.NewLegacyNormal(seed), nil)
}
