package models

import (
	"math"
	"strings"
)

// OptionType is the payoff direction of the contract.
type OptionType string

const (
	Call OptionType = "call"
	Put  OptionType = "put"
)

// ParseOptionType accepts "call" or "put" in any case.
func ParseOptionType(s string) (OptionType, error) {
	switch t := OptionType(strings.ToLower(strings.TrimSpace(s))); t {
	case Call, Put:
		return t, nil
	}
	return "", invalid("option_type", s, "must be call or put")
}

// payoff applies the vanilla payoff to an average price.
func (t OptionType) payoff(average, strike float64) float64 {
	if t == Put {
		return math.Max(strike-average, 0)
	}
	return math.Max(average-strike, 0)
}

// AsianOption holds the parameters of an average-price option. Fields are
// only set by NewAsianOption, so a contract stays valid for its lifetime and
// the derived TimeUnit and Discount never go stale.
type AsianOption struct {
	optionType  OptionType
	s0          float64
	strike      float64
	t           float64
	m           int
	r           float64
	div         float64
	sigma       float64
	simulations int

	dividendDrift bool
	timeUnit      float64
	discount      float64
}

// Option customises contract construction.
type Option func(*AsianOption)

// WithDividendDrift subtracts the dividend yield from the risk-neutral drift,
// both in simulation and in the geometric closed form. Without it Div is
// validated but has no effect on prices.
func WithDividendDrift() Option {
	return func(o *AsianOption) {
		o.dividendDrift = true
	}
}

// NewAsianOption validates the inputs and returns the contract. Any violation
// yields an error wrapping ErrInvalidParameter and no contract.
func NewAsianOption(optionType string, s0, strike, t float64, m int, r, div, sigma float64, simulations int, opts ...Option) (*AsianOption, error) {
	typ, err := ParseOptionType(optionType)
	if err != nil {
		return nil, err
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"S0", s0},
		{"strike", strike},
		{"r", r},
		{"div", div},
		{"sigma", sigma},
	}
	for _, p := range nonNegative {
		if math.IsInf(p.value, 0) {
			return nil, invalid(p.name, p.value, "must be finite")
		}
		if !(p.value >= 0) {
			return nil, invalid(p.name, p.value, "must be non-negative")
		}
	}
	if math.IsInf(t, 0) || !(t > 0) {
		return nil, invalid("T", t, "must be positive and finite")
	}
	if m <= 0 {
		return nil, invalid("M", m, "must be positive")
	}
	if simulations <= 0 {
		return nil, invalid("simulations", simulations, "must be positive")
	}

	o := &AsianOption{
		optionType:  typ,
		s0:          s0,
		strike:      strike,
		t:           t,
		m:           m,
		r:           r,
		div:         div,
		sigma:       sigma,
		simulations: simulations,
	}
	for _, opt := range opts {
		opt(o)
	}
	o.timeUnit = t / float64(m)
	o.discount = math.Exp(-r * t)
	return o, nil
}

func (o *AsianOption) Type() OptionType { return o.optionType }

// S0 is the initial underlying price.
func (o *AsianOption) S0() float64 { return o.s0 }

func (o *AsianOption) Strike() float64 { return o.strike }

// T is the time to maturity in years.
func (o *AsianOption) T() float64 { return o.t }

// M is the number of averaging steps.
func (o *AsianOption) M() int { return o.m }

// R is the continuously compounded risk-free rate.
func (o *AsianOption) R() float64 { return o.r }

// Div is the dividend yield.
func (o *AsianOption) Div() float64 { return o.div }

// Sigma is the volatility.
func (o *AsianOption) Sigma() float64 { return o.sigma }

// Simulations is the number of Monte-Carlo paths.
func (o *AsianOption) Simulations() int { return o.simulations }

// TimeUnit is the step length T/M.
func (o *AsianOption) TimeUnit() float64 { return o.timeUnit }

// Discount is the present-value factor exp(-rT).
func (o *AsianOption) Discount() float64 { return o.discount }

// DividendDrift reports whether Div enters the drift.
func (o *AsianOption) DividendDrift() bool { return o.dividendDrift }

// driftRate is the rate used in the risk-neutral drift.
func (o *AsianOption) driftRate() float64 {
	if o.dividendDrift {
		return o.r - o.div
	}
	return o.r
}
