package models

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// GeometricAsianOption is the closed-form value of the discretely sampled
// geometric-average option on the same contract. The geometric average of a
// GBM path is lognormal with forward S0·exp(muT) and log-variance sigsqT, so
// the Black-Scholes form applies.
func (o *AsianOption) GeometricAsianOption() float64 {
	m := float64(o.m)
	sigsqT := o.sigma * o.sigma * o.t * (m + 1) * (2*m + 1) / (6 * m * m)
	muT := 0.5*sigsqT + (o.driftRate()-0.5*o.sigma*o.sigma)*o.t*(m+1)/(2*m)
	forward := o.s0 * math.Exp(muT)

	// No randomness left, or one side of ln(S0/K) is zero.
	if sigsqT == 0 || o.s0 == 0 || o.strike == 0 {
		return o.Discount() * o.optionType.payoff(forward, o.strike)
	}

	sd := math.Sqrt(sigsqT)
	d1 := (math.Log(o.s0/o.strike) + muT + 0.5*sigsqT) / sd
	d2 := d1 - sd

	n := distuv.UnitNormal
	if o.optionType == Put {
		return o.Discount() * (o.strike*n.CDF(-d2) - forward*n.CDF(-d1))
	}
	return o.Discount() * (forward*n.CDF(d1) - o.strike*n.CDF(d2))
}
