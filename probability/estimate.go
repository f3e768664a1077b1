package probability

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// z95 is the two-sided 95% normal quantile used for reported bounds.
const z95 = 1.96

// Estimate is a Monte-Carlo sample mean with its 95% confidence bounds.
type Estimate struct {
	Mean   float64
	Lower  float64
	Upper  float64
	StdDev float64 // population standard deviation of the samples
	StdErr float64
	N      int
}

// Summarize computes mean ± 1.96·std/√n over samples. The standard deviation
// uses the population (ddof 0) convention.
func Summarize(samples []float64) Estimate {
	n := len(samples)
	if n == 0 {
		nan := math.NaN()
		return Estimate{Mean: nan, Lower: nan, Upper: nan, StdDev: nan, StdErr: nan}
	}

	var mean, variance float64
	if n == 1 {
		mean = samples[0]
	} else {
		mean, variance = stat.PopMeanVariance(samples, nil)
	}
	// Rounding can push the variance of near-identical samples below zero.
	std := math.Sqrt(math.Max(variance, 0))
	se := stat.StdErr(std, float64(n))

	return Estimate{
		Mean:   mean,
		Lower:  mean - z95*se,
		Upper:  mean + z95*se,
		StdDev: std,
		StdErr: se,
		N:      n,
	}
}

// Bounds returns (mean, lower95, upper95).
func (e Estimate) Bounds() (float64, float64, float64) {
	return e.Mean, e.Lower, e.Upper
}

// Width is the length of the 95% interval.
func (e Estimate) Width() float64 {
	return e.Upper - e.Lower
}

// Interval returns the two-sided normal confidence interval at level, which
// must lie in (0, 1).
func (e Estimate) Interval(level float64) (float64, float64, error) {
	if !(level > 0 && level < 1) {
		return 0, 0, fmt.Errorf("confidence level %v outside (0, 1)", level)
	}
	z := z95
	if level != 0.95 {
		z = distuv.UnitNormal.Quantile(0.5 + level/2)
	}
	return e.Mean - z*e.StdErr, e.Mean + z*e.StdErr, nil
}
