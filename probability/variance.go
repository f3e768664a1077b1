package probability

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// VarianceReduction describes how much a control variate helped.
type VarianceReduction struct {
	// Correlation between the raw payoffs and the control payoffs.
	Correlation float64
	// PlainVariance and ControlledVariance are population variances of the
	// uncorrected and corrected samples.
	PlainVariance      float64
	ControlledVariance float64
	// Ratio is PlainVariance / ControlledVariance. Values above one mean the
	// control variate narrowed the interval.
	Ratio float64
}

// CompareVariance builds a VarianceReduction from the raw samples, the control
// samples and the corrected samples. All slices share one length.
func CompareVariance(raw, control, corrected []float64) VarianceReduction {
	vr := VarianceReduction{
		PlainVariance:      popVariance(raw),
		ControlledVariance: popVariance(corrected),
	}
	if len(raw) > 1 && len(raw) == len(control) {
		vr.Correlation = stat.Correlation(raw, control, nil)
	} else {
		vr.Correlation = math.NaN()
	}

	switch {
	case vr.ControlledVariance > 0:
		vr.Ratio = vr.PlainVariance / vr.ControlledVariance
	case vr.PlainVariance > 0:
		vr.Ratio = math.Inf(1)
	default:
		vr.Ratio = 1
	}
	return vr
}

func popVariance(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}
	_, v := stat.PopMeanVariance(x, nil)
	return math.Max(v, 0)
}
