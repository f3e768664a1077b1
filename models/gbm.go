package models

import (
	"math"

	"github.com/bcdannyboy/asianmc/random"
	"gonum.org/v1/gonum/mat"
)

// SimulatePaths generates o.Simulations() risk-neutral GBM paths of o.M() steps.
// Row i is path i; column j is the price after step j+1 (S0 itself is not
// stored). Normals are drawn path by path, step by step, so a seeded generator
// fully determines the matrix.
//
// progress, if non-nil, is called after each completed path.
func SimulatePaths(o *AsianOption, normal random.Normal, progress func(done, total int)) *mat.Dense {
	paths := mat.NewDense(o.simulations, o.m, nil)

	dt := o.TimeUnit()
	drift := (o.driftRate() - 0.5*o.sigma*o.sigma) * dt
	diffusion := o.sigma * math.Sqrt(dt)

	for i := 0; i < o.simulations; i++ {
		row := paths.RawRowView(i)
		s := o.s0
		for j := range row {
			s *= math.Exp(drift + diffusion*normal.NormFloat64())
			row[j] = s
		}
		if progress != nil {
			progress(i+1, o.simulations)
		}
	}

	return paths
}
