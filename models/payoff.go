package models

import (
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ArithmeticPayoffs returns the discounted payoff of each path on its
// arithmetic average price.
func ArithmeticPayoffs(o *AsianOption, paths *mat.Dense) []float64 {
	_, cols := paths.Dims()
	return payoffsBatch(paths, func() func([]float64) float64 {
		return func(row []float64) float64 {
			avg := floats.Sum(row) / float64(cols)
			return o.Discount() * o.optionType.payoff(avg, o.strike)
		}
	})
}

// GeometricPayoffs returns the discounted payoff of each path on its
// geometric average price exp(mean(ln S)).
func GeometricPayoffs(o *AsianOption, paths *mat.Dense) []float64 {
	_, cols := paths.Dims()
	return payoffsBatch(paths, func() func([]float64) float64 {
		logs := make([]float64, cols)
		return func(row []float64) float64 {
			for j, s := range row {
				logs[j] = math.Log(s)
			}
			avg := math.Exp(floats.Sum(logs) / float64(cols))
			return o.Discount() * o.optionType.payoff(avg, o.strike)
		}
	})
}

// ControlVariatePayoffs corrects each arithmetic payoff with the error of its
// geometric twin against the closed-form geometric value.
func ControlVariatePayoffs(arithmetic, geometric []float64, analytic float64) []float64 {
	out := make([]float64, len(arithmetic))
	for i := range arithmetic {
		out[i] = arithmetic[i] + analytic - geometric[i]
	}
	return out
}

// payoffsBatch evaluates one payoff per row, splitting the rows over
// GOMAXPROCS workers. newEval is called once per worker so each can own its
// scratch space. Rows are independent, so the result does not depend on the
// number of workers.
func payoffsBatch(paths *mat.Dense, newEval func() func([]float64) float64) []float64 {
	rows, _ := paths.Dims()
	results := make([]float64, rows)

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > rows {
		numWorkers = rows
	}
	if numWorkers < 1 {
		return results
	}
	rowsPerWorker := (rows + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for start := 0; start < rows; start += rowsPerWorker {
		end := start + rowsPerWorker
		if end > rows {
			end = rows
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			eval := newEval()
			for i := start; i < end; i++ {
				results[i] = eval(paths.RawRowView(i))
			}
		}(start, end)
	}

	wg.Wait()
	return results
}
