package report

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/bcdannyboy/asianmc/models"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ErrNoDispersion is returned by Plot when neither payoff series has any
// spread to bin.
var ErrNoDispersion = errors.New("payoffs have no dispersion")

const histBins = 50

// Plot draws normalised histograms of the plain and the control-variate
// payoffs of s. A series whose payoffs are all equal is left out. The image
// format follows the extension of path (.png, .svg, .pdf).
func Plot(s *models.Session, path string) error {
	arithmetic, corrected := s.Payoffs()
	series := []struct {
		name   string
		values []float64
		line   color.Color
		fill   color.Color
	}{
		{"plain", arithmetic, color.RGBA{R: 255, B: 128, A: 255}, plotutil.Color(6)},
		{"control variate", corrected, color.RGBA{R: 160, G: 32, B: 240, A: 255}, plotutil.Color(2)},
	}

	o := s.Option()
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Asian %s payoffs (%d paths, seed %d)", o.Type(), o.Simulations(), s.Seed())
	p.X.Label.Text = "Discounted payoff"
	p.Y.Label.Text = "Density"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	drawn := 0
	for _, sr := range series {
		if len(sr.values) == 0 || floats.Max(sr.values) == floats.Min(sr.values) {
			continue
		}
		h, err := hist(sr.values, sr.line, sr.fill)
		if err != nil {
			return err
		}
		p.Add(h)
		p.Legend.Add(sr.name, h)
		drawn++
	}
	if drawn == 0 {
		return ErrNoDispersion
	}

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}

func hist(x []float64, line, fill color.Color) (*plotter.Histogram, error) {
	v := make(plotter.Values, len(x))
	copy(v, x)

	h, err := plotter.NewHist(v, histBins)
	if err != nil {
		return nil, err
	}
	h.LineStyle.Width = vg.Length(1)
	h.Color = line
	h.FillColor = fill
	h.Normalize(1)
	return h, nil
}
