package report

import (
	"math"
	"os"
	"time"

	"github.com/bcdannyboy/asianmc/models"
	"github.com/bcdannyboy/asianmc/probability"
	"github.com/xhhuango/json"
)

type Contract struct {
	OptionType    string  `json:"option_type"`
	S0            float64 `json:"s0"`
	Strike        float64 `json:"strike"`
	T             float64 `json:"t"`
	M             int     `json:"m"`
	R             float64 `json:"r"`
	Div           float64 `json:"div"`
	Sigma         float64 `json:"sigma"`
	Simulations   int     `json:"simulations"`
	DividendDrift bool    `json:"dividend_drift"`
}

type Interval struct {
	Mean    float64 `json:"mean"`
	Lower95 float64 `json:"lower95"`
	Upper95 float64 `json:"upper95"`
	StdErr  float64 `json:"std_err"`
}

type Diagnostics struct {
	Correlation            float64 `json:"correlation"`
	VarianceReductionRatio float64 `json:"variance_reduction_ratio"`
}

// Document is the JSON written by the command.
type Document struct {
	Contract                Contract    `json:"contract"`
	Seed                    uint64      `json:"seed"`
	Generator               string      `json:"generator"`
	GeometricAsianOption    float64     `json:"geometric_asian_option"`
	Value                   Interval    `json:"value"`
	ValueWithControlVariate Interval    `json:"value_with_control_variate"`
	Diagnostics             Diagnostics `json:"diagnostics"`
	GeneratedAt             time.Time   `json:"generated_at"`
}

// New summarises a finished session.
func New(s *models.Session, at time.Time) Document {
	o := s.Option()
	d := s.Diagnostics()
	return Document{
		Contract: Contract{
			OptionType:    string(o.Type()),
			S0:            o.S0(),
			Strike:        o.Strike(),
			T:             o.T(),
			M:             o.M(),
			R:             o.R(),
			Div:           o.Div(),
			Sigma:         o.Sigma(),
			Simulations:   o.Simulations(),
			DividendDrift: o.DividendDrift(),
		},
		Seed:                    s.Seed(),
		Generator:               string(s.Generator()),
		GeometricAsianOption:    sanitizeFloat(s.GeometricAsianOption()),
		Value:                   interval(s.Value()),
		ValueWithControlVariate: interval(s.ValueWithControlVariate()),
		Diagnostics: Diagnostics{
			Correlation:            sanitizeFloat(d.Correlation),
			VarianceReductionRatio: sanitizeFloat(d.Ratio),
		},
		GeneratedAt: at.UTC(),
	}
}

func interval(e probability.Estimate) Interval {
	return Interval{
		Mean:    sanitizeFloat(e.Mean),
		Lower95: sanitizeFloat(e.Lower),
		Upper95: sanitizeFloat(e.Upper),
		StdErr:  sanitizeFloat(e.StdErr),
	}
}

// sanitizeFloat maps NaN and ±Inf to 0, which JSON cannot carry.
func sanitizeFloat(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Write marshals doc to path.
func Write(doc Document, path string) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
