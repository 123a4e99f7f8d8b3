package sim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// UniformGrid returns samples equally spaced times covering [start, end].
func UniformGrid(start, end float64, samples int) ([]float64, error) {
	if samples < 2 {
		return nil, ConfigError{Field: "samples", Reason: fmt.Sprintf("must be at least 2, got %d", samples)}
	}
	if !(end > start) {
		return nil, ConfigError{Field: "grid", Reason: fmt.Sprintf("end %g must exceed start %g", end, start)}
	}
	return floats.Span(make([]float64, samples), start, end), nil
}

// CheckGrid validates an explicit grid: finite values, strictly increasing.
func CheckGrid(ts []float64) error {
	if len(ts) == 0 {
		return ConfigError{Field: "grid", Reason: "must not be empty"}
	}
	for i, t := range ts {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return ConfigError{Field: "grid", Reason: fmt.Sprintf("point %d is not finite", i)}
		}
		if i > 0 && ts[i-1] >= t {
			return ConfigError{Field: "grid", Reason: fmt.Sprintf("not strictly increasing at point %d", i)}
		}
	}
	return nil
}
