package analytic

import "math"

// NegInvE is the branch point -1/e of the Lambert W function.
const NegInvE = -0.36787944117144233

// LambertW0 evaluates the principal branch of the Lambert W function,
// the inverse of w*exp(w) on [-1, +inf). Arguments below -1/e are outside
// the real domain and yield NaN, matching the math package's convention
// for domain violations.
//
// A series seed near the branch point and a log seed for large arguments
// feed a Halley iteration, accurate to close to machine precision.
func LambertW0(x float64) float64 {
	if math.IsNaN(x) || x < NegInvE {
		return math.NaN()
	}
	if x == 0 {
		return 0
	}
	if x <= NegInvE+1e-15 {
		return -1
	}

	var w float64
	switch {
	case x < -0.25:
		// expansion in p = sqrt(2(1 + e*x)) around the branch point
		p := math.Sqrt(2 * (1 + math.E*x))
		w = -1 + p - p*p/3 + 11*p*p*p/72
	case x < 1:
		w = x / (1 + x)
	default:
		w = math.Log(x)
		if x > 3 {
			w -= math.Log(w)
		}
	}

	for i := 0; i < 32; i++ {
		ew := math.Exp(w)
		f := w*ew - x
		denom := ew*(w+1) - (w+2)*f/(2*w+2)
		dw := f / denom
		w -= dw
		if math.Abs(dw) <= 1e-15*(1+math.Abs(w)) {
			break
		}
	}
	return w
}
