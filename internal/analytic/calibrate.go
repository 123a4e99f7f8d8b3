package analytic

import (
	"errors"
	"fmt"
	"math"

	"github.com/episim/episim/internal/sim"
)

var (
	// ErrNoRootInBracket indicates the target final size is not attained
	// anywhere inside the bracket.
	ErrNoRootInBracket = errors.New("analytic: target final size not bracketed")

	// ErrMaxIterations indicates the bisection budget ran out before the
	// residual tolerance was met.
	ErrMaxIterations = errors.New("analytic: root search exceeded iteration budget")
)

// Bracket bounds the transmission-rate search.
type Bracket struct {
	Lo float64
	Hi float64
}

// DefaultBracket spans intervention R0 values from 0.1 to 5.
func DefaultBracket(gamma float64) Bracket {
	return Bracket{Lo: 0.1 * gamma, Hi: 5 * gamma}
}

type Options struct {
	Tol     float64 // accepted |final size - target| residual
	MaxIter int
}

func DefaultOptions() Options {
	return Options{Tol: 1e-6, MaxIter: 100}
}

// Result carries the calibrated rate and search diagnostics. On
// ErrMaxIterations it holds the best midpoint reached.
type Result struct {
	Beta       float64
	Iterations int
	Residual   float64
}

// CalibrateBeta finds the transmission rate within br whose relaxed
// epidemic (s0 = 1, r0 = 0, recovery rate gamma) has asymptotic size
// target, by bisection.
func CalibrateBeta(gamma, target float64, br Bracket, opt Options) (Result, error) {
	if !(gamma > 0) {
		return Result{}, sim.ConfigError{Field: "gamma", Reason: fmt.Sprintf("must be positive, got %g", gamma)}
	}
	if !(target > 0) || target >= 1 {
		return Result{}, sim.ConfigError{Field: "target", Reason: fmt.Sprintf("must be in (0, 1), got %g", target)}
	}
	if !(br.Lo > 0) || !(br.Hi > br.Lo) {
		return Result{}, sim.ConfigError{Field: "bracket", Reason: fmt.Sprintf("need 0 < lo < hi, got [%g, %g]", br.Lo, br.Hi)}
	}
	if opt.Tol <= 0 || opt.MaxIter <= 0 {
		return Result{}, sim.ConfigError{Field: "options", Reason: fmt.Sprintf("need positive tol and max iterations, got %+v", opt)}
	}

	// For s0 = 1, r0 = 0 the W argument -R0*exp(-R0) stays inside
	// [-1/e, 0) for every R0 > 0, so the residual is total on the bracket.
	residual := func(beta float64) float64 {
		r, _ := FinalRecovered(beta/gamma, 1, 0)
		return r - target
	}

	fLo := residual(br.Lo)
	if math.Abs(fLo) < opt.Tol {
		return Result{Beta: br.Lo, Iterations: 0, Residual: fLo}, nil
	}
	fHi := residual(br.Hi)
	if math.Abs(fHi) < opt.Tol {
		return Result{Beta: br.Hi, Iterations: 0, Residual: fHi}, nil
	}

	// Final size grows monotonically with transmission, so a root needs a
	// sign change across the bracket.
	if fLo > 0 || fHi < 0 {
		return Result{}, fmt.Errorf("target %g with final sizes [%g, %g] over beta bracket [%g, %g]: %w",
			target, fLo+target, fHi+target, br.Lo, br.Hi, ErrNoRootInBracket)
	}

	lo, hi := br.Lo, br.Hi
	var mid, f float64
	for i := 1; i <= opt.MaxIter; i++ {
		mid = 0.5 * (lo + hi)
		f = residual(mid)
		if math.Abs(f) < opt.Tol {
			return Result{Beta: mid, Iterations: i, Residual: f}, nil
		}
		if f < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}

	return Result{Beta: mid, Iterations: opt.MaxIter, Residual: f},
		fmt.Errorf("residual %g after %d iterations: %w", f, opt.MaxIter, ErrMaxIterations)
}
