package analytic_test

import (
	"context"
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/episim/episim/internal/analytic"
	"github.com/episim/episim/internal/epi"
	"github.com/episim/episim/internal/integrators"
	"github.com/episim/episim/internal/sim"
)

var _ = Describe("FinalSusceptible", func() {
	It("satisfies the implicit final-size relation", func() {
		r0s := []float64{1.2, 1.5, 2, 2.5, 4, 8}
		seeds := []struct{ s0, r0 float64 }{
			{1, 0},
			{0.999, 0},
			{0.9, 0.05},
			{0.7, 0.2},
		}
		for _, R0 := range r0s {
			for _, seed := range seeds {
				sInf, err := analytic.FinalSusceptible(R0, seed.s0, seed.r0)
				Expect(err).NotTo(HaveOccurred(), "R0=%g s0=%g r0=%g", R0, seed.s0, seed.r0)
				// s_inf = s0 * exp(-R0 * (1 - s_inf - r0))
				want := seed.s0 * math.Exp(-R0*(1-sInf-seed.r0))
				Expect(sInf).To(BeNumerically("~", want, 1e-10))
			}
		}
	})

	It("reproduces the classic R0=2 outbreak size", func() {
		rInf, err := analytic.FinalRecovered(2, 1, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(rInf).To(BeNumerically("~", 0.7968, 1e-4))
	})

	It("agrees with fixed-point iteration for R0=20/9", func() {
		R0 := 2.0 / 0.9
		rInf, err := analytic.FinalRecovered(R0, 1, 0)
		Expect(err).NotTo(HaveOccurred())

		// Iterate r = 1 - exp(-R0*r) to convergence from a seed above
		// the herd threshold.
		r := 0.8
		for i := 0; i < 200; i++ {
			r = 1 - math.Exp(-R0*r)
		}
		Expect(rInf).To(BeNumerically("~", r, 1e-9))
		Expect(rInf).To(BeNumerically(">", 0.8))
	})

	It("rejects inputs outside the domain", func() {
		cases := []struct{ R0, s0, r0 float64 }{
			{0, 1, 0},
			{-2, 1, 0},
			{2, 0, 0},
			{2, 1.1, 0},
			{2, 0.5, -0.1},
			{2, 0.5, 1},
			{2, 0.8, 0.3},
		}
		for _, c := range cases {
			_, err := analytic.FinalSusceptible(c.R0, c.s0, c.r0)
			Expect(err).To(HaveOccurred(), "R0=%g s0=%g r0=%g", c.R0, c.s0, c.r0)
			var derr *analytic.DomainError
			Expect(errors.As(err, &derr)).To(BeTrue())
		}
	})
})

var _ = Describe("HerdImmunityThreshold", func() {
	It("computes 1 - 1/R0", func() {
		Expect(analytic.HerdImmunityThreshold(2.0 / 0.9)).To(BeNumerically("~", 0.55, 1e-12))
		Expect(analytic.HerdImmunityThreshold(1)).To(Equal(0.0))
		Expect(analytic.HerdImmunityThreshold(0.8)).To(BeNumerically("<", 0))
	})
})

var _ = Describe("final size against numerical integration", func() {
	It("matches a long SIR run for a range of R0", func() {
		stepper, err := integrators.New("rk45")
		Expect(err).NotTo(HaveOccurred())

		for _, R0 := range []float64{1.5, 2, 4, 8} {
			i0 := 1e-6
			model := epi.NewModel(epi.Params{Beta: R0, Gamma: 1, N: 1})
			grid, err := sim.UniformGrid(0, 400, 401)
			Expect(err).NotTo(HaveOccurred())

			s := sim.New(model, stepper, sim.DefaultConfig())
			traj, err := s.Run(context.Background(), sim.State{1 - i0, i0, 0}, grid)
			Expect(err).NotTo(HaveOccurred(), "R0=%g", R0)

			want, err := analytic.FinalRecovered(R0, 1-i0, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(traj.Final()[2]).To(BeNumerically("~", want, 1e-3), "R0=%g", R0)
		}
	})
})
