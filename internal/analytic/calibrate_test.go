package analytic_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/episim/episim/internal/analytic"
	"github.com/episim/episim/internal/sim"
)

var _ = Describe("CalibrateBeta", func() {
	It("recovers the transmission rate for a target outbreak size", func() {
		res, err := analytic.CalibrateBeta(0.9, 0.55, analytic.DefaultBracket(0.9), analytic.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Residual).To(BeNumerically("~", 0, 1e-6))
		Expect(res.Iterations).To(BeNumerically("<=", 100))

		got, ferr := analytic.FinalRecovered(res.Beta/0.9, 1, 0)
		Expect(ferr).NotTo(HaveOccurred())
		Expect(got).To(BeNumerically("~", 0.55, 1e-6))
		Expect(res.Beta).To(BeNumerically("~", 1.3067, 1e-3))
	})

	It("reports when the bracket does not straddle the target", func() {
		// Even beta = 5*gamma cannot push the outbreak to 99.5%.
		_, err := analytic.CalibrateBeta(1, 0.995, analytic.DefaultBracket(1), analytic.DefaultOptions())
		Expect(err).To(MatchError(analytic.ErrNoRootInBracket))

		// Both endpoints overshoot a small target: even beta = 2*gamma
		// infects about 80% of the population.
		_, err = analytic.CalibrateBeta(0.1, 0.3, analytic.Bracket{Lo: 0.2, Hi: 0.9}, analytic.DefaultOptions())
		Expect(err).To(MatchError(analytic.ErrNoRootInBracket))
	})

	It("stops at the iteration budget and reports the best estimate", func() {
		opt := analytic.Options{Tol: 1e-300, MaxIter: 20}
		res, err := analytic.CalibrateBeta(0.9, 0.55, analytic.DefaultBracket(0.9), opt)
		Expect(err).To(MatchError(analytic.ErrMaxIterations))
		Expect(res.Iterations).To(Equal(20))
		Expect(res.Beta).To(BeNumerically(">", 0))
	})

	It("rejects invalid inputs", func() {
		br := analytic.DefaultBracket(1)
		opt := analytic.DefaultOptions()
		cases := []struct {
			name   string
			gamma  float64
			target float64
			br     analytic.Bracket
			opt    analytic.Options
		}{
			{"zero gamma", 0, 0.5, br, opt},
			{"zero target", 1, 0, br, opt},
			{"target one", 1, 1, br, opt},
			{"negative bracket", 1, 0.5, analytic.Bracket{Lo: -1, Hi: 1}, opt},
			{"empty bracket", 1, 0.5, analytic.Bracket{Lo: 1, Hi: 1}, opt},
			{"zero options", 1, 0.5, br, analytic.Options{}},
		}
		for _, c := range cases {
			_, err := analytic.CalibrateBeta(c.gamma, c.target, c.br, c.opt)
			Expect(err).To(HaveOccurred(), c.name)
			var cerr sim.ConfigError
			Expect(errors.As(err, &cerr)).To(BeTrue(), c.name)
		}
	})

	It("derives the default search range from the recovery rate", func() {
		br := analytic.DefaultBracket(2)
		Expect(br.Lo).To(Equal(0.2))
		Expect(br.Hi).To(Equal(10.0))

		opt := analytic.DefaultOptions()
		Expect(opt.Tol).To(Equal(1e-6))
		Expect(opt.MaxIter).To(Equal(100))
	})
})
