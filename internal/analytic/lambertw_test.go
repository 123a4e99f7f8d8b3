package analytic_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/episim/episim/internal/analytic"
)

var _ = Describe("LambertW0", func() {
	It("inverts w*exp(w) across the principal branch", func() {
		for w := -0.99; w <= 3.0; w += 0.07 {
			x := w * math.Exp(w)
			Expect(analytic.LambertW0(x)).To(BeNumerically("~", w, 1e-12),
				"round trip through w=%g", w)
		}
	})

	It("matches known values", func() {
		Expect(analytic.LambertW0(0)).To(Equal(0.0))
		Expect(analytic.LambertW0(1)).To(BeNumerically("~", 0.5671432904097838, 1e-14))
		Expect(analytic.LambertW0(math.E)).To(BeNumerically("~", 1.0, 1e-14))
		Expect(analytic.LambertW0(analytic.NegInvE)).To(Equal(-1.0))
	})

	It("returns NaN below the branch point", func() {
		Expect(math.IsNaN(analytic.LambertW0(-0.4))).To(BeTrue())
		Expect(math.IsNaN(analytic.LambertW0(math.NaN()))).To(BeTrue())
	})

	It("stays on the principal branch near the branch point", func() {
		x := analytic.NegInvE + 1e-9
		w := analytic.LambertW0(x)
		Expect(w).To(BeNumerically(">=", -1))
		Expect(w * math.Exp(w)).To(BeNumerically("~", x, 1e-12))
	})
})
