package eos80_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/seawater/internal/eos80"
	"github.com/san-kum/seawater/internal/grid"
)

// The UNESCO check values are published for IPTS-68 temperatures; t68 gives
// the ITS-90 input that corresponds to them.
func t68(t float64) *grid.Grid {
	return grid.Scalar(t / eos80.T68Factor)
}

var _ = Describe("UNESCO 1983 check values", func() {
	s := grid.Scalar(40)
	p := grid.Scalar(10000)

	It("reproduces in-situ density at S=40, T68=40, P=10000", func() {
		rho, err := eos80.Dens(s, t68(40), p)
		Expect(err).NotTo(HaveOccurred())
		Expect(rho.Scalar()).To(BeNumerically("~", 1059.8204, 1e-3))
	})

	It("reproduces potential temperature at S=40, T68=40, P=10000, PR=0", func() {
		theta, err := eos80.Ptmp(s, t68(40), p, grid.Scalar(0))
		Expect(err).NotTo(HaveOccurred())
		Expect(theta.Scalar() * eos80.T68Factor).To(BeNumerically("~", 36.89073, 1e-4))
	})

	It("reproduces the adiabatic lapse rate at S=40, T68=40, P=10000", func() {
		g, err := eos80.Adtg(s, t68(40), p)
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Scalar()).To(BeNumerically("~", 3.255976e-4, 1e-10))
	})

	It("gives potential density below in-situ density at depth", func() {
		pden, err := eos80.Pden(s, t68(40), p, grid.Scalar(0))
		Expect(err).NotTo(HaveOccurred())
		Expect(pden.Scalar()).To(BeNumerically("~", 1022.9302, 1e-3))
	})
})

var _ = Describe("shape contract", func() {
	ones := func(r, c int) *grid.Grid {
		g, err := grid.Fill(r, c, 1)
		Expect(err).NotTo(HaveOccurred())
		return g
	}

	It("rejects dens(ones(2,3), ones(3,2), 0)", func() {
		_, err := eos80.Dens(ones(2, 3), ones(3, 2), grid.Scalar(0))
		Expect(errors.Is(err, grid.ErrShapeMismatch)).To(BeTrue())
	})

	DescribeTable("broadcasts pressure against a 2x3 salinity grid",
		func(literal string, ok bool) {
			_, err := eos80.Dens(ones(2, 3), ones(2, 3), grid.MustParse(literal))
			if ok {
				Expect(err).NotTo(HaveOccurred())
			} else {
				Expect(err).To(MatchError(grid.ErrShapeMismatch))
			}
		},
		Entry("scalar", "5", true),
		Entry("row", "0,10,20", true),
		Entry("column", "0;10", true),
		Entry("full", "1,2,3;4,5,6", true),
		Entry("short row", "0,10", false),
		Entry("long column", "0;10;20", false),
		Entry("transposed", "1,2;3,4;5,6", false),
	)

	It("reports a bad reference pressure as PR", func() {
		_, err := eos80.Pden(ones(2, 3), ones(2, 3), grid.Scalar(0), grid.MustParse("1,2"))
		var se *grid.ShapeError
		Expect(errors.As(err, &se)).To(BeTrue())
		Expect(se.Arg).To(Equal("PR"))
	})
})

var _ = Describe("potential temperature", func() {
	DescribeTable("returns to the in-situ temperature after a round trip",
		func(s, t, p, pr float64) {
			theta, err := eos80.Ptmp(grid.Scalar(s), grid.Scalar(t), grid.Scalar(p), grid.Scalar(pr))
			Expect(err).NotTo(HaveOccurred())
			back, err := eos80.Ptmp(grid.Scalar(s), theta, grid.Scalar(pr), grid.Scalar(p))
			Expect(err).NotTo(HaveOccurred())
			Expect(back.Scalar()).To(BeNumerically("~", t, 1e-5))
		},
		Entry("abyssal", 34.7, 2.0, 4000.0, 0.0),
		Entry("thermocline", 35.0, 12.0, 800.0, 0.0),
		Entry("deep reference", 35.0, 3.0, 1000.0, 4000.0),
		Entry("trench", 40.0, 40.0/eos80.T68Factor, 10000.0, 0.0),
	)
})

var _ = Describe("published check values", func() {
	It("passes every case", func() {
		results := eos80.RunChecks()
		Expect(results).NotTo(BeEmpty())
		for _, r := range results {
			Expect(r.Err).NotTo(HaveOccurred(), r.Label())
			Expect(r.Pass()).To(BeTrue(), "%s: got %v want %v", r.Label(), r.Got, r.Want)
		}
	})

	It("labels arguments by signature", func() {
		c := eos80.CheckValue{Func: "ptmp", Args: []float64{40, 40, 10000, 0}}
		Expect(c.Label()).To(Equal("ptmp(S=40 T=40 P=10000 PR=0)"))
	})

	It("fails a case for an unknown function", func() {
		r := eos80.CheckValue{Func: "svan", Args: []float64{1}}.Evaluate()
		Expect(r.Err).To(MatchError(eos80.ErrUnknownFunction))
		Expect(r.Pass()).To(BeFalse())
	})
})
