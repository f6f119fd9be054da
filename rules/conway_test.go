package rules_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sheikhrachel/torus-life/rules"
)

var _ = Describe("ApplyConwayRules", func() {
	DescribeTable("live cells",
		func(neighbors int, want bool) {
			Expect(rules.ApplyConwayRules(neighbors, true)).To(Equal(want))
		},
		Entry("dies with no neighbors", 0, false),
		Entry("dies with one neighbor", 1, false),
		Entry("survives with two neighbors", 2, true),
		Entry("survives with three neighbors", 3, true),
		Entry("dies with four neighbors", 4, false),
		Entry("dies with eight neighbors", 8, false),
	)

	DescribeTable("dead cells",
		func(neighbors int, want bool) {
			Expect(rules.ApplyConwayRules(neighbors, false)).To(Equal(want))
		},
		Entry("stays dead with two neighbors", 2, false),
		Entry("is born with three neighbors", 3, true),
		Entry("stays dead with four neighbors", 4, false),
		Entry("stays dead with none", 0, false),
	)

	It("only ever births on exactly three", func() {
		for n := 0; n <= 8; n++ {
			Expect(rules.ApplyConwayRules(n, false)).To(Equal(n == 3), "neighbors=%d", n)
		}
	})
})
