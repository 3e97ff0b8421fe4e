package dummy_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/progen/dummy"
	"github.com/sarchlab/progen/engine"
)

func names(seqs []engine.Sequence) [][]string {
	out := make([][]string, len(seqs))
	for i, s := range seqs {
		out[i] = make([]string, len(s))
		for j, c := range s {
			out[i][j] = c.Name()
		}
	}
	return out
}

var _ = Describe("Block", func() {
	var e *dummy.Engine

	BeforeEach(func() {
		e = dummy.MakeBuilder().WithSeed(7).Build()
	})

	call := func(name string) engine.Call {
		c, err := e.NewCallBuilder(name).Build()
		Expect(err).ToNot(HaveOccurred())
		return c
	}

	block := func(policy map[string]any, items ...any) engine.Block {
		bb := e.NewBlockBuilder()
		for k, v := range policy {
			bb.SetAttribute(k, v)
		}
		for _, it := range items {
			switch v := it.(type) {
			case string:
				bb.AddCall(call(v))
			case engine.Block:
				bb.AddBlock(v)
			}
		}
		b, err := bb.Build()
		Expect(err).ToNot(HaveOccurred())
		return b
	}

	alternatives := func(items ...any) engine.Block {
		return block(map[string]any{engine.Iterate: true}, items...)
	}

	sequences := func(b engine.Block) [][]string {
		seqs, err := b.Sequences()
		Expect(err).ToNot(HaveOccurred())
		return names(seqs)
	}

	It("should catenate calls into one sequence", func() {
		Expect(sequences(block(nil, "nop", "mov", "li"))).
			To(Equal([][]string{{"nop", "mov", "li"}}))
	})

	It("should yield every item separately when iterating", func() {
		b := alternatives("nop", block(nil, "mov", "li"), "add")

		Expect(sequences(b)).To(Equal([][]string{
			{"nop"}, {"mov", "li"}, {"add"},
		}))
	})

	It("should combine alternatives diagonally by default", func() {
		b := block(nil, alternatives("nop", "mov"), alternatives("li", "add", "sub"))

		Expect(sequences(b)).To(Equal([][]string{
			{"nop", "li"}, {"mov", "add"}, {"nop", "sub"},
		}))
	})

	It("should combine alternatives as a product", func() {
		b := block(map[string]any{engine.Combinator: dummy.CombinatorProduct},
			alternatives("nop", "mov"), alternatives("li", "add", "sub"))

		Expect(sequences(b)).To(Equal([][]string{
			{"nop", "li"}, {"nop", "add"}, {"nop", "sub"},
			{"mov", "li"}, {"mov", "add"}, {"mov", "sub"},
		}))
	})

	It("should pick random alternatives for every tuple", func() {
		b := block(map[string]any{engine.Combinator: dummy.CombinatorRandom},
			alternatives("nop", "mov"), alternatives("li", "add", "sub"))

		got := sequences(b)

		Expect(got).To(HaveLen(3))
		for _, s := range got {
			Expect(s).To(HaveLen(2))
			Expect(s[0]).To(BeElementOf("nop", "mov"))
			Expect(s[1]).To(BeElementOf("li", "add", "sub"))
		}
	})

	It("should interleave sequences by rotation", func() {
		b := block(map[string]any{engine.Compositor: dummy.CompositorRotation},
			block(nil, "nop", "mov"), block(nil, "li", "add", "sub"))

		Expect(sequences(b)).To(Equal([][]string{
			{"nop", "li", "mov", "add", "sub"},
		}))
	})

	It("should keep the order within each part when mixing randomly", func() {
		b := block(map[string]any{engine.Compositor: dummy.CompositorRandom},
			block(nil, "nop", "mov"), block(nil, "li", "add", "sub"))

		got := sequences(b)

		Expect(got).To(HaveLen(1))
		Expect(got[0]).To(ConsistOf("nop", "mov", "li", "add", "sub"))
		index := func(n string) int {
			for i, s := range got[0] {
				if s == n {
					return i
				}
			}
			return -1
		}
		Expect(index("nop")).To(BeNumerically("<", index("mov")))
		Expect(index("li")).To(BeNumerically("<", index("add")))
		Expect(index("add")).To(BeNumerically("<", index("sub")))
	})

	It("should repeat random choices for the same seed", func() {
		build := func() [][]string {
			e = dummy.MakeBuilder().WithSeed(42).Build()
			return sequences(block(map[string]any{
				engine.Combinator: dummy.CombinatorRandom,
				engine.Compositor: dummy.CompositorRandom,
			}, alternatives("nop", "mov", "j"), alternatives("li", "add", "sub", "addi")))
		}

		Expect(build()).To(Equal(build()))
	})

	It("should yield one empty sequence for an empty block", func() {
		Expect(sequences(block(nil))).To(Equal([][]string{{}}))
	})

	It("should treat an empty iterating item as an empty part", func() {
		b := block(nil, "nop", alternatives(), "mov")

		Expect(sequences(b)).To(Equal([][]string{{"nop", "mov"}}))
	})

	It("should reject unknown policies", func() {
		bb := e.NewBlockBuilder()
		bb.SetAttribute(engine.Combinator, "zigzag")
		_, err := bb.Build()
		Expect(err).To(MatchError(ContainSubstring("unknown combinator")))

		bb = e.NewBlockBuilder()
		bb.SetAttribute(engine.Compositor, 3)
		_, err = bb.Build()
		Expect(err).To(MatchError(ContainSubstring("unknown compositor")))

		bb = e.NewBlockBuilder()
		bb.SetAttribute(engine.Iterate, "yes")
		_, err = bb.Build()
		Expect(err).To(MatchError(ContainSubstring("must be a boolean")))
	})

	It("should ignore other attributes", func() {
		bb := e.NewBlockBuilder()
		bb.SetAttribute("weight", 3)
		bb.AddCall(call("nop"))
		b, err := bb.Build()

		Expect(err).ToNot(HaveOccurred())
		Expect(sequences(b)).To(Equal([][]string{{"nop"}}))
	})
})
