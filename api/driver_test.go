package api_test

import (
	"bytes"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/progen/api"
	"github.com/sarchlab/progen/config"
	"github.com/sarchlab/progen/core"
	"github.com/sarchlab/progen/dummy"
	"github.com/sarchlab/progen/executor"
	"github.com/sarchlab/progen/instr"
	"github.com/sarchlab/progen/program"
)

func newDriver(b api.DriverBuilder) api.Driver {
	e := dummy.MakeBuilder().WithSeed(5).Build()
	return b.
		WithFactory(e).
		WithGenerator(e.Generator()).
		WithModel(e.Model()).
		WithISA(e.ISA()).
		Build()
}

func traceTexts(res *api.Result) []string {
	out := make([]string, len(res.Trace))
	for i, s := range res.Trace {
		out[i] = s.Text
	}
	return out
}

func load(path string) *program.Template {
	t, err := program.LoadTemplateFile(path)
	Expect(err).ToNot(HaveOccurred())
	return t
}

var _ = Describe("Driver", func() {
	var execLog *bytes.Buffer

	BeforeEach(func() {
		execLog = &bytes.Buffer{}
	})

	It("should run a template end to end", func() {
		d := newDriver(api.MakeDriverBuilder().WithExecutionLog(execLog))

		res, err := d.RunTemplate(load("testdata/branch.yaml"))

		Expect(err).ToNot(HaveOccurred())
		Expect(res.RunID).ToNot(BeEmpty())
		Expect(res.Sequences).To(HaveLen(2))
		Expect(res.Issues).To(BeEmpty())
		Expect(res.Report.OK()).To(BeTrue())
		Expect(res.Report.Backfilled).To(BeEmpty())

		texts := make([]string, len(res.Trace))
		for i, s := range res.Trace {
			texts[i] = s.Text
		}
		Expect(texts[:3]).To(Equal([]string{
			"li r1, 3", "li r2, 3", "beq r1, r2, taken_1_3",
		}))
		Expect(texts).To(HaveLen(4))
		Expect(texts[3]).To(HavePrefix("add r4, r1, r"))

		lines := strings.Split(strings.TrimSuffix(execLog.String(), "\n"), "\n")
		Expect(lines[:5]).To(Equal([]string{
			"li r1, 3",
			"li r2, 3",
			"beq r1, r2, taken_1_3",
			"Jump (internal) to label: taken_1_3",
			"branch taken",
		}))

		Expect(res.Listing).To(HavePrefix(
			"// sequence 0\n\tli r1, 3\n\tli r2, 3\n\tbeq r1, r2, taken_1_3\n\taddi r3, r3, 1\n" +
				"// sequence 1\ntaken_1_3:\n\tadd r4, r1, r"))
		Expect(res.Listing).To(HaveSuffix("\n// end of program\n"))
	})

	It("should produce the same program from YAML and HCL", func() {
		fromYAML, err := newDriver(api.MakeDriverBuilder()).RunTemplate(load("testdata/branch.yaml"))
		Expect(err).ToNot(HaveOccurred())

		fromHCL, err := newDriver(api.MakeDriverBuilder()).RunTemplate(load("testdata/branch.hcl"))
		Expect(err).ToNot(HaveOccurred())

		Expect(fromHCL.Listing).To(Equal(fromYAML.Listing))
		Expect(fromHCL.RunID).ToNot(Equal(fromYAML.RunID))
	})

	It("should reject templates the ISA does not accept", func() {
		t := &program.Template{Root: program.BlockSpec{Items: []program.ItemSpec{
			{Kind: program.ItemInstruction, Name: "mul"},
		}}}

		_, err := newDriver(api.MakeDriverBuilder()).RunTemplate(t)

		Expect(api.KindOf(err)).To(Equal(api.KindTemplate))
		Expect(errors.Is(err, program.ErrTemplate)).To(BeTrue())
	})

	Context("with a jump to an undefined label", func() {
		var root *core.Block

		BeforeEach(func() {
			root = core.NewBuilder().Build()
			root.Instruction("j").Arg("target", instr.LabelRef("nowhere"))
		})

		It("should stop before simulation by default", func() {
			res, err := newDriver(api.MakeDriverBuilder()).Run(root)

			Expect(api.KindOf(err)).To(Equal(api.KindTemplate))
			Expect(res.Issues).To(HaveLen(1))
			Expect(res.Issues[0].Type).To(Equal(executor.IssueUndefinedLabel))
			Expect(res.Report.OK()).To(BeFalse())
			Expect(res.Trace).To(BeEmpty())
		})

		It("should fail in simulation when lint only warns", func() {
			d := newDriver(api.MakeDriverBuilder().WithLintMode(config.LintWarn))

			res, err := d.Run(root)

			Expect(api.KindOf(err)).To(Equal(api.KindFatal))
			var unresolved *executor.UnresolvedLabelError
			Expect(errors.As(err, &unresolved)).To(BeTrue())
			Expect(unresolved.Label.Name).To(Equal("nowhere"))
			Expect(res.Issues).To(HaveLen(1))
			Expect(res.Report.SimErr).To(HaveOccurred())
		})

		It("should skip the check when lint is off", func() {
			d := newDriver(api.MakeDriverBuilder().WithLintMode(config.LintOff))

			res, err := d.Run(root)

			Expect(api.KindOf(err)).To(Equal(api.KindFatal))
			Expect(res.Issues).To(BeEmpty())
		})
	})

	It("should stop endless loops at the step cap", func() {
		root := core.NewBuilder().Build()
		root.Label("top")
		root.Instruction("j").Arg("target", instr.LabelRef("top"))

		c := config.Default()
		c.MaxSteps = 20
		_, err := newDriver(api.MakeDriverBuilder().WithConfig(c)).Run(root)

		Expect(api.KindOf(err)).To(Equal(api.KindFatal))
		var limit *executor.StepLimitError
		Expect(errors.As(err, &limit)).To(BeTrue())
		Expect(limit.MaxSteps).To(Equal(20))
		Expect(err.Error()).To(HavePrefix("fatal error: "))
	})

	It("should start every run from a fresh model", func() {
		build := func() *core.Block {
			root := core.NewBuilder().Build()
			root.Instruction("bne").
				Arg("rs", instr.Immediate(1)).
				Arg("rt", instr.Immediate(0)).
				Arg("target", instr.LabelRef("skip"))
			root.Instruction("addi").
				Arg("rd", instr.Immediate(1)).
				Arg("rs", instr.Immediate(1)).
				Arg("imm", instr.Immediate(1))
			root.Label("skip")
			root.Instruction("nop")
			return root
		}
		d := newDriver(api.MakeDriverBuilder())

		first, err := d.Run(build())
		Expect(err).ToNot(HaveOccurred())
		second, err := d.Run(build())
		Expect(err).ToNot(HaveOccurred())

		Expect(traceTexts(first)).To(Equal([]string{
			"bne r1, r0, skip_1", "addi r1, r1, 1", "nop",
		}))
		Expect(traceTexts(second)).To(Equal(traceTexts(first)))
	})

	It("should lint without simulating", func() {
		d := newDriver(api.MakeDriverBuilder().WithExecutionLog(execLog))

		issues, err := d.Check(load("testdata/branch.hcl"))

		Expect(err).ToNot(HaveOccurred())
		Expect(issues).To(BeEmpty())
		Expect(execLog.Len()).To(BeZero())
	})

	It("should need an engine", func() {
		Expect(func() { api.MakeDriverBuilder().Build() }).To(Panic())
	})
})

var _ = Describe("Flatten and simulate", func() {
	It("should keep call order and every call with its arguments", func() {
		e := dummy.MakeBuilder().WithSeed(3).Build()

		root := core.NewBuilder().Build()
		root.Instruction("li").
			Arg("rd", instr.Immediate(1)).
			Arg("imm", instr.Immediate(5))
		root.Block(func(b *core.Block) {
			b.Instruction("add").
				Arg("rd", instr.Immediate(4)).
				Arg("rs", instr.Mode("REG").With("i", instr.Mode("IMM").With("v", instr.Immediate(9)))).
				Arg("rt", instr.Immediate(2))
			b.Block(func(inner *core.Block) {
				inner.Instruction("addi").
					Arg("rd", instr.Immediate(3)).
					Arg("rs", instr.Immediate(3)).
					Arg("imm", instr.Immediate(-7))
			})
		})
		root.Instruction("nop")

		block, err := core.Flatten(root, e)
		Expect(err).ToNot(HaveOccurred())
		seqs, err := block.Sequences()
		Expect(err).ToNot(HaveOccurred())
		Expect(seqs).To(HaveLen(1))

		abstract := make([]string, len(seqs[0]))
		for i, c := range seqs[0] {
			abstract[i] = c.(*dummy.Call).String()
		}
		Expect(abstract).To(Equal([]string{
			"li(rd=1, imm=5)",
			"add(rd=4, rs=REG(i=IMM(v=9)), rt=2)",
			"addi(rd=3, rs=3, imm=-7)",
			"nop()",
		}))

		model := e.Model()
		sim := executor.MakeBuilder().Build(model, e.Generator())
		out, err := sim.Simulate(seqs)
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(HaveLen(1))

		type namedValues struct {
			Name   string
			Values map[string]int64
		}
		got := make([]namedValues, len(out[0]))
		order := make([]string, len(out[0]))
		for i, c := range out[0] {
			concrete := c.(*dummy.Concrete)
			got[i] = namedValues{concrete.Name(), concrete.Values()}
			order[i] = concrete.Name()
		}

		Expect(order).To(Equal([]string{"li", "add", "addi", "nop"}))
		Expect(got).To(ConsistOf(
			namedValues{"nop", map[string]int64{}},
			namedValues{"addi", map[string]int64{"rd": 3, "rs": 3, "imm": -7}},
			namedValues{"add", map[string]int64{"rd": 4, "rs": 9, "rt": 2}},
			namedValues{"li", map[string]int64{"rd": 1, "imm": 5}},
		))
		Expect(model.Reg(1)).To(Equal(int64(5)))
		Expect(model.Reg(3)).To(Equal(int64(-7)))
	})
})
