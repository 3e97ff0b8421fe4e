package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/progen/api"
	"github.com/sarchlab/progen/core"
	"github.com/sarchlab/progen/dummy"
	"github.com/sarchlab/progen/instr"
)

func buildLoop(iterations int64) *core.Block {
	root := core.NewBuilder().Build()

	root.Instruction("li").
		Arg("rd", instr.Immediate(1)).
		Arg("imm", instr.Immediate(0))
	root.Instruction("li").
		Arg("rd", instr.Immediate(2)).
		Arg("imm", instr.Immediate(iterations))

	root.Block(func(body *core.Block) {
		body.Label("loop")
		body.Instruction("addi").
			Arg("rd", instr.Immediate(3)).
			Arg("rs", instr.Immediate(3)).
			Arg("imm", instr.Deferred{})
		body.Instruction("addi").
			Arg("rd", instr.Immediate(1)).
			Arg("rs", instr.Immediate(1)).
			Arg("imm", instr.Immediate(1))
		body.Instruction("blt").
			Arg("rs", instr.Immediate(1)).
			Arg("rt", instr.Immediate(2)).
			Arg("target", instr.LabelRef("loop"))
		body.Text("// loop done")
	})

	return root
}

func main() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))

	e := dummy.MakeBuilder().WithSeed(2024).Build()
	model := e.Model()

	driver := api.MakeDriverBuilder().
		WithFactory(e).
		WithGenerator(e.Generator()).
		WithModel(model).
		WithExecutionLog(os.Stderr).
		Build()

	res, err := driver.Run(buildLoop(4))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(1)
	}

	fmt.Print(res.Listing)
	res.Report.WriteReport(os.Stdout)
	fmt.Println("r1 =", model.Reg(1))

	atexit.Exit(0)
}
