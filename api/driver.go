// Package api defines the driver that runs the whole generation pipeline:
// flattening, expansion, label lint, simulation and reporting.
package api

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rs/xid"

	"github.com/sarchlab/progen/config"
	"github.com/sarchlab/progen/core"
	"github.com/sarchlab/progen/engine"
	"github.com/sarchlab/progen/executor"
	"github.com/sarchlab/progen/program"
)

// Driver generates programs.
type Driver interface {
	// Run generates the program described by a block tree. The tree is
	// consumed.
	Run(root *core.Block) (*Result, error)

	// RunTemplate validates a template, builds its block tree and runs it.
	RunTemplate(t *program.Template) (*Result, error)

	// Check validates and expands a template and lints its labels without
	// simulating.
	Check(t *program.Template) ([]executor.Issue, error)
}

// Result is the outcome of one run. It is returned alongside errors with
// whatever was produced before the failure.
type Result struct {
	RunID     string
	Sequences []engine.ConcreteSequence
	Trace     []executor.Step
	Issues    []executor.Issue
	Report    *executor.Report
	Listing   string
}

type driverImpl struct {
	factory   engine.BlockBuilderFactory
	generator engine.DataGenerator
	model     engine.Model
	isa       *program.ISA

	maxSteps int
	lintMode string
	execLog  io.Writer
	logger   *slog.Logger
}

func (d *driverImpl) RunTemplate(t *program.Template) (*Result, error) {
	root, err := d.build(t)
	if err != nil {
		return &Result{}, err
	}

	return d.Run(root)
}

func (d *driverImpl) Check(t *program.Template) ([]executor.Issue, error) {
	root, err := d.build(t)
	if err != nil {
		return nil, err
	}

	seqs, err := d.expand(root)
	if err != nil {
		return nil, err
	}

	return executor.Lint(seqs), nil
}

func (d *driverImpl) build(t *program.Template) (*core.Block, error) {
	if d.isa != nil {
		if err := t.Validate(d.isa); err != nil {
			return nil, templateError(err)
		}
	}

	return t.Build(core.NewBuilder().WithLogger(d.logger)), nil
}

func (d *driverImpl) expand(root *core.Block) ([]engine.Sequence, error) {
	core.LogBlock(d.logger, root)

	block, err := core.Flatten(root, d.factory)
	if err != nil {
		return nil, templateError(fmt.Errorf("failed to flatten: %w", err))
	}

	seqs, err := block.Sequences()
	if err != nil {
		return nil, templateError(fmt.Errorf("failed to expand: %w", err))
	}

	return seqs, nil
}

func (d *driverImpl) Run(root *core.Block) (*Result, error) {
	res := &Result{RunID: xid.New().String()}
	logger := d.logger.With("RunID", res.RunID)

	seqs, err := d.expand(root)
	if err != nil {
		return res, err
	}
	logger.Info("block expanded", "Sequences", len(seqs))

	if err := d.lint(res, seqs, logger); err != nil {
		return res, err
	}

	if r, ok := d.model.(engine.Resetter); ok {
		r.Reset()
	}

	sim := executor.MakeBuilder().
		WithMaxSteps(d.maxSteps).
		WithLogger(logger).
		WithExecutionLog(d.execLog).
		Build(d.model, d.generator)

	out, err := sim.Run(seqs)
	res.Report = executor.GenerateReport(res.RunID, res.Issues, out, err)
	if err != nil {
		logger.Error("simulation failed", "Error", err)
		return res, fatalError(err)
	}

	res.Sequences = out.Sequences
	res.Trace = out.Trace

	res.Listing, err = executor.Listing(out.Sequences)
	if err != nil {
		return res, fatalError(fmt.Errorf("failed to print listing: %w", err))
	}

	logger.Info("run finished",
		"Steps", len(out.Trace),
		"Jumps", len(out.Jumps),
		"Backfilled", len(out.Backfilled()))

	return res, nil
}

func (d *driverImpl) lint(res *Result, seqs []engine.Sequence, logger *slog.Logger) error {
	if d.lintMode == config.LintOff {
		return nil
	}

	res.Issues = executor.Lint(seqs)

	errs := 0
	for _, i := range res.Issues {
		if i.IsError() {
			errs++
		}
		logger.Warn("label issue", "Issue", i.String())
	}

	if errs == 0 || d.lintMode != config.LintAbort {
		return nil
	}

	res.Report = executor.GenerateReport(res.RunID, res.Issues, nil, nil)

	return templateError(fmt.Errorf("%d label errors found before simulation", errs))
}
