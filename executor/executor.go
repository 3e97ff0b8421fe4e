// Package executor simulates the abstract sequences of a built block. It
// follows control transfers between sequences through labels, generates
// concrete data only for the sequences it visits, and backfills the rest.
package executor

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/sarchlab/progen/attr"
	"github.com/sarchlab/progen/core"
	"github.com/sarchlab/progen/engine"
	"github.com/sarchlab/progen/instr"
)

// DefaultMaxSteps bounds the number of executed calls of one run.
const DefaultMaxSteps = 10000

// Step is one executed call.
type Step struct {
	Sequence int
	Position int
	Text     string
}

// Jump is one control transfer taken during simulation.
type Jump struct {
	From  Location
	Label attr.LabelID
	To    Location
}

// Result holds the outcome of one simulation run.
type Result struct {
	// Sequences has one concrete sequence per abstract input, in input order.
	Sequences []engine.ConcreteSequence

	// Visited tells which sequences were executed. The others were only
	// generated after simulation ended.
	Visited []bool

	Trace []Step
	Jumps []Jump
}

// Backfilled returns the indices of sequences that were never executed.
func (r *Result) Backfilled() []int {
	var out []int
	for i, v := range r.Visited {
		if !v {
			out = append(out, i)
		}
	}
	return out
}

// Builder creates simulators.
type Builder struct {
	maxSteps int
	logger   *slog.Logger
	execLog  io.Writer
}

// MakeBuilder creates a builder with the default step cap.
func MakeBuilder() Builder {
	return Builder{maxSteps: DefaultMaxSteps}
}

// WithMaxSteps sets how many calls may execute before the run fails.
func (b Builder) WithMaxSteps(n int) Builder {
	b.maxSteps = n
	return b
}

// WithLogger sets the logger.
func (b Builder) WithLogger(logger *slog.Logger) Builder {
	b.logger = logger
	return b
}

// WithExecutionLog sets a writer that receives executed call text, runtime
// hook output and jump notes.
func (b Builder) WithExecutionLog(w io.Writer) Builder {
	b.execLog = w
	return b
}

// Build creates a simulator driving the given model and generator.
func (b Builder) Build(model engine.Model, generator engine.DataGenerator) *Simulator {
	if model == nil || generator == nil {
		panic("simulator needs a model and a data generator")
	}

	logger := b.logger
	if logger == nil {
		logger = slog.Default()
	}

	maxSteps := b.maxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}

	return &Simulator{
		model:     model,
		generator: generator,
		maxSteps:  maxSteps,
		logger:    logger,
		execLog:   b.execLog,
	}
}

// Simulator executes sequences against a model. It is not safe for
// concurrent use.
type Simulator struct {
	model     engine.Model
	generator engine.DataGenerator
	maxSteps  int
	logger    *slog.Logger
	execLog   io.Writer
}

// Simulate runs the sequences and returns one concrete sequence per input.
func (s *Simulator) Simulate(seqs []engine.Sequence) ([]engine.ConcreteSequence, error) {
	res, err := s.Run(seqs)
	if err != nil {
		return nil, err
	}
	return res.Sequences, nil
}

// run is the state of one simulation.
type run struct {
	*Simulator

	seqs      []engine.Sequence
	labels    *LabelTable
	generated []engine.ConcreteSequence
	visited   []bool
	steps     int
	result    *Result
}

// Run simulates the sequences, starting at the first call of the first
// sequence, and reports what was executed.
func (s *Simulator) Run(seqs []engine.Sequence) (*Result, error) {
	labels, err := NewLabelTable(seqs, s.logger)
	if err != nil {
		return nil, err
	}

	r := &run{
		Simulator: s,
		seqs:      seqs,
		labels:    labels,
		generated: make([]engine.ConcreteSequence, len(seqs)),
		visited:   make([]bool, len(seqs)),
		result:    &Result{},
	}

	if err := r.simulate(); err != nil {
		return nil, err
	}

	if err := r.backfill(); err != nil {
		return nil, err
	}

	r.result.Sequences = r.generated
	r.result.Visited = r.visited

	return r.result, nil
}

func (r *run) simulate() error {
	current, start := 0, 0

	for current < len(r.seqs) {
		if err := r.ensureGenerated(current); err != nil {
			return err
		}

		jump, err := r.execute(current, start)
		if err != nil {
			return err
		}

		if jump == nil {
			current, start = current+1, 0
			continue
		}

		current, start = jump.To.Sequence, jump.To.Position
	}

	return nil
}

func (r *run) ensureGenerated(index int) error {
	if r.visited[index] {
		return nil
	}

	concrete, err := r.generator.Generate(r.seqs[index])
	if err != nil {
		return fmt.Errorf("generating sequence %d: %w", index, err)
	}

	r.generated[index] = concrete
	r.visited[index] = true
	r.patchLabels(index)

	r.logger.Debug("sequence generated", "Sequence", index, "Calls", len(concrete))

	return nil
}

// execute runs one sequence from start until it ends or a call transfers
// control. It returns the jump taken, if any.
func (r *run) execute(index, start int) (*Jump, error) {
	seq := r.generated[index]

	for pos := start; pos < len(seq); pos++ {
		if r.steps >= r.maxSteps {
			return nil, &StepLimitError{MaxSteps: r.maxSteps}
		}
		r.steps++

		call := seq[pos]
		if err := r.executeCall(index, pos, call); err != nil {
			return nil, err
		}

		target, ok := r.model.ControlTransferLabel()
		if !ok {
			continue
		}

		to, resolved, err := r.labels.Resolve(target, index)
		if err != nil {
			return nil, err
		}

		jump := Jump{
			From:  Location{Sequence: index, Position: pos},
			Label: resolved,
			To:    to,
		}
		r.result.Jumps = append(r.result.Jumps, jump)
		r.note("Jump (internal) to label: " + resolved.UniqueName())
		r.trace("Jump", "From", jump.From.String(), "Label", resolved.UniqueName(), "To", to.String())

		return &jump, nil
	}

	return nil, nil
}

// executeCall runs the hooks written before the call, the call, and then
// the hooks written after it.
func (r *run) executeCall(index, pos int, call engine.ConcreteCall) error {
	if err := r.runHooks(call, attr.BackwardRuntime); err != nil {
		return fmt.Errorf("sequence %d position %d: %w", index, pos, err)
	}

	text := call.Text()
	r.note(text)
	r.trace("Execute", "Sequence", index, "Position", pos, "Call", text)

	if err := r.model.Execute(call); err != nil {
		return fmt.Errorf("sequence %d position %d (%s): %w", index, pos, text, err)
	}

	r.result.Trace = append(r.result.Trace, Step{
		Sequence: index,
		Position: pos,
		Text:     text,
	})

	if err := r.runHooks(call, attr.ForwardRuntime); err != nil {
		return fmt.Errorf("sequence %d position %d: %w", index, pos, err)
	}

	return nil
}

func (r *run) runHooks(call engine.ConcreteCall, key string) error {
	for _, item := range call.Attributes().Get(key) {
		hook, ok := item.(instr.Hook)
		if !ok {
			return fmt.Errorf("attribute %q: %v (%T) is not a hook", key, item, item)
		}

		out, err := hook.Evaluate()
		if err != nil {
			return fmt.Errorf("hook %s: %w", hook, err)
		}

		r.note(out)
	}

	return nil
}

// backfill generates the sequences simulation never reached. Their
// situations are not honored when the generator offers a default mode.
func (r *run) backfill() error {
	for i, done := range r.visited {
		if done {
			continue
		}

		var (
			concrete engine.ConcreteSequence
			err      error
		)
		if dg, ok := r.generator.(engine.DefaultGenerator); ok {
			concrete, err = dg.GenerateDefault(r.seqs[i])
		} else {
			concrete, err = r.generator.Generate(r.seqs[i])
		}
		if err != nil {
			return fmt.Errorf("generating unexecuted sequence %d: %w", i, err)
		}

		r.generated[i] = concrete
		r.patchLabels(i)
		r.logger.Debug("sequence backfilled", "Sequence", i, "Calls", len(concrete))
	}

	return nil
}

// patchLabels tells the calls of a generated sequence where their label
// references resolve. References that do not resolve are left alone; they
// only fail when a jump uses them.
func (r *run) patchLabels(index int) {
	for pos, call := range r.generated[index] {
		patcher, ok := call.(engine.LabelPatcher)
		if !ok {
			continue
		}

		fixups, err := call.Attributes().Fixups()
		if err != nil {
			continue
		}

		for _, f := range fixups {
			_, target, err := r.labels.Resolve(f.Label, index)
			if err != nil {
				r.logger.Debug("label reference left unresolved",
					"Sequence", index, "Position", pos, "Label", f.Label.String())
				continue
			}
			patcher.PatchLabel(f.Argument, target)
		}
	}
}

func (r *run) note(line string) {
	if r.execLog == nil {
		return
	}
	fmt.Fprintln(r.execLog, line)
}

func (r *run) trace(msg string, args ...any) {
	r.logger.Log(context.Background(), core.LevelTrace, msg, args...)
}
