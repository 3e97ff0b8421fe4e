package core

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sarchlab/progen/attr"
	"github.com/sarchlab/progen/engine"
	"github.com/sarchlab/progen/instr"
)

// Flatten builds the root block of a template with the engine's builders.
func Flatten(root *Block, factory engine.BlockBuilderFactory) (engine.Block, error) {
	return root.Flatten(factory, nil, nil)
}

// pendingState tells whether an instruction is held back to collect the
// labels and hooks written after it.
type pendingState int

const (
	noPending pendingState = iota
	onePending
)

type flattener struct {
	factory engine.BlockBuilderFactory
	builder engine.BlockBuilder
	labels  instr.LabelTable
	scope   attr.ScopePath
	logger  *slog.Logger

	state   pendingState
	pending *instr.Instruction

	delayedLabels []string
	delayedHooks  []instr.Hook
}

// Flatten turns the block into an engine block. Labels are bound to the
// neighbouring instruction rather than to an offset, so that reordering by
// combinators and compositors keeps every jump target next to the
// instruction that carries it.
func (b *Block) Flatten(
	factory engine.BlockBuilderFactory,
	inherited instr.LabelTable,
	scope attr.ScopePath,
) (engine.Block, error) {
	f := &flattener{
		factory: factory,
		builder: factory.NewBlockBuilder(),
		labels:  inherited.Merge(b.labels),
		scope:   scope.Push(b.id),
		logger:  b.run.log(),
	}

	for _, key := range b.policy.keys {
		f.builder.SetAttribute(key, b.policy.values[key])
	}

	for _, item := range b.items {
		if err := f.visit(item); err != nil {
			return nil, fmt.Errorf("block %d: %w", b.id, err)
		}
	}

	if err := f.finalize(); err != nil {
		return nil, fmt.Errorf("block %d: %w", b.id, err)
	}

	f.reportOrphans(b.id)

	return f.builder.Build()
}

func (f *flattener) visit(item any) error {
	if label, ok := item.(instr.Label); ok {
		f.onLabel(label)
	} else {
		f.flushLabels()
	}

	if hook, ok := item.(instr.Hook); ok {
		f.onHook(hook)
	} else {
		f.flushHooks()
	}

	switch it := item.(type) {
	case *instr.Instruction:
		if err := f.finalize(); err != nil {
			return err
		}
		f.pending = it
		f.state = onePending
	case *Block:
		if err := f.finalize(); err != nil {
			return err
		}
		sub, err := it.Flatten(f.factory, f.labels, f.scope)
		if err != nil {
			return err
		}
		f.builder.AddBlock(sub)
	}

	return nil
}

func (f *flattener) onLabel(label instr.Label) {
	if f.state == noPending {
		f.delayedLabels = append(f.delayedLabels, label.Name)
		return
	}

	id := attr.LabelID{Name: label.Name, Scope: f.scope}
	f.pending.AddToAttribute(attr.ForwardLabels, id)
	f.trace("Label", "Name", id.UniqueName(), "Binding", "forward", "Instruction", f.pending.Name)
}

func (f *flattener) flushLabels() {
	if f.state == noPending || len(f.delayedLabels) == 0 {
		return
	}

	for _, name := range f.delayedLabels {
		id := attr.LabelID{Name: name, Scope: f.scope}
		f.pending.AddToAttribute(attr.BackwardLabels, id)
		f.trace("Label", "Name", id.UniqueName(), "Binding", "backward", "Instruction", f.pending.Name)
	}
	f.delayedLabels = f.delayedLabels[:0]
}

func (f *flattener) onHook(hook instr.Hook) {
	if f.state == noPending {
		f.delayedHooks = append(f.delayedHooks, hook)
		return
	}

	if hook.Runtime {
		f.pending.AddToAttribute(attr.ForwardRuntime, hook)
	} else {
		f.pending.AddToAttribute(attr.ForwardOutput, hook)
	}
}

func (f *flattener) flushHooks() {
	if f.state == noPending || len(f.delayedHooks) == 0 {
		return
	}

	for _, hook := range f.delayedHooks {
		if hook.Runtime {
			f.pending.AddToAttribute(attr.BackwardRuntime, hook)
		} else {
			f.pending.AddToAttribute(attr.BackwardOutput, hook)
		}
	}
	f.delayedHooks = f.delayedHooks[:0]
}

// finalize builds the pending instruction, if any, and leaves the
// noPending state.
func (f *flattener) finalize() error {
	if f.state == noPending {
		return nil
	}

	f.flushLabels()
	f.flushHooks()

	call, err := f.pending.Build(f.factory.NewCallBuilder(f.pending.Name), f.scope)
	if err != nil {
		return err
	}
	f.checkVisible(f.pending)
	f.builder.AddCall(call)

	f.pending = nil
	f.state = noPending

	return nil
}

// checkVisible logs references to labels that no enclosing block defines.
// They may still resolve to a sibling block at simulation time.
func (f *flattener) checkVisible(i *instr.Instruction) {
	fixups, err := i.Attributes.Fixups()
	if err != nil {
		return
	}

	for _, fx := range fixups {
		if _, ok := f.labels[fx.Label.Name]; !ok {
			f.logger.Debug("label reference not visible from block",
				"Label", fx.Label.Name, "Scope", f.scope.String(), "Instruction", i.Name)
		}
	}
}

func (f *flattener) reportOrphans(blockID int) {
	for _, name := range f.delayedLabels {
		f.logger.Warn("label is not followed by an instruction and is not bound",
			"Label", attr.LabelID{Name: name, Scope: f.scope}.UniqueName(),
			"Block", blockID)
	}
	for _, hook := range f.delayedHooks {
		f.logger.Warn("hook is not followed by an instruction and is dropped",
			"Hook", hook.String(), "Block", blockID)
	}
}

func (f *flattener) trace(msg string, args ...any) {
	f.logger.Log(context.Background(), LevelTrace, msg, args...)
}

func (r *run) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return slog.Default()
}
