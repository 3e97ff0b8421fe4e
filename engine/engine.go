// Package engine defines the interfaces of the external generation engine:
// block and call builders, data generation, and the ISA model.
package engine

import (
	"github.com/sarchlab/progen/attr"
)

// Policy keys understood by block builders.
const (
	Compositor = "compositor"
	Combinator = "combinator"
	// Iterate makes every item of a block an alternative of its own
	// instead of a part of one sequence.
	Iterate = "iterate"
)

// Situation is a test-data generation directive attached to a call. It is
// passed through to the data generator untouched.
type Situation struct {
	Name   string
	Params map[string]any
}

// Call is an abstract instruction call produced by a CallBuilder.
type Call interface {
	Name() string
	Attributes() *attr.Attributes
}

// ConcreteCall is a call whose arguments all hold concrete values.
type ConcreteCall interface {
	Call
	// Text is the assembly rendering of the call.
	Text() string
}

// LabelPatcher is implemented by concrete calls that print label operands.
// The simulator tells them which definition each reference resolved to.
type LabelPatcher interface {
	PatchLabel(argument string, target attr.LabelID)
}

// Sequence is an abstract instruction sequence.
type Sequence []Call

// ConcreteSequence is a sequence after data generation.
type ConcreteSequence []ConcreteCall

// Block is a built block that can enumerate its abstract sequences.
type Block interface {
	Sequences() ([]Sequence, error)
}

// BlockBuilderFactory creates builders for blocks and calls.
type BlockBuilderFactory interface {
	NewBlockBuilder() BlockBuilder
	NewCallBuilder(name string) CallBuilder
}

// BlockBuilder collects calls and sub-blocks into a Block.
type BlockBuilder interface {
	SetAttribute(key string, value any)
	AddCall(call Call)
	AddBlock(block Block)
	Build() (Block, error)
}

// ArgumentSetter is implemented by builders that accept arguments.
type ArgumentSetter interface {
	SetArgumentImmediate(name string, value int64)
	SetArgumentRandom(name string)
	SetArgumentUsingBuilder(name, mode string) ArgumentBuilder
}

// ArgumentBuilder builds an argument that uses an addressing mode.
type ArgumentBuilder interface {
	ArgumentSetter
	Build() error
}

// CallBuilder builds a single abstract call.
type CallBuilder interface {
	ArgumentSetter
	SetAttribute(key string, values []any)
	SetSituation(situation *Situation)
	Build() (Call, error)
}

// DataGenerator turns abstract sequences into concrete ones.
type DataGenerator interface {
	Generate(seq Sequence) (ConcreteSequence, error)
}

// DefaultGenerator is implemented by generators that can materialize a
// sequence without honoring situations. It is used for sequences that are
// never executed.
type DefaultGenerator interface {
	GenerateDefault(seq Sequence) (ConcreteSequence, error)
}

// Model executes concrete calls and reports control transfers.
type Model interface {
	Execute(call ConcreteCall) error

	// ControlTransferLabel reports the label the last executed call jumped
	// to, if any.
	ControlTransferLabel() (attr.LabelID, bool)
}

// Resetter is implemented by models that keep state between runs. Reset
// returns the model to its initial state.
type Resetter interface {
	Reset()
}
