package core

import (
	"fmt"
	"log/slog"

	"github.com/sarchlab/progen/engine"
	"github.com/sarchlab/progen/instr"
	valgen "github.com/sarchlab/progen/util"
)

// run is the state shared by all blocks created by one Builder.
type run struct {
	nextID valgen.Gen
	logger *slog.Logger
}

// Policy is an ordered set of block attributes handed to the block builder.
type Policy struct {
	keys   []string
	values map[string]any
}

// Set assigns a policy value, keeping the position of existing keys.
func (p *Policy) Set(key string, value any) {
	if p.values == nil {
		p.values = make(map[string]any)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns a policy value.
func (p *Policy) Get(key string) (any, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Keys returns policy keys in insertion order.
func (p *Policy) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Block is an ordered container of instructions, labels, hooks and nested
// blocks.
type Block struct {
	id     int
	items  []any
	policy Policy
	labels instr.LabelTable
	parent *Block
	run    *run
}

// ID returns the block id, unique within its build run.
func (b *Block) ID() int {
	return b.id
}

// Items returns the block items in source order.
func (b *Block) Items() []any {
	out := make([]any, len(b.items))
	copy(out, b.items)
	return out
}

// Policy returns the block policy.
func (b *Block) Policy() *Policy {
	return &b.policy
}

// Labels returns the labels defined directly in this block.
func (b *Block) Labels() instr.LabelTable {
	return instr.LabelTable{}.Merge(b.labels)
}

// SetPolicy sets a policy entry such as the compositor or combinator.
func (b *Block) SetPolicy(key string, value any) *Block {
	b.policy.Set(key, value)
	return b
}

// Compositor sets how instructions of combined sequences are interleaved.
func (b *Block) Compositor(name string) *Block {
	return b.SetPolicy(engine.Compositor, name)
}

// Combinator sets how the sequences of nested blocks are combined.
func (b *Block) Combinator(name string) *Block {
	return b.SetPolicy(engine.Combinator, name)
}

// Iterate makes each item of the block a separate alternative.
func (b *Block) Iterate() *Block {
	return b.SetPolicy(engine.Iterate, true)
}

// Add appends an item. Items must be *instr.Instruction, instr.Label,
// instr.Hook or *Block. A block can be added to one parent only and never
// to a block nested in it.
func (b *Block) Add(item any) *Block {
	switch it := item.(type) {
	case *instr.Instruction:
		it.BlockID = b.id
	case instr.Label:
		b.labels[it.Name] = b.id
	case instr.Hook:
	case *Block:
		if it.parent != nil {
			panic(fmt.Sprintf("block %d already belongs to block %d", it.id, it.parent.id))
		}
		if it.contains(b) {
			panic(fmt.Sprintf("block %d cannot contain itself", it.id))
		}
		it.parent = b
	default:
		panic(fmt.Sprintf("unsupported block item %T", item))
	}

	b.items = append(b.items, item)

	return b
}

// Instruction adds a new instruction and returns it for argument setup.
func (b *Block) Instruction(name string) *instr.Instruction {
	i := instr.New(name)
	b.Add(i)
	return i
}

// Label adds a label.
func (b *Block) Label(name string) *Block {
	return b.Add(instr.Label{Name: name})
}

// Trace adds a text hook evaluated during simulation.
func (b *Block) Trace(text string) *Block {
	return b.Add(instr.Text(text, true))
}

// Text adds a text hook evaluated when the listing is printed.
func (b *Block) Text(text string) *Block {
	return b.Add(instr.Text(text, false))
}

// Block creates a nested block, lets fill populate it, and adds it.
func (b *Block) Block(fill func(nested *Block)) *Block {
	nested := b.run.newBlock()
	if fill != nil {
		fill(nested)
	}
	b.Add(nested)
	return nested
}

func (b *Block) contains(other *Block) bool {
	if b == other {
		return true
	}
	for _, item := range b.items {
		if sub, ok := item.(*Block); ok && sub.contains(other) {
			return true
		}
	}
	return false
}

func (r *run) newBlock() *Block {
	return &Block{
		id:     r.nextID(),
		labels: make(instr.LabelTable),
		run:    r,
	}
}
