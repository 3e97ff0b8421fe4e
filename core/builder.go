package core

import (
	"log/slog"

	valgen "github.com/sarchlab/progen/util"
)

// Builder creates template blocks. All blocks created through one Builder,
// including nested ones, draw ids from the same counter, so a Builder is one
// build run.
type Builder struct {
	run *run
}

// NewBuilder creates a builder with a fresh id counter.
func NewBuilder() Builder {
	return Builder{
		run: &run{nextID: valgen.MakeIncreasingGen(0)},
	}
}

// WithIDGen replaces the id counter, e.g. with valgen.MakeAtomicGen when
// several builds must never collide.
func (b Builder) WithIDGen(gen valgen.Gen) Builder {
	if gen == nil {
		panic("id generator is nil")
	}
	b.run = &run{nextID: gen, logger: b.run.logger}
	return b
}

// WithLogger sets the logger used while flattening.
func (b Builder) WithLogger(logger *slog.Logger) Builder {
	b.run = &run{nextID: b.run.nextID, logger: logger}
	return b
}

// Build creates a new root block.
func (b Builder) Build() *Block {
	return b.run.newBlock()
}
