// Package dummy is a small reference implementation of the generation
// engine. It builds blocks with simple combinators and compositors, fills in
// random argument values from a seeded generator, and executes calls on a
// register machine described by a program.ISA.
package dummy

import (
	"log/slog"

	"github.com/sarchlab/progen/engine"
	"github.com/sarchlab/progen/program"
)

// Engine creates block and call builders and the matching data generator
// and model.
type Engine struct {
	isa    *program.ISA
	seed   uint64
	rng    *rng
	logger *slog.Logger
}

// Builder creates engines.
type Builder struct {
	isa    *program.ISA
	seed   uint64
	logger *slog.Logger
}

// MakeBuilder creates a builder using the default ISA and seed 1.
func MakeBuilder() Builder {
	return Builder{
		isa:  program.DefaultISA(),
		seed: 1,
	}
}

// WithISA sets the instruction set.
func (b Builder) WithISA(isa *program.ISA) Builder {
	b.isa = isa
	return b
}

// WithSeed sets the seed of every random choice.
func (b Builder) WithSeed(seed uint64) Builder {
	b.seed = seed
	return b
}

// WithLogger sets the logger.
func (b Builder) WithLogger(logger *slog.Logger) Builder {
	b.logger = logger
	return b
}

// Build creates an engine.
func (b Builder) Build() *Engine {
	logger := b.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		isa:    b.isa,
		seed:   b.seed,
		rng:    newRNG(b.seed),
		logger: logger,
	}
}

// ISA returns the instruction set of the engine.
func (e *Engine) ISA() *program.ISA {
	return e.isa
}

// NewBlockBuilder creates a block builder.
func (e *Engine) NewBlockBuilder() engine.BlockBuilder {
	return &blockBuilder{
		engine: e,
		policy: make(map[string]any),
	}
}

// NewCallBuilder creates a builder for one call of the named instruction.
func (e *Engine) NewCallBuilder(name string) engine.CallBuilder {
	return newCallBuilder(e.isa, name)
}

// Generator creates a data generator. Its random stream is derived from the
// engine seed and independent of block expansion.
func (e *Engine) Generator() *Generator {
	return &Generator{
		rng:    newRNG(e.seed ^ 0x9E3779B9),
		logger: e.logger,
	}
}

// Model creates a register machine with all registers cleared.
func (e *Engine) Model() *Model {
	return NewModel(e.isa)
}
