package api

import (
	"io"
	"log/slog"

	"github.com/sarchlab/progen/config"
	"github.com/sarchlab/progen/engine"
	"github.com/sarchlab/progen/executor"
	"github.com/sarchlab/progen/program"
)

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	factory   engine.BlockBuilderFactory
	generator engine.DataGenerator
	model     engine.Model
	isa       *program.ISA

	maxSteps int
	lintMode string
	execLog  io.Writer
	logger   *slog.Logger
}

// MakeDriverBuilder creates a builder with the default step cap that aborts
// on label errors.
func MakeDriverBuilder() DriverBuilder {
	return DriverBuilder{
		maxSteps: executor.DefaultMaxSteps,
		lintMode: config.LintAbort,
	}
}

// WithFactory sets the block and call builder factory.
func (b DriverBuilder) WithFactory(factory engine.BlockBuilderFactory) DriverBuilder {
	b.factory = factory
	return b
}

// WithGenerator sets the data generator.
func (b DriverBuilder) WithGenerator(generator engine.DataGenerator) DriverBuilder {
	b.generator = generator
	return b
}

// WithModel sets the model that executes calls.
func (b DriverBuilder) WithModel(model engine.Model) DriverBuilder {
	b.model = model
	return b
}

// WithISA sets the instruction set templates are validated against. Without
// it, templates are not validated.
func (b DriverBuilder) WithISA(isa *program.ISA) DriverBuilder {
	b.isa = isa
	return b
}

// WithMaxSteps sets the step cap of simulation.
func (b DriverBuilder) WithMaxSteps(n int) DriverBuilder {
	b.maxSteps = n
	return b
}

// WithLintMode sets what happens to label errors found before simulation.
func (b DriverBuilder) WithLintMode(mode string) DriverBuilder {
	b.lintMode = mode
	return b
}

// WithExecutionLog sets where executed calls and jumps are written.
func (b DriverBuilder) WithExecutionLog(w io.Writer) DriverBuilder {
	b.execLog = w
	return b
}

// WithLogger sets the logger.
func (b DriverBuilder) WithLogger(logger *slog.Logger) DriverBuilder {
	b.logger = logger
	return b
}

// WithConfig applies the step cap and lint mode of a configuration.
func (b DriverBuilder) WithConfig(c config.Config) DriverBuilder {
	b.maxSteps = c.MaxSteps
	b.lintMode = c.Lint
	return b
}

// Build creates a driver.
func (b DriverBuilder) Build() Driver {
	if b.factory == nil || b.generator == nil || b.model == nil {
		panic("driver needs a factory, a generator and a model")
	}

	logger := b.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &driverImpl{
		factory:   b.factory,
		generator: b.generator,
		model:     b.model,
		isa:       b.isa,
		maxSteps:  b.maxSteps,
		lintMode:  b.lintMode,
		execLog:   b.execLog,
		logger:    logger,
	}
}
