package dummy

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/sarchlab/progen/attr"
	"github.com/sarchlab/progen/engine"
	"github.com/sarchlab/progen/program"
)

// Situation names understood by the generator.
const (
	// SituationZero makes every random argument zero.
	SituationZero = "zero"
	// SituationOverflow makes random immediates the largest int32.
	SituationOverflow = "overflow"
)

// Concrete is a call with every argument value chosen.
type Concrete struct {
	*Call

	values map[string]int64
	labels map[string]string
}

// Value returns the concrete value of a top-level argument.
func (c *Concrete) Value(name string) (int64, bool) {
	v, ok := c.values[name]
	return v, ok
}

// Values returns a copy of the concrete argument values.
func (c *Concrete) Values() map[string]int64 {
	out := make(map[string]int64, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

// PatchLabel prints the label operand holding argument as target.
func (c *Concrete) PatchLabel(argument string, target attr.LabelID) {
	operand, _, _ := strings.Cut(argument, ".")
	c.labels[operand] = target.UniqueName()
}

// Text renders the call in assembly syntax with label operands printed by
// their unique names.
func (c *Concrete) Text() string {
	return c.desc.Format(c.values, c.labels)
}

// Generator fills random arguments in.
type Generator struct {
	rng    *rng
	logger *slog.Logger
}

// Generate produces a concrete sequence, honoring situations.
func (g *Generator) Generate(seq engine.Sequence) (engine.ConcreteSequence, error) {
	return g.generate(seq, true)
}

// GenerateDefault produces a concrete sequence ignoring situations.
func (g *Generator) GenerateDefault(seq engine.Sequence) (engine.ConcreteSequence, error) {
	return g.generate(seq, false)
}

func (g *Generator) generate(seq engine.Sequence, situations bool) (engine.ConcreteSequence, error) {
	out := make(engine.ConcreteSequence, 0, len(seq))

	for i, c := range seq {
		call, ok := c.(*Call)
		if !ok {
			return nil, fmt.Errorf("call %d: %T is not a dummy call", i, c)
		}

		var s *engine.Situation
		if situations {
			s = call.situation
		}

		concrete, err := g.concretize(call, s)
		if err != nil {
			return nil, fmt.Errorf("call %d (%s): %w", i, call.Name(), err)
		}

		out = append(out, concrete)
	}

	g.logger.Debug("generated sequence", "Calls", len(out), "Situations", situations)

	return out, nil
}

func (g *Generator) concretize(call *Call, s *engine.Situation) (*Concrete, error) {
	if s != nil && s.Name != SituationZero && s.Name != SituationOverflow {
		return nil, fmt.Errorf("unknown situation %s", s.Name)
	}

	values := make(map[string]int64, len(call.args))
	for _, a := range call.args {
		op, _ := call.desc.Operand(a.Name)
		values[a.Name] = g.value(a, op.Kind, s)
	}

	labels := make(map[string]string)
	fixups, err := call.attrs.Fixups()
	if err != nil {
		return nil, err
	}
	for _, f := range fixups {
		operand, _, _ := strings.Cut(f.Argument, ".")
		labels[operand] = f.Label.UniqueName()
	}

	return &Concrete{Call: call, values: values, labels: labels}, nil
}

func (g *Generator) value(a Argument, kind program.OperandKind, s *engine.Situation) int64 {
	switch {
	case a.Mode != "":
		if len(a.Sub) == 0 {
			return 0
		}
		return g.value(a.Sub[0], kind, s)
	case !a.Random:
		return a.Value
	}

	if s != nil && s.Name == SituationZero {
		return 0
	}

	switch kind {
	case program.RegisterOperand:
		return int64(g.rng.upto(program.NumRegisters-1)) + 1
	case program.ImmediateOperand:
		if s != nil && s.Name == SituationOverflow {
			return math.MaxInt32
		}
		v := int64(g.rng.upto(256))
		if g.rng.flipcoin(50) {
			v = -v
		}
		return v
	default:
		return 0
	}
}

// transferLabel returns the label a branch of c jumps to.
func (c *Concrete) transferLabel() (attr.LabelID, error) {
	fixups, err := c.attrs.Fixups()
	if err != nil {
		return attr.LabelID{}, err
	}

	for _, f := range fixups {
		operand, _, _ := strings.Cut(f.Argument, ".")
		if op, ok := c.desc.Operand(operand); ok && op.Kind == program.LabelOperand {
			return f.Label, nil
		}
	}

	return attr.LabelID{}, fmt.Errorf("%s jumps but its target is not a label", c.Name())
}
