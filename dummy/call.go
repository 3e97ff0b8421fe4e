package dummy

import (
	"fmt"
	"strings"

	"github.com/sarchlab/progen/attr"
	"github.com/sarchlab/progen/engine"
	"github.com/sarchlab/progen/program"
)

// Argument is an argument of an abstract call. Mode arguments hold their
// sub-arguments; their value is the value of the first one.
type Argument struct {
	Name   string
	Value  int64
	Random bool
	Mode   string
	Sub    []Argument
}

func (a Argument) String() string {
	switch {
	case a.Mode != "":
		parts := make([]string, len(a.Sub))
		for i, s := range a.Sub {
			parts[i] = s.String()
		}
		return fmt.Sprintf("%s=%s(%s)", a.Name, a.Mode, strings.Join(parts, ", "))
	case a.Random:
		return a.Name + "=?"
	default:
		return fmt.Sprintf("%s=%d", a.Name, a.Value)
	}
}

// Call is an abstract call of the reference engine.
type Call struct {
	desc      program.Descriptor
	args      []Argument
	attrs     *attr.Attributes
	situation *engine.Situation
}

// Name returns the instruction name.
func (c *Call) Name() string {
	return c.desc.Name
}

// Attributes returns the attribute lists set by the flattener.
func (c *Call) Attributes() *attr.Attributes {
	return c.attrs
}

// Arguments returns the arguments in the order they were set.
func (c *Call) Arguments() []Argument {
	return append([]Argument(nil), c.args...)
}

// Situation returns the attached situation, if any.
func (c *Call) Situation() *engine.Situation {
	return c.situation
}

func (c *Call) String() string {
	parts := make([]string, len(c.args))
	for i, a := range c.args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.desc.Name, strings.Join(parts, ", "))
}

// argumentList collects arguments for calls and modes alike.
type argumentList struct {
	isa  *program.ISA
	args []Argument
}

func (l *argumentList) SetArgumentImmediate(name string, value int64) {
	l.args = append(l.args, Argument{Name: name, Value: value})
}

func (l *argumentList) SetArgumentRandom(name string) {
	l.args = append(l.args, Argument{Name: name, Random: true})
}

func (l *argumentList) SetArgumentUsingBuilder(name, mode string) engine.ArgumentBuilder {
	return &argumentBuilder{
		argumentList: argumentList{isa: l.isa},
		name:         name,
		mode:         mode,
		parent:       l,
	}
}

type argumentBuilder struct {
	argumentList

	name   string
	mode   string
	parent *argumentList
}

func (b *argumentBuilder) Build() error {
	want, ok := b.isa.Mode(b.mode)
	if !ok {
		return fmt.Errorf("unknown mode %s", b.mode)
	}
	if len(b.args) != len(want) {
		return fmt.Errorf("mode %s takes %v, got %d arguments", b.mode, want, len(b.args))
	}

	b.parent.args = append(b.parent.args, Argument{
		Name: b.name,
		Mode: b.mode,
		Sub:  b.args,
	})

	return nil
}

type callBuilder struct {
	argumentList

	name      string
	attrs     *attr.Attributes
	situation *engine.Situation
}

func newCallBuilder(isa *program.ISA, name string) *callBuilder {
	return &callBuilder{
		argumentList: argumentList{isa: isa},
		name:         name,
		attrs:        attr.New(),
	}
}

func (b *callBuilder) SetAttribute(key string, values []any) {
	b.attrs.Append(key, values...)
}

func (b *callBuilder) SetSituation(situation *engine.Situation) {
	b.situation = situation
}

func (b *callBuilder) Build() (engine.Call, error) {
	desc, ok := b.isa.Lookup(b.name)
	if !ok {
		return nil, fmt.Errorf("unknown instruction %s", b.name)
	}

	for _, a := range b.args {
		if _, ok := desc.Operand(a.Name); !ok {
			return nil, fmt.Errorf("%s has no operand %s", b.name, a.Name)
		}
	}

	return &Call{
		desc:      desc,
		args:      b.args,
		attrs:     b.attrs,
		situation: b.situation,
	}, nil
}
