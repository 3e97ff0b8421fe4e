package instr

import (
	"errors"
	"fmt"

	"github.com/sarchlab/progen/attr"
	"github.com/sarchlab/progen/engine"
)

// ErrConsumed is returned when an instruction is built a second time.
var ErrConsumed = errors.New("instruction already built")

// Instruction describes one instruction call of a template.
type Instruction struct {
	Name       string
	Arguments  *Arguments
	Attributes *attr.Attributes
	Situation  *engine.Situation

	// BlockID is the id of the block that directly contains the instruction.
	BlockID int

	built bool
}

// New creates an instruction without arguments.
func New(name string) *Instruction {
	return &Instruction{
		Name:       name,
		Arguments:  NewArguments(),
		Attributes: attr.New(),
	}
}

// Arg sets an argument and returns the instruction.
func (i *Instruction) Arg(name string, value Value) *Instruction {
	i.Arguments.Set(name, value)
	return i
}

// WithSituation attaches a test situation.
func (i *Instruction) WithSituation(s engine.Situation) *Instruction {
	i.Situation = &s
	return i
}

// AddToAttribute appends an item to the named attribute list.
func (i *Instruction) AddToAttribute(key string, item any) {
	i.Attributes.Append(key, item)
}

// Built reports whether Build has consumed the instruction.
func (i *Instruction) Built() bool {
	return i.built
}

func (i *Instruction) String() string {
	if i.Arguments.Len() == 0 {
		return i.Name
	}
	return fmt.Sprintf("%s %s", i.Name, i.Arguments)
}

// Build turns the instruction into an engine call. Label references become
// zero placeholders plus fix-ups recorded under the labels attribute. The
// instruction cannot be built again afterwards.
func (i *Instruction) Build(
	cb engine.CallBuilder,
	scope attr.ScopePath,
) (engine.Call, error) {
	if i.built {
		return nil, fmt.Errorf("%s: %w", i.Name, ErrConsumed)
	}
	i.built = true

	err := i.setArguments(cb, i.Arguments, "", scope)
	if err != nil {
		return nil, fmt.Errorf("instruction %s: %w", i.Name, err)
	}

	for _, key := range i.Attributes.Keys() {
		cb.SetAttribute(key, i.Attributes.Get(key))
	}

	if i.Situation != nil {
		cb.SetSituation(i.Situation)
	}

	return cb.Build()
}

func (i *Instruction) setArguments(
	s engine.ArgumentSetter,
	args *Arguments,
	prefix string,
	scope attr.ScopePath,
) error {
	for _, name := range args.Names() {
		value, _ := args.Get(name)

		switch v := value.(type) {
		case Immediate:
			s.SetArgumentImmediate(name, int64(v))
		case LabelRef:
			s.SetArgumentImmediate(name, 0)
			i.Attributes.Append(attr.Labels, attr.LabelFixup{
				Label:    attr.LabelID{Name: string(v), Scope: scope},
				Argument: prefix + name,
			})
		case Nested:
			ab := s.SetArgumentUsingBuilder(name, v.Mode)
			err := i.setArguments(ab, v.Args, prefix+name+".", scope)
			if err != nil {
				return err
			}
			if err := ab.Build(); err != nil {
				return fmt.Errorf("argument %s%s (%s): %w", prefix, name, v.Mode, err)
			}
		case Deferred:
			s.SetArgumentRandom(name)
		default:
			return fmt.Errorf("argument %s%s: unsupported value %T", prefix, name, value)
		}
	}

	return nil
}
