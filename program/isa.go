// Package program holds the instruction set registry and the declarative
// template loaders.
package program

import (
	"fmt"
	"sort"
	"strings"
)

// OperandKind tells what an instruction operand holds.
type OperandKind int

const (
	RegisterOperand OperandKind = iota
	ImmediateOperand
	LabelOperand
)

func (k OperandKind) String() string {
	switch k {
	case RegisterOperand:
		return "register"
	case ImmediateOperand:
		return "immediate"
	case LabelOperand:
		return "label"
	default:
		return fmt.Sprintf("OperandKind(%d)", int(k))
	}
}

// Operand is one named operand of an instruction.
type Operand struct {
	Name string
	Kind OperandKind
}

// State is the machine state instruction behaviors act on.
type State interface {
	Reg(i int64) int64
	SetReg(i int64, v int64)
}

// Behavior executes an instruction on a state. It returns true when the
// instruction transfers control to its label operand.
type Behavior func(s State, args map[string]int64) (taken bool)

// Descriptor describes the shape and the behavior of one instruction.
type Descriptor struct {
	Name     string
	Operands []Operand
	Behavior Behavior
}

// Operand finds an operand by name.
func (d Descriptor) Operand(name string) (Operand, bool) {
	for _, o := range d.Operands {
		if o.Name == name {
			return o, true
		}
	}
	return Operand{}, false
}

// Branch reports whether the instruction has a label operand.
func (d Descriptor) Branch() bool {
	for _, o := range d.Operands {
		if o.Kind == LabelOperand {
			return true
		}
	}
	return false
}

// Format renders the instruction in assembly syntax. Label operands are
// printed from labels when present.
func (d Descriptor) Format(values map[string]int64, labels map[string]string) string {
	if len(d.Operands) == 0 {
		return d.Name
	}

	parts := make([]string, 0, len(d.Operands))
	for _, o := range d.Operands {
		switch o.Kind {
		case RegisterOperand:
			parts = append(parts, fmt.Sprintf("r%d", values[o.Name]))
		case ImmediateOperand:
			parts = append(parts, fmt.Sprintf("%d", values[o.Name]))
		case LabelOperand:
			if l, ok := labels[o.Name]; ok {
				parts = append(parts, l)
			} else {
				parts = append(parts, fmt.Sprintf("%d", values[o.Name]))
			}
		}
	}

	return d.Name + " " + strings.Join(parts, ", ")
}

// ISA is a struct that represents an Instruction Set Architecture.
type ISA struct {
	// name of the ISA.
	isaName string
	// map from instruction name to the descriptor of the instruction.
	nameToDescriptor map[string]Descriptor
	// map from addressing mode name to its sub-argument names.
	modes map[string][]string
}

// Constructor for ISA.
func NewISA(name string) *ISA {
	return &ISA{
		isaName:          name,
		nameToDescriptor: make(map[string]Descriptor),
		modes:            make(map[string][]string),
	}
}

// Name returns the ISA name.
func (isa *ISA) Name() string {
	return isa.isaName
}

// RegisterNewInst adds an instruction to the ISA.
func (isa *ISA) RegisterNewInst(d Descriptor) {
	if d.Name == "" {
		panic("instruction name is empty")
	}
	isa.nameToDescriptor[d.Name] = d
}

// RegisterMode adds an addressing mode with the names of its sub-arguments.
// The value of a mode argument is the value of its first sub-argument.
func (isa *ISA) RegisterMode(name string, args ...string) {
	if len(args) == 0 {
		panic(fmt.Sprintf("mode %s has no arguments", name))
	}
	isa.modes[name] = args
}

// Lookup finds an instruction.
func (isa *ISA) Lookup(name string) (Descriptor, bool) {
	d, ok := isa.nameToDescriptor[name]
	return d, ok
}

// Mode finds an addressing mode.
func (isa *ISA) Mode(name string) ([]string, bool) {
	args, ok := isa.modes[name]
	return args, ok
}

// Names lists the instruction names, sorted.
func (isa *ISA) Names() []string {
	names := make([]string, 0, len(isa.nameToDescriptor))
	for n := range isa.nameToDescriptor {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
