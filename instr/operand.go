package instr

import (
	"fmt"
	"strings"
)

// Value is an instruction argument. It is one of Immediate, LabelRef, Nested
// or Deferred.
type Value interface {
	isValue()
	String() string
}

// Immediate is a constant argument.
type Immediate int64

// LabelRef refers to a label by name. Its address is patched in after the
// label is resolved.
type LabelRef string

// Nested is an argument that uses an addressing mode with its own arguments.
type Nested struct {
	Mode string
	Args *Arguments
}

// Deferred leaves the value to the data generator.
type Deferred struct{}

func (Immediate) isValue() {}
func (LabelRef) isValue()  {}
func (Nested) isValue()    {}
func (Deferred) isValue()  {}

func (v Immediate) String() string { return fmt.Sprintf("%d", int64(v)) }
func (v LabelRef) String() string  { return string(v) }
func (Deferred) String() string    { return "_" }

func (v Nested) String() string {
	return fmt.Sprintf("%s(%s)", v.Mode, v.Args)
}

// Mode creates a nested argument for the addressing mode.
func Mode(mode string) Nested {
	return Nested{Mode: mode, Args: NewArguments()}
}

// With adds an argument to the nested mode and returns it.
func (v Nested) With(name string, value Value) Nested {
	v.Args.Set(name, value)
	return v
}

// Arguments is an ordered mapping from argument names to values.
type Arguments struct {
	names  []string
	values map[string]Value
}

// NewArguments creates an empty argument list.
func NewArguments() *Arguments {
	return &Arguments{values: make(map[string]Value)}
}

// Set assigns a value. Re-assigning a name keeps its original position.
func (a *Arguments) Set(name string, value Value) {
	if value == nil {
		panic(fmt.Sprintf("argument %q has no value", name))
	}
	if _, ok := a.values[name]; !ok {
		a.names = append(a.names, name)
	}
	a.values[name] = value
}

// With is Set in fluent form.
func (a *Arguments) With(name string, value Value) *Arguments {
	a.Set(name, value)
	return a
}

// Get returns the value of an argument.
func (a *Arguments) Get(name string) (Value, bool) {
	if a == nil {
		return nil, false
	}
	v, ok := a.values[name]
	return v, ok
}

// Names returns argument names in insertion order.
func (a *Arguments) Names() []string {
	if a == nil {
		return nil
	}
	out := make([]string, len(a.names))
	copy(out, a.names)
	return out
}

// Len returns the number of arguments.
func (a *Arguments) Len() int {
	if a == nil {
		return 0
	}
	return len(a.names)
}

func (a *Arguments) String() string {
	if a == nil {
		return ""
	}
	parts := make([]string, 0, len(a.names))
	for _, n := range a.names {
		parts = append(parts, fmt.Sprintf("%s=%s", n, a.values[n]))
	}
	return strings.Join(parts, ", ")
}
