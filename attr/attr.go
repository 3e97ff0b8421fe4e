// Package attr defines the attribute and label bookkeeping shared by the
// flattener and the execution simulator. Flattening writes label bindings and
// hooks into call attributes; simulation reads them back.
package attr

import (
	"fmt"
	"sort"
)

// Well-known attribute keys.
const (
	// ForwardLabels holds labels written right after an instruction. They mark
	// the position following it.
	ForwardLabels = "f_labels"
	// BackwardLabels holds labels written before an instruction when no
	// instruction preceded them. They mark the position of the instruction.
	BackwardLabels = "b_labels"
	// ForwardRuntime and BackwardRuntime hold hooks evaluated during
	// simulation, after and before the instruction respectively.
	ForwardRuntime  = "f_runtime"
	BackwardRuntime = "b_runtime"
	// ForwardOutput and BackwardOutput hold hooks evaluated when the program
	// listing is rendered.
	ForwardOutput  = "f_output"
	BackwardOutput = "b_output"
	// Labels holds the label fix-ups of the instruction's arguments.
	Labels = "labels"
)

// WellKnown lists the keys every Attributes value carries from creation.
var WellKnown = []string{
	ForwardLabels,
	BackwardLabels,
	ForwardRuntime,
	BackwardRuntime,
	ForwardOutput,
	BackwardOutput,
	Labels,
}

// Attributes maps attribute names to ordered lists. Lists only grow.
type Attributes struct {
	keys   []string
	values map[string][]any
}

// New creates attributes with every well-known list present and empty.
func New() *Attributes {
	a := &Attributes{values: make(map[string][]any)}
	for _, k := range WellKnown {
		a.ensure(k)
	}
	return a
}

func (a *Attributes) ensure(key string) {
	if _, ok := a.values[key]; ok {
		return
	}
	a.keys = append(a.keys, key)
	a.values[key] = []any{}
}

// Append adds items to the end of the named list, creating it if needed.
func (a *Attributes) Append(key string, items ...any) {
	a.ensure(key)
	a.values[key] = append(a.values[key], items...)
}

// Get returns a copy of the named list. Unknown keys yield an empty list.
func (a *Attributes) Get(key string) []any {
	if a == nil {
		return []any{}
	}
	list := a.values[key]
	out := make([]any, len(list))
	copy(out, list)
	return out
}

// Has reports whether the key was ever created.
func (a *Attributes) Has(key string) bool {
	if a == nil {
		return false
	}
	_, ok := a.values[key]
	return ok
}

// Keys returns the attribute keys in creation order.
func (a *Attributes) Keys() []string {
	if a == nil {
		return nil
	}
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// Len returns the length of the named list.
func (a *Attributes) Len(key string) int {
	if a == nil {
		return 0
	}
	return len(a.values[key])
}

// LabelsAt returns the label identities stored under key.
func (a *Attributes) LabelsAt(key string) ([]LabelID, error) {
	list := a.Get(key)
	out := make([]LabelID, 0, len(list))
	for _, item := range list {
		id, ok := item.(LabelID)
		if !ok {
			return nil, fmt.Errorf("attribute %q: %v (%T) is not a label", key, item, item)
		}
		out = append(out, id)
	}
	return out, nil
}

// Fixups returns the label fix-ups stored under Labels.
func (a *Attributes) Fixups() ([]LabelFixup, error) {
	list := a.Get(Labels)
	out := make([]LabelFixup, 0, len(list))
	for _, item := range list {
		f, ok := item.(LabelFixup)
		if !ok {
			return nil, fmt.Errorf("attribute %q: %v (%T) is not a label fix-up", Labels, item, item)
		}
		out = append(out, f)
	}
	return out, nil
}

// String renders non-empty lists, sorted by key, for logs.
func (a *Attributes) String() string {
	if a == nil {
		return "{}"
	}
	keys := make([]string, 0, len(a.keys))
	for _, k := range a.keys {
		if len(a.values[k]) > 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	s := "{"
	for i, k := range keys {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%s:%v", k, a.values[k])
	}
	return s + "}"
}
