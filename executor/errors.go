package executor

import (
	"fmt"

	"github.com/sarchlab/progen/attr"
)

// UnresolvedLabelError is returned when control is transferred to a label
// that no sequence defines.
type UnresolvedLabelError struct {
	Label attr.LabelID

	// Sequence is the index of the sequence that performed the jump.
	Sequence int
}

func (e *UnresolvedLabelError) Error() string {
	return fmt.Sprintf("label %q (scope %s) is not defined, jump from sequence %d",
		e.Label.Name, e.Label.Scope, e.Sequence)
}

// DuplicateLabelError is returned when one sequence defines the same label
// in the same scope twice.
type DuplicateLabelError struct {
	Label    attr.LabelID
	Sequence int
	First    int
	Second   int
}

func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("label %s defined twice in sequence %d (positions %d and %d)",
		e.Label.UniqueName(), e.Sequence, e.First, e.Second)
}

// StepLimitError is returned when simulation does not finish within the
// configured number of executed calls.
type StepLimitError struct {
	MaxSteps int
}

func (e *StepLimitError) Error() string {
	return fmt.Sprintf("simulation exceeded %d steps, control flow may be cyclic", e.MaxSteps)
}
