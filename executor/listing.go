package executor

import (
	"fmt"
	"io"
	"strings"

	"github.com/sarchlab/progen/attr"
	"github.com/sarchlab/progen/engine"
	"github.com/sarchlab/progen/instr"
)

// WriteListing renders concrete sequences as program text. Label
// definitions become "name_1_2:" lines and print-time hooks are evaluated
// around the calls that carry them.
func WriteListing(w io.Writer, seqs []engine.ConcreteSequence) error {
	for i, seq := range seqs {
		if _, err := fmt.Fprintf(w, "// sequence %d\n", i); err != nil {
			return err
		}

		for pos, call := range seq {
			if err := writeCall(w, call); err != nil {
				return fmt.Errorf("sequence %d position %d: %w", i, pos, err)
			}
		}
	}

	return nil
}

// Listing is WriteListing into a string.
func Listing(seqs []engine.ConcreteSequence) (string, error) {
	var sb strings.Builder
	if err := WriteListing(&sb, seqs); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeCall(w io.Writer, call engine.ConcreteCall) error {
	attrs := call.Attributes()

	if err := writeLabels(w, attrs, attr.BackwardLabels); err != nil {
		return err
	}
	if err := writeHooks(w, attrs, attr.BackwardOutput); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\t%s\n", call.Text()); err != nil {
		return err
	}

	if err := writeHooks(w, attrs, attr.ForwardOutput); err != nil {
		return err
	}
	return writeLabels(w, attrs, attr.ForwardLabels)
}

func writeLabels(w io.Writer, attrs *attr.Attributes, key string) error {
	ids, err := attrs.LabelsAt(key)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, err := fmt.Fprintf(w, "%s:\n", id.UniqueName()); err != nil {
			return err
		}
	}
	return nil
}

func writeHooks(w io.Writer, attrs *attr.Attributes, key string) error {
	for _, item := range attrs.Get(key) {
		hook, ok := item.(instr.Hook)
		if !ok {
			return fmt.Errorf("attribute %q: %v (%T) is not a hook", key, item, item)
		}
		out, err := hook.Evaluate()
		if err != nil {
			return fmt.Errorf("hook %s: %w", hook, err)
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}
	return nil
}
