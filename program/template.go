package program

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sarchlab/progen/core"
	"github.com/sarchlab/progen/engine"
	"github.com/sarchlab/progen/instr"
)

// ErrTemplate marks errors caused by the content of a template.
var ErrTemplate = errors.New("template error")

func templateErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrTemplate, fmt.Sprintf(format, args...))
}

// ItemKind tells what a template item is.
type ItemKind string

const (
	ItemInstruction ItemKind = "instr"
	ItemLabel       ItemKind = "label"
	ItemTrace       ItemKind = "trace"
	ItemText        ItemKind = "text"
	ItemBlock       ItemKind = "block"
)

// PolicyEntry is one block policy setting.
type PolicyEntry struct {
	Key   string
	Value any
}

// ArgSpec is one instruction argument.
type ArgSpec struct {
	Name  string
	Value instr.Value
}

// ItemSpec is one block item. Which fields are used depends on Kind.
type ItemSpec struct {
	Kind      ItemKind
	Name      string
	Args      []ArgSpec
	Situation *engine.Situation
	Text      string
	Block     *BlockSpec

	// Pos locates the item in its source file, for messages.
	Pos string
}

// BlockSpec is a declarative description of a block.
type BlockSpec struct {
	Policy []PolicyEntry
	Items  []ItemSpec
}

// Template is a parsed template file.
type Template struct {
	Source string
	Root   BlockSpec
}

// LoadTemplateFile parses a YAML (.yaml, .yml) or HCL (.hcl) template.
func LoadTemplateFile(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template: %w", err)
	}

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return ParseYAML(data, path)
	case ".hcl":
		return ParseHCL(data, path)
	default:
		return nil, templateErrorf("%s: unknown template format %q", path, filepath.Ext(path))
	}
}

// Validate checks instructions and arguments against the ISA. All problems
// are reported together.
func (t *Template) Validate(isa *ISA) error {
	var errs []error
	validateBlock(&t.Root, isa, &errs)
	return errors.Join(errs...)
}

func validateBlock(b *BlockSpec, isa *ISA, errs *[]error) {
	for i := range b.Items {
		it := &b.Items[i]
		switch it.Kind {
		case ItemInstruction:
			if err := validateInstruction(it, isa); err != nil {
				*errs = append(*errs, err)
			}
		case ItemBlock:
			validateBlock(it.Block, isa, errs)
		case ItemLabel:
			if it.Name == "" {
				*errs = append(*errs, templateErrorf("%s: label without a name", it.Pos))
			}
		}
	}
}

func validateInstruction(it *ItemSpec, isa *ISA) error {
	d, ok := isa.Lookup(it.Name)
	if !ok {
		return templateErrorf("%s: unknown instruction %q", it.Pos, it.Name)
	}

	given := make(map[string]bool, len(it.Args))
	for _, a := range it.Args {
		op, ok := d.Operand(a.Name)
		if !ok {
			return templateErrorf("%s: %s has no operand %q", it.Pos, it.Name, a.Name)
		}
		if err := validateValue(op, a.Value, isa); err != nil {
			return templateErrorf("%s: %s operand %s: %v", it.Pos, it.Name, a.Name, err)
		}
		given[a.Name] = true
	}

	for _, op := range d.Operands {
		if !given[op.Name] {
			return templateErrorf("%s: %s is missing operand %q", it.Pos, it.Name, op.Name)
		}
	}

	return nil
}

func validateValue(op Operand, v instr.Value, isa *ISA) error {
	switch val := v.(type) {
	case instr.LabelRef:
		if op.Kind != LabelOperand {
			return fmt.Errorf("label %q given for a %s", string(val), op.Kind)
		}
	case instr.Immediate:
		if op.Kind == LabelOperand {
			return fmt.Errorf("label operand needs a label name")
		}
		if op.Kind == RegisterOperand && (val < 0 || val >= NumRegisters) {
			return fmt.Errorf("register %d out of range", int64(val))
		}
	case instr.Deferred:
		if op.Kind == LabelOperand {
			return fmt.Errorf("label operand cannot be random")
		}
	case instr.Nested:
		if op.Kind == LabelOperand {
			return fmt.Errorf("label operand cannot use mode %s", val.Mode)
		}
		want, ok := isa.Mode(val.Mode)
		if !ok {
			return fmt.Errorf("unknown mode %s", val.Mode)
		}
		if val.Args == nil || val.Args.Len() != len(want) {
			return fmt.Errorf("mode %s takes %v", val.Mode, want)
		}
		for _, name := range want {
			sub, ok := val.Args.Get(name)
			if !ok {
				return fmt.Errorf("mode %s is missing %s", val.Mode, name)
			}
			if err := validateValue(Operand{Name: name, Kind: op.Kind}, sub, isa); err != nil {
				return err
			}
		}
	}

	return nil
}

// Build creates the block tree with the given builder.
func (t *Template) Build(b core.Builder) *core.Block {
	root := b.Build()
	buildBlock(root, &t.Root)
	return root
}

func buildBlock(dst *core.Block, spec *BlockSpec) {
	for _, p := range spec.Policy {
		dst.SetPolicy(p.Key, p.Value)
	}

	for i := range spec.Items {
		it := &spec.Items[i]
		switch it.Kind {
		case ItemInstruction:
			in := dst.Instruction(it.Name)
			for _, a := range it.Args {
				in.Arg(a.Name, a.Value)
			}
			if it.Situation != nil {
				in.WithSituation(*it.Situation)
			}
		case ItemLabel:
			dst.Label(it.Name)
		case ItemTrace:
			dst.Trace(it.Text)
		case ItemText:
			dst.Text(it.Text)
		case ItemBlock:
			dst.Block(func(nested *core.Block) {
				buildBlock(nested, it.Block)
			})
		}
	}
}

// scalarValue converts a decoded scalar into an argument value. Integers
// are immediates, "_" asks for a random value and other strings are label
// references.
func scalarValue(v any) (instr.Value, error) {
	switch x := v.(type) {
	case int:
		return instr.Immediate(x), nil
	case int64:
		return instr.Immediate(x), nil
	case string:
		if x == "_" {
			return instr.Deferred{}, nil
		}
		if x == "" {
			return nil, fmt.Errorf("empty label name")
		}
		return instr.LabelRef(x), nil
	default:
		return nil, fmt.Errorf("unsupported argument %v (%T)", v, v)
	}
}
