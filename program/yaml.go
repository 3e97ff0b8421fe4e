package program

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/progen/engine"
	"github.com/sarchlab/progen/instr"
)

// ParseYAML parses a YAML template. The document holds a single "block"
// mapping. Mapping order is significant, so the document is walked as
// yaml.Node values instead of being decoded into maps.
//
//	block:
//	  combinator: product
//	  items:
//	    - label: start
//	    - instr: beq
//	      args: {rs: 1, rt: {REG: {i: 2}}, target: start}
//	    - trace: reached
//	    - block: {iterate: true, items: [...]}
func ParseYAML(data []byte, source string) (*Template, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplate, source, err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, templateErrorf("%s: empty document", source)
	}

	p := yamlParser{source: source}

	top := doc.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, p.errorf(top, "top level must be a mapping")
	}

	var root *yaml.Node
	for i := 0; i < len(top.Content); i += 2 {
		key, value := top.Content[i], top.Content[i+1]
		if key.Value != "block" {
			return nil, p.errorf(key, "unknown top-level key %q", key.Value)
		}
		root = value
	}
	if root == nil {
		return nil, templateErrorf("%s: missing top-level block", source)
	}

	spec, err := p.block(root)
	if err != nil {
		return nil, err
	}

	return &Template{Source: source, Root: *spec}, nil
}

type yamlParser struct {
	source string
}

func (p yamlParser) errorf(n *yaml.Node, format string, args ...any) error {
	return templateErrorf("%s:%d: %s", p.source, n.Line, fmt.Sprintf(format, args...))
}

func (p yamlParser) pos(n *yaml.Node) string {
	return fmt.Sprintf("%s:%d", p.source, n.Line)
}

func (p yamlParser) block(n *yaml.Node) (*BlockSpec, error) {
	if n.Kind != yaml.MappingNode {
		return nil, p.errorf(n, "block must be a mapping")
	}

	spec := &BlockSpec{}
	for i := 0; i < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]

		if key.Value != "items" {
			var v any
			if err := value.Decode(&v); err != nil {
				return nil, p.errorf(value, "policy %s: %v", key.Value, err)
			}
			spec.Policy = append(spec.Policy, PolicyEntry{Key: key.Value, Value: widen(v)})
			continue
		}

		if value.Kind != yaml.SequenceNode {
			return nil, p.errorf(value, "items must be a list")
		}
		for _, itemNode := range value.Content {
			item, err := p.item(itemNode)
			if err != nil {
				return nil, err
			}
			spec.Items = append(spec.Items, item)
		}
	}

	return spec, nil
}

func (p yamlParser) item(n *yaml.Node) (ItemSpec, error) {
	if n.Kind != yaml.MappingNode {
		return ItemSpec{}, p.errorf(n, "item must be a mapping")
	}

	it := ItemSpec{Pos: p.pos(n)}
	var argsNode, situationNode *yaml.Node

	for i := 0; i < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		switch key.Value {
		case "instr", "label", "trace", "text":
			if it.Kind != "" {
				return ItemSpec{}, p.errorf(key, "item is both %s and %s", it.Kind, key.Value)
			}
			it.Kind = ItemKind(key.Value)
			if value.Kind != yaml.ScalarNode {
				return ItemSpec{}, p.errorf(value, "%s must be a string", key.Value)
			}
			if it.Kind == ItemTrace || it.Kind == ItemText {
				it.Text = value.Value
			} else {
				it.Name = value.Value
			}
		case "block":
			if it.Kind != "" {
				return ItemSpec{}, p.errorf(key, "item is both %s and block", it.Kind)
			}
			it.Kind = ItemBlock
			b, err := p.block(value)
			if err != nil {
				return ItemSpec{}, err
			}
			it.Block = b
		case "args":
			argsNode = value
		case "situation":
			situationNode = value
		default:
			return ItemSpec{}, p.errorf(key, "unknown item key %q", key.Value)
		}
	}

	if it.Kind == "" {
		return ItemSpec{}, p.errorf(n, "item has no kind")
	}

	if (argsNode != nil || situationNode != nil) && it.Kind != ItemInstruction {
		return ItemSpec{}, p.errorf(n, "only instructions take args and situations")
	}

	if argsNode != nil {
		args, err := p.args(argsNode)
		if err != nil {
			return ItemSpec{}, err
		}
		for _, name := range args.Names() {
			v, _ := args.Get(name)
			it.Args = append(it.Args, ArgSpec{Name: name, Value: v})
		}
	}

	if situationNode != nil {
		s, err := p.situation(situationNode)
		if err != nil {
			return ItemSpec{}, err
		}
		it.Situation = s
	}

	return it, nil
}

func (p yamlParser) args(n *yaml.Node) (*instr.Arguments, error) {
	if n.Kind != yaml.MappingNode {
		return nil, p.errorf(n, "args must be a mapping")
	}

	args := instr.NewArguments()
	for i := 0; i < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		v, err := p.value(value)
		if err != nil {
			return nil, err
		}
		args.Set(key.Value, v)
	}

	return args, nil
}

func (p yamlParser) value(n *yaml.Node) (instr.Value, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		var raw any
		if n.Tag == "!!int" {
			var i int64
			if err := n.Decode(&i); err != nil {
				return nil, p.errorf(n, "%v", err)
			}
			raw = i
		} else {
			raw = n.Value
		}
		v, err := scalarValue(raw)
		if err != nil {
			return nil, p.errorf(n, "%v", err)
		}
		return v, nil
	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return nil, p.errorf(n, "a mode argument has exactly one mode name")
		}
		sub, err := p.args(n.Content[1])
		if err != nil {
			return nil, err
		}
		return instr.Nested{Mode: n.Content[0].Value, Args: sub}, nil
	default:
		return nil, p.errorf(n, "unsupported argument")
	}
}

func (p yamlParser) situation(n *yaml.Node) (*engine.Situation, error) {
	var raw struct {
		Name   string         `yaml:"name"`
		Params map[string]any `yaml:"params"`
	}
	if err := n.Decode(&raw); err != nil {
		return nil, p.errorf(n, "situation: %v", err)
	}
	if raw.Name == "" {
		return nil, p.errorf(n, "situation without a name")
	}
	for k, v := range raw.Params {
		raw.Params[k] = widen(v)
	}
	return &engine.Situation{Name: raw.Name, Params: raw.Params}, nil
}

// widen turns int into int64 so that YAML and HCL templates decode to the
// same values.
func widen(v any) any {
	if i, ok := v.(int); ok {
		return int64(i)
	}
	return v
}
