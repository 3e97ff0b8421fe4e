package program

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/sarchlab/progen/engine"
	"github.com/sarchlab/progen/instr"
)

// ParseHCL parses an HCL template. The file body is the root block: its
// attributes are the block policy and its blocks are the items, in order.
//
//	combinator = "product"
//
//	label "start" {}
//
//	instr "beq" {
//	  rs     = 1
//	  rt     = { REG = { i = 2 } }
//	  target = "start"
//	  situation "zero" {}
//	}
//
//	block {
//	  iterate = true
//	  instr "nop" {}
//	}
func ParseHCL(data []byte, source string) (*Template, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(data, source)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse HCL file %s: %w", ErrTemplate, source, diags)
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, templateErrorf("%s: not a native HCL file", source)
	}

	root, err := hclBlock(body)
	if err != nil {
		return nil, err
	}

	return &Template{Source: source, Root: *root}, nil
}

func hclErrorf(r hcl.Range, format string, args ...any) error {
	return templateErrorf("%s: %s", r.String(), fmt.Sprintf(format, args...))
}

// sortedAttributes returns attributes in source order.
func sortedAttributes(body *hclsyntax.Body) []*hclsyntax.Attribute {
	attrs := make([]*hclsyntax.Attribute, 0, len(body.Attributes))
	for _, a := range body.Attributes {
		attrs = append(attrs, a)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].SrcRange.Start.Byte < attrs[j].SrcRange.Start.Byte
	})
	return attrs
}

func hclBlock(body *hclsyntax.Body) (*BlockSpec, error) {
	spec := &BlockSpec{}

	for _, a := range sortedAttributes(body) {
		v, diags := a.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("%w: %w", ErrTemplate, diags)
		}
		goValue, err := ctyToGo(v)
		if err != nil {
			return nil, hclErrorf(a.SrcRange, "policy %s: %v", a.Name, err)
		}
		spec.Policy = append(spec.Policy, PolicyEntry{Key: a.Name, Value: goValue})
	}

	for _, b := range body.Blocks {
		item, err := hclItem(b)
		if err != nil {
			return nil, err
		}
		spec.Items = append(spec.Items, item)
	}

	return spec, nil
}

func hclItem(b *hclsyntax.Block) (ItemSpec, error) {
	it := ItemSpec{Kind: ItemKind(b.Type), Pos: b.DefRange().String()}

	switch it.Kind {
	case ItemBlock:
		if len(b.Labels) != 0 {
			return ItemSpec{}, hclErrorf(b.DefRange(), "block takes no label")
		}
		nested, err := hclBlock(b.Body)
		if err != nil {
			return ItemSpec{}, err
		}
		it.Block = nested
		return it, nil
	case ItemInstruction, ItemLabel, ItemTrace, ItemText:
		if len(b.Labels) != 1 {
			return ItemSpec{}, hclErrorf(b.DefRange(), "%s takes exactly one label", b.Type)
		}
	default:
		return ItemSpec{}, hclErrorf(b.DefRange(), "unknown item %q", b.Type)
	}

	if it.Kind == ItemTrace || it.Kind == ItemText {
		it.Text = b.Labels[0]
	} else {
		it.Name = b.Labels[0]
	}

	if it.Kind != ItemInstruction {
		if len(b.Body.Attributes) != 0 || len(b.Body.Blocks) != 0 {
			return ItemSpec{}, hclErrorf(b.DefRange(), "%s must have an empty body", b.Type)
		}
		return it, nil
	}

	for _, a := range sortedAttributes(b.Body) {
		v, err := hclValue(a.Expr)
		if err != nil {
			return ItemSpec{}, hclErrorf(a.SrcRange, "argument %s: %v", a.Name, err)
		}
		it.Args = append(it.Args, ArgSpec{Name: a.Name, Value: v})
	}

	for _, sub := range b.Body.Blocks {
		if sub.Type != "situation" || len(sub.Labels) != 1 {
			return ItemSpec{}, hclErrorf(sub.DefRange(), "instr only contains situation \"name\" blocks")
		}
		if it.Situation != nil {
			return ItemSpec{}, hclErrorf(sub.DefRange(), "duplicate situation")
		}
		s, err := hclSituation(sub)
		if err != nil {
			return ItemSpec{}, err
		}
		it.Situation = s
	}

	return it, nil
}

// hclValue converts an argument expression. Object constructors are modes,
// written { MODE = { arg = value } }, and keep their item order.
func hclValue(expr hclsyntax.Expression) (instr.Value, error) {
	if obj, ok := expr.(*hclsyntax.ObjectConsExpr); ok {
		if len(obj.Items) != 1 {
			return nil, fmt.Errorf("a mode argument has exactly one mode name")
		}
		mode, err := objectKey(obj.Items[0].KeyExpr)
		if err != nil {
			return nil, err
		}

		inner, ok := obj.Items[0].ValueExpr.(*hclsyntax.ObjectConsExpr)
		if !ok {
			return nil, fmt.Errorf("mode %s needs an object of arguments", mode)
		}

		args := instr.NewArguments()
		for _, item := range inner.Items {
			name, err := objectKey(item.KeyExpr)
			if err != nil {
				return nil, err
			}
			v, err := hclValue(item.ValueExpr)
			if err != nil {
				return nil, err
			}
			args.Set(name, v)
		}

		return instr.Nested{Mode: mode, Args: args}, nil
	}

	v, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}

	goValue, err := ctyToGo(v)
	if err != nil {
		return nil, err
	}

	if f, ok := goValue.(float64); ok {
		return nil, fmt.Errorf("%v is not an integer", f)
	}

	return scalarValue(goValue)
}

func objectKey(expr hclsyntax.Expression) (string, error) {
	v, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	if v.Type() != cty.String {
		return "", fmt.Errorf("object key must be a name")
	}
	return v.AsString(), nil
}

func hclSituation(b *hclsyntax.Block) (*engine.Situation, error) {
	s := &engine.Situation{Name: b.Labels[0]}

	for _, a := range sortedAttributes(b.Body) {
		v, diags := a.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("%w: %w", ErrTemplate, diags)
		}
		goValue, err := ctyToGo(v)
		if err != nil {
			return nil, hclErrorf(a.SrcRange, "situation %s: %v", a.Name, err)
		}
		if s.Params == nil {
			s.Params = make(map[string]any)
		}
		s.Params[a.Name] = goValue
	}

	return s, nil
}

// ctyToGo converts primitive cty values. Whole numbers become int64.
func ctyToGo(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, fmt.Errorf("value is null or unknown")
	}

	switch v.Type() {
	case cty.String:
		return v.AsString(), nil
	case cty.Bool:
		return v.True(), nil
	case cty.Number:
		var i int64
		if err := gocty.FromCtyValue(v, &i); err == nil {
			return i, nil
		}
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, fmt.Errorf("unsupported value of type %s", v.Type().FriendlyName())
	}
}
