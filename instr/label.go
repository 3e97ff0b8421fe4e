package instr

// Label marks a position in a block. It is bound to a neighbouring
// instruction when the block is flattened.
type Label struct {
	Name string
}

func (l Label) String() string {
	return l.Name + ":"
}

// LabelTable maps label names to the id of the block defining them.
type LabelTable map[string]int

// Merge returns a new table holding t overridden by inner.
func (t LabelTable) Merge(inner LabelTable) LabelTable {
	out := make(LabelTable, len(t)+len(inner))
	for k, v := range t {
		out[k] = v
	}
	for k, v := range inner {
		out[k] = v
	}
	return out
}
