package dummy

import (
	"fmt"

	"github.com/sarchlab/progen/engine"
)

// Combinator names.
const (
	CombinatorDiagonal = "diagonal"
	CombinatorProduct  = "product"
	CombinatorRandom   = "random"
)

// Compositor names.
const (
	CompositorCatenation = "catenation"
	CompositorRotation   = "rotation"
	CompositorRandom     = "random"
)

type element struct {
	call  engine.Call
	block engine.Block
}

type blockBuilder struct {
	engine *Engine
	policy map[string]any
	items  []element
}

func (b *blockBuilder) SetAttribute(key string, value any) {
	b.policy[key] = value
}

func (b *blockBuilder) AddCall(call engine.Call) {
	b.items = append(b.items, element{call: call})
}

func (b *blockBuilder) AddBlock(block engine.Block) {
	b.items = append(b.items, element{block: block})
}

func (b *blockBuilder) Build() (engine.Block, error) {
	blk := &Block{
		combinator: CombinatorDiagonal,
		compositor: CompositorCatenation,
		items:      b.items,
		rng:        b.engine.rng,
	}

	for key, value := range b.policy {
		switch key {
		case engine.Combinator:
			name, ok := value.(string)
			if !ok || !oneOf(name, CombinatorDiagonal, CombinatorProduct, CombinatorRandom) {
				return nil, fmt.Errorf("unknown combinator %v", value)
			}
			blk.combinator = name
		case engine.Compositor:
			name, ok := value.(string)
			if !ok || !oneOf(name, CompositorCatenation, CompositorRotation, CompositorRandom) {
				return nil, fmt.Errorf("unknown compositor %v", value)
			}
			blk.compositor = name
		case engine.Iterate:
			on, ok := value.(bool)
			if !ok {
				return nil, fmt.Errorf("iterate must be a boolean, got %v", value)
			}
			blk.iterate = on
		default:
			b.engine.logger.Debug("ignoring block attribute", "Key", key)
		}
	}

	return blk, nil
}

func oneOf(s string, options ...string) bool {
	for _, o := range options {
		if s == o {
			return true
		}
	}
	return false
}

// Block expands into sequences. A plain block combines the alternatives of
// its items into tuples with its combinator and merges each tuple into one
// sequence with its compositor. An iterating block yields the alternatives
// of every item one after another.
type Block struct {
	combinator string
	compositor string
	iterate    bool
	items      []element
	rng        *rng
}

// Sequences enumerates the abstract sequences of the block.
func (b *Block) Sequences() ([]engine.Sequence, error) {
	sets := make([][]engine.Sequence, 0, len(b.items))
	for _, it := range b.items {
		if it.call != nil {
			sets = append(sets, []engine.Sequence{{it.call}})
			continue
		}

		seqs, err := it.block.Sequences()
		if err != nil {
			return nil, err
		}
		sets = append(sets, seqs)
	}

	if b.iterate {
		var out []engine.Sequence
		for _, set := range sets {
			out = append(out, set...)
		}
		return out, nil
	}

	for i, set := range sets {
		if len(set) == 0 {
			sets[i] = []engine.Sequence{{}}
		}
	}

	tuples := b.combine(sets)

	out := make([]engine.Sequence, len(tuples))
	for i, tuple := range tuples {
		out[i] = b.compose(tuple)
	}

	return out, nil
}

func (b *Block) combine(sets [][]engine.Sequence) [][]engine.Sequence {
	if len(sets) == 0 {
		return [][]engine.Sequence{{}}
	}

	switch b.combinator {
	case CombinatorProduct:
		tuples := [][]engine.Sequence{{}}
		for _, set := range sets {
			next := make([][]engine.Sequence, 0, len(tuples)*len(set))
			for _, t := range tuples {
				for _, s := range set {
					tuple := append(append([]engine.Sequence(nil), t...), s)
					next = append(next, tuple)
				}
			}
			tuples = next
		}
		return tuples
	default:
		n := 0
		for _, set := range sets {
			n = max(n, len(set))
		}

		tuples := make([][]engine.Sequence, n)
		for i := range tuples {
			tuple := make([]engine.Sequence, len(sets))
			for k, set := range sets {
				if b.combinator == CombinatorRandom {
					tuple[k] = set[b.rng.upto(uint32(len(set)))]
				} else {
					tuple[k] = set[i%len(set)]
				}
			}
			tuples[i] = tuple
		}
		return tuples
	}
}

func (b *Block) compose(tuple []engine.Sequence) engine.Sequence {
	var out engine.Sequence

	switch b.compositor {
	case CompositorRotation:
		for pos := 0; ; pos++ {
			took := false
			for _, s := range tuple {
				if pos < len(s) {
					out = append(out, s[pos])
					took = true
				}
			}
			if !took {
				return out
			}
		}
	case CompositorRandom:
		next := make([]int, len(tuple))
		var open []int
		for i, s := range tuple {
			if len(s) > 0 {
				open = append(open, i)
			}
		}
		for len(open) > 0 {
			pick := int(b.rng.upto(uint32(len(open))))
			i := open[pick]
			out = append(out, tuple[i][next[i]])
			next[i]++
			if next[i] == len(tuple[i]) {
				open = append(open[:pick], open[pick+1:]...)
			}
		}
		return out
	default:
		for _, s := range tuple {
			out = append(out, s...)
		}
		return out
	}
}
