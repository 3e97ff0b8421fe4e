package executor

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/sarchlab/progen/attr"
	"github.com/sarchlab/progen/engine"
)

// Location is a resume point: a sequence index and a call position in it.
// Position may equal the sequence length, meaning the end of the sequence.
type Location struct {
	Sequence int
	Position int
}

func (l Location) String() string {
	return fmt.Sprintf("(%d, %d)", l.Sequence, l.Position)
}

type definition struct {
	label attr.LabelID
	at    Location
}

// LabelTable maps label identities to the locations they mark. It is built
// once per simulation run by scanning every sequence.
type LabelTable struct {
	byKey  map[string][]definition
	byName map[string][]definition
	logger *slog.Logger
}

// NewLabelTable scans the label attributes of every call. Forward labels
// mark the position after their call, backward labels the call itself.
func NewLabelTable(seqs []engine.Sequence, logger *slog.Logger) (*LabelTable, error) {
	if logger == nil {
		logger = slog.Default()
	}

	t := &LabelTable{
		byKey:  make(map[string][]definition),
		byName: make(map[string][]definition),
		logger: logger,
	}

	for s, seq := range seqs {
		seen := make(map[string]int)
		for pos, call := range seq {
			attrs := call.Attributes()

			backward, err := attrs.LabelsAt(attr.BackwardLabels)
			if err != nil {
				return nil, fmt.Errorf("sequence %d position %d: %w", s, pos, err)
			}
			forward, err := attrs.LabelsAt(attr.ForwardLabels)
			if err != nil {
				return nil, fmt.Errorf("sequence %d position %d: %w", s, pos, err)
			}

			for _, id := range backward {
				if err := t.add(seen, id, Location{s, pos}); err != nil {
					return nil, err
				}
			}
			for _, id := range forward {
				if err := t.add(seen, id, Location{s, pos + 1}); err != nil {
					return nil, err
				}
			}
		}
	}

	return t, nil
}

func (t *LabelTable) add(seen map[string]int, id attr.LabelID, at Location) error {
	key := id.Key()
	if first, ok := seen[key]; ok {
		return &DuplicateLabelError{
			Label:    id,
			Sequence: at.Sequence,
			First:    first,
			Second:   at.Position,
		}
	}
	seen[key] = at.Position

	d := definition{label: id, at: at}
	t.byKey[key] = append(t.byKey[key], d)
	t.byName[id.Name] = append(t.byName[id.Name], d)

	return nil
}

// Len returns the number of distinct label identities.
func (t *LabelTable) Len() int {
	return len(t.byKey)
}

// Lookup returns the location of an exact (name, scope) match, preferring
// the current sequence and then the lowest sequence index.
func (t *LabelTable) Lookup(id attr.LabelID, current int) (Location, bool) {
	defs := t.byKey[id.Key()]
	if len(defs) == 0 {
		return Location{}, false
	}
	return pickSequence(defs, current).at, true
}

// Labels returns every defined identity, sorted by unique name.
func (t *LabelTable) Labels() []attr.LabelID {
	out := make([]attr.LabelID, 0, len(t.byKey))
	for _, defs := range t.byKey {
		out = append(out, defs[0].label)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Key() < out[j].Key()
	})
	return out
}

// Resolve finds the definition a jump to id refers to. An exact (name,
// scope) match wins. Otherwise the same-named label closest to the
// referencing scope is chosen: a child block first, then a parent, then a
// sibling, nearer before farther.
func (t *LabelTable) Resolve(id attr.LabelID, current int) (Location, attr.LabelID, error) {
	if at, ok := t.Lookup(id, current); ok {
		return at, id, nil
	}

	candidates := t.byName[id.Name]
	if len(candidates) == 0 {
		return Location{}, attr.LabelID{}, &UnresolvedLabelError{Label: id, Sequence: current}
	}

	best := candidates[0]
	bestRank := rank(id.Scope, best.label.Scope)
	for _, c := range candidates[1:] {
		r := rank(id.Scope, c.label.Scope)
		if r.less(bestRank) ||
			(r == bestRank && preferSequence(c, best, current)) {
			best, bestRank = c, r
		}
	}

	t.warnAmbiguous(id, best, bestRank, candidates)

	return best.at, best.label, nil
}

func (t *LabelTable) warnAmbiguous(
	id attr.LabelID,
	chosen definition,
	chosenRank distance,
	candidates []definition,
) {
	var others []string
	for _, c := range candidates {
		if c.label.Key() == chosen.label.Key() {
			continue
		}
		if rank(id.Scope, c.label.Scope) == chosenRank {
			others = append(others, c.label.UniqueName())
		}
	}

	if len(others) == 0 {
		return
	}

	t.logger.Warn("ambiguous label reference",
		"Label", id.Name,
		"Scope", id.Scope.String(),
		"Chosen", chosen.label.UniqueName(),
		"Others", strings.Join(others, ", "))
}

type relation int

const (
	relChild relation = iota
	relParent
	relSibling
)

type distance struct {
	rel   relation
	steps int
}

func (d distance) less(o distance) bool {
	if d.rel != o.rel {
		return d.rel < o.rel
	}
	return d.steps < o.steps
}

func rank(from, to attr.ScopePath) distance {
	up, down := from.Distance(to)
	switch {
	case up == 0:
		return distance{relChild, down}
	case down == 0:
		return distance{relParent, up}
	default:
		return distance{relSibling, up + down}
	}
}

func pickSequence(defs []definition, current int) definition {
	best := defs[0]
	for _, d := range defs[1:] {
		if preferSequence(d, best, current) {
			best = d
		}
	}
	return best
}

func preferSequence(a, b definition, current int) bool {
	aCur := a.at.Sequence == current
	bCur := b.at.Sequence == current
	if aCur != bCur {
		return aCur
	}
	return a.at.Sequence < b.at.Sequence
}
