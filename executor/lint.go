package executor

import (
	"fmt"

	"github.com/sarchlab/progen/attr"
	"github.com/sarchlab/progen/engine"
)

// IssueType categorizes lint issues
type IssueType string

const (
	IssueUndefinedLabel IssueType = "UNDEFINED" // Reference no definition can satisfy
	IssueDuplicateLabel IssueType = "DUPLICATE" // Same label and scope defined twice in a sequence
	IssueAmbiguousLabel IssueType = "AMBIGUOUS" // Several definitions are equally close
	IssueMalformed      IssueType = "MALFORMED" // Attribute list holds an unexpected item
)

// Issue represents a single lint issue
type Issue struct {
	Type     IssueType
	Sequence int    // Sequence index
	Position int    // Call position (-1 if not applicable)
	Call     string // Call name
	Label    string // Unique label name
	Message  string
}

// IsError reports whether the issue makes simulation fail for sure.
func (i Issue) IsError() bool {
	return i.Type != IssueAmbiguousLabel
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s seq=%d pos=%d] %s", i.Type, i.Sequence, i.Position, i.Message)
}

// Lint checks label definitions and references of abstract sequences
// without executing them.
func Lint(seqs []engine.Sequence) []Issue {
	var issues []Issue

	defs := make(map[string][]attr.LabelID)
	for s, seq := range seqs {
		seen := make(map[string]int)
		for pos, call := range seq {
			for _, key := range []string{attr.BackwardLabels, attr.ForwardLabels} {
				ids, err := call.Attributes().LabelsAt(key)
				if err != nil {
					issues = append(issues, Issue{
						Type:     IssueMalformed,
						Sequence: s,
						Position: pos,
						Call:     call.Name(),
						Message:  err.Error(),
					})
					continue
				}

				for _, id := range ids {
					if first, dup := seen[id.Key()]; dup {
						issues = append(issues, Issue{
							Type:     IssueDuplicateLabel,
							Sequence: s,
							Position: pos,
							Call:     call.Name(),
							Label:    id.UniqueName(),
							Message: fmt.Sprintf("label %s already defined at position %d",
								id.UniqueName(), first),
						})
						continue
					}
					seen[id.Key()] = pos
					defs[id.Name] = appendUnique(defs[id.Name], id)
				}
			}
		}
	}

	for s, seq := range seqs {
		for pos, call := range seq {
			fixups, err := call.Attributes().Fixups()
			if err != nil {
				issues = append(issues, Issue{
					Type:     IssueMalformed,
					Sequence: s,
					Position: pos,
					Call:     call.Name(),
					Message:  err.Error(),
				})
				continue
			}

			for _, f := range fixups {
				if issue, bad := lintReference(defs[f.Label.Name], f); bad {
					issue.Sequence, issue.Position, issue.Call = s, pos, call.Name()
					issues = append(issues, issue)
				}
			}
		}
	}

	return issues
}

func lintReference(candidates []attr.LabelID, f attr.LabelFixup) (Issue, bool) {
	if len(candidates) == 0 {
		return Issue{
			Type:  IssueUndefinedLabel,
			Label: f.Label.UniqueName(),
			Message: fmt.Sprintf("argument %s refers to undefined label %q",
				f.Argument, f.Label.Name),
		}, true
	}

	for _, c := range candidates {
		if c.Scope.Equal(f.Label.Scope) {
			return Issue{}, false
		}
	}

	best := rank(f.Label.Scope, candidates[0].Scope)
	ties := 1
	for _, c := range candidates[1:] {
		r := rank(f.Label.Scope, c.Scope)
		switch {
		case r.less(best):
			best, ties = r, 1
		case r == best:
			ties++
		}
	}

	if ties < 2 {
		return Issue{}, false
	}

	return Issue{
		Type:  IssueAmbiguousLabel,
		Label: f.Label.UniqueName(),
		Message: fmt.Sprintf("argument %s: %d definitions of %q are equally close",
			f.Argument, ties, f.Label.Name),
	}, true
}

func appendUnique(ids []attr.LabelID, id attr.LabelID) []attr.LabelID {
	for _, x := range ids {
		if x.Key() == id.Key() {
			return ids
		}
	}
	return append(ids, id)
}
