package attr

import (
	"fmt"
	"strconv"
	"strings"
)

// ScopePath lists block ids from the root block to the block that defines a
// label or contains an instruction.
type ScopePath []int

// Push returns a new path extended with id. The receiver is left untouched.
func (p ScopePath) Push(id int) ScopePath {
	out := make(ScopePath, len(p), len(p)+1)
	copy(out, p)
	return append(out, id)
}

// Depth is the nesting depth of the innermost block, the root being 0.
func (p ScopePath) Depth() int {
	return len(p) - 1
}

// Last returns the innermost block id, or 0 for an empty path.
func (p ScopePath) Last() int {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1]
}

// Equal reports whether both paths list the same ids.
func (p ScopePath) Equal(o ScopePath) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

// Distance returns how many levels one walks up from p and then down to reach
// o through their closest common ancestor.
func (p ScopePath) Distance(o ScopePath) (up, down int) {
	common := 0
	for common < len(p) && common < len(o) && p[common] == o[common] {
		common++
	}
	return len(p) - common, len(o) - common
}

func (p ScopePath) String() string {
	parts := make([]string, len(p))
	for i, id := range p {
		parts[i] = strconv.Itoa(id)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// LabelID identifies a label together with the scope it was written in.
type LabelID struct {
	Name  string
	Scope ScopePath
}

// Key is a comparable form of the identity, usable as a map key.
func (l LabelID) Key() string {
	return l.Name + "@" + l.Scope.String()
}

// UniqueName joins the name with the scope ids, e.g. "loop_1_3".
func (l LabelID) UniqueName() string {
	var sb strings.Builder
	sb.WriteString(l.Name)
	for _, id := range l.Scope {
		sb.WriteByte('_')
		sb.WriteString(strconv.Itoa(id))
	}
	return sb.String()
}

func (l LabelID) String() string {
	return fmt.Sprintf("%s%s", l.Name, l.Scope)
}

// LabelFixup pairs a label reference with the argument that holds a
// placeholder for its address.
type LabelFixup struct {
	Label    LabelID
	Argument string
}

func (f LabelFixup) String() string {
	return fmt.Sprintf("%s->%s", f.Argument, f.Label)
}
