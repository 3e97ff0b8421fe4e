package instr

import "fmt"

// Hook produces text at a scheduled point. Runtime hooks are evaluated while
// the sequence is simulated; the others when the listing is printed.
type Hook struct {
	Runtime bool

	text string
	fn   func() (string, error)
}

// Text creates a hook that yields a fixed string.
func Text(text string, runtime bool) Hook {
	return Hook{Runtime: runtime, text: text}
}

// Code creates a hook that calls fn every time it is evaluated.
func Code(fn func() (string, error), runtime bool) Hook {
	if fn == nil {
		panic("hook function is nil")
	}
	return Hook{Runtime: runtime, fn: fn}
}

// Evaluate returns the hook text.
func (h Hook) Evaluate() (string, error) {
	if h.fn != nil {
		return h.fn()
	}
	return h.text, nil
}

func (h Hook) String() string {
	kind := "output"
	if h.Runtime {
		kind = "runtime"
	}
	if h.fn != nil {
		return fmt.Sprintf("hook(%s, code)", kind)
	}
	return fmt.Sprintf("hook(%s, %q)", kind, h.text)
}
