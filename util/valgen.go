// Some helpers using closures to generate values
package valgen

import "sync/atomic"

// Gen produces the next value of a sequence each time it is called.
type Gen func() int

// MakeConstGen returns a generator that always yields constant.
func MakeConstGen(constant int) Gen {
	return func() int {
		return constant
	}
}

// MakeIncreasingGen returns a generator yielding start+1, start+2, ...
// It must not be shared between goroutines.
func MakeIncreasingGen(start int) Gen {
	current := start
	return func() int {
		current++
		return current
	}
}

// MakeAtomicGen behaves like MakeIncreasingGen but can be shared by
// concurrent build runs.
func MakeAtomicGen(start int) Gen {
	var current atomic.Int64
	current.Store(int64(start))
	return func() int {
		return int(current.Add(1))
	}
}
