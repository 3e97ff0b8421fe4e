package dummy

const (
	lcgA    uint64 = 0x5DEECE66D
	lcgC    uint64 = 0xB
	lcgMask uint64 = (1 << 48) - 1
)

// rng is the srand48/lrand48 recurrence, so that a seed reproduces the same
// program on every platform.
type rng struct {
	state uint64
}

func newRNG(seed uint64) *rng {
	// srand48 semantics.
	return &rng{state: ((seed << 16) + 0x330E) & lcgMask}
}

func (r *rng) next31() uint32 {
	r.state = (lcgA*r.state + lcgC) & lcgMask
	return uint32(r.state >> 17)
}

// upto returns a value in [0, n).
func (r *rng) upto(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	return r.next31() % n
}

// flipcoin returns true with probability p percent.
func (r *rng) flipcoin(p uint32) bool {
	if p > 100 {
		p = 100
	}
	return r.next31()%100 < p
}
