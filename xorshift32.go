package rearrange

// xorShift32 is Marsaglia's 32-bit xorshift generator (13, 17, 5).
type xorShift32 struct {
	state uint32
}

// newXorShift32 returns a generator for seed. The all-zero state is a fixed
// point, so seed 0 is replaced by 1.
func newXorShift32(seed uint32) *xorShift32 {
	if seed == 0 {
		seed = 1
	}
	return &xorShift32{state: seed}
}

func (r *xorShift32) next() uint32 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}
