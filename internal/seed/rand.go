package seed

// mulberry32 is a small 32-bit PRNG whose stream depends only on the seed
type mulberry32 struct {
	state uint32
}

func newMulberry32(seed uint32) *mulberry32 {
	return &mulberry32{state: seed}
}

// Float returns the next value in [0, 1)
func (r *mulberry32) Float() float64 {
	r.state += 0x6d2b79f5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296
}

// Intn returns an int in [0, n)
func (r *mulberry32) Intn(n int) int {
	return int(r.Float() * float64(n))
}

// Between returns an int in [min, max]
func (r *mulberry32) Between(min, max int) int {
	return min + r.Intn(max-min+1)
}

// Chance reports true with probability p
func (r *mulberry32) Chance(p float64) bool {
	return r.Float() > 1-p
}

func pick[T any](r *mulberry32, items []T) T {
	return items[r.Intn(len(items))]
}
