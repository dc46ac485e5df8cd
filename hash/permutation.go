package hash

// Permuter generates retina position permutations from a fixed seed.
// The same seed always yields the same permutation for the same length.
type Permuter struct {
	Seed uint32
}

// Permute returns a permutation of 0..n-1 using a Fisher-Yates shuffle
// whose swap indices are drawn from Hash.
func (p Permuter) Permute(n int) (o []int) {
	o = Identity(n)
	var state uint32
	for i := n - 1; i > 0; i-- {
		state = Hash(state^uint32(i), p.Seed, 0xFFFFFFFF)
		j := int(Hash(state, p.Seed, uint32(i+1)))
		o[i], o[j] = o[j], o[i]
	}
	return
}

// Identity returns the identity permutation of length n.
func Identity(n int) (o []int) {
	if n <= 0 {
		return nil
	}
	o = make([]int, n)
	for i := range o {
		o[i] = i
	}
	return
}

// IsPermutation reports whether p contains every integer 0..n-1 exactly once.
func IsPermutation(p []int, n int) bool {
	if len(p) != n {
		return false
	}
	var seen = make([]bool, n)
	for _, v := range p {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
