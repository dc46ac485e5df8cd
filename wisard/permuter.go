package wisard

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/neurlang/wisard/hash"
)

// Permuter generates the retina position permutation shared by all discriminators.
type Permuter interface {

	// Permute returns a permutation of 0..n-1.
	Permute(n int) []int
}

// RandPermuter draws the permutation from an explicitly seeded source.
type RandPermuter struct {
	Rand *rand.Rand
}

// Permute returns a permutation of 0..n-1.
func (p RandPermuter) Permute(n int) []int {
	return p.Rand.Perm(n)
}

// mapping resolves the address mapping of the options. Without randomization,
// or without a seed or a permuter, it is the identity.
func (o Options) mapping() ([]int, error) {
	var p Permuter
	switch {
	case !o.RandomizePositions:
		return hash.Identity(o.RetinaLength), nil
	case o.Permuter != nil:
		p = o.Permuter
	case o.Seed != nil:
		p = hash.Permuter{Seed: *o.Seed}
	default:
		if o.Logger != nil {
			o.Logger.Debug("no permutation seed, using identity mapping")
		}
		return hash.Identity(o.RetinaLength), nil
	}
	m := p.Permute(o.RetinaLength)
	if !hash.IsPermutation(m, o.RetinaLength) {
		return nil, errors.Wrapf(ErrConfiguration, "permuter returned an invalid permutation of %d positions", o.RetinaLength)
	}
	return m, nil
}
