// Package discriminator implements the per-class memory of a WiSARD classifier
package discriminator

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/neurlang/wisard/hash"
	"github.com/neurlang/wisard/memory"
)

// ErrShapeMismatch is returned when a retina does not have the expected length.
var ErrShapeMismatch = errors.New("shape mismatch")

// ErrMapping is returned when the address mapping is not a permutation of the retina.
var ErrMapping = errors.New("mapping is not a permutation of the retina")

// Discriminator splits a retina into groups of bits, each addressing its own memory.
// The mapping is shared with other discriminators and must not be modified.
type Discriminator struct {
	retinaLength int
	bits         int
	mapping      []int
	memories     []*memory.Memory
}

// New creates a discriminator for retinas of retinaLength, addressing memories with bits bits.
// When retinaLength is not a multiple of bits, the last memory is addressed by the remainder.
func New(retinaLength, bits int, mapping []int, cumulative, ignoreZero bool, logger *zap.Logger) (*Discriminator, error) {
	if retinaLength < 1 {
		return nil, errors.Wrapf(ErrShapeMismatch, "retina length %d", retinaLength)
	}
	if bits < 1 {
		return nil, errors.Wrapf(memory.ErrBits, "bits=%d", bits)
	}
	if !hash.IsPermutation(mapping, retinaLength) {
		return nil, errors.Wrapf(ErrMapping, "retina length %d, mapping length %d", retinaLength, len(mapping))
	}
	d := &Discriminator{
		retinaLength: retinaLength,
		bits:         bits,
		mapping:      mapping,
		memories:     make([]*memory.Memory, 0, (retinaLength+bits-1)/bits),
	}
	for start := 0; start < retinaLength; start += bits {
		width := bits
		if rest := retinaLength - start; rest < width {
			width = rest
		}
		m, err := memory.New(width, cumulative, ignoreZero, logger)
		if err != nil {
			return nil, err
		}
		d.memories = append(d.memories, m)
	}
	return d, nil
}

// Len returns the number of memories (groups).
func (d *Discriminator) Len() int {
	return len(d.memories)
}

// Memory returns the n-th memory.
func (d *Discriminator) Memory(n int) *memory.Memory {
	return d.memories[n]
}

// Address packs the permuted retina bits of the n-th group into an address,
// the first position being the least significant bit. Non-zero bytes are set bits.
func (d *Discriminator) Address(retina []byte, n int) (addr uint64) {
	start := n * d.bits
	for j, pos := range d.mapping[start : start+d.memories[n].Bits()] {
		if retina[pos] != 0 {
			addr |= uint64(1) << uint(j)
		}
	}
	return
}

func (d *Discriminator) check(retina []byte) error {
	if len(retina) != d.retinaLength {
		return errors.Wrapf(ErrShapeMismatch, "retina length %d, expected %d", len(retina), d.retinaLength)
	}
	return nil
}

// Train records one retina belonging to the class of this discriminator.
func (d *Discriminator) Train(retina []byte) error {
	if err := d.check(retina); err != nil {
		return err
	}
	for n, m := range d.memories {
		if err := m.Add(d.Address(retina, n), 1); err != nil {
			return errors.Wrapf(err, "memory %d", n)
		}
	}
	return nil
}

// Predict returns the counter addressed by the retina in each memory, in group order.
func (d *Discriminator) Predict(retina []byte) ([]int, error) {
	if err := d.check(retina); err != nil {
		return nil, err
	}
	var out = make([]int, len(d.memories))
	for n, m := range d.memories {
		v, err := m.Get(d.Address(retina, n))
		if err != nil {
			return nil, errors.Wrapf(err, "memory %d", n)
		}
		out[n] = v
	}
	return out, nil
}
