// Package memory implements the RAM unit (counter store) of a WiSARD discriminator
package memory

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrAddressOutOfRange is returned when an address lies outside of [0, 2^bits).
var ErrAddressOutOfRange = errors.New("address out of range")

// ErrBits is returned for address widths which can't be represented.
var ErrBits = errors.New("invalid number of address bits")

// MaxSafeBits is the largest address width without representation overflow warning.
const MaxSafeBits = 62

// MaxBits is the largest address width a memory can be created with.
const MaxBits = 64

// denseBits is the largest address width stored in a dense slice.
const denseBits = 8

// Memory is a bounded, address-indexed table of integer counters.
// Narrow memories are stored densely, wide ones in a map keyed by address.
// When full is set every uint64 is a valid address, otherwise limit is 2^bits.
type Memory struct {
	bits       int
	limit      uint64
	full       bool
	cumulative bool
	ignoreZero bool
	dense      []int
	seen       []bool
	sparse     map[uint64]int
	written    int
}

// New creates a memory addressed by bits bits. Widths above MaxSafeBits are
// logged as a warning and accepted.
func New(bits int, cumulative, ignoreZero bool, logger *zap.Logger) (*Memory, error) {
	if bits < 1 || bits > MaxBits {
		return nil, errors.Wrapf(ErrBits, "bits=%d", bits)
	}
	if bits > MaxSafeBits && logger != nil {
		logger.Warn("address width may overflow", zap.Int("bits", bits))
	}
	m := &Memory{
		bits:       bits,
		cumulative: cumulative,
		ignoreZero: ignoreZero,
	}
	if bits == MaxBits {
		m.full = true
	} else {
		m.limit = uint64(1) << uint(bits)
	}
	if bits <= denseBits {
		m.dense = make([]int, m.limit)
		m.seen = make([]bool, m.limit)
	} else {
		m.sparse = make(map[uint64]int)
	}
	return m, nil
}

// MustNew creates a memory and panics on error.
func MustNew(bits int, cumulative, ignoreZero bool) *Memory {
	m, err := New(bits, cumulative, ignoreZero, nil)
	if err != nil {
		panic(err.Error())
	}
	return m
}

// Bits returns the address width.
func (m *Memory) Bits() int {
	return m.bits
}

// Len returns the number of distinct addresses written so far.
func (m *Memory) Len() int {
	return m.written
}

func (m *Memory) check(addr uint64) error {
	if !m.full && addr >= m.limit {
		return errors.Wrapf(ErrAddressOutOfRange, "address %d, number of addresses %d", addr, m.limit)
	}
	return nil
}

// Add increments the counter at addr by value. A non-cumulative memory only
// records presence, so its counter is set to 1 instead.
func (m *Memory) Add(addr uint64, value int) error {
	if err := m.check(addr); err != nil {
		return err
	}
	if m.dense != nil {
		if !m.seen[addr] {
			m.seen[addr] = true
			m.written++
		}
		if m.cumulative {
			m.dense[addr] += value
		} else {
			m.dense[addr] = 1
		}
		return nil
	}
	old, ok := m.sparse[addr]
	if !ok {
		m.written++
	}
	if m.cumulative {
		m.sparse[addr] = old + value
	} else {
		m.sparse[addr] = 1
	}
	return nil
}

// Get returns the counter at addr, or 0 when it was never written.
// Address 0 always reads as 0 when the memory ignores the zero address.
func (m *Memory) Get(addr uint64) (int, error) {
	if err := m.check(addr); err != nil {
		return 0, err
	}
	if m.ignoreZero && addr == 0 {
		return 0, nil
	}
	if m.dense != nil {
		return m.dense[addr], nil
	}
	return m.sparse[addr], nil
}
