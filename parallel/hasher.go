package parallel

import (
	"crypto/sha256"
	"encoding/binary"
	"hash"
	"sync"
)

// valuesPerBlock is the number of uint16 values hashed as one block.
const valuesPerBlock = 32

// Hasher computes a sha256 fingerprint of n uint16 values which may be put
// concurrently and in any order. The fingerprint depends only on the values
// and their positions. Complete blocks are hashed as soon as all blocks
// before them are complete.
type Hasher struct {
	mut    sync.Mutex
	sha    hash.Hash
	ate    int
	length int
	filled []int
	marks  []uint32
	data   [][2 * valuesPerBlock]byte
}

// NewUint16Hasher creates a hasher of n uint16 values.
func NewUint16Hasher(n int) *Hasher {
	blocks := (n + valuesPerBlock - 1) / valuesPerBlock
	return &Hasher{
		sha:    sha256.New(),
		length: n,
		filled: make([]int, blocks),
		marks:  make([]uint32, blocks),
		data:   make([][2 * valuesPerBlock]byte, blocks),
	}
}

func (h *Hasher) blockSize(block int) int {
	if block == len(h.data)-1 && h.length%valuesPerBlock != 0 {
		return h.length % valuesPerBlock
	}
	return valuesPerBlock
}

func (h *Hasher) eat() {
	h.sha.Write(h.data[h.ate][:2*h.blockSize(h.ate)])
	h.ate++
}

// MustPutUint16 stores value at position n. It panics when n is out of range
// or already consumed.
func (h *Hasher) MustPutUint16(n int, value uint16) {
	if n < 0 || n >= h.length {
		panic("uint16 write out of range")
	}
	block := n / valuesPerBlock
	offset := (n % valuesPerBlock) * 2

	h.mut.Lock()
	defer h.mut.Unlock()

	if block < h.ate {
		panic("already consumed block")
	}
	mask := uint32(1) << uint(n%valuesPerBlock)
	if h.marks[block]&mask != 0 {
		panic("duplicate write")
	}
	h.marks[block] |= mask
	binary.LittleEndian.PutUint16(h.data[block][offset:], value)
	h.filled[block]++
	for h.ate < len(h.data) && h.filled[h.ate] == h.blockSize(h.ate) {
		h.eat()
	}
}

// Sum hashes the remaining blocks and returns the fingerprint.
// Missing values are hashed as zero.
func (h *Hasher) Sum() (ret [32]byte) {
	h.mut.Lock()
	for h.ate < len(h.data) {
		h.eat()
	}
	copy(ret[:], h.sha.Sum(nil))
	h.mut.Unlock()
	return
}
