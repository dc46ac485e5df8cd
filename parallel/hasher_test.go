package parallel

import "testing"

// hasher test
func TestHasher(t *testing.T) {
	h := NewUint16Hasher(100)
	for n := uint16(0); n < 100; n++ {
		h.MustPutUint16(int(n), n)
	}
	sum := h.Sum()

	// reverse order, concurrently
	h2 := NewUint16Hasher(100)
	ForEach(100, 8, func(i int) {
		n := 99 - i
		h2.MustPutUint16(n, uint16(n))
	})
	if h2.Sum() != sum {
		t.Errorf("order dependent hash: %x != %x", h2.Sum(), sum)
	}

	h3 := NewUint16Hasher(100)
	for n := uint16(0); n < 100; n++ {
		h3.MustPutUint16(int(n), n^1)
	}
	if h3.Sum() == sum {
		t.Errorf("different values gave the same hash: %x", sum)
	}
}

func TestHasherDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("duplicate write did not panic")
		}
	}()
	h := NewUint16Hasher(3)
	h.MustPutUint16(1, 1)
	h.MustPutUint16(1, 1)
}
