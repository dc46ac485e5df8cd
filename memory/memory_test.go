package memory

import (
	"testing"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCumulative(t *testing.T) {
	for _, bits := range []int{4, 20} {
		m := MustNew(bits, true, false)
		for i := 1; i <= 5; i++ {
			if err := m.Add(3, 1); err != nil {
				t.Fatal(err)
			}
			v, err := m.Get(3)
			if err != nil {
				t.Fatal(err)
			}
			if v != i {
				t.Errorf("bits=%d: after %d adds got %d", bits, i, v)
			}
		}
		if m.Len() != 1 {
			t.Errorf("bits=%d: Len() == %d, want 1", bits, m.Len())
		}
	}
}

func TestNotCumulative(t *testing.T) {
	for _, bits := range []int{4, 20} {
		m := MustNew(bits, false, false)
		for i := 0; i < 5; i++ {
			if err := m.Add(7, 1); err != nil {
				t.Fatal(err)
			}
		}
		if v, _ := m.Get(7); v != 1 {
			t.Errorf("bits=%d: non-cumulative counter is %d, want 1", bits, v)
		}
	}
}

func TestUnwritten(t *testing.T) {
	m := MustNew(30, true, false)
	if v, err := m.Get(12345); err != nil || v != 0 {
		t.Errorf("Get on unwritten address: %d, %v", v, err)
	}
	if m.Len() != 0 {
		t.Errorf("Len() == %d on empty memory", m.Len())
	}
}

func TestIgnoreZero(t *testing.T) {
	for _, bits := range []int{3, 16} {
		m := MustNew(bits, true, true)
		_ = m.Add(0, 1)
		_ = m.Add(0, 1)
		_ = m.Add(1, 1)
		if v, _ := m.Get(0); v != 0 {
			t.Errorf("bits=%d: zero address read %d", bits, v)
		}
		if v, _ := m.Get(1); v != 1 {
			t.Errorf("bits=%d: address 1 read %d", bits, v)
		}
	}
}

func TestAddressOutOfRange(t *testing.T) {
	testCases := []struct {
		bits int
		addr uint64
	}{
		{1, 2},
		{4, 16},
		{8, 256},
		{9, 512},
		{62, 1 << 62},
	}
	for _, tc := range testCases {
		m := MustNew(tc.bits, true, false)
		if err := m.Add(tc.addr, 1); !errors.Is(err, ErrAddressOutOfRange) {
			t.Errorf("Add bits=%d addr=%d: %v", tc.bits, tc.addr, err)
		}
		if _, err := m.Get(tc.addr); !errors.Is(err, ErrAddressOutOfRange) {
			t.Errorf("Get bits=%d addr=%d: %v", tc.bits, tc.addr, err)
		}
		if err := m.Add(tc.addr-1, 1); err != nil {
			t.Errorf("Add bits=%d addr=%d: %v", tc.bits, tc.addr-1, err)
		}
	}
}

func TestFullWidth(t *testing.T) {
	m := MustNew(64, true, false)
	if err := m.Add(^uint64(0), 2); err != nil {
		t.Fatal(err)
	}
	if v, _ := m.Get(^uint64(0)); v != 2 {
		t.Errorf("got %d, want 2", v)
	}
}

func TestInvalidBits(t *testing.T) {
	for _, bits := range []int{0, -1, 65} {
		if _, err := New(bits, true, false, nil); !errors.Is(err, ErrBits) {
			t.Errorf("bits=%d: %v", bits, err)
		}
	}
}

func TestOverflowWarning(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger := zap.New(core)

	if _, err := New(62, true, false, logger); err != nil {
		t.Fatal(err)
	}
	if logs.Len() != 0 {
		t.Errorf("unexpected warning for 62 bits")
	}
	if _, err := New(63, true, false, logger); err != nil {
		t.Fatal(err)
	}
	if n := logs.FilterMessage("address width may overflow").Len(); n != 1 {
		t.Errorf("got %d overflow warnings, want 1", n)
	}
}
