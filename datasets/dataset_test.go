package datasets

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func sample() (d Dataset) {
	d.Init(4)
	d.Add([]byte{0, 0}, "zero")
	d.Add([]byte{1, 0}, "one")
	d.Add([]byte{0, 1}, "two")
	d.Add([]byte{1, 1}, "three")
	return
}

func TestClasses(t *testing.T) {
	d := sample()
	d.Add([]byte{0, 0}, "zero")
	if diff := cmp.Diff([]string{"one", "three", "two", "zero"}, d.Classes()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestShuffleKeepsPairs(t *testing.T) {
	d := sample()
	pairs := map[string][]byte{}
	for i := range d.Labels {
		pairs[d.Labels[i]] = d.Inputs[i]
	}
	d.Shuffle(11)
	for i := range d.Labels {
		if diff := cmp.Diff(pairs[d.Labels[i]], d.Inputs[i]); diff != "" {
			t.Errorf("sample %d lost its label %s:\n%s", i, d.Labels[i], diff)
		}
	}
	e := sample()
	e.Shuffle(11)
	if diff := cmp.Diff(d.Labels, e.Labels); diff != "" {
		t.Errorf("same seed, different order:\n%s", diff)
	}
}

func TestSplit(t *testing.T) {
	head, tail := sample().Split(0.75)
	if head.Len() != 3 || tail.Len() != 1 {
		t.Fatalf("split into %d and %d", head.Len(), tail.Len())
	}
	if tail.Labels[0] != "three" {
		t.Errorf("tail is %v", tail.Labels)
	}
	head, tail = sample().Split(2)
	if head.Len() != 4 || tail.Len() != 0 {
		t.Errorf("clamped split into %d and %d", head.Len(), tail.Len())
	}
}

func TestCheck(t *testing.T) {
	d := sample()
	if err := d.Check(); err != nil {
		t.Error(err)
	}
	d.Labels = d.Labels[:1]
	if err := d.Check(); !errors.Is(err, ErrShape) {
		t.Errorf("got %v", err)
	}
}
