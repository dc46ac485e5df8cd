package trainer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/neurlang/wisard/datasets"
)

// constant predicts the same label for everything
type constant string

func (c constant) Predict(inputs [][]byte) ([]string, error) {
	var out = make([]string, len(inputs))
	for i := range out {
		out[i] = string(c)
	}
	return out, nil
}

func dataset() (d datasets.Dataset) {
	d.Init(4)
	d.Add([]byte{0}, "a")
	d.Add([]byte{1}, "b")
	d.Add([]byte{0}, "a")
	d.Add([]byte{0}, "a")
	return
}

func TestEvaluate(t *testing.T) {
	r, err := Evaluate(constant("a"), dataset(), 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if r.Samples != 4 || r.Correct != 3 || r.Percent != 75 {
		t.Errorf("got %d/%d (%d%%)", r.Correct, r.Samples, r.Percent)
	}
	want := map[string]map[string]int{"a": {"a": 3}, "b": {"a": 1}}
	if diff := cmp.Diff(want, r.Confusion); diff != "" {
		t.Errorf("confusion (-want +got):\n%s", diff)
	}
}

func TestFingerprint(t *testing.T) {
	a, _ := Evaluate(constant("a"), dataset(), 0, 1)
	a2, _ := Evaluate(constant("a"), dataset(), 0, 4)
	b, _ := Evaluate(constant("b"), dataset(), 0, 1)
	z, _ := Evaluate(constant("z"), dataset(), 0, 1)
	if a.Fingerprint != a2.Fingerprint {
		t.Errorf("thread count changed the fingerprint")
	}
	if a.Fingerprint == b.Fingerprint || b.Fingerprint == z.Fingerprint {
		t.Errorf("different predictions share a fingerprint")
	}
}

func TestSampleSize(t *testing.T) {
	testCases := []struct {
		n            int
		significance byte
		want         int
	}{
		{10000, 0, 10000},
		{10000, 100, 10000},
		{10000, 95, 369},
		{100, 95, 79},
		{1, 95, 1},
	}
	for _, tc := range testCases {
		if got := sampleSize(tc.n, tc.significance); got != tc.want {
			t.Errorf("sampleSize(%d, %d) == %d, want %d", tc.n, tc.significance, got, tc.want)
		}
	}
}
