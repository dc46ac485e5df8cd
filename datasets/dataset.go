// Package datasets implements the labeled retina dataset type
package datasets

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"
)

// ErrShape is returned for datasets whose inputs and labels don't pair up.
var ErrShape = errors.New("inputs and labels differ in count")

// Dataset is a list of retinas with one class label each.
type Dataset struct {
	Inputs [][]byte
	Labels []string
}

// Init empties the dataset, keeping room for n samples.
func (d *Dataset) Init(n int) {
	d.Inputs = make([][]byte, 0, n)
	d.Labels = make([]string, 0, n)
}

// Add appends one sample.
func (d *Dataset) Add(retina []byte, label string) {
	d.Inputs = append(d.Inputs, retina)
	d.Labels = append(d.Labels, label)
}

// Len returns the number of samples.
func (d Dataset) Len() int {
	return len(d.Inputs)
}

// Check reports whether every input has a label.
func (d Dataset) Check() error {
	if len(d.Inputs) != len(d.Labels) {
		return errors.Wrapf(ErrShape, "%d inputs, %d labels", len(d.Inputs), len(d.Labels))
	}
	return nil
}

// Classes returns the sorted distinct labels.
func (d Dataset) Classes() (o []string) {
	var seen = make(map[string]struct{})
	for _, l := range d.Labels {
		if _, ok := seen[l]; !ok {
			seen[l] = struct{}{}
			o = append(o, l)
		}
	}
	sort.Strings(o)
	return
}

// Shuffle shuffles the samples in place with a seeded source.
func (d Dataset) Shuffle(seed int64) {
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(d.Inputs), func(i, j int) {
		d.Inputs[i], d.Inputs[j] = d.Inputs[j], d.Inputs[i]
		d.Labels[i], d.Labels[j] = d.Labels[j], d.Labels[i]
	})
}

// Split splits the dataset into the first fraction of samples and the rest.
// The halves share the underlying retinas.
func (d Dataset) Split(fraction float64) (head, tail Dataset) {
	n := int(fraction * float64(d.Len()))
	if n < 0 {
		n = 0
	}
	if n > d.Len() {
		n = d.Len()
	}
	head = Dataset{Inputs: d.Inputs[:n:n], Labels: d.Labels[:n:n]}
	tail = Dataset{Inputs: d.Inputs[n:], Labels: d.Labels[n:]}
	return
}
