package squareroot

import (
	"math"
	"strconv"

	"github.com/neurlang/wisard/datasets"
	"github.com/neurlang/wisard/retina"
)

// Sample is a number whose class is its integer square root.
type Sample uint32

// Retina thermometer encodes the number over levels bits, for numbers below max.
func (s Sample) Retina(max uint32, levels int) []byte {
	return retina.Thermometer(float64(s), 0, float64(max), levels)
}

// Label returns the integer square root as a decimal string.
func (s Sample) Label() string {
	return strconv.Itoa(int(math.Sqrt(float64(s))))
}

// Levels is the retina length of the thermometer encoding.
const Levels = 256

func generate(n uint32) (d datasets.Dataset) {
	d.Init(int(n))
	for i := uint32(0); i < n; i++ {
		s := Sample(i)
		d.Add(s.Retina(n, Levels), s.Label())
	}
	return
}

// SmallClasses is the number of classes of Small.
const SmallClasses = 16

// MediumClasses is the number of classes of Medium.
const MediumClasses = 32

// Small returns the numbers below 2^8.
func Small() datasets.Dataset {
	return generate(1 << 8)
}

// Medium returns the numbers below 2^10.
func Medium() datasets.Dataset {
	return generate(1 << 10)
}
