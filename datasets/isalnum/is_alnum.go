// Package isalnum implements the IsAlnum Dataset
package isalnum

import (
	"github.com/neurlang/wisard/datasets"
	"github.com/neurlang/wisard/retina"
)

// RetinaLength is the number of bits of one sample.
const RetinaLength = 8

// Class labels.
const (
	Alnum = "alnum"
	Other = "other"
)

// Sample is one byte to classify.
type Sample byte

// Retina returns the bits of the byte, least significant first.
func (c Sample) Retina() []byte {
	return retina.Bits(uint64(c), RetinaLength)
}

// Label reports whether the byte is an ASCII letter or digit.
func (c Sample) Label() string {
	if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
		return Alnum
	}
	return Other
}

// Dataset materializes all 256 bytes.
func Dataset() (d datasets.Dataset) {
	d.Init(256)
	for i := 0; i < 256; i++ {
		s := Sample(i)
		d.Add(s.Retina(), s.Label())
	}
	return
}
