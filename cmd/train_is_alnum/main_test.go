package main

import (
	"testing"

	"github.com/neurlang/wisard/datasets/isalnum"
)

func TestPrintable(t *testing.T) {
	d := isalnum.Dataset()
	p := printable(d)
	if len(p) != '~'-' '+1 {
		t.Fatalf("%d printable characters, want %d", len(p), '~'-' '+1)
	}
	if string(p[len(p)-1]) != string(d.Inputs['~']) {
		t.Errorf("last printable retina %v, want the retina of '~' %v", p[len(p)-1], d.Inputs['~'])
	}
}
