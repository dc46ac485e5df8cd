package main

import (
	"testing"

	"github.com/neurlang/wisard/wisard"
)

func TestExperiment(t *testing.T) {
	seed := uint32(1)
	o := wisard.DefaultOptions()
	o.GroupBitWidth = 8
	o.Seed = &seed

	result, err := experiment(o)
	if err != nil {
		t.Fatal(err)
	}
	if result.Samples != 512 {
		t.Errorf("evaluated %d samples, want 512", result.Samples)
	}
	// most odd numbers share their class with the even neighbour on either side
	if result.Percent < 50 {
		t.Errorf("generalized to %d%% of unseen numbers", result.Percent)
	}
}
