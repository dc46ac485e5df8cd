package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStartProfileStopTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpu.pprof")
	stop, err := startProfile(path)
	if err != nil {
		t.Fatal(err)
	}
	stop()
	stop()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("profile not written: %v", err)
	}
	// the profiler is free again
	stop2, err := startProfile(filepath.Join(t.TempDir(), "cpu2.pprof"))
	if err != nil {
		t.Fatalf("profiler still running: %v", err)
	}
	stop2()
}
