package main

import (
	"os"
	"os/signal"
	"runtime/pprof"
	"sync"
	"syscall"
)

// startProfile collects a cpu profile into path until the returned stop is called
// or the process is interrupted.
func startProfile(path string) (stop func(), err error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	sigChan := make(chan os.Signal, 1)
	done := make(chan struct{})
	var once sync.Once
	stop = func() {
		once.Do(func() {
			signal.Stop(sigChan)
			close(done)
			pprof.StopCPUProfile()
			f.Close()
		})
	}

	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			stop()
			os.Exit(130)
		case <-done:
		}
	}()
	return stop, nil
}
