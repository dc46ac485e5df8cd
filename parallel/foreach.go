// Package parallel contains the bounded ForEach loop and the order independent prediction Hasher.
package parallel

import "sync"

// ForEach calls body for every integer from 0 to length-1, running at most
// limit calls concurrently. A limit of 1 or less runs the loop in the caller's goroutine.
func ForEach(length, limit int, body func(i int)) {
	if length <= 0 {
		return
	}
	if limit <= 1 {
		for i := 0; i < length; i++ {
			body(i)
		}
		return
	}

	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup
	wg.Add(length)

	for i := 0; i < length; i++ {
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			body(i)
		}(i)
	}

	wg.Wait()
}
