// Package fanout runs independent unit computations over a slice under a
// fixed concurrency ceiling, preserving input order in the results.
package fanout

import (
	"context"
	"sync"
	"sync/atomic"
)

// Map runs worker over every item with at most concurrency computations in
// flight, and returns the results in input order.
//
// A shared cursor hands out the next unclaimed index; each of the
// min(concurrency, len(items)) goroutines claims an index, runs the worker,
// writes the result into that index's slot, and loops until the cursor is
// exhausted. Map returns only after every goroutine has drained the cursor.
//
// The worker must be total: it is the caller's job to map its internal
// failures to a default value. Map schedules, it does not retry.
func Map[T, R any](ctx context.Context, items []T, concurrency int, worker func(ctx context.Context, item T) R) []R {
	n := len(items)
	results := make([]R, n)
	if n == 0 {
		return results
	}
	if concurrency < 1 {
		concurrency = 1
	}
	if concurrency > n {
		concurrency = n
	}

	// cursor.Add is the atomic claim: no two goroutines can obtain the
	// same index.
	var cursor atomic.Int64
	var wg sync.WaitGroup
	wg.Add(concurrency)
	for w := 0; w < concurrency; w++ {
		go func() {
			defer wg.Done()
			for {
				idx := cursor.Add(1) - 1
				if idx >= int64(n) {
					return
				}
				results[idx] = worker(ctx, items[idx])
			}
		}()
	}
	wg.Wait()

	return results
}
