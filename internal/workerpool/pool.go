// Package workerpool provides the bounded fan-out pool PairDriver uses to
// satisfy spec §5's "work-stealing pool" contract: pairs are independent,
// results may be returned in any order, and cancellation is cooperative
// at item boundaries only.
//
// Shape adapted from the teacher's FindDuplicatesParallel
// (solrac97gr/duplicatecheck, levenshtein.go): a buffered channel of work
// items feeding a fixed number of worker goroutines, a buffered results
// channel, and a sync.WaitGroup to know when every worker has drained.
package workerpool

import (
	"context"
	"runtime"
	"sync"
)

// Func processes one work item, returning its result and whether a
// result should be emitted at all (false means "skip this item", e.g. a
// comparison the caller's policy suppressed).
type Func[T any, R any] func(ctx context.Context, item T) (R, bool)

// Run fans items out across workers goroutines (at least 1, at most
// len(items); callers typically pass NumWorkers(len(items))) and
// streams results back over the returned channel, closing it once every
// item has been processed or ctx is canceled. Consumers may range over
// the channel to materialize results lazily, or drain it fully.
func Run[T any, R any](ctx context.Context, items []T, workers int, fn Func[T, R]) <-chan R {
	if workers < 1 {
		workers = 1
	}
	if workers > len(items) {
		workers = len(items)
	}
	if workers == 0 {
		results := make(chan R)
		close(results)
		return results
	}

	work := make(chan T, workers*2)
	results := make(chan R, workers*2)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range work {
				select {
				case <-ctx.Done():
					return
				default:
				}
				if r, ok := fn(ctx, item); ok {
					results <- r
				}
			}
		}()
	}

	go func() {
		defer close(work)
		for _, item := range items {
			select {
			case <-ctx.Done():
				return
			case work <- item:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// NumWorkers computes an adaptive worker count for n items, the same
// small/medium/large tiers as the teacher's getOptimalWorkerCount
// (solrac97gr/duplicatecheck, levenshtein.go): minimal parallelism below
// 200 items, full core count up to 1000, mild oversubscription (capped
// at 16) above that.
func NumWorkers(n int) int {
	cpus := runtime.NumCPU()

	if n < 200 {
		if cpus > 2 {
			return 2
		}
		return cpus
	}

	if n < 1000 {
		return cpus
	}

	workers := cpus * 2
	if workers > 16 {
		workers = 16
	}
	return workers
}
