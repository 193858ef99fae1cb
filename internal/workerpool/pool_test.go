package workerpool_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mjwise/gstile/internal/workerpool"
)

func TestRunProcessesEveryItem(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	double := func(ctx context.Context, item int) (int, bool) {
		return item * 2, true
	}

	var results []int
	for r := range workerpool.Run(context.Background(), items, 2, double) {
		results = append(results, r)
	}

	sort.Ints(results)
	assert.Equal(t, []int{2, 4, 6, 8, 10}, results)
}

func TestRunSkipsFilteredItems(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6}
	evensOnly := func(ctx context.Context, item int) (int, bool) {
		return item, item%2 == 0
	}

	var results []int
	for r := range workerpool.Run(context.Background(), items, 3, evensOnly) {
		results = append(results, r)
	}

	sort.Ints(results)
	assert.Equal(t, []int{2, 4, 6}, results)
}

func TestRunWithEmptyItems(t *testing.T) {
	fn := func(ctx context.Context, item int) (int, bool) { return item, true }
	count := 0
	for range workerpool.Run(context.Background(), []int{}, 4, fn) {
		count++
	}
	assert.Equal(t, 0, count)
}

func TestRunStopsOnCancellation(t *testing.T) {
	items := make([]int, 1000)
	for i := range items {
		items[i] = i
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fn := func(ctx context.Context, item int) (int, bool) { return item, true }
	count := 0
	for range workerpool.Run(ctx, items, 4, fn) {
		count++
	}
	assert.Less(t, count, len(items))
}

func TestNumWorkersTiers(t *testing.T) {
	assert.GreaterOrEqual(t, workerpool.NumWorkers(10), 1)
	assert.GreaterOrEqual(t, workerpool.NumWorkers(500), 1)
	assert.LessOrEqual(t, workerpool.NumWorkers(5000), 16)
}
