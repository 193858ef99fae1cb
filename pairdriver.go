package gstile

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/mjwise/gstile/internal/workerpool"
)

// sequentialThreshold is the item count above which PairDriver switches
// from a simple sequential loop to the worker pool, mirroring the
// teacher's FindDuplicates/FindDuplicatesParallel split at 50 products
// (solrac97gr/duplicatecheck, levenshtein.go). spec §9 specifies no
// particular number, so the teacher's own threshold is reused verbatim.
const sequentialThreshold = 50

// pair is one (i, j) index pair to compare.
type pair struct {
	i, j int
}

// PairDriver enumerates pairs from a batch of InputRecords and runs them
// through a Comparator (spec §4.5). Each pair is independent (spec §5);
// above sequentialThreshold pairs, comparisons fan out across
// workerpool.Run.
type PairDriver struct {
	comparator *Comparator
	logger     *zap.Logger

	compared  int64
	filtered  int64
	errored   int64
	shortcuts int64
}

// NewPairDriver returns a PairDriver backed by cmp. A nil logger means
// comparison failures are silently skipped (still emitting no result,
// per spec §7) rather than logged.
func NewPairDriver(cmp *Comparator, logger *zap.Logger) *PairDriver {
	return &PairDriver{comparator: cmp, logger: logger}
}

// GetIndexStats returns running counters for every pair this PairDriver
// has processed so far, in the shape of the teacher's GetIndexStats
// (solrac97gr/duplicatecheck, hybrid.go): a loosely-typed map suited to
// logging or a status endpoint rather than programmatic consumption.
func (d *PairDriver) GetIndexStats() map[string]interface{} {
	return map[string]interface{}{
		"pairs_compared":    atomic.LoadInt64(&d.compared),
		"pairs_filtered":    atomic.LoadInt64(&d.filtered),
		"pairs_errored":     atomic.LoadInt64(&d.errored),
		"checksum_shortcuts": atomic.LoadInt64(&d.shortcuts),
	}
}

// AllCombinations enumerates all unordered 2-subsets of records in input
// order — for [x0, x1, ..., xN-1], pairs (xi, xj) with i < j, enumerated
// lexicographically by (i, j) (spec §4.5). The returned channel is
// closed once every pair has been processed or ctx is canceled;
// cancellation is checked between pairs only (spec §5).
func (d *PairDriver) AllCombinations(ctx context.Context, records []*InputRecord) <-chan ComparisonResult {
	var pairs []pair
	for i := 0; i < len(records); i++ {
		for j := i + 1; j < len(records); j++ {
			pairs = append(pairs, pair{i, j})
		}
	}
	return d.run(ctx, pairs, records, records)
}

// ToOthers yields (base, other) for each record in others, in order
// (spec §4.5).
func (d *PairDriver) ToOthers(ctx context.Context, base *InputRecord, others []*InputRecord) <-chan ComparisonResult {
	pairs := make([]pair, len(others))
	for k := range others {
		pairs[k] = pair{0, k}
	}
	baseSlice := []*InputRecord{base}
	return d.run(ctx, pairs, baseSlice, others)
}

// run dispatches pairs sequentially or through the worker pool depending
// on its size, resolving each pair.i against left and pair.j against
// right (AllCombinations passes the same slice for both; ToOthers passes
// a single-element left and the candidate slice as right).
func (d *PairDriver) run(ctx context.Context, pairs []pair, left, right []*InputRecord) <-chan ComparisonResult {
	compareOne := func(ctx context.Context, p pair) (ComparisonResult, bool) {
		a, b := left[p.i], right[p.j]
		result, ok, err := d.comparator.Compare(a, b)
		if err != nil {
			atomic.AddInt64(&d.errored, 1)
			if d.logger != nil {
				d.logger.Warn("comparison failed, skipping pair",
					zap.String("id_a", a.ID), zap.String("id_b", b.ID), zap.Error(err))
			}
			return ComparisonResult{}, false
		}
		if !ok {
			atomic.AddInt64(&d.filtered, 1)
			return ComparisonResult{}, false
		}
		atomic.AddInt64(&d.compared, 1)
		if result.ChecksumShortcut {
			atomic.AddInt64(&d.shortcuts, 1)
		}
		return result, ok
	}

	if len(pairs) <= sequentialThreshold {
		out := make(chan ComparisonResult, len(pairs))
		go func() {
			defer close(out)
			for _, p := range pairs {
				select {
				case <-ctx.Done():
					return
				default:
				}
				if result, ok := compareOne(ctx, p); ok {
					out <- result
				}
			}
		}()
		return out
	}

	return workerpool.Run(ctx, pairs, workerpool.NumWorkers(len(pairs)), compareOne)
}
