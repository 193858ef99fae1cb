package gstile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjwise/gstile"
)

func TestPairDriverAllCombinationsEnumeratesEveryPair(t *testing.T) {
	records := []*gstile.InputRecord{
		newRecord("1", "apple"),
		newRecord("2", "apply"),
		newRecord("3", "banana"),
	}
	cmp := gstile.NewComparator(gstile.Config{MinimumMatchLength: 1, MinimumSimilarity: -1})
	driver := gstile.NewPairDriver(cmp, nil)

	seen := map[[2]string]bool{}
	for result := range driver.AllCombinations(context.Background(), records) {
		seen[[2]string{result.IDA, result.IDB}] = true
	}

	assert.Len(t, seen, 3)
	assert.True(t, seen[[2]string{"1", "2"}])
	assert.True(t, seen[[2]string{"1", "3"}])
	assert.True(t, seen[[2]string{"2", "3"}])
}

func TestPairDriverToOthersComparesBaseAgainstEach(t *testing.T) {
	base := newRecord("base", "hello world")
	others := []*gstile.InputRecord{
		newRecord("o1", "hello world"),
		newRecord("o2", "goodbye moon"),
	}
	cmp := gstile.NewComparator(gstile.Config{MinimumMatchLength: 1, MinimumSimilarity: -1})
	driver := gstile.NewPairDriver(cmp, nil)

	var ids []string
	for result := range driver.ToOthers(context.Background(), base, others) {
		assert.Equal(t, "base", result.IDA)
		ids = append(ids, result.IDB)
	}

	assert.ElementsMatch(t, []string{"o1", "o2"}, ids)
}

func TestPairDriverAllCombinationsEmptyBatch(t *testing.T) {
	cmp := gstile.NewComparator(gstile.DefaultConfig())
	driver := gstile.NewPairDriver(cmp, nil)

	count := 0
	for range driver.AllCombinations(context.Background(), nil) {
		count++
	}
	assert.Equal(t, 0, count)
}

func TestPairDriverRespectsContextCancellation(t *testing.T) {
	records := make([]*gstile.InputRecord, 10)
	for i := range records {
		records[i] = newRecord(string(rune('a'+i)), "some shared text across all records")
	}
	cmp := gstile.NewComparator(gstile.DefaultConfig())
	driver := gstile.NewPairDriver(cmp, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	count := 0
	for range driver.AllCombinations(ctx, records) {
		count++
	}
	assert.LessOrEqual(t, count, 45) // 10 choose 2; cancellation just bounds it, doesn't guarantee zero
}

func TestPairDriverFansOutAboveSequentialThreshold(t *testing.T) {
	records := make([]*gstile.InputRecord, 12)
	for i := range records {
		records[i] = newRecord(string(rune('a'+i)), "shared words across records for testing")
	}
	cmp := gstile.NewComparator(gstile.Config{MinimumMatchLength: 1, MinimumSimilarity: -1})
	driver := gstile.NewPairDriver(cmp, nil)

	// 12 choose 2 = 66 pairs, above the sequential threshold, so this
	// exercises the worker-pool path.
	count := 0
	for range driver.AllCombinations(context.Background(), records) {
		count++
	}
	assert.Equal(t, 66, count)
}

func TestPairDriverGetIndexStats(t *testing.T) {
	records := []*gstile.InputRecord{
		{ID: "1", Tokens: gstile.TokensFromString("same"), Checksum: "x", HasChecksum: true, LongestAuthoredTile: 4},
		{ID: "2", Tokens: gstile.TokensFromString("same"), Checksum: "x", HasChecksum: true, LongestAuthoredTile: 4},
		newRecord("3", "totally different"),
	}
	cmp := gstile.NewComparator(gstile.Config{MinimumMatchLength: 1, MinimumSimilarity: 0.99})
	driver := gstile.NewPairDriver(cmp, nil)

	for range driver.AllCombinations(context.Background(), records) {
	}

	stats := driver.GetIndexStats()
	require.Contains(t, stats, "pairs_compared")
	require.Contains(t, stats, "pairs_filtered")
	require.Contains(t, stats, "checksum_shortcuts")
	assert.Equal(t, int64(1), stats["checksum_shortcuts"])
}
