package queue_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjwise/gstile"
	"github.com/mjwise/gstile/queue"
)

func TestNewJobAssignsRandomID(t *testing.T) {
	job := queue.NewJob("", queue.KindAllCombinations, gstile.DefaultConfig(), queue.JobPayload{})
	assert.NotEmpty(t, job.ID)
}

func TestNewJobKeepsExplicitID(t *testing.T) {
	job := queue.NewJob("job-1", queue.KindToOthers, gstile.DefaultConfig(), queue.JobPayload{})
	assert.Equal(t, "job-1", job.ID)
}

func TestRunWithAllCombinations(t *testing.T) {
	records := []*gstile.InputRecord{
		{ID: "1", Tokens: gstile.TokensFromString("same text"), LongestAuthoredTile: 9},
		{ID: "2", Tokens: gstile.TokensFromString("same text"), LongestAuthoredTile: 9},
	}
	cmp := gstile.NewComparator(gstile.DefaultConfig())
	driver := gstile.NewPairDriver(cmp, nil)

	job := queue.NewJob("j1", queue.KindAllCombinations, gstile.DefaultConfig(), queue.JobPayload{Records: records})
	results, err := queue.RunWith(context.Background(), driver, job)
	require.NoError(t, err)

	count := 0
	for range results {
		count++
	}
	assert.Equal(t, 1, count)
}

func TestRunWithToOthers(t *testing.T) {
	base := &gstile.InputRecord{ID: "base", Tokens: gstile.TokensFromString("hello"), LongestAuthoredTile: 5}
	others := []*gstile.InputRecord{
		{ID: "o1", Tokens: gstile.TokensFromString("hello"), LongestAuthoredTile: 5},
	}
	cmp := gstile.NewComparator(gstile.DefaultConfig())
	driver := gstile.NewPairDriver(cmp, nil)

	job := queue.NewJob("j2", queue.KindToOthers, gstile.DefaultConfig(), queue.JobPayload{Base: base, Others: others})
	results, err := queue.RunWith(context.Background(), driver, job)
	require.NoError(t, err)

	result := <-results
	assert.Equal(t, "base", result.IDA)
	assert.Equal(t, "o1", result.IDB)
}

func TestRunWithRejectsIncompletePayload(t *testing.T) {
	cmp := gstile.NewComparator(gstile.DefaultConfig())
	driver := gstile.NewPairDriver(cmp, nil)

	_, err := queue.RunWith(context.Background(), driver, queue.NewJob("j3", queue.KindAllCombinations, gstile.DefaultConfig(), queue.JobPayload{}))
	assert.ErrorIs(t, err, gstile.ErrInvalidArgument)

	_, err = queue.RunWith(context.Background(), driver, queue.NewJob("j4", queue.KindToOthers, gstile.DefaultConfig(), queue.JobPayload{}))
	assert.ErrorIs(t, err, gstile.ErrInvalidArgument)
}

func TestRunWithRejectsUnknownKind(t *testing.T) {
	cmp := gstile.NewComparator(gstile.DefaultConfig())
	driver := gstile.NewPairDriver(cmp, nil)

	_, err := queue.RunWith(context.Background(), driver, queue.NewJob("j5", queue.Kind("bogus"), gstile.DefaultConfig(), queue.JobPayload{}))
	assert.ErrorIs(t, err, gstile.ErrInvalidArgument)
}

func TestJobMarshalJSONExcludesPayload(t *testing.T) {
	job := queue.NewJob("j6", queue.KindAllCombinations, gstile.DefaultConfig(), queue.JobPayload{
		Records: []*gstile.InputRecord{{ID: "1"}},
	})
	data, err := job.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"j6","kind":"all_combinations","config":{"MinimumMatchLength":1,"MinimumSimilarity":-1,"SimilarityPrecision":null}}`, string(data))
}
