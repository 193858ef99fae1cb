// Package queue defines the envelope and dispatch contract an external
// task-queue worker uses to invoke gstile comparisons (spec.md §1: "the
// task-queue worker... referenced by interface" only). It intentionally
// stops short of a broker implementation — no AMQP, no Redis, no SQS —
// the same way the core package never implements a CLI or a storage
// layer: those belong to the host application.
package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/mjwise/gstile"
)

// Kind names the two comparison job shapes spec.md §6 describes.
type Kind string

const (
	// KindAllCombinations compares every unordered pair within one batch
	// of input records (gstile.PairDriver.AllCombinations).
	KindAllCombinations Kind = "all_combinations"
	// KindToOthers compares one base record against a batch of others
	// (gstile.PairDriver.ToOthers).
	KindToOthers Kind = "to_others"
)

// Job is the unit of work a Dispatcher hands to a worker. Payload is the
// job-kind-specific input: Records for KindAllCombinations, or Base plus
// Others for KindToOthers. ID defaults to a random UUIDv4 when left
// empty by NewJob, giving every job a stable correlation id for logging
// (SPEC_FULL §10's "Identifiers" convention).
type Job struct {
	ID     string
	Kind   Kind
	Config gstile.Config

	Payload JobPayload
}

// JobPayload carries the records a Job compares. Either Records is set
// (KindAllCombinations) or Base and Others are both set (KindToOthers);
// a Dispatcher implementation should reject a Job that has both or
// neither populated for its Kind.
type JobPayload struct {
	Records []*gstile.InputRecord
	Base    *gstile.InputRecord
	Others  []*gstile.InputRecord
}

// NewJob builds a Job, assigning a random ID when id is empty.
func NewJob(id string, kind Kind, cfg gstile.Config, payload JobPayload) Job {
	if id == "" {
		id = uuid.NewString()
	}
	return Job{ID: id, Kind: kind, Config: cfg, Payload: payload}
}

// Dispatcher is the boundary an external queue worker implements: given
// a Job, run it and stream ComparisonResults back (or fail the job
// outright). gstile ships no Dispatcher implementation; a host
// application wires this to its own queue client (SQS, AMQP, a local
// channel for tests) and to a gstile.PairDriver for the actual work.
type Dispatcher interface {
	Dispatch(ctx context.Context, job Job) (<-chan gstile.ComparisonResult, error)
}

// RunWith executes job against driver directly, without going through a
// Dispatcher — the shape a same-process worker (or a test double for a
// Dispatcher) uses. It is the one piece of non-interface logic this
// package provides, since "which PairDriver method a Kind maps to" has
// exactly one correct answer and every Dispatcher implementation would
// otherwise have to duplicate it.
func RunWith(ctx context.Context, driver *gstile.PairDriver, job Job) (<-chan gstile.ComparisonResult, error) {
	switch job.Kind {
	case KindAllCombinations:
		if len(job.Payload.Records) == 0 {
			return nil, fmt.Errorf("queue: job %s: %w: all_combinations job requires records", job.ID, gstile.ErrInvalidArgument)
		}
		return driver.AllCombinations(ctx, job.Payload.Records), nil
	case KindToOthers:
		if job.Payload.Base == nil || len(job.Payload.Others) == 0 {
			return nil, fmt.Errorf("queue: job %s: %w: to_others job requires a base record and others", job.ID, gstile.ErrInvalidArgument)
		}
		return driver.ToOthers(ctx, job.Payload.Base, job.Payload.Others), nil
	default:
		return nil, fmt.Errorf("queue: job %s: %w: unknown job kind %q", job.ID, gstile.ErrInvalidArgument, job.Kind)
	}
}

// MarshalJSON encodes a Job's metadata (ID, Kind, Config) for queue
// transport. Payload is deliberately excluded: input records are
// expected to travel as JSON documents decodable by
// gstile.DecodeInputRecord, addressed separately from the job envelope
// (e.g. by a storage key), since a batch of records is frequently too
// large to inline into a single queue message.
func (j Job) MarshalJSON() ([]byte, error) {
	type envelope struct {
		ID     string        `json:"id"`
		Kind   Kind          `json:"kind"`
		Config gstile.Config `json:"config"`
	}
	return json.Marshal(envelope{ID: j.ID, Kind: j.Kind, Config: j.Config})
}
