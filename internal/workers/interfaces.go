// Package workers runs background work for the watch loop.
// LanePool is an ordered pool that keeps tasks sharing a key in submission
// order while tasks with different keys run in parallel.
package workers

import "context"

// Task is a unit of work executed by a [LanePool]. The context is the one
// the pool was created with, not the context of the submitter.
type Task func(ctx context.Context)
