// Package contract provides the validated configuration and shared utilities
// for the gitpulse pipeline.
package contract

import (
	"context"

	"github.com/gitpulse/gitpulse/schema"
)

// TrafficClient defines the operations the fetch step needs from the GitHub
// API. It allows the fetch logic to be tested without touching the network.
type TrafficClient interface {
	// FetchSnapshot polls repository metadata plus clone and view traffic for
	// one repository and packages the result as a raw snapshot.
	FetchSnapshot(ctx context.Context, repo string) (*schema.Snapshot, error)
}

// SnapshotReader reads the full raw snapshot log.
type SnapshotReader interface {
	ReadAll() ([]schema.Snapshot, error)
}

// SnapshotAppender appends snapshots to the raw log. Appended snapshots are
// immutable; the log only ever grows.
type SnapshotAppender interface {
	Append(snaps ...schema.Snapshot) error
}
