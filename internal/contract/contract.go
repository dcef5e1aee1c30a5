// Package contract holds the validated runtime configuration and the small
// shared contracts (snapshot source, labels, logging) used across fplassist.
package contract

import (
	"context"

	"fplassist/schema"
)

// SnapshotSource provides the one data snapshot the engine runs over.
// The production implementation is the FPL API client; tests substitute
// a static snapshot.
type SnapshotSource interface {
	Snapshot(ctx context.Context) (schema.Snapshot, error)
}
