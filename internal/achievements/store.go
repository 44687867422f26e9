package achievements

import "context"

// Store is the persistence boundary of the engine. Implementations hold one
// record per (user, achievement) pair.
//
// Save always receives the absolute record computed in memory, never a delta;
// overlapping writes for the same key therefore converge to the last value
// issued by the engine regardless of store-side ordering guarantees.
type Store interface {
	// Load bulk-reads every record for the user. Missing achievements are
	// simply absent from the map.
	Load(ctx context.Context, userID string) (map[string]Record, error)

	// Save upserts one record.
	Save(ctx context.Context, userID, achievementID string, rec Record) error
}
