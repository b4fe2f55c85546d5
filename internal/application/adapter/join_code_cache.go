// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// JoinCodeCache defines the interface for the join code lookup cache.
// Lookups by join code happen on every join attempt, so active codes are
// cached in Redis with the owning hangout ID as the value.
type JoinCodeCache interface {
	// Set stores the hangout ID under its join code.
	Set(ctx context.Context, joinCode string, hangoutID uuid.UUID) error

	// Get retrieves the hangout ID for a join code. Returns uuid.Nil and no
	// error on a cache miss.
	Get(ctx context.Context, joinCode string) (uuid.UUID, error)

	// Delete removes a join code from the cache.
	Delete(ctx context.Context, joinCode string) error
}
