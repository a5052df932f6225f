// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/domain/entity"
)

// UserRepository defines the persistence contract for the user aggregate.
// Implementations must detect concurrent writes: SaveAggregate fails with
// domain ErrAggregateConflict when the aggregate version moved between
// load and save, and with ErrStorageUnavailable on collaborator failure
// or timeout.
type UserRepository interface {
	// Create persists a brand-new user with its empty ledger.
	Create(ctx context.Context, user *entity.User) error

	// FindByID loads the full aggregate, ledger included.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail checks if a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// SaveAggregate persists the mutated ledger using compare-and-swap on
	// the aggregate version, bumping it on success.
	SaveAggregate(ctx context.Context, user *entity.User) error
}
