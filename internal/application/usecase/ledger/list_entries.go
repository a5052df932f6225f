package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
)

// ListEntriesInput represents the input for listing all entries of a kind.
type ListEntriesInput struct {
	UserID uuid.UUID
	Kind   entity.EntryKind
}

// ListEntriesUseCase lists a user's entries across every month bucket.
type ListEntriesUseCase struct {
	userRepo adapter.UserRepository
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(userRepo adapter.UserRepository) *ListEntriesUseCase {
	return &ListEntriesUseCase{userRepo: userRepo}
}

// Execute returns all entries of the kind, newest first.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, input ListEntriesInput) ([]entity.Entry, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return user.Ledger.Book(input.Kind).ListAll(), nil
}
