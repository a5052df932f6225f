package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
)

// ListMonthEntriesInput represents the input for listing one month's entries.
type ListMonthEntriesInput struct {
	UserID   uuid.UUID
	Kind     entity.EntryKind
	MonthKey string
}

// ListMonthEntriesUseCase lists a user's entries within one month bucket.
type ListMonthEntriesUseCase struct {
	userRepo adapter.UserRepository
}

// NewListMonthEntriesUseCase creates a new ListMonthEntriesUseCase instance.
func NewListMonthEntriesUseCase(userRepo adapter.UserRepository) *ListMonthEntriesUseCase {
	return &ListMonthEntriesUseCase{userRepo: userRepo}
}

// Execute returns the bucket's entries newest first. An absent bucket is
// not an error; it yields an empty list.
func (uc *ListMonthEntriesUseCase) Execute(ctx context.Context, input ListMonthEntriesInput) ([]entity.Entry, error) {
	key, err := entity.ParseMonthKey(input.MonthKey)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return user.Ledger.Book(input.Kind).ListMonth(key), nil
}
