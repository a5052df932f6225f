package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
)

// GetEntryInput represents the input for fetching one entry.
type GetEntryInput struct {
	UserID   uuid.UUID
	Kind     entity.EntryKind
	MonthKey string
	EntryID  uuid.UUID
}

// GetEntryUseCase fetches a single entry addressed by (month key, id).
type GetEntryUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetEntryUseCase creates a new GetEntryUseCase instance.
func NewGetEntryUseCase(userRepo adapter.UserRepository) *GetEntryUseCase {
	return &GetEntryUseCase{userRepo: userRepo}
}

// Execute returns the addressed entry.
func (uc *GetEntryUseCase) Execute(ctx context.Context, input GetEntryInput) (*entity.Entry, error) {
	key, err := entity.ParseMonthKey(input.MonthKey)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	entry, err := user.Ledger.Book(input.Kind).Get(key, input.EntryID)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
