package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
)

// DeleteEntryInput represents the input for entry deletion.
type DeleteEntryInput struct {
	UserID   uuid.UUID
	Kind     entity.EntryKind
	MonthKey string
	EntryID  uuid.UUID
}

// DeleteEntryUseCase removes one entry; the bucket itself stays.
type DeleteEntryUseCase struct {
	userRepo adapter.UserRepository
}

// NewDeleteEntryUseCase creates a new DeleteEntryUseCase instance.
func NewDeleteEntryUseCase(userRepo adapter.UserRepository) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{userRepo: userRepo}
}

// Execute performs the deletion.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, input DeleteEntryInput) error {
	key, err := entity.ParseMonthKey(input.MonthKey)
	if err != nil {
		return err
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return err
	}

	if err := user.Ledger.Book(input.Kind).Delete(key, input.EntryID); err != nil {
		return err
	}

	if err := uc.userRepo.SaveAggregate(ctx, user); err != nil {
		return fmt.Errorf("failed to persist ledger: %w", err)
	}
	return nil
}
