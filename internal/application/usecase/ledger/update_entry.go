package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
)

// UpdateEntryInput represents the input for a partial entry update.
type UpdateEntryInput struct {
	UserID   uuid.UUID
	Kind     entity.EntryKind
	MonthKey string
	EntryID  uuid.UUID
	Patch    entity.EntryPatch
}

// UpdateEntryOutput represents the output of an entry update. MonthKey is
// the entry's current bucket; Moved reports a relocation, in which case
// the entry keeps its id but its addressable location changed.
type UpdateEntryOutput struct {
	Entry    entity.Entry
	MonthKey entity.MonthKey
	Moved    bool
}

// UpdateEntryUseCase merges a patch onto an entry, relocating it when the
// patched date falls in a different month.
type UpdateEntryUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateEntryUseCase creates a new UpdateEntryUseCase instance.
func NewUpdateEntryUseCase(userRepo adapter.UserRepository) *UpdateEntryUseCase {
	return &UpdateEntryUseCase{userRepo: userRepo}
}

// Execute performs the update. Any ledger failure aborts before the save,
// so a rejected patch never partially persists.
func (uc *UpdateEntryUseCase) Execute(ctx context.Context, input UpdateEntryInput) (*UpdateEntryOutput, error) {
	key, err := entity.ParseMonthKey(input.MonthKey)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	entry, currentKey, moved, err := user.Ledger.Book(input.Kind).Update(key, input.EntryID, input.Patch)
	if err != nil {
		return nil, err
	}

	if err := uc.userRepo.SaveAggregate(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to persist ledger: %w", err)
	}

	return &UpdateEntryOutput{
		Entry:    entry,
		MonthKey: currentKey,
		Moved:    moved,
	}, nil
}
