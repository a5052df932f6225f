// Package ledger contains the month-bucketed ledger use cases. Each use
// case performs one load-mutate-persist cycle against a single user's
// aggregate; a failing ledger operation skips the persist entirely.
package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

// CreateEntryInput represents the input for entry creation.
type CreateEntryInput struct {
	UserID uuid.UUID
	Kind   entity.EntryKind
	Name   string
	Value  decimal.Decimal
	Date   string
	Icon   string
	Color  string
	Note   string
}

// CreateEntryOutput represents the output of entry creation.
type CreateEntryOutput struct {
	Entry    entity.Entry
	MonthKey entity.MonthKey
}

// CreateEntryUseCase inserts a new entry into the bucket derived from its date.
type CreateEntryUseCase struct {
	userRepo adapter.UserRepository
}

// NewCreateEntryUseCase creates a new CreateEntryUseCase instance.
func NewCreateEntryUseCase(userRepo adapter.UserRepository) *CreateEntryUseCase {
	return &CreateEntryUseCase{userRepo: userRepo}
}

// Execute performs the entry creation.
func (uc *CreateEntryUseCase) Execute(ctx context.Context, input CreateEntryInput) (*CreateEntryOutput, error) {
	if input.Name == "" || input.Date == "" {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeMissingEntryFields,
			"name, value and date are required",
			domainerror.ErrMissingEntryFields,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	entry, key, err := user.Ledger.Book(input.Kind).Insert(input.Date, entity.EntryFields{
		Icon:  input.Icon,
		Color: input.Color,
		Name:  input.Name,
		Value: input.Value,
		Note:  input.Note,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.userRepo.SaveAggregate(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to persist ledger: %w", err)
	}

	return &CreateEntryOutput{Entry: entry, MonthKey: key}, nil
}
