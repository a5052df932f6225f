// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerbook/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
// Field names follow the expense wire contract (nameExpense, valueExpense,
// dateExpense, anotation).
type CreateExpenseRequest struct {
	Icon         string   `json:"icon"`
	Color        string   `json:"color"`
	NameExpense  string   `json:"nameExpense" binding:"required,min=1,max=255"`
	ValueExpense *float64 `json:"valueExpense" binding:"required"`
	DateExpense  string   `json:"dateExpense" binding:"required"`
	Anotation    string   `json:"anotation,omitempty" binding:"omitempty,max=1000"`
}

// UpdateExpenseRequest represents the request body for a partial expense
// update. Absent fields keep their prior value.
type UpdateExpenseRequest struct {
	Icon         *string  `json:"icon,omitempty"`
	Color        *string  `json:"color,omitempty"`
	NameExpense  *string  `json:"nameExpense,omitempty" binding:"omitempty,min=1,max=255"`
	ValueExpense *float64 `json:"valueExpense,omitempty"`
	DateExpense  *string  `json:"dateExpense,omitempty"`
	Anotation    *string  `json:"anotation,omitempty" binding:"omitempty,max=1000"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID           string `json:"id"`
	Icon         string `json:"icon"`
	Color        string `json:"color"`
	NameExpense  string `json:"nameExpense"`
	ValueExpense string `json:"valueExpense"`
	DateExpense  string `json:"dateExpense"`
	Anotation    string `json:"anotation,omitempty"`
}

// CreateExpenseResponse represents the response for expense creation.
type CreateExpenseResponse struct {
	Expense   ExpenseResponse `json:"expense"`
	MonthYear string          `json:"monthYear"`
}

// UpdateExpenseResponse represents the response for an expense update.
// MonthYear is the bucket the expense now lives in; Moved reports that it
// changed, in which case the expense must be re-addressed under the new key.
type UpdateExpenseResponse struct {
	Expense   ExpenseResponse `json:"expense"`
	MonthYear string          `json:"monthYear"`
	Moved     bool            `json:"moved"`
}

// ToPatch converts the request into a domain entry patch.
func (r UpdateExpenseRequest) ToPatch() entity.EntryPatch {
	patch := entity.EntryPatch{
		Icon:  r.Icon,
		Color: r.Color,
		Name:  r.NameExpense,
		Date:  r.DateExpense,
		Note:  r.Anotation,
	}
	if r.ValueExpense != nil {
		value := decimal.NewFromFloat(*r.ValueExpense)
		patch.Value = &value
	}
	return patch
}

// ToExpenseResponse converts a domain entry to an ExpenseResponse DTO.
func ToExpenseResponse(entry entity.Entry) ExpenseResponse {
	return ExpenseResponse{
		ID:           entry.ID.String(),
		Icon:         entry.Icon,
		Color:        entry.Color,
		NameExpense:  entry.Name,
		ValueExpense: entry.Value.String(),
		DateExpense:  entry.Date.Format(time.RFC3339),
		Anotation:    entry.Note,
	}
}

// ToExpenseListResponse converts a slice of domain entries to DTOs.
func ToExpenseListResponse(entries []entity.Entry) []ExpenseResponse {
	responses := make([]ExpenseResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, ToExpenseResponse(entry))
	}
	return responses
}
