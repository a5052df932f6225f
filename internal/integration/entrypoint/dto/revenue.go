// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerbook/backend/internal/domain/entity"
)

// CreateRevenueRequest represents the request body for revenue creation.
// Field names follow the revenue wire contract (nameRevenue, valueRevenue,
// dateRevenue, anotation).
type CreateRevenueRequest struct {
	Icon         string   `json:"icon"`
	Color        string   `json:"color"`
	NameRevenue  string   `json:"nameRevenue" binding:"required,min=1,max=255"`
	ValueRevenue *float64 `json:"valueRevenue" binding:"required"`
	DateRevenue  string   `json:"dateRevenue" binding:"required"`
	Anotation    string   `json:"anotation,omitempty" binding:"omitempty,max=1000"`
}

// UpdateRevenueRequest represents the request body for a partial revenue
// update. Absent fields keep their prior value.
type UpdateRevenueRequest struct {
	Icon         *string  `json:"icon,omitempty"`
	Color        *string  `json:"color,omitempty"`
	NameRevenue  *string  `json:"nameRevenue,omitempty" binding:"omitempty,min=1,max=255"`
	ValueRevenue *float64 `json:"valueRevenue,omitempty"`
	DateRevenue  *string  `json:"dateRevenue,omitempty"`
	Anotation    *string  `json:"anotation,omitempty" binding:"omitempty,max=1000"`
}

// RevenueResponse represents a single revenue in API responses.
type RevenueResponse struct {
	ID           string `json:"id"`
	Icon         string `json:"icon"`
	Color        string `json:"color"`
	NameRevenue  string `json:"nameRevenue"`
	ValueRevenue string `json:"valueRevenue"`
	DateRevenue  string `json:"dateRevenue"`
	Anotation    string `json:"anotation,omitempty"`
}

// CreateRevenueResponse represents the response for revenue creation.
type CreateRevenueResponse struct {
	Revenue   RevenueResponse `json:"revenue"`
	MonthYear string          `json:"monthYear"`
}

// UpdateRevenueResponse represents the response for a revenue update.
// MonthYear is the bucket the revenue now lives in; Moved reports that it
// changed, in which case the revenue must be re-addressed under the new key.
type UpdateRevenueResponse struct {
	Revenue   RevenueResponse `json:"revenue"`
	MonthYear string          `json:"monthYear"`
	Moved     bool            `json:"moved"`
}

// ToPatch converts the request into a domain entry patch.
func (r UpdateRevenueRequest) ToPatch() entity.EntryPatch {
	patch := entity.EntryPatch{
		Icon:  r.Icon,
		Color: r.Color,
		Name:  r.NameRevenue,
		Date:  r.DateRevenue,
		Note:  r.Anotation,
	}
	if r.ValueRevenue != nil {
		value := decimal.NewFromFloat(*r.ValueRevenue)
		patch.Value = &value
	}
	return patch
}

// ToRevenueResponse converts a domain entry to a RevenueResponse DTO.
func ToRevenueResponse(entry entity.Entry) RevenueResponse {
	return RevenueResponse{
		ID:           entry.ID.String(),
		Icon:         entry.Icon,
		Color:        entry.Color,
		NameRevenue:  entry.Name,
		ValueRevenue: entry.Value.String(),
		DateRevenue:  entry.Date.Format(time.RFC3339),
		Anotation:    entry.Note,
	}
}

// ToRevenueListResponse converts a slice of domain entries to DTOs.
func ToRevenueListResponse(entries []entity.Entry) []RevenueResponse {
	responses := make([]RevenueResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, ToRevenueResponse(entry))
	}
	return responses
}
