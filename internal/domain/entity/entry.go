// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryKind distinguishes the two entry sequences of a bucket.
type EntryKind string

const (
	EntryKindExpense EntryKind = "expense"
	EntryKindRevenue EntryKind = "revenue"
)

// Presentation defaults applied when the caller omits icon or color.
const (
	DefaultExpenseIcon = "pi pi-receipt"
	DefaultRevenueIcon = "pi pi-money-bill"
	DefaultEntryColor  = "#2881e4"
)

// Entry represents a single expense or revenue record. The ID is assigned
// at creation and survives relocation between month buckets.
type Entry struct {
	ID    uuid.UUID       `json:"id"`
	Icon  string          `json:"icon"`
	Color string          `json:"color"`
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
	Date  time.Time       `json:"date"`
	Note  string          `json:"note,omitempty"`
}

// EntryFields carries the caller-supplied fields for a new entry. The date
// travels separately as a raw string so key derivation owns its parsing.
type EntryFields struct {
	Icon  string
	Color string
	Name  string
	Value decimal.Decimal
	Note  string
}

// EntryPatch is a partial update. Nil fields keep their prior value.
// Date stays raw: an unparseable date must abort the update before any
// bucket is touched.
type EntryPatch struct {
	Icon  *string
	Color *string
	Name  *string
	Value *decimal.Decimal
	Date  *string
	Note  *string
}

// DefaultIcon returns the presentation default icon for the kind.
func (k EntryKind) DefaultIcon() string {
	if k == EntryKindRevenue {
		return DefaultRevenueIcon
	}
	return DefaultExpenseIcon
}

// newEntry builds an Entry from caller fields, applying kind defaults.
func newEntry(kind EntryKind, fields EntryFields, date time.Time) Entry {
	e := Entry{
		ID:    uuid.New(),
		Icon:  fields.Icon,
		Color: fields.Color,
		Name:  fields.Name,
		Value: fields.Value,
		Date:  date,
		Note:  fields.Note,
	}
	if e.Icon == "" {
		e.Icon = kind.DefaultIcon()
	}
	if e.Color == "" {
		e.Color = DefaultEntryColor
	}
	return e
}

// merge returns a copy of e with the patch's non-date fields applied.
func (e Entry) merge(patch EntryPatch) Entry {
	if patch.Icon != nil {
		e.Icon = *patch.Icon
	}
	if patch.Color != nil {
		e.Color = *patch.Color
	}
	if patch.Name != nil {
		e.Name = *patch.Name
	}
	if patch.Value != nil {
		e.Value = *patch.Value
	}
	if patch.Note != nil {
		e.Note = *patch.Note
	}
	return e
}
