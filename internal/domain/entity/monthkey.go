// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"regexp"
	"time"

	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

// MonthKey identifies a calendar-month bucket within a user's ledger.
// Canonical form is MMYYYY: zero-padded month followed by a four-digit
// year, e.g. "082025". A MonthKey is always recomputed from an entry's
// date, never stored independently of it.
type MonthKey string

var monthKeyPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])\d{4}$`)

// entryDateLayouts are the accepted wire formats for entry dates.
var entryDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// DeriveMonthKey returns the MonthKey for the UTC calendar month of t.
func DeriveMonthKey(t time.Time) MonthKey {
	u := t.UTC()
	return MonthKey(fmt.Sprintf("%02d%04d", int(u.Month()), u.Year()))
}

// ParseMonthKey validates a raw MMYYYY string received from a caller.
func ParseMonthKey(s string) (MonthKey, error) {
	if !monthKeyPattern.MatchString(s) {
		return "", domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidMonthKey,
			"month key must be MMYYYY",
			domainerror.ErrInvalidMonthKey,
		)
	}
	return MonthKey(s), nil
}

// ParseEntryDate parses a raw date string into an instant. Accepts RFC 3339
// timestamps and plain YYYY-MM-DD dates (interpreted as midnight UTC).
func ParseEntryDate(raw string) (time.Time, error) {
	for _, layout := range entryDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, domainerror.NewLedgerError(
		domainerror.ErrCodeInvalidDate,
		"date must be RFC 3339 or YYYY-MM-DD",
		domainerror.ErrInvalidDate,
	)
}
