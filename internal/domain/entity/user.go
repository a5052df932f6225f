// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the aggregate root owning a ledger. Every request loads one
// user, mutates its ledger in memory, and persists the aggregate as a
// whole. Version backs the storage layer's concurrent-write detection.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Ledger       Ledger
	Version      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User with an empty ledger.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Ledger:       NewLedger(),
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
