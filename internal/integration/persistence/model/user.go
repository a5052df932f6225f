// Package model defines database models for persistence layer.
package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/domain/entity"
)

// UserModel represents the users table. The month-keyed ledger is stored
// as a single JSON document on the aggregate row, mirroring the dynamic
// map-of-buckets shape of the domain model.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Ledger       []byte    `gorm:"type:jsonb;not null"`
	Version      int64     `gorm:"not null;default:1"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() (*entity.User, error) {
	ledger := entity.NewLedger()
	if len(m.Ledger) > 0 {
		if err := json.Unmarshal(m.Ledger, &ledger); err != nil {
			return nil, fmt.Errorf("failed to decode ledger document: %w", err)
		}
	}
	return &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		Ledger:       ledger,
		Version:      m.Version,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}

// FromEntity creates a UserModel from a domain User entity.
func FromEntity(user *entity.User) (*UserModel, error) {
	ledger, err := json.Marshal(user.Ledger)
	if err != nil {
		return nil, fmt.Errorf("failed to encode ledger document: %w", err)
	}
	return &UserModel{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		Ledger:       ledger,
		Version:      user.Version,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}, nil
}
