// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
	"github.com/ledgerbook/backend/internal/integration/persistence/model"
)

// userRepository implements the adapter.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *gorm.DB) adapter.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create persists a brand-new user with its empty ledger.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	userModel, err := model.FromEntity(user)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Create(userModel)
	if result.Error != nil {
		return storageFailure(result.Error)
	}
	return nil
}

// FindByID loads the full aggregate, ledger included.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userModel model.UserModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, storageFailure(result.Error)
	}
	return userModel.ToEntity()
}

// FindByEmail retrieves a user by their email address.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.UserModel
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, storageFailure(result.Error)
	}
	return userModel.ToEntity()
}

// ExistsByEmail checks if a user with the given email exists.
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.UserModel{}).Where("email = ?", email).Count(&count)
	if result.Error != nil {
		return false, storageFailure(result.Error)
	}
	return count > 0, nil
}

// SaveAggregate persists the mutated ledger with compare-and-swap on the
// aggregate version. Zero affected rows means another request saved the
// aggregate first; the caller surfaces the conflict and the client may
// retry the whole request.
func (r *userRepository) SaveAggregate(ctx context.Context, user *entity.User) error {
	userModel, err := model.FromEntity(user)
	if err != nil {
		return err
	}

	loadedVersion := user.Version
	result := r.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("id = ? AND version = ?", user.ID, loadedVersion).
		Updates(map[string]interface{}{
			"ledger":     userModel.Ledger,
			"version":    loadedVersion + 1,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return storageFailure(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrAggregateConflict
	}

	user.Version = loadedVersion + 1
	return nil
}

// storageFailure maps collaborator errors, timeouts and cancellations
// included, onto the storage-unavailable domain error.
func storageFailure(err error) error {
	return fmt.Errorf("%w: %v", domainerror.ErrStorageUnavailable, err)
}
