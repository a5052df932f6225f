package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
	"github.com/ledgerbook/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	if err := db.AutoMigrate(&model.UserModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func persistedUser(t *testing.T, repo adapter.UserRepository) *entity.User {
	t.Helper()
	user := entity.NewUser("ana@example.com", "Ana", "$2a$12$hash")
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	return user
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))
	user := persistedUser(t, repo)

	t.Run("FindByID restores the aggregate", func(t *testing.T) {
		got, err := repo.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if got.Email != "ana@example.com" || got.Version != 1 {
			t.Errorf("user = %+v", got)
		}
		if got.Ledger == nil || len(got.Ledger) != 0 {
			t.Errorf("expected an empty restored ledger, got %+v", got.Ledger)
		}
	})

	t.Run("FindByEmail", func(t *testing.T) {
		got, err := repo.FindByEmail(ctx, "ana@example.com")
		if err != nil {
			t.Fatalf("FindByEmail failed: %v", err)
		}
		if got.ID != user.ID {
			t.Errorf("id = %s, want %s", got.ID, user.ID)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("error = %v, want ErrUserNotFound", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "ghost@example.com")
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("error = %v, want ErrUserNotFound", err)
		}
	})
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))
	persistedUser(t, repo)

	exists, err := repo.ExistsByEmail(ctx, "ana@example.com")
	if err != nil {
		t.Fatalf("ExistsByEmail failed: %v", err)
	}
	if !exists {
		t.Error("expected the registered email to exist")
	}

	exists, err = repo.ExistsByEmail(ctx, "ghost@example.com")
	if err != nil {
		t.Fatalf("ExistsByEmail failed: %v", err)
	}
	if exists {
		t.Error("unregistered email reported as existing")
	}
}

func TestUserRepository_SaveAggregate(t *testing.T) {
	ctx := context.Background()

	t.Run("persists the ledger and bumps the version", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))
		user := persistedUser(t, repo)

		_, _, err := user.Ledger.Insert("2025-08-15", entity.EntryKindExpense, entity.EntryFields{
			Name:  "groceries",
			Value: decimal.NewFromInt(120),
		})
		if err != nil {
			t.Fatalf("ledger insert failed: %v", err)
		}

		if err := repo.SaveAggregate(ctx, user); err != nil {
			t.Fatalf("SaveAggregate failed: %v", err)
		}
		if user.Version != 2 {
			t.Errorf("version = %d, want 2", user.Version)
		}

		reloaded, err := repo.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		if reloaded.Version != 2 {
			t.Errorf("stored version = %d, want 2", reloaded.Version)
		}
		got := reloaded.Ledger.ListMonth("082025", entity.EntryKindExpense)
		if len(got) != 1 || got[0].Name != "groceries" {
			t.Errorf("restored bucket = %+v", got)
		}
		if !got[0].Value.Equal(decimal.NewFromInt(120)) {
			t.Errorf("restored value = %s", got[0].Value)
		}
	})

	t.Run("stale version conflicts", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))
		user := persistedUser(t, repo)

		// Two requests load version 1; the first save wins.
		first, err := repo.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}
		second, err := repo.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("FindByID failed: %v", err)
		}

		if err := repo.SaveAggregate(ctx, first); err != nil {
			t.Fatalf("first save failed: %v", err)
		}
		err = repo.SaveAggregate(ctx, second)
		if !errors.Is(err, domainerror.ErrAggregateConflict) {
			t.Errorf("error = %v, want ErrAggregateConflict", err)
		}
	})

	t.Run("winner can save again with its bumped version", func(t *testing.T) {
		repo := NewUserRepository(newTestDB(t))
		user := persistedUser(t, repo)

		if err := repo.SaveAggregate(ctx, user); err != nil {
			t.Fatalf("first save failed: %v", err)
		}
		if err := repo.SaveAggregate(ctx, user); err != nil {
			t.Fatalf("second save failed: %v", err)
		}
		if user.Version != 3 {
			t.Errorf("version = %d, want 3", user.Version)
		}
	})
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))
	persistedUser(t, repo)

	dup := entity.NewUser("ana@example.com", "Other Ana", "$2a$12$other")
	err := repo.Create(ctx, dup)
	if err == nil {
		t.Fatal("expected the unique index to reject the duplicate email")
	}
	if !errors.Is(err, domainerror.ErrStorageUnavailable) {
		t.Errorf("error = %v, want wrapped ErrStorageUnavailable", err)
	}
}
