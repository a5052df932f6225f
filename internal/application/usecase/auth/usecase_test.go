package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerbook/backend/internal/application/adapter"
	"github.com/ledgerbook/backend/internal/domain/entity"
	domainerror "github.com/ledgerbook/backend/internal/domain/error"
)

type fakeUserRepo struct {
	users   map[string]*entity.User
	created *entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.users[user.Email] = user
	f.created = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

func (f *fakeUserRepo) SaveAggregate(ctx context.Context, user *entity.User) error {
	f.users[user.Email] = user
	return nil
}

// fakePasswordService hashes by prefixing; verification checks the prefix.
type fakePasswordService struct {
	weak bool
}

func (f *fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (f *fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func (f *fakePasswordService) ValidatePasswordStrength(password string) error {
	if f.weak || len(password) < 8 {
		return domainerror.ErrWeakPassword
	}
	return nil
}

type fakeTokenService struct {
	issueErr error
}

func (f *fakeTokenService) IssueToken(ctx context.Context, userID uuid.UUID, email, name string) (string, error) {
	if f.issueErr != nil {
		return "", f.issueErr
	}
	return "token-for-" + userID.String(), nil
}

func (f *fakeTokenService) ValidateToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return &adapter.TokenClaims{ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func TestRegisterUserUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with empty ledger", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewRegisterUserUseCase(repo, &fakePasswordService{})

		out, err := uc.Execute(ctx, RegisterUserInput{
			Email:    "ana@example.com",
			Name:     "Ana",
			Password: "s3cret-pass",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.User.ID == uuid.Nil {
			t.Error("expected an assigned user id")
		}
		if out.User.PasswordHash != "hashed:s3cret-pass" {
			t.Errorf("hash = %q", out.User.PasswordHash)
		}
		if len(out.User.Ledger) != 0 {
			t.Errorf("new ledger should be empty, got %d buckets", len(out.User.Ledger))
		}
		if repo.created == nil {
			t.Error("Create was never called")
		}
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepo(), &fakePasswordService{})

		_, err := uc.Execute(ctx, RegisterUserInput{
			Email:    "not-an-email",
			Name:     "Ana",
			Password: "s3cret-pass",
		})
		if !errors.Is(err, domainerror.ErrInvalidEmail) {
			t.Fatalf("error = %v, want ErrInvalidEmail", err)
		}
	})

	t.Run("rejects weak password", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepo(), &fakePasswordService{weak: true})

		_, err := uc.Execute(ctx, RegisterUserInput{
			Email:    "ana@example.com",
			Name:     "Ana",
			Password: "short",
		})
		if !errors.Is(err, domainerror.ErrWeakPassword) {
			t.Fatalf("error = %v, want ErrWeakPassword", err)
		}
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := newFakeUserRepo()
		repo.users["ana@example.com"] = entity.NewUser("ana@example.com", "Ana", "hashed:x")
		uc := NewRegisterUserUseCase(repo, &fakePasswordService{})

		_, err := uc.Execute(ctx, RegisterUserInput{
			Email:    "ana@example.com",
			Name:     "Ana",
			Password: "s3cret-pass",
		})
		if !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			t.Fatalf("error = %v, want ErrEmailAlreadyExists", err)
		}
	})
}

func TestLoginUserUseCase(t *testing.T) {
	ctx := context.Background()

	setup := func() (*fakeUserRepo, *entity.User) {
		repo := newFakeUserRepo()
		user := entity.NewUser("ana@example.com", "Ana", "hashed:s3cret-pass")
		repo.users[user.Email] = user
		return repo, user
	}

	t.Run("issues a token on valid credentials", func(t *testing.T) {
		repo, user := setup()
		uc := NewLoginUserUseCase(repo, &fakePasswordService{}, &fakeTokenService{})

		out, err := uc.Execute(ctx, LoginUserInput{
			Email:    "ana@example.com",
			Password: "s3cret-pass",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Token != "token-for-"+user.ID.String() {
			t.Errorf("token = %q", out.Token)
		}
		if out.User.ID != user.ID {
			t.Errorf("user = %+v", out.User)
		}
	})

	t.Run("wrong password yields the generic credential error", func(t *testing.T) {
		repo, _ := setup()
		uc := NewLoginUserUseCase(repo, &fakePasswordService{}, &fakeTokenService{})

		_, err := uc.Execute(ctx, LoginUserInput{
			Email:    "ana@example.com",
			Password: "wrong",
		})
		if !errors.Is(err, domainerror.ErrInvalidCredentials) {
			t.Fatalf("error = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown email yields the same generic error", func(t *testing.T) {
		uc := NewLoginUserUseCase(newFakeUserRepo(), &fakePasswordService{}, &fakeTokenService{})

		_, err := uc.Execute(ctx, LoginUserInput{
			Email:    "ghost@example.com",
			Password: "s3cret-pass",
		})
		if !errors.Is(err, domainerror.ErrInvalidCredentials) {
			t.Fatalf("error = %v, want ErrInvalidCredentials", err)
		}
		// The message must not reveal whether the account exists.
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Message != "invalid email or password" {
			t.Errorf("unexpected error shape: %v", err)
		}
	})

	t.Run("token issuance failure propagates", func(t *testing.T) {
		repo, _ := setup()
		uc := NewLoginUserUseCase(repo, &fakePasswordService{}, &fakeTokenService{issueErr: errors.New("kms down")})

		_, err := uc.Execute(ctx, LoginUserInput{
			Email:    "ana@example.com",
			Password: "s3cret-pass",
		})
		if err == nil {
			t.Fatal("expected an error")
		}
	})
}
