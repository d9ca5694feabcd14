package service

import (
	"context"
	"testing"
	"time"

	"agroadvisor-be/internal/dto"
	"agroadvisor-be/internal/entity"
	"agroadvisor-be/internal/repository/contract"
	"agroadvisor-be/internal/repository/specification"
	"agroadvisor-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users  []*entity.User
	tokens []*entity.EmailVerificationToken
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	copied := *user
	r.users = append(r.users, &copied)
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.users {
		match := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.ByEmail:
				if u.Email != s.Email {
					match = false
				}
			case specification.ByID:
				if u.Id != s.ID {
					match = false
				}
			}
		}
		if match {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUserRepo) ActivateUser(ctx context.Context, userId uuid.UUID) error {
	for _, u := range r.users {
		if u.Id == userId {
			now := time.Now()
			u.Status = entity.UserStatusActive
			u.EmailVerified = true
			u.EmailVerifiedAt = &now
		}
	}
	return nil
}

func (r *fakeUserRepo) CreateEmailVerificationToken(ctx context.Context, token *entity.EmailVerificationToken) error {
	copied := *token
	r.tokens = append(r.tokens, &copied)
	return nil
}

func (r *fakeUserRepo) FindEmailVerificationToken(ctx context.Context, specs ...specification.Specification) (*entity.EmailVerificationToken, error) {
	for _, t := range r.tokens {
		match := true
		for _, spec := range specs {
			if s, ok := spec.(specification.ByToken); ok && t.Token != s.Token {
				match = false
			}
		}
		if match {
			copied := *t
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) DeleteEmailVerificationToken(ctx context.Context, id uuid.UUID) error {
	for i, t := range r.tokens {
		if t.Id == id {
			r.tokens = append(r.tokens[:i], r.tokens[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeAuthUow struct {
	users *fakeUserRepo
}

func (u *fakeAuthUow) Begin(ctx context.Context) error { return nil }
func (u *fakeAuthUow) Commit() error                   { return nil }
func (u *fakeAuthUow) Rollback() error                 { return nil }

func (u *fakeAuthUow) UserRepository() contract.UserRepository               { return u.users }
func (u *fakeAuthUow) ChatSessionRepository() contract.ChatSessionRepository { return nil }
func (u *fakeAuthUow) ChatMessageRepository() contract.ChatMessageRepository { return nil }
func (u *fakeAuthUow) SystemLogRepository() contract.SystemLogRepository     { return nil }

type fakeAuthUowFactory struct {
	uow *fakeAuthUow
}

func (f *fakeAuthUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type nopMailer struct{}

func (nopMailer) SendConfirmationLink(toEmail, link string) error { return nil }

func newAuthFixture() (IAuthService, *fakeUserRepo) {
	users := &fakeUserRepo{}
	svc := NewAuthService(
		&fakeAuthUowFactory{uow: &fakeAuthUow{users: users}},
		nopMailer{},
		nil,
		"http://localhost:8080",
	)
	return svc, users
}

func TestRegisterCreatesPendingUserWithToken(t *testing.T) {
	svc, users := newAuthFixture()

	res, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "farmer@example.com",
		Password: "strongpassword",
	})

	require.NoError(t, err)
	assert.Equal(t, "farmer@example.com", res.Email)

	require.Len(t, users.users, 1)
	assert.Equal(t, entity.UserStatusPending, users.users[0].Status)
	assert.False(t, users.users[0].EmailVerified)

	require.Len(t, users.tokens, 1)
	assert.WithinDuration(t, time.Now().Add(1*time.Hour), users.tokens[0].ExpiresAt, time.Minute)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "farmer@example.com",
		Password: "strongpassword",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "farmer@example.com",
		Password: "anotherpassword",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginRequiresVerifiedEmail(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "farmer@example.com",
		Password: "strongpassword",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "farmer@example.com",
		Password: "strongpassword",
	})
	assert.ErrorIs(t, err, ErrEmailNotVerified)
}

func TestConfirmEmailThenLogin(t *testing.T) {
	svc, users := newAuthFixture()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "farmer@example.com",
		Password: "strongpassword",
	})
	require.NoError(t, err)

	res, err := svc.ConfirmEmail(context.Background(), users.tokens[0].Token)
	require.NoError(t, err)
	assert.True(t, res.Confirmed)
	assert.Empty(t, users.tokens, "token is single use")

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "farmer@example.com",
		Password: "strongpassword",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.AccessToken)
}

func TestConfirmEmailExpiredToken(t *testing.T) {
	svc, users := newAuthFixture()

	hash, err := bcrypt.GenerateFromPassword([]byte("strongpassword"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &entity.User{
		Id:           uuid.New(),
		Email:        "late@example.com",
		PasswordHash: string(hash),
		Status:       entity.UserStatusPending,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, users.Create(context.Background(), user))
	require.NoError(t, users.CreateEmailVerificationToken(context.Background(), &entity.EmailVerificationToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		Token:     "stale-token",
		ExpiresAt: time.Now().Add(-time.Minute),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}))

	_, err = svc.ConfirmEmail(context.Background(), "stale-token")
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestConfirmEmailUnknownToken(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.ConfirmEmail(context.Background(), "never-issued")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, users := newAuthFixture()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "farmer@example.com",
		Password: "strongpassword",
	})
	require.NoError(t, err)

	require.NoError(t, users.ActivateUser(context.Background(), users.users[0].Id))

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "farmer@example.com",
		Password: "wrongpassword",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
