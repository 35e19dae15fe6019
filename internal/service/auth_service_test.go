package service

import (
	"context"
	"testing"
	"time"

	"alcyxob/workout-log/internal/domain"
	"alcyxob/workout-log/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func newTestAuthService(repo *MockUserRepository) AuthService {
	return NewAuthService(repo, testSecret, time.Hour, zap.NewNop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newTestAuthService(repo)
	ctx := context.Background()
	newID := primitive.NewObjectID()

	repo.On("GetByEmail", ctx, "jane@example.com").Return(nil, repository.ErrNotFound)
	repo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "jane@example.com" && u.DisplayName == "Jane" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")) == nil
	})).Return(newID, nil)

	user, err := svc.Register(ctx, " Jane ", "Jane@Example.com", "password123")

	require.NoError(t, err)
	assert.Equal(t, newID, user.ID)
	assert.Empty(t, user.PasswordHash)
	assert.False(t, user.IsOnboard)
	repo.AssertExpectations(t)
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newTestAuthService(repo)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "jane@example.com").Return(&domain.User{Email: "jane@example.com"}, nil)

	_, err := svc.Register(ctx, "Jane", "jane@example.com", "password123")

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_DuplicateRace(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newTestAuthService(repo)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "jane@example.com").Return(nil, repository.ErrNotFound)
	repo.On("Create", ctx, mock.Anything).Return(primitive.NilObjectID, repository.ErrDuplicate)

	_, err := svc.Register(ctx, "Jane", "jane@example.com", "password123")

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_Register_Validation(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newTestAuthService(repo)

	cases := map[string][3]string{
		"short password": {"Jane", "jane@example.com", "short"},
		"bad email":      {"Jane", "not-an-email", "password123"},
		"blank name":     {"  ", "jane@example.com", "password123"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), in[0], in[1], in[2])
			assert.ErrorIs(t, err, ErrValidationFailed)
		})
	}
	repo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}

func TestAuthService_LoginAndParseToken(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newTestAuthService(repo)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &domain.User{ID: primitive.NewObjectID(), Email: "jane@example.com", PasswordHash: string(hash)}
	repo.On("GetByEmail", ctx, "jane@example.com").Return(stored, nil)

	token, user, err := svc.Login(ctx, "jane@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Empty(t, user.PasswordHash)

	uid, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, uid)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newTestAuthService(repo)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.On("GetByEmail", ctx, "jane@example.com").Return(&domain.User{PasswordHash: string(hash)}, nil)
	repo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, repository.ErrNotFound)

	_, _, err = svc.Login(ctx, "jane@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	_, _, err = svc.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestAuthService_ParseToken_Rejects(t *testing.T) {
	svc := newTestAuthService(new(MockUserRepository))

	otherRepo := new(MockUserRepository)
	other := NewAuthService(otherRepo, "other-secret", time.Hour, zap.NewNop())
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	otherRepo.On("GetByEmail", mock.Anything, "jane@example.com").
		Return(&domain.User{ID: primitive.NewObjectID(), PasswordHash: string(hash)}, nil)
	foreignToken, _, err := other.Login(context.Background(), "jane@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.ParseToken(foreignToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ParseToken("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newTestAuthService(repo)
	ctx := context.Background()
	uid := primitive.NewObjectID()

	repo.On("GetByID", ctx, uid).Return(&domain.User{ID: uid, DisplayName: "Old", PasswordHash: "hash"}, nil)
	repo.On("UpdateProfile", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.DisplayName == "New" && u.IsOnboard
	})).Return(nil)

	name, onboard := "New", true
	user, err := svc.UpdateProfile(ctx, uid, ProfileUpdate{DisplayName: &name, IsOnboard: &onboard})

	require.NoError(t, err)
	assert.Equal(t, "New", user.DisplayName)
	assert.True(t, user.IsOnboard)
	assert.Empty(t, user.PasswordHash)
	repo.AssertExpectations(t)
}

func TestAuthService_GetProfile_NotFound(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newTestAuthService(repo)
	uid := primitive.NewObjectID()
	repo.On("GetByID", mock.Anything, uid).Return(nil, repository.ErrNotFound)

	_, err := svc.GetProfile(context.Background(), uid)

	assert.ErrorIs(t, err, ErrUserNotFound)
}
