package service

import (
	"context"
	"time"

	"alcyxob/workout-log/internal/domain"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockSessionRepository is a mock implementation of repository.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error) {
	args := m.Called(ctx, session)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockSessionRepository) GetByID(ctx context.Context, userID, id primitive.ObjectID) (*domain.WorkoutSession, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkoutSession), args.Error(1)
}

func (m *MockSessionRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkoutSession), args.Error(1)
}

func (m *MockSessionRepository) Replace(ctx context.Context, session *domain.WorkoutSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// MockInBodyRepository is a mock implementation of repository.InBodyRepository
type MockInBodyRepository struct {
	mock.Mock
}

func (m *MockInBodyRepository) Create(ctx context.Context, record *domain.InBodyRecord) (primitive.ObjectID, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockInBodyRepository) GetByID(ctx context.Context, userID, id primitive.ObjectID) (*domain.InBodyRecord, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InBodyRecord), args.Error(1)
}

func (m *MockInBodyRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.InBodyRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InBodyRecord), args.Error(1)
}

func (m *MockInBodyRepository) Replace(ctx context.Context, record *domain.InBodyRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockInBodyRepository) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockInBodyRepository) SetScan(ctx context.Context, userID, id primitive.ObjectID, objectKey, contentType string) error {
	args := m.Called(ctx, userID, id, objectKey, contentType)
	return args.Error(0)
}

// MockCatalogRepository is a mock implementation of repository.ExerciseCatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) List(ctx context.Context) ([]domain.ExerciseCatalogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExerciseCatalogEntry), args.Error(1)
}

func (m *MockCatalogRepository) Search(ctx context.Context, query string) ([]domain.ExerciseCatalogEntry, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExerciseCatalogEntry), args.Error(1)
}

func (m *MockCatalogRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ExerciseCatalogEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExerciseCatalogEntry), args.Error(1)
}

func (m *MockCatalogRepository) UpsertMany(ctx context.Context, entries []domain.ExerciseCatalogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

// MockObjectStorage is a mock implementation of storage.ObjectStorage
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) PresignUpload(ctx context.Context, objectKey, contentType string, expires time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, contentType, expires)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) PresignDownload(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, expires)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) DeleteObject(ctx context.Context, objectKey string) error {
	args := m.Called(ctx, objectKey)
	return args.Error(0)
}
