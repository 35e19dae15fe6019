package api

import (
	"context"

	"alcyxob/workout-log/internal/domain"
	"alcyxob/workout-log/internal/service"
	"alcyxob/workout-log/internal/summary"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockAuthService is a mock implementation of service.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, displayName, email, password string) (*domain.User, error) {
	args := m.Called(ctx, displayName, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.User), args.Error(2)
}

func (m *MockAuthService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, update service.ProfileUpdate) (*domain.User, error) {
	args := m.Called(ctx, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) ParseToken(tokenString string) (primitive.ObjectID, error) {
	args := m.Called(tokenString)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

// MockSessionService is a mock implementation of service.SessionService
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, userID primitive.ObjectID, session *domain.WorkoutSession) (*domain.WorkoutSession, error) {
	args := m.Called(ctx, userID, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkoutSession), args.Error(1)
}

func (m *MockSessionService) GetSession(ctx context.Context, userID, sessionID primitive.ObjectID) (*domain.WorkoutSession, error) {
	args := m.Called(ctx, userID, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkoutSession), args.Error(1)
}

func (m *MockSessionService) ListSessions(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkoutSession), args.Error(1)
}

func (m *MockSessionService) ReplaceSession(ctx context.Context, userID, sessionID primitive.ObjectID, session *domain.WorkoutSession) (*domain.WorkoutSession, error) {
	args := m.Called(ctx, userID, sessionID, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkoutSession), args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, userID, sessionID primitive.ObjectID) error {
	args := m.Called(ctx, userID, sessionID)
	return args.Error(0)
}

// MockInBodyService is a mock implementation of service.InBodyService
type MockInBodyService struct {
	mock.Mock
}

func (m *MockInBodyService) CreateRecord(ctx context.Context, userID primitive.ObjectID, record *domain.InBodyRecord) (*domain.InBodyRecord, error) {
	args := m.Called(ctx, userID, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InBodyRecord), args.Error(1)
}

func (m *MockInBodyService) GetRecord(ctx context.Context, userID, recordID primitive.ObjectID) (*domain.InBodyRecord, error) {
	args := m.Called(ctx, userID, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InBodyRecord), args.Error(1)
}

func (m *MockInBodyService) ListRecords(ctx context.Context, userID primitive.ObjectID) ([]domain.InBodyRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InBodyRecord), args.Error(1)
}

func (m *MockInBodyService) ReplaceRecord(ctx context.Context, userID, recordID primitive.ObjectID, record *domain.InBodyRecord) (*domain.InBodyRecord, error) {
	args := m.Called(ctx, userID, recordID, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InBodyRecord), args.Error(1)
}

func (m *MockInBodyService) DeleteRecord(ctx context.Context, userID, recordID primitive.ObjectID) error {
	args := m.Called(ctx, userID, recordID)
	return args.Error(0)
}

func (m *MockInBodyService) CreateScanUpload(ctx context.Context, userID, recordID primitive.ObjectID, contentType string) (*service.ScanUpload, error) {
	args := m.Called(ctx, userID, recordID, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ScanUpload), args.Error(1)
}

func (m *MockInBodyService) GetScanDownloadURL(ctx context.Context, userID, recordID primitive.ObjectID) (string, error) {
	args := m.Called(ctx, userID, recordID)
	return args.String(0), args.Error(1)
}

// MockCatalogService is a mock implementation of service.CatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListExercises(ctx context.Context, query string) ([]domain.ExerciseCatalogEntry, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExerciseCatalogEntry), args.Error(1)
}

func (m *MockCatalogService) GetExercise(ctx context.Context, exerciseID primitive.ObjectID) (*domain.ExerciseCatalogEntry, error) {
	args := m.Called(ctx, exerciseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExerciseCatalogEntry), args.Error(1)
}

// MockDashboardService is a mock implementation of service.DashboardService
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetDashboard(ctx context.Context, userID primitive.ObjectID, rangeParam string) (*summary.Dashboard, error) {
	args := m.Called(ctx, userID, rangeParam)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*summary.Dashboard), args.Error(1)
}

// MockOnboardingService is a mock implementation of service.OnboardingService
type MockOnboardingService struct {
	mock.Mock
}

func (m *MockOnboardingService) SeedSampleData(ctx context.Context, userID primitive.ObjectID) (*service.SeedResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SeedResult), args.Error(1)
}
