package repository

import (
	"context"

	"alcyxob/workout-log/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer
var (
	ErrNotFound  = RepositoryError("not found")
	ErrDuplicate = RepositoryError("duplicate key")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	// UpdateProfile changes the display name and onboarding flag only.
	UpdateProfile(ctx context.Context, user *domain.User) error
}

// SessionRepository stores workout sessions. Every method is scoped to the owning user.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.WorkoutSession) (primitive.ObjectID, error)
	GetByID(ctx context.Context, userID, id primitive.ObjectID) (*domain.WorkoutSession, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutSession, error) // date desc
	Replace(ctx context.Context, session *domain.WorkoutSession) error
	Delete(ctx context.Context, userID, id primitive.ObjectID) error
}

// InBodyRepository stores body-composition records. Every method is scoped to the owning user.
type InBodyRepository interface {
	Create(ctx context.Context, record *domain.InBodyRecord) (primitive.ObjectID, error)
	GetByID(ctx context.Context, userID, id primitive.ObjectID) (*domain.InBodyRecord, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.InBodyRecord, error) // reportDate desc
	Replace(ctx context.Context, record *domain.InBodyRecord) error
	Delete(ctx context.Context, userID, id primitive.ObjectID) error
	SetScan(ctx context.Context, userID, id primitive.ObjectID, objectKey, contentType string) error
}

// ExerciseCatalogRepository is read-only for API callers; UpsertMany is used for seeding.
type ExerciseCatalogRepository interface {
	List(ctx context.Context) ([]domain.ExerciseCatalogEntry, error)
	Search(ctx context.Context, query string) ([]domain.ExerciseCatalogEntry, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ExerciseCatalogEntry, error)
	UpsertMany(ctx context.Context, entries []domain.ExerciseCatalogEntry) error
}
