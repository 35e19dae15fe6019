package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"alcyxob/workout-log/internal/domain"
	"alcyxob/workout-log/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrExerciseNotFound = errors.New("exercise not found")

// CatalogService exposes the read-only exercise catalog.
type CatalogService interface {
	ListExercises(ctx context.Context, query string) ([]domain.ExerciseCatalogEntry, error)
	GetExercise(ctx context.Context, exerciseID primitive.ObjectID) (*domain.ExerciseCatalogEntry, error)
}

type catalogService struct {
	catalogRepo repository.ExerciseCatalogRepository
}

func NewCatalogService(catalogRepo repository.ExerciseCatalogRepository) CatalogService {
	return &catalogService{catalogRepo: catalogRepo}
}

// ListExercises returns the whole catalog, or the entries whose titles or
// aliases contain query when it is not blank.
func (s *catalogService) ListExercises(ctx context.Context, query string) ([]domain.ExerciseCatalogEntry, error) {
	query = strings.TrimSpace(query)
	var (
		entries []domain.ExerciseCatalogEntry
		err     error
	)
	if query == "" {
		entries, err = s.catalogRepo.List(ctx)
	} else {
		entries, err = s.catalogRepo.Search(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return entries, nil
}

func (s *catalogService) GetExercise(ctx context.Context, exerciseID primitive.ObjectID) (*domain.ExerciseCatalogEntry, error) {
	entry, err := s.catalogRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	return entry, nil
}
