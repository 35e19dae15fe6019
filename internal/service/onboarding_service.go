package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"alcyxob/workout-log/internal/cache"
	"alcyxob/workout-log/internal/domain"
	"alcyxob/workout-log/internal/metrics"
	"alcyxob/workout-log/internal/repository"
	"alcyxob/workout-log/internal/summary"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var ErrAlreadyOnboarded = errors.New("sample data can only be loaded before onboarding")

// SeedResult reports what SeedSampleData wrote.
type SeedResult struct {
	Sessions int `json:"sessions"`
	Records  int `json:"records"`
}

type OnboardingService interface {
	SeedSampleData(ctx context.Context, userID primitive.ObjectID) (*SeedResult, error)
}

type onboardingService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	inBodyRepo  repository.InBodyRepository
	catalogRepo repository.ExerciseCatalogRepository
	cache       *cache.UserCache
	metrics     *metrics.Manager
	logger      *zap.Logger
	location    *time.Location
	clock       func() time.Time
}

func NewOnboardingService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	inBodyRepo repository.InBodyRepository,
	catalogRepo repository.ExerciseCatalogRepository,
	userCache *cache.UserCache,
	metricsManager *metrics.Manager,
	logger *zap.Logger,
	location *time.Location,
	clock func() time.Time,
) OnboardingService {
	if clock == nil {
		clock = time.Now
	}
	if location == nil {
		location = time.Local
	}
	return &onboardingService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		inBodyRepo:  inBodyRepo,
		catalogRepo: catalogRepo,
		cache:       userCache,
		metrics:     metricsManager,
		logger:      logger,
		location:    location,
		clock:       clock,
	}
}

// SeedSampleData writes a week of sample sessions and two months of sample
// measurements dated relative to today, then marks the user onboarded.
func (s *onboardingService) SeedSampleData(ctx context.Context, userID primitive.ObjectID) (*SeedResult, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user.IsOnboard {
		return nil, ErrAlreadyOnboarded
	}

	catalogIDs, err := s.ensureSampleCatalog(ctx)
	if err != nil {
		return nil, err
	}

	today := summary.StartOfDay(s.clock().In(s.location))
	// Invalidate even on partial failure so the dashboard never shows stale data.
	defer s.cache.Invalidate(userID)

	result := &SeedResult{}
	for _, session := range buildSampleSessions(today, catalogIDs) {
		session.UserID = userID
		assignEntryIDs(&session)
		if _, err := s.sessionRepo.Create(ctx, &session); err != nil {
			return nil, fmt.Errorf("seed session: %w", err)
		}
		result.Sessions++
	}
	for _, record := range buildSampleRecords(today) {
		record.UserID = userID
		if _, err := s.inBodyRepo.Create(ctx, &record); err != nil {
			return nil, fmt.Errorf("seed inbody record: %w", err)
		}
		result.Records++
	}

	user.IsOnboard = true
	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, fmt.Errorf("mark user onboarded: %w", err)
	}

	s.metrics.CounterSampleDataSeeded.Inc()
	s.logger.Info("sample data seeded",
		zap.String("uid", userID.Hex()),
		zap.Int("sessions", result.Sessions),
		zap.Int("records", result.Records),
	)
	return result, nil
}

// ensureSampleCatalog upserts the catalog entries used by the sample sessions
// and returns their IDs keyed by title.
func (s *onboardingService) ensureSampleCatalog(ctx context.Context) (map[string]string, error) {
	entries := make([]domain.ExerciseCatalogEntry, len(sampleCatalog))
	for i, e := range sampleCatalog {
		e.Type = domain.CatalogGlobal
		e.CreatedBy = "system"
		entries[i] = e
	}
	if err := s.catalogRepo.UpsertMany(ctx, entries); err != nil {
		return nil, fmt.Errorf("upsert sample catalog: %w", err)
	}

	catalog, err := s.catalogRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	ids := make(map[string]string, len(sampleCatalog))
	for _, entry := range catalog {
		ids[entry.TitleEn] = entry.ID.Hex()
	}
	return ids, nil
}
