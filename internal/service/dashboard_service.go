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

var ErrInvalidRange = errors.New("range must be one of week, month, all")

type DashboardService interface {
	GetDashboard(ctx context.Context, userID primitive.ObjectID, rangeParam string) (*summary.Dashboard, error)
}

type dashboardService struct {
	sessionRepo repository.SessionRepository
	inBodyRepo  repository.InBodyRepository
	cache       *cache.UserCache
	metrics     *metrics.Manager
	logger      *zap.Logger
	location    *time.Location
	clock       func() time.Time
}

// NewDashboardService wires the dashboard. A nil clock means time.Now and a
// nil location means time.Local.
func NewDashboardService(
	sessionRepo repository.SessionRepository,
	inBodyRepo repository.InBodyRepository,
	userCache *cache.UserCache,
	metricsManager *metrics.Manager,
	logger *zap.Logger,
	location *time.Location,
	clock func() time.Time,
) DashboardService {
	if clock == nil {
		clock = time.Now
	}
	if location == nil {
		location = time.Local
	}
	return &dashboardService{
		sessionRepo: sessionRepo,
		inBodyRepo:  inBodyRepo,
		cache:       userCache,
		metrics:     metricsManager,
		logger:      logger,
		location:    location,
		clock:       clock,
	}
}

// GetDashboard loads every session and record of the user, through the
// cache, and aggregates them for the requested range.
func (s *dashboardService) GetDashboard(ctx context.Context, userID primitive.ObjectID, rangeParam string) (*summary.Dashboard, error) {
	timeRange, err := summary.ParseTimeRange(rangeParam)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}

	started := time.Now()
	sessions, err := s.loadSessions(ctx, userID)
	if err != nil {
		return nil, err
	}
	records, err := s.loadRecords(ctx, userID)
	if err != nil {
		return nil, err
	}

	dashboard := summary.BuildDashboard(summary.DashboardInput{
		Sessions: sessions,
		Records:  records,
		Range:    timeRange,
		Now:      s.clock(),
		Location: s.location,
	})

	s.metrics.CounterDashboards.WithLabelValues(string(timeRange)).Inc()
	s.metrics.HistDashboardDuration.Observe(time.Since(started).Seconds())
	s.logger.Debug("dashboard computed",
		zap.String("uid", userID.Hex()),
		zap.String("range", string(timeRange)),
		zap.Int("sessions", len(sessions)),
		zap.Int("records", len(records)),
	)
	return &dashboard, nil
}

func (s *dashboardService) loadSessions(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutSession, error) {
	if sessions, ok := s.cache.Sessions(userID); ok {
		s.metrics.CacheHit(cache.CollectionSessions)
		return sessions, nil
	}
	s.metrics.CacheMiss(cache.CollectionSessions)

	// A write that lands during the load bumps the generation and the load is not cached.
	gen := s.cache.SessionsGeneration(userID)
	sessions, err := s.sessionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	s.cache.SetSessionsIfCurrent(userID, gen, sessions)
	return sessions, nil
}

func (s *dashboardService) loadRecords(ctx context.Context, userID primitive.ObjectID) ([]domain.InBodyRecord, error) {
	if records, ok := s.cache.Records(userID); ok {
		s.metrics.CacheHit(cache.CollectionInBody)
		return records, nil
	}
	s.metrics.CacheMiss(cache.CollectionInBody)

	gen := s.cache.RecordsGeneration(userID)
	records, err := s.inBodyRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load inbody records: %w", err)
	}
	s.cache.SetRecordsIfCurrent(userID, gen, records)
	return records, nil
}
