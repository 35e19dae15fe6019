package service

import (
	"context"
	"errors"
	"fmt"

	"alcyxob/workout-log/internal/cache"
	"alcyxob/workout-log/internal/domain"
	"alcyxob/workout-log/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	ErrValidationFailed = errors.New("validation failed")
	ErrSessionNotFound  = errors.New("workout session not found")
)

type SessionService interface {
	CreateSession(ctx context.Context, userID primitive.ObjectID, session *domain.WorkoutSession) (*domain.WorkoutSession, error)
	GetSession(ctx context.Context, userID, sessionID primitive.ObjectID) (*domain.WorkoutSession, error)
	ListSessions(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutSession, error)
	ReplaceSession(ctx context.Context, userID, sessionID primitive.ObjectID, session *domain.WorkoutSession) (*domain.WorkoutSession, error)
	DeleteSession(ctx context.Context, userID, sessionID primitive.ObjectID) error
}

type sessionService struct {
	sessionRepo repository.SessionRepository
	cache       *cache.UserCache
	logger      *zap.Logger
}

func NewSessionService(sessionRepo repository.SessionRepository, userCache *cache.UserCache, logger *zap.Logger) SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		cache:       userCache,
		logger:      logger,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, userID primitive.ObjectID, session *domain.WorkoutSession) (*domain.WorkoutSession, error) {
	session.UserID = userID
	assignEntryIDs(session)
	if err := session.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	id, err := s.sessionRepo.Create(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	session.ID = id
	s.cache.InvalidateSessions(userID)

	s.logger.Debug("session created", zap.String("uid", userID.Hex()), zap.String("sessionId", id.Hex()))
	return session, nil
}

func (s *sessionService) GetSession(ctx context.Context, userID, sessionID primitive.ObjectID) (*domain.WorkoutSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, userID, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

// ListSessions returns the user's sessions, newest first.
func (s *sessionService) ListSessions(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutSession, error) {
	sessions, err := s.sessionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

// ReplaceSession overwrites the stored session with the given one.
func (s *sessionService) ReplaceSession(ctx context.Context, userID, sessionID primitive.ObjectID, session *domain.WorkoutSession) (*domain.WorkoutSession, error) {
	session.ID = sessionID
	session.UserID = userID
	assignEntryIDs(session)
	if err := session.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	if err := s.sessionRepo.Replace(ctx, session); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("replace session: %w", err)
	}
	s.cache.InvalidateSessions(userID)
	return session, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, userID, sessionID primitive.ObjectID) error {
	if err := s.sessionRepo.Delete(ctx, userID, sessionID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("delete session: %w", err)
	}
	s.cache.InvalidateSessions(userID)
	return nil
}

// assignEntryIDs gives exercises and sets without a client-side ID a fresh one.
func assignEntryIDs(session *domain.WorkoutSession) {
	for i := range session.Exercises {
		ex := &session.Exercises[i]
		if ex.ID == "" {
			ex.ID = uuid.NewString()
		}
		for j := range ex.Sets {
			if ex.Sets[j].ID == "" {
				ex.Sets[j].ID = uuid.NewString()
			}
		}
	}
}
