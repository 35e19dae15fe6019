package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"alcyxob/workout-log/internal/cache"
	"alcyxob/workout-log/internal/domain"
	"alcyxob/workout-log/internal/repository"
	"alcyxob/workout-log/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	ErrRecordNotFound     = errors.New("inbody record not found")
	ErrScanNotFound       = errors.New("no scan uploaded for this record")
	ErrStorageUnavailable = errors.New("scan storage is not available")
)

// Accepted content types for report scans.
var scanContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/heic":      true,
	"application/pdf": true,
}

// ScanUpload tells the client where to PUT the scan and which Content-Type to send.
type ScanUpload struct {
	UploadURL   string    `json:"uploadUrl"`
	ContentType string    `json:"contentType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type InBodyService interface {
	CreateRecord(ctx context.Context, userID primitive.ObjectID, record *domain.InBodyRecord) (*domain.InBodyRecord, error)
	GetRecord(ctx context.Context, userID, recordID primitive.ObjectID) (*domain.InBodyRecord, error)
	ListRecords(ctx context.Context, userID primitive.ObjectID) ([]domain.InBodyRecord, error)
	ReplaceRecord(ctx context.Context, userID, recordID primitive.ObjectID, record *domain.InBodyRecord) (*domain.InBodyRecord, error)
	DeleteRecord(ctx context.Context, userID, recordID primitive.ObjectID) error
	CreateScanUpload(ctx context.Context, userID, recordID primitive.ObjectID, contentType string) (*ScanUpload, error)
	GetScanDownloadURL(ctx context.Context, userID, recordID primitive.ObjectID) (string, error)
}

type inBodyService struct {
	inBodyRepo    repository.InBodyRepository
	objects       storage.ObjectStorage
	presignExpiry time.Duration
	cache         *cache.UserCache
	logger        *zap.Logger
}

func NewInBodyService(
	inBodyRepo repository.InBodyRepository,
	objects storage.ObjectStorage,
	presignExpiry time.Duration,
	userCache *cache.UserCache,
	logger *zap.Logger,
) InBodyService {
	if presignExpiry <= 0 {
		presignExpiry = storage.DefaultPresignedURLExpiry
	}
	return &inBodyService{
		inBodyRepo:    inBodyRepo,
		objects:       objects,
		presignExpiry: presignExpiry,
		cache:         userCache,
		logger:        logger,
	}
}

func (s *inBodyService) CreateRecord(ctx context.Context, userID primitive.ObjectID, record *domain.InBodyRecord) (*domain.InBodyRecord, error) {
	record.UserID = userID
	record.ScanObjectKey = ""
	record.ScanContentType = ""
	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	id, err := s.inBodyRepo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("create inbody record: %w", err)
	}
	record.ID = id
	s.cache.InvalidateRecords(userID)
	return record, nil
}

func (s *inBodyService) GetRecord(ctx context.Context, userID, recordID primitive.ObjectID) (*domain.InBodyRecord, error) {
	record, err := s.inBodyRepo.GetByID(ctx, userID, recordID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("get inbody record: %w", err)
	}
	return record, nil
}

// ListRecords returns the user's records ordered by report date, newest first.
func (s *inBodyService) ListRecords(ctx context.Context, userID primitive.ObjectID) ([]domain.InBodyRecord, error) {
	records, err := s.inBodyRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list inbody records: %w", err)
	}
	return records, nil
}

func (s *inBodyService) ReplaceRecord(ctx context.Context, userID, recordID primitive.ObjectID, record *domain.InBodyRecord) (*domain.InBodyRecord, error) {
	record.ID = recordID
	record.UserID = userID
	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	if err := s.inBodyRepo.Replace(ctx, record); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("replace inbody record: %w", err)
	}
	s.cache.InvalidateRecords(userID)
	return record, nil
}

// DeleteRecord removes the record. A stored scan is deleted best effort.
func (s *inBodyService) DeleteRecord(ctx context.Context, userID, recordID primitive.ObjectID) error {
	record, err := s.GetRecord(ctx, userID, recordID)
	if err != nil {
		return err
	}

	if err := s.inBodyRepo.Delete(ctx, userID, recordID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRecordNotFound
		}
		return fmt.Errorf("delete inbody record: %w", err)
	}
	s.cache.InvalidateRecords(userID)

	if record.ScanObjectKey != "" {
		s.deleteObject(ctx, record.ScanObjectKey)
	}
	return nil
}

// CreateScanUpload attaches a new scan object to the record and returns a
// presigned PUT URL for it. A previously attached scan is replaced.
func (s *inBodyService) CreateScanUpload(ctx context.Context, userID, recordID primitive.ObjectID, contentType string) (*ScanUpload, error) {
	if !scanContentTypes[contentType] {
		return nil, fmt.Errorf("%w: unsupported content type %q", ErrValidationFailed, contentType)
	}
	record, err := s.GetRecord(ctx, userID, recordID)
	if err != nil {
		return nil, err
	}

	objectKey := fmt.Sprintf("inbody/%s/%s/%s", userID.Hex(), recordID.Hex(), uuid.NewString())
	url, err := s.objects.PresignUpload(ctx, objectKey, contentType, s.presignExpiry)
	if err != nil {
		return nil, s.storageError("presign upload", err)
	}

	if err := s.inBodyRepo.SetScan(ctx, userID, recordID, objectKey, contentType); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("set scan: %w", err)
	}
	if record.ScanObjectKey != "" {
		s.deleteObject(ctx, record.ScanObjectKey)
	}

	return &ScanUpload{
		UploadURL:   url,
		ContentType: contentType,
		ExpiresAt:   time.Now().Add(s.presignExpiry).UTC(),
	}, nil
}

func (s *inBodyService) GetScanDownloadURL(ctx context.Context, userID, recordID primitive.ObjectID) (string, error) {
	record, err := s.GetRecord(ctx, userID, recordID)
	if err != nil {
		return "", err
	}
	if record.ScanObjectKey == "" {
		return "", ErrScanNotFound
	}

	url, err := s.objects.PresignDownload(ctx, record.ScanObjectKey, s.presignExpiry)
	if err != nil {
		return "", s.storageError("presign download", err)
	}
	return url, nil
}

func (s *inBodyService) storageError(op string, err error) error {
	if errors.Is(err, storage.ErrNotConfigured) {
		return ErrStorageUnavailable
	}
	s.logger.Error("scan storage failure", zap.String("op", op), zap.Error(err))
	return fmt.Errorf("%s: %w", op, err)
}

func (s *inBodyService) deleteObject(ctx context.Context, key string) {
	err := s.objects.DeleteObject(ctx, key)
	if err != nil && !errors.Is(err, storage.ErrNotConfigured) {
		s.logger.Warn("failed to delete scan object", zap.String("key", key), zap.Error(err))
	}
}
