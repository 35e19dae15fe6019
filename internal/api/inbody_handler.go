package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"alcyxob/workout-log/internal/domain"
	"alcyxob/workout-log/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InBodyHandler serves body-composition records and their report scans.
type InBodyHandler struct {
	inBodyService service.InBodyService
	logger        *zap.Logger
}

func NewInBodyHandler(inBodyService service.InBodyService, logger *zap.Logger) *InBodyHandler {
	return &InBodyHandler{inBodyService: inBodyService, logger: logger}
}

// --- DTOs ---

// InBodyRequest is the body of both create and full replacement.
type InBodyRequest struct {
	ReportDate              time.Time                       `json:"reportDate" binding:"required"`
	ReportTime              string                          `json:"reportTime" binding:"required"`
	OverallScore            *float64                        `json:"overallScore"`
	BodyComposition         *domain.BodyComposition         `json:"bodyComposition"`
	BodyCompositionAnalysis *domain.BodyCompositionAnalysis `json:"bodyCompositionAnalysis"`
}

func (r *InBodyRequest) toDomain() *domain.InBodyRecord {
	return &domain.InBodyRecord{
		ReportDate:              r.ReportDate,
		ReportTime:              r.ReportTime,
		OverallScore:            r.OverallScore,
		BodyComposition:         r.BodyComposition,
		BodyCompositionAnalysis: r.BodyCompositionAnalysis,
	}
}

type ScanUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

type ScanDownloadResponse struct {
	DownloadURL string `json:"downloadUrl"`
}

// --- Handler Methods ---

// CreateRecord godoc
// @Summary Add a body-composition record
// @Tags InBody
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param record body InBodyRequest true "Record"
// @Success 201 {object} domain.InBodyRecord
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Router /inbody [post]
func (h *InBodyHandler) CreateRecord(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req InBodyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	record, err := h.inBodyService.CreateRecord(c.Request.Context(), userID, req.toDomain())
	if err != nil {
		h.respondError(c, err, "Failed to create record.")
		return
	}
	c.JSON(http.StatusCreated, record)
}

// @Router /inbody [get]
func (h *InBodyHandler) ListRecords(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	records, err := h.inBodyService.ListRecords(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err, "Failed to retrieve records.")
		return
	}
	if records == nil {
		records = []domain.InBodyRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// @Router /inbody/{recordId} [get]
func (h *InBodyHandler) GetRecord(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	recordID, ok := pathObjectID(c, "recordId")
	if !ok {
		return
	}

	record, err := h.inBodyService.GetRecord(c.Request.Context(), userID, recordID)
	if err != nil {
		h.respondError(c, err, "Failed to retrieve record.")
		return
	}
	c.JSON(http.StatusOK, record)
}

// @Router /inbody/{recordId} [put]
func (h *InBodyHandler) ReplaceRecord(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	recordID, ok := pathObjectID(c, "recordId")
	if !ok {
		return
	}
	var req InBodyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	record, err := h.inBodyService.ReplaceRecord(c.Request.Context(), userID, recordID, req.toDomain())
	if err != nil {
		h.respondError(c, err, "Failed to update record.")
		return
	}
	c.JSON(http.StatusOK, record)
}

// @Router /inbody/{recordId} [delete]
func (h *InBodyHandler) DeleteRecord(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	recordID, ok := pathObjectID(c, "recordId")
	if !ok {
		return
	}

	if err := h.inBodyService.DeleteRecord(c.Request.Context(), userID, recordID); err != nil {
		h.respondError(c, err, "Failed to delete record.")
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateScanUpload returns a presigned URL the client PUTs the report scan to.
// @Router /inbody/{recordId}/scan [post]
func (h *InBodyHandler) CreateScanUpload(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	recordID, ok := pathObjectID(c, "recordId")
	if !ok {
		return
	}
	var req ScanUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	upload, err := h.inBodyService.CreateScanUpload(c.Request.Context(), userID, recordID, req.ContentType)
	if err != nil {
		h.respondError(c, err, "Failed to prepare scan upload.")
		return
	}
	c.JSON(http.StatusOK, upload)
}

// @Router /inbody/{recordId}/scan [get]
func (h *InBodyHandler) GetScan(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	recordID, ok := pathObjectID(c, "recordId")
	if !ok {
		return
	}

	url, err := h.inBodyService.GetScanDownloadURL(c.Request.Context(), userID, recordID)
	if err != nil {
		h.respondError(c, err, "Failed to prepare scan download.")
		return
	}
	c.JSON(http.StatusOK, ScanDownloadResponse{DownloadURL: url})
}

func (h *InBodyHandler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrValidationFailed):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrRecordNotFound), errors.Is(err, service.ErrScanNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrStorageUnavailable):
		abortWithError(c, http.StatusServiceUnavailable, err.Error())
	default:
		h.logger.Error(fallback, zap.Error(err), zap.String("request_id", c.GetString(ContextRequestIDKey)))
		abortWithError(c, http.StatusInternalServerError, fallback)
	}
}
