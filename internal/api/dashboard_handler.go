package api

import (
	"errors"
	"net/http"

	"alcyxob/workout-log/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler serves the dashboard aggregates and the onboarding seed.
type DashboardHandler struct {
	dashboardService  service.DashboardService
	onboardingService service.OnboardingService
	logger            *zap.Logger
}

func NewDashboardHandler(dashboardService service.DashboardService, onboardingService service.OnboardingService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService:  dashboardService,
		onboardingService: onboardingService,
		logger:            logger,
	}
}

// GetDashboard godoc
// @Summary Dashboard aggregates for the caller
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Param range query string false "week (default), month or all"
// @Success 200 {object} summary.Dashboard
// @Failure 400 {object} gin.H "Unknown range"
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	dashboard, err := h.dashboardService.GetDashboard(c.Request.Context(), userID, c.Query("range"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidRange) {
			abortWithError(c, http.StatusBadRequest, service.ErrInvalidRange.Error())
		} else {
			h.logger.Error("dashboard failed", zap.Error(err), zap.String("uid", userID.Hex()))
			abortWithError(c, http.StatusInternalServerError, "Failed to compute dashboard.")
		}
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// SeedSampleData godoc
// @Summary Load sample sessions and measurements for a new user
// @Tags Onboarding
// @Produce json
// @Security BearerAuth
// @Success 201 {object} service.SeedResult
// @Failure 409 {object} gin.H "User already onboarded"
// @Router /onboarding/sample-data [post]
func (h *DashboardHandler) SeedSampleData(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	result, err := h.onboardingService.SeedSampleData(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyOnboarded):
			abortWithError(c, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			h.logger.Error("seeding sample data failed", zap.Error(err), zap.String("uid", userID.Hex()))
			abortWithError(c, http.StatusInternalServerError, "Failed to load sample data.")
		}
		return
	}
	c.JSON(http.StatusCreated, result)
}
