package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ZheltovAS/RR-test-task/internal/apperrors"
	portssvc "github.com/ZheltovAS/RR-test-task/internal/core/ports/services"
	"github.com/ZheltovAS/RR-test-task/internal/dto"
	"github.com/ZheltovAS/RR-test-task/internal/middleware"
	"github.com/gin-gonic/gin"
)

// organizationHandler handles HTTP requests for organization balances.
type organizationHandler struct {
	organizationService portssvc.OrganizationSvcFacade
}

// newOrganizationHandler creates a new organizationHandler.
func newOrganizationHandler(os portssvc.OrganizationSvcFacade) *organizationHandler {
	return &organizationHandler{
		organizationService: os,
	}
}

// RegisterOrganizationRoutes registers routes related to organizations.
func RegisterOrganizationRoutes(rg *gin.RouterGroup, organizationService portssvc.OrganizationSvcFacade) {
	h := newOrganizationHandler(organizationService)

	organizations := rg.Group("/organizations")
	{
		organizations.GET("/:inn/balance", h.getBalance)
		organizations.GET("/:inn/balance/logs", h.listBalanceLogs)
	}
}

// getBalance godoc
// @Summary Get an organization's current balance
// @Description Returns the current balance for the organization with the given INN
// @Tags organizations
// @Produce  json
// @Param   inn path string true "Organization tax identifier (INN)"
// @Success 200 {object} dto.OrganizationBalanceResponse
// @Failure 404 {object} map[string]string "Organization not found"
// @Failure 500 {object} map[string]string "Failed to retrieve balance"
// @Router /organizations/{inn}/balance [get]
func (h *organizationHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	inn := c.Param("inn")

	org, err := h.organizationService.GetBalanceByINN(c.Request.Context(), inn)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Organization not found", slog.String("inn", inn))
			c.JSON(http.StatusNotFound, gin.H{"error": "Organization with the given INN was not found"})
		} else {
			logger.Error("Failed to get organization balance", slog.String("inn", inn), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve balance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationBalanceResponse(org))
}

// listBalanceLogs godoc
// @Summary List an organization's balance history
// @Description Returns the newest-first audit entries of the organization's balance changes
// @Tags organizations
// @Produce  json
// @Param   inn path string true "Organization tax identifier (INN)"
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListBalanceLogsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 404 {object} map[string]string "Organization not found"
// @Failure 500 {object} map[string]string "Failed to list balance logs"
// @Router /organizations/{inn}/balance/logs [get]
func (h *organizationHandler) listBalanceLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	inn := c.Param("inn")

	var params dto.ListBalanceLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListBalanceLogs", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logs, err := h.organizationService.ListBalanceLogs(c.Request.Context(), inn, params.Limit, params.Offset)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Organization not found for balance logs", slog.String("inn", inn))
			c.JSON(http.StatusNotFound, gin.H{"error": "Organization with the given INN was not found"})
		} else {
			logger.Error("Failed to list balance logs", slog.String("inn", inn), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list balance logs"})
		}
		return
	}

	responses := make([]dto.BalanceLogResponse, len(logs))
	for i, l := range logs {
		responses[i] = dto.ToBalanceLogResponse(l)
	}
	c.JSON(http.StatusOK, dto.ListBalanceLogsResponse{Logs: responses})
}
