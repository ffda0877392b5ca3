package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/TourOpsHQ/inbound_ops_backend/internal/apperrors"
	"github.com/TourOpsHQ/inbound_ops_backend/internal/core/domain"
	portssvc "github.com/TourOpsHQ/inbound_ops_backend/internal/core/ports/services"
	"github.com/TourOpsHQ/inbound_ops_backend/internal/dto"
	"github.com/TourOpsHQ/inbound_ops_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// requestHandler handles HTTP requests for the working inbound document.
type requestHandler struct {
	syncService      portssvc.SyncSvcFacade
	valuationService portssvc.ValuationSvc
	transferService  portssvc.TransferSvc
}

// newRequestHandler creates a new requestHandler.
func newRequestHandler(sync portssvc.SyncSvcFacade, valuation portssvc.ValuationSvc, transfer portssvc.TransferSvc) *requestHandler {
	return &requestHandler{
		syncService:      sync,
		valuationService: valuation,
		transferService:  transfer,
	}
}

// RegisterRequestRoutes registers routes related to the working document.
func RegisterRequestRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newRequestHandler(services.Sync, services.Valuation, services.Transfer)

	request := rg.Group("/request")
	{
		request.GET("", h.getRequest)
		request.PUT("", h.updateRequest)
		request.GET("/valuation", h.getValuation)
		request.GET("/status", h.getStatus)
		request.POST("/sync/retry", h.retrySync)
		request.POST("/load/retry", h.retryLoad)
		request.GET("/export", h.exportRequest)
		request.POST("/import", h.importRequest)
	}
}

// respondNotReady reports the blocking load state: 503 while the initial load
// is still running, 502 once it has failed.
func (h *requestHandler) respondNotReady(c *gin.Context) {
	status := h.syncService.Status()
	code := http.StatusServiceUnavailable
	msg := "Working document is still loading"
	if status.AppState == domain.AppError {
		code = http.StatusBadGateway
		msg = "Working document failed to load"
	}
	c.JSON(code, gin.H{"error": msg, "status": dto.ToSyncStatusResponse(status)})
}

// getRequest godoc
// @Summary Get the working document
// @Description Returns a snapshot of the current working inbound request.
// @Tags request
// @Produce json
// @Success 200 {object} domain.InboundRequest
// @Failure 502 {object} map[string]interface{} "Initial load failed"
// @Failure 503 {object} map[string]interface{} "Initial load in progress"
// @Security BearerAuth
// @Router /request [get]
func (h *requestHandler) getRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	request, err := h.syncService.Document()
	if err != nil {
		if errors.Is(err, apperrors.ErrNotReady) {
			h.respondNotReady(c)
			return
		}
		logger.Error("Failed to read working document", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read working document"})
		return
	}
	c.JSON(http.StatusOK, request)
}

// updateRequest godoc
// @Summary Replace the working document
// @Description Applies a whole-document mutation. The replacement is visible
// @Description immediately; the write-back is debounced. Returns the fresh
// @Description valuation and sync snapshot.
// @Tags request
// @Accept json
// @Produce json
// @Param request body domain.InboundRequest true "Replacement document"
// @Success 200 {object} dto.UpdateRequestResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 502 {object} map[string]interface{} "Initial load failed"
// @Failure 503 {object} map[string]interface{} "Initial load in progress"
// @Security BearerAuth
// @Router /request [put]
func (h *requestHandler) updateRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var request domain.InboundRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		logger.Warn("Failed to bind JSON for updateRequest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if err := dto.ValidateDocument(&request); err != nil {
		logger.Warn("Replacement document failed validation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.applyAndRespond(c, request)
}

// applyAndRespond routes a replacement document through the sync controller
// and answers with valuation plus sync snapshot.
func (h *requestHandler) applyAndRespond(c *gin.Context, request domain.InboundRequest) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	status, err := h.syncService.Apply(c.Request.Context(), request)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotReady) {
			h.respondNotReady(c)
			return
		}
		logger.Error("Failed to apply mutation", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply mutation"})
		return
	}

	breakdown := h.valuationService.Compute(request)
	chart := h.valuationService.Chart(breakdown)

	logger.Info("Mutation applied",
		slog.String("request_number", request.RequestNumber),
		slog.Uint64("version", status.Version))

	c.JSON(http.StatusOK, dto.UpdateRequestResponse{
		Valuation: dto.ToValuationResponse(breakdown, chart),
		Sync:      dto.ToSyncStatusResponse(status),
	})
}

// getValuation godoc
// @Summary Get the cost breakdown
// @Description Returns the categorized cost breakdown and grand total for the
// @Description current working document.
// @Tags request
// @Produce json
// @Success 200 {object} dto.ValuationResponse
// @Failure 502 {object} map[string]interface{} "Initial load failed"
// @Failure 503 {object} map[string]interface{} "Initial load in progress"
// @Security BearerAuth
// @Router /request/valuation [get]
func (h *requestHandler) getValuation(c *gin.Context) {
	request, err := h.syncService.Document()
	if err != nil {
		if errors.Is(err, apperrors.ErrNotReady) {
			h.respondNotReady(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read working document"})
		return
	}

	breakdown := h.valuationService.Compute(*request)
	chart := h.valuationService.Chart(breakdown)
	c.JSON(http.StatusOK, dto.ToValuationResponse(breakdown, chart))
}

// getStatus godoc
// @Summary Get the sync status
// @Description Returns the load/sync state snapshot of the controller.
// @Tags request
// @Produce json
// @Success 200 {object} dto.SyncStatusResponse
// @Security BearerAuth
// @Router /request/status [get]
func (h *requestHandler) getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToSyncStatusResponse(h.syncService.Status()))
}

// retrySync godoc
// @Summary Retry a failed write-back
// @Description Schedules an immediate save attempt when unsaved changes exist.
// @Tags request
// @Produce json
// @Success 202 {object} dto.SyncStatusResponse
// @Failure 502 {object} map[string]interface{} "Initial load failed"
// @Failure 503 {object} map[string]interface{} "Initial load in progress"
// @Security BearerAuth
// @Router /request/sync/retry [post]
func (h *requestHandler) retrySync(c *gin.Context) {
	status, err := h.syncService.RetrySave(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotReady) {
			h.respondNotReady(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule save retry"})
		return
	}
	c.JSON(http.StatusAccepted, dto.ToSyncStatusResponse(status))
}

// retryLoad godoc
// @Summary Retry the initial load
// @Description Re-runs the initial document load after a load failure.
// @Tags request
// @Produce json
// @Success 200 {object} dto.SyncStatusResponse
// @Failure 502 {object} map[string]interface{} "Load failed again"
// @Security BearerAuth
// @Router /request/load/retry [post]
func (h *requestHandler) retryLoad(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.syncService.RetryLoad(c.Request.Context()); err != nil {
		logger.Error("Manual load retry failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{
			"error":  "Failed to load working document",
			"status": dto.ToSyncStatusResponse(h.syncService.Status()),
		})
		return
	}
	c.JSON(http.StatusOK, dto.ToSyncStatusResponse(h.syncService.Status()))
}

// exportRequest godoc
// @Summary Export the working document
// @Description Downloads the full document as a JSON attachment.
// @Tags request
// @Produce json
// @Success 200 {string} string "document payload"
// @Failure 502 {object} map[string]interface{} "Initial load failed"
// @Failure 503 {object} map[string]interface{} "Initial load in progress"
// @Security BearerAuth
// @Router /request/export [get]
func (h *requestHandler) exportRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	request, err := h.syncService.Document()
	if err != nil {
		if errors.Is(err, apperrors.ErrNotReady) {
			h.respondNotReady(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read working document"})
		return
	}

	payload, err := h.transferService.Export(*request)
	if err != nil {
		logger.Error("Failed to export document", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export document"})
		return
	}

	filename := h.transferService.ExportFilename(*request)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json", payload)
}

// importRequest godoc
// @Summary Import a document payload
// @Description Parses an exported payload and atomically replaces the working
// @Description document. A rejected payload leaves the working copy untouched.
// @Tags request
// @Accept json
// @Produce json
// @Success 200 {object} dto.UpdateRequestResponse
// @Failure 400 {object} map[string]string "Malformed payload"
// @Failure 422 {object} map[string]string "Payload violates document schema"
// @Failure 502 {object} map[string]interface{} "Initial load failed"
// @Failure 503 {object} map[string]interface{} "Initial load in progress"
// @Security BearerAuth
// @Router /request/import [post]
func (h *requestHandler) importRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read payload"})
		return
	}

	request, err := h.transferService.Import(payload)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrSchemaViolation):
			logger.Warn("Import rejected: schema violation", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrMalformedPayload):
			logger.Warn("Import rejected: malformed payload", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Import failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import payload"})
		}
		return
	}

	h.applyAndRespond(c, *request)
}
