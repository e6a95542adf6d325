package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/pos_multi_currency/internal/core/ports/services"
	"github.com/SscSPs/pos_multi_currency/internal/dto"
	"github.com/SscSPs/pos_multi_currency/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// multiCurrencyHandler handles HTTP requests for the session's
// multi-currency configuration, rates and statistics.
type multiCurrencyHandler struct {
	mcService        portssvc.MultiCurrencySvcFacade
	reportingService portssvc.ReportingSvcFacade
}

// newMultiCurrencyHandler creates a new multiCurrencyHandler.
func newMultiCurrencyHandler(mc portssvc.MultiCurrencySvcFacade, rep portssvc.ReportingSvcFacade) *multiCurrencyHandler {
	return &multiCurrencyHandler{
		mcService:        mc,
		reportingService: rep,
	}
}

// RegisterMultiCurrencyRoutes registers the multi-currency session routes.
func RegisterMultiCurrencyRoutes(
	rg *gin.RouterGroup,
	mcService portssvc.MultiCurrencySvcFacade,
	reportingService portssvc.ReportingSvcFacade,
	refreshLimiter *limiter.Limiter,
) {
	h := newMultiCurrencyHandler(mcService, reportingService)

	mc := rg.Group("/multicurrency")
	{
		mc.GET("/config", h.getConfig)
		mc.GET("/rates", h.getRates)
		mc.POST("/rates/refresh", middleware.RateLimit(refreshLimiter), h.refreshRates)
		mc.POST("/rates/validate", h.validateRate)
		mc.GET("/statistics/:sessionID", h.getSessionStatistics)
		mc.POST("/session-enabled", h.setSessionEnabled)
	}
}

// getConfig godoc
// @Summary Get the multi-currency session configuration
// @Description Returns the configuration snapshot the POS frontend needs on startup
// @Tags multicurrency
// @Produce  json
// @Success 200 {object} dto.MultiCurrencyConfigResponse
// @Security BearerAuth
// @Router /multicurrency/config [get]
func (h *multiCurrencyHandler) getConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.configResponse())
}

func (h *multiCurrencyHandler) configResponse() dto.MultiCurrencyConfigResponse {
	resp := dto.MultiCurrencyConfigResponse{
		Enabled:       h.mcService.IsConfigured(),
		Active:        h.mcService.IsActive(),
		AllowRateEdit: h.mcService.AllowRateEdit(),
		CanEditRate:   h.mcService.CanEditRate(),
		Currencies:    dto.ToListCurrencyResponse(h.mcService.AllowedCurrencies()),
	}
	if base := h.mcService.BaseCurrency(); base != nil {
		baseResp := dto.ToCurrencyResponse(base)
		resp.BaseCurrency = &baseResp
	}
	return resp
}

// getRates godoc
// @Summary Get the current rate table
// @Description Returns the rate snapshot currently in effect for the session
// @Tags multicurrency
// @Produce  json
// @Success 200 {object} dto.RatesResponse
// @Security BearerAuth
// @Router /multicurrency/rates [get]
func (h *multiCurrencyHandler) getRates(c *gin.Context) {
	c.JSON(http.StatusOK, dto.RatesResponse{
		Rates:          h.mcService.Rates(),
		BaseCurrencyID: h.mcService.BaseCurrencyID(),
	})
}

// refreshRates godoc
// @Summary Refresh the rate table
// @Description Fetches a fresh rate snapshot, falling back to last-known rates on failure. Always succeeds.
// @Tags multicurrency
// @Produce  json
// @Success 200 {object} dto.RatesResponse
// @Failure 429 {object} ErrorResponse "Too many refresh requests"
// @Security BearerAuth
// @Router /multicurrency/rates/refresh [post]
func (h *multiCurrencyHandler) refreshRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to refresh rates")

	rates := h.mcService.RefreshRates(c.Request.Context())

	logger.Info("Rates refreshed", slog.Int("currency_count", len(rates)))
	c.JSON(http.StatusOK, dto.RatesResponse{
		Rates:          rates,
		BaseCurrencyID: h.mcService.BaseCurrencyID(),
	})
}

// validateRate godoc
// @Summary Validate a manually entered exchange rate
// @Description Checks a proposed manual rate against the current market rate. The outcome is advisory; a deviation warning can be overridden by the cashier.
// @Tags multicurrency
// @Accept  json
// @Produce  json
// @Param   rate body dto.ValidateRateRequest true "Rate to validate"
// @Success 200 {object} dto.ValidateRateResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /multicurrency/rates/validate [post]
func (h *multiCurrencyHandler) validateRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ValidateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ValidateRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	validation := h.mcService.ValidateManualRate(req.ManualRate, req.CurrencyID)
	marketRate := h.mcService.Rates().RateFor(req.CurrencyID, h.mcService.BaseCurrencyID())

	if !validation.Valid {
		logger.Info("Manual rate rejected",
			slog.Int64("currency_id", req.CurrencyID),
			slog.Float64("manual_rate", req.ManualRate),
			slog.String("message", validation.Message))
	}
	c.JSON(http.StatusOK, dto.ToValidateRateResponse(validation, marketRate))
}

// getSessionStatistics godoc
// @Summary Get per-currency statistics for a session
// @Description Returns the per-currency payment rollup with grand totals. Unknown sessions yield an empty rollup.
// @Tags multicurrency
// @Produce  json
// @Param   sessionID path int true "Session ID"
// @Success 200 {object} dto.SessionStatisticsResponse
// @Failure 400 {object} ErrorResponse "Invalid session id"
// @Security BearerAuth
// @Router /multicurrency/statistics/{sessionID} [get]
func (h *multiCurrencyHandler) getSessionStatistics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	sessionID, err := strconv.ParseInt(c.Param("sessionID"), 10, 64)
	if err != nil || sessionID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Session id must be a positive integer"})
		return
	}

	logger.Info("Received request for session statistics", slog.Int64("session_id", sessionID))
	c.JSON(http.StatusOK, h.reportingService.SessionStatistics(c.Request.Context(), sessionID))
}

// setSessionEnabled godoc
// @Summary Toggle multi-currency for the running session
// @Description Enables or disables multi-currency handling for this session without touching the persisted configuration
// @Tags multicurrency
// @Accept  json
// @Produce  json
// @Param   toggle body dto.SessionEnabledRequest true "Session toggle"
// @Success 200 {object} dto.MultiCurrencyConfigResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /multicurrency/session-enabled [post]
func (h *multiCurrencyHandler) setSessionEnabled(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SessionEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetSessionEnabled", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	h.mcService.SetSessionEnabled(*req.Enabled)
	userID, _ := middleware.GetUserIDFromContext(c.Request.Context())
	logger.Info("Session multi-currency toggled", slog.Bool("enabled", *req.Enabled), slog.String("user_id", userID))
	c.JSON(http.StatusOK, h.configResponse())
}
