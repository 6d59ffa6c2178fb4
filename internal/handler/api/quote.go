package api

import (
	"errors"
	"net/http"

	"parking-pricing/internal/domain/rate"
	reqdto "parking-pricing/internal/handler/dto/request"
	resdto "parking-pricing/internal/handler/dto/response"
	"parking-pricing/internal/handler/httperr"
	"parking-pricing/internal/handler/middleware"
	"parking-pricing/internal/pkg/errs"
	"parking-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	quoteQueries queries.QuoteQueries
}

func NewQuoteHandler(quoteQueries queries.QuoteQueries) *QuoteHandler {
	return &QuoteHandler{
		quoteQueries: quoteQueries,
	}
}

// @Summary Booking quote
// @Description Price a prospective booking interval for a lot or space
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quotes/bookings [post]
func (h *QuoteHandler) BookingQuote(c *gin.Context) {
	h.quote(c)
}

// @Summary Session quote
// @Description Price an active or finished parking session interval
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quotes/sessions [post]
func (h *QuoteHandler) SessionQuote(c *gin.Context) {
	h.quote(c)
}

// Booking and session flows are distinct upstream callers but price
// identically; both endpoints funnel through here.
func (h *QuoteHandler) quote(c *gin.Context) {
	callerGroup, ok := middleware.GetUserGroup(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError,
			errors.New("user group missing from context"), "Internal server error", nil)
		return
	}

	var req reqdto.QuoteRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	query, err := req.ToQuery(callerGroup)
	if err != nil {
		switch {
		case errors.Is(err, rate.ErrInvalidVehicleType):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid vehicle type", nil)
		case errors.Is(err, rate.ErrInvalidUserGroup):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user group", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		}
		return
	}

	quoteRM, err := h.quoteQueries.Quote(c.Request.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidQuoteTarget):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Either lot_id or space_id is required", nil)
		case errors.Is(err, errs.ErrInvalidInterval):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "End time must be after start time", nil)
		case errors.Is(err, errs.ErrStandaloneSpaceRateNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No rate plan for standalone space", nil)
		case errors.Is(err, errs.ErrRatePlanNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No applicable rate plan", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromQuoteView(quoteRM))
}
