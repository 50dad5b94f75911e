package booking

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"quwastudio/internal/domain"
	"quwastudio/internal/pkg/response"
)

type Handler struct {
	service       *Service
	submitTimeout time.Duration
}

func NewHandler(service *Service, submitTimeout time.Duration) *Handler {
	return &Handler{service: service, submitTimeout: submitTimeout}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	{
		bookings.GET("", h.ListBookings)
		bookings.GET("/:id", h.GetBooking)
		bookings.POST("/:id/notify", h.ResendNotification)
	}
}

// SubmitContext detaches a submission from client cancellation: a visitor
// leaving the page does not abort a create that is already running.
func SubmitContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(parent), timeout)
}

// CreateBooking handles POST /api/v1/bookings
// @Summary Submit a booking request
// @Description Public endpoint for the landing page booking form. A repeated submission_key returns the stored booking.
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body SubmitBookingRequest true "Booking form data"
// @Success 201 {object} response.Response{data=BookingResponse}
// @Success 200 {object} response.Response{data=BookingResponse}
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 413 {object} response.Response
// @Failure 422 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	var req SubmitBookingRequest
	LimitBody(c.Writer, c.Request)
	if err := c.ShouldBindJSON(&req); err != nil {
		if IsBodyTooLarge(err) {
			response.Error(c, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", MsgTooLarge)
			return
		}
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	ctx, cancel := SubmitContext(c.Request.Context(), h.submitTimeout)
	defer cancel()

	res, err := h.service.Submit(ctx, req, SubmitMeta{IP: c.ClientIP(), UserAgent: c.Request.UserAgent()})
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Please check the highlighted fields", verr.Fields)
		case errors.Is(err, ErrSubmissionInFlight):
			response.Error(c, http.StatusConflict, "SUBMISSION_IN_FLIGHT", MsgInFlight)
		default:
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, "BOOKING_FAILED", MsgFailed)
		}
		return
	}

	status := http.StatusCreated
	if res.Duplicate {
		status = http.StatusOK
	}
	response.SuccessWithMessage(c, status, MsgSubmitted, toResponse(res))
}

// ListBookings handles GET /api/v1/admin/bookings
// @Summary List bookings
// @Tags Admin
// @Produce json
// @Security AdminToken
// @Param limit query int false "Page size (max 100)" default(50)
// @Param offset query int false "Rows to skip" default(0)
// @Param pending query bool false "Only bookings whose notification has not been delivered"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /admin/bookings [get]
func (h *Handler) ListBookings(c *gin.Context) {
	q := ListQuery{Limit: 50, Pending: c.Query("pending") == "true"}
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			q.Limit = v
		}
	}
	if o := c.Query("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			q.Offset = v
		}
	}

	items, total, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}

	if items == nil {
		items = []domain.Booking{}
	}
	response.Success(c, http.StatusOK, gin.H{
		"bookings": items,
		"total":    total,
	})
}

// GetBooking handles GET /api/v1/admin/bookings/:id
// @Summary Get booking by ID
// @Tags Admin
// @Produce json
// @Security AdminToken
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Response{data=domain.Booking}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/bookings/{id} [get]
func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeLookupError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

// ResendNotification handles POST /api/v1/admin/bookings/:id/notify
// @Summary Resend booking notification
// @Description Delivers the team notification again and records the attempt on the booking.
// @Tags Admin
// @Produce json
// @Security AdminToken
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Response{data=domain.Booking}
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /admin/bookings/{id}/notify [post]
func (h *Handler) ResendNotification(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, notified, err := h.service.ResendNotification(c.Request.Context(), id)
	if err != nil {
		h.writeLookupError(c, err)
		return
	}
	if !notified {
		response.ErrorWithDetails(c, http.StatusBadGateway, "NOTIFY_FAILED", "Notification could not be delivered", gin.H{
			"attempts":   b.NotifyAttempts,
			"last_error": b.LastNotifyError,
		})
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) writeLookupError(c *gin.Context, err error) {
	if errors.Is(err, ErrNotFound) {
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
		return
	}
	_ = c.Error(err)
	response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load booking")
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return 0, false
	}
	return id, true
}

func toResponse(res *SubmitResult) BookingResponse {
	return BookingResponse{
		ID:        res.Booking.ID,
		Industry:  res.Booking.Industry,
		Notified:  res.Notified,
		Duplicate: res.Duplicate,
		CreatedAt: res.Booking.CreatedAt,
	}
}
