package http

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/fastflight/fastflight-reservation-system/internal/adapter/http/response"
	"github.com/fastflight/fastflight-reservation-system/internal/domain"
	"github.com/fastflight/fastflight-reservation-system/internal/usecase"
)

// Handler handles HTTP requests for the reservation API.
type Handler struct {
	search  usecase.FlightSearchUseCase
	booking usecase.BookingUseCase
	alert   usecase.AlertUseCase
	chat    usecase.ChatUseCase
	profile usecase.ProfileUseCase
}

// NewHandler creates a Handler wired to the given use cases.
func NewHandler(
	search usecase.FlightSearchUseCase,
	booking usecase.BookingUseCase,
	alert usecase.AlertUseCase,
	chat usecase.ChatUseCase,
	profile usecase.ProfileUseCase,
) *Handler {
	return &Handler{
		search:  search,
		booking: booking,
		alert:   alert,
		chat:    chat,
		profile: profile,
	}
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search for flights
// @Description Ask the AI gateway for flight options matching the criteria
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search criteria"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/flights/search [post]
func (h *Handler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.search.Search(c.Request().Context(), ToDomainCriteria(&req), ToSearchOptions(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToSearchResponseDTO(result))
}

// CreateBooking handles POST /api/v1/bookings
//
// @Summary Book a flight
// @Description Confirm a reservation, assigning a locator code and seat
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body BookFlightRequest true "Booking details"
// @Success 201 {object} BookingDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/bookings [post]
func (h *Handler) CreateBooking(c echo.Context) error {
	var req BookFlightRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	booking, err := h.booking.Book(c.Request().Context(), req.Flight, req.PassengerName, domain.PaymentMethod(req.PaymentMethod))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Created(c, ToBookingDTO(booking))
}

// ListBookings handles GET /api/v1/bookings
//
// @Summary List bookings
// @Description Return all bookings, cancelled ones included, in creation order
// @Tags bookings
// @Produce json
// @Success 200 {object} BookingListDTO
// @Router /api/v1/bookings [get]
func (h *Handler) ListBookings(c echo.Context) error {
	bookings := h.booking.List(c.Request().Context())
	return response.OK(c, ToBookingListDTO(bookings))
}

// CancelBooking handles POST /api/v1/bookings/:id/cancel
//
// @Summary Cancel a booking
// @Description Mark the booking Cancelled; the record is kept
// @Tags bookings
// @Produce json
// @Param id path string true "Booking locator code"
// @Success 200 {object} BookingDTO
// @Failure 404 {object} response.ErrorDetail "Unknown booking"
// @Router /api/v1/bookings/{id}/cancel [post]
func (h *Handler) CancelBooking(c echo.Context) error {
	booking, err := h.booking.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToBookingDTO(booking))
}

// CreateAlert handles POST /api/v1/alerts
//
// @Summary Create a price alert
// @Description Watch a route for fares at or below a target price
// @Tags alerts
// @Accept json
// @Produce json
// @Param request body CreateAlertRequest true "Alert details"
// @Success 201 {object} domain.PriceAlert
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/alerts [post]
func (h *Handler) CreateAlert(c echo.Context) error {
	var req CreateAlertRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	alert, err := h.alert.Create(c.Request().Context(), req.Origin, req.Destination, req.Date, req.TargetPrice)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Created(c, alert)
}

// ListAlerts handles GET /api/v1/alerts
//
// @Summary List price alerts
// @Tags alerts
// @Produce json
// @Success 200 {object} AlertListDTO
// @Router /api/v1/alerts [get]
func (h *Handler) ListAlerts(c echo.Context) error {
	alerts := h.alert.List(c.Request().Context())
	return response.OK(c, &AlertListDTO{Alerts: alerts})
}

// DeleteAlert handles DELETE /api/v1/alerts/:id
//
// @Summary Delete a price alert
// @Tags alerts
// @Param id path string true "Alert ID"
// @Success 204 "Deleted"
// @Failure 404 {object} response.ErrorDetail "Unknown alert"
// @Router /api/v1/alerts/{id} [delete]
func (h *Handler) DeleteAlert(c echo.Context) error {
	if err := h.alert.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return h.handleError(c, err)
	}
	return response.NoContent(c)
}

// Chat handles POST /api/v1/chat
//
// @Summary Talk to the concierge
// @Description Send the conversation history and receive the concierge's reply
// @Tags chat
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Conversation history"
// @Success 200 {object} ChatReplyDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/chat [post]
func (h *Handler) Chat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	reply, err := h.chat.Chat(c.Request().Context(), ToDomainHistory(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToChatReplyDTO(reply))
}

// GetProfile handles GET /api/v1/profile
//
// @Summary Get the traveler profile
// @Tags profile
// @Produce json
// @Success 200 {object} domain.UserProfile
// @Router /api/v1/profile [get]
func (h *Handler) GetProfile(c echo.Context) error {
	return response.OK(c, h.profile.Get(c.Request().Context()))
}

// UpdateProfile handles PUT /api/v1/profile
//
// @Summary Update the traveler profile
// @Tags profile
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Profile"
// @Success 200 {object} domain.UserProfile
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/profile [put]
func (h *Handler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	profile, err := h.profile.Update(c.Request().Context(), domain.UserProfile{
		Name:  req.Name,
		Email: req.Email,
		Tier:  domain.LoyaltyTier(req.Tier),
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, profile)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *Handler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *Handler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *Handler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	if errors.Is(err, domain.ErrNotFound) {
		return response.NotFound(c, err.Error())
	}

	// Default to internal server error
	return response.InternalServerError(c)
}
