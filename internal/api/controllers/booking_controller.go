package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"

	"ascendops/internal/models/request_models"
	"ascendops/internal/repositories"
	"ascendops/internal/services"
	"ascendops/pkg/middleware"
	"ascendops/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

// CreateBooking godoc
// @Summary Book an athlete into a session
// @Description Register an athlete's package purchase for a session, founders only. The athlete is matched by name and team, or created if new
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.CreateBookingRequest true "Booking payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings [post]
func (b *BookingController) CreateBooking(c *gin.Context) {
	var req request_models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	booking, err := b.bookingService.CreateBooking(c.Request.Context(), middleware.ActorFromContext(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, booking, "Booking created successfully")
}

// ListBookings godoc
// @Summary List bookings
// @Description Fetch bookings, optionally filtered by event or session
// @Tags Bookings
// @Accept json
// @Produce json
// @Param event_id query string false "Event ID filter"
// @Param session_id query string false "Session ID filter"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings [get]
func (b *BookingController) ListBookings(c *gin.Context) {
	filter := repositories.BookingFilter{
		EventID:   c.Query("event_id"),
		SessionID: c.Query("session_id"),
	}

	bookings, err := b.bookingService.List(c.Request.Context(), middleware.ActorFromContext(c), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookings, "Bookings fetched successfully")
}

// SessionRoster godoc
// @Summary Get a session roster
// @Description Fetch the athletes booked into one session, the day-of-show run sheet
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sessions/{id}/roster [get]
func (b *BookingController) SessionRoster(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	roster, err := b.bookingService.SessionRoster(c.Request.Context(), middleware.ActorFromContext(c), sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, roster, "Roster fetched successfully")
}

// SessionRosterCSV godoc
// @Summary Download a session roster as CSV
// @Description Export the session run sheet as a CSV attachment
// @Tags Bookings
// @Accept json
// @Produce text/csv
// @Param id path string true "Session ID"
// @Success 200 {string} string "CSV file"
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sessions/{id}/roster.csv [get]
func (b *BookingController) SessionRosterCSV(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	rows, filename, err := b.bookingService.SessionRosterCSV(c.Request.Context(), middleware.ActorFromContext(c), sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	out, err := gocsv.MarshalString(&rows)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(out))
}
