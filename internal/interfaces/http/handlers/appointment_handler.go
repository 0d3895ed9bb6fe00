package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"estate-hub.backend/internal/domain/entities"
	domainerrors "estate-hub.backend/internal/domain/errors"
	"estate-hub.backend/internal/interfaces/http/middleware"
	"estate-hub.backend/internal/interfaces/http/response"
	"estate-hub.backend/internal/usecases"
	"estate-hub.backend/pkg/utils"
)

// AppointmentHandler handles site-visit appointments
type AppointmentHandler struct {
	appointmentUsecase *usecases.AppointmentUsecase
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(appointmentUsecase *usecases.AppointmentUsecase) *AppointmentHandler {
	return &AppointmentHandler{appointmentUsecase: appointmentUsecase}
}

// Book schedules a site visit
// POST /api/v1/appointments
func (h *AppointmentHandler) Book(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	var input entities.CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	appointment, err := h.appointmentUsecase.Book(c.Request.Context(), userID, &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Property not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"appointment": appointment})
}

// ListMine returns the caller's appointments
// GET /api/v1/appointments
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	appointments, err := h.appointmentUsecase.ListForUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"appointments": appointments})
}

// List returns appointments for staff
// GET /api/v1/staff/appointments?status=
func (h *AppointmentHandler) List(c *gin.Context) {
	status := entities.AppointmentStatus(c.Query("status"))

	var paging utils.PaginationParams
	if err := c.ShouldBindQuery(&paging); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	params := utils.GetPaginationParams(paging.Page, paging.Limit)

	appointments, total, err := h.appointmentUsecase.ListForStaff(c.Request.Context(), status, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"appointments": appointments,
		"pagination":   utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// UpdateStatus progresses an appointment
// PUT /api/v1/staff/appointments/:id/status
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	staffID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid appointment ID"))
		return
	}

	var input entities.UpdateAppointmentStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.appointmentUsecase.UpdateStatus(c.Request.Context(), id, staffID, &input); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Appointment not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Appointment updated"})
}
