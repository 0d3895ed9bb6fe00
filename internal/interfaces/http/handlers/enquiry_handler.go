package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"estate-hub.backend/internal/domain/entities"
	domainerrors "estate-hub.backend/internal/domain/errors"
	"estate-hub.backend/internal/domain/repositories"
	"estate-hub.backend/internal/interfaces/http/middleware"
	"estate-hub.backend/internal/interfaces/http/response"
	"estate-hub.backend/pkg/utils"
)

// EnquiryHandler handles buyer enquiries. It sits directly over the
// repositories; there is no business logic beyond existence checks.
type EnquiryHandler struct {
	enquiryRepo  repositories.EnquiryRepository
	propertyRepo repositories.PropertyRepository
}

// NewEnquiryHandler creates a new enquiry handler
func NewEnquiryHandler(enquiryRepo repositories.EnquiryRepository, propertyRepo repositories.PropertyRepository) *EnquiryHandler {
	return &EnquiryHandler{
		enquiryRepo:  enquiryRepo,
		propertyRepo: propertyRepo,
	}
}

// Create submits an enquiry about a listing
// POST /api/v1/enquiries
func (h *EnquiryHandler) Create(c *gin.Context) {
	var input entities.CreateEnquiryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if _, err := h.propertyRepo.GetByID(c.Request.Context(), input.PropertyID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Property not found"))
			return
		}
		response.Error(c, err)
		return
	}

	enquiry := &entities.Enquiry{
		ID:         utils.GenerateUUIDv7(),
		PropertyID: input.PropertyID,
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Message:    input.Message,
		Status:     entities.EnquiryStatusNew,
	}
	if err := h.enquiryRepo.Create(c.Request.Context(), enquiry); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"enquiry": enquiry})
}

// List returns enquiries for staff review
// GET /api/v1/staff/enquiries?status=
func (h *EnquiryHandler) List(c *gin.Context) {
	status := entities.EnquiryStatus(c.Query("status"))

	var paging utils.PaginationParams
	if err := c.ShouldBindQuery(&paging); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	params := utils.GetPaginationParams(paging.Page, paging.Limit)

	enquiries, total, err := h.enquiryRepo.List(c.Request.Context(), status, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"enquiries":  enquiries,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// UpdateStatus progresses an enquiry
// PUT /api/v1/staff/enquiries/:id/status
func (h *EnquiryHandler) UpdateStatus(c *gin.Context) {
	staffID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid enquiry ID"))
		return
	}

	var input struct {
		Status entities.EnquiryStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	switch input.Status {
	case entities.EnquiryStatusNew, entities.EnquiryStatusContacted, entities.EnquiryStatusClosed:
	default:
		response.Error(c, domainerrors.BadRequest("Unknown enquiry status"))
		return
	}

	if err := h.enquiryRepo.UpdateStatus(c.Request.Context(), id, input.Status, staffID.String()); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Enquiry not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Enquiry updated"})
}
