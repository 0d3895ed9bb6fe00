package handlers

import (
	"context"
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

// PropertyHandler handles listing endpoints
type PropertyHandler struct {
	propertyUsecase *usecases.PropertyUsecase
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(propertyUsecase *usecases.PropertyUsecase) *PropertyHandler {
	return &PropertyHandler{propertyUsecase: propertyUsecase}
}

// List returns listings matching the query filters
// GET /api/v1/properties
func (h *PropertyHandler) List(c *gin.Context) {
	var filter entities.PropertyFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	var paging utils.PaginationParams
	if err := c.ShouldBindQuery(&paging); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	params := utils.GetPaginationParams(paging.Page, paging.Limit)

	properties, total, err := h.propertyUsecase.List(c.Request.Context(), filter, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"properties": properties,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// Get returns one listing
// GET /api/v1/properties/:id
func (h *PropertyHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid property ID"))
		return
	}

	property, err := h.propertyUsecase.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Property not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"property": property})
}

// Submit creates a new listing owned by the caller
// POST /api/v1/properties
func (h *PropertyHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	var input entities.SubmitPropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	property, err := h.propertyUsecase.Submit(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"property": property})
}

// Update applies a partial update to an owned listing
// PUT /api/v1/properties/:id
func (h *PropertyHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid property ID"))
		return
	}

	var input entities.UpdatePropertyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	role, _ := middleware.GetUserRole(c)
	property, err := h.propertyUsecase.Update(c.Request.Context(), id, userID, role == "admin", &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Property not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"property": property})
}

// ListMine returns the caller's own listings
// GET /api/v1/properties/mine
func (h *PropertyHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	properties, err := h.propertyUsecase.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"properties": properties})
}

// ListPending returns listings awaiting verification
// GET /api/v1/staff/properties/pending
func (h *PropertyHandler) ListPending(c *gin.Context) {
	var paging utils.PaginationParams
	if err := c.ShouldBindQuery(&paging); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	params := utils.GetPaginationParams(paging.Page, paging.Limit)

	properties, total, err := h.propertyUsecase.ListPending(c.Request.Context(), params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"properties": properties,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// Verify marks a listing as verified by the acting staff member
// PUT /api/v1/staff/properties/:id/verify
func (h *PropertyHandler) Verify(c *gin.Context) {
	h.decide(c, h.propertyUsecase.Verify)
}

// Reject marks a listing as rejected
// PUT /api/v1/staff/properties/:id/reject
func (h *PropertyHandler) Reject(c *gin.Context) {
	h.decide(c, h.propertyUsecase.Reject)
}

// Remove soft-deletes a listing
// DELETE /api/v1/admin/properties/:id
func (h *PropertyHandler) Remove(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid property ID"))
		return
	}

	if err := h.propertyUsecase.Remove(c.Request.Context(), id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Property not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Property removed"})
}

func (h *PropertyHandler) decide(c *gin.Context, fn func(ctx context.Context, propertyID, staffID uuid.UUID) error) {
	staffID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid property ID"))
		return
	}

	if err := fn(c.Request.Context(), id, staffID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Property not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Verification status updated"})
}
