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
)

// UserHandler handles saved-property bookmarks
type UserHandler struct {
	userRepo     repositories.UserRepository
	propertyRepo repositories.PropertyRepository
}

// NewUserHandler creates a new user handler
func NewUserHandler(userRepo repositories.UserRepository, propertyRepo repositories.PropertyRepository) *UserHandler {
	return &UserHandler{
		userRepo:     userRepo,
		propertyRepo: propertyRepo,
	}
}

// SaveProperty bookmarks a listing
// POST /api/v1/users/saved-properties/:id
func (h *UserHandler) SaveProperty(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid property ID"))
		return
	}

	if _, err := h.propertyRepo.GetByID(c.Request.Context(), propertyID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Property not found"))
			return
		}
		response.Error(c, err)
		return
	}

	if err := h.userRepo.AddSavedProperty(c.Request.Context(), userID, propertyID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Property saved"})
}

// UnsaveProperty removes a bookmark
// DELETE /api/v1/users/saved-properties/:id
func (h *UserHandler) UnsaveProperty(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid property ID"))
		return
	}

	if err := h.userRepo.RemoveSavedProperty(c.Request.Context(), userID, propertyID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Property removed from saved"})
}

// ListSaved returns the caller's bookmarked listings
// GET /api/v1/users/saved-properties
func (h *UserHandler) ListSaved(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	ids, err := h.userRepo.ListSavedProperties(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	properties := make([]*entities.Property, 0, len(ids))
	for _, id := range ids {
		property, err := h.propertyRepo.GetByID(c.Request.Context(), id)
		if err != nil {
			// A saved listing may have been removed since; skip it.
			if errors.Is(err, domainerrors.ErrNotFound) {
				continue
			}
			response.Error(c, err)
			return
		}
		properties = append(properties, property)
	}

	response.Success(c, http.StatusOK, gin.H{"properties": properties})
}
