package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"estate-hub.backend/internal/domain/entities"
	domainerrors "estate-hub.backend/internal/domain/errors"
	"estate-hub.backend/internal/domain/repositories"
	"estate-hub.backend/internal/interfaces/http/response"
	"estate-hub.backend/pkg/utils"
)

// AdminHandler handles account administration and platform stats
type AdminHandler struct {
	userRepo     repositories.UserRepository
	staffRepo    repositories.StaffProfileRepository
	propertyRepo repositories.PropertyRepository
	bankRepo     repositories.BankingPartnerRepository
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	userRepo repositories.UserRepository,
	staffRepo repositories.StaffProfileRepository,
	propertyRepo repositories.PropertyRepository,
	bankRepo repositories.BankingPartnerRepository,
) *AdminHandler {
	return &AdminHandler{
		userRepo:     userRepo,
		staffRepo:    staffRepo,
		propertyRepo: propertyRepo,
		bankRepo:     bankRepo,
	}
}

// ListUsers returns accounts with pagination
// GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var paging utils.PaginationParams
	if err := c.ShouldBindQuery(&paging); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	params := utils.GetPaginationParams(paging.Page, paging.Limit)

	users, total, err := h.userRepo.List(c.Request.Context(), params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"users":      users,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// UpdateRole changes an account's role. Promoting to staff also creates the
// staff profile when an employee code is supplied.
// PUT /api/v1/admin/users/:id/role
func (h *AdminHandler) UpdateRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	var input struct {
		Role         entities.UserRole `json:"role" binding:"required"`
		EmployeeCode string            `json:"employeeCode"`
		Department   string            `json:"department"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	switch input.Role {
	case entities.UserRoleUser, entities.UserRoleStaff, entities.UserRoleAdmin:
	default:
		response.Error(c, domainerrors.BadRequest("Unknown role"))
		return
	}

	if err := h.userRepo.UpdateRole(c.Request.Context(), id, input.Role); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("User not found"))
			return
		}
		response.Error(c, err)
		return
	}

	if input.Role == entities.UserRoleStaff && input.EmployeeCode != "" {
		if _, err := h.staffRepo.GetByUserID(c.Request.Context(), id); errors.Is(err, domainerrors.ErrNotFound) {
			profile := &entities.StaffProfile{
				UserID:       id,
				EmployeeCode: input.EmployeeCode,
				Department:   input.Department,
			}
			if err := h.staffRepo.Create(c.Request.Context(), profile); err != nil {
				response.Error(c, err)
				return
			}
		}
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Role updated"})
}

// Stats returns headline platform counts
// GET /api/v1/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	_, totalUsers, err := h.userRepo.List(ctx, 1, 0)
	if err != nil {
		response.Error(c, err)
		return
	}

	_, totalProperties, err := h.propertyRepo.List(ctx, entities.PropertyFilter{}, 1, 0)
	if err != nil {
		response.Error(c, err)
		return
	}

	_, pendingVerification, err := h.propertyRepo.ListPendingVerification(ctx, 1, 0)
	if err != nil {
		response.Error(c, err)
		return
	}

	_, totalBanks, err := h.bankRepo.List(ctx, 1, 0)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"stats": gin.H{
			"totalUsers":          totalUsers,
			"totalProperties":     totalProperties,
			"pendingVerification": pendingVerification,
			"totalBankingPartners": totalBanks,
		},
	})
}
