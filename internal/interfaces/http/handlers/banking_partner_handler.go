package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"estate-hub.backend/internal/domain/entities"
	domainerrors "estate-hub.backend/internal/domain/errors"
	"estate-hub.backend/internal/interfaces/http/response"
	"estate-hub.backend/internal/usecases"
	"estate-hub.backend/pkg/metrics"
	"estate-hub.backend/pkg/utils"
)

// BankingPartnerHandler handles banking-partner and loan endpoints
type BankingPartnerHandler struct {
	bankUsecase        *usecases.BankingPartnerUsecase
	loanOptionsUsecase *usecases.LoanOptionsUsecase
}

// NewBankingPartnerHandler creates a new banking-partner handler
func NewBankingPartnerHandler(bankUsecase *usecases.BankingPartnerUsecase, loanOptionsUsecase *usecases.LoanOptionsUsecase) *BankingPartnerHandler {
	return &BankingPartnerHandler{
		bankUsecase:        bankUsecase,
		loanOptionsUsecase: loanOptionsUsecase,
	}
}

// List returns banking partners
// GET /api/v1/banking-partners
func (h *BankingPartnerHandler) List(c *gin.Context) {
	var paging utils.PaginationParams
	if err := c.ShouldBindQuery(&paging); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	params := utils.GetPaginationParams(paging.Page, paging.Limit)

	banks, total, err := h.bankUsecase.List(c.Request.Context(), params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"bankingPartners": banks,
		"pagination":      utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// Get returns one banking partner
// GET /api/v1/banking-partners/:id
func (h *BankingPartnerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid banking partner ID"))
		return
	}

	bank, err := h.bankUsecase.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Banking partner not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bankingPartner": bank})
}

// Create registers a new banking partner
// POST /api/v1/admin/banking-partners
func (h *BankingPartnerHandler) Create(c *gin.Context) {
	var input entities.BankingPartnerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	bank, err := h.bankUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"bankingPartner": bank})
}

// Update replaces a banking partner and its products
// PUT /api/v1/admin/banking-partners/:id
func (h *BankingPartnerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid banking partner ID"))
		return
	}

	var input entities.BankingPartnerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	bank, err := h.bankUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Banking partner not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bankingPartner": bank})
}

// Delete removes a banking partner
// DELETE /api/v1/admin/banking-partners/:id
func (h *BankingPartnerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid banking partner ID"))
		return
	}

	if err := h.bankUsecase.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Banking partner not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Banking partner removed"})
}

// LoanOptions returns ranked loan offers for a property
// GET /api/v1/banking-partners/loan-options/:propertyId
func (h *BankingPartnerHandler) LoanOptions(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("propertyId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid property ID"))
		return
	}

	var filters entities.LoanOptionFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.loanOptionsUsecase.GetLoanOptions(c.Request.Context(), propertyID, filters)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Property not found"))
			return
		}
		response.Error(c, err)
		return
	}

	metrics.LoanOffersComputed.Observe(float64(result.TotalOffersAvailable))
	response.Success(c, http.StatusOK, result)
}

// EMICalculator computes a standalone EMI breakdown
// GET /api/v1/banking-partners/emi-calculator?principal&rate&tenure
func (h *BankingPartnerHandler) EMICalculator(c *gin.Context) {
	principal, err := strconv.ParseFloat(c.Query("principal"), 64)
	if err != nil || principal <= 0 {
		response.Error(c, domainerrors.BadRequest("principal must be a positive number"))
		return
	}

	rate, err := strconv.ParseFloat(c.Query("rate"), 64)
	if err != nil || rate < 0 {
		response.Error(c, domainerrors.BadRequest("rate must be a non-negative number"))
		return
	}

	tenure, err := strconv.Atoi(c.Query("tenure"))
	if err != nil || tenure <= 0 {
		response.Error(c, domainerrors.BadRequest("tenure must be a positive whole number of years"))
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success":     true,
		"calculation": usecases.BuildEMICalculation(principal, rate, tenure),
	})
}
