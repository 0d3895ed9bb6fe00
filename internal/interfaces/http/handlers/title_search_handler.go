package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"estate-hub.backend/internal/domain/entities"
	domainerrors "estate-hub.backend/internal/domain/errors"
	"estate-hub.backend/internal/domain/repositories"
	"estate-hub.backend/internal/interfaces/http/response"
	"estate-hub.backend/pkg/utils"
)

// TitleSearchHandler handles title-search requests over the repository
type TitleSearchHandler struct {
	titleSearchRepo repositories.TitleSearchRepository
}

// NewTitleSearchHandler creates a new title-search handler
func NewTitleSearchHandler(titleSearchRepo repositories.TitleSearchRepository) *TitleSearchHandler {
	return &TitleSearchHandler{titleSearchRepo: titleSearchRepo}
}

// Create submits a title-search request
// POST /api/v1/title-search
func (h *TitleSearchHandler) Create(c *gin.Context) {
	var input entities.CreateTitleSearchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	request := &entities.TitleSearchRequest{
		ID:              utils.GenerateUUIDv7(),
		PropertyAddress: input.PropertyAddress,
		City:            input.City,
		RequesterName:   input.RequesterName,
		RequesterEmail:  input.RequesterEmail,
		RequesterPhone:  input.RequesterPhone,
		Documents:       input.Documents,
		Status:          entities.TitleSearchReceived,
	}
	if input.SurveyNumber != "" {
		request.SurveyNumber = null.StringFrom(input.SurveyNumber)
	}

	if err := h.titleSearchRepo.Create(c.Request.Context(), request); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"titleSearchRequest": request})
}

// List returns title-search requests for staff
// GET /api/v1/staff/title-search?status=
func (h *TitleSearchHandler) List(c *gin.Context) {
	status := entities.TitleSearchStatus(c.Query("status"))

	var paging utils.PaginationParams
	if err := c.ShouldBindQuery(&paging); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	params := utils.GetPaginationParams(paging.Page, paging.Limit)

	requests, total, err := h.titleSearchRepo.List(c.Request.Context(), status, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"titleSearchRequests": requests,
		"pagination":          utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// UpdateStatus progresses a title-search request
// PUT /api/v1/staff/title-search/:id/status
func (h *TitleSearchHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid title-search ID"))
		return
	}

	var input entities.UpdateTitleSearchStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	switch input.Status {
	case entities.TitleSearchReceived, entities.TitleSearchProcessing,
		entities.TitleSearchCompleted, entities.TitleSearchRejected:
	default:
		response.Error(c, domainerrors.BadRequest("Unknown title-search status"))
		return
	}

	if err := h.titleSearchRepo.UpdateStatus(c.Request.Context(), id, input.Status, input.ResultNotes); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Error(c, domainerrors.NotFound("Title-search request not found"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Title-search request updated"})
}
