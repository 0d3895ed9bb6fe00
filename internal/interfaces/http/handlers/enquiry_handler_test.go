package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"estate-hub.backend/internal/domain/entities"
	"estate-hub.backend/internal/interfaces/http/middleware"
)

func newEnquiryRouter(enquiryRepo *fakeEnquiryRepo, propertyRepo *fakePropertyRepo, staffID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewEnquiryHandler(enquiryRepo, propertyRepo)

	r := gin.New()
	r.POST("/enquiries", h.Create)
	r.GET("/staff/enquiries", func(c *gin.Context) {
		c.Set(middleware.UserIDKey, staffID)
		h.List(c)
	})
	r.PUT("/staff/enquiries/:id/status", func(c *gin.Context) {
		c.Set(middleware.UserIDKey, staffID)
		h.UpdateStatus(c)
	})
	return r
}

func TestEnquiryLifecycleEndpoints(t *testing.T) {
	enquiryRepo := newFakeEnquiryRepo()
	propertyRepo := newFakePropertyRepo()
	staffID := uuid.New()
	r := newEnquiryRouter(enquiryRepo, propertyRepo, staffID)

	property := seedHandlerProperty(t, propertyRepo, 5_000_000)

	body := fmt.Sprintf(`{
		"propertyId": %q,
		"name": "Ravi Deshmukh",
		"email": "ravi@example.com",
		"phone": "9123456780",
		"message": "Is the price negotiable?"
	}`, property.ID)

	w := doJSON(r, http.MethodPost, "/enquiries", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Enquiry entities.Enquiry `json:"enquiry"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, entities.EnquiryStatusNew, created.Enquiry.Status)

	w = doJSON(r, http.MethodGet, "/staff/enquiries?status=new", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), created.Enquiry.ID.String())

	w = doJSON(r, http.MethodPut, "/staff/enquiries/"+created.Enquiry.ID.String()+"/status", `{"status":"contacted"}`)
	require.Equal(t, http.StatusOK, w.Code)

	stored, err := enquiryRepo.GetByID(nil, created.Enquiry.ID)
	require.NoError(t, err)
	require.Equal(t, entities.EnquiryStatusContacted, stored.Status)
	require.Equal(t, staffID.String(), stored.HandledBy.String)
}

func TestCreateEnquiryEndpoint_UnknownProperty(t *testing.T) {
	r := newEnquiryRouter(newFakeEnquiryRepo(), newFakePropertyRepo(), uuid.New())

	body := fmt.Sprintf(`{
		"propertyId": %q,
		"name": "Ravi Deshmukh",
		"email": "ravi@example.com",
		"phone": "9123456780",
		"message": "Still listed?"
	}`, uuid.New())

	w := doJSON(r, http.MethodPost, "/enquiries", body)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateEnquiryStatusEndpoint_Validation(t *testing.T) {
	enquiryRepo := newFakeEnquiryRepo()
	propertyRepo := newFakePropertyRepo()
	r := newEnquiryRouter(enquiryRepo, propertyRepo, uuid.New())

	w := doJSON(r, http.MethodPut, "/staff/enquiries/not-a-uuid/status", `{"status":"contacted"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPut, "/staff/enquiries/"+uuid.NewString()+"/status", `{"status":"escalated"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPut, "/staff/enquiries/"+uuid.NewString()+"/status", `{"status":"contacted"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
}
