package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"estate-hub.backend/internal/domain/entities"
	"estate-hub.backend/internal/interfaces/http/middleware"
	"estate-hub.backend/internal/usecases"
	"estate-hub.backend/pkg/jwt"
)

func newAuthTestRouter(userRepo *fakeUserRepo) (*gin.Engine, *jwt.JWTService) {
	gin.SetMode(gin.TestMode)
	jwtService := jwt.NewJWTService("test-secret", 15*time.Minute, 24*time.Hour)
	h := NewAuthHandler(usecases.NewAuthUsecase(userRepo, jwtService), nil)

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/refresh", h.Refresh)
	r.GET("/auth/me", middleware.AuthMiddleware(jwtService), h.Me)
	r.POST("/auth/change-password", middleware.AuthMiddleware(jwtService), h.ChangePassword)
	return r, jwtService
}

const registerBody = `{
	"name": "Asha Kulkarni",
	"email": "asha@example.com",
	"phone": "9876543210",
	"password": "s3cret-pass"
}`

func TestAuthEndpoints_RegisterLoginMe(t *testing.T) {
	userRepo := newFakeUserRepo()
	r, _ := newAuthTestRouter(userRepo)

	w := doJSON(r, http.MethodPost, "/auth/register", registerBody)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), "asha@example.com")
	require.NotContains(t, w.Body.String(), "s3cret-pass")

	// Duplicate email conflicts.
	w = doJSON(r, http.MethodPost, "/auth/register", registerBody)
	require.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(r, http.MethodPost, "/auth/login", `{"email":"asha@example.com","password":"s3cret-pass"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var login entities.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.AccessToken)
	require.NotEmpty(t, login.RefreshToken)
	require.Empty(t, login.SessionID)

	req := doAuthed(r, http.MethodGet, "/auth/me", "", login.AccessToken)
	require.Equal(t, http.StatusOK, req.Code)
	require.Contains(t, req.Body.String(), "asha@example.com")
}

func TestAuthEndpoints_LoginFailures(t *testing.T) {
	userRepo := newFakeUserRepo()
	r, _ := newAuthTestRouter(userRepo)

	w := doJSON(r, http.MethodPost, "/auth/register", registerBody)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/auth/login", `{"email":"asha@example.com","password":"wrong-guess"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/auth/login", `{"email":"nobody@example.com","password":"s3cret-pass"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/auth/login", `{"email":"not-an-email"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthEndpoints_Refresh(t *testing.T) {
	userRepo := newFakeUserRepo()
	r, _ := newAuthTestRouter(userRepo)

	w := doJSON(r, http.MethodPost, "/auth/register", registerBody)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/auth/login", `{"email":"asha@example.com","password":"s3cret-pass"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var login entities.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	w = doJSON(r, http.MethodPost, "/auth/refresh", `{"refreshToken":"`+login.RefreshToken+`"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "accessToken")

	w = doJSON(r, http.MethodPost, "/auth/refresh", `{"refreshToken":"garbage"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/auth/refresh", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthEndpoints_ChangePassword(t *testing.T) {
	userRepo := newFakeUserRepo()
	r, _ := newAuthTestRouter(userRepo)

	w := doJSON(r, http.MethodPost, "/auth/register", registerBody)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/auth/login", `{"email":"asha@example.com","password":"s3cret-pass"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var login entities.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))

	w = doAuthed(r, http.MethodPost, "/auth/change-password", `{"currentPassword":"wrong-guess","newPassword":"brand-new-pass"}`, login.AccessToken)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doAuthed(r, http.MethodPost, "/auth/change-password", `{"currentPassword":"s3cret-pass","newPassword":"brand-new-pass"}`, login.AccessToken)
	require.Equal(t, http.StatusOK, w.Code)

	// Old password no longer works, the new one does.
	w = doJSON(r, http.MethodPost, "/auth/login", `{"email":"asha@example.com","password":"s3cret-pass"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/auth/login", `{"email":"asha@example.com","password":"brand-new-pass"}`)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAuthEndpoints_MeRequiresToken(t *testing.T) {
	r, _ := newAuthTestRouter(newFakeUserRepo())

	w := doJSON(r, http.MethodGet, "/auth/me", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func doAuthed(r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(middleware.AuthorizationHeader, middleware.BearerPrefix+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
