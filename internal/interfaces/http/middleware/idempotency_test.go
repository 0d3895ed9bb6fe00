package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"estate-hub.backend/pkg/redis"
)

func newIdempotencyRouter(t *testing.T, calls *int32, status int) *gin.Engine {
	t.Helper()
	mr := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))

	r := gin.New()
	r.POST("/enquiries", IdempotencyMiddleware(), func(c *gin.Context) {
		n := atomic.AddInt32(calls, 1)
		c.JSON(status, gin.H{"call": n})
	})
	return r
}

func TestIdempotencyMiddleware_ReplaysResponse(t *testing.T) {
	var calls int32
	r := newIdempotencyRouter(t, &calls, http.StatusCreated)

	w1 := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/enquiries", nil)
	req.Header.Set(IdempotencyHeader, "key-1")
	r.ServeHTTP(w1, req)
	require.Equal(t, http.StatusCreated, w1.Code)

	w2 := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/enquiries", nil)
	req.Header.Set(IdempotencyHeader, "key-1")
	r.ServeHTTP(w2, req)

	require.EqualValues(t, 1, calls)
	require.Equal(t, "true", w2.Header().Get("X-Idempotency-Hit"))
	require.Equal(t, w1.Body.String(), w2.Body.String())
}

func TestIdempotencyMiddleware_NoHeaderPassesThrough(t *testing.T) {
	var calls int32
	r := newIdempotencyRouter(t, &calls, http.StatusCreated)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/enquiries", nil))
		require.Equal(t, http.StatusCreated, w.Code)
	}
	require.EqualValues(t, 2, calls)
}

func TestIdempotencyMiddleware_FailedRequestUnlocksRetry(t *testing.T) {
	var calls int32
	r := newIdempotencyRouter(t, &calls, http.StatusBadRequest)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/enquiries", nil)
		req.Header.Set(IdempotencyHeader, "key-err")
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code)
	}
	require.EqualValues(t, 2, calls)
}

func TestIdempotencyMiddleware_InProgressConflicts(t *testing.T) {
	mr := miniredis.RunT(t)
	redis.SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	require.NoError(t, mr.Set("idempotency::key-busy", "processing"))

	r := gin.New()
	r.POST("/enquiries", IdempotencyMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/enquiries", nil)
	req.Header.Set(IdempotencyHeader, "key-busy")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusConflict, w.Code)
}
