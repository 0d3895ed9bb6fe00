package logger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInitAndLog(t *testing.T) {
	Init("development")
	assert.NotNil(t, GetLogger())

	// Smoke: none of these should panic.
	Info(context.Background(), "info message")
	Warn(context.Background(), "warn message")
	Error(context.Background(), "error message")
	Debug(context.Background(), "debug message")
	LogRequest(context.Background(), "GET", "/properties", 200, 5*time.Millisecond, "127.0.0.1")
}

func TestWithContextCarriesRequestID(t *testing.T) {
	Init("development")

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-123")
	assert.NotNil(t, WithContext(ctx))
	assert.NotNil(t, WithContext(nil))

	strCtx := context.WithValue(context.Background(), "request_id", "req-456") //nolint:staticcheck
	assert.NotNil(t, WithContext(strCtx))
}
