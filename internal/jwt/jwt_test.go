package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndGetUserID(t *testing.T) {
	ctx := context.Background()
	svc := New("test-secret", time.Hour)
	userID := uuid.New()

	token, err := svc.Generate(ctx, userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := svc.GetUserID(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, userID, got)

	assert.NoError(t, svc.Validate(ctx, token))
}

func TestJWT_WrongSecret(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	token, err := New("secret-a", time.Hour).Generate(ctx, userID)
	assert.NoError(t, err)

	_, err = New("secret-b", time.Hour).GetUserID(ctx, token)
	assert.Error(t, err)
}

func TestJWT_ExpiredToken(t *testing.T) {
	ctx := context.Background()
	svc := New("test-secret", -time.Minute)

	token, err := svc.Generate(ctx, uuid.New())
	assert.NoError(t, err)

	_, err = svc.GetUserID(ctx, token)
	assert.Error(t, err)
	assert.Error(t, svc.Validate(ctx, token))
}

func TestJWT_GarbageToken(t *testing.T) {
	ctx := context.Background()
	svc := New("test-secret", time.Hour)

	_, err := svc.GetUserID(ctx, "not-a-token")
	assert.Error(t, err)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	ctx := context.Background()
	svc := New("test-secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token-123")

	token, err := svc.GetTokenFromRequest(ctx, req)
	assert.NoError(t, err)
	assert.Equal(t, "token-123", token)
}

func TestJWT_GetTokenFromRequest_Errors(t *testing.T) {
	ctx := context.Background()
	svc := New("test-secret", time.Hour)

	// Missing header
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := svc.GetTokenFromRequest(ctx, req)
	assert.Error(t, err)

	// Wrong scheme
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	_, err = svc.GetTokenFromRequest(ctx, req)
	assert.Error(t, err)

	// Missing token part
	req.Header.Set("Authorization", "Bearer")
	_, err = svc.GetTokenFromRequest(ctx, req)
	assert.Error(t, err)
}
