package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ivmolchanov/walletsvc/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loginer := NewMockLoginer(ctrl)
	loginer.EXPECT().Login(gomock.Any(), "john@example.com", "secret123").Return("token-123", nil)

	body, _ := json.Marshal(LoginRequest{Email: "john@example.com", Password: "secret123"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/login", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	NewLoginHandler(loginer)(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp LoginResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "token-123", resp.Token)
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loginer := NewMockLoginer(ctrl)
	handler := NewLoginHandler(loginer)

	loginer.EXPECT().Login(gomock.Any(), "john@example.com", "wrong").Return("", services.ErrInvalidCredentials)

	body, _ := json.Marshal(LoginRequest{Email: "john@example.com", Password: "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/login", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	handler(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// Unknown users get the same response as a wrong password
	loginer.EXPECT().Login(gomock.Any(), "ghost@example.com", "secret").Return("", services.ErrUserDoesNotExist)

	body, _ = json.Marshal(LoginRequest{Email: "ghost@example.com", Password: "secret"})
	req = httptest.NewRequest(http.MethodPost, "/api/v1/login", bytes.NewReader(body))
	rr = httptest.NewRecorder()
	handler(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	var resp LoginErrorResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "invalid email or password", resp.Error)
}

func TestLoginHandler_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loginer := NewMockLoginer(ctrl)
	handler := NewLoginHandler(loginer)

	// Malformed JSON
	req := httptest.NewRequest(http.MethodPost, "/api/v1/login", bytes.NewReader([]byte("{")))
	rr := httptest.NewRecorder()
	handler(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// Unexpected service failure
	loginer.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("db down"))

	body, _ := json.Marshal(LoginRequest{Email: "a@b.c", Password: "p"})
	req = httptest.NewRequest(http.MethodPost, "/api/v1/login", bytes.NewReader(body))
	rr = httptest.NewRecorder()
	handler(rr, req)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
