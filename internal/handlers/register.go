package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ivmolchanov/walletsvc/internal/services"
	"github.com/shopspring/decimal"
)

// Registerer handles user registration.
type Registerer interface {
	Register(ctx context.Context, email, password, currency string, initialBalance decimal.Decimal) error
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`

	// Currency of the first wallet
	// required: true
	// example: USD
	Currency string `json:"currency"`

	// Initial balance of the first wallet
	// required: true
	// example: 100.0
	InitBalance float64 `json:"init_balance"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// example: User is successfully created
	Message string `json:"message"`
}

// RegisterErrorResponse represents an error response for registration
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Error message
	// example: Email already exists
	Error string `json:"error"`
}

// NewRegisterHandler handles user registration.
// @Summary Register a new user
// @Description Creates a user account and opens their first wallet.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.RegisterRequest true "Register Request"
// @Success 201 {object} handlers.RegisterResponse "User created"
// @Failure 400 {object} handlers.RegisterErrorResponse "Invalid request or email taken"
// @Router /register [post]
func NewRegisterHandler(registerer Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{Error: "invalid request body"})
			return
		}

		if req.Email == "" || req.Password == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{Error: "email and password are required"})
			return
		}

		err := registerer.Register(ctx, req.Email, req.Password, req.Currency, decimal.NewFromFloat(req.InitBalance))
		if err != nil {
			if errors.Is(err, services.ErrUserAlreadyExists) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(RegisterErrorResponse{Error: err.Error()})
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RegisterErrorResponse{Error: "internal error"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResponse{Message: "User is successfully created"})
	}
}
