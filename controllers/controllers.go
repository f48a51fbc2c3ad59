package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/estatehub/buyer-intake/authenticator"
	"github.com/estatehub/buyer-intake/models"
	"github.com/estatehub/buyer-intake/repositories"
	"github.com/estatehub/buyer-intake/services"
)

// Controllers holds all controller instances.
type Controllers struct {
	Auth  *AuthController
	Buyer *BuyerController
	Admin *AdminController
}

// NewControllers creates and initializes all controller instances.
func NewControllers(srvs *services.Services, repos *repositories.Repositories, auth authenticator.Provider, logger *zap.Logger) *Controllers {
	return &Controllers{
		Auth:  NewAuthController(auth, repos.Users, logger),
		Buyer: NewBuyerController(srvs, logger),
		Admin: NewAdminController(repos.Users, logger),
	}
}

// respondJSON writes a JSON body with the given status code.
func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// respondError writes a JSON error body.
func respondError(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, map[string]string{"error": message})
}

// respondServiceError maps service-layer errors onto HTTP statuses:
// NotFound 404, Forbidden 403, Conflict 409, validation 400 (with the
// offending fields), anything else 500.
func respondServiceError(w http.ResponseWriter, err error) {
	if vErr, ok := models.AsValidationError(err); ok {
		respondJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "Validation failed",
			"details": vErr.Violations,
		})
		return
	}

	var dErr *models.DomainError
	if errors.As(err, &dErr) {
		switch dErr.Code {
		case models.ErrCodeNotFound:
			respondError(w, http.StatusNotFound, dErr.Message)
		case models.ErrCodeForbidden:
			respondError(w, http.StatusForbidden, dErr.Message)
		case models.ErrCodeConflict:
			respondError(w, http.StatusConflict, dErr.Message)
		case models.ErrCodeValidation:
			respondError(w, http.StatusBadRequest, dErr.Message)
		default:
			respondError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respondError(w, http.StatusInternalServerError, "Internal server error")
}
