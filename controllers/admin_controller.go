package controllers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/estatehub/buyer-intake/models"
	"github.com/estatehub/buyer-intake/repositories"
	"github.com/estatehub/buyer-intake/userctx"
)

// AdminController handles role administration.
type AdminController struct {
	userRepo repositories.UserRepository
	logger   *zap.Logger
}

// NewAdminController creates a new admin controller.
func NewAdminController(userRepo repositories.UserRepository, logger *zap.Logger) *AdminController {
	return &AdminController{
		userRepo: userRepo,
		logger:   logger,
	}
}

// SetAdmin handles POST /api/admin/set-admin — grants the admin role to the
// account with the given email. Only admins may call it.
func (c *AdminController) SetAdmin(w http.ResponseWriter, r *http.Request) {
	actor := userctx.GetUser(r.Context())
	if actor == nil || !actor.IsAdmin() {
		respondError(w, http.StatusForbidden, "Admin privileges required")
		return
	}

	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" {
		respondError(w, http.StatusBadRequest, "email is required")
		return
	}

	if err := c.userRepo.SetRoleByEmail(r.Context(), body.Email, models.RoleAdmin); err != nil {
		if models.IsDomainError(err, models.ErrCodeNotFound) {
			respondError(w, http.StatusNotFound, "user not found")
			return
		}
		c.logger.Error("failed to set admin role", zap.Error(err), zap.String("email", body.Email))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.logger.Info("admin role granted",
		zap.String("email", body.Email),
		zap.String("granted_by", actor.ID),
	)
	respondJSON(w, http.StatusOK, map[string]string{"message": "User updated successfully"})
}
