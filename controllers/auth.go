package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"gitea.com/go-chi/session"
	"go.uber.org/zap"

	"github.com/estatehub/buyer-intake/authenticator"
	"github.com/estatehub/buyer-intake/models"
	"github.com/estatehub/buyer-intake/repositories"
	"github.com/estatehub/buyer-intake/userctx"
)

// AuthController implements the OIDC login glue: redirect out, verify the
// callback, provision the account locally, store the session.
type AuthController struct {
	provider authenticator.Provider
	userRepo repositories.UserRepository
	logger   *zap.Logger
}

// NewAuthController creates a new auth controller.
func NewAuthController(provider authenticator.Provider, userRepo repositories.UserRepository, logger *zap.Logger) *AuthController {
	return &AuthController{
		provider: provider,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Login handles GET /login — initiates the authentication flow.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	state, err := generateRandomState()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Saved to validate the callback against CSRF.
	sess := session.GetSession(r)
	sess.Set("state", state)

	http.Redirect(w, r, c.provider.GetAuthURL(state), http.StatusTemporaryRedirect)
}

// Callback handles GET /callback — exchanges the code, verifies the ID
// token, and provisions the user on first login.
func (c *AuthController) Callback(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)

	storedState, _ := sess.Get("state").(string)
	if storedState == "" {
		respondError(w, http.StatusBadRequest, "State not found in session")
		return
	}
	if r.URL.Query().Get("state") != storedState {
		respondError(w, http.StatusBadRequest, "Invalid state parameter")
		return
	}

	token, err := c.provider.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Failed to exchange authorization code")
		return
	}

	claims, err := c.provider.GetClaims(r.Context(), token)
	if err != nil {
		c.logger.Error("failed to verify ID token", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to verify ID token")
		return
	}

	user, err := c.userRepo.GetOrCreate(r.Context(), &models.User{
		ID:       claims.Subject(),
		Email:    claims.Email(),
		FullName: claims.DisplayName(),
	})
	if err != nil {
		c.logger.Error("failed to provision user", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Failed to provision user")
		return
	}

	sess.Set("user_id", user.ID)
	sess.Delete("state")

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout handles GET /logout.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	sess.Delete("user_id")

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Me handles GET /api/me — the authenticated account.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	user := userctx.GetUser(r.Context())
	if user == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// generateRandomState generates a random state value for CSRF protection.
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}
