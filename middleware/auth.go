package middleware

import (
	"encoding/json"
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/estatehub/buyer-intake/repositories"
	"github.com/estatehub/buyer-intake/userctx"
)

// RequireAuth ensures the request carries an authenticated session, loads
// the account, and places it on the request context. API callers get a JSON
// 401 when unauthenticated.
func RequireAuth(userRepo repositories.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := session.GetSession(r)
			userID, _ := sess.Get("user_id").(string)

			if userID == "" {
				unauthorized(w)
				return
			}

			user, err := userRepo.GetByID(r.Context(), userID)
			if err != nil {
				// Session references an account that no longer exists.
				sess.Delete("user_id")
				unauthorized(w)
				return
			}

			ctx := userctx.WithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}
