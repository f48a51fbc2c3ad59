package userctx

import (
	"context"

	"github.com/estatehub/buyer-intake/models"
)

// Context key type
type contextKey string

const userKey contextKey = "current_user"

// WithUser adds the authenticated user to the request context.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUser retrieves the authenticated user from the request context, or nil
// when the request is anonymous.
func GetUser(ctx context.Context) *models.User {
	user, ok := ctx.Value(userKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}

// GetUserID retrieves the authenticated user's ID, or "" when anonymous.
func GetUserID(ctx context.Context) string {
	if user := GetUser(ctx); user != nil {
		return user.ID
	}
	return ""
}
