package authenticator

import (
	"context"
)

// Token represents an authentication token set returned by the provider.
type Token struct {
	AccessToken  string
	RefreshToken string
	IDToken      string
	Expiry       int64
}

// Claims represents user claims from the verified ID token.
type Claims map[string]interface{}

// Subject returns the provider's stable user identifier.
func (c Claims) Subject() string {
	return c.stringClaim("sub")
}

// Email returns the email claim, when present.
func (c Claims) Email() string {
	return c.stringClaim("email")
}

// DisplayName picks the best available human-readable name: name, then
// nickname, then email, then the subject.
func (c Claims) DisplayName() string {
	for _, key := range []string{"name", "nickname", "email"} {
		if v := c.stringClaim(key); v != "" {
			return v
		}
	}
	return c.Subject()
}

func (c Claims) stringClaim(key string) string {
	if v, ok := c[key].(string); ok {
		return v
	}
	return ""
}

// Provider interface abstracts OAuth/OIDC provider operations.
type Provider interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*Token, error)
	GetClaims(ctx context.Context, token *Token) (Claims, error)
}
