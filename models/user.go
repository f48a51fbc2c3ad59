package models

import "time"

// User roles. Admins may edit and delete any buyer; regular users only
// their own.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an authenticated account, provisioned on first login from the
// identity provider's verified claims. ID is the provider's subject.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
