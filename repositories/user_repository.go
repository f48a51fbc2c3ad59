package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/estatehub/buyer-intake/models"
)

// UserRepository handles user account persistence.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetOrCreate returns the stored user for the given identity, inserting
	// it first when this is the subject's first login.
	GetOrCreate(ctx context.Context, user *models.User) (*models.User, error)
	SetRoleByEmail(ctx context.Context, email, role string) error
	IsAdmin(ctx context.Context, id string) (bool, error)
}

type userRepository struct {
	db DBTX
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db DBTX) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, email, full_name, role, created_at, updated_at`

// GetByID retrieves a user by ID.
func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, models.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetOrCreate inserts the user when unseen and returns the stored row.
func (r *userRepository) GetOrCreate(ctx context.Context, user *models.User) (*models.User, error) {
	existing, err := r.GetByID(ctx, user.ID)
	if err == nil {
		return existing, nil
	}
	if err != models.ErrUserNotFound {
		return nil, err
	}

	now := time.Now().UTC()
	role := user.Role
	if role == "" {
		role = models.RoleUser
	}

	query := `
		INSERT INTO users (id, email, full_name, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		nullString(user.FullName),
		role,
		now.UnixMilli(),
		now.UnixMilli(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return r.GetByID(ctx, user.ID)
}

// SetRoleByEmail updates a user's role, keyed by email.
func (r *userRepository) SetRoleByEmail(ctx context.Context, email, role string) error {
	query := `UPDATE users SET role = ?, updated_at = ? WHERE email = ?`

	result, err := r.db.ExecContext(ctx, query, role, time.Now().UTC().UnixMilli(), email)
	if err != nil {
		return fmt.Errorf("failed to update user role: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

// IsAdmin reports whether the user holds the admin role. Unknown users are
// not admins.
func (r *userRepository) IsAdmin(ctx context.Context, id string) (bool, error) {
	var role string
	err := r.db.QueryRowContext(ctx, `SELECT role FROM users WHERE id = ?`, id).Scan(&role)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get user role: %w", err)
	}
	return role == models.RoleAdmin, nil
}

func scanUser(row rowScanner) (*models.User, error) {
	var user models.User
	var fullName sql.NullString
	var createdAt, updatedAt int64

	err := row.Scan(&user.ID, &user.Email, &fullName, &user.Role, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	user.FullName = fullName.String
	user.CreatedAt = time.UnixMilli(createdAt).UTC()
	user.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return &user, nil
}
