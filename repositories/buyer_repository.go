package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/estatehub/buyer-intake/models"
)

// BuyerRepository defines buyer persistence operations.
type BuyerRepository interface {
	GetByID(ctx context.Context, id string) (*models.Buyer, error)
	List(ctx context.Context, filters models.BuyerFilters) ([]models.Buyer, int, error)
	ListAll(ctx context.Context, filters models.BuyerFilters) ([]models.Buyer, error)
	Create(ctx context.Context, buyer *models.Buyer) error
	// Update persists the buyer only if the stored updated_at still equals
	// expectedUpdatedAt (millisecond-exact), making the concurrency check
	// atomic at the store. Returns models.ErrConflict when another write
	// interleaved and models.ErrBuyerNotFound when the row is gone.
	Update(ctx context.Context, buyer *models.Buyer, expectedUpdatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}

type buyerRepository struct {
	db DBTX
}

// NewBuyerRepository creates a new buyer repository.
func NewBuyerRepository(db DBTX) BuyerRepository {
	return &buyerRepository{db: db}
}

const buyerColumns = `
	id, full_name, email, phone, city, property_type, bhk, purpose,
	budget_min, budget_max, timeline, source, status, notes, tags,
	owner_id, created_at, updated_at
`

// sortColumnFor maps API sort keys onto column names. Keys are validated by
// BuyerFilters.Normalize, never interpolated from raw input.
var sortColumnFor = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"fullName":  "full_name",
	"status":    "status",
}

// GetByID retrieves a buyer by ID.
func (r *buyerRepository) GetByID(ctx context.Context, id string) (*models.Buyer, error) {
	query := `SELECT ` + buyerColumns + ` FROM buyers WHERE id = ?`

	buyer, err := scanBuyer(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, models.ErrBuyerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get buyer: %w", err)
	}
	return buyer, nil
}

// List retrieves one page of buyers matching the filters plus the total
// match count.
func (r *buyerRepository) List(ctx context.Context, filters models.BuyerFilters) ([]models.Buyer, int, error) {
	where, args := buildBuyerFilter(filters)

	var total int
	countQuery := `SELECT COUNT(*) FROM buyers` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count buyers: %w", err)
	}

	query := `SELECT ` + buyerColumns + ` FROM buyers` + where + orderClause(filters) + ` LIMIT ? OFFSET ?`
	args = append(args, filters.Limit, filters.Offset())

	buyers, err := r.queryBuyers(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return buyers, total, nil
}

// ListAll retrieves every buyer matching the filters, unpaginated. Used by
// the CSV export.
func (r *buyerRepository) ListAll(ctx context.Context, filters models.BuyerFilters) ([]models.Buyer, error) {
	where, args := buildBuyerFilter(filters)
	query := `SELECT ` + buyerColumns + ` FROM buyers` + where + orderClause(filters)
	return r.queryBuyers(ctx, query, args...)
}

// Create inserts a new buyer row.
func (r *buyerRepository) Create(ctx context.Context, buyer *models.Buyer) error {
	query := `
		INSERT INTO buyers (` + buyerColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	tags, err := marshalTags(buyer.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query,
		buyer.ID,
		buyer.FullName,
		nullString(buyer.Email),
		buyer.Phone,
		buyer.City,
		buyer.PropertyType,
		nullString(buyer.BHK),
		buyer.Purpose,
		nullInt64(buyer.BudgetMin),
		nullInt64(buyer.BudgetMax),
		buyer.Timeline,
		buyer.Source,
		buyer.Status,
		nullString(buyer.Notes),
		tags,
		buyer.OwnerID,
		buyer.CreatedAt.UnixMilli(),
		buyer.UpdatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to create buyer: %w", err)
	}
	return nil
}

// Update writes the merged buyer conditionally on the stored concurrency
// token. The WHERE clause carries both the id and the expected updated_at so
// the compare and the write are a single atomic statement.
func (r *buyerRepository) Update(ctx context.Context, buyer *models.Buyer, expectedUpdatedAt time.Time) error {
	query := `
		UPDATE buyers
		SET full_name = ?, email = ?, phone = ?, city = ?, property_type = ?,
		    bhk = ?, purpose = ?, budget_min = ?, budget_max = ?, timeline = ?,
		    source = ?, status = ?, notes = ?, tags = ?, updated_at = ?
		WHERE id = ? AND updated_at = ?
	`

	tags, err := marshalTags(buyer.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query,
		buyer.FullName,
		nullString(buyer.Email),
		buyer.Phone,
		buyer.City,
		buyer.PropertyType,
		nullString(buyer.BHK),
		buyer.Purpose,
		nullInt64(buyer.BudgetMin),
		nullInt64(buyer.BudgetMax),
		buyer.Timeline,
		buyer.Source,
		buyer.Status,
		nullString(buyer.Notes),
		tags,
		buyer.UpdatedAt.UnixMilli(),
		buyer.ID,
		expectedUpdatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to update buyer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		// Distinguish a vanished row from a stale token.
		var exists int
		err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM buyers WHERE id = ?`, buyer.ID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check buyer existence: %w", err)
		}
		if exists == 0 {
			return models.ErrBuyerNotFound
		}
		return models.ErrConflict
	}
	return nil
}

// Delete deletes a buyer by ID. History rows cascade via the foreign key.
func (r *buyerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM buyers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete buyer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrBuyerNotFound
	}
	return nil
}

func (r *buyerRepository) queryBuyers(ctx context.Context, query string, args ...any) ([]models.Buyer, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query buyers: %w", err)
	}
	defer rows.Close()

	var buyers []models.Buyer
	for rows.Next() {
		buyer, err := scanBuyer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan buyer: %w", err)
		}
		buyers = append(buyers, *buyer)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating buyers: %w", err)
	}
	return buyers, nil
}

// buildBuyerFilter translates the list filters into a WHERE clause. Search
// matches name, phone, and email (case-insensitive substring).
func buildBuyerFilter(filters models.BuyerFilters) (string, []any) {
	var conditions []string
	var args []any

	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		conditions = append(conditions, `(full_name LIKE ? OR phone LIKE ? OR email LIKE ?)`)
		args = append(args, pattern, pattern, pattern)
	}
	if filters.City != "" {
		conditions = append(conditions, `city = ?`)
		args = append(args, filters.City)
	}
	if filters.PropertyType != "" {
		conditions = append(conditions, `property_type = ?`)
		args = append(args, filters.PropertyType)
	}
	if filters.Status != "" {
		conditions = append(conditions, `status = ?`)
		args = append(args, filters.Status)
	}
	if filters.Timeline != "" {
		conditions = append(conditions, `timeline = ?`)
		args = append(args, filters.Timeline)
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func orderClause(filters models.BuyerFilters) string {
	column, ok := sortColumnFor[filters.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if filters.SortOrder == "asc" {
		direction = "ASC"
	}
	return fmt.Sprintf(" ORDER BY %s %s", column, direction)
}

// rowScanner is the subset shared by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanBuyer(row rowScanner) (*models.Buyer, error) {
	var buyer models.Buyer
	var email, bhk, notes, tags sql.NullString
	var budgetMin, budgetMax sql.NullInt64
	var createdAt, updatedAt int64

	err := row.Scan(
		&buyer.ID,
		&buyer.FullName,
		&email,
		&buyer.Phone,
		&buyer.City,
		&buyer.PropertyType,
		&bhk,
		&buyer.Purpose,
		&budgetMin,
		&budgetMax,
		&buyer.Timeline,
		&buyer.Source,
		&buyer.Status,
		&notes,
		&tags,
		&buyer.OwnerID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	buyer.Email = email.String
	buyer.BHK = bhk.String
	buyer.Notes = notes.String
	if budgetMin.Valid {
		v := budgetMin.Int64
		buyer.BudgetMin = &v
	}
	if budgetMax.Valid {
		v := budgetMax.Int64
		buyer.BudgetMax = &v
	}
	if tags.Valid && tags.String != "" {
		if err := json.Unmarshal([]byte(tags.String), &buyer.Tags); err != nil {
			return nil, fmt.Errorf("failed to decode tags: %w", err)
		}
	}
	buyer.CreatedAt = time.UnixMilli(createdAt).UTC()
	buyer.UpdatedAt = time.UnixMilli(updatedAt).UTC()

	return &buyer, nil
}

func marshalTags(tags []string) (sql.NullString, error) {
	if len(tags) == 0 {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
