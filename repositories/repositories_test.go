package repositories

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/estatehub/buyer-intake/database"
	"github.com/estatehub/buyer-intake/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	// Initialize test database using the actual migration system
	db, err := database.Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func seedUser(t *testing.T, db *sql.DB, id string) *models.User {
	repo := NewUserRepository(db)
	user, err := repo.GetOrCreate(context.Background(), &models.User{
		ID:    id,
		Email: id + "@example.com",
	})
	if err != nil {
		t.Fatalf("Failed to seed user %s: %v", id, err)
	}
	return user
}

func testBuyer(ownerID string) *models.Buyer {
	now := time.Now().UTC().Truncate(time.Millisecond)
	min := int64(2_000_000)
	max := int64(4_000_000)
	return &models.Buyer{
		ID:           uuid.NewString(),
		FullName:     "Asha Verma",
		Email:        "asha@example.com",
		Phone:        "9876543210",
		City:         "Chandigarh",
		PropertyType: "Apartment",
		BHK:          "2",
		Purpose:      "Buy",
		BudgetMin:    &min,
		BudgetMax:    &max,
		Timeline:     "0-3m",
		Source:       "Website",
		Status:       "New",
		Notes:        "prefers corner unit",
		Tags:         []string{"hot", "site-visit"},
		OwnerID:      ownerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestBuyerRepository(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewBuyerRepository(db)
	owner := seedUser(t, db, "owner-1")

	// Test Create
	buyer := testBuyer(owner.ID)
	if err := repo.Create(ctx, buyer); err != nil {
		t.Fatalf("Failed to create buyer: %v", err)
	}

	// Test GetByID round-trip
	retrieved, err := repo.GetByID(ctx, buyer.ID)
	if err != nil {
		t.Fatalf("Failed to get buyer by ID: %v", err)
	}
	if retrieved.FullName != buyer.FullName {
		t.Errorf("Expected name %s, got %s", buyer.FullName, retrieved.FullName)
	}
	if !retrieved.UpdatedAt.Equal(buyer.UpdatedAt) {
		t.Errorf("Expected updated_at %v, got %v", buyer.UpdatedAt, retrieved.UpdatedAt)
	}
	if len(retrieved.Tags) != 2 || retrieved.Tags[0] != "hot" {
		t.Errorf("Expected tags to round-trip, got %v", retrieved.Tags)
	}
	if retrieved.BudgetMin == nil || *retrieved.BudgetMin != 2_000_000 {
		t.Errorf("Expected budget_min 2000000, got %v", retrieved.BudgetMin)
	}

	// Test GetByID for a missing row
	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, models.ErrBuyerNotFound) {
		t.Errorf("Expected ErrBuyerNotFound, got %v", err)
	}

	// Test List with a status filter
	buyers, total, err := repo.List(ctx, models.BuyerFilters{Status: "New", Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("Failed to list buyers: %v", err)
	}
	if total != 1 || len(buyers) != 1 {
		t.Errorf("Expected 1 buyer with status New, got total=%d len=%d", total, len(buyers))
	}

	// Test List with a non-matching search
	_, total, err = repo.List(ctx, models.BuyerFilters{Search: "nobody", Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("Failed to search buyers: %v", err)
	}
	if total != 0 {
		t.Errorf("Expected no matches for search, got %d", total)
	}

	// Test Delete
	if err := repo.Delete(ctx, buyer.ID); err != nil {
		t.Fatalf("Failed to delete buyer: %v", err)
	}
	if _, err := repo.GetByID(ctx, buyer.ID); !errors.Is(err, models.ErrBuyerNotFound) {
		t.Errorf("Expected ErrBuyerNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, buyer.ID); !errors.Is(err, models.ErrBuyerNotFound) {
		t.Errorf("Expected ErrBuyerNotFound deleting twice, got %v", err)
	}
}

func TestBuyerRepositoryConditionalUpdate(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewBuyerRepository(db)
	owner := seedUser(t, db, "owner-1")

	buyer := testBuyer(owner.ID)
	if err := repo.Create(ctx, buyer); err != nil {
		t.Fatalf("Failed to create buyer: %v", err)
	}

	// Update with the correct expected token succeeds and stores the new one.
	firstToken := buyer.UpdatedAt
	buyer.Status = "Qualified"
	buyer.UpdatedAt = firstToken.Add(time.Millisecond)
	if err := repo.Update(ctx, buyer, firstToken); err != nil {
		t.Fatalf("Failed to update buyer: %v", err)
	}

	updated, err := repo.GetByID(ctx, buyer.ID)
	if err != nil {
		t.Fatalf("Failed to get updated buyer: %v", err)
	}
	if updated.Status != "Qualified" {
		t.Errorf("Expected status Qualified, got %s", updated.Status)
	}
	if !updated.UpdatedAt.Equal(firstToken.Add(time.Millisecond)) {
		t.Errorf("Expected advanced token, got %v", updated.UpdatedAt)
	}

	// Re-running with the old token must now fail with a conflict and leave
	// the row untouched.
	buyer.Status = "Dropped"
	if err := repo.Update(ctx, buyer, firstToken); !errors.Is(err, models.ErrConflict) {
		t.Errorf("Expected ErrConflict for stale token, got %v", err)
	}
	unchanged, err := repo.GetByID(ctx, buyer.ID)
	if err != nil {
		t.Fatalf("Failed to re-read buyer: %v", err)
	}
	if unchanged.Status != "Qualified" {
		t.Errorf("Expected status to stay Qualified after conflict, got %s", unchanged.Status)
	}

	// A vanished row reports not-found, not conflict.
	ghost := testBuyer(owner.ID)
	if err := repo.Update(ctx, ghost, ghost.UpdatedAt); !errors.Is(err, models.ErrBuyerNotFound) {
		t.Errorf("Expected ErrBuyerNotFound for missing row, got %v", err)
	}
}

func TestHistoryRepository(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	buyerRepo := NewBuyerRepository(db)
	historyRepo := NewHistoryRepository(db)
	owner := seedUser(t, db, "owner-1")

	buyer := testBuyer(owner.ID)
	if err := buyerRepo.Create(ctx, buyer); err != nil {
		t.Fatalf("Failed to create buyer: %v", err)
	}

	// Append two entries at distinct timestamps.
	base := time.Now().UTC().Truncate(time.Millisecond)
	first := &models.HistoryEntry{
		ID:        uuid.NewString(),
		BuyerID:   buyer.ID,
		ChangedBy: owner.ID,
		ChangedAt: base,
		Diff:      models.CreationDiff(),
	}
	second := &models.HistoryEntry{
		ID:        uuid.NewString(),
		BuyerID:   buyer.ID,
		ChangedBy: owner.ID,
		ChangedAt: base.Add(time.Second),
		Diff: models.Diff{
			"status": {Old: "New", New: "Qualified"},
		},
	}
	if err := historyRepo.Create(ctx, first); err != nil {
		t.Fatalf("Failed to create first history entry: %v", err)
	}
	if err := historyRepo.Create(ctx, second); err != nil {
		t.Fatalf("Failed to create second history entry: %v", err)
	}

	// Newest first.
	entries, err := historyRepo.ListByBuyer(ctx, buyer.ID, 10)
	if err != nil {
		t.Fatalf("Failed to list history: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 history entries, got %d", len(entries))
	}
	if entries[0].ID != second.ID {
		t.Errorf("Expected newest entry first, got %s", entries[0].ID)
	}
	change, ok := entries[0].Diff["status"]
	if !ok {
		t.Fatalf("Expected status change in diff, got %v", entries[0].Diff)
	}
	if change.Old != "New" || change.New != "Qualified" {
		t.Errorf("Expected status New->Qualified, got %v -> %v", change.Old, change.New)
	}

	// Limit applies.
	entries, err = historyRepo.ListByBuyer(ctx, buyer.ID, 1)
	if err != nil {
		t.Fatalf("Failed to list limited history: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected 1 history entry with limit 1, got %d", len(entries))
	}

	// Deleting the buyer cascades its history.
	if err := buyerRepo.Delete(ctx, buyer.ID); err != nil {
		t.Fatalf("Failed to delete buyer: %v", err)
	}
	entries, err = historyRepo.ListByBuyer(ctx, buyer.ID, 10)
	if err != nil {
		t.Fatalf("Failed to list history after delete: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected history to cascade on delete, got %d entries", len(entries))
	}
}

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	// First login provisions the account with the default role.
	created, err := repo.GetOrCreate(ctx, &models.User{
		ID:       "subject-1",
		Email:    "dealer@example.com",
		FullName: "Dealer One",
	})
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	if created.Role != models.RoleUser {
		t.Errorf("Expected default role %s, got %s", models.RoleUser, created.Role)
	}

	// Second login returns the stored row unchanged.
	again, err := repo.GetOrCreate(ctx, &models.User{ID: "subject-1", Email: "changed@example.com"})
	if err != nil {
		t.Fatalf("Failed to get existing user: %v", err)
	}
	if again.Email != "dealer@example.com" {
		t.Errorf("Expected stored email to win, got %s", again.Email)
	}

	// Unknown users are not admins, without an error.
	isAdmin, err := repo.IsAdmin(ctx, "nobody")
	if err != nil {
		t.Fatalf("Failed to check unknown user role: %v", err)
	}
	if isAdmin {
		t.Error("Expected unknown user not to be admin")
	}

	// Promote by email.
	if err := repo.SetRoleByEmail(ctx, "dealer@example.com", models.RoleAdmin); err != nil {
		t.Fatalf("Failed to set admin role: %v", err)
	}
	isAdmin, err = repo.IsAdmin(ctx, "subject-1")
	if err != nil {
		t.Fatalf("Failed to check promoted user role: %v", err)
	}
	if !isAdmin {
		t.Error("Expected promoted user to be admin")
	}

	// Promoting an unknown email reports not-found.
	if err := repo.SetRoleByEmail(ctx, "ghost@example.com", models.RoleAdmin); !errors.Is(err, models.ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestInTransactionRollback(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repos := NewRepositories(db)
	owner := seedUser(t, db, "owner-1")

	buyer := testBuyer(owner.ID)
	wantErr := errors.New("history write failed")

	// The buyer insert succeeds inside the transaction, then the body fails:
	// nothing may remain visible.
	err := repos.InTransaction(ctx, func(tx *Repositories) error {
		if err := tx.Buyers.Create(ctx, buyer); err != nil {
			return err
		}
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Expected transaction body error, got %v", err)
	}

	if _, err := repos.Buyers.GetByID(ctx, buyer.ID); !errors.Is(err, models.ErrBuyerNotFound) {
		t.Errorf("Expected rolled-back buyer to be absent, got %v", err)
	}
}

func TestInTransactionCommit(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repos := NewRepositories(db)
	owner := seedUser(t, db, "owner-1")

	buyer := testBuyer(owner.ID)
	entry := &models.HistoryEntry{
		ID:        uuid.NewString(),
		BuyerID:   buyer.ID,
		ChangedBy: owner.ID,
		ChangedAt: time.Now().UTC(),
		Diff:      models.CreationDiff(),
	}

	err := repos.InTransaction(ctx, func(tx *Repositories) error {
		if err := tx.Buyers.Create(ctx, buyer); err != nil {
			return err
		}
		return tx.History.Create(ctx, entry)
	})
	if err != nil {
		t.Fatalf("Failed to commit transaction: %v", err)
	}

	if _, err := repos.Buyers.GetByID(ctx, buyer.ID); err != nil {
		t.Errorf("Expected committed buyer to be readable: %v", err)
	}
	entries, err := repos.History.ListByBuyer(ctx, buyer.ID, 10)
	if err != nil {
		t.Fatalf("Failed to list history: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected 1 committed history entry, got %d", len(entries))
	}
}
