package repositories

import (
	"context"
	"database/sql"
	"fmt"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx, letting the same repository
// code run standalone or inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repositories holds all repository interfaces.
type Repositories struct {
	db *sql.DB

	Buyers  BuyerRepository
	History HistoryRepository
	Users   UserRepository
}

// NewRepositories creates and initializes all repositories.
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		db:      db,
		Buyers:  NewBuyerRepository(db),
		History: NewHistoryRepository(db),
		Users:   NewUserRepository(db),
	}
}

// InTransaction runs fn with a set of repositories bound to one database
// transaction. The record update and its history append go through here so
// they commit or roll back together.
func (r *Repositories) InTransaction(ctx context.Context, fn func(tx *Repositories) error) error {
	if r.db == nil {
		return fmt.Errorf("repositories not backed by a database")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txRepos := &Repositories{
		Buyers:  NewBuyerRepository(tx),
		History: NewHistoryRepository(tx),
		Users:   NewUserRepository(tx),
	}

	if err := fn(txRepos); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
