package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/estatehub/buyer-intake/models"
	"github.com/estatehub/buyer-intake/repositories"
)

// TxRunner executes a function with repositories bound to a single store
// transaction. *repositories.Repositories satisfies it.
type TxRunner interface {
	InTransaction(ctx context.Context, fn func(tx *repositories.Repositories) error) error
}

// BuyerService implements the buyer lifecycle, including the
// conflict-checked update: a stale concurrency token is rejected with
// Conflict and the stored record is left untouched.
type BuyerService interface {
	CreateBuyer(ctx context.Context, actorID string, in *models.CreateBuyerInput) (*models.Buyer, error)
	GetBuyer(ctx context.Context, id string) (*models.Buyer, error)
	ListBuyers(ctx context.Context, filters models.BuyerFilters) (*models.BuyerPage, error)
	ExportBuyers(ctx context.Context, filters models.BuyerFilters) ([]models.Buyer, error)
	UpdateBuyer(ctx context.Context, actorID, id string, in *models.UpdateBuyerInput) (*models.Buyer, error)
	DeleteBuyer(ctx context.Context, actorID, id string) error
	// CanEdit is the owner-or-admin access decision: true iff the acting
	// user owns the record or holds the admin role.
	CanEdit(ctx context.Context, actingUserID, ownerID string) (bool, error)
}

type buyerService struct {
	buyerRepo repositories.BuyerRepository
	userRepo  repositories.UserRepository
	history   HistoryService
	tx        TxRunner
	logger    *zap.Logger
	now       func() time.Time
}

// NewBuyerService creates a new buyer service.
func NewBuyerService(
	buyerRepo repositories.BuyerRepository,
	userRepo repositories.UserRepository,
	history HistoryService,
	tx TxRunner,
	logger *zap.Logger,
) BuyerService {
	return &buyerService{
		buyerRepo: buyerRepo,
		userRepo:  userRepo,
		history:   history,
		tx:        tx,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateBuyer validates the payload, inserts the buyer, and records the
// creation history entry in the same transaction.
func (s *buyerService) CreateBuyer(ctx context.Context, actorID string, in *models.CreateBuyerInput) (*models.Buyer, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC().Truncate(time.Millisecond)
	status := in.Status
	if status == "" {
		status = models.StatusNew
	}

	buyer := &models.Buyer{
		ID:           uuid.NewString(),
		FullName:     in.FullName,
		Email:        in.Email,
		Phone:        in.Phone,
		City:         in.City,
		PropertyType: in.PropertyType,
		BHK:          in.BHK,
		Purpose:      in.Purpose,
		BudgetMin:    in.BudgetMin,
		BudgetMax:    in.BudgetMax,
		Timeline:     in.Timeline,
		Source:       in.Source,
		Status:       status,
		Notes:        in.Notes,
		Tags:         models.NormalizeTags(in.Tags),
		OwnerID:      actorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := s.tx.InTransaction(ctx, func(tx *repositories.Repositories) error {
		if err := tx.Buyers.Create(ctx, buyer); err != nil {
			return err
		}
		return s.history.RecordCreation(ctx, tx.History, actorID, buyer)
	})
	if err != nil {
		return nil, asPersistence(err)
	}

	s.logger.Info("buyer created",
		zap.String("buyer_id", buyer.ID),
		zap.String("owner_id", actorID),
	)
	return buyer, nil
}

// GetBuyer retrieves a buyer by ID.
func (s *buyerService) GetBuyer(ctx context.Context, id string) (*models.Buyer, error) {
	buyer, err := s.buyerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, asPersistence(err)
	}
	return buyer, nil
}

// ListBuyers retrieves one page of buyers matching the filters.
func (s *buyerService) ListBuyers(ctx context.Context, filters models.BuyerFilters) (*models.BuyerPage, error) {
	filters.Normalize()

	buyers, total, err := s.buyerRepo.List(ctx, filters)
	if err != nil {
		return nil, asPersistence(err)
	}
	return &models.BuyerPage{
		Buyers: buyers,
		Total:  total,
		Page:   filters.Page,
		Limit:  filters.Limit,
	}, nil
}

// ExportBuyers retrieves the full filtered list, unpaginated.
func (s *buyerService) ExportBuyers(ctx context.Context, filters models.BuyerFilters) ([]models.Buyer, error) {
	filters.Normalize()

	buyers, err := s.buyerRepo.ListAll(ctx, filters)
	if err != nil {
		return nil, asPersistence(err)
	}
	return buyers, nil
}

// UpdateBuyer applies a partial update guarded by the optimistic-concurrency
// token. Sequence: validate, load, authorize, compare tokens
// millisecond-exact, merge, persist conditionally, record the field diff —
// the write and the history append share one transaction.
func (s *buyerService) UpdateBuyer(ctx context.Context, actorID, id string, in *models.UpdateBuyerInput) (*models.Buyer, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	current, err := s.buyerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, asPersistence(err)
	}

	allowed, err := s.CanEdit(ctx, actorID, current.OwnerID)
	if err != nil {
		return nil, asPersistence(err)
	}
	if !allowed {
		return nil, models.ErrForbidden
	}

	if current.UpdatedAt.UnixMilli() != in.UpdatedAt.UnixMilli() {
		return nil, models.ErrConflict
	}

	merged := in.ApplyTo(*current)
	if err := merged.ValidateCrossFields(); err != nil {
		return nil, err
	}

	// The token must strictly advance even when two writes land within the
	// same millisecond.
	merged.UpdatedAt = s.now().UTC().Truncate(time.Millisecond)
	if !merged.UpdatedAt.After(current.UpdatedAt) {
		merged.UpdatedAt = current.UpdatedAt.Add(time.Millisecond)
	}

	var diff models.Diff
	err = s.tx.InTransaction(ctx, func(tx *repositories.Repositories) error {
		// Conditional write: WHERE id AND updated_at = expected closes the
		// window between the read above and this statement.
		if err := tx.Buyers.Update(ctx, &merged, current.UpdatedAt); err != nil {
			return err
		}
		diff, err = s.history.RecordChange(ctx, tx.History, actorID, current, &merged)
		return err
	})
	if err != nil {
		return nil, asPersistence(err)
	}

	s.logger.Info("buyer updated",
		zap.String("buyer_id", id),
		zap.String("actor_id", actorID),
		zap.Int("changed_fields", len(diff)),
	)
	return &merged, nil
}

// DeleteBuyer removes a buyer after the owner-or-admin check; its history
// entries cascade at the store.
func (s *buyerService) DeleteBuyer(ctx context.Context, actorID, id string) error {
	current, err := s.buyerRepo.GetByID(ctx, id)
	if err != nil {
		return asPersistence(err)
	}

	allowed, err := s.CanEdit(ctx, actorID, current.OwnerID)
	if err != nil {
		return asPersistence(err)
	}
	if !allowed {
		return models.ErrForbidden
	}

	if err := s.buyerRepo.Delete(ctx, id); err != nil {
		return asPersistence(err)
	}

	s.logger.Info("buyer deleted",
		zap.String("buyer_id", id),
		zap.String("actor_id", actorID),
	)
	return nil
}

func (s *buyerService) CanEdit(ctx context.Context, actingUserID, ownerID string) (bool, error) {
	if actingUserID == ownerID {
		return true, nil
	}
	return s.userRepo.IsAdmin(ctx, actingUserID)
}

// asPersistence classifies unexpected store failures while passing domain
// and validation errors through unchanged.
func asPersistence(err error) error {
	var dErr *models.DomainError
	var vErr *models.ValidationError
	if errors.As(err, &dErr) || errors.As(err, &vErr) {
		return err
	}
	return models.WrapDomainError(models.ErrCodePersistence, "storage operation failed", err)
}
