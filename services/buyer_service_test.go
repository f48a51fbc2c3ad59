package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/estatehub/buyer-intake/models"
	"github.com/estatehub/buyer-intake/repositories"
	"github.com/estatehub/buyer-intake/repositories/mocks"
)

// stubTxRunner runs the transaction body against the given repositories
// without a real database.
type stubTxRunner struct {
	repos *repositories.Repositories
	err   error
}

func (s *stubTxRunner) InTransaction(ctx context.Context, fn func(tx *repositories.Repositories) error) error {
	if s.err != nil {
		return s.err
	}
	return fn(s.repos)
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

// BuyerServiceTestSuite is a test suite for the buyer service
type BuyerServiceTestSuite struct {
	suite.Suite
	service       BuyerService
	mockBuyerRepo *mocks.MockBuyerRepository
	mockUserRepo  *mocks.MockUserRepository
	mockHistory   *mocks.MockHistoryRepository

	baseTime time.Time
	writeNow time.Time
}

// SetupTest sets up the test suite before each test
func (suite *BuyerServiceTestSuite) SetupTest() {
	suite.mockBuyerRepo = mocks.NewMockBuyerRepository(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepository(suite.T())
	suite.mockHistory = mocks.NewMockHistoryRepository(suite.T())

	suite.baseTime = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	suite.writeNow = suite.baseTime.Add(5 * time.Minute)

	txRepos := &repositories.Repositories{
		Buyers:  suite.mockBuyerRepo,
		History: suite.mockHistory,
		Users:   suite.mockUserRepo,
	}

	svc := NewBuyerService(
		suite.mockBuyerRepo,
		suite.mockUserRepo,
		NewHistoryService(suite.mockHistory),
		&stubTxRunner{repos: txRepos},
		zap.NewNop(),
	).(*buyerService)
	svc.now = func() time.Time { return suite.writeNow }
	suite.service = svc
}

// storedBuyer returns a valid buyer as the repository would hand it back.
func (suite *BuyerServiceTestSuite) storedBuyer() *models.Buyer {
	return &models.Buyer{
		ID:           "buyer-1",
		FullName:     "Asha Verma",
		Phone:        "9876543210",
		City:         "Chandigarh",
		PropertyType: "Plot",
		Purpose:      "Buy",
		Timeline:     "0-3m",
		Source:       "Website",
		Status:       "New",
		OwnerID:      "owner-1",
		CreatedAt:    suite.baseTime.Add(-24 * time.Hour),
		UpdatedAt:    suite.baseTime,
	}
}

// TestUpdateBuyer_Success tests that a valid update with a fresh token is
// persisted, advances the token, and records the field diff.
func (suite *BuyerServiceTestSuite) TestUpdateBuyer_Success() {
	current := suite.storedBuyer()
	in := &models.UpdateBuyerInput{
		Status:    strPtr("Qualified"),
		UpdatedAt: current.UpdatedAt,
	}

	suite.mockBuyerRepo.EXPECT().GetByID(mock.Anything, "buyer-1").Return(current, nil)
	suite.mockBuyerRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(b *models.Buyer) bool {
		return b.ID == "buyer-1" && b.Status == "Qualified" && b.UpdatedAt.Equal(suite.writeNow)
	}), current.UpdatedAt).Return(nil)
	suite.mockHistory.EXPECT().Create(mock.Anything, mock.MatchedBy(func(entry *models.HistoryEntry) bool {
		change, ok := entry.Diff["status"]
		return ok && len(entry.Diff) == 1 &&
			entry.BuyerID == "buyer-1" &&
			entry.ChangedBy == "owner-1" &&
			change.Old == "New" && change.New == "Qualified"
	})).Return(nil)

	updated, err := suite.service.UpdateBuyer(context.Background(), "owner-1", "buyer-1", in)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), updated)
	assert.Equal(suite.T(), "Qualified", updated.Status)
	assert.True(suite.T(), updated.UpdatedAt.After(current.UpdatedAt))
}

// TestUpdateBuyer_StaleToken tests that a stale concurrency token is rejected
// without touching the store.
func (suite *BuyerServiceTestSuite) TestUpdateBuyer_StaleToken() {
	current := suite.storedBuyer()
	in := &models.UpdateBuyerInput{
		Status:    strPtr("Qualified"),
		UpdatedAt: current.UpdatedAt.Add(-2 * time.Second),
	}

	suite.mockBuyerRepo.EXPECT().GetByID(mock.Anything, "buyer-1").Return(current, nil)

	updated, err := suite.service.UpdateBuyer(context.Background(), "owner-1", "buyer-1", in)

	assert.Nil(suite.T(), updated)
	assert.ErrorIs(suite.T(), err, models.ErrConflict)
	suite.mockBuyerRepo.AssertNotCalled(suite.T(), "Update")
	suite.mockHistory.AssertNotCalled(suite.T(), "Create")
}

// TestUpdateBuyer_TokenOffByOneMilli tests that the millisecond comparison is
// exact: a token one millisecond behind is a conflict.
func (suite *BuyerServiceTestSuite) TestUpdateBuyer_TokenOffByOneMilli() {
	current := suite.storedBuyer()
	in := &models.UpdateBuyerInput{
		Status:    strPtr("Qualified"),
		UpdatedAt: current.UpdatedAt.Add(-time.Millisecond),
	}

	suite.mockBuyerRepo.EXPECT().GetByID(mock.Anything, "buyer-1").Return(current, nil)

	updated, err := suite.service.UpdateBuyer(context.Background(), "owner-1", "buyer-1", in)

	assert.Nil(suite.T(), updated)
	assert.ErrorIs(suite.T(), err, models.ErrConflict)
}

// TestUpdateBuyer_SameMillisecondWrite tests that the token still strictly
// advances when the clock has not moved past the stored token.
func (suite *BuyerServiceTestSuite) TestUpdateBuyer_SameMillisecondWrite() {
	current := suite.storedBuyer()
	suite.writeNow = current.UpdatedAt // clock frozen at the stored token
	in := &models.UpdateBuyerInput{
		Status:    strPtr("Contacted"),
		UpdatedAt: current.UpdatedAt,
	}

	suite.mockBuyerRepo.EXPECT().GetByID(mock.Anything, "buyer-1").Return(current, nil)
	suite.mockBuyerRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(b *models.Buyer) bool {
		return b.UpdatedAt.Equal(current.UpdatedAt.Add(time.Millisecond))
	}), current.UpdatedAt).Return(nil)
	suite.mockHistory.EXPECT().Create(mock.Anything, mock.AnythingOfType("*models.HistoryEntry")).Return(nil)

	updated, err := suite.service.UpdateBuyer(context.Background(), "owner-1", "buyer-1", in)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), current.UpdatedAt.Add(time.Millisecond), updated.UpdatedAt)
}

// TestUpdateBuyer_NoObservableChange tests that re-submitting the stored
// values advances the token but records no history entry.
func (suite *BuyerServiceTestSuite) TestUpdateBuyer_NoObservableChange() {
	current := suite.storedBuyer()
	in := &models.UpdateBuyerInput{
		Status:    strPtr(current.Status),
		UpdatedAt: current.UpdatedAt,
	}

	suite.mockBuyerRepo.EXPECT().GetByID(mock.Anything, "buyer-1").Return(current, nil)
	suite.mockBuyerRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(b *models.Buyer) bool {
		return b.UpdatedAt.Equal(suite.writeNow)
	}), current.UpdatedAt).Return(nil)

	updated, err := suite.service.UpdateBuyer(context.Background(), "owner-1", "buyer-1", in)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), updated.UpdatedAt.After(current.UpdatedAt))
	suite.mockHistory.AssertNotCalled(suite.T(), "Create")
}

// TestUpdateBuyer_Forbidden tests that a non-owner without the admin role is
// rejected.
func (suite *BuyerServiceTestSuite) TestUpdateBuyer_Forbidden() {
	current := suite.storedBuyer()
	in := &models.UpdateBuyerInput{
		Status:    strPtr("Qualified"),
		UpdatedAt: current.UpdatedAt,
	}

	suite.mockBuyerRepo.EXPECT().GetByID(mock.Anything, "buyer-1").Return(current, nil)
	suite.mockUserRepo.EXPECT().IsAdmin(mock.Anything, "intruder").Return(false, nil)

	updated, err := suite.service.UpdateBuyer(context.Background(), "intruder", "buyer-1", in)

	assert.Nil(suite.T(), updated)
	assert.ErrorIs(suite.T(), err, models.ErrForbidden)
	suite.mockBuyerRepo.AssertNotCalled(suite.T(), "Update")
}

// TestUpdateBuyer_AdminCanEditAnyRecord tests that the admin role bypasses
// the ownership check.
func (suite *BuyerServiceTestSuite) TestUpdateBuyer_AdminCanEditAnyRecord() {
	current := suite.storedBuyer()
	in := &models.UpdateBuyerInput{
		Notes:     strPtr("reviewed by admin"),
		UpdatedAt: current.UpdatedAt,
	}

	suite.mockBuyerRepo.EXPECT().GetByID(mock.Anything, "buyer-1").Return(current, nil)
	suite.mockUserRepo.EXPECT().IsAdmin(mock.Anything, "admin-1").Return(true, nil)
	suite.mockBuyerRepo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*models.Buyer"), current.UpdatedAt).Return(nil)
	suite.mockHistory.EXPECT().Create(mock.Anything, mock.MatchedBy(func(entry *models.HistoryEntry) bool {
		return entry.ChangedBy == "admin-1"
	})).Return(nil)

	updated, err := suite.service.UpdateBuyer(context.Background(), "admin-1", "buyer-1", in)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "reviewed by admin", updated.Notes)
}

// TestUpdateBuyer_ValidationFailure tests that an invalid payload is rejected
// before the store is consulted.
func (suite *BuyerServiceTestSuite) TestUpdateBuyer_ValidationFailure() {
	in := &models.UpdateBuyerInput{
		City:      strPtr("Atlantis"),
		UpdatedAt: suite.baseTime,
	}

	updated, err := suite.service.UpdateBuyer(context.Background(), "owner-1", "buyer-1", in)

	assert.Nil(suite.T(), updated)
	vErr, ok := models.AsValidationError(err)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), "city", vErr.Violations[0].Field)
	suite.mockBuyerRepo.AssertNotCalled(suite.T(), "GetByID")
}

// TestUpdateBuyer_CrossFieldValidationOnMergedRecord tests that constraints
// spanning supplied and stored fields are checked against the merged record.
func (suite *BuyerServiceTestSuite) TestUpdateBuyer_CrossFieldValidationOnMergedRecord() {
	current := suite.storedBuyer()
	current.BudgetMin = int64Ptr(5_000_000)
	in := &models.UpdateBuyerInput{
		BudgetMax: int64Ptr(1_000_000), // below the stored minimum
		UpdatedAt: current.UpdatedAt,
	}

	suite.mockBuyerRepo.EXPECT().GetByID(mock.Anything, "buyer-1").Return(current, nil)

	updated, err := suite.service.UpdateBuyer(context.Background(), "owner-1", "buyer-1", in)

	assert.Nil(suite.T(), updated)
	vErr, ok := models.AsValidationError(err)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), "budgetMax", vErr.Violations[0].Field)
	suite.mockBuyerRepo.AssertNotCalled(suite.T(), "Update")
}

// TestUpdateBuyer_NotFound tests the missing-record path.
func (suite *BuyerServiceTestSuite) TestUpdateBuyer_NotFound() {
	in := &models.UpdateBuyerInput{
		Status:    strPtr("Qualified"),
		UpdatedAt: suite.baseTime,
	}

	suite.mockBuyerRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, models.ErrBuyerNotFound)

	updated, err := suite.service.UpdateBuyer(context.Background(), "owner-1", "missing", in)

	assert.Nil(suite.T(), updated)
	assert.ErrorIs(suite.T(), err, models.ErrBuyerNotFound)
}

// TestUpdateBuyer_ConflictFromConditionalWrite tests that a conflict detected
// by the store's conditional write surfaces unchanged.
func (suite *BuyerServiceTestSuite) TestUpdateBuyer_ConflictFromConditionalWrite() {
	current := suite.storedBuyer()
	in := &models.UpdateBuyerInput{
		Status:    strPtr("Qualified"),
		UpdatedAt: current.UpdatedAt,
	}

	suite.mockBuyerRepo.EXPECT().GetByID(mock.Anything, "buyer-1").Return(current, nil)
	suite.mockBuyerRepo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*models.Buyer"), current.UpdatedAt).Return(models.ErrConflict)

	updated, err := suite.service.UpdateBuyer(context.Background(), "owner-1", "buyer-1", in)

	assert.Nil(suite.T(), updated)
	assert.ErrorIs(suite.T(), err, models.ErrConflict)
	suite.mockHistory.AssertNotCalled(suite.T(), "Create")
}

// TestCreateBuyer_Success tests creation with defaulted status and the
// synthetic creation history entry.
func (suite *BuyerServiceTestSuite) TestCreateBuyer_Success() {
	in := &models.CreateBuyerInput{
		FullName:     "Rohan Gupta",
		Phone:        "9812345678",
		City:         "Mohali",
		PropertyType: "Apartment",
		BHK:          "2",
		Purpose:      "Buy",
		Timeline:     "3-6m",
		Source:       "Referral",
		Tags:         []string{" hot ", "", "site-visit"},
	}

	suite.mockBuyerRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(b *models.Buyer) bool {
		return b.ID != "" &&
			b.Status == models.StatusNew &&
			b.OwnerID == "owner-1" &&
			len(b.Tags) == 2 && b.Tags[0] == "hot" && b.Tags[1] == "site-visit" &&
			b.CreatedAt.Equal(suite.writeNow) && b.UpdatedAt.Equal(suite.writeNow)
	})).Return(nil)
	suite.mockHistory.EXPECT().Create(mock.Anything, mock.MatchedBy(func(entry *models.HistoryEntry) bool {
		change, ok := entry.Diff[models.DiffKeyCreated]
		return ok && change.Old == nil && entry.ChangedBy == "owner-1"
	})).Return(nil)

	buyer, err := suite.service.CreateBuyer(context.Background(), "owner-1", in)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), buyer)
	assert.Equal(suite.T(), models.StatusNew, buyer.Status)
}

// TestCreateBuyer_ValidationFailure tests that an invalid payload never
// reaches the store.
func (suite *BuyerServiceTestSuite) TestCreateBuyer_ValidationFailure() {
	in := &models.CreateBuyerInput{
		FullName:     "X", // below the 2-character minimum
		Phone:        "9812345678",
		City:         "Mohali",
		PropertyType: "Plot",
		Purpose:      "Buy",
		Timeline:     "3-6m",
		Source:       "Referral",
	}

	buyer, err := suite.service.CreateBuyer(context.Background(), "owner-1", in)

	assert.Nil(suite.T(), buyer)
	vErr, ok := models.AsValidationError(err)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), "fullName", vErr.Violations[0].Field)
	suite.mockBuyerRepo.AssertNotCalled(suite.T(), "Create")
}

// TestCreateBuyer_BHKRequiredForApartment tests the conditional bhk rule.
func (suite *BuyerServiceTestSuite) TestCreateBuyer_BHKRequiredForApartment() {
	in := &models.CreateBuyerInput{
		FullName:     "Rohan Gupta",
		Phone:        "9812345678",
		City:         "Mohali",
		PropertyType: "Apartment",
		Purpose:      "Buy",
		Timeline:     "3-6m",
		Source:       "Referral",
	}

	buyer, err := suite.service.CreateBuyer(context.Background(), "owner-1", in)

	assert.Nil(suite.T(), buyer)
	vErr, ok := models.AsValidationError(err)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), "bhk", vErr.Violations[0].Field)
}

// TestDeleteBuyer_Forbidden tests that deletion respects the owner-or-admin
// rule.
func (suite *BuyerServiceTestSuite) TestDeleteBuyer_Forbidden() {
	current := suite.storedBuyer()

	suite.mockBuyerRepo.EXPECT().GetByID(mock.Anything, "buyer-1").Return(current, nil)
	suite.mockUserRepo.EXPECT().IsAdmin(mock.Anything, "intruder").Return(false, nil)

	err := suite.service.DeleteBuyer(context.Background(), "intruder", "buyer-1")

	assert.ErrorIs(suite.T(), err, models.ErrForbidden)
	suite.mockBuyerRepo.AssertNotCalled(suite.T(), "Delete")
}

// TestDeleteBuyer_OwnerSuccess tests the owner deletion path.
func (suite *BuyerServiceTestSuite) TestDeleteBuyer_OwnerSuccess() {
	current := suite.storedBuyer()

	suite.mockBuyerRepo.EXPECT().GetByID(mock.Anything, "buyer-1").Return(current, nil)
	suite.mockBuyerRepo.EXPECT().Delete(mock.Anything, "buyer-1").Return(nil)

	err := suite.service.DeleteBuyer(context.Background(), "owner-1", "buyer-1")

	assert.NoError(suite.T(), err)
}

// TestCanEdit tests the access decision directly.
func (suite *BuyerServiceTestSuite) TestCanEdit() {
	// Owner: no role lookup needed.
	allowed, err := suite.service.CanEdit(context.Background(), "owner-1", "owner-1")
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), allowed)

	// Non-owner admin.
	suite.mockUserRepo.EXPECT().IsAdmin(mock.Anything, "admin-1").Return(true, nil)
	allowed, err = suite.service.CanEdit(context.Background(), "admin-1", "owner-1")
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), allowed)

	// Non-owner without the role.
	suite.mockUserRepo.EXPECT().IsAdmin(mock.Anything, "user-2").Return(false, nil)
	allowed, err = suite.service.CanEdit(context.Background(), "user-2", "owner-1")
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), allowed)
}

// TestListBuyers_NormalizesPaging tests that out-of-range paging values fall
// back to the defaults.
func (suite *BuyerServiceTestSuite) TestListBuyers_NormalizesPaging() {
	suite.mockBuyerRepo.EXPECT().List(mock.Anything, mock.MatchedBy(func(f models.BuyerFilters) bool {
		return f.Page == 1 && f.Limit == models.MaxPageSize
	})).Return([]models.Buyer{}, 0, nil)

	page, err := suite.service.ListBuyers(context.Background(), models.BuyerFilters{Page: -3, Limit: 9999})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, page.Page)
	assert.Equal(suite.T(), models.MaxPageSize, page.Limit)
}

// TestGetBuyer_WrapsStoreFailure tests that an unexpected store failure is
// classified as a persistence error.
func (suite *BuyerServiceTestSuite) TestGetBuyer_WrapsStoreFailure() {
	suite.mockBuyerRepo.EXPECT().GetByID(mock.Anything, "buyer-1").Return(nil, errors.New("disk full"))

	buyer, err := suite.service.GetBuyer(context.Background(), "buyer-1")

	assert.Nil(suite.T(), buyer)
	assert.True(suite.T(), models.IsDomainError(err, models.ErrCodePersistence))
}

// TestRunBuyerServiceTestSuite runs the test suite
func TestRunBuyerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BuyerServiceTestSuite))
}
