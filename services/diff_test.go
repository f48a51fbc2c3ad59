package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/estatehub/buyer-intake/models"
)

func baseBuyer() models.Buyer {
	min := int64(2_000_000)
	return models.Buyer{
		ID:           "buyer-1",
		FullName:     "Asha Verma",
		Email:        "asha@example.com",
		Phone:        "9876543210",
		City:         "Chandigarh",
		PropertyType: "Apartment",
		BHK:          "2",
		Purpose:      "Buy",
		BudgetMin:    &min,
		Timeline:     "0-3m",
		Source:       "Website",
		Status:       "New",
		Tags:         []string{"hot", "site-visit"},
	}
}

func TestComputeDiff_NoChanges(t *testing.T) {
	before := baseBuyer()
	after := baseBuyer()

	diff := ComputeDiff(&before, &after)

	assert.Empty(t, diff)
}

func TestComputeDiff_SingleFieldChange(t *testing.T) {
	before := baseBuyer()
	after := baseBuyer()
	after.Status = "Qualified"

	diff := ComputeDiff(&before, &after)

	assert.Len(t, diff, 1)
	assert.Equal(t, models.FieldChange{Old: "New", New: "Qualified"}, diff["status"])
}

func TestComputeDiff_MultipleFieldChanges(t *testing.T) {
	before := baseBuyer()
	after := baseBuyer()
	after.Status = "Contacted"
	after.Notes = "called twice"
	newMax := int64(5_000_000)
	after.BudgetMax = &newMax

	diff := ComputeDiff(&before, &after)

	assert.Len(t, diff, 3)
	assert.Equal(t, models.FieldChange{Old: "New", New: "Contacted"}, diff["status"])
	assert.Equal(t, models.FieldChange{Old: nil, New: "called twice"}, diff["notes"])
	assert.Equal(t, models.FieldChange{Old: nil, New: int64(5_000_000)}, diff["budgetMax"])
}

func TestComputeDiff_ClearedOptionalFieldsDiffAsNull(t *testing.T) {
	before := baseBuyer()
	after := baseBuyer()
	after.Email = ""
	after.BudgetMin = nil

	diff := ComputeDiff(&before, &after)

	assert.Len(t, diff, 2)
	assert.Equal(t, models.FieldChange{Old: "asha@example.com", New: nil}, diff["email"])
	assert.Equal(t, models.FieldChange{Old: int64(2_000_000), New: nil}, diff["budgetMin"])
}

func TestComputeDiff_TagsOrderInsensitive(t *testing.T) {
	before := baseBuyer()
	after := baseBuyer()
	after.Tags = []string{"site-visit", "hot"}

	diff := ComputeDiff(&before, &after)

	assert.Empty(t, diff, "reordered tags are not a change")
}

func TestComputeDiff_TagsContentChange(t *testing.T) {
	before := baseBuyer()
	after := baseBuyer()
	after.Tags = []string{"hot", "follow-up"}

	diff := ComputeDiff(&before, &after)

	assert.Len(t, diff, 1)
	change := diff["tags"]
	assert.Equal(t, []string{"hot", "site-visit"}, change.Old)
	assert.Equal(t, []string{"hot", "follow-up"}, change.New)
}

func TestComputeDiff_EmptyTagsDiffAsNull(t *testing.T) {
	before := baseBuyer()
	after := baseBuyer()
	after.Tags = nil

	diff := ComputeDiff(&before, &after)

	assert.Len(t, diff, 1)
	assert.Nil(t, diff["tags"].New)
}

func TestComputeDiff_SystemFieldsIgnored(t *testing.T) {
	before := baseBuyer()
	after := baseBuyer()
	after.ID = "other-id"
	after.OwnerID = "other-owner"
	after.UpdatedAt = after.UpdatedAt.Add(1000)

	diff := ComputeDiff(&before, &after)

	assert.Empty(t, diff, "id, owner, and timestamps are never part of the diff")
}
