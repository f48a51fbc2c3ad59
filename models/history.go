package models

import "time"

// DiffKeyCreated is the synthetic diff key recorded for a buyer's creation
// event, distinguishing it from field-level change entries.
const DiffKeyCreated = "created"

// FieldChange holds the before/after values of a single changed field.
// Values are nil when the field was absent on that side.
type FieldChange struct {
	Old any `json:"old"`
	New any `json:"new"`
}

// Diff maps field names to their change for a single write. Fields absent
// from the map did not change.
type Diff map[string]FieldChange

// CreationDiff returns the diff payload recorded when a buyer is created.
func CreationDiff() Diff {
	return Diff{DiffKeyCreated: {Old: nil, New: "Buyer created"}}
}

// HistoryEntry is an immutable audit record of one mutation. Entries are
// never updated or individually deleted; they are removed only when the
// parent buyer is deleted (cascade).
type HistoryEntry struct {
	ID        string    `json:"id"`
	BuyerID   string    `json:"buyerId"`
	ChangedBy string    `json:"changedBy"`
	ChangedAt time.Time `json:"changedAt"`
	Diff      Diff      `json:"diff"`
}
