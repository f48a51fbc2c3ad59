package models

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Allowed values for the buyer's categorical fields. These mirror the intake
// form options and are enforced via the oneof tags below.
var (
	Cities        = []string{"Chandigarh", "Mohali", "Zirakpur", "Panchkula", "Other"}
	PropertyTypes = []string{"Apartment", "Villa", "Plot", "Office", "Retail"}
	BHKOptions    = []string{"1", "2", "3", "4", "Studio"}
	Purposes      = []string{"Buy", "Rent"}
	Timelines     = []string{"0-3m", "3-6m", ">6m", "Exploring"}
	Sources       = []string{"Website", "Referral", "Walk-in", "Call", "Other"}
	Statuses      = []string{"New", "Qualified", "Contacted", "Visited", "Negotiation", "Converted", "Dropped"}
)

// StatusNew is the default status assigned to a freshly created buyer.
const StatusNew = "New"

// BudgetMax is the upper bound accepted for either budget field (1 billion).
const BudgetLimit = 1_000_000_000

var validate = validator.New()

// Buyer is a lead record. UpdatedAt doubles as the optimistic-concurrency
// token: it is refreshed on every successful write and compared
// millisecond-exact against the caller's copy before an update is applied.
type Buyer struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone"`
	City         string    `json:"city"`
	PropertyType string    `json:"propertyType"`
	BHK          string    `json:"bhk,omitempty"`
	Purpose      string    `json:"purpose"`
	BudgetMin    *int64    `json:"budgetMin,omitempty"`
	BudgetMax    *int64    `json:"budgetMax,omitempty"`
	Timeline     string    `json:"timeline"`
	Source       string    `json:"source"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	Tags         []string  `json:"tags"`
	OwnerID      string    `json:"ownerId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CreateBuyerInput carries the validated payload for a new buyer.
type CreateBuyerInput struct {
	FullName     string   `json:"fullName" validate:"required,min=2,max=100"`
	Email        string   `json:"email" validate:"omitempty,email,max=255"`
	Phone        string   `json:"phone" validate:"required,numeric,min=10,max=15"`
	City         string   `json:"city" validate:"required,oneof=Chandigarh Mohali Zirakpur Panchkula Other"`
	PropertyType string   `json:"propertyType" validate:"required,oneof=Apartment Villa Plot Office Retail"`
	BHK          string   `json:"bhk" validate:"omitempty,oneof=1 2 3 4 Studio"`
	Purpose      string   `json:"purpose" validate:"required,oneof=Buy Rent"`
	BudgetMin    *int64   `json:"budgetMin" validate:"omitempty,gte=0,lte=1000000000"`
	BudgetMax    *int64   `json:"budgetMax" validate:"omitempty,gte=0,lte=1000000000"`
	Timeline     string   `json:"timeline" validate:"required,oneof=0-3m 3-6m >6m Exploring"`
	Source       string   `json:"source" validate:"required,oneof=Website Referral Walk-in Call Other"`
	Status       string   `json:"status" validate:"omitempty,oneof=New Qualified Contacted Visited Negotiation Converted Dropped"`
	Notes        string   `json:"notes" validate:"max=1000"`
	Tags         []string `json:"tags"`
}

// Validate checks per-field rules plus the cross-field constraints:
// budgetMax >= budgetMin when both are set, and bhk required for Apartment
// and Villa property types.
func (in *CreateBuyerInput) Validate() error {
	violations := collectViolations(validate.Struct(in))

	if in.BudgetMin != nil && in.BudgetMax != nil && *in.BudgetMax < *in.BudgetMin {
		violations = append(violations, FieldViolation{
			Field:   "budgetMax",
			Message: "maximum budget must be greater than or equal to minimum budget",
		})
	}
	if requiresBHK(in.PropertyType) && in.BHK == "" {
		violations = append(violations, FieldViolation{
			Field:   "bhk",
			Message: "bhk is required for Apartment and Villa property types",
		})
	}

	if len(violations) > 0 {
		return NewValidationError(violations...)
	}
	return nil
}

// UpdateBuyerInput is a partial field set: nil pointers are fields the
// caller does not intend to change. UpdatedAt is the concurrency token
// captured when the caller last read the record.
type UpdateBuyerInput struct {
	FullName     *string   `json:"fullName" validate:"omitempty,min=2,max=100"`
	Email        *string   `json:"email" validate:"omitempty,max=255"`
	Phone        *string   `json:"phone" validate:"omitempty,numeric,min=10,max=15"`
	City         *string   `json:"city" validate:"omitempty,oneof=Chandigarh Mohali Zirakpur Panchkula Other"`
	PropertyType *string   `json:"propertyType" validate:"omitempty,oneof=Apartment Villa Plot Office Retail"`
	BHK          *string   `json:"bhk" validate:"omitempty,oneof=1 2 3 4 Studio"`
	Purpose      *string   `json:"purpose" validate:"omitempty,oneof=Buy Rent"`
	BudgetMin    *int64    `json:"budgetMin" validate:"omitempty,gte=0,lte=1000000000"`
	BudgetMax    *int64    `json:"budgetMax" validate:"omitempty,gte=0,lte=1000000000"`
	Timeline     *string   `json:"timeline" validate:"omitempty,oneof=0-3m 3-6m >6m Exploring"`
	Source       *string   `json:"source" validate:"omitempty,oneof=Website Referral Walk-in Call Other"`
	Status       *string   `json:"status" validate:"omitempty,oneof=New Qualified Contacted Visited Negotiation Converted Dropped"`
	Notes        *string   `json:"notes" validate:"omitempty,max=1000"`
	Tags         *[]string `json:"tags"`
	UpdatedAt    time.Time `json:"updatedAt" validate:"required"`
}

// Validate checks the per-field rules of the supplied fields. Cross-field
// rules that depend on unsupplied fields are checked against the merged
// record (see Buyer.ValidateCrossFields).
func (in *UpdateBuyerInput) Validate() error {
	violations := collectViolations(validate.Struct(in))

	if in.Email != nil && *in.Email != "" {
		if err := validate.Var(*in.Email, "email"); err != nil {
			violations = append(violations, FieldViolation{Field: "email", Message: "must be a valid email address"})
		}
	}

	if len(violations) > 0 {
		return NewValidationError(violations...)
	}
	return nil
}

// ApplyTo merges the supplied fields onto a copy of the stored buyer and
// returns it. Unset fields keep their stored values.
func (in *UpdateBuyerInput) ApplyTo(current Buyer) Buyer {
	merged := current
	if in.FullName != nil {
		merged.FullName = *in.FullName
	}
	if in.Email != nil {
		merged.Email = *in.Email
	}
	if in.Phone != nil {
		merged.Phone = *in.Phone
	}
	if in.City != nil {
		merged.City = *in.City
	}
	if in.PropertyType != nil {
		merged.PropertyType = *in.PropertyType
	}
	if in.BHK != nil {
		merged.BHK = *in.BHK
	}
	if in.Purpose != nil {
		merged.Purpose = *in.Purpose
	}
	if in.BudgetMin != nil {
		merged.BudgetMin = in.BudgetMin
	}
	if in.BudgetMax != nil {
		merged.BudgetMax = in.BudgetMax
	}
	if in.Timeline != nil {
		merged.Timeline = *in.Timeline
	}
	if in.Source != nil {
		merged.Source = *in.Source
	}
	if in.Status != nil {
		merged.Status = *in.Status
	}
	if in.Notes != nil {
		merged.Notes = *in.Notes
	}
	if in.Tags != nil {
		merged.Tags = normalizeTags(*in.Tags)
	}
	return merged
}

// ValidateCrossFields enforces the constraints that span multiple fields on
// a fully merged record. Called after an update is merged but before it is
// persisted.
func (b *Buyer) ValidateCrossFields() error {
	var violations []FieldViolation

	if b.BudgetMin != nil && b.BudgetMax != nil && *b.BudgetMax < *b.BudgetMin {
		violations = append(violations, FieldViolation{
			Field:   "budgetMax",
			Message: "maximum budget must be greater than or equal to minimum budget",
		})
	}
	if requiresBHK(b.PropertyType) && b.BHK == "" {
		violations = append(violations, FieldViolation{
			Field:   "bhk",
			Message: "bhk is required for Apartment and Villa property types",
		})
	}

	if len(violations) > 0 {
		return NewValidationError(violations...)
	}
	return nil
}

func requiresBHK(propertyType string) bool {
	return propertyType == "Apartment" || propertyType == "Villa"
}

// normalizeTags trims whitespace and drops empty entries.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// NormalizeTags is the exported form used by the CSV importer, which
// receives tags as a single comma-separated cell.
func NormalizeTags(tags []string) []string {
	return normalizeTags(tags)
}

// collectViolations converts validator errors into field violations keyed by
// the JSON-ish lowercased field name.
func collectViolations(err error) []FieldViolation {
	if err == nil {
		return nil
	}
	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldViolation{{Field: "payload", Message: err.Error()}}
	}
	violations := make([]FieldViolation, 0, len(vErrs))
	for _, fe := range vErrs {
		violations = append(violations, FieldViolation{
			Field:   lowerFirst(fe.Field()),
			Message: violationMessage(fe),
		})
	}
	return violations
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "is too short (minimum " + fe.Param() + ")"
	case "max":
		return "is too long (maximum " + fe.Param() + ")"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "numeric":
		return "must contain digits only"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	default:
		return "is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	// Field names follow Go conventions (FullName -> fullName); all-caps
	// initialisms map to their lowercase form (BHK -> bhk).
	switch s {
	case "BHK":
		return "bhk"
	}
	return strings.ToLower(s[:1]) + s[1:]
}
