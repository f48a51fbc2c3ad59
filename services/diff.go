package services

import (
	"sort"

	"github.com/estatehub/buyer-intake/models"
)

// diffField describes one editable buyer field for change tracking: its
// diff-payload name, how to extract its value from a snapshot, and how to
// compare two extracted values. System fields (id, owner, timestamps) are
// deliberately not listed.
type diffField struct {
	name  string
	value func(b *models.Buyer) any
	equal func(old, new any) bool
}

// scalarEqual compares extracted values directly; extractors only produce
// comparable values (string, int64, nil).
func scalarEqual(old, new any) bool {
	return old == new
}

// tagsEqual treats tag lists as order-insensitive string sets.
func tagsEqual(old, new any) bool {
	a, _ := old.([]string)
	b, _ := new.([]string)
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

// optionalString maps empty strings to nil so cleared fields diff as null.
func optionalString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func optionalInt64(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

func tagsValue(tags []string) any {
	if len(tags) == 0 {
		return nil
	}
	return tags
}

// buyerDiffFields is the fixed whitelist of diffable fields.
var buyerDiffFields = []diffField{
	{name: "fullName", value: func(b *models.Buyer) any { return b.FullName }, equal: scalarEqual},
	{name: "email", value: func(b *models.Buyer) any { return optionalString(b.Email) }, equal: scalarEqual},
	{name: "phone", value: func(b *models.Buyer) any { return b.Phone }, equal: scalarEqual},
	{name: "city", value: func(b *models.Buyer) any { return b.City }, equal: scalarEqual},
	{name: "propertyType", value: func(b *models.Buyer) any { return b.PropertyType }, equal: scalarEqual},
	{name: "bhk", value: func(b *models.Buyer) any { return optionalString(b.BHK) }, equal: scalarEqual},
	{name: "purpose", value: func(b *models.Buyer) any { return b.Purpose }, equal: scalarEqual},
	{name: "budgetMin", value: func(b *models.Buyer) any { return optionalInt64(b.BudgetMin) }, equal: scalarEqual},
	{name: "budgetMax", value: func(b *models.Buyer) any { return optionalInt64(b.BudgetMax) }, equal: scalarEqual},
	{name: "timeline", value: func(b *models.Buyer) any { return b.Timeline }, equal: scalarEqual},
	{name: "source", value: func(b *models.Buyer) any { return b.Source }, equal: scalarEqual},
	{name: "status", value: func(b *models.Buyer) any { return b.Status }, equal: scalarEqual},
	{name: "notes", value: func(b *models.Buyer) any { return optionalString(b.Notes) }, equal: scalarEqual},
	{name: "tags", value: func(b *models.Buyer) any { return tagsValue(b.Tags) }, equal: tagsEqual},
}

// ComputeDiff compares two buyer snapshots field by field and returns the
// changed fields with their before/after values. An empty map means the
// write changed nothing observable.
func ComputeDiff(before, after *models.Buyer) models.Diff {
	diff := models.Diff{}
	for _, f := range buyerDiffFields {
		oldValue := f.value(before)
		newValue := f.value(after)
		if !f.equal(oldValue, newValue) {
			diff[f.name] = models.FieldChange{Old: oldValue, New: newValue}
		}
	}
	return diff
}
