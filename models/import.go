package models

// MaxImportRows caps a single CSV import.
const MaxImportRows = 200

// ImportRowError reports why one CSV data row was rejected. Row numbers are
// 1-based over data rows (the header row is row 0).
type ImportRowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// ImportResult summarizes a CSV import: rows inserted, rows rejected, and
// the per-row reasons.
type ImportResult struct {
	SuccessCount int              `json:"successCount"`
	ErrorCount   int              `json:"errorCount"`
	Errors       []ImportRowError `json:"errors"`
}
