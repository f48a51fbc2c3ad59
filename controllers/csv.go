package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/estatehub/buyer-intake/models"
	"github.com/estatehub/buyer-intake/userctx"
)

// maxImportFileSize caps an uploaded CSV at 5 MB.
const maxImportFileSize = 5 << 20

// csvHeaders is the exported column set, also accepted on import.
var csvHeaders = []string{
	"Full Name", "Email", "Phone", "City", "Property Type", "BHK",
	"Purpose", "Budget Min", "Budget Max", "Timeline", "Source",
	"Notes", "Tags", "Status", "Created At", "Updated At",
}

// columnToField maps CSV header names onto payload field names. Headers
// already in field-name form pass through unchanged.
var columnToField = map[string]string{
	"Full Name":     "fullName",
	"Email":         "email",
	"Phone":         "phone",
	"City":          "city",
	"Property Type": "propertyType",
	"BHK":           "bhk",
	"Purpose":       "purpose",
	"Budget Min":    "budgetMin",
	"Budget Max":    "budgetMax",
	"Timeline":      "timeline",
	"Source":        "source",
	"Notes":         "notes",
	"Tags":          "tags",
	"Status":        "status",
	"Created At":    "createdAt",
	"Updated At":    "updatedAt",
}

// Export handles GET /api/buyers/export — the filtered list as a CSV
// download.
func (c *BuyerController) Export(w http.ResponseWriter, r *http.Request) {
	filters := filtersFromQuery(r)
	if filters.SortBy == "" {
		filters.SortBy = "updatedAt"
	}

	buyers, err := c.services.Buyers.ExportBuyers(r.Context(), filters)
	if err != nil {
		c.logger.Error("failed to export buyers", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	filename := "buyers-" + time.Now().Format("2006-01-02") + ".csv"
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	cw := csv.NewWriter(w)
	cw.Write(csvHeaders)
	for _, b := range buyers {
		cw.Write(buyerToCSVRow(b))
	}
	cw.Flush()
}

// Import handles POST /api/buyers/import — a multipart CSV upload, at most
// 200 data rows. Every row is validated independently; valid rows are
// inserted (each with its creation history entry) and failures come back
// with their row number.
func (c *BuyerController) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportFileSize)
	if err := r.ParseMultipartForm(maxImportFileSize); err != nil {
		respondError(w, http.StatusBadRequest, "File size exceeds limit")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid CSV file: "+err.Error())
		return
	}
	if len(records) < 2 {
		respondError(w, http.StatusBadRequest, "CSV file has no data rows")
		return
	}

	header := records[0]
	rows := records[1:]
	if len(rows) > models.MaxImportRows {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("Maximum %d rows allowed", models.MaxImportRows))
		return
	}

	fields := make([]string, len(header))
	for i, col := range header {
		col = strings.TrimSpace(col)
		if mapped, ok := columnToField[col]; ok {
			fields[i] = mapped
		} else {
			fields[i] = col
		}
	}

	actorID := userctx.GetUserID(r.Context())
	result := models.ImportResult{Errors: []models.ImportRowError{}}

	for i, record := range rows {
		rowNum := i + 1
		in, err := csvRowToInput(fields, record)
		if err != nil {
			result.Errors = append(result.Errors, models.ImportRowError{Row: rowNum, Error: err.Error()})
			continue
		}

		if _, err := c.services.Buyers.CreateBuyer(r.Context(), actorID, in); err != nil {
			result.Errors = append(result.Errors, models.ImportRowError{Row: rowNum, Error: err.Error()})
			continue
		}
		result.SuccessCount++
	}

	result.ErrorCount = len(result.Errors)
	respondJSON(w, http.StatusOK, result)
}

func buyerToCSVRow(b models.Buyer) []string {
	return []string{
		b.FullName,
		b.Email,
		b.Phone,
		b.City,
		b.PropertyType,
		b.BHK,
		b.Purpose,
		formatBudget(b.BudgetMin),
		formatBudget(b.BudgetMax),
		b.Timeline,
		b.Source,
		b.Notes,
		strings.Join(b.Tags, ", "),
		b.Status,
		b.CreatedAt.Format(time.RFC3339Nano),
		b.UpdatedAt.Format(time.RFC3339Nano),
	}
}

func formatBudget(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

// csvRowToInput converts one data row into a create payload. Only cell
// syntax is checked here (numeric budgets); field constraints are enforced
// by the create path's validation.
func csvRowToInput(fields []string, record []string) (*models.CreateBuyerInput, error) {
	if len(record) > len(fields) {
		return nil, fmt.Errorf("row has %d cells but header has %d columns", len(record), len(fields))
	}

	in := &models.CreateBuyerInput{}
	for i, raw := range record {
		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}

		switch fields[i] {
		case "fullName":
			in.FullName = value
		case "email":
			in.Email = value
		case "phone":
			in.Phone = value
		case "city":
			in.City = value
		case "propertyType":
			in.PropertyType = value
		case "bhk":
			in.BHK = value
		case "purpose":
			in.Purpose = value
		case "budgetMin":
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("budgetMin: not a number: %q", value)
			}
			in.BudgetMin = &n
		case "budgetMax":
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("budgetMax: not a number: %q", value)
			}
			in.BudgetMax = &n
		case "timeline":
			in.Timeline = value
		case "source":
			in.Source = value
		case "notes":
			in.Notes = value
		case "tags":
			in.Tags = models.NormalizeTags(strings.Split(value, ","))
		case "status":
			in.Status = value
		}
		// createdAt / updatedAt cells are ignored: the store stamps its own.
	}

	return in, nil
}
