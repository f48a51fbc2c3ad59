package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/estatehub/buyer-intake/models"
	"github.com/estatehub/buyer-intake/services"
	"github.com/estatehub/buyer-intake/userctx"
)

// BuyerController handles the buyer CRUD and CSV endpoints.
type BuyerController struct {
	services *services.Services
	logger   *zap.Logger
}

// NewBuyerController creates a new buyer controller.
func NewBuyerController(services *services.Services, logger *zap.Logger) *BuyerController {
	return &BuyerController{
		services: services,
		logger:   logger,
	}
}

// List handles GET /api/buyers
func (c *BuyerController) List(w http.ResponseWriter, r *http.Request) {
	filters := filtersFromQuery(r)

	page, err := c.services.Buyers.ListBuyers(r.Context(), filters)
	if err != nil {
		c.logger.Error("failed to list buyers", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	if page.Buyers == nil {
		page.Buyers = []models.Buyer{}
	}
	respondJSON(w, http.StatusOK, page)
}

// Create handles POST /api/buyers
func (c *BuyerController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CreateBuyerInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	buyer, err := c.services.Buyers.CreateBuyer(r.Context(), userctx.GetUserID(r.Context()), &in)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, buyer)
}

// Get handles GET /api/buyers/{id}
func (c *BuyerController) Get(w http.ResponseWriter, r *http.Request) {
	buyer, err := c.services.Buyers.GetBuyer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, buyer)
}

// Update handles PUT /api/buyers/{id}
func (c *BuyerController) Update(w http.ResponseWriter, r *http.Request) {
	var in models.UpdateBuyerInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	buyer, err := c.services.Buyers.UpdateBuyer(r.Context(), userctx.GetUserID(r.Context()), chi.URLParam(r, "id"), &in)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, buyer)
}

// Delete handles DELETE /api/buyers/{id}
func (c *BuyerController) Delete(w http.ResponseWriter, r *http.Request) {
	err := c.services.Buyers.DeleteBuyer(r.Context(), userctx.GetUserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Buyer deleted successfully"})
}

// History handles GET /api/buyers/{id}/history
func (c *BuyerController) History(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	// 404 for unknown buyers rather than an empty list.
	if _, err := c.services.Buyers.GetBuyer(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	entries, err := c.services.History.GetBuyerHistory(r.Context(), id, limit)
	if err != nil {
		c.logger.Error("failed to load history", zap.Error(err), zap.String("buyer_id", id))
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if entries == nil {
		entries = []models.HistoryEntry{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"history": entries})
}

func filtersFromQuery(r *http.Request) models.BuyerFilters {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	return models.BuyerFilters{
		Search:       q.Get("search"),
		City:         q.Get("city"),
		PropertyType: q.Get("propertyType"),
		Status:       q.Get("status"),
		Timeline:     q.Get("timeline"),
		SortBy:       q.Get("sortBy"),
		SortOrder:    q.Get("sortOrder"),
		Page:         page,
		Limit:        limit,
	}
}
