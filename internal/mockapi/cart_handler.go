package mockapi

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Tahancr42/parastore-frontend/internal/domain"
)

type addToCartDTO struct {
	UserID    string `json:"userId"`
	ProductID int64  `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type updateQuantityDTO struct {
	Quantity int `json:"quantity"`
}

// lineTotal is computed here and only here; the client displays it verbatim.
func lineTotal(unitPrice float64, quantity int) float64 {
	return math.Round(unitPrice*float64(quantity)*100) / 100
}

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "missing_user_id", "userId query parameter is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[userID]
	if items == nil {
		items = []domain.LineItem{}
	}
	respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.UserID == "" {
		respondError(w, http.StatusBadRequest, "missing_user_id", "userId is required")
		return
	}
	if req.Quantity < 1 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be at least 1")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var product *domain.Product
	for i := range s.products {
		if s.products[i].ID == req.ProductID {
			product = &s.products[i]
			break
		}
	}
	if product == nil {
		respondError(w, http.StatusNotFound, "not_found", "product not found")
		return
	}

	// Same product already in the cart: increment, don't duplicate the row.
	items := s.carts[req.UserID]
	for i := range items {
		if items[i].ProductID == req.ProductID {
			items[i].Quantity += req.Quantity
			items[i].LineTotal = lineTotal(items[i].UnitPrice, items[i].Quantity)
			respondJSON(w, http.StatusOK, items[i])
			return
		}
	}

	item := domain.LineItem{
		ID:          s.nextItemID,
		ProductID:   product.ID,
		ProductName: product.Name,
		UnitPrice:   product.Price,
		Quantity:    req.Quantity,
		LineTotal:   lineTotal(product.Price, req.Quantity),
		ImageURL:    product.ImageURL,
	}
	s.nextItemID++
	s.carts[req.UserID] = append(items, item)
	respondJSON(w, http.StatusCreated, item)
}

func (s *Server) handleUpdateQuantity(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.ParseInt(chi.URLParam(r, "cartItemId"), 10, 64)
	if err != nil || itemID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_item_id", "cartItemId must be a positive integer")
		return
	}
	var req updateQuantityDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	// Deletion never rides on the update path.
	if req.Quantity < 1 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be at least 1; use DELETE to remove an item")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for userID, items := range s.carts {
		for i := range items {
			if items[i].ID == itemID {
				items[i].Quantity = req.Quantity
				items[i].LineTotal = lineTotal(items[i].UnitPrice, req.Quantity)
				s.carts[userID] = items
				respondJSON(w, http.StatusOK, items[i])
				return
			}
		}
	}
	respondError(w, http.StatusNotFound, "not_found", "cart item not found")
}

func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.ParseInt(chi.URLParam(r, "cartItemId"), 10, 64)
	if err != nil || itemID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_item_id", "cartItemId must be a positive integer")
		return
	}
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "missing_user_id", "userId query parameter is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.carts[userID]
	for i := range items {
		if items[i].ID == itemID {
			s.carts[userID] = append(items[:i], items[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	respondError(w, http.StatusNotFound, "not_found", "cart item not found")
}

func (s *Server) handleClearCart(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "missing_user_id", "userId query parameter is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
	w.WriteHeader(http.StatusNoContent)
}
