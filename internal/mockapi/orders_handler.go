package mockapi

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Tahancr42/parastore-frontend/internal/domain"
)

func (s *Server) handleCreateOrderFromCart(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "missing_user_id", "userId is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[userID]
	if len(items) == 0 {
		respondError(w, http.StatusBadRequest, "empty_cart", "cart is empty, nothing to order")
		return
	}

	order := &domain.Order{
		ID:        s.nextOrderID,
		UserID:    userID,
		Status:    domain.OrderPending,
		CreatedAt: time.Now().UTC(),
	}
	s.nextOrderID++
	for _, item := range items {
		order.Lines = append(order.Lines, domain.OrderLine{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			LineTotal:   item.LineTotal,
		})
		order.Total += item.LineTotal
	}
	s.orders[order.ID] = order

	// The cart is not cleared here; the client's checkout flow owns that.
	s.log.Info("order created", "orderId", order.ID, "userId", userID, "total", order.Total)
	respondJSON(w, http.StatusCreated, order)
}

func (s *Server) handleListOrders(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, *o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	respondJSON(w, http.StatusOK, orders)
}

func (s *Server) handleOrdersByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]domain.Order, 0)
	for _, o := range s.orders {
		if o.UserID == userID {
			orders = append(orders, *o)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	respondJSON(w, http.StatusOK, orders)
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderId"), 10, 64)
	if err != nil || orderID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "orderId must be a positive integer")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "order not found")
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (s *Server) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderId"), 10, 64)
	if err != nil || orderID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "orderId must be a positive integer")
		return
	}
	status := r.URL.Query().Get("status")
	switch status {
	case domain.OrderPending, domain.OrderConfirmed, domain.OrderShipped, domain.OrderDelivered, domain.OrderCancelled:
	default:
		respondError(w, http.StatusBadRequest, "invalid_status", "unknown order status")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "order not found")
		return
	}
	order.Status = status
	respondJSON(w, http.StatusOK, order)
}

func (s *Server) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderId"), 10, 64)
	if err != nil || orderID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "orderId must be a positive integer")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[orderID]; !ok {
		respondError(w, http.StatusNotFound, "not_found", "order not found")
		return
	}
	delete(s.orders, orderID)
	w.WriteHeader(http.StatusNoContent)
}
