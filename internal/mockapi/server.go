// Package mockapi is an in-memory stand-in for the storefront backend. It
// serves the same REST contract the real backend exposes, computes line
// totals server-side, and issues signed JWTs on login, so the client code
// runs against it unchanged in development and in integration tests.
package mockapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Tahancr42/parastore-frontend/internal/domain"
)

type Server struct {
	secret []byte
	log    *slog.Logger

	mu          sync.Mutex
	products    []domain.Product
	carts       map[string][]domain.LineItem
	orders      map[int64]*domain.Order
	nextItemID  int64
	nextOrderID int64
}

func NewServer(secret string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	products := make([]domain.Product, len(seedProducts))
	copy(products, seedProducts)
	return &Server{
		secret:      []byte(secret),
		log:         logger,
		products:    products,
		carts:       make(map[string][]domain.LineItem),
		orders:      make(map[int64]*domain.Order),
		nextItemID:  1,
		nextOrderID: 1,
	}
}

// Router builds the full route table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.authCheck)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", s.handleLogin)

		r.Get("/products", s.handleListProducts)
		r.Get("/products/{productId}", s.handleGetProduct)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", s.handleGetCart)
			r.Post("/add", s.handleAddToCart)
			r.Put("/item/{cartItemId}", s.handleUpdateQuantity)
			r.Delete("/item/{cartItemId}", s.handleRemoveItem)
			r.Delete("/clear", s.handleClearCart)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/from-cart/{userId}", s.handleCreateOrderFromCart)
			r.Get("/", s.handleListOrders)
			r.Get("/by-user/{userId}", s.handleOrdersByUser)
			r.Get("/{orderId}", s.handleGetOrder)
			r.Patch("/{orderId}/status", s.handleUpdateOrderStatus)
			r.Delete("/{orderId}", s.handleDeleteOrder)
		})
	})

	return r
}

// authCheck rejects requests carrying a bearer token that does not verify
// against the dev secret. Requests without a token pass: the mock backend is
// permissive so anonymous flows stay testable.
func (s *Server) authCheck(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			raw := strings.TrimPrefix(header, "Bearer ")
			_, err := jwt.Parse(raw, func(*jwt.Token) (any, error) {
				return s.secret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil {
				s.log.Warn("rejected bearer token", "error", err)
				respondError(w, http.StatusUnauthorized, "invalid_token", "bearer token did not verify")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, errorResponse{Error: message, Code: code})
}
