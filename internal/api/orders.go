package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Tahancr42/parastore-frontend/internal/domain"
)

// CreateOrderFromCart turns the current cart of userID into an order. The
// cart itself is left untouched; the checkout flow clears it separately.
func (c *Client) CreateOrderFromCart(ctx context.Context, userID string) (*domain.Order, error) {
	var order domain.Order
	path := "/api/orders/from-cart/" + url.PathEscape(userID)
	if err := c.do(ctx, http.MethodPost, path, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) Orders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.do(ctx, http.MethodGet, "/api/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) OrdersByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	var orders []domain.Order
	path := "/api/orders/by-user/" + url.PathEscape(userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) Order(ctx context.Context, orderID int64) (*domain.Order, error) {
	var order domain.Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d", orderID), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int64, status string) (*domain.Order, error) {
	var order domain.Order
	path := fmt.Sprintf("/api/orders/%d/status?status=%s", orderID, url.QueryEscape(status))
	if err := c.do(ctx, http.MethodPatch, path, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) DeleteOrder(ctx context.Context, orderID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/orders/%d", orderID), nil, nil)
}
