package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Tahancr42/parastore-frontend/internal/domain"
)

type addItemRequest struct {
	UserID    string `json:"userId"`
	ProductID int64  `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// FetchCart returns the full authoritative cart for userID. The returned
// slice is the server's snapshot; callers replace state with it wholesale.
func (c *Client) FetchCart(ctx context.Context, userID string) ([]domain.LineItem, error) {
	var items []domain.LineItem
	path := "/api/cart?userId=" + url.QueryEscape(userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddItem creates a line for productID or increments an existing one; which
// of the two happens is the server's call. The returned snapshot is
// informational only — state is refreshed through FetchCart.
func (c *Client) AddItem(ctx context.Context, userID string, productID int64, quantity int) (*domain.LineItem, error) {
	body := addItemRequest{UserID: userID, ProductID: productID, Quantity: quantity}
	var item domain.LineItem
	if err := c.do(ctx, http.MethodPost, "/api/cart/add", body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// SetQuantity replaces the quantity of one line item. Quantities below 1 are
// never sent through this path; removal goes through RemoveItem.
func (c *Client) SetQuantity(ctx context.Context, itemID int64, userID string, quantity int) (*domain.LineItem, error) {
	path := fmt.Sprintf("/api/cart/item/%d", itemID)
	var item domain.LineItem
	if err := c.do(ctx, http.MethodPut, path, updateQuantityRequest{Quantity: quantity}, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveItem deletes one line item from userID's cart.
func (c *Client) RemoveItem(ctx context.Context, itemID int64, userID string) error {
	path := fmt.Sprintf("/api/cart/item/%d?userId=%s", itemID, url.QueryEscape(userID))
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// Clear deletes every line item from userID's cart.
func (c *Client) Clear(ctx context.Context, userID string) error {
	path := "/api/cart/clear?userId=" + url.QueryEscape(userID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
