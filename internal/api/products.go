package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/singleflight"

	"github.com/Tahancr42/parastore-frontend/internal/domain"
)

// Catalog reads the product catalog. This is a collaborator surface, not part
// of the cart contract: concurrent identical reads are collapsed into one
// upstream call and a circuit breaker sheds load when the catalog is down.
type Catalog struct {
	client *Client
	sfg    singleflight.Group
	cb     *gobreaker.CircuitBreaker[any]
}

func NewCatalog(client *Client) *Catalog {
	return &Catalog{
		client: client,
		cb: gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
			Name:        "catalog",
			MaxRequests: 3,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

func (c *Catalog) Products(ctx context.Context) ([]domain.Product, error) {
	v, err, _ := c.sfg.Do("products", func() (any, error) {
		return c.cb.Execute(func() (any, error) {
			var products []domain.Product
			if err := c.client.do(ctx, http.MethodGet, "/api/products", nil, &products); err != nil {
				return nil, err
			}
			return products, nil
		})
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Product), nil
}

func (c *Catalog) Product(ctx context.Context, productID int64) (*domain.Product, error) {
	key := fmt.Sprintf("product:%d", productID)
	v, err, _ := c.sfg.Do(key, func() (any, error) {
		return c.cb.Execute(func() (any, error) {
			var product domain.Product
			path := fmt.Sprintf("/api/products/%d", productID)
			if err := c.client.do(ctx, http.MethodGet, path, nil, &product); err != nil {
				return nil, err
			}
			return &product, nil
		})
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Product), nil
}
