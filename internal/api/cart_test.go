package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tahancr42/parastore-frontend/internal/api"
	"github.com/Tahancr42/parastore-frontend/internal/domain"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
	Header http.Header
}

// recordingServer captures each request and plays back a canned response.
func recordingServer(t *testing.T, status int, response any) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var seen []recordedRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		seen = append(seen, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Body:   string(body),
			Header: r.Header.Clone(),
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if response != nil {
			_ = json.NewEncoder(w).Encode(response)
		}
	}))
	t.Cleanup(ts.Close)
	return ts, &seen
}

func newTestClient(ts *httptest.Server, opts ...api.Option) *api.Client {
	return api.NewClient(ts.URL, 5*time.Second, opts...)
}

func TestFetchCart(t *testing.T) {
	want := []domain.LineItem{{ID: 1, ProductID: 5, Quantity: 2, LineTotal: 700}}
	ts, seen := recordingServer(t, http.StatusOK, want)

	items, err := newTestClient(ts).FetchCart(context.Background(), "u-client-1")

	require.NoError(t, err)
	assert.Equal(t, want, items)
	require.Len(t, *seen, 1)
	assert.Equal(t, http.MethodGet, (*seen)[0].Method)
	assert.Equal(t, "/api/cart", (*seen)[0].Path)
	assert.Equal(t, "userId=u-client-1", (*seen)[0].Query)
}

func TestAddItem(t *testing.T) {
	ts, seen := recordingServer(t, http.StatusCreated, domain.LineItem{ID: 3, ProductID: 5, Quantity: 2})

	item, err := newTestClient(ts).AddItem(context.Background(), "u1", 5, 2)

	require.NoError(t, err)
	assert.Equal(t, int64(3), item.ID)
	require.Len(t, *seen, 1)
	assert.Equal(t, http.MethodPost, (*seen)[0].Method)
	assert.Equal(t, "/api/cart/add", (*seen)[0].Path)
	assert.JSONEq(t, `{"userId":"u1","productId":5,"quantity":2}`, (*seen)[0].Body)
	assert.Equal(t, "application/json", (*seen)[0].Header.Get("Content-Type"))
}

func TestSetQuantity(t *testing.T) {
	ts, seen := recordingServer(t, http.StatusOK, domain.LineItem{ID: 7, Quantity: 3, LineTotal: 360})

	item, err := newTestClient(ts).SetQuantity(context.Background(), 7, "u1", 3)

	require.NoError(t, err)
	assert.Equal(t, 3, item.Quantity)
	require.Len(t, *seen, 1)
	assert.Equal(t, http.MethodPut, (*seen)[0].Method)
	assert.Equal(t, "/api/cart/item/7", (*seen)[0].Path)
	assert.JSONEq(t, `{"quantity":3}`, (*seen)[0].Body)
}

func TestRemoveItem(t *testing.T) {
	ts, seen := recordingServer(t, http.StatusNoContent, nil)

	err := newTestClient(ts).RemoveItem(context.Background(), 7, "u1")

	require.NoError(t, err)
	require.Len(t, *seen, 1)
	assert.Equal(t, http.MethodDelete, (*seen)[0].Method)
	assert.Equal(t, "/api/cart/item/7", (*seen)[0].Path)
	assert.Equal(t, "userId=u1", (*seen)[0].Query)
}

func TestClear(t *testing.T) {
	ts, seen := recordingServer(t, http.StatusNoContent, nil)

	err := newTestClient(ts).Clear(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, *seen, 1)
	assert.Equal(t, http.MethodDelete, (*seen)[0].Method)
	assert.Equal(t, "/api/cart/clear", (*seen)[0].Path)
}

func TestHTTPErrorIsReturnedAsIs(t *testing.T) {
	ts, seen := recordingServer(t, http.StatusServiceUnavailable, map[string]string{"error": "down"})

	_, err := newTestClient(ts).FetchCart(context.Background(), "u1")

	require.Error(t, err)
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
	assert.Len(t, *seen, 1, "a single attempt, no retries")
}

func TestTransportErrorPropagates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	ts.Close() // connection refused from here on

	_, err := api.NewClient(ts.URL, time.Second).FetchCart(context.Background(), "u1")

	require.Error(t, err)
	var apiErr *api.Error
	assert.False(t, errors.As(err, &apiErr), "transport errors are not HTTP errors")
}

func TestBearerTokenAndRequestID(t *testing.T) {
	ts, seen := recordingServer(t, http.StatusOK, []domain.LineItem{})

	client := newTestClient(ts, api.WithToken(func() string { return "tok-123" }))
	_, err := client.FetchCart(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, *seen, 1)
	assert.Equal(t, "Bearer tok-123", (*seen)[0].Header.Get("Authorization"))
	assert.NotEmpty(t, (*seen)[0].Header.Get("X-Request-Id"))
}

func TestAnonymousRequestsCarryNoAuthHeader(t *testing.T) {
	ts, seen := recordingServer(t, http.StatusOK, []domain.LineItem{})

	client := newTestClient(ts, api.WithToken(func() string { return "" }))
	_, err := client.FetchCart(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, *seen, 1)
	assert.Empty(t, (*seen)[0].Header.Get("Authorization"))
}
