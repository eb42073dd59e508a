package storeapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"orderboard/internal/adapters/out/storeapi"
	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/core/ports"
	"orderboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, baseURL string) *storeapi.Client {
	t.Helper()

	tokens, err := storeapi.NewStaticTokenSource("secret-token")
	require.NoError(t, err)

	client, err := storeapi.NewClient(baseURL, tokens)
	require.NoError(t, err)
	return client
}

func orderJSON(id kernel.UUID, status string) map[string]any {
	return map[string]any{
		"id":            id.String(),
		"status":        status,
		"placedAt":      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		"orderType":     "DINE_IN",
		"paymentStatus": "PAID",
		"items": []map[string]any{
			{"name": "Margherita", "quantity": 1},
		},
	}
}

func TestClient_FetchOrders(t *testing.T) {
	t.Run("should fetch and rehydrate orders with auth and filter", func(t *testing.T) {
		id := kernel.NewUUID()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/orders", r.URL.Path)
			assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
			assert.ElementsMatch(t, []string{"ACCEPTED", "IN_PROGRESS"}, r.URL.Query()["status"])

			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data":    []map[string]any{orderJSON(id, "ACCEPTED")},
			})
		}))
		defer server.Close()

		client := newClient(t, server.URL)
		orders, err := client.FetchOrders(t.Context(), ports.Filter{
			Statuses: []order.Status{order.Accepted, order.InProgress},
		})

		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.True(t, orders[0].ID().IsEqual(id))
		assert.Equal(t, order.Accepted, orders[0].Status())
	})

	t.Run("should reject a malformed order in the payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			bad := orderJSON(kernel.NewUUID(), "NOT_A_STATUS")
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data":    []map[string]any{bad},
			})
		}))
		defer server.Close()

		client := newClient(t, server.URL)
		_, err := client.FetchOrders(t.Context(), ports.Filter{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should map an unreachable store to a network failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
		server.Close() // nothing listens anymore

		client := newClient(t, server.URL)
		_, err := client.FetchOrders(t.Context(), ports.Filter{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrNetworkFailure)
	})
}

func TestClient_SubmitStatusChange(t *testing.T) {
	t.Run("should post the target status and return the echoed order", func(t *testing.T) {
		id := kernel.NewUUID()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/orders/"+id.String()+"/status", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "ACCEPTED", body["status"])

			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data":    orderJSON(id, "ACCEPTED"),
			})
		}))
		defer server.Close()

		client := newClient(t, server.URL)
		echoed, err := client.SubmitStatusChange(t.Context(), id, order.Accepted)

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, echoed.Status())
	})

	t.Run("should surface a store rejection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"error":   "order already completed",
			})
		}))
		defer server.Close()

		client := newClient(t, server.URL)
		_, err := client.SubmitStatusChange(t.Context(), kernel.NewUUID(), order.Accepted)

		require.Error(t, err)
		assert.ErrorIs(t, err, storeapi.ErrStoreRejected)
		assert.Contains(t, err.Error(), "order already completed")
	})

	t.Run("should map 404 to object not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := newClient(t, server.URL)
		_, err := client.SubmitStatusChange(t.Context(), kernel.NewUUID(), order.Accepted)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestNewClient_Validation(t *testing.T) {
	tokens, err := storeapi.NewStaticTokenSource("secret")
	require.NoError(t, err)

	_, err = storeapi.NewClient("", tokens)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = storeapi.NewClient("http://localhost:9999", nil)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewStaticTokenSource_Empty(t *testing.T) {
	_, err := storeapi.NewStaticTokenSource("")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
