package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/washpoint/staffops/internal/domain"
	"github.com/washpoint/staffops/internal/session"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sess := session.New("")
	require.NoError(t, sess.SetSession("tok-abc", "staff-1"))
	return NewClient(srv.URL, 2*time.Second, sess, zap.NewNop()), sess
}

func TestListStaffOrdersNormalizesEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/staff/office/orders", r.URL.Path)
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"orders": []map[string]interface{}{
				{"id": "o1", "status": "CREATED", "businessId": "b1"},
				{"id": "o2", "status": "IN_CLEANING", "businessId": "b1", "officeId": "office-1"},
			},
			"pagination": map[string]int{"page": 1, "total": 2},
		})
	})

	orders, err := client.ListStaffOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "o1", orders[0].ID)
	assert.Equal(t, domain.StatusCreated, orders[0].Status)
	assert.Nil(t, orders[0].OfficeID)
	require.NotNil(t, orders[1].OfficeID)
	assert.Equal(t, "office-1", *orders[1].OfficeID)
}

func TestAcceptOrderEchoesServerOrder(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/staff/orders/o1/accept", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "office-1", body["officeId"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "accepted",
			"order":   map[string]interface{}{"id": "o1", "status": "PICKED_UP"},
		})
	})

	echoed, err := client.AcceptOrder(context.Background(), "o1", "office-1")
	require.NoError(t, err)
	require.NotNil(t, echoed)
	// the echo is whatever the server said, even when it disagrees with the
	// optimistic AWAITING_PICKUP patch applied by the store
	assert.Equal(t, domain.StatusPickedUp, echoed.Status)
}

func TestUpdateOrderStatusSendsStatusAndNotes(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/staff/orders/o1/status", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "PICKED_UP", body["status"])
		assert.Equal(t, "two bags", body["notes"])

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	})

	err := client.UpdateOrderStatus(context.Background(), "o1", domain.StatusPickedUp, "two bags")
	assert.NoError(t, err)
}

func TestUnauthorizedClearsSession(t *testing.T) {
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.ListStaffOrders(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, sess.Token())
}

func TestServerErrorMessagePassedThrough(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{"message field", `{"message":"order already claimed by another office"}`, "order already claimed by another office"},
		{"error field", `{"error":"office capacity exceeded"}`, "office capacity exceeded"},
		{"malformed body", `<html>bad gateway</html>`, "request failed with status 400"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(tc.body))
			})

			_, err := client.AcceptOrder(context.Background(), "o1", "office-1")
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
			assert.Equal(t, tc.expected, apiErr.Message)
		})
	}
}

func TestTransportErrorWrapped(t *testing.T) {
	sess := session.New("")
	client := NewClient("http://127.0.0.1:1", 200*time.Millisecond, sess, zap.NewNop())

	_, err := client.ListStaffOrders(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "platform backend unreachable")
}

func TestListUserOrdersLiftsLegacyStatuses(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/user/user-5", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"orders": []map[string]interface{}{
				{"id": "o1", "status": "in_progress"},
				{"id": "o2", "status": "ready"},
				{"id": "o3", "status": "AWAITING_PICKUP"},
			},
			"type": "accepted",
		})
	})

	orders, err := client.ListUserOrders(context.Background(), "user-5")
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, domain.StatusPickedUp, orders[0].Status)
	assert.Equal(t, domain.StatusReadyForDelivery, orders[1].Status)
	assert.Equal(t, domain.StatusAwaitingPickup, orders[2].Status)
}

func TestListTemporaryAssignments(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/staff/offices/office-1/temporary-assignments", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"assignments": []map[string]interface{}{
				{"id": "a1", "orderId": "o9", "officeId": "office-1", "distanceKm": 2.4, "expiresAt": "2025-06-01T12:00:00Z"},
			},
			"count": 1,
		})
	})

	assignments, err := client.ListTemporaryAssignments(context.Background(), "office-1")
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, "o9", assignments[0].OrderID)
	assert.False(t, assignments[0].IsAccepted)
}
