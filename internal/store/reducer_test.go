package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/washpoint/staffops/internal/domain"
)

func stateWithOrders(orders ...domain.Order) state {
	s := newState()
	for _, o := range orders {
		s.orders[o.ID] = o
	}
	return s
}

func TestReducerOrdersReplaced(t *testing.T) {
	s := stateWithOrders(domain.Order{ID: "old", Status: domain.StatusInCleaning})
	s.lastError = "previous failure"

	next := apply(s, action{kind: actionOrdersReplaced, orders: []domain.Order{
		{ID: "o1", Status: domain.StatusCreated},
	}})

	assert.Len(t, next.orders, 1)
	assert.Contains(t, next.orders, "o1")
	assert.NotContains(t, next.orders, "old")
	assert.Empty(t, next.lastError)
}

func TestReducerFetchFailureIsFailClosed(t *testing.T) {
	s := stateWithOrders(
		domain.Order{ID: "o1", Status: domain.StatusCreated},
		domain.Order{ID: "o2", Status: domain.StatusInCleaning},
	)

	next := apply(s, action{kind: actionOrdersFetchFailed, errMsg: "backend down"})

	// the previous snapshot must be gone, not shown as if current
	assert.Empty(t, next.orders)
	assert.Equal(t, "backend down", next.lastError)
}

func TestReducerOrderAcceptedForcesAwaitingPickup(t *testing.T) {
	s := stateWithOrders(domain.Order{ID: "o1", Status: domain.StatusCreated})

	next := apply(s, action{kind: actionOrderAccepted, orderID: "o1", officeID: "office-1"})

	got := next.orders["o1"]
	assert.Equal(t, domain.StatusAwaitingPickup, got.Status)
	require.NotNil(t, got.OfficeID)
	assert.Equal(t, "office-1", *got.OfficeID)

	// original state untouched
	assert.Equal(t, domain.StatusCreated, s.orders["o1"].Status)
}

func TestReducerOrderAcceptedUnknownOrder(t *testing.T) {
	s := newState()
	next := apply(s, action{kind: actionOrderAccepted, orderID: "ghost", officeID: "office-1"})
	assert.Empty(t, next.orders)
}

func TestReducerAssignmentAcceptedFlipsOnlyAcceptedFlag(t *testing.T) {
	s := newState()
	s.assignments["a1"] = domain.TemporaryAssignment{
		ID:        "a1",
		OrderID:   "o1",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	next := apply(s, action{kind: actionAssignmentAccepted, assignmentID: "a1"})

	got := next.assignments["a1"]
	assert.True(t, got.IsAccepted)
	assert.Nil(t, got.AcceptedByStaffID)
	assert.Nil(t, got.AcceptedAt)
}

func TestReducerStatusUpdated(t *testing.T) {
	s := stateWithOrders(domain.Order{ID: "o1", Status: domain.StatusAwaitingPickup})

	next := apply(s, action{kind: actionStatusUpdated, orderID: "o1", status: domain.StatusPickedUp})

	assert.Equal(t, domain.StatusPickedUp, next.orders["o1"].Status)
}

func TestReducerMutationFailedLeavesStateUntouched(t *testing.T) {
	s := stateWithOrders(domain.Order{ID: "o1", Status: domain.StatusPickedUp})
	s.assignments["a1"] = domain.TemporaryAssignment{ID: "a1"}

	next := apply(s, action{kind: actionMutationFailed, errMsg: "status push rejected"})

	assert.Equal(t, s.orders, next.orders)
	assert.Equal(t, s.assignments, next.assignments)
	assert.Equal(t, "status push rejected", next.lastError)
}

func TestReducerUserOrders(t *testing.T) {
	s := newState()

	next := apply(s, action{kind: actionUserOrdersReplaced, userID: "u1", orders: []domain.Order{
		{ID: "o1", Status: domain.StatusAwaitingPickup},
	}})
	assert.Len(t, next.userOrders["u1"], 1)

	failed := apply(next, action{kind: actionUserOrdersFetchFailed, userID: "u1", errMsg: "boom"})
	assert.Empty(t, failed.userOrders["u1"])
	// the unrelated user list survives, the failed one is fail-closed
	assert.Equal(t, "boom", failed.lastError)
}
