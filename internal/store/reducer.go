package store

import (
	"github.com/washpoint/staffops/internal/domain"
)

// state is the store's whole world: the office-scoped order table, the open
// assignment offers, the per-user accepted order lists and the shared
// last-error field. apply is the only place it changes.
type state struct {
	orders      map[string]domain.Order
	assignments map[string]domain.TemporaryAssignment
	userOrders  map[string][]domain.Order
	lastError   string
}

func newState() state {
	return state{
		orders:      make(map[string]domain.Order),
		assignments: make(map[string]domain.TemporaryAssignment),
		userOrders:  make(map[string][]domain.Order),
	}
}

type actionKind int

const (
	actionOrdersReplaced actionKind = iota
	actionOrdersFetchFailed
	actionAssignmentsReplaced
	actionAssignmentsFetchFailed
	actionUserOrdersReplaced
	actionUserOrdersFetchFailed
	actionOrderAccepted
	actionAssignmentAccepted
	actionStatusUpdated
	actionMutationFailed
)

type action struct {
	kind actionKind

	orders      []domain.Order
	assignments []domain.TemporaryAssignment

	userID       string
	orderID      string
	assignmentID string
	officeID     string
	status       domain.OrderStatus
	errMsg       string
}

// apply is a pure transition function from (state, action) to the next
// state. Optimistic patches and fetch replacements live here so they can be
// tested without any network mocking. Maps touched by an action are copied,
// never mutated in place.
func apply(s state, a action) state {
	switch a.kind {
	case actionOrdersReplaced:
		// full replacement of the office-scoped listing
		s.orders = make(map[string]domain.Order, len(a.orders))
		for _, o := range a.orders {
			s.orders[o.ID] = o
		}
		s.lastError = ""

	case actionOrdersFetchFailed:
		// fail closed: a failed refresh must never show stale orders as current
		s.orders = make(map[string]domain.Order)
		s.lastError = a.errMsg

	case actionAssignmentsReplaced:
		s.assignments = make(map[string]domain.TemporaryAssignment, len(a.assignments))
		for _, ta := range a.assignments {
			s.assignments[ta.ID] = ta
		}
		s.lastError = ""

	case actionAssignmentsFetchFailed:
		s.assignments = make(map[string]domain.TemporaryAssignment)
		s.lastError = a.errMsg

	case actionUserOrdersReplaced:
		s.userOrders = cloneUserOrders(s.userOrders)
		s.userOrders[a.userID] = a.orders
		s.lastError = ""

	case actionUserOrdersFetchFailed:
		s.userOrders = cloneUserOrders(s.userOrders)
		delete(s.userOrders, a.userID)
		s.lastError = a.errMsg

	case actionOrderAccepted:
		// optimistic claim: status becomes AWAITING_PICKUP no matter what the
		// backend echoed back
		if o, ok := s.orders[a.orderID]; ok {
			officeID := a.officeID
			o.Status = domain.StatusAwaitingPickup
			o.OfficeID = &officeID
			s.orders = cloneOrders(s.orders)
			s.orders[a.orderID] = o
		}
		s.lastError = ""

	case actionAssignmentAccepted:
		// only the accepted flag flips; acceptedByStaffId is left for the
		// backend to fill in on the next refresh
		if ta, ok := s.assignments[a.assignmentID]; ok {
			ta.IsAccepted = true
			s.assignments = cloneAssignments(s.assignments)
			s.assignments[a.assignmentID] = ta
		}
		s.lastError = ""

	case actionStatusUpdated:
		if o, ok := s.orders[a.orderID]; ok {
			o.Status = a.status
			s.orders = cloneOrders(s.orders)
			s.orders[a.orderID] = o
		}
		s.lastError = ""

	case actionMutationFailed:
		// prior state stays untouched; only the error surface changes
		s.lastError = a.errMsg
	}

	return s
}

func cloneOrders(src map[string]domain.Order) map[string]domain.Order {
	dst := make(map[string]domain.Order, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func cloneAssignments(src map[string]domain.TemporaryAssignment) map[string]domain.TemporaryAssignment {
	dst := make(map[string]domain.TemporaryAssignment, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func cloneUserOrders(src map[string][]domain.Order) map[string][]domain.Order {
	dst := make(map[string][]domain.Order, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
