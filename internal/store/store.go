//go:generate mockgen -source ./store.go -destination=./mocks/store.go -package=mock_store
package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/washpoint/staffops/internal/domain"
	"github.com/washpoint/staffops/internal/metrics"
	"github.com/washpoint/staffops/internal/remote"
)

// RemoteClient is the slice of the backend client the store needs.
type RemoteClient interface {
	ListStaffOrders(ctx context.Context) ([]domain.Order, error)
	ListTemporaryAssignments(ctx context.Context, officeID string) ([]domain.TemporaryAssignment, error)
	ListUserOrders(ctx context.Context, userID string) ([]domain.Order, error)
	AcceptOrder(ctx context.Context, orderID, officeID string) (*domain.Order, error)
	AcceptAssignment(ctx context.Context, assignmentID, officeID string) (*domain.TemporaryAssignment, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, notes string) error
}

// HistoryRecorder mirrors observed status changes into local storage for
// reporting. Recording failures are logged and otherwise ignored; the mirror
// is a convenience, not a ledger.
type HistoryRecorder interface {
	Record(ctx context.Context, orderID string, status domain.OrderStatus, changedAt time.Time) error
}

// Notification is one entry of the centralized error channel. Every failed
// operation produces exactly one, regardless of which view triggered it.
type Notification struct {
	Operation  string    `json:"operation"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Store is the single source of truth for the orders and assignment offers
// visible to the current staff member. Reads are reactive snapshots; all
// writes go through the reducer under one mutex. Remote calls are issued
// outside the lock, so separate in-flight operations interleave and the last
// response to resolve wins.
type Store struct {
	mu      sync.RWMutex
	remote  RemoteClient
	history HistoryRecorder
	logger  *zap.Logger

	state state

	notifications chan Notification
}

func New(remoteClient RemoteClient, history HistoryRecorder, logger *zap.Logger) *Store {
	return &Store{
		remote:        remoteClient,
		history:       history,
		logger:        logger,
		state:         newState(),
		notifications: make(chan Notification, 64),
	}
}

// Notifications exposes the shared error channel. All views subscribe here
// instead of deciding presentation per screen.
func (s *Store) Notifications() <-chan Notification {
	return s.notifications
}

// FetchStaffOrders replaces the whole order set with the backend's current
// listing. On failure the local set is emptied, never left stale.
func (s *Store) FetchStaffOrders(ctx context.Context) error {
	orders, err := s.remote.ListStaffOrders(ctx)
	if err != nil {
		metrics.RefreshFailuresTotal.WithLabelValues("orders").Inc()
		s.dispatchFailure("fetch_staff_orders", actionOrdersFetchFailed, action{}, err)
		return err
	}
	s.dispatch(action{kind: actionOrdersReplaced, orders: orders})
	return nil
}

// FetchTemporaryAssignments replaces the offer set for an office, with the
// same fail-closed policy as the order listing.
func (s *Store) FetchTemporaryAssignments(ctx context.Context, officeID string) error {
	assignments, err := s.remote.ListTemporaryAssignments(ctx, officeID)
	if err != nil {
		metrics.RefreshFailuresTotal.WithLabelValues("assignments").Inc()
		s.dispatchFailure("fetch_assignments", actionAssignmentsFetchFailed, action{}, err)
		return err
	}
	s.dispatch(action{kind: actionAssignmentsReplaced, assignments: assignments})
	return nil
}

// FetchUserAcceptedOrders refreshes the "accepted by this user" list. It runs
// on its own cadence; no consistency is maintained against the office listing.
func (s *Store) FetchUserAcceptedOrders(ctx context.Context, userID string) error {
	orders, err := s.remote.ListUserOrders(ctx, userID)
	if err != nil {
		metrics.RefreshFailuresTotal.WithLabelValues("user_orders").Inc()
		s.dispatchFailure("fetch_user_orders", actionUserOrdersFetchFailed, action{userID: userID}, err)
		return err
	}
	s.dispatch(action{kind: actionUserOrdersReplaced, userID: userID, orders: orders})
	return nil
}

// AcceptOrder claims an order for an office. On success the local order is
// optimistically patched to AWAITING_PICKUP; the order payload echoed by the
// backend is logged but not applied, so a disagreeing server status only
// becomes visible on the next full refresh.
func (s *Store) AcceptOrder(ctx context.Context, orderID, officeID string) error {
	echoed, err := s.remote.AcceptOrder(ctx, orderID, officeID)
	if err != nil {
		metrics.MutationErrorsTotal.WithLabelValues("accept_order").Inc()
		s.dispatchFailure("accept_order", actionMutationFailed, action{}, err)
		return err
	}
	if echoed != nil {
		s.logger.Debug("backend echoed order on accept",
			zap.String("order_id", echoed.ID),
			zap.String("echoed_status", echoed.Status.String()))
	}

	s.dispatch(action{kind: actionOrderAccepted, orderID: orderID, officeID: officeID})
	metrics.OrdersAcceptedTotal.Inc()
	s.recordHistory(ctx, orderID, domain.StatusAwaitingPickup)
	return nil
}

// AcceptTemporaryAssignment accepts a load-balancing offer, which claims the
// underlying order server-side. Locally only the accepted flag flips;
// acceptedByStaffId stays unset until a refresh brings the backend's view.
func (s *Store) AcceptTemporaryAssignment(ctx context.Context, assignmentID, officeID string) error {
	_, err := s.remote.AcceptAssignment(ctx, assignmentID, officeID)
	if err != nil {
		metrics.MutationErrorsTotal.WithLabelValues("accept_assignment").Inc()
		s.dispatchFailure("accept_assignment", actionMutationFailed, action{}, err)
		return err
	}

	s.dispatch(action{kind: actionAssignmentAccepted, assignmentID: assignmentID})
	metrics.AssignmentsAcceptedTotal.Inc()
	return nil
}

// UpdateOrderStatus pushes an explicit transition to the backend and patches
// the local order to the requested status on success only.
func (s *Store) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, notes string) error {
	if err := s.remote.UpdateOrderStatus(ctx, orderID, status, notes); err != nil {
		metrics.MutationErrorsTotal.WithLabelValues("update_status").Inc()
		s.dispatchFailure("update_status", actionMutationFailed, action{}, err)
		return err
	}

	s.dispatch(action{kind: actionStatusUpdated, orderID: orderID, status: status})
	metrics.StatusUpdatesTotal.Inc()
	s.recordHistory(ctx, orderID, status)
	return nil
}

// AvailableItem is one row of the "available" view: a CREATED unclaimed
// order, an eligible assignment offer, or both for the same underlying order.
type AvailableItem struct {
	OrderID    string                      `json:"orderId"`
	Order      *domain.Order               `json:"order,omitempty"`
	Assignment *domain.TemporaryAssignment `json:"assignment,omitempty"`
}

// Available returns the union of unclaimed CREATED orders and eligible
// assignment offers, de-duplicated by underlying order id.
func (s *Store) Available(now time.Time) []AvailableItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make(map[string]AvailableItem)
	for id, o := range s.state.orders {
		if o.Status == domain.StatusCreated && !o.Claimed() {
			order := o
			items[id] = AvailableItem{OrderID: id, Order: &order}
		}
	}
	for _, ta := range s.state.assignments {
		if !ta.Eligible(now) {
			continue
		}
		assignment := ta
		item := items[ta.OrderID]
		item.OrderID = ta.OrderID
		item.Assignment = &assignment
		items[ta.OrderID] = item
	}

	result := make([]AvailableItem, 0, len(items))
	for _, item := range items {
		result = append(result, item)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].OrderID < result[j].OrderID })
	return result
}

// Accepted returns the in-progress orders held by an office.
func (s *Store) Accepted(officeID string) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.Order
	for _, o := range s.state.orders {
		if o.HeldBy(officeID) && o.Status != domain.StatusCreated && !o.Status.IsTerminal() {
			result = append(result, o)
		}
	}
	sortOrders(result)
	return result
}

// Completed returns orders in a terminal status.
func (s *Store) Completed() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.Order
	for _, o := range s.state.orders {
		if o.Status.IsTerminal() {
			result = append(result, o)
		}
	}
	sortOrders(result)
	return result
}

// Order returns a snapshot of a single order.
func (s *Store) Order(orderID string) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.state.orders[orderID]
	return o, ok
}

// Assignment returns a snapshot of a single assignment offer.
func (s *Store) Assignment(assignmentID string) (domain.TemporaryAssignment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ta, ok := s.state.assignments[assignmentID]
	return ta, ok
}

// UserOrders returns the last successfully fetched accepted-orders list for a
// user, or nil if the last fetch failed.
func (s *Store) UserOrders(userID string) []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.userOrders[userID]
}

// LastError returns the shared error surface set by the most recent failed
// operation, empty after any success.
func (s *Store) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.lastError
}

func (s *Store) dispatch(a action) {
	s.mu.Lock()
	s.state = apply(s.state, a)
	metrics.StoreOrders.Set(float64(len(s.state.orders)))
	s.mu.Unlock()
}

func (s *Store) dispatchFailure(operation string, kind actionKind, a action, err error) {
	a.kind = kind
	a.errMsg = errorMessage(err)
	s.dispatch(a)
	s.notify(Notification{Operation: operation, Message: a.errMsg, OccurredAt: time.Now().UTC()})
	s.logger.Warn("store operation failed", zap.String("operation", operation), zap.Error(err))
}

func (s *Store) notify(n Notification) {
	select {
	case s.notifications <- n:
	default:
		s.logger.Warn("notification channel full, dropping entry",
			zap.String("operation", n.Operation))
	}
}

func (s *Store) recordHistory(ctx context.Context, orderID string, status domain.OrderStatus) {
	if s.history == nil {
		return
	}
	if err := s.history.Record(ctx, orderID, status, time.Now().UTC()); err != nil {
		s.logger.Warn("failed to mirror status change into history",
			zap.String("order_id", orderID), zap.Error(err))
	}
}

// errorMessage maps an operation error onto the user-facing surface: backend
// business errors pass through verbatim, everything else collapses into a
// generic connectivity message.
func errorMessage(err error) string {
	var apiErr *remote.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if errors.Is(err, remote.ErrUnauthorized) {
		return "session expired, please sign in again"
	}
	return "could not reach the laundry platform service"
}

func sortOrders(orders []domain.Order) {
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.Before(orders[j].CreatedAt)
		}
		return orders[i].ID < orders[j].ID
	})
}
