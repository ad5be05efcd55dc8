package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/washpoint/staffops/internal/domain"
	"github.com/washpoint/staffops/internal/remote"
	"github.com/washpoint/staffops/internal/store"
	mock_store "github.com/washpoint/staffops/internal/store/mocks"
)

func newStore(t *testing.T) (*store.Store, *mock_store.MockRemoteClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRemote := mock_store.NewMockRemoteClient(ctrl)
	return store.New(mockRemote, nil, zap.NewNop()), mockRemote
}

func TestAcceptOrderAppliesOptimisticPatch(t *testing.T) {
	ctx := context.Background()
	s, mockRemote := newStore(t)

	mockRemote.EXPECT().ListStaffOrders(gomock.Any()).Return([]domain.Order{
		{ID: "o1", Status: domain.StatusCreated},
	}, nil)
	require.NoError(t, s.FetchStaffOrders(ctx))

	// backend echoes a different status; the client must ignore it and
	// patch to AWAITING_PICKUP anyway
	mockRemote.EXPECT().AcceptOrder(gomock.Any(), "o1", "office-1").Return(
		&domain.Order{ID: "o1", Status: domain.StatusPickedUp}, nil)

	require.NoError(t, s.AcceptOrder(ctx, "o1", "office-1"))

	got, ok := s.Order("o1")
	require.True(t, ok)
	assert.Equal(t, domain.StatusAwaitingPickup, got.Status)
	require.NotNil(t, got.OfficeID)
	assert.Equal(t, "office-1", *got.OfficeID)
	assert.Empty(t, s.LastError())
}

func TestAcceptOrderFailureLeavesOrderUntouched(t *testing.T) {
	ctx := context.Background()
	s, mockRemote := newStore(t)

	mockRemote.EXPECT().ListStaffOrders(gomock.Any()).Return([]domain.Order{
		{ID: "o1", Status: domain.StatusCreated},
	}, nil)
	require.NoError(t, s.FetchStaffOrders(ctx))

	mockRemote.EXPECT().AcceptOrder(gomock.Any(), "o1", "office-1").Return(
		nil, &remote.APIError{StatusCode: 409, Message: "order already claimed"})

	err := s.AcceptOrder(ctx, "o1", "office-1")
	require.Error(t, err)

	got, _ := s.Order("o1")
	assert.Equal(t, domain.StatusCreated, got.Status)
	assert.Equal(t, "order already claimed", s.LastError())
}

func TestFetchStaffOrdersFailClosed(t *testing.T) {
	ctx := context.Background()
	s, mockRemote := newStore(t)

	mockRemote.EXPECT().ListStaffOrders(gomock.Any()).Return([]domain.Order{
		{ID: "o1", Status: domain.StatusInCleaning},
		{ID: "o2", Status: domain.StatusCreated},
	}, nil)
	require.NoError(t, s.FetchStaffOrders(ctx))
	_, ok := s.Order("o1")
	require.True(t, ok)

	mockRemote.EXPECT().ListStaffOrders(gomock.Any()).Return(nil, errors.New("connection refused"))
	require.Error(t, s.FetchStaffOrders(ctx))

	// never the previous snapshot
	_, ok = s.Order("o1")
	assert.False(t, ok)
	_, ok = s.Order("o2")
	assert.False(t, ok)
	assert.NotEmpty(t, s.LastError())
}

func TestAcceptAssignmentNeverSetsStaffID(t *testing.T) {
	ctx := context.Background()
	s, mockRemote := newStore(t)

	expires := time.Now().Add(time.Hour)
	mockRemote.EXPECT().ListTemporaryAssignments(gomock.Any(), "office-1").Return(
		[]domain.TemporaryAssignment{
			{ID: "a1", OrderID: "o7", OfficeID: "office-1", ExpiresAt: expires},
		}, nil)
	require.NoError(t, s.FetchTemporaryAssignments(ctx, "office-1"))

	staffID := "staff-9"
	acceptedAt := time.Now()
	mockRemote.EXPECT().AcceptAssignment(gomock.Any(), "a1", "office-1").Return(
		&domain.TemporaryAssignment{
			ID: "a1", IsAccepted: true, AcceptedByStaffID: &staffID, AcceptedAt: &acceptedAt,
		}, nil)

	require.NoError(t, s.AcceptTemporaryAssignment(ctx, "a1", "office-1"))

	got, ok := s.Assignment("a1")
	require.True(t, ok)
	assert.True(t, got.IsAccepted)
	assert.Nil(t, got.AcceptedByStaffID)
	assert.Nil(t, got.AcceptedAt)
}

func TestAvailableViewDeduplicatesByOrderID(t *testing.T) {
	ctx := context.Background()
	s, mockRemote := newStore(t)
	now := time.Now()

	mockRemote.EXPECT().ListStaffOrders(gomock.Any()).Return([]domain.Order{
		{ID: "o1", Status: domain.StatusCreated},
		{ID: "o2", Status: domain.StatusInCleaning},
	}, nil)
	require.NoError(t, s.FetchStaffOrders(ctx))

	mockRemote.EXPECT().ListTemporaryAssignments(gomock.Any(), "office-1").Return(
		[]domain.TemporaryAssignment{
			{ID: "a1", OrderID: "o1", ExpiresAt: now.Add(time.Hour)},       // same order as o1
			{ID: "a2", OrderID: "o3", ExpiresAt: now.Add(time.Hour)},       // order unknown locally
			{ID: "a3", OrderID: "o4", ExpiresAt: now.Add(-time.Minute)},    // expired
			{ID: "a4", OrderID: "o5", IsAccepted: true, ExpiresAt: now.Add(time.Hour)}, // already taken
		}, nil)
	require.NoError(t, s.FetchTemporaryAssignments(ctx, "office-1"))

	items := s.Available(now)

	require.Len(t, items, 2)
	assert.Equal(t, "o1", items[0].OrderID)
	require.NotNil(t, items[0].Order)
	require.NotNil(t, items[0].Assignment)
	assert.Equal(t, "a1", items[0].Assignment.ID)

	assert.Equal(t, "o3", items[1].OrderID)
	assert.Nil(t, items[1].Order)
	require.NotNil(t, items[1].Assignment)
}

func TestAcceptThenRefreshSettlesOnAwaitingPickup(t *testing.T) {
	ctx := context.Background()

	run := func(t *testing.T, acceptFirst bool) {
		s, mockRemote := newStore(t)

		mockRemote.EXPECT().ListStaffOrders(gomock.Any()).Return([]domain.Order{
			{ID: "o1", Status: domain.StatusCreated},
		}, nil)
		require.NoError(t, s.FetchStaffOrders(ctx))

		accept := func() {
			mockRemote.EXPECT().AcceptOrder(gomock.Any(), "o1", "office-1").Return(nil, nil)
			require.NoError(t, s.AcceptOrder(ctx, "o1", "office-1"))
		}
		refresh := func() {
			mockRemote.EXPECT().ListStaffOrders(gomock.Any()).Return([]domain.Order{
				{ID: "o1", Status: domain.StatusAwaitingPickup},
			}, nil)
			require.NoError(t, s.FetchStaffOrders(ctx))
		}

		if acceptFirst {
			accept()
			refresh()
		} else {
			refresh()
			accept()
		}

		got, ok := s.Order("o1")
		require.True(t, ok)
		assert.Equal(t, domain.StatusAwaitingPickup, got.Status)
	}

	t.Run("accept then refresh", func(t *testing.T) { run(t, true) })
	t.Run("refresh then accept", func(t *testing.T) { run(t, false) })
}

func TestUpdateOrderStatusFailureKeepsStatusAndSetsError(t *testing.T) {
	ctx := context.Background()
	s, mockRemote := newStore(t)

	mockRemote.EXPECT().ListStaffOrders(gomock.Any()).Return([]domain.Order{
		{ID: "o1", Status: domain.StatusAwaitingPickup},
	}, nil)
	require.NoError(t, s.FetchStaffOrders(ctx))

	mockRemote.EXPECT().
		UpdateOrderStatus(gomock.Any(), "o1", domain.StatusPickedUp, "note").
		Return(errors.New("dial tcp: connection refused"))

	err := s.UpdateOrderStatus(ctx, "o1", domain.StatusPickedUp, "note")
	require.Error(t, err)

	got, _ := s.Order("o1")
	assert.Equal(t, domain.StatusAwaitingPickup, got.Status)
	assert.NotEmpty(t, s.LastError())

	// failure lands on the centralized notification channel as well
	select {
	case n := <-s.Notifications():
		assert.Equal(t, "update_status", n.Operation)
		assert.NotEmpty(t, n.Message)
	default:
		t.Fatal("expected a notification for the failed status update")
	}
}

func TestUpdateOrderStatusSuccessPatchesRequestedValue(t *testing.T) {
	ctx := context.Background()
	s, mockRemote := newStore(t)

	mockRemote.EXPECT().ListStaffOrders(gomock.Any()).Return([]domain.Order{
		{ID: "o1", Status: domain.StatusOutForDelivery},
	}, nil)
	require.NoError(t, s.FetchStaffOrders(ctx))

	mockRemote.EXPECT().
		UpdateOrderStatus(gomock.Any(), "o1", domain.StatusDelivered, "").
		Return(nil)
	require.NoError(t, s.UpdateOrderStatus(ctx, "o1", domain.StatusDelivered, ""))

	got, _ := s.Order("o1")
	assert.Equal(t, domain.StatusDelivered, got.Status)

	completed := s.Completed()
	require.Len(t, completed, 1)
	assert.Equal(t, "o1", completed[0].ID)
}

func TestHistoryRecorderMirrorsStatusChanges(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRemote := mock_store.NewMockRemoteClient(ctrl)
	mockHistory := mock_store.NewMockHistoryRecorder(ctrl)
	s := store.New(mockRemote, mockHistory, zap.NewNop())

	mockRemote.EXPECT().ListStaffOrders(gomock.Any()).Return([]domain.Order{
		{ID: "o1", Status: domain.StatusAwaitingPickup},
	}, nil)
	require.NoError(t, s.FetchStaffOrders(ctx))

	mockRemote.EXPECT().UpdateOrderStatus(gomock.Any(), "o1", domain.StatusPickedUp, "").Return(nil)
	mockHistory.EXPECT().
		Record(gomock.Any(), "o1", domain.StatusPickedUp, gomock.Any()).
		Return(nil)

	require.NoError(t, s.UpdateOrderStatus(ctx, "o1", domain.StatusPickedUp, ""))
}

func TestHistoryRecorderFailureDoesNotFailMutation(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRemote := mock_store.NewMockRemoteClient(ctrl)
	mockHistory := mock_store.NewMockHistoryRecorder(ctrl)
	s := store.New(mockRemote, mockHistory, zap.NewNop())

	mockRemote.EXPECT().ListStaffOrders(gomock.Any()).Return([]domain.Order{
		{ID: "o1", Status: domain.StatusAwaitingPickup},
	}, nil)
	require.NoError(t, s.FetchStaffOrders(ctx))

	mockRemote.EXPECT().UpdateOrderStatus(gomock.Any(), "o1", domain.StatusPickedUp, "").Return(nil)
	mockHistory.EXPECT().
		Record(gomock.Any(), "o1", domain.StatusPickedUp, gomock.Any()).
		Return(errors.New("history table unavailable"))

	assert.NoError(t, s.UpdateOrderStatus(ctx, "o1", domain.StatusPickedUp, ""))
}

func TestFetchUserAcceptedOrdersIndependentOfOfficeListing(t *testing.T) {
	ctx := context.Background()
	s, mockRemote := newStore(t)

	mockRemote.EXPECT().ListUserOrders(gomock.Any(), "u1").Return([]domain.Order{
		{ID: "o5", Status: domain.StatusInCleaning},
	}, nil)
	require.NoError(t, s.FetchUserAcceptedOrders(ctx, "u1"))
	assert.Len(t, s.UserOrders("u1"), 1)

	// a failing office listing empties the office table but not the user list
	mockRemote.EXPECT().ListStaffOrders(gomock.Any()).Return(nil, errors.New("boom"))
	require.Error(t, s.FetchStaffOrders(ctx))
	assert.Len(t, s.UserOrders("u1"), 1)

	mockRemote.EXPECT().ListUserOrders(gomock.Any(), "u1").Return(nil, errors.New("boom"))
	require.Error(t, s.FetchUserAcceptedOrders(ctx, "u1"))
	assert.Empty(t, s.UserOrders("u1"))
}
