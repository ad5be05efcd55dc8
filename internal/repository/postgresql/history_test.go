package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_db "github.com/washpoint/staffops/internal/db/mocks"
	"github.com/washpoint/staffops/internal/domain"
	"github.com/washpoint/staffops/internal/repository"
	"github.com/washpoint/staffops/internal/repository/postgresql"
)

func TestHistoryRepo_Record(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_db.NewMockDB(ctrl)
		repo := postgresql.NewHistoryRepo(mockDB)

		changedAt := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

		mockDB.EXPECT().Exec(
			gomock.Any(),
			gomock.Any(),
			gomock.Eq("o1"),
			gomock.Eq("PICKED_UP"),
			gomock.Eq(changedAt),
		).Return(nil, nil)

		err := repo.Record(ctx, "o1", domain.StatusPickedUp, changedAt)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_db.NewMockDB(ctrl)
		repo := postgresql.NewHistoryRepo(mockDB)

		expectedErr := errors.New("database error")
		mockDB.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, expectedErr)

		err := repo.Record(ctx, "o1", domain.StatusPickedUp, time.Now())
		assert.Equal(t, expectedErr, err)
	})
}

func TestHistoryRepo_GetByOrderID(t *testing.T) {
	ctx := context.Background()

	t.Run("entries found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_db.NewMockDB(ctrl)
		repo := postgresql.NewHistoryRepo(mockDB)

		expected := []*repository.HistoryEntry{
			{ID: 1, OrderID: "o1", Status: "AWAITING_PICKUP"},
			{ID: 2, OrderID: "o1", Status: "PICKED_UP"},
		}

		mockDB.EXPECT().
			Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Eq("o1")).
			DoAndReturn(func(_ context.Context, dest *[]*repository.HistoryEntry, _ string, _ ...interface{}) error {
				*dest = expected
				return nil
			})

		entries, err := repo.GetByOrderID(ctx, "o1")
		assert.NoError(t, err)
		assert.Equal(t, expected, entries)
	})

	t.Run("database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_db.NewMockDB(ctrl)
		repo := postgresql.NewHistoryRepo(mockDB)

		mockDB.EXPECT().
			Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := repo.GetByOrderID(ctx, "o1")
		assert.Error(t, err)
	})
}
