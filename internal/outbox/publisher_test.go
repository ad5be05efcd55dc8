package outbox

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	mock_db "github.com/washpoint/staffops/internal/db/mocks"
	mock_outbox "github.com/washpoint/staffops/internal/outbox/mocks"
	"github.com/washpoint/staffops/internal/repository"
)

func TestSinkPersistCreatesOneTaskPerPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := mock_db.NewMockDB(ctrl)
	mockRepo := mock_outbox.NewMockTaskRepository(ctrl)

	sink := NewSink(mockDB, mockRepo, "staff_audit_events")

	var seen []string
	mockRepo.EXPECT().Create(gomock.Any(), mockDB, gomock.Any()).Times(2).
		DoAndReturn(func(_ context.Context, _ interface{}, task *repository.OutboxTask) error {
			assert.Equal(t, "staff_audit_events", task.Topic)
			seen = append(seen, string(task.Payload))
			return nil
		})

	err := sink.Persist(context.Background(), []json.RawMessage{
		json.RawMessage(`{"handler":"handleAcceptOrder"}`),
		json.RawMessage(`{"handler":"handleUpdateOrderStatus"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		`{"handler":"handleAcceptOrder"}`,
		`{"handler":"handleUpdateOrderStatus"}`,
	}, seen)
}

func TestSinkPersistStopsOnFirstFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := mock_db.NewMockDB(ctrl)
	mockRepo := mock_outbox.NewMockTaskRepository(ctrl)

	sink := NewSink(mockDB, mockRepo, "staff_audit_events")

	mockRepo.EXPECT().Create(gomock.Any(), mockDB, gomock.Any()).Return(assert.AnError)

	err := sink.Persist(context.Background(), []json.RawMessage{
		json.RawMessage(`{}`),
		json.RawMessage(`{}`),
	})
	require.Error(t, err)
}

func TestProcessBatchSendsAndMarksDone(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := mock_db.NewMockDB(ctrl)
	mockTx := mock_db.NewMockTx(ctrl)
	mockRepo := mock_outbox.NewMockTaskRepository(ctrl)
	mockProducer := mock_outbox.NewMockProducer(ctrl)

	taskID := uuid.New()
	task := &repository.OutboxTask{
		ID:      taskID,
		Status:  repository.TaskStatusCreated,
		Payload: json.RawMessage(`{"handler":"handleAcceptOrder"}`),
		Topic:   "staff_audit_events",
	}

	mockDB.EXPECT().BeginTx(gomock.Any()).Return(mockTx, nil)
	mockRepo.EXPECT().GetProcessableTasksTx(gomock.Any(), mockTx, 10).
		Return([]*repository.OutboxTask{task}, nil)
	mockRepo.EXPECT().UpdateTaskStatusTx(gomock.Any(), mockTx, taskID,
		repository.TaskStatusProcessing, 0, nil, nil).Return(nil)
	mockTx.EXPECT().Commit(gomock.Any()).Return(nil)
	mockTx.EXPECT().Rollback(gomock.Any()).Return(nil)

	mockProducer.EXPECT().
		SendMessage(gomock.Any(), "staff_audit_events", []byte(taskID.String()), []byte(task.Payload)).
		Return(nil)
	mockRepo.EXPECT().UpdateTaskStatus(gomock.Any(), mockDB, taskID,
		repository.TaskStatusDone, 0, nil, gomock.Not(gomock.Nil())).Return(nil)

	publisher := NewPublisher(mockDB, mockRepo, mockProducer, PublisherConfig{
		BatchSize:   10,
		MaxAttempts: 5,
	}, zap.NewNop())

	require.NoError(t, publisher.processBatch(context.Background()))
}

func TestProcessSingleTaskMarksFailedWithAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := mock_db.NewMockDB(ctrl)
	mockRepo := mock_outbox.NewMockTaskRepository(ctrl)
	mockProducer := mock_outbox.NewMockProducer(ctrl)

	taskID := uuid.New()
	task := &repository.OutboxTask{
		ID:       taskID,
		Payload:  json.RawMessage(`{}`),
		Topic:    "staff_audit_events",
		Attempts: 2,
	}

	mockProducer.EXPECT().
		SendMessage(gomock.Any(), "staff_audit_events", gomock.Any(), gomock.Any()).
		Return(assert.AnError)
	mockRepo.EXPECT().
		UpdateTaskStatus(gomock.Any(), mockDB, taskID, repository.TaskStatusFailed, 3,
			gomock.Not(gomock.Nil()), nil).
		Return(nil)

	publisher := NewPublisher(mockDB, mockRepo, mockProducer, PublisherConfig{
		BatchSize:   10,
		MaxAttempts: 5,
	}, zap.NewNop())

	err := publisher.processSingleTask(context.Background(), task)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestProcessBatchNoTasks(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB := mock_db.NewMockDB(ctrl)
	mockTx := mock_db.NewMockTx(ctrl)
	mockRepo := mock_outbox.NewMockTaskRepository(ctrl)
	mockProducer := mock_outbox.NewMockProducer(ctrl)

	mockDB.EXPECT().BeginTx(gomock.Any()).Return(mockTx, nil)
	mockRepo.EXPECT().GetProcessableTasksTx(gomock.Any(), mockTx, 10).Return(nil, nil)
	mockTx.EXPECT().Commit(gomock.Any()).Return(nil)
	mockTx.EXPECT().Rollback(gomock.Any()).Return(nil)

	publisher := NewPublisher(mockDB, mockRepo, mockProducer, PublisherConfig{BatchSize: 10}, zap.NewNop())

	require.NoError(t, publisher.processBatch(context.Background()))
}
