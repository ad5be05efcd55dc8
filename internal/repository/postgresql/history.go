package postgresql

import (
	"context"
	"time"

	"github.com/washpoint/staffops/internal/db"
	"github.com/washpoint/staffops/internal/domain"
	"github.com/washpoint/staffops/internal/repository"
)

// HistoryRepo mirrors observed order status changes into postgres for the
// reports screens.
type HistoryRepo struct {
	db db.DB
}

func NewHistoryRepo(db db.DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

// Record implements store.HistoryRecorder.
func (r *HistoryRepo) Record(ctx context.Context, orderID string, status domain.OrderStatus, changedAt time.Time) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO order_history (
            order_id, status, changed_at
        ) VALUES ($1, $2, $3)
    `, orderID, string(status), changedAt)
	return err
}

func (r *HistoryRepo) GetByOrderID(ctx context.Context, orderID string) ([]*repository.HistoryEntry, error) {
	var entries []*repository.HistoryEntry
	err := r.db.Select(ctx, &entries, `
        SELECT * FROM order_history
        WHERE order_id = $1
        ORDER BY changed_at ASC
    `, orderID)
	return entries, err
}
