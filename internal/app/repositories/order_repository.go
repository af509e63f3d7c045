package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tolgahan/campusstock/internal/app/models"
)

// OrderRepository reads legacy purchase snapshots. Orders predate the
// per-student item map and have no write paths anymore.
type OrderRepository struct {
	db *pgxpool.Pool
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{
		db: db,
	}
}

// ListByStudentIDs retrieves the orders of the given students, grouped
// by student ID. Students without orders have no map entry.
func (r *OrderRepository) ListByStudentIDs(ctx context.Context, studentIDs []int64) (map[int64][]*models.Order, error) {
	result := make(map[int64][]*models.Order)
	if len(studentIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT id, student_id, items, payment_method, total_price, is_paid, paid_at, created_at
		FROM orders
		WHERE student_id = ANY($1)
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, studentIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var order models.Order
		err := rows.Scan(
			&order.ID,
			&order.StudentID,
			&order.Items,
			&order.PaymentMethod,
			&order.TotalPrice,
			&order.IsPaid,
			&order.PaidAt,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		result[order.StudentID] = append(result[order.StudentID], &order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
