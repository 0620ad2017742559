package order

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/AswiniParameswaran/GreenCart-System/internal/apperr"
	"github.com/AswiniParameswaran/GreenCart-System/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	CreateOrderTx(ctx context.Context, o *Order) error
	GetOrderItem(ctx context.Context, id uint) (*OrderItem, error)
	UpdateOrderItemStatus(ctx context.Context, id uint, status OrderStatus) error
	QueryOrderItems(ctx context.Context, criteria FilterCriteria, page PageRequest) ([]OrderItem, int64, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// CreateOrderTx writes the order and all its items in one transaction; a
// partially written order is never observable.
func (r *repository) CreateOrderTx(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (total_price)
		VALUES ($1)
		RETURNING id, created_at
	`, o.TotalPrice).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return err
	}

	for i := range o.Items {
		item := &o.Items[i]
		item.OrderID = o.ID

		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, product_id, user_id, quantity, unit_price, line_total, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at
		`,
			item.OrderID,
			item.ProductID,
			item.UserID,
			item.Quantity,
			item.UnitPrice,
			item.LineTotal,
			item.Status,
		).Scan(&item.ID, &item.CreatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

const orderItemColumns = `oi.id, oi.order_id, oi.product_id, oi.user_id, oi.quantity, oi.unit_price, oi.line_total, oi.status, oi.created_at`

func scanOrderItem(row interface{ Scan(...any) error }) (*OrderItem, error) {
	var item OrderItem
	err := row.Scan(
		&item.ID,
		&item.OrderID,
		&item.ProductID,
		&item.UserID,
		&item.Quantity,
		&item.UnitPrice,
		&item.LineTotal,
		&item.Status,
		&item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) GetOrderItem(ctx context.Context, id uint) (*OrderItem, error) {
	item, err := scanOrderItem(r.db.QueryRowContext(ctx, `
		SELECT `+orderItemColumns+`
		FROM order_items oi
		WHERE oi.id = $1
	`, id))

	if err == sql.ErrNoRows {
		return nil, apperr.New(apperr.NotFound, "order item not found")
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *repository) UpdateOrderItemStatus(ctx context.Context, id uint, status OrderStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE order_items SET status = $1 WHERE id = $2
	`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.New(apperr.NotFound, "order item not found")
	}
	return nil
}

// QueryOrderItems compiles the criteria into a WHERE fragment shared by the
// count and page queries. Ordering is newest first with id as tie-break so
// identical criteria always yield the identical sequence.
func (r *repository) QueryOrderItems(ctx context.Context, criteria FilterCriteria, page PageRequest) ([]OrderItem, int64, error) {
	where, args := CompileWhere(criteria.Clauses())
	limit, offset := page.LimitOffset()

	log := logger.FromCtx(ctx).With(
		zap.String("method", "QueryOrderItems"),
		zap.Int("page", page.Page),
		zap.Int("size", page.Size),
	)

	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM order_items oi`+where, args...).Scan(&total)
	if err != nil {
		log.Error("failed to count order items", zap.Error(err))
		return nil, 0, err
	}

	query := `SELECT ` + orderItemColumns + ` FROM order_items oi` + where +
		` ORDER BY oi.created_at DESC, oi.id DESC` +
		fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query order items", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		item, err := scanOrderItem(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	log.Debug("order items queried", zap.Int("count", len(items)), zap.Int64("total", total))
	return items, total, nil
}
