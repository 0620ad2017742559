package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AswiniParameswaran/GreenCart-System/internal/apperr"
	"github.com/AswiniParameswaran/GreenCart-System/internal/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "order_id", "product_id", "user_id", "quantity",
		"unit_price", "line_total", "status", "created_at",
	})
}

func TestRepository_CreateOrderTx(t *testing.T) {
	ctx := context.Background()

	newOrder := func() *Order {
		return &Order{
			TotalPrice: decimal.RequireFromString("19.97"),
			Items: []OrderItem{
				{ProductID: 10, UserID: 2, Quantity: 3, UnitPrice: decimal.RequireFromString("4.99"), LineTotal: decimal.RequireFromString("14.97"), Status: StatusPending},
				{ProductID: 11, UserID: 2, Quantity: 2, UnitPrice: decimal.RequireFromString("2.50"), LineTotal: decimal.RequireFromString("5.00"), Status: StatusPending},
			},
		}
	}

	t.Run("CommitsOrderAndItemsTogether", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)
		o := newOrder()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(100, time.Now()))
		mock.ExpectQuery(`INSERT INTO order_items`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1001, time.Now()))
		mock.ExpectQuery(`INSERT INTO order_items`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1002, time.Now()))
		mock.ExpectCommit()

		require.NoError(t, repo.CreateOrderTx(ctx, o))
		assert.Equal(t, uint(100), o.ID)
		assert.Equal(t, uint(100), o.Items[0].OrderID)
		assert.Equal(t, uint(1001), o.Items[0].ID)
		assert.Equal(t, uint(1002), o.Items[1].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollsBackWhenItemInsertFails", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO orders`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(100, time.Now()))
		mock.ExpectQuery(`INSERT INTO order_items`).
			WillReturnError(errors.New("constraint violation"))
		mock.ExpectRollback()

		err = repo.CreateOrderTx(ctx, newOrder())
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetOrderItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM order_items oi\s+WHERE oi.id = \$1`).
			WithArgs(uint(5)).
			WillReturnRows(itemRows().AddRow(5, 100, 10, 2, 3, "4.99", "14.97", "PENDING", time.Now()))

		item, err := repo.GetOrderItem(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, uint(5), item.ID)
		assert.Equal(t, StatusPending, item.Status)
		assert.True(t, item.UnitPrice.Equal(decimal.RequireFromString("4.99")))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .* FROM order_items oi`).
			WithArgs(uint(99)).
			WillReturnRows(itemRows())

		_, err := repo.GetOrderItem(ctx, 99)
		assert.True(t, apperr.IsKind(err, apperr.NotFound))
	})
}

func TestRepository_UpdateOrderItemStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE order_items SET status = \$1 WHERE id = \$2`).
			WithArgs(StatusShipped, uint(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateOrderItemStatus(ctx, 5, StatusShipped))
	})

	t.Run("NoRowMatched", func(t *testing.T) {
		mock.ExpectExec(`UPDATE order_items SET status = \$1 WHERE id = \$2`).
			WithArgs(StatusShipped, uint(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateOrderItemStatus(ctx, 99, StatusShipped)
		assert.True(t, apperr.IsKind(err, apperr.NotFound))
	})
}

func TestRepository_QueryOrderItems(t *testing.T) {
	ctx := context.Background()

	t.Run("NoCriteria", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM order_items oi`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
		mock.ExpectQuery(`SELECT .* FROM order_items oi ORDER BY oi.created_at DESC, oi.id DESC LIMIT \$1 OFFSET \$2`).
			WithArgs(10, 0).
			WillReturnRows(itemRows().
				AddRow(2, 100, 10, 2, 1, "4.99", "4.99", "PENDING", time.Now()).
				AddRow(1, 100, 11, 2, 2, "2.50", "5.00", "SHIPPED", time.Now()))

		items, total, err := repo.QueryOrderItems(ctx, FilterCriteria{}, PageRequest{Size: 10})
		require.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, int64(25), total)
	})

	t.Run("CriteriaSharedByCountAndPage", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)
		pending := StatusPending
		criteria := FilterCriteria{Status: &pending, OwnerID: utils.UintPtr(2)}

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM order_items oi WHERE oi.status = \$1 AND oi.user_id = \$2`).
			WithArgs(pending, uint(2)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery(`SELECT .* FROM order_items oi WHERE oi.status = \$1 AND oi.user_id = \$2 ORDER BY oi.created_at DESC, oi.id DESC LIMIT \$3 OFFSET \$4`).
			WithArgs(pending, uint(2), 10, 0).
			WillReturnRows(itemRows().
				AddRow(1, 100, 10, 2, 1, "4.99", "4.99", "PENDING", time.Now()))

		items, total, err := repo.QueryOrderItems(ctx, criteria, PageRequest{Size: 10})
		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, int64(1), total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CountError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM order_items oi`).
			WillReturnError(errors.New("db error"))

		_, _, err = repo.QueryOrderItems(ctx, FilterCriteria{}, PageRequest{Size: 10})
		assert.Error(t, err)
	})
}
