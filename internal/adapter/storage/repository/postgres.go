package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/aazhiproducts/checkout/internal/adapter/storage"
	"github.com/aazhiproducts/checkout/internal/core/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

func (or *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, or.db, func(tx pgx.Tx) error {
		orderSt := or.db.QueryBuilder.Insert("orders").
			Columns("order_number", "customer_name", "customer_email", "customer_phone",
				"customer_address", "customer_state", "total_amount", "payment_status",
				"created_at", "updated_at").
			Values(order.Number, order.CustomerName, order.CustomerEmail, order.CustomerPhone,
				order.CustomerAddress, order.CustomerState, order.TotalAmount, order.PaymentStatus,
				order.CreatedAt, order.UpdatedAt)

		sql, args, err := orderSt.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}

		for _, item := range order.Items {
			itemSt := or.db.QueryBuilder.Insert("order_items").
				Columns("order_number", "product_name", "product_size", "quantity", "price", "line_total").
				Values(order.Number, item.ProductName, item.ProductSize, item.Quantity, item.Price, item.LineTotal)

			sql, args, err = itemSt.ToSql()
			if err != nil {
				return err
			}

			_, err = tx.Exec(ctx, sql, args...)
			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return order, nil
}

func (or *Repository) ReadOrder(ctx context.Context, number domain.OrderNumber) (*domain.Order, error) {
	statement := or.db.QueryBuilder.
		Select("order_number", "customer_name", "customer_email", "customer_phone",
			"customer_address", "customer_state", "total_amount", "payment_status",
			"phonepe_order_id", "error_message", "created_at", "updated_at", "payment_completed_at").
		From("orders").
		Where(sq.Eq{"order_number": number})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}

	err = or.db.QueryRow(ctx, sql, args...).Scan(
		&order.Number,
		&order.CustomerName,
		&order.CustomerEmail,
		&order.CustomerPhone,
		&order.CustomerAddress,
		&order.CustomerState,
		&order.TotalAmount,
		&order.PaymentStatus,
		&order.PhonePeOrderID,
		&order.ErrorMessage,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.PaymentCompletedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	items, err := or.readItems(ctx, number)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return &order, nil
}

func (or *Repository) readItems(ctx context.Context, number domain.OrderNumber) ([]domain.OrderItem, error) {
	statement := or.db.QueryBuilder.
		Select("product_name", "product_size", "quantity", "price", "line_total").
		From("order_items").
		Where(sq.Eq{"order_number": number}).
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := or.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		item := domain.OrderItem{}
		err := rows.Scan(
			&item.ProductName,
			&item.ProductSize,
			&item.Quantity,
			&item.Price,
			&item.LineTotal,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (or *Repository) SetGatewayReference(ctx context.Context, number domain.OrderNumber, phonepeOrderID string) error {
	statement := or.db.QueryBuilder.Update("orders").
		Set("phonepe_order_id", phonepeOrderID).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"order_number": number})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := or.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

// TransitionPaymentStatus performs the conditional status write. The WHERE
// clause refuses the update when the stored status is already terminal or
// already equals the target, so the affected-row count tells the caller
// whether it won the transition.
func (or *Repository) TransitionPaymentStatus(ctx context.Context, number domain.OrderNumber,
	to domain.PaymentStatus, phonepeOrderID string, errorCode string) (bool, error) {
	now := time.Now()

	statement := or.db.QueryBuilder.Update("orders").
		Set("payment_status", to).
		Set("updated_at", now).
		Where(sq.Eq{"order_number": number}).
		Where(sq.NotEq{"payment_status": []domain.PaymentStatus{
			domain.PaymentStatusSuccess, domain.PaymentStatusFailed}}).
		Where(sq.NotEq{"payment_status": to})

	if phonepeOrderID != "" {
		statement = statement.Set("phonepe_order_id", phonepeOrderID)
	}
	if errorCode != "" {
		statement = statement.Set("error_message", errorCode)
	}
	if to == domain.PaymentStatusSuccess {
		statement = statement.Set("payment_completed_at", now)
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return false, err
	}

	tag, err := or.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() == 1, nil
}

func (or *Repository) ListOrdersByStatus(ctx context.Context, statuses []domain.PaymentStatus) ([]*domain.Order, error) {
	statement := or.db.QueryBuilder.
		Select("order_number", "customer_name", "customer_email", "total_amount",
			"payment_status", "phonepe_order_id", "created_at", "updated_at").
		From("orders").
		Where(sq.Eq{"payment_status": statuses}).
		OrderBy("created_at")

	return or.listOrders(ctx, statement)
}

func (or *Repository) ListRecentOrders(ctx context.Context, limit int) ([]*domain.Order, error) {
	statement := or.db.QueryBuilder.
		Select("order_number", "customer_name", "customer_email", "total_amount",
			"payment_status", "phonepe_order_id", "created_at", "updated_at").
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(limit))

	return or.listOrders(ctx, statement)
}

func (or *Repository) listOrders(ctx context.Context, statement sq.SelectBuilder) ([]*domain.Order, error) {
	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := or.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order := domain.Order{}
		err := rows.Scan(
			&order.Number,
			&order.CustomerName,
			&order.CustomerEmail,
			&order.TotalAmount,
			&order.PaymentStatus,
			&order.PhonePeOrderID,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &order)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}
