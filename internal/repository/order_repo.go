package repository

import (
	"context"
	"errors"
	"fmt"

	"work_market/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var orderColumns = []string{
	"id", "name", "description", "start_date", "end_date",
	"address", "price", "customer_id", "executor_id",
}

// OrderRepository defines operations for order data
type OrderRepository interface {
	Insert(ctx context.Context, order *model.Order) error
	FindAll(ctx context.Context) ([]model.Order, error)
	FindByID(ctx context.Context, id int64) (*model.Order, error)
	Update(ctx context.Context, order *model.Order) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type orderRepository struct {
	db DB
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Insert(ctx context.Context, o *model.Order) error {
	sql, args, err := psql.Insert("orders").
		Columns(orderColumns...).
		Values(o.ID, o.Name, o.Description, o.StartDate, o.EndDate, o.Address, o.Price, o.CustomerID, o.ExecutorID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert order query: %w", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateID
		}
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *orderRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	sql, _, err := psql.Select(orderColumns...).From("orders").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select orders query: %w", err)
	}
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := make([]model.Order, 0)
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.Name, &o.Description, &o.StartDate, &o.EndDate, &o.Address, &o.Price, &o.CustomerID, &o.ExecutorID); err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}
	return orders, nil
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (*model.Order, error) {
	sql, args, err := psql.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select order query: %w", err)
	}
	o := &model.Order{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&o.ID, &o.Name, &o.Description, &o.StartDate, &o.EndDate, &o.Address, &o.Price, &o.CustomerID, &o.ExecutorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find order by id: %w", err)
	}
	return o, nil
}

func (r *orderRepository) Update(ctx context.Context, o *model.Order) error {
	sql, args, err := psql.Update("orders").
		Set("name", o.Name).
		Set("description", o.Description).
		Set("start_date", o.StartDate).
		Set("end_date", o.EndDate).
		Set("address", o.Address).
		Set("price", o.Price).
		Set("customer_id", o.CustomerID).
		Set("executor_id", o.ExecutorID).
		Where(sq.Eq{"id": o.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update order query: %w", err)
	}
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := psql.Delete("orders").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete order query: %w", err)
	}
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *orderRepository) Count(ctx context.Context) (int64, error) {
	sql, _, err := psql.Select("COUNT(*)").From("orders").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count orders query: %w", err)
	}
	var count int64
	if err := r.db.QueryRow(ctx, sql).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}
