package repository

import (
	"context"
	"errors"
	"fmt"

	"work_market/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// OfferRepository defines operations for offer data
type OfferRepository interface {
	Insert(ctx context.Context, offer *model.Offer) error
	FindAll(ctx context.Context) ([]model.Offer, error)
	FindByID(ctx context.Context, id int64) (*model.Offer, error)
	Update(ctx context.Context, offer *model.Offer) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type offerRepository struct {
	db DB
}

// NewOfferRepository creates a new OfferRepository
func NewOfferRepository(db DB) OfferRepository {
	return &offerRepository{db: db}
}

func (r *offerRepository) Insert(ctx context.Context, o *model.Offer) error {
	sql, args, err := psql.Insert("offers").
		Columns("id", "order_id", "executor_id").
		Values(o.ID, o.OrderID, o.ExecutorID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert offer query: %w", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateID
		}
		return fmt.Errorf("failed to insert offer: %w", err)
	}
	return nil
}

func (r *offerRepository) FindAll(ctx context.Context) ([]model.Offer, error) {
	sql, _, err := psql.Select("id", "order_id", "executor_id").From("offers").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select offers query: %w", err)
	}
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query offers: %w", err)
	}
	defer rows.Close()

	offers := make([]model.Offer, 0)
	for rows.Next() {
		var o model.Offer
		if err := rows.Scan(&o.ID, &o.OrderID, &o.ExecutorID); err != nil {
			return nil, fmt.Errorf("failed to scan offer row: %w", err)
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating offer rows: %w", err)
	}
	return offers, nil
}

func (r *offerRepository) FindByID(ctx context.Context, id int64) (*model.Offer, error) {
	sql, args, err := psql.Select("id", "order_id", "executor_id").
		From("offers").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select offer query: %w", err)
	}
	o := &model.Offer{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&o.ID, &o.OrderID, &o.ExecutorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find offer by id: %w", err)
	}
	return o, nil
}

func (r *offerRepository) Update(ctx context.Context, o *model.Offer) error {
	sql, args, err := psql.Update("offers").
		Set("order_id", o.OrderID).
		Set("executor_id", o.ExecutorID).
		Where(sq.Eq{"id": o.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update offer query: %w", err)
	}
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update offer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *offerRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := psql.Delete("offers").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete offer query: %w", err)
	}
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to delete offer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *offerRepository) Count(ctx context.Context) (int64, error) {
	sql, _, err := psql.Select("COUNT(*)").From("offers").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count offers query: %w", err)
	}
	var count int64
	if err := r.db.QueryRow(ctx, sql).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count offers: %w", err)
	}
	return count, nil
}
