package repository

import (
	"context"
	"errors"
	"fmt"

	"work_market/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// UserRepository defines operations for user data
type UserRepository interface {
	Insert(ctx context.Context, user *model.User) error
	FindAll(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

// Insert adds a new user. The id comes from the client, so a collision maps
// to ErrDuplicateID rather than a generic database error.
func (r *userRepository) Insert(ctx context.Context, u *model.User) error {
	sql, args, err := psql.Insert("users").
		Columns("id", "first_name", "last_name", "age", "email", "role", "phone").
		Values(u.ID, u.FirstName, u.LastName, u.Age, u.Email, u.Role, u.Phone).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert user query: %w", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateID
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// FindAll returns every user. The slice is non-nil even when the table is
// empty so the HTTP layer serializes it as [].
func (r *userRepository) FindAll(ctx context.Context) ([]model.User, error) {
	sql, _, err := psql.Select("id", "first_name", "last_name", "age", "email", "role", "phone").
		From("users").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select users query: %w", err)
	}
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Age, &u.Email, &u.Role, &u.Phone); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

// FindByID retrieves a user by id, (nil, nil) when absent.
func (r *userRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	sql, args, err := psql.Select("id", "first_name", "last_name", "age", "email", "role", "phone").
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select user query: %w", err)
	}
	u := &model.User{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Age, &u.Email, &u.Role, &u.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}
	return u, nil
}

// Update overwrites the row selected by the entity's id.
func (r *userRepository) Update(ctx context.Context, u *model.User) error {
	sql, args, err := psql.Update("users").
		Set("first_name", u.FirstName).
		Set("last_name", u.LastName).
		Set("age", u.Age).
		Set("email", u.Email).
		Set("role", u.Role).
		Set("phone", u.Phone).
		Where(sq.Eq{"id": u.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update user query: %w", err)
	}
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a user by id.
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := psql.Delete("users").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete user query: %w", err)
	}
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Count reports how many users are stored.
func (r *userRepository) Count(ctx context.Context) (int64, error) {
	sql, _, err := psql.Select("COUNT(*)").From("users").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count users query: %w", err)
	}
	var count int64
	if err := r.db.QueryRow(ctx, sql).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
