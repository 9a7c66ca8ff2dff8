package repository_test

import (
	"context"
	"testing"

	"work_market/internal/model"
	"work_market/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderColumns = []string{
	"id", "name", "description", "start_date", "end_date",
	"address", "price", "customer_id", "executor_id",
}

func testOrder() *model.Order {
	return &model.Order{
		ID:          10,
		Name:        "paint fence",
		Description: "",
		StartDate:   "2024-01-01",
		EndDate:     "2024-01-02",
		Address:     "1 Main St",
		Price:       100,
		CustomerID:  1,
		ExecutorID:  2,
	}
}

func TestOrderRepository_InsertThenFindByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	o := testOrder()
	mock.ExpectExec("INSERT INTO orders").
		WithArgs(o.ID, o.Name, o.Description, o.StartDate, o.EndDate, o.Address, o.Price, o.CustomerID, o.ExecutorID).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("SELECT (.+) FROM orders WHERE").
		WithArgs(o.ID).
		WillReturnRows(pgxmock.NewRows(orderColumns).
			AddRow(o.ID, o.Name, o.Description, o.StartDate, o.EndDate, o.Address, o.Price, o.CustomerID, o.ExecutorID))

	repo := repository.NewOrderRepository(mock)
	require.NoError(t, repo.Insert(context.Background(), o))

	found, err := repo.FindByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, o, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_FindByID_Absent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM orders WHERE").
		WithArgs(int64(99)).
		WillReturnError(pgx.ErrNoRows)

	repo := repository.NewOrderRepository(mock)
	found, err := repo.FindByID(context.Background(), 99)

	require.NoError(t, err)
	assert.Nil(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_Update_NoUpsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	o := testOrder()
	o.ID = 99
	mock.ExpectExec("UPDATE orders SET").
		WithArgs(o.Name, o.Description, o.StartDate, o.EndDate, o.Address, o.Price, o.CustomerID, o.ExecutorID, o.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	repo := repository.NewOrderRepository(mock)
	err = repo.Update(context.Background(), o)

	// An update against a missing id reports not found, it never inserts.
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_FindAll_EmptyTableReturnsEmptySlice(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT (.+) FROM orders").
		WillReturnRows(pgxmock.NewRows(orderColumns))

	repo := repository.NewOrderRepository(mock)
	orders, err := repo.FindAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
	assert.NoError(t, mock.ExpectationsWereMet())
}
