package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"work_market/internal/handler"
	"work_market/internal/model"
	"work_market/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockOrderService implements service.OrderService
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Create(ctx context.Context, req model.OrderRequest) (*model.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) GetAll(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderService) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) Update(ctx context.Context, id int64, req model.OrderRequest) (*model.Order, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupOrderRouter(svc service.OrderService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewOrderHandler(svc, zap.NewNop())
	h.RegisterOrderRoutes(r.Group(""))
	return r
}

func paintFence() *model.Order {
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

func paintFenceBody() map[string]any {
	return map[string]any{
		"id": 10, "name": "paint fence", "description": "",
		"start_date": "2024-01-01", "end_date": "2024-01-02",
		"address": "1 Main St", "price": 100, "customer_id": 1, "executor_id": 2,
	}
}

// Full lifecycle: POST, GET back the exact fields, DELETE, GET again is 404.
func TestOrderLifecycle(t *testing.T) {
	svc := new(MockOrderService)
	order := paintFence()
	svc.On("Create", mock.Anything, mock.AnythingOfType("model.OrderRequest")).Return(order, nil).Once()
	svc.On("GetByID", mock.Anything, int64(10)).Return(order, nil).Once()
	svc.On("Delete", mock.Anything, int64(10)).Return(nil).Once()
	svc.On("GetByID", mock.Anything, int64(10)).Return(nil, service.ErrOrderNotFound).Once()

	router := setupOrderRouter(svc)

	w := performRequest(router, http.MethodPost, "/orders", paintFenceBody())
	assert.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(router, http.MethodGet, "/orders/10", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var got model.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, *order, got)

	w = performRequest(router, http.MethodDelete, "/orders/10", nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(router, http.MethodGet, "/orders/10", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	svc.AssertExpectations(t)
}

func TestCreateOrder_RequestFieldsReachService(t *testing.T) {
	svc := new(MockOrderService)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(req model.OrderRequest) bool {
		return req.ID != nil && *req.ID == 10 &&
			req.Description != nil && *req.Description == "" &&
			req.Price != nil && *req.Price == 100
	})).Return(paintFence(), nil)

	w := performRequest(setupOrderRouter(svc), http.MethodPost, "/orders", paintFenceBody())

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestCreateOrder_MissingFieldRejected(t *testing.T) {
	svc := new(MockOrderService)

	body := paintFenceBody()
	delete(body, "address")
	w := performRequest(setupOrderRouter(svc), http.MethodPost, "/orders", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request")
	svc.AssertNotCalled(t, "Create")
}

func TestCreateOrder_DuplicateID(t *testing.T) {
	svc := new(MockOrderService)
	svc.On("Create", mock.Anything, mock.AnythingOfType("model.OrderRequest")).
		Return(nil, service.ErrOrderExists)

	w := performRequest(setupOrderRouter(svc), http.MethodPost, "/orders", paintFenceBody())

	assert.Equal(t, http.StatusConflict, w.Code)
	svc.AssertExpectations(t)
}

func TestUpdateOrder_Absent(t *testing.T) {
	svc := new(MockOrderService)
	svc.On("Update", mock.Anything, int64(99), mock.AnythingOfType("model.OrderRequest")).
		Return(nil, service.ErrOrderNotFound)

	w := performRequest(setupOrderRouter(svc), http.MethodPut, "/orders/99", paintFenceBody())

	assert.Equal(t, http.StatusNotFound, w.Code)
	svc.AssertExpectations(t)
}

func TestListOrders_EmptyStoreReturnsEmptyArray(t *testing.T) {
	svc := new(MockOrderService)
	svc.On("GetAll", mock.Anything).Return([]model.Order{}, nil)

	w := performRequest(setupOrderRouter(svc), http.MethodGet, "/orders", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
	svc.AssertExpectations(t)
}
