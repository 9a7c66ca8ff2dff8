package handler_test

import (
	"context"
	"net/http"
	"testing"

	"work_market/internal/handler"
	"work_market/internal/model"
	"work_market/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockOfferService implements service.OfferService
type MockOfferService struct {
	mock.Mock
}

func (m *MockOfferService) Create(ctx context.Context, req model.OfferRequest) (*model.Offer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Offer), args.Error(1)
}

func (m *MockOfferService) GetAll(ctx context.Context) ([]model.Offer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Offer), args.Error(1)
}

func (m *MockOfferService) GetByID(ctx context.Context, id int64) (*model.Offer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Offer), args.Error(1)
}

func (m *MockOfferService) Update(ctx context.Context, id int64, req model.OfferRequest) (*model.Offer, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Offer), args.Error(1)
}

func (m *MockOfferService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupOfferRouter(svc service.OfferService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewOfferHandler(svc, zap.NewNop())
	h.RegisterOfferRoutes(r.Group(""))
	return r
}

func TestListOffers_EmptyStoreReturnsEmptyArray(t *testing.T) {
	svc := new(MockOfferService)
	svc.On("GetAll", mock.Anything).Return([]model.Offer{}, nil)

	w := performRequest(setupOfferRouter(svc), http.MethodGet, "/offers", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
	svc.AssertExpectations(t)
}

func TestCreateOffer_MissingFieldRejected(t *testing.T) {
	svc := new(MockOfferService)

	w := performRequest(setupOfferRouter(svc), http.MethodPost, "/offers",
		map[string]any{"id": 1, "order_id": 2})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Create")
}

func TestGetOfferByID_Absent(t *testing.T) {
	svc := new(MockOfferService)
	svc.On("GetByID", mock.Anything, int64(42)).Return(nil, service.ErrOfferNotFound)

	w := performRequest(setupOfferRouter(svc), http.MethodGet, "/offers/42", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	svc.AssertExpectations(t)
}

func TestDeleteOffer_Absent(t *testing.T) {
	svc := new(MockOfferService)
	svc.On("Delete", mock.Anything, int64(42)).Return(service.ErrOfferNotFound)

	w := performRequest(setupOfferRouter(svc), http.MethodDelete, "/offers/42", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	svc.AssertExpectations(t)
}
