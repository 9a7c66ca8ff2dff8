package service

import (
	"context"
	"errors"
	"fmt"

	"work_market/internal/model"
	"work_market/internal/repository"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrOrderExists   = errors.New("order with this id already exists")
)

// OrderService defines operations for orders
type OrderService interface {
	Create(ctx context.Context, req model.OrderRequest) (*model.Order, error)
	GetAll(ctx context.Context) ([]model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	Update(ctx context.Context, id int64, req model.OrderRequest) (*model.Order, error)
	Delete(ctx context.Context, id int64) error
}

type orderService struct {
	repo repository.OrderRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

func (s *orderService) Create(ctx context.Context, req model.OrderRequest) (*model.Order, error) {
	order := req.ToOrder()
	if err := s.repo.Insert(ctx, order); err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			return nil, ErrOrderExists
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return order, nil
}

func (s *orderService) GetAll(ctx context.Context) ([]model.Order, error) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order by id: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// Update replaces the row selected by the path id; the body id is ignored.
func (s *orderService) Update(ctx context.Context, id int64, req model.OrderRequest) (*model.Order, error) {
	order := req.ToOrder()
	order.ID = id
	if err := s.repo.Update(ctx, order); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return order, nil
}

func (s *orderService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}
