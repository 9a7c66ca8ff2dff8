package service

import (
	"context"
	"errors"
	"fmt"

	"work_market/internal/model"
	"work_market/internal/repository"
)

var (
	ErrOfferNotFound = errors.New("offer not found")
	ErrOfferExists   = errors.New("offer with this id already exists")
)

// OfferService defines operations for offers
type OfferService interface {
	Create(ctx context.Context, req model.OfferRequest) (*model.Offer, error)
	GetAll(ctx context.Context) ([]model.Offer, error)
	GetByID(ctx context.Context, id int64) (*model.Offer, error)
	Update(ctx context.Context, id int64, req model.OfferRequest) (*model.Offer, error)
	Delete(ctx context.Context, id int64) error
}

type offerService struct {
	repo repository.OfferRepository
}

// NewOfferService creates a new OfferService
func NewOfferService(repo repository.OfferRepository) OfferService {
	return &offerService{repo: repo}
}

func (s *offerService) Create(ctx context.Context, req model.OfferRequest) (*model.Offer, error) {
	offer := req.ToOffer()
	if err := s.repo.Insert(ctx, offer); err != nil {
		if errors.Is(err, repository.ErrDuplicateID) {
			return nil, ErrOfferExists
		}
		return nil, fmt.Errorf("failed to create offer: %w", err)
	}
	return offer, nil
}

func (s *offerService) GetAll(ctx context.Context) ([]model.Offer, error) {
	offers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get offers: %w", err)
	}
	return offers, nil
}

func (s *offerService) GetByID(ctx context.Context, id int64) (*model.Offer, error) {
	offer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get offer by id: %w", err)
	}
	if offer == nil {
		return nil, ErrOfferNotFound
	}
	return offer, nil
}

// Update replaces the row selected by the path id; the body id is ignored.
func (s *offerService) Update(ctx context.Context, id int64, req model.OfferRequest) (*model.Offer, error) {
	offer := req.ToOffer()
	offer.ID = id
	if err := s.repo.Update(ctx, offer); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to update offer: %w", err)
	}
	return offer, nil
}

func (s *offerService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrOfferNotFound
		}
		return fmt.Errorf("failed to delete offer: %w", err)
	}
	return nil
}
