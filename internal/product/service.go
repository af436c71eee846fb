package product

import (
	"context"
	"errors"
)

var ErrMissingFields = errors.New("product name, unit price, and unit of measure are required")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int) (Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, p Product) (int, error) {
	if missingRequiredFields(p) {
		return 0, ErrMissingFields
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, id int, p Product) error {
	if missingRequiredFields(p) {
		return ErrMissingFields
	}
	return s.repo.Update(ctx, id, p)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func missingRequiredFields(p Product) bool {
	return p.ProductName == "" || p.UnitPrice.IsZero() || p.UnitOfMeasure == ""
}
