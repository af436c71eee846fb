package order

import "context"

// Service supplies the authenticated caller's employee id on writes; the
// repository has no notion of caller identity.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, ord Order, employeeID string) (int, error) {
	if len(ord.Items) == 0 {
		return 0, ErrNoItems
	}
	return s.repo.Create(ctx, ord, employeeID)
}

func (s *Service) Update(ctx context.Context, orderID int, ord Order, employeeID string) error {
	if len(ord.Items) == 0 {
		return ErrNoItems
	}
	return s.repo.Update(ctx, orderID, ord, employeeID)
}

func (s *Service) List(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, orderID int) (Order, error) {
	return s.repo.GetByID(ctx, orderID)
}

func (s *Service) ListByCreatedBy(ctx context.Context, createdBy string) ([]Order, error) {
	return s.repo.ListByCreatedBy(ctx, createdBy)
}

func (s *Service) ListByRetailerID(ctx context.Context, retailerID int) ([]Order, error) {
	return s.repo.ListByRetailerID(ctx, retailerID)
}

func (s *Service) ListByRDCID(ctx context.Context, rdcID int) ([]Order, error) {
	return s.repo.ListByRDCID(ctx, rdcID)
}
