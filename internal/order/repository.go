package order

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("order not found")
	ErrNoItems  = errors.New("order must contain at least one item")
)

// Repository defines persistence operations for orders. Create and Update
// are transactional: on failure nothing from the call is persisted.
type Repository interface {
	Create(ctx context.Context, ord Order, createdBy string) (int, error)
	// Update overwrites the header and replaces the full item set
	// (delete all, reinsert). Returns ErrNotFound when the order id does
	// not exist; in that case the store is left unchanged.
	Update(ctx context.Context, orderID int, ord Order, updatedBy string) error

	List(ctx context.Context) ([]Order, error)
	GetByID(ctx context.Context, orderID int) (Order, error)
	ListByCreatedBy(ctx context.Context, createdBy string) ([]Order, error)
	ListByRetailerID(ctx context.Context, retailerID int) ([]Order, error)
	ListByRDCID(ctx context.Context, rdcID int) ([]Order, error)
}
