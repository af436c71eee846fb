package order

import (
	"context"
	"errors"
	"testing"
)

func TestServiceCreate_RejectsEmptyItems(t *testing.T) {
	repo := newDummyRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), Order{OrderStatus: StatusPending}, "EMP-9")
	if !errors.Is(err, ErrNoItems) {
		t.Fatalf("expected ErrNoItems, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Error("repository must not be called for an empty item list")
	}
}

func TestServiceUpdate_RejectsEmptyItems(t *testing.T) {
	repo := newDummyRepo()
	repo.orders[7] = Order{OrderID: 7}
	svc := NewService(repo)

	err := svc.Update(context.Background(), 7, Order{}, "EMP-9")
	if !errors.Is(err, ErrNoItems) {
		t.Fatalf("expected ErrNoItems, got %v", err)
	}
}
