package test

import (
	"context"
	"time"

	domainErrors "github.com/polkiloo/manafood/internal/domain/errors"
	"github.com/polkiloo/manafood/internal/domain/model"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn  func(context.Context, model.OrderDraft) (*model.Order, error)
	OrdersFn func(context.Context) ([]model.Order, error)
	OrderFn  func(context.Context, string) (*model.Order, error)
}

// PlaceOrder delegates to provided function or returns MF1000 for the draft.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, draft model.OrderDraft) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, draft)
	}
	return &model.Order{
		ID:           "MF1000",
		RestaurantID: draft.RestaurantID,
		Items:        draft.Items,
		Status:       model.OrderStatusPending,
		CreatedAt:    time.Unix(0, 0),
	}, nil
}

// Orders returns predefined orders.
func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.Order{{ID: "MF1000", Items: []model.OrderItem{}, Status: model.OrderStatusPending, CreatedAt: time.Unix(0, 0)}}, nil
}

// Order returns the order with the requested id or not found.
func (s OrderFacadeStub) Order(ctx context.Context, id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	if id != "MF1000" {
		return nil, domainErrors.ErrNotFound
	}
	return &model.Order{ID: id, Items: []model.OrderItem{}, Status: model.OrderStatusPending, CreatedAt: time.Unix(0, 0)}, nil
}
