package app

import (
	"context"

	"github.com/polkiloo/manafood/internal/domain/model"
	"github.com/polkiloo/manafood/internal/usecase"
)

type OrderingFacade struct {
	orders *usecase.OrderUseCase
}

func NewOrderingFacade(orders *usecase.OrderUseCase) *OrderingFacade {
	return &OrderingFacade{orders: orders}
}

func (f *OrderingFacade) PlaceOrder(ctx context.Context, draft model.OrderDraft) (*model.Order, error) {
	return f.orders.Place(ctx, draft)
}

func (f *OrderingFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

func (f *OrderingFacade) Order(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}
