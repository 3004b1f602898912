package handlers

import (
	"context"

	"github.com/polkiloo/manafood/internal/domain/model"
)

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, draft model.OrderDraft) (*model.Order, error)
	Orders(ctx context.Context) ([]model.Order, error)
	Order(ctx context.Context, id string) (*model.Order, error)
}

// RequestValidator checks decoded request payloads.
type RequestValidator interface {
	Struct(s any) error
}
