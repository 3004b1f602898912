package repository

import (
	"context"

	"github.com/polkiloo/manafood/internal/domain/model"
)

// OrderRepository describes storage operations with orders.
type OrderRepository interface {
	Append(ctx context.Context, draft model.OrderDraft) (*model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
}
