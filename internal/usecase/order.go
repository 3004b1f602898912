package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/polkiloo/manafood/internal/domain/model"
	"github.com/polkiloo/manafood/internal/domain/repository"
)

// OrderUseCase encapsulates order logging logic.
type OrderUseCase struct {
	orders repository.OrderRepository
	logger *slog.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{orders: orders, logger: logger}
}

// Place logs a new order. Identical drafts submitted twice become two orders.
func (u *OrderUseCase) Place(ctx context.Context, draft model.OrderDraft) (*model.Order, error) {
	if err := ValidateDraft(draft); err != nil {
		return nil, err
	}

	order, err := u.orders.Append(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}

	u.logger.Info("order logged",
		slog.String("order_id", order.ID),
		slog.String("restaurant_id", order.RestaurantID),
		slog.Int("items", len(order.Items)),
	)
	return order, nil
}

// List returns every logged order, oldest first.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// Get returns a single order by its MF identifier.
func (u *OrderUseCase) Get(ctx context.Context, id string) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}
