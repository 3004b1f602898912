package test

import (
	"context"
	"strconv"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/manafood/internal/domain/errors"
	"github.com/polkiloo/manafood/internal/domain/model"
)

// OrderRepositoryStub keeps orders in a slice and lets tests override each call.
type OrderRepositoryStub struct {
	AppendFn func(context.Context, model.OrderDraft) (*model.Order, error)
	ListFn   func(context.Context) ([]model.Order, error)
	GetFn    func(context.Context, string) (*model.Order, error)
	Err      error
	Now      time.Time

	mu     sync.Mutex
	Orders []model.Order
}

// Append stores the draft with the next MF identifier unless an override or error is configured.
func (s *OrderRepositoryStub) Append(ctx context.Context, draft model.OrderDraft) (*model.Order, error) {
	if s.AppendFn != nil {
		return s.AppendFn(ctx, draft)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	createdAt := s.Now
	if createdAt.IsZero() {
		createdAt = time.Unix(0, 0)
	}
	order := model.Order{
		ID:             "MF" + strconv.Itoa(1000+len(s.Orders)),
		RestaurantID:   draft.RestaurantID,
		RestaurantName: draft.RestaurantName,
		Items:          draft.Items,
		Total:          draft.Total,
		CustomerName:   draft.CustomerName,
		CustomerPhone:  draft.CustomerPhone,
		Address:        draft.Address,
		LocationURL:    draft.LocationURL,
		Status:         model.OrderStatusPending,
		CreatedAt:      createdAt,
	}
	s.Orders = append(s.Orders, order)
	return &order, nil
}

// List returns stored orders in insertion order.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, len(s.Orders))
	copy(out, s.Orders)
	return out, nil
}

// GetByID finds a stored order or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			order := s.Orders[i]
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}
