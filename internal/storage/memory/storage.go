package memory

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/manafood/internal/domain/errors"
	"github.com/polkiloo/manafood/internal/domain/model"
	"github.com/polkiloo/manafood/internal/domain/repository"
)

const (
	orderIDPrefix = "MF"
	orderIDBase   = 1000
)

// Storage keeps logged orders in process memory for the lifetime of the service.
type Storage struct {
	mu     sync.RWMutex
	orders []model.Order
	byID   map[string]int
	now    func() time.Time
	logger *slog.Logger
}

type orderRepository struct {
	storage *Storage
}

// New creates empty storage.
func New(logger *slog.Logger) *Storage {
	return &Storage{
		byID:   make(map[string]int),
		now:    time.Now,
		logger: logger,
	}
}

// Orders exposes the order repository view of the storage.
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

// Len reports how many orders are held.
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

// Close drops every held order.
func (s *Storage) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = nil
	s.byID = make(map[string]int)
}

func formatOrderID(n int) string {
	return orderIDPrefix + strconv.Itoa(orderIDBase+n)
}

// Append assigns id, status and creation time under a single lock so concurrent
// requests never observe the same count.
func (r *orderRepository) Append(ctx context.Context, draft model.OrderDraft) (*model.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("append order: %w", err)
	}

	items := make([]model.OrderItem, len(draft.Items))
	copy(items, draft.Items)
	var locationURL *string
	if draft.LocationURL != nil {
		v := *draft.LocationURL
		locationURL = &v
	}

	s := r.storage
	s.mu.Lock()
	order := model.Order{
		ID:             formatOrderID(len(s.orders)),
		RestaurantID:   draft.RestaurantID,
		RestaurantName: draft.RestaurantName,
		Items:          items,
		Total:          draft.Total,
		CustomerName:   draft.CustomerName,
		CustomerPhone:  draft.CustomerPhone,
		Address:        draft.Address,
		LocationURL:    locationURL,
		Status:         model.OrderStatusPending,
		CreatedAt:      s.now(),
	}
	s.byID[order.ID] = len(s.orders)
	s.orders = append(s.orders, order)
	s.mu.Unlock()

	s.logger.Debug("order appended", slog.String("order_id", order.ID))
	return &order, nil
}

// List returns a copy of the stored orders, oldest first.
func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Order, len(s.orders))
	copy(result, s.orders)
	return result, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	s := r.storage
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	order := s.orders[idx]
	return &order, nil
}
