package dto

import (
	"time"

	"github.com/polkiloo/manafood/internal/domain/model"
)

// CreatedAtLayout renders creation time as ISO-8601 with microseconds. The zone
// is a numeric offset such as +05:30, or Z when the server runs in UTC.
const CreatedAtLayout = "2006-01-02T15:04:05.000000Z07:00"

// OrderItemRequest describes one submitted line item. Pointers distinguish
// missing fields from zero values.
type OrderItemRequest struct {
	ID       *string  `json:"id" validate:"required"`
	Name     *string  `json:"name" validate:"required"`
	Price    *float64 `json:"price" validate:"required"`
	Quantity *int     `json:"quantity" validate:"required"`
}

// CreateOrderRequest describes POST /api/orders payload.
type CreateOrderRequest struct {
	RestaurantID   *string            `json:"restaurantId" validate:"required"`
	RestaurantName *string            `json:"restaurantName" validate:"required"`
	Items          []OrderItemRequest `json:"items" validate:"required,dive"`
	Total          *float64           `json:"total" validate:"required"`
	CustomerName   *string            `json:"customerName" validate:"required"`
	CustomerPhone  *string            `json:"customerPhone" validate:"required"`
	Address        *string            `json:"address" validate:"required"`
	LocationURL    *string            `json:"locationUrl"`
}

// Draft converts a validated request into a domain draft.
func (r *CreateOrderRequest) Draft() model.OrderDraft {
	items := make([]model.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, model.OrderItem{
			ID:       deref(it.ID),
			Name:     deref(it.Name),
			Price:    deref(it.Price),
			Quantity: deref(it.Quantity),
		})
	}
	return model.OrderDraft{
		RestaurantID:   deref(r.RestaurantID),
		RestaurantName: deref(r.RestaurantName),
		Items:          items,
		Total:          deref(r.Total),
		CustomerName:   deref(r.CustomerName),
		CustomerPhone:  deref(r.CustomerPhone),
		Address:        deref(r.Address),
		LocationURL:    r.LocationURL,
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// CreateOrderResponse confirms a logged order.
type CreateOrderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}

// OrderItemResponse mirrors a stored line item.
type OrderItemResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OrderResponse mirrors a stored order.
type OrderResponse struct {
	RestaurantID   string              `json:"restaurantId"`
	RestaurantName string              `json:"restaurantName"`
	Items          []OrderItemResponse `json:"items"`
	Total          float64             `json:"total"`
	CustomerName   string              `json:"customerName"`
	CustomerPhone  string              `json:"customerPhone"`
	Address        string              `json:"address"`
	LocationURL    *string             `json:"locationUrl"`
	ID             string              `json:"id"`
	Status         string              `json:"status"`
	CreatedAt      string              `json:"createdAt"`
}

// FormatCreatedAt renders t using CreatedAtLayout.
func FormatCreatedAt(t time.Time) string {
	return t.Format(CreatedAtLayout)
}
