package model

import "time"

// OrderStatus describes where an order stands. Orders are logged as pending and never transition.
type OrderStatus string

const OrderStatusPending OrderStatus = "Pending"

// OrderItem is a single line of a food order.
type OrderItem struct {
	ID       string
	Name     string
	Price    float64
	Quantity int
}

// OrderDraft carries validated customer input before the store assigns identity.
type OrderDraft struct {
	RestaurantID   string
	RestaurantName string
	Items          []OrderItem
	Total          float64
	CustomerName   string
	CustomerPhone  string
	Address        string
	LocationURL    *string
}

// Order describes a logged food order.
type Order struct {
	ID             string
	RestaurantID   string
	RestaurantName string
	Items          []OrderItem
	Total          float64
	CustomerName   string
	CustomerPhone  string
	Address        string
	LocationURL    *string
	Status         OrderStatus
	CreatedAt      time.Time
}
