package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/manafood/internal/domain/model"
	"github.com/polkiloo/manafood/internal/pkg/validation"
	"github.com/polkiloo/manafood/internal/server/http/dto"
)

const orderLoggedMessage = "Order logged successfully"

// OrderHandler manages order-related endpoints.
type OrderHandler struct {
	facade    OrderFacade
	validator RequestValidator
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade, validator RequestValidator) *OrderHandler {
	return &OrderHandler{facade: facade, validator: validator}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		respondError(c, validation.DecodeError(err))
		return
	}
	var req dto.CreateOrderRequest
	if err := validation.DecodeJSON(body, &req); err != nil {
		respondError(c, err)
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		respondError(c, err)
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), req.Draft())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreateOrderResponse{Message: orderLoggedMessage, OrderID: order.ID})
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, dto.OrderItemResponse{ID: it.ID, Name: it.Name, Price: it.Price, Quantity: it.Quantity})
	}
	return dto.OrderResponse{
		RestaurantID:   order.RestaurantID,
		RestaurantName: order.RestaurantName,
		Items:          items,
		Total:          order.Total,
		CustomerName:   order.CustomerName,
		CustomerPhone:  order.CustomerPhone,
		Address:        order.Address,
		LocationURL:    order.LocationURL,
		ID:             order.ID,
		Status:         string(order.Status),
		CreatedAt:      dto.FormatCreatedAt(order.CreatedAt),
	}
}
