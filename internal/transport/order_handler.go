package transport

import (
	"errors"
	"net/http"

	"digisure/internal/domain"
	"digisure/internal/middleware"
	"digisure/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateOrderRequest represents the order submission payload: the
// cart snapshot and its total at submission time.
type CreateOrderRequest struct {
	Items []domain.CartItem `json:"items" validate:"required,min=1"`
	Total int               `json:"total" validate:"gte=0"`
}

// CreateOrderResponse represents the order submission response
type CreateOrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
}

// OrderHandler handles HTTP requests for order submission
type OrderHandler struct {
	orderService service.OrderService
	logger       *zap.Logger
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// RegisterRoutes registers the order routes
func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/orders", h.CreateOrder)
}

// CreateOrder handles a simulated order submission
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Order validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.orderService.Submit(r.Context(), req.Items, req.Total)
	if err != nil {
		h.logger.Debug("Order submission rejected", zap.Error(err))

		if errors.Is(err, service.ErrEmptyOrder) || errors.Is(err, service.ErrNegativeTotal) || errors.Is(err, service.ErrInvalidOrderItem) {
			middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to create order")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, CreateOrderResponse{
		Success: true,
		OrderID: order.ID,
	})
}
