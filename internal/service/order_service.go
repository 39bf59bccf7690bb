package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"digisure/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEmptyOrder       = errors.New("order must contain at least one item")
	ErrNegativeTotal    = errors.New("order total must not be negative")
	ErrInvalidOrderItem = errors.New("order contains an invalid product")
)

// OrderService creates simulated orders from cart snapshots. No
// payment or inventory check happens here.
type OrderService interface {
	// Submit freezes the given items and total into a new order and
	// returns it. The snapshot is deep-copied at call time, so later
	// mutations of the live cart never reach the returned order. The
	// caller remains responsible for clearing the cart afterwards.
	Submit(ctx context.Context, items []domain.CartItem, total int) (*domain.Order, error)
}

type orderService struct {
	logger *zap.Logger
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(logger *zap.Logger) OrderService {
	return &orderService{logger: logger}
}

func (s *orderService) Submit(ctx context.Context, items []domain.CartItem, total int) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	if total < 0 {
		return nil, ErrNegativeTotal
	}
	for _, item := range items {
		if err := item.Product.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidOrderItem, item.Product.ID, err)
		}
	}

	snapshot := make([]domain.CartItem, len(items))
	for i, item := range items {
		snapshot[i] = domain.CartItem{
			Product: item.Product.Clone(),
			CartID:  item.CartID,
		}
	}

	order := &domain.Order{
		ID:     newOrderID(),
		Date:   time.Now().UTC(),
		Items:  snapshot,
		Total:  total,
		Status: domain.OrderCompleted,
	}

	s.logger.Info("Order created",
		zap.String("order_id", order.ID),
		zap.Int("items", len(order.Items)),
		zap.Int("total", order.Total),
	)

	return order, nil
}

// newOrderID generates the opaque short order token. Callers must not
// rely on any structure beyond the prefix and per-call uniqueness.
func newOrderID() string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("ord_%s", token[:9])
}
