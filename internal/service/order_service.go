package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/connectik/connectik_api/internal/models"
	"github.com/connectik/connectik_api/internal/sse"
)

// OrderStore is the storage OrderService depends on.
type OrderStore interface {
	Create(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	AddItem(ctx context.Context, orderID, productID string, quantity int, price string) (*models.OrderItem, error)
	ListItems(ctx context.Context, orderID string) ([]models.OrderItem, error)
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error)
}

// OrderService handles back-office orders.
type OrderService struct {
	repo     OrderStore
	notifier sse.Notifier
}

// NewOrderService constructs an OrderService.
func NewOrderService(repo OrderStore) *OrderService {
	return &OrderService{repo: repo, notifier: sse.NopNotifier{}}
}

// SetNotifier sets the notifier told about order changes.
func (s *OrderService) SetNotifier(n sse.Notifier) {
	s.notifier = n
}

// Create stores a pending order.
func (s *OrderService) Create(ctx context.Context, in *models.CreateOrderInput) (*models.Order, error) {
	order := &models.Order{
		CustomerEmail:   in.CustomerEmail,
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		ShippingAddress: in.ShippingAddress,
		BillingAddress:  in.BillingAddress,
		TotalAmount:     in.TotalAmount,
		Status:          models.OrderStatusPending,
		PaymentIntentID: in.PaymentIntentID,
		Notes:           in.Notes,
	}
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	order.Items = []models.OrderItem{}
	s.notifier.NotifyOrderCreated(order)

	log.Info().Str("order_id", order.ID).Str("total", order.TotalAmount).Msg("Order created")
	return order, nil
}

// Get returns an order with its items.
func (s *OrderService) Get(ctx context.Context, id string) (*models.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// AddItem adds a line to an order. The line keeps the product name and sku
// as they were at this moment.
func (s *OrderService) AddItem(ctx context.Context, orderID string, in *models.AddOrderItemInput) (*models.OrderItem, error) {
	item, err := s.repo.AddItem(ctx, orderID, in.ProductID, in.Quantity, in.Price)
	if err != nil {
		return nil, fmt.Errorf("add item to order %s: %w", orderID, err)
	}
	return item, nil
}

// Items returns the lines of an order.
func (s *OrderService) Items(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	if _, err := s.repo.GetByID(ctx, orderID); err != nil {
		return nil, err
	}
	return s.repo.ListItems(ctx, orderID)
}

// UpdateStatus moves an order to status.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	order, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("update order %s status: %w", id, err)
	}
	s.notifier.NotifyOrderStatusChanged(order)
	log.Info().Str("order_id", id).Str("status", string(status)).Msg("Order status updated")
	return order, nil
}
