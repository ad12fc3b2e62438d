package models

import "time"

// OrderStatus enumerates the lifecycle states of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a customer purchase.
type Order struct {
	ID              string      `db:"id" json:"id"`
	CustomerEmail   string      `db:"customer_email" json:"customerEmail"`
	CustomerName    string      `db:"customer_name" json:"customerName"`
	CustomerPhone   *string     `db:"customer_phone" json:"customerPhone"`
	ShippingAddress string      `db:"shipping_address" json:"shippingAddress"`
	BillingAddress  *string     `db:"billing_address" json:"billingAddress"`
	TotalAmount     string      `db:"total_amount" json:"totalAmount"`
	Status          OrderStatus `db:"status" json:"status"`
	PaymentIntentID *string     `db:"payment_intent_id" json:"paymentIntentId"`
	Notes           *string     `db:"notes" json:"notes"`
	CreatedAt       time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time   `db:"updated_at" json:"updatedAt"`

	Items []OrderItem `db:"-" json:"items,omitempty"`
}

// OrderItem is a line of an order. Price, ProductName and ProductSKU are
// copied from the product when the line is added and never recomputed.
type OrderItem struct {
	ID          string  `db:"id" json:"id"`
	OrderID     string  `db:"order_id" json:"orderId"`
	ProductID   *string `db:"product_id" json:"productId"`
	Quantity    int     `db:"quantity" json:"quantity"`
	Price       string  `db:"price" json:"price"`
	ProductName string  `db:"product_name" json:"productName"`
	ProductSKU  *string `db:"product_sku" json:"productSku"`
}

// CreateOrderInput is the body accepted when creating an order.
type CreateOrderInput struct {
	CustomerEmail   string  `json:"customerEmail" binding:"required,email"`
	CustomerName    string  `json:"customerName" binding:"required,min=1"`
	CustomerPhone   *string `json:"customerPhone"`
	ShippingAddress string  `json:"shippingAddress" binding:"required,min=1"`
	BillingAddress  *string `json:"billingAddress"`
	TotalAmount     string  `json:"totalAmount" binding:"required,decimal"`
	PaymentIntentID *string `json:"paymentIntentId"`
	Notes           *string `json:"notes"`
}

// AddOrderItemInput is the body accepted when adding a line to an order.
type AddOrderItemInput struct {
	ProductID string `json:"productId" binding:"required,min=1"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
	Price     string `json:"price" binding:"required,decimal"`
}

// UpdateOrderStatusInput is the body of PUT /api/admin/orders/:id/status.
type UpdateOrderStatusInput struct {
	Status OrderStatus `json:"status" binding:"required,oneof=pending paid shipped delivered cancelled"`
}
