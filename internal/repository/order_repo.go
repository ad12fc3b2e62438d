package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/connectik/connectik_api/internal/models"
)

const orderColumns = `id, customer_email, customer_name, customer_phone, shipping_address, billing_address,
	total_amount, status, payment_intent_id, notes, created_at, updated_at`

const orderItemColumns = `id, order_id, product_id, quantity, price, product_name, product_sku`

// OrderRepository handles data access for orders and their items.
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create inserts an order. Status defaults to pending when empty.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}

	query := `INSERT INTO orders (id, customer_email, customer_name, customer_phone, shipping_address,
			billing_address, total_amount, status, payment_intent_id, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + orderColumns

	err := r.db.QueryRowxContext(ctx, query,
		order.ID,
		order.CustomerEmail,
		order.CustomerName,
		order.CustomerPhone,
		order.ShippingAddress,
		order.BillingAddress,
		order.TotalAmount,
		order.Status,
		order.PaymentIntentID,
		order.Notes,
	).StructScan(order)
	return mapError(err)
}

// GetByID returns an order with its items, or utils.ErrNotFound.
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var o models.Order
	if err := r.db.GetContext(ctx, &o, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id); err != nil {
		return nil, mapError(err)
	}
	items, err := r.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

// ListItems returns the items of an order, oldest first.
func (r *OrderRepository) ListItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	items := []models.OrderItem{}
	err := r.db.SelectContext(ctx, &items,
		`SELECT `+orderItemColumns+` FROM order_items WHERE order_id = $1 ORDER BY created_at, id`, orderID)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// AddItem appends a line to an order. The product's current name and sku are
// copied onto the line in the same transaction that inserts it, so later
// product edits never change the order. A missing order or product yields
// utils.ErrNotFound and nothing is written.
func (r *OrderRepository) AddItem(ctx context.Context, orderID, productID string, quantity int, price string) (*models.OrderItem, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	if err := tx.GetContext(ctx, &exists, `SELECT true FROM orders WHERE id = $1 FOR UPDATE`, orderID); err != nil {
		return nil, mapError(err)
	}

	var snapshot struct {
		Name string  `db:"name"`
		SKU  *string `db:"sku"`
	}
	if err := tx.GetContext(ctx, &snapshot, `SELECT name, sku FROM products WHERE id = $1 FOR SHARE`, productID); err != nil {
		return nil, mapError(err)
	}

	item := &models.OrderItem{
		ID:          uuid.NewString(),
		OrderID:     orderID,
		ProductID:   &productID,
		Quantity:    quantity,
		Price:       price,
		ProductName: snapshot.Name,
		ProductSKU:  snapshot.SKU,
	}
	err = tx.QueryRowxContext(ctx, `INSERT INTO order_items (id, order_id, product_id, quantity, price, product_name, product_sku)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+orderItemColumns,
		item.ID, item.OrderID, item.ProductID, item.Quantity, item.Price, item.ProductName, item.ProductSKU,
	).StructScan(item)
	if err != nil {
		return nil, mapError(err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE orders SET updated_at = NOW() WHERE id = $1`, orderID); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return item, nil
}

// UpdateStatus sets the status of an order and returns it without items.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	var o models.Order
	err := r.db.QueryRowxContext(ctx,
		`UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING `+orderColumns,
		status, id,
	).StructScan(&o)
	if err != nil {
		return nil, mapError(err)
	}
	return &o, nil
}
