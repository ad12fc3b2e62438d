package handler

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/connectik/connectik_api/internal/models"
	"github.com/connectik/connectik_api/internal/utils"
)

type memSessions struct {
	sessions map[string]models.AdminSession
	next     int
}

func (m *memSessions) Create(_ context.Context, s *models.AdminSession) (string, error) {
	m.next++
	id := fmt.Sprintf("sess-%d", m.next)
	m.sessions[id] = *s
	return id, nil
}

func (m *memSessions) Get(_ context.Context, id string) (*models.AdminSession, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	return &s, nil
}

func (m *memSessions) Destroy(_ context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

type memContacts struct {
	items map[string]models.ContactSubmission
	next  int
	err   error
}

func (m *memContacts) Create(_ context.Context, s *models.ContactSubmission) error {
	if m.err != nil {
		return m.err
	}
	m.next++
	s.ID = fmt.Sprintf("contact-%d", m.next)
	s.CreatedAt = time.Now().Add(time.Duration(m.next) * time.Second)
	m.items[s.ID] = *s
	return nil
}

func (m *memContacts) List(_ context.Context) ([]models.ContactSubmission, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := []models.ContactSubmission{}
	for _, s := range m.items {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memContacts) GetByID(_ context.Context, id string) (*models.ContactSubmission, error) {
	s, ok := m.items[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return &s, nil
}

func (m *memContacts) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

type memCategories struct {
	items map[string]models.Category
	next  int
}

func (m *memCategories) List(_ context.Context) ([]models.Category, error) {
	out := []models.Category{}
	for _, c := range m.items {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memCategories) GetByID(_ context.Context, id string) (*models.Category, error) {
	c, ok := m.items[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return &c, nil
}

func (m *memCategories) GetBySlug(_ context.Context, slug string) (*models.Category, error) {
	for _, c := range m.items {
		if c.Slug == slug {
			return &c, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (m *memCategories) Create(_ context.Context, c *models.Category) error {
	for _, existing := range m.items {
		if existing.Slug == c.Slug {
			return &utils.ConstraintError{Field: "slug", Constraint: "categories_slug_key"}
		}
	}
	m.next++
	c.ID = fmt.Sprintf("cat-%d", m.next)
	c.CreatedAt = time.Now()
	m.items[c.ID] = *c
	return nil
}

func (m *memCategories) Update(_ context.Context, id string, in *models.UpdateCategoryInput) (*models.Category, error) {
	c, ok := m.items[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Slug != nil {
		c.Slug = *in.Slug
	}
	if in.Description.Set {
		c.Description = in.Description.Ptr()
	}
	m.items[id] = c
	return &c, nil
}

func (m *memCategories) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

type memProducts struct {
	items map[string]models.Product
	next  int
}

func (m *memProducts) filter(keep func(models.Product) bool) []models.Product {
	out := []models.Product{}
	for _, p := range m.items {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Featured != out[j].Featured {
			return out[i].Featured
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (m *memProducts) ListActive(_ context.Context) ([]models.Product, error) {
	return m.filter(func(p models.Product) bool { return p.Active }), nil
}

func (m *memProducts) ListByCategory(_ context.Context, categoryID string) ([]models.Product, error) {
	return m.filter(func(p models.Product) bool {
		return p.Active && p.CategoryID != nil && *p.CategoryID == categoryID
	}), nil
}

func (m *memProducts) ListAll(_ context.Context) ([]models.Product, error) {
	return m.filter(func(models.Product) bool { return true }), nil
}

func (m *memProducts) GetBySlug(_ context.Context, slug string) (*models.Product, error) {
	for _, p := range m.items {
		if p.Slug == slug && p.Active {
			return &p, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (m *memProducts) GetByID(_ context.Context, id string) (*models.Product, error) {
	p, ok := m.items[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return &p, nil
}

func (m *memProducts) Create(_ context.Context, p *models.Product) error {
	for _, existing := range m.items {
		if existing.Slug == p.Slug {
			return &utils.ConstraintError{Field: "slug", Constraint: "products_slug_key"}
		}
		if p.SKU != nil && existing.SKU != nil && *existing.SKU == *p.SKU {
			return &utils.ConstraintError{Field: "sku", Constraint: "products_sku_key"}
		}
	}
	m.next++
	p.ID = fmt.Sprintf("prod-%d", m.next)
	p.CreatedAt = time.Now().Add(time.Duration(m.next) * time.Second)
	p.UpdatedAt = p.CreatedAt
	m.items[p.ID] = *p
	return nil
}

func (m *memProducts) Update(_ context.Context, id string, in *models.UpdateProductInput) (*models.Product, error) {
	p, ok := m.items[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Active != nil {
		p.Active = *in.Active
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	if in.OriginalPrice.Set {
		p.OriginalPrice = in.OriginalPrice.NullIfEmpty().Ptr()
	}
	if in.SKU.Set {
		p.SKU = in.SKU.NullIfEmpty().Ptr()
	}
	if in.CategoryID.Set {
		p.CategoryID = in.CategoryID.NullIfEmpty().Ptr()
	}
	p.UpdatedAt = time.Now()
	m.items[id] = p
	return &p, nil
}

func (m *memProducts) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

type memOrders struct {
	orders   map[string]models.Order
	items    map[string][]models.OrderItem
	products *memProducts
	next     int
}

func (m *memOrders) Create(_ context.Context, o *models.Order) error {
	m.next++
	o.ID = fmt.Sprintf("order-%d", m.next)
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	m.orders[o.ID] = *o
	return nil
}

func (m *memOrders) GetByID(_ context.Context, id string) (*models.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	o.Items = append([]models.OrderItem{}, m.items[id]...)
	return &o, nil
}

func (m *memOrders) AddItem(_ context.Context, orderID, productID string, quantity int, price string) (*models.OrderItem, error) {
	if _, ok := m.orders[orderID]; !ok {
		return nil, utils.ErrNotFound
	}
	p, ok := m.products.items[productID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	m.next++
	item := models.OrderItem{
		ID:          fmt.Sprintf("item-%d", m.next),
		OrderID:     orderID,
		ProductID:   &productID,
		Quantity:    quantity,
		Price:       price,
		ProductName: p.Name,
		ProductSKU:  p.SKU,
	}
	m.items[orderID] = append(m.items[orderID], item)
	return &item, nil
}

func (m *memOrders) ListItems(_ context.Context, orderID string) ([]models.OrderItem, error) {
	return append([]models.OrderItem{}, m.items[orderID]...), nil
}

func (m *memOrders) UpdateStatus(_ context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	o.Status = status
	m.orders[id] = o
	return &o, nil
}

type memImages struct {
	public map[string]bool
}

func (m *memImages) UploadURL(context.Context) (string, error) {
	return "https://bucket.s3.amazonaws.com/boutique/uploads/abc?X-Amz-Signature=sig", nil
}

func (m *memImages) SetPublicPolicy(_ context.Context, imageURL string) (string, error) {
	const prefix = "https://bucket.s3.amazonaws.com/boutique/"
	if !strings.HasPrefix(imageURL, prefix) {
		return imageURL, nil
	}
	entity := strings.TrimPrefix(strings.SplitN(imageURL, "?", 2)[0], prefix)
	if entity == "uploads/missing" {
		return "", utils.ErrNotFound
	}
	m.public[entity] = true
	return "/objects/" + entity, nil
}

func (m *memImages) PublicURL(_ context.Context, entityPath string) (string, error) {
	entity := strings.TrimPrefix(entityPath, "/")
	if !m.public[entity] {
		return "", utils.ErrNotFound
	}
	return "https://bucket.s3.amazonaws.com/boutique/" + entity + "?X-Amz-Signature=get", nil
}
