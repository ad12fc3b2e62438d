package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/connectik/connectik_api/internal/models"
	"github.com/connectik/connectik_api/internal/utils"
)

// In-memory stand-ins for the repositories and the session store.

type fakeSessionStore struct {
	sessions map[string]models.AdminSession
	next     int
	err      error
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]models.AdminSession{}}
}

func (f *fakeSessionStore) Create(_ context.Context, s *models.AdminSession) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.next++
	id := fmt.Sprintf("sess-%d", f.next)
	f.sessions[id] = *s
	return id, nil
}

func (f *fakeSessionStore) Get(_ context.Context, id string) (*models.AdminSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.sessions[id]
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	return &s, nil
}

func (f *fakeSessionStore) Destroy(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.sessions, id)
	return nil
}

type fakeContactStore struct {
	items map[string]models.ContactSubmission
	next  int
}

func newFakeContactStore() *fakeContactStore {
	return &fakeContactStore{items: map[string]models.ContactSubmission{}}
}

func (f *fakeContactStore) Create(_ context.Context, s *models.ContactSubmission) error {
	f.next++
	s.ID = fmt.Sprintf("contact-%d", f.next)
	s.CreatedAt = time.Now().Add(time.Duration(f.next) * time.Second)
	f.items[s.ID] = *s
	return nil
}

func (f *fakeContactStore) List(_ context.Context) ([]models.ContactSubmission, error) {
	out := []models.ContactSubmission{}
	for _, s := range f.items {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeContactStore) GetByID(_ context.Context, id string) (*models.ContactSubmission, error) {
	s, ok := f.items[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return &s, nil
}

func (f *fakeContactStore) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

type fakeCategoryStore struct {
	items map[string]models.Category
	next  int
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{items: map[string]models.Category{}}
}

func (f *fakeCategoryStore) List(_ context.Context) ([]models.Category, error) {
	out := []models.Category{}
	for _, c := range f.items {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeCategoryStore) GetByID(_ context.Context, id string) (*models.Category, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return &c, nil
}

func (f *fakeCategoryStore) GetBySlug(_ context.Context, slug string) (*models.Category, error) {
	for _, c := range f.items {
		if c.Slug == slug {
			return &c, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeCategoryStore) Create(_ context.Context, c *models.Category) error {
	for _, existing := range f.items {
		if existing.Slug == c.Slug {
			return &utils.ConstraintError{Field: "slug", Constraint: "categories_slug_unique"}
		}
	}
	f.next++
	c.ID = fmt.Sprintf("cat-%d", f.next)
	c.CreatedAt = time.Now()
	f.items[c.ID] = *c
	return nil
}

func (f *fakeCategoryStore) Update(_ context.Context, id string, in *models.UpdateCategoryInput) (*models.Category, error) {
	c, ok := f.items[id]
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
	f.items[id] = c
	return &c, nil
}

func (f *fakeCategoryStore) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

type fakeProductStore struct {
	items map[string]models.Product
	next  int

	lastCall string
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{items: map[string]models.Product{}}
}

func (f *fakeProductStore) filter(keep func(models.Product) bool) []models.Product {
	out := []models.Product{}
	for _, p := range f.items {
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

func (f *fakeProductStore) ListActive(_ context.Context) ([]models.Product, error) {
	f.lastCall = "ListActive"
	return f.filter(func(p models.Product) bool { return p.Active }), nil
}

func (f *fakeProductStore) ListByCategory(_ context.Context, categoryID string) ([]models.Product, error) {
	f.lastCall = "ListByCategory"
	return f.filter(func(p models.Product) bool {
		return p.Active && p.CategoryID != nil && *p.CategoryID == categoryID
	}), nil
}

func (f *fakeProductStore) ListAll(_ context.Context) ([]models.Product, error) {
	f.lastCall = "ListAll"
	return f.filter(func(models.Product) bool { return true }), nil
}

func (f *fakeProductStore) GetBySlug(_ context.Context, slug string) (*models.Product, error) {
	for _, p := range f.items {
		if p.Slug == slug && p.Active {
			return &p, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeProductStore) GetByID(_ context.Context, id string) (*models.Product, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return &p, nil
}

func (f *fakeProductStore) Create(_ context.Context, p *models.Product) error {
	for _, existing := range f.items {
		if existing.Slug == p.Slug {
			return &utils.ConstraintError{Field: "slug", Constraint: "products_slug_unique"}
		}
	}
	f.next++
	p.ID = fmt.Sprintf("prod-%d", f.next)
	p.CreatedAt = time.Now().Add(time.Duration(f.next) * time.Second)
	p.UpdatedAt = p.CreatedAt
	f.items[p.ID] = *p
	return nil
}

func (f *fakeProductStore) Update(_ context.Context, id string, in *models.UpdateProductInput) (*models.Product, error) {
	p, ok := f.items[id]
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
	p.UpdatedAt = p.UpdatedAt.Add(time.Second)
	f.items[id] = p
	return &p, nil
}

func (f *fakeProductStore) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

type addItemCall struct {
	orderID, productID string
	quantity           int
	price              string
}

type fakeOrderStore struct {
	orders   map[string]models.Order
	items    map[string][]models.OrderItem
	products *fakeProductStore
	next     int
	calls    []addItemCall
}

func newFakeOrderStore(products *fakeProductStore) *fakeOrderStore {
	return &fakeOrderStore{
		orders:   map[string]models.Order{},
		items:    map[string][]models.OrderItem{},
		products: products,
	}
}

func (f *fakeOrderStore) Create(_ context.Context, o *models.Order) error {
	f.next++
	o.ID = fmt.Sprintf("order-%d", f.next)
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	f.orders[o.ID] = *o
	return nil
}

func (f *fakeOrderStore) GetByID(_ context.Context, id string) (*models.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	o.Items = append([]models.OrderItem{}, f.items[id]...)
	return &o, nil
}

func (f *fakeOrderStore) AddItem(_ context.Context, orderID, productID string, quantity int, price string) (*models.OrderItem, error) {
	f.calls = append(f.calls, addItemCall{orderID, productID, quantity, price})
	if _, ok := f.orders[orderID]; !ok {
		return nil, utils.ErrNotFound
	}
	p, ok := f.products.items[productID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	f.next++
	item := models.OrderItem{
		ID:          fmt.Sprintf("item-%d", f.next),
		OrderID:     orderID,
		ProductID:   &productID,
		Quantity:    quantity,
		Price:       price,
		ProductName: p.Name,
		ProductSKU:  p.SKU,
	}
	f.items[orderID] = append(f.items[orderID], item)
	return &item, nil
}

func (f *fakeOrderStore) ListItems(_ context.Context, orderID string) ([]models.OrderItem, error) {
	return append([]models.OrderItem{}, f.items[orderID]...), nil
}

func (f *fakeOrderStore) UpdateStatus(_ context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	o.Status = status
	f.orders[id] = o
	return &o, nil
}

type fakeUserStore struct {
	users map[string]models.User
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserStore) Create(_ context.Context, u *models.User) error {
	if _, ok := f.users[u.Username]; ok {
		return &utils.ConstraintError{Field: "username", Constraint: "users_username_key"}
	}
	u.ID = fmt.Sprintf("user-%d", len(f.users)+1)
	f.users[u.Username] = *u
	return nil
}
