package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/ecom/backend/internal/account"
	"github.com/ecom/backend/internal/customer"
	"github.com/ecom/backend/internal/order"
	"github.com/ecom/backend/internal/product"
)

//
// In-memory repositories backing the handler tests. They mirror the
// constraint behavior of the Postgres schema (unique username, FK checks,
// restrict-delete) so handlers can be exercised without a database.
//

type memCustomerRepo struct {
	items     map[string]*customer.Customer
	hasOrders map[string]bool
}

func newMemCustomerRepo() *memCustomerRepo {
	return &memCustomerRepo{items: map[string]*customer.Customer{}, hasOrders: map[string]bool{}}
}

func (m *memCustomerRepo) Create(ctx context.Context, c *customer.Customer) error {
	cp := *c
	cp.CreatedAt = time.Now().UTC()
	cp.UpdatedAt = cp.CreatedAt
	m.items[c.ID] = &cp
	return nil
}

func (m *memCustomerRepo) GetByID(ctx context.Context, id string) (*customer.Customer, error) {
	c, ok := m.items[id]
	if !ok {
		return nil, customer.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memCustomerRepo) List(ctx context.Context) ([]customer.Customer, error) {
	out := []customer.Customer{}
	for _, c := range m.items {
		out = append(out, *c)
	}
	return out, nil
}

func (m *memCustomerRepo) Update(ctx context.Context, id string, p customer.Patch) error {
	cur, ok := m.items[id]
	if !ok {
		return customer.ErrNotFound
	}
	if p.Name != nil {
		cur.Name = *p.Name
	}
	if p.Email != nil {
		cur.Email = *p.Email
	}
	if p.Phone != nil {
		cur.Phone = *p.Phone
	}
	cur.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *memCustomerRepo) Delete(ctx context.Context, id string) (bool, error) {
	if m.hasOrders[id] {
		return false, &pgconn.PgError{Code: "23503", ConstraintName: "orders_customer_id_fkey"}
	}
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

type memAccountRepo struct {
	items     map[string]*account.CustomerAccount
	customers *memCustomerRepo
}

func newMemAccountRepo(customers *memCustomerRepo) *memAccountRepo {
	return &memAccountRepo{items: map[string]*account.CustomerAccount{}, customers: customers}
}

func (m *memAccountRepo) usernameTaken(username, exceptID string) bool {
	for _, a := range m.items {
		if a.Username == username && a.ID != exceptID {
			return true
		}
	}
	return false
}

func (m *memAccountRepo) Create(ctx context.Context, a *account.CustomerAccount) error {
	if m.usernameTaken(a.Username, a.ID) {
		return account.ErrUsernameTaken
	}
	if _, ok := m.customers.items[a.CustomerID]; !ok {
		return account.ErrCustomerMissing
	}
	cp := *a
	cp.CreatedAt = time.Now().UTC()
	cp.UpdatedAt = cp.CreatedAt
	m.items[a.ID] = &cp
	return nil
}

func (m *memAccountRepo) GetByID(ctx context.Context, id string) (*account.CustomerAccount, error) {
	a, ok := m.items[id]
	if !ok {
		return nil, account.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *memAccountRepo) List(ctx context.Context) ([]account.CustomerAccount, error) {
	out := []account.CustomerAccount{}
	for _, a := range m.items {
		out = append(out, *a)
	}
	return out, nil
}

func (m *memAccountRepo) Update(ctx context.Context, id string, p account.Patch) error {
	cur, ok := m.items[id]
	if !ok {
		return account.ErrNotFound
	}
	if p.Username != nil {
		if m.usernameTaken(*p.Username, id) {
			return account.ErrUsernameTaken
		}
		cur.Username = *p.Username
	}
	if p.PasswordHash != nil {
		cur.PasswordHash = *p.PasswordHash
	}
	cur.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *memAccountRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

type memProductRepo struct {
	items map[string]*product.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{items: map[string]*product.Product{}}
}

func (m *memProductRepo) Create(ctx context.Context, p *product.Product) error {
	cp := *p
	cp.CreatedAt = time.Now().UTC()
	cp.UpdatedAt = cp.CreatedAt
	m.items[p.ID] = &cp
	return nil
}

func (m *memProductRepo) GetByID(ctx context.Context, id string) (*product.Product, error) {
	p, ok := m.items[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memProductRepo) GetByIDs(ctx context.Context, ids []string) (map[string]product.Product, error) {
	out := map[string]product.Product{}
	for _, id := range ids {
		if p, ok := m.items[id]; ok {
			out[id] = *p
		}
	}
	return out, nil
}

func (m *memProductRepo) List(ctx context.Context) ([]product.Product, error) {
	out := []product.Product{}
	for _, p := range m.items {
		out = append(out, *p)
	}
	return out, nil
}

func (m *memProductRepo) Update(ctx context.Context, id string, p product.Patch) error {
	cur, ok := m.items[id]
	if !ok {
		return product.ErrNotFound
	}
	if p.Name != nil {
		cur.Name = *p.Name
	}
	if p.Price != nil {
		cur.Price = *p.Price
	}
	if p.Stock != nil {
		cur.Stock = *p.Stock
	}
	cur.UpdatedAt = time.Now().UTC()
	return nil
}

func (m *memProductRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := m.items[id]; !ok {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

type memOrderRepo struct {
	orders      map[string]*order.Order
	itemsByID   map[string][]order.Item
	createCalls int
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: map[string]*order.Order{}, itemsByID: map[string][]order.Item{}}
}

func (m *memOrderRepo) Create(ctx context.Context, o *order.Order, items []order.Item) error {
	m.createCalls++
	cp := *o
	cp.CreatedAt = time.Now().UTC()
	cp.UpdatedAt = cp.CreatedAt
	m.orders[o.ID] = &cp
	m.itemsByID[o.ID] = append([]order.Item(nil), items...)
	return nil
}

func (m *memOrderRepo) GetByID(ctx context.Context, id string) (*order.Order, []order.Item, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, nil, order.ErrNotFound
	}
	cp := *o
	return &cp, m.itemsByID[id], nil
}

func (m *memOrderRepo) Items(ctx context.Context, orderID string) ([]order.Item, error) {
	if _, ok := m.orders[orderID]; !ok {
		return nil, order.ErrNotFound
	}
	return m.itemsByID[orderID], nil
}

func (m *memOrderRepo) List(ctx context.Context) ([]order.Order, error) {
	out := []order.Order{}
	for _, o := range m.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (m *memOrderRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := m.orders[id]; !ok {
		return false, nil
	}
	delete(m.orders, id)
	delete(m.itemsByID, id)
	return true, nil
}

type testEnv struct {
	router    *gin.Engine
	customers *memCustomerRepo
	accounts  *memAccountRepo
	products  *memProductRepo
	orders    *memOrderRepo
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)
	customers := newMemCustomerRepo()
	accounts := newMemAccountRepo(customers)
	products := newMemProductRepo()
	orders := newMemOrderRepo()
	svc := order.NewService(orders, customers, products)
	return &testEnv{
		router:    newRouter(zap.NewNop(), customers, accounts, products, svc),
		customers: customers,
		accounts:  accounts,
		products:  products,
		orders:    orders,
	}
}

func (e *testEnv) seedCustomer(name string) string {
	id := uuid.NewString()
	e.customers.items[id] = &customer.Customer{ID: id, Name: name}
	return id
}

func (e *testEnv) seedProduct(name, price string, stock int) string {
	id := uuid.NewString()
	e.products.items[id] = &product.Product{ID: id, Name: name, Price: price, Stock: stock}
	return id
}
