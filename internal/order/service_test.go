package order

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecom/backend/internal/customer"
	"github.com/ecom/backend/internal/product"
)

// stubOrderRepo records writes so tests can assert nothing was persisted on
// an aborted placement.
type stubOrderRepo struct {
	created     *Order
	createdItem []Item
	createCalls int
}

func (s *stubOrderRepo) Create(ctx context.Context, o *Order, items []Item) error {
	s.createCalls++
	cp := *o
	s.created = &cp
	s.createdItem = append([]Item(nil), items...)
	return nil
}

func (s *stubOrderRepo) GetByID(ctx context.Context, id string) (*Order, []Item, error) {
	if s.created == nil || s.created.ID != id {
		return nil, nil, ErrNotFound
	}
	return s.created, s.createdItem, nil
}

func (s *stubOrderRepo) Items(ctx context.Context, orderID string) ([]Item, error) {
	if s.created == nil || s.created.ID != orderID {
		return nil, ErrNotFound
	}
	return s.createdItem, nil
}

func (s *stubOrderRepo) List(ctx context.Context) ([]Order, error) {
	if s.created == nil {
		return []Order{}, nil
	}
	return []Order{*s.created}, nil
}

func (s *stubOrderRepo) Delete(ctx context.Context, id string) (bool, error) {
	if s.created == nil || s.created.ID != id {
		return false, nil
	}
	s.created = nil
	return true, nil
}

type stubCustomerRepo struct {
	items map[string]*customer.Customer
}

func (s *stubCustomerRepo) Create(ctx context.Context, c *customer.Customer) error {
	s.items[c.ID] = c
	return nil
}

func (s *stubCustomerRepo) GetByID(ctx context.Context, id string) (*customer.Customer, error) {
	c, ok := s.items[id]
	if !ok {
		return nil, customer.ErrNotFound
	}
	return c, nil
}

func (s *stubCustomerRepo) List(ctx context.Context) ([]customer.Customer, error) {
	return nil, nil
}

func (s *stubCustomerRepo) Update(ctx context.Context, id string, p customer.Patch) error {
	return nil
}

func (s *stubCustomerRepo) Delete(ctx context.Context, id string) (bool, error) {
	return false, nil
}

type stubProductRepo struct {
	items map[string]product.Product
}

func (s *stubProductRepo) Create(ctx context.Context, p *product.Product) error {
	s.items[p.ID] = *p
	return nil
}

func (s *stubProductRepo) GetByID(ctx context.Context, id string) (*product.Product, error) {
	p, ok := s.items[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	return &p, nil
}

func (s *stubProductRepo) GetByIDs(ctx context.Context, ids []string) (map[string]product.Product, error) {
	out := map[string]product.Product{}
	for _, id := range ids {
		if p, ok := s.items[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (s *stubProductRepo) List(ctx context.Context) ([]product.Product, error) { return nil, nil }

func (s *stubProductRepo) Update(ctx context.Context, id string, p product.Patch) error { return nil }

func (s *stubProductRepo) Delete(ctx context.Context, id string) (bool, error) { return false, nil }

func newTestService() (*Service, *stubOrderRepo, *stubCustomerRepo, *stubProductRepo) {
	orders := &stubOrderRepo{}
	customers := &stubCustomerRepo{items: map[string]*customer.Customer{}}
	products := &stubProductRepo{items: map[string]product.Product{}}
	svc := NewService(orders, customers, products)
	svc.now = func() time.Time { return time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC) }
	return svc, orders, customers, products
}

func TestPlace_HappyPath(t *testing.T) {
	svc, orders, customers, products := newTestService()

	custID := uuid.NewString()
	customers.items[custID] = &customer.Customer{ID: custID, Name: "Ada"}
	p1 := uuid.NewString()
	p2 := uuid.NewString()
	products.items[p1] = product.Product{ID: p1, Name: "Keyboard", Price: "199.90", Stock: 5}
	products.items[p2] = product.Product{ID: p2, Name: "Mouse", Price: "49.90", Stock: 9}

	o, err := svc.Place(context.Background(), PlaceOrderRequest{
		CustomerID: custID,
		Items: []PlaceOrderLine{
			{ProductID: p1, Quantity: 2},
			{ProductID: p2, Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, o)

	assert.Equal(t, custID, o.CustomerID)
	assert.Equal(t, "2024-07-15", o.OrderDate)
	assert.Equal(t, "449.70", o.Total) // 2*199.90 + 49.90
	assert.Equal(t, 1, orders.createCalls)
	require.Len(t, orders.createdItem, 2)

	// items carry the sale-time price snapshot, order-insensitively
	byProduct := map[string]Item{}
	for _, it := range orders.createdItem {
		byProduct[it.ProductID] = it
	}
	require.Contains(t, byProduct, p1)
	require.Contains(t, byProduct, p2)
	assert.Equal(t, "199.90", byProduct[p1].UnitPrice)
	assert.Equal(t, 2, byProduct[p1].Quantity)
	assert.Equal(t, "49.90", byProduct[p2].UnitPrice)
}

func TestPlace_UnknownProductWritesNothing(t *testing.T) {
	svc, orders, customers, products := newTestService()

	custID := uuid.NewString()
	customers.items[custID] = &customer.Customer{ID: custID, Name: "Ada"}
	p1 := uuid.NewString()
	products.items[p1] = product.Product{ID: p1, Name: "Keyboard", Price: "199.90"}
	missing := uuid.NewString()

	_, err := svc.Place(context.Background(), PlaceOrderRequest{
		CustomerID: custID,
		Items: []PlaceOrderLine{
			{ProductID: p1, Quantity: 1},
			{ProductID: missing, Quantity: 1},
		},
	})
	require.ErrorIs(t, err, ErrProductNotFound)
	assert.Contains(t, err.Error(), missing)
	assert.Zero(t, orders.createCalls, "aborted placement must not reach the store")
}

func TestPlace_UnknownCustomer(t *testing.T) {
	svc, orders, _, products := newTestService()

	p1 := uuid.NewString()
	products.items[p1] = product.Product{ID: p1, Name: "Keyboard", Price: "10.00"}

	_, err := svc.Place(context.Background(), PlaceOrderRequest{
		CustomerID: uuid.NewString(),
		Items:      []PlaceOrderLine{{ProductID: p1, Quantity: 1}},
	})
	require.ErrorIs(t, err, ErrCustomerNotFound)
	assert.Zero(t, orders.createCalls)
}

func TestPlace_EmptyItems(t *testing.T) {
	svc, orders, customers, _ := newTestService()
	custID := uuid.NewString()
	customers.items[custID] = &customer.Customer{ID: custID, Name: "Ada"}

	_, err := svc.Place(context.Background(), PlaceOrderRequest{CustomerID: custID})
	require.ErrorIs(t, err, ErrNoItems)
	assert.Zero(t, orders.createCalls)
}

func TestPlace_BadQuantity(t *testing.T) {
	svc, orders, customers, products := newTestService()
	custID := uuid.NewString()
	customers.items[custID] = &customer.Customer{ID: custID, Name: "Ada"}
	p1 := uuid.NewString()
	products.items[p1] = product.Product{ID: p1, Name: "Keyboard", Price: "10.00"}

	_, err := svc.Place(context.Background(), PlaceOrderRequest{
		CustomerID: custID,
		Items:      []PlaceOrderLine{{ProductID: p1, Quantity: 0}},
	})
	require.ErrorIs(t, err, ErrBadQuantity)
	assert.Zero(t, orders.createCalls)
}

func TestPlace_DuplicateProduct(t *testing.T) {
	svc, orders, customers, products := newTestService()
	custID := uuid.NewString()
	customers.items[custID] = &customer.Customer{ID: custID, Name: "Ada"}
	p1 := uuid.NewString()
	products.items[p1] = product.Product{ID: p1, Name: "Keyboard", Price: "10.00"}

	_, err := svc.Place(context.Background(), PlaceOrderRequest{
		CustomerID: custID,
		Items: []PlaceOrderLine{
			{ProductID: p1, Quantity: 1},
			{ProductID: p1, Quantity: 2},
		},
	})
	require.ErrorIs(t, err, ErrDuplicateProduct)
	assert.Zero(t, orders.createCalls)
}

func TestItemsOf_MissingOrder(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.ItemsOf(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestItemsOf_ReturnsPlacedItems(t *testing.T) {
	svc, _, customers, products := newTestService()

	custID := uuid.NewString()
	customers.items[custID] = &customer.Customer{ID: custID, Name: "Ada"}
	p1 := uuid.NewString()
	p2 := uuid.NewString()
	products.items[p1] = product.Product{ID: p1, Name: "Keyboard", Price: "199.90"}
	products.items[p2] = product.Product{ID: p2, Name: "Mouse", Price: "49.90"}

	o, err := svc.Place(context.Background(), PlaceOrderRequest{
		CustomerID: custID,
		Items: []PlaceOrderLine{
			{ProductID: p1, Quantity: 1},
			{ProductID: p2, Quantity: 3},
		},
	})
	require.NoError(t, err)

	items, err := svc.ItemsOf(context.Background(), o.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	got := map[string]bool{}
	for _, it := range items {
		got[it.ProductID] = true
	}
	assert.True(t, got[p1])
	assert.True(t, got[p2])
}
