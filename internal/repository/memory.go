package repository

// memory.go — in-memory repository variants.
// Selected with STORE_DRIVER=memory: the service runs without Postgres, all
// state lives in process. The same implementations back the unit tests, so a
// repository "transaction" here is a nil *gorm.DB and atomicity comes from
// the per-repo mutex (DecrementStockTx validates every delta before applying
// any of them).

import (
	"context"
	"sort"
	"sync"
	"time"

	"heladosupply/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrNotFound is returned by memory repos; the GORM variants surface
// gorm.ErrRecordNotFound instead, callers treat both as "missing record".
var ErrNotFound = gorm.ErrRecordNotFound

// ── Products ─────────────────────────────────────────────────────────────────

type memProductRepo struct {
	mu       sync.RWMutex
	products map[uuid.UUID]model.Product
}

func NewMemoryProductRepository() ProductRepository {
	return &memProductRepo{products: make(map[uuid.UUID]model.Product)}
}

func (r *memProductRepo) List(_ context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *memProductRepo) Upsert(_ context.Context, p *model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = *p
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

func (r *memProductRepo) ListBelowMinimum(_ context.Context) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Product
	for _, p := range r.products {
		if p.Stock <= p.MinStock {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memProductRepo) DecrementStockTx(_ *gorm.DB, deltas []StockDelta) (*uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Validate everything first so a failure leaves no stock modified.
	for _, d := range deltas {
		p, ok := r.products[d.ProductID]
		if !ok || p.Stock < d.Quantity {
			id := d.ProductID
			return &id, nil
		}
	}
	for _, d := range deltas {
		p := r.products[d.ProductID]
		p.Stock -= d.Quantity
		r.products[d.ProductID] = p
	}
	return nil, nil
}

func (r *memProductRepo) DB() *gorm.DB { return nil }

// ── Customers ────────────────────────────────────────────────────────────────

type memCustomerRepo struct {
	mu        sync.RWMutex
	customers map[uuid.UUID]model.Customer
}

func NewMemoryCustomerRepository() CustomerRepository {
	return &memCustomerRepo{customers: make(map[uuid.UUID]model.Customer)}
}

func (r *memCustomerRepo) List(_ context.Context) ([]model.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.customers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r *memCustomerRepo) Upsert(_ context.Context, c *model.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.customers[c.ID] = *c
	return nil
}

func (r *memCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.customers, id)
	return nil
}

// ── Orders ───────────────────────────────────────────────────────────────────

type memOrderRepo struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]model.Order
}

func NewMemoryOrderRepository() OrderRepository {
	return &memOrderRepo{orders: make(map[uuid.UUID]model.Order)}
}

func (r *memOrderRepo) List(_ context.Context) ([]model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *memOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &o, nil
}

func (r *memOrderRepo) CreateTx(_ context.Context, _ *gorm.DB, o *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	for i := range o.Items {
		if o.Items[i].ID == uuid.Nil {
			o.Items[i].ID = uuid.New()
		}
		o.Items[i].OrderID = o.ID
	}
	r.orders[o.ID] = *o
	return nil
}

func (r *memOrderRepo) Upsert(ctx context.Context, o *model.Order) error {
	return r.CreateTx(ctx, nil, o)
}

func (r *memOrderRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.orders)), nil
}

func (r *memOrderRepo) TotalSales(_ context.Context) (decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := decimal.Zero
	for _, o := range r.orders {
		total = total.Add(o.Total)
	}
	return total, nil
}

func (r *memOrderRepo) TopProduct(_ context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	qty := make(map[string]int)
	for _, o := range r.orders {
		for _, item := range o.Items {
			qty[item.ProductName] += item.Quantity
		}
	}
	top, best := "", 0
	for name, n := range qty {
		if n > best || (n == best && name < top) {
			top, best = name, n
		}
	}
	return top, nil
}

func (r *memOrderRepo) SalesSince(_ context.Context, since time.Time) (map[string]decimal.Decimal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	byDay := make(map[string]decimal.Decimal)
	for _, o := range r.orders {
		if o.Date.Before(since) {
			continue
		}
		day := o.Date.Format("2006-01-02")
		byDay[day] = byDay[day].Add(o.Total)
	}
	return byDay, nil
}

func (r *memOrderRepo) DB() *gorm.DB { return nil }

// ── Providers / Discounts / Purchases / Users ────────────────────────────────

type memProviderRepo struct {
	mu        sync.RWMutex
	providers map[uuid.UUID]model.Provider
}

func NewMemoryProviderRepository() ProviderRepository {
	return &memProviderRepo{providers: make(map[uuid.UUID]model.Provider)}
}

func (r *memProviderRepo) List(_ context.Context) ([]model.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Provider, 0, len(r.providers))
	for _, p := range r.providers {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memProviderRepo) Upsert(_ context.Context, p *model.Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.providers[p.ID] = *p
	return nil
}

func (r *memProviderRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.providers, id)
	return nil
}

type memDiscountRepo struct {
	mu        sync.RWMutex
	discounts map[uuid.UUID]model.Discount
}

func NewMemoryDiscountRepository() DiscountRepository {
	return &memDiscountRepo{discounts: make(map[uuid.UUID]model.Discount)}
}

func (r *memDiscountRepo) List(_ context.Context) ([]model.Discount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Discount, 0, len(r.discounts))
	for _, d := range r.discounts {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memDiscountRepo) Upsert(_ context.Context, d *model.Discount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.discounts[d.ID] = *d
	return nil
}

func (r *memDiscountRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.discounts, id)
	return nil
}

type memPurchaseRepo struct {
	mu        sync.RWMutex
	purchases map[uuid.UUID]model.Purchase
}

func NewMemoryPurchaseRepository() PurchaseRepository {
	return &memPurchaseRepo{purchases: make(map[uuid.UUID]model.Purchase)}
}

func (r *memPurchaseRepo) List(_ context.Context) ([]model.Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Purchase, 0, len(r.purchases))
	for _, p := range r.purchases {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *memPurchaseRepo) Upsert(_ context.Context, p *model.Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.purchases[p.ID] = *p
	return nil
}

func (r *memPurchaseRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.purchases, id)
	return nil
}

type memUserRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]model.AppUser
}

func NewMemoryUserRepository() UserRepository {
	return &memUserRepo{users: make(map[uuid.UUID]model.AppUser)}
}

func (r *memUserRepo) List(_ context.Context) ([]model.AppUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.AppUser, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (r *memUserRepo) Upsert(_ context.Context, u *model.AppUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}
