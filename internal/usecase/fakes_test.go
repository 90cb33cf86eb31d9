package usecase

import (
	"context"
	"time"

	"github.com/maison-aurelle/storefront/internal/cfg"
	"github.com/maison-aurelle/storefront/internal/domain"
	"github.com/maison-aurelle/storefront/pkg/e"
	"github.com/shopspring/decimal"
)

// nopLogger keeps test output quiet
type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)        {}
func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

func testPricingCfg() *cfg.PricingCfg {
	return &cfg.PricingCfg{
		ShippingFeeCents: 599,
		TaxRate:          decimal.RequireFromString("0.08"),
	}
}

type fakeCartRepo struct {
	carts map[string]*domain.Cart
	saves int
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string]*domain.Cart)}
}

func (f *fakeCartRepo) Get(_ context.Context, userID string) (*domain.Cart, error) {
	stored, ok := f.carts[userID]
	if !ok {
		return &domain.Cart{}, nil
	}
	clone := *stored
	clone.Lines = append([]domain.CartLine(nil), stored.Lines...)
	return &clone, nil
}

func (f *fakeCartRepo) Save(_ context.Context, userID string, cart *domain.Cart) error {
	f.saves++
	f.carts[userID] = cart
	return nil
}

func (f *fakeCartRepo) Delete(_ context.Context, userID string) error {
	delete(f.carts, userID)
	return nil
}

type fakeProductRepo struct {
	products map[int64]domain.Product
	sales    map[int64]int64
}

func newFakeProductRepo(products ...domain.Product) *fakeProductRepo {
	repo := &fakeProductRepo{
		products: make(map[int64]domain.Product),
		sales:    make(map[int64]int64),
	}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (f *fakeProductRepo) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(f.products))
	// deterministic order by id for assertions
	for id := int64(1); len(out) < len(f.products); id++ {
		if p, ok := f.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}
	return &p, nil
}

func (f *fakeProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	product.ID = int64(len(f.products) + 1)
	product.CreatedAt = time.Now()
	f.products[product.ID] = *product
	return product, nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if _, ok := f.products[product.ID]; !ok {
		return nil, e.ErrProductNotFound
	}
	f.products[product.ID] = *product
	return product, nil
}

func (f *fakeProductRepo) Archive(_ context.Context, id int64) error {
	if _, ok := f.products[id]; !ok {
		return e.ErrProductNotFound
	}
	p := f.products[id]
	p.IsArchived = true
	f.products[id] = p
	return nil
}

func (f *fakeProductRepo) IncrementSales(_ context.Context, quantities map[int64]int64) error {
	for id, qty := range quantities {
		f.sales[id] += qty
	}
	return nil
}

type fakeOrderRepo struct {
	orders []domain.Order
}

func (f *fakeOrderRepo) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	order.CreatedAt = time.Now()
	f.orders = append(f.orders, *order)
	return order, nil
}

func (f *fakeOrderRepo) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	out := make([]domain.Order, 0)
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListRecent(_ context.Context, limit int) ([]domain.Order, error) {
	out := make([]domain.Order, 0, limit)
	// newest first, as the pg repo orders them
	for i := len(f.orders) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.orders[i])
	}
	return out, nil
}

type fakeOutboxRepo struct {
	events []*OutboxEvent
}

func (f *fakeOutboxRepo) Create(_ context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	event.ID = int64(len(f.events) + 1)
	f.events = append(f.events, event)
	return event, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(_ context.Context, limit int) ([]*OutboxEvent, error) {
	out := make([]*OutboxEvent, 0, limit)
	for _, ev := range f.events {
		if ev.Status == Pending && len(out) < limit {
			ev.Status = Processing
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(_ context.Context, id int64) error {
	for _, ev := range f.events {
		if ev.ID == id {
			ev.Status = Processed
		}
	}
	return nil
}

type fakeProfileRepo struct {
	profiles map[string]*domain.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*domain.Profile)}
}

func (f *fakeProfileRepo) Get(_ context.Context, userID string) (*domain.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return &domain.Profile{UserID: userID}, nil
	}
	clone := *p
	return &clone, nil
}

func (f *fakeProfileRepo) Save(_ context.Context, profile *domain.Profile) error {
	f.profiles[profile.UserID] = profile
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]*domain.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*domain.Session)}
}

func (f *fakeSessionRepo) Save(_ context.Context, session *domain.Session) error {
	f.sessions[session.Token] = session
	return nil
}

func (f *fakeSessionRepo) Get(_ context.Context, token string) (*domain.Session, error) {
	s, ok := f.sessions[token]
	if !ok {
		return nil, e.ErrSessionNotFound
	}
	return s, nil
}

func (f *fakeSessionRepo) Delete(_ context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}
