package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aevohorology/storefront-service/config"
	"github.com/aevohorology/storefront-service/internal/cache"
	"github.com/aevohorology/storefront-service/internal/domain"
	"github.com/aevohorology/storefront-service/internal/dto"
	"github.com/aevohorology/storefront-service/internal/store"
	"github.com/aevohorology/storefront-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRemote struct {
	failWrites bool
}

func (f *stubRemote) writeErr() error {
	if f.failWrites {
		return errors.New("remote down")
	}
	return nil
}

func (f *stubRemote) GetProducts(ctx context.Context) ([]domain.Product, error)   { return nil, nil }
func (f *stubRemote) GetBanners(ctx context.Context) ([]domain.Banner, error)     { return nil, nil }
func (f *stubRemote) GetCategories(ctx context.Context) ([]domain.Category, error) { return nil, nil }
func (f *stubRemote) GetOrders(ctx context.Context) ([]domain.Order, error)       { return nil, nil }

func (f *stubRemote) UpsertProduct(ctx context.Context, data domain.Product) error   { return f.writeErr() }
func (f *stubRemote) DeleteProduct(ctx context.Context, id string) error             { return f.writeErr() }
func (f *stubRemote) UpsertBanner(ctx context.Context, data domain.Banner) error     { return f.writeErr() }
func (f *stubRemote) DeleteBanner(ctx context.Context, id string) error              { return f.writeErr() }
func (f *stubRemote) UpsertCategory(ctx context.Context, data domain.Category) error { return f.writeErr() }
func (f *stubRemote) DeleteCategory(ctx context.Context, id string) error            { return f.writeErr() }
func (f *stubRemote) AddOrder(ctx context.Context, data domain.Order) error          { return f.writeErr() }
func (f *stubRemote) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	return f.writeErr()
}

type stubAuth struct{}

func (stubAuth) SignIn(ctx context.Context, email, password string) (domain.Session, domain.User, error) {
	return domain.Session{AccessToken: "token-1"}, domain.User{ID: "u1", Email: email}, nil
}
func (stubAuth) SignOut(ctx context.Context) error { return nil }
func (stubAuth) GetSession(ctx context.Context) (domain.Session, domain.User, error) {
	return domain.Session{}, domain.User{}, nil
}
func (stubAuth) IsAdmin(ctx context.Context, userID string) (bool, error) { return false, nil }

func newTestService(t *testing.T, remote *stubRemote) (StorefrontService, *store.Store) {
	t.Helper()

	snapshots, err := cache.CreateNewSnapshotStore(t.TempDir())
	require.NoError(t, err)

	dataStore := store.CreateNewStore(remote, stubAuth{}, snapshots, nil, true)
	dataStore.Load()
	t.Cleanup(dataStore.Close)

	svc := CreateNewStorefrontService(dataStore, stubAuth{}, nil, nil, &config.Config{})
	return svc, dataStore
}

func TestCheckoutPricesFromCatalog(t *testing.T) {
	svc, dataStore := newTestService(t, &stubRemote{})

	require.True(t, dataStore.UpsertProduct(context.Background(), domain.Product{
		ID:     "p1",
		Name:   "Meridian",
		Price:  5400,
		Images: []string{"https://cdn.aevo.example/meridian.jpg"},
	}))
	require.True(t, dataStore.UpsertProduct(context.Background(), domain.Product{
		ID:    "p2",
		Name:  "Voyager",
		Price: 1780,
	}))

	resp, err := svc.Checkout(context.Background(), dto.CheckoutRequest{
		CustomerName:  "Ada Collector",
		CustomerEmail: "ada@example.com",
		Items: []dto.CheckoutItem{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.Synced)
	assert.Equal(t, 5400.0*2+1780.0, resp.Order.Total)
	assert.Equal(t, domain.OrderStatusPending, resp.Order.Status)
	assert.NotEmpty(t, resp.Order.ID)
	assert.NotEmpty(t, resp.Order.TransactionNumber)
	require.Len(t, resp.Order.Items, 2)
	assert.Equal(t, "https://cdn.aevo.example/meridian.jpg", resp.Order.Items[0].Image)

	orders := dataStore.Orders()
	require.NotEmpty(t, orders)
	assert.Equal(t, resp.Order.ID, orders[0].ID)
}

func TestCheckoutRejectsBadRequests(t *testing.T) {
	svc, _ := newTestService(t, &stubRemote{})

	_, err := svc.Checkout(context.Background(), dto.CheckoutRequest{})
	assert.ErrorIs(t, err, errs.ErrEmptyOrder)

	_, err = svc.Checkout(context.Background(), dto.CheckoutRequest{
		Items: []dto.CheckoutItem{{ProductID: "ghost", Quantity: 1}},
	})
	assert.ErrorIs(t, err, errs.ErrNotFound)

	svcWithProduct, dataStore := newTestService(t, &stubRemote{})
	require.True(t, dataStore.UpsertProduct(context.Background(), domain.Product{ID: "p1", Name: "Meridian", Price: 100}))

	_, err = svcWithProduct.Checkout(context.Background(), dto.CheckoutRequest{
		Items: []dto.CheckoutItem{{ProductID: "p1", Quantity: 0}},
	})
	assert.ErrorIs(t, err, errs.ErrClient)
}

func TestUpsertCategoryRejectsDuplicateName(t *testing.T) {
	svc, _ := newTestService(t, &stubRemote{})

	first, err := svc.UpsertCategory(context.Background(), dto.CategoryRequest{Name: "Vault Series"})
	require.NoError(t, err)
	assert.True(t, first.Synced)

	_, err = svc.UpsertCategory(context.Background(), dto.CategoryRequest{Name: "vault series"})
	assert.ErrorIs(t, err, errs.ErrDuplicateName)
}

func TestUpsertProductFillsIDAndKeepsCreatedAt(t *testing.T) {
	svc, dataStore := newTestService(t, &stubRemote{})

	resp, err := svc.UpsertProduct(context.Background(), dto.ProductRequest{Name: "New Clock", Price: 10})
	require.NoError(t, err)

	created := resp.Data.(domain.Product)
	assert.NotEmpty(t, created.ID)
	assert.NotZero(t, created.CreatedAt)
	assert.Equal(t, domain.TagNone, created.Tag)

	resp, err = svc.UpsertProduct(context.Background(), dto.ProductRequest{
		ID:    created.ID,
		Name:  "New Clock, revised",
		Price: 12,
	})
	require.NoError(t, err)

	updated := resp.Data.(domain.Product)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	stored, found := dataStore.ProductByID(created.ID)
	require.True(t, found)
	assert.Equal(t, "New Clock, revised", stored.Name)
}

func TestGetProductsFilters(t *testing.T) {
	svc, dataStore := newTestService(t, &stubRemote{})

	require.True(t, dataStore.UpsertProduct(context.Background(), domain.Product{
		ID: "p1", Name: "Meridian Grand", Category: "Regulators", Tag: domain.TagBestSeller,
	}))
	require.True(t, dataStore.UpsertProduct(context.Background(), domain.Product{
		ID: "p2", Name: "Voyager", Category: "Carriage Clocks", Tag: domain.TagNewArrival,
	}))

	byCategory := svc.GetProducts(context.Background(), dto.ProductFilter{Category: "regulators"})
	var ids []string
	for _, p := range byCategory {
		ids = append(ids, p.ID)
	}
	assert.Contains(t, ids, "p1")
	assert.NotContains(t, ids, "p2")

	byTag := svc.GetProducts(context.Background(), dto.ProductFilter{Tag: "New Arrival"})
	require.Len(t, filterIDs(byTag, "p2"), 1)

	byQuery := svc.GetProducts(context.Background(), dto.ProductFilter{Q: "grand"})
	require.Len(t, filterIDs(byQuery, "p1"), 1)
	assert.Empty(t, filterIDs(byQuery, "p2"))
}

func filterIDs(products []domain.Product, id string) []string {
	var matched []string
	for _, p := range products {
		if p.ID == id {
			matched = append(matched, p.ID)
		}
	}
	return matched
}

func TestUpdateOrderStatusSurfacesRemoteFailure(t *testing.T) {
	remote := &stubRemote{failWrites: true}
	svc, _ := newTestService(t, remote)

	err := svc.UpdateOrderStatus(context.Background(), "o1", dto.OrderStatusRequest{Status: "Shipped"})
	assert.ErrorIs(t, err, errs.ErrRemoteUnavailable)

	err = svc.UpdateOrderStatus(context.Background(), "o1", dto.OrderStatusRequest{})
	assert.ErrorIs(t, err, errs.ErrClient)
}

func TestSessionStatusReflectsStore(t *testing.T) {
	svc, dataStore := newTestService(t, &stubRemote{})

	events := make(chan domain.AuthChange, 1)
	dataStore.ConsumeAuthEvents(events)
	events <- domain.AuthChange{
		Session: domain.Session{AccessToken: "token-1"},
		User:    domain.User{Email: "curator@aevo.example"},
		IsAdmin: true,
	}

	assert.Eventually(t, func() bool {
		status := svc.SessionStatus(context.Background())
		return status.SignedIn && status.IsAdmin && status.Email == "curator@aevo.example"
	}, time.Second, 10*time.Millisecond)
}
