package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aevohorology/storefront-service/internal/cache"
	"github.com/aevohorology/storefront-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRemote struct {
	mu sync.Mutex

	products   []domain.Product
	banners    []domain.Banner
	categories []domain.Category
	orders     []domain.Order

	failReads  bool
	failWrites bool
	calls      int
}

func (f *fakeRemote) touch() {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
}

func (f *fakeRemote) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeRemote) GetProducts(ctx context.Context) ([]domain.Product, error) {
	f.touch()
	if f.failReads {
		return nil, errors.New("remote down")
	}
	return f.products, nil
}

func (f *fakeRemote) UpsertProduct(ctx context.Context, data domain.Product) error {
	f.touch()
	if f.failWrites {
		return errors.New("remote down")
	}
	return nil
}

func (f *fakeRemote) DeleteProduct(ctx context.Context, id string) error {
	f.touch()
	if f.failWrites {
		return errors.New("remote down")
	}
	return nil
}

func (f *fakeRemote) GetBanners(ctx context.Context) ([]domain.Banner, error) {
	f.touch()
	if f.failReads {
		return nil, errors.New("remote down")
	}
	return f.banners, nil
}

func (f *fakeRemote) UpsertBanner(ctx context.Context, data domain.Banner) error {
	f.touch()
	if f.failWrites {
		return errors.New("remote down")
	}
	return nil
}

func (f *fakeRemote) DeleteBanner(ctx context.Context, id string) error {
	f.touch()
	if f.failWrites {
		return errors.New("remote down")
	}
	return nil
}

func (f *fakeRemote) GetCategories(ctx context.Context) ([]domain.Category, error) {
	f.touch()
	if f.failReads {
		return nil, errors.New("remote down")
	}
	return f.categories, nil
}

func (f *fakeRemote) UpsertCategory(ctx context.Context, data domain.Category) error {
	f.touch()
	if f.failWrites {
		return errors.New("remote down")
	}
	return nil
}

func (f *fakeRemote) DeleteCategory(ctx context.Context, id string) error {
	f.touch()
	if f.failWrites {
		return errors.New("remote down")
	}
	return nil
}

func (f *fakeRemote) GetOrders(ctx context.Context) ([]domain.Order, error) {
	f.touch()
	if f.failReads {
		return nil, errors.New("remote down")
	}
	return f.orders, nil
}

func (f *fakeRemote) AddOrder(ctx context.Context, data domain.Order) error {
	f.touch()
	if f.failWrites {
		return errors.New("remote down")
	}
	return nil
}

func (f *fakeRemote) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	f.touch()
	if f.failWrites {
		return errors.New("remote down")
	}
	return nil
}

type fakeAuth struct {
	mu           sync.Mutex
	signOutCalls int
}

func (f *fakeAuth) SignIn(ctx context.Context, email string, password string) (domain.Session, domain.User, error) {
	return domain.Session{}, domain.User{}, nil
}

func (f *fakeAuth) SignOut(ctx context.Context) error {
	f.mu.Lock()
	f.signOutCalls++
	f.mu.Unlock()
	return nil
}

func (f *fakeAuth) GetSession(ctx context.Context) (domain.Session, domain.User, error) {
	return domain.Session{}, domain.User{}, nil
}

func (f *fakeAuth) IsAdmin(ctx context.Context, userID string) (bool, error) {
	return false, nil
}

func newTestStore(t *testing.T, remote *fakeRemote, configValid bool) (*Store, *cache.SnapshotStore, *fakeAuth) {
	t.Helper()

	snapshots, err := cache.CreateNewSnapshotStore(t.TempDir())
	require.NoError(t, err)

	auth := &fakeAuth{}
	s := CreateNewStore(remote, auth, snapshots, nil, configValid)
	s.Load()
	t.Cleanup(s.Close)

	return s, snapshots, auth
}

func TestLoadFallsBackToSeedOnColdCache(t *testing.T) {
	s, _, _ := newTestStore(t, &fakeRemote{}, true)

	assert.True(t, s.Loaded())
	assert.Len(t, s.Products(), len(SeedProducts()))
	assert.Len(t, s.Banners(), len(SeedBanners()))
	assert.Len(t, s.Categories(), len(SeedCategories()))
	assert.Empty(t, s.Wishlist())
}

func TestLoadPrefersCachedSnapshots(t *testing.T) {
	snapshots, err := cache.CreateNewSnapshotStore(t.TempDir())
	require.NoError(t, err)

	cached := []domain.Product{{ID: "p1", Name: "Cached Clock", Stock: 5}}
	require.NoError(t, snapshots.WriteProducts(cached))
	require.NoError(t, snapshots.WriteWishlist([]string{"p1"}))

	s := CreateNewStore(&fakeRemote{}, &fakeAuth{}, snapshots, nil, true)
	s.Load()
	defer s.Close()

	assert.Equal(t, cached, s.Products())
	assert.Equal(t, []string{"p1"}, s.Wishlist())
}

func TestUpsertProductAddsThenReplaces(t *testing.T) {
	s, snapshots, _ := newTestStore(t, &fakeRemote{}, true)
	before := len(s.Products())

	product := domain.Product{ID: "p9", Name: "Test Regulator", Price: 100, Tag: domain.TagNone}
	assert.True(t, s.UpsertProduct(context.Background(), product))
	assert.Len(t, s.Products(), before+1)

	product.Price = 250
	assert.True(t, s.UpsertProduct(context.Background(), product))

	matches := 0
	for _, candidate := range s.Products() {
		if candidate.ID == "p9" {
			matches++
			assert.Equal(t, product, candidate)
		}
	}
	assert.Equal(t, 1, matches)

	cachedProducts, ok := snapshots.ReadProducts()
	require.True(t, ok)
	assert.Equal(t, s.Products(), cachedProducts)
}

func TestDeleteProductOptimisticWhenRemoteUnreachable(t *testing.T) {
	remote := &fakeRemote{}
	s, snapshots, _ := newTestStore(t, remote, true)

	require.True(t, s.UpsertProduct(context.Background(), domain.Product{ID: "p1", Name: "Doomed", Stock: 5}))

	remote.failWrites = true
	ok := s.DeleteProduct(context.Background(), "p1")

	assert.False(t, ok, "remote failure must surface as false")
	for _, candidate := range s.Products() {
		assert.NotEqual(t, "p1", candidate.ID)
	}

	cachedProducts, found := snapshots.ReadProducts()
	require.True(t, found)
	for _, candidate := range cachedProducts {
		assert.NotEqual(t, "p1", candidate.ID)
	}
}

func TestUpsertCategoryAppendsNewEntry(t *testing.T) {
	s, _, _ := newTestStore(t, &fakeRemote{}, true)
	before := len(s.Categories())

	assert.True(t, s.UpsertCategory(context.Background(), domain.Category{ID: "cat-9", Name: "Vault Series"}))

	categories := s.Categories()
	assert.Len(t, categories, before+1)
	assert.Contains(t, categories, domain.Category{ID: "cat-9", Name: "Vault Series"})
}

func TestToggleWishlistIsItsOwnInverse(t *testing.T) {
	s, snapshots, _ := newTestStore(t, &fakeRemote{}, true)

	s.ToggleWishlist("p3")
	assert.Equal(t, []string{"p3"}, s.Wishlist())

	cached, ok := snapshots.ReadWishlist()
	require.True(t, ok)
	assert.Equal(t, []string{"p3"}, cached)

	s.ToggleWishlist("p3")
	assert.Empty(t, s.Wishlist())

	cached, ok = snapshots.ReadWishlist()
	require.True(t, ok)
	assert.Empty(t, cached)
}

func TestInvalidConfigNeverContactsRemote(t *testing.T) {
	remote := &fakeRemote{}
	s, _, _ := newTestStore(t, remote, false)

	assert.Equal(t, StatusInvalidConfig, s.Status())

	assert.True(t, s.UpsertProduct(context.Background(), domain.Product{ID: "px", Name: "Local Only"}))
	assert.True(t, s.DeleteProduct(context.Background(), "px"))
	assert.True(t, s.UpsertBanner(context.Background(), domain.Banner{ID: "bx", Title: "Local"}))
	assert.True(t, s.DeleteBanner(context.Background(), "bx"))
	assert.True(t, s.UpsertCategory(context.Background(), domain.Category{ID: "cx", Name: "Local"}))
	assert.True(t, s.DeleteCategory(context.Background(), "cx"))
	assert.True(t, s.AddOrder(context.Background(), domain.Order{ID: "ox"}))

	s.ToggleWishlist("px")
	assert.Equal(t, []string{"px"}, s.Wishlist())

	s.Refresh(context.Background())
	assert.Equal(t, StatusInvalidConfig, s.Status())

	s.SignOut(context.Background())

	assert.Zero(t, remote.callCount())
}

func TestRefreshSkippedInsideWriteThrottle(t *testing.T) {
	remote := &fakeRemote{
		products: []domain.Product{{ID: "remote-1", Name: "Remote Clock"}},
	}
	s, _, _ := newTestStore(t, remote, true)

	base := time.Now()
	s.now = func() time.Time { return base }

	require.True(t, s.UpsertProduct(context.Background(), domain.Product{ID: "p1", Name: "Fresh Write"}))
	writeCalls := remote.callCount()
	statusBefore := s.Status()
	productsBefore := s.Products()

	s.now = func() time.Time { return base.Add(1500 * time.Millisecond) }
	s.Refresh(context.Background())

	assert.Equal(t, writeCalls, remote.callCount(), "throttled refresh must not issue reads")
	assert.Equal(t, statusBefore, s.Status())
	assert.Equal(t, productsBefore, s.Products())

	s.now = func() time.Time { return base.Add(2500 * time.Millisecond) }
	s.Refresh(context.Background())

	assert.Greater(t, remote.callCount(), writeCalls)
	assert.Equal(t, StatusOnline, s.Status())
	assert.Equal(t, remote.products, s.Products())
}

func TestRefreshReplacesNonEmptyCollections(t *testing.T) {
	remote := &fakeRemote{
		products:   []domain.Product{{ID: "r1", Name: "Remote Regulator"}},
		banners:    []domain.Banner{{ID: "rb1", Title: "Remote Banner", DisplayOrder: 1}},
		categories: []domain.Category{{ID: "rc1", Name: "Remote Category"}},
		orders:     []domain.Order{{ID: "ro1", Status: domain.OrderStatusPending}},
	}
	s, snapshots, _ := newTestStore(t, remote, true)

	s.Refresh(context.Background())

	assert.Equal(t, StatusOnline, s.Status())
	assert.Equal(t, remote.products, s.Products())
	assert.Equal(t, remote.banners, s.Banners())
	assert.Equal(t, remote.categories, s.Categories())
	assert.Equal(t, remote.orders, s.Orders())

	cachedProducts, ok := snapshots.ReadProducts()
	require.True(t, ok)
	assert.Equal(t, remote.products, cachedProducts)
}

func TestRefreshEmptyReadsLeaveStateUntouched(t *testing.T) {
	s, _, _ := newTestStore(t, &fakeRemote{}, true)

	productsBefore := s.Products()
	s.Refresh(context.Background())

	assert.Equal(t, StatusOnline, s.Status())
	assert.Equal(t, productsBefore, s.Products(), "empty remote reads must not wipe local state")
}

func TestRefreshFailureGoesOfflineAndRetainsState(t *testing.T) {
	remote := &fakeRemote{failReads: true}
	s, _, _ := newTestStore(t, remote, true)

	productsBefore := s.Products()
	s.Refresh(context.Background())

	assert.Equal(t, StatusOffline, s.Status())
	assert.Equal(t, productsBefore, s.Products())
}

func TestUpdateOrderStatusIsRemoteFirst(t *testing.T) {
	remote := &fakeRemote{
		orders: []domain.Order{{ID: "o1", Status: domain.OrderStatusPending}},
	}
	s, _, _ := newTestStore(t, remote, true)
	s.Refresh(context.Background())

	remote.failWrites = true
	assert.False(t, s.UpdateOrderStatus(context.Background(), "o1", domain.OrderStatusShipped))
	assert.Equal(t, domain.OrderStatusPending, s.Orders()[0].Status, "failed remote update must not mutate local order state")

	remote.failWrites = false
	assert.True(t, s.UpdateOrderStatus(context.Background(), "o1", domain.OrderStatusShipped))
	assert.Equal(t, domain.OrderStatusShipped, s.Orders()[0].Status)
}

func TestAuthEventsUpdateAuthState(t *testing.T) {
	s, _, _ := newTestStore(t, &fakeRemote{}, true)

	events := make(chan domain.AuthChange, 1)
	s.ConsumeAuthEvents(events)

	events <- domain.AuthChange{
		Session: domain.Session{AccessToken: "token-1"},
		User:    domain.User{ID: "u1", Email: "curator@aevo.example"},
		IsAdmin: true,
	}

	require.Eventually(t, func() bool {
		return s.Auth().Session.AccessToken == "token-1"
	}, time.Second, 10*time.Millisecond)

	auth := s.Auth()
	assert.True(t, auth.IsAdmin)
	assert.Equal(t, "curator@aevo.example", auth.User.Email)
}

func TestSignOutDelegatesToAuthService(t *testing.T) {
	s, _, auth := newTestStore(t, &fakeRemote{}, true)

	s.SignOut(context.Background())

	auth.mu.Lock()
	defer auth.mu.Unlock()
	assert.Equal(t, 1, auth.signOutCalls)
}
