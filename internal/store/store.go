package store

import (
	"context"
	"sync"
	"time"

	"github.com/aevohorology/storefront-service/internal/cache"
	"github.com/aevohorology/storefront-service/internal/domain"
	"github.com/aevohorology/storefront-service/internal/repository"
	"github.com/rs/zerolog/log"
)

// ConnStatus is the coarse reachability of the remote data service.
type ConnStatus string

const (
	StatusOnline        ConnStatus = "online"
	StatusOffline       ConnStatus = "offline"
	StatusConnecting    ConnStatus = "connecting"
	StatusInvalidConfig ConnStatus = "invalid_config"
)

// writeThrottle suppresses a refresh that lands right after an
// optimistic write, so stale remote reads cannot clobber it mid-flight.
const writeThrottle = 2000 * time.Millisecond

type AuthState struct {
	User    domain.User
	Session domain.Session
	IsAdmin bool
}

type EventPublisher interface {
	Publish(ctx context.Context, eventType string, data interface{}) error
}

// Store is the single source of truth for catalog, order, wishlist and
// auth state. It reconciles three layers: the remote data service, the
// local snapshot cache, and in-memory collections mutated optimistically.
// Conflict handling is last-write-wins by policy; failed remote writes
// are reported as a bool and never rolled back locally.
type Store struct {
	remote      repository.RemoteRepository
	authRepo    repository.AuthRepository
	snapshots   *cache.SnapshotStore
	publisher   EventPublisher // nil when no broker is configured
	configValid bool

	mu          sync.RWMutex
	products    []domain.Product
	banners     []domain.Banner
	categories  []domain.Category
	orders      []domain.Order
	wishlist    []string
	status      ConnStatus
	loaded      bool
	auth        AuthState
	lastWriteAt time.Time

	now       func() time.Time
	done      chan struct{}
	closeOnce sync.Once
}

func CreateNewStore(remote repository.RemoteRepository, authRepo repository.AuthRepository, snapshots *cache.SnapshotStore, publisher EventPublisher, configValid bool) *Store {
	status := StatusConnecting
	if !configValid {
		status = StatusInvalidConfig
	}

	return &Store{
		remote:      remote,
		authRepo:    authRepo,
		snapshots:   snapshots,
		publisher:   publisher,
		configValid: configValid,
		status:      status,
		wishlist:    []string{},
		now:         time.Now,
		done:        make(chan struct{}),
	}
}

// Load reads the snapshot cache synchronously. Missing catalog slots
// fall back to the built-in seed dataset; a missing wishlist slot is an
// empty set.
func (s *Store) Load() {
	products, ok := s.snapshots.ReadProducts()
	if !ok {
		products = SeedProducts()
	}

	banners, ok := s.snapshots.ReadBanners()
	if !ok {
		banners = SeedBanners()
	}

	categories, ok := s.snapshots.ReadCategories()
	if !ok {
		categories = SeedCategories()
	}

	wishlist, ok := s.snapshots.ReadWishlist()
	if !ok {
		wishlist = []string{}
	}

	s.mu.Lock()
	s.products = products
	s.banners = banners
	s.categories = categories
	s.wishlist = wishlist
	s.loaded = true
	s.mu.Unlock()
}

// Refresh pulls the authoritative collections from the remote service.
// It is invoked once after startup, never on a timer. A write inside the
// throttle window makes the whole cycle a no-op, status included.
func (s *Store) Refresh(ctx context.Context) {
	if !s.configValid {
		s.setStatus(StatusInvalidConfig)
		return
	}

	s.mu.Lock()
	if s.now().Sub(s.lastWriteAt) < writeThrottle {
		s.mu.Unlock()
		return
	}
	s.status = StatusConnecting
	s.mu.Unlock()

	failed := false

	// Empty or failed reads leave prior state untouched; there is no
	// partial merge.
	products, err := s.remote.GetProducts(ctx)
	if err != nil {
		failed = true
	} else if len(products) > 0 {
		s.mu.Lock()
		s.products = products
		s.mu.Unlock()
		s.writeProductsSnapshot(products)
	}

	banners, err := s.remote.GetBanners(ctx)
	if err != nil {
		failed = true
	} else if len(banners) > 0 {
		s.mu.Lock()
		s.banners = banners
		s.mu.Unlock()
		s.writeBannersSnapshot(banners)
	}

	categories, err := s.remote.GetCategories(ctx)
	if err != nil {
		failed = true
	} else if len(categories) > 0 {
		s.mu.Lock()
		s.categories = categories
		s.mu.Unlock()
		s.writeCategoriesSnapshot(categories)
	}

	// Orders have no cache mirror.
	orders, err := s.remote.GetOrders(ctx)
	if err != nil {
		failed = true
	} else if len(orders) > 0 {
		s.mu.Lock()
		s.orders = orders
		s.mu.Unlock()
	}

	if failed {
		s.setStatus(StatusOffline)
	} else {
		s.setStatus(StatusOnline)
	}
}

// ConsumeAuthEvents applies auth change notifications until the feed is
// closed or the store shuts down.
func (s *Store) ConsumeAuthEvents(events <-chan domain.AuthChange) {
	go func() {
		for {
			select {
			case <-s.done:
				return
			case change, ok := <-events:
				if !ok {
					return
				}
				s.mu.Lock()
				s.auth = AuthState{User: change.User, Session: change.Session, IsAdmin: change.IsAdmin}
				s.mu.Unlock()
			}
		}
	}()
}

// SignOut delegates to the remote auth service. Store auth state is only
// updated through the change subscription, not here.
func (s *Store) SignOut(ctx context.Context) {
	if !s.configValid {
		return
	}

	if err := s.authRepo.SignOut(ctx); err != nil {
		log.Error().Err(err).Str("component", "SignOut").Msg("")
	}
}

func (s *Store) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *Store) Status() ConnStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *Store) Auth() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.auth
}

func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Product(nil), s.products...)
}

func (s *Store) ProductByID(id string) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (s *Store) Banners() []domain.Banner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Banner(nil), s.banners...)
}

func (s *Store) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Category(nil), s.categories...)
}

func (s *Store) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Order(nil), s.orders...)
}

func (s *Store) Wishlist() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.wishlist...)
}

func (s *Store) setStatus(status ConnStatus) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}

func (s *Store) publish(eventType string, data interface{}) {
	if s.publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.publisher.Publish(ctx, eventType, data); err != nil {
		log.Error().Err(err).Str("component", "publish").Str("event", eventType).Msg("")
	}
}

func (s *Store) writeProductsSnapshot(data []domain.Product) {
	if err := s.snapshots.WriteProducts(data); err != nil {
		log.Error().Err(err).Str("component", "writeProductsSnapshot").Msg("")
	}
}

func (s *Store) writeBannersSnapshot(data []domain.Banner) {
	if err := s.snapshots.WriteBanners(data); err != nil {
		log.Error().Err(err).Str("component", "writeBannersSnapshot").Msg("")
	}
}

func (s *Store) writeCategoriesSnapshot(data []domain.Category) {
	if err := s.snapshots.WriteCategories(data); err != nil {
		log.Error().Err(err).Str("component", "writeCategoriesSnapshot").Msg("")
	}
}

func (s *Store) writeWishlistSnapshot(data []string) {
	if err := s.snapshots.WriteWishlist(data); err != nil {
		log.Error().Err(err).Str("component", "writeWishlistSnapshot").Msg("")
	}
}
