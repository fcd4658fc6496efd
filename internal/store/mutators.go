package store

import (
	"context"

	"github.com/aevohorology/storefront-service/internal/domain"
	"github.com/rs/zerolog/log"
)

// Catalog mutators share one optimistic contract: stamp the write time,
// mutate memory and cache first, then attempt the remote write. The bool
// reports only the remote outcome; local state is never rolled back.
// With an invalid remote config the local mutation alone counts as
// success.

func (s *Store) UpsertProduct(ctx context.Context, product domain.Product) bool {
	s.mu.Lock()
	s.lastWriteAt = s.now()
	replaced := false
	for i, existing := range s.products {
		if existing.ID == product.ID {
			s.products[i] = product
			replaced = true
			break
		}
	}
	if !replaced {
		s.products = append([]domain.Product{product}, s.products...)
	}
	snapshot := append([]domain.Product(nil), s.products...)
	s.mu.Unlock()

	s.writeProductsSnapshot(snapshot)

	if !s.configValid {
		return true
	}

	if err := s.remote.UpsertProduct(ctx, product); err != nil {
		log.Error().Err(err).Str("component", "UpsertProduct").Str("id", product.ID).Msg("")
		return false
	}

	s.publish("product_upserted", product)
	return true
}

func (s *Store) DeleteProduct(ctx context.Context, id string) bool {
	s.mu.Lock()
	s.lastWriteAt = s.now()
	kept := s.products[:0:0]
	for _, existing := range s.products {
		if existing.ID != id {
			kept = append(kept, existing)
		}
	}
	s.products = kept
	snapshot := append([]domain.Product(nil), s.products...)
	s.mu.Unlock()

	s.writeProductsSnapshot(snapshot)

	if !s.configValid {
		return true
	}

	if err := s.remote.DeleteProduct(ctx, id); err != nil {
		log.Error().Err(err).Str("component", "DeleteProduct").Str("id", id).Msg("")
		return false
	}

	s.publish("product_deleted", map[string]string{"id": id})
	return true
}

func (s *Store) UpsertBanner(ctx context.Context, banner domain.Banner) bool {
	s.mu.Lock()
	s.lastWriteAt = s.now()
	replaced := false
	for i, existing := range s.banners {
		if existing.ID == banner.ID {
			s.banners[i] = banner
			replaced = true
			break
		}
	}
	if !replaced {
		s.banners = append(s.banners, banner)
	}
	snapshot := append([]domain.Banner(nil), s.banners...)
	s.mu.Unlock()

	s.writeBannersSnapshot(snapshot)

	if !s.configValid {
		return true
	}

	if err := s.remote.UpsertBanner(ctx, banner); err != nil {
		log.Error().Err(err).Str("component", "UpsertBanner").Str("id", banner.ID).Msg("")
		return false
	}

	s.publish("banner_upserted", banner)
	return true
}

func (s *Store) DeleteBanner(ctx context.Context, id string) bool {
	s.mu.Lock()
	s.lastWriteAt = s.now()
	kept := s.banners[:0:0]
	for _, existing := range s.banners {
		if existing.ID != id {
			kept = append(kept, existing)
		}
	}
	s.banners = kept
	snapshot := append([]domain.Banner(nil), s.banners...)
	s.mu.Unlock()

	s.writeBannersSnapshot(snapshot)

	if !s.configValid {
		return true
	}

	if err := s.remote.DeleteBanner(ctx, id); err != nil {
		log.Error().Err(err).Str("component", "DeleteBanner").Str("id", id).Msg("")
		return false
	}

	s.publish("banner_deleted", map[string]string{"id": id})
	return true
}

func (s *Store) UpsertCategory(ctx context.Context, category domain.Category) bool {
	s.mu.Lock()
	s.lastWriteAt = s.now()
	replaced := false
	for i, existing := range s.categories {
		if existing.ID == category.ID {
			s.categories[i] = category
			replaced = true
			break
		}
	}
	if !replaced {
		s.categories = append(s.categories, category)
	}
	snapshot := append([]domain.Category(nil), s.categories...)
	s.mu.Unlock()

	s.writeCategoriesSnapshot(snapshot)

	if !s.configValid {
		return true
	}

	if err := s.remote.UpsertCategory(ctx, category); err != nil {
		log.Error().Err(err).Str("component", "UpsertCategory").Str("id", category.ID).Msg("")
		return false
	}

	s.publish("category_upserted", category)
	return true
}

func (s *Store) DeleteCategory(ctx context.Context, id string) bool {
	s.mu.Lock()
	s.lastWriteAt = s.now()
	kept := s.categories[:0:0]
	for _, existing := range s.categories {
		if existing.ID != id {
			kept = append(kept, existing)
		}
	}
	s.categories = kept
	snapshot := append([]domain.Category(nil), s.categories...)
	s.mu.Unlock()

	s.writeCategoriesSnapshot(snapshot)

	if !s.configValid {
		return true
	}

	if err := s.remote.DeleteCategory(ctx, id); err != nil {
		log.Error().Err(err).Str("component", "DeleteCategory").Str("id", id).Msg("")
		return false
	}

	s.publish("category_deleted", map[string]string{"id": id})
	return true
}

// AddOrder follows the optimistic contract but skips the cache; orders
// are never mirrored locally.
func (s *Store) AddOrder(ctx context.Context, order domain.Order) bool {
	s.mu.Lock()
	s.lastWriteAt = s.now()
	s.orders = append([]domain.Order{order}, s.orders...)
	s.mu.Unlock()

	if !s.configValid {
		return true
	}

	if err := s.remote.AddOrder(ctx, order); err != nil {
		log.Error().Err(err).Str("component", "AddOrder").Str("id", order.ID).Msg("")
		return false
	}

	s.publish("order_created", order)
	return true
}

// UpdateOrderStatus is remote-first: order state is administrator-owned
// and remote-authoritative, so memory only changes once the remote
// update lands. This is a deliberate departure from the catalog
// mutators' optimistic contract.
func (s *Store) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) bool {
	if !s.configValid {
		return false
	}

	if err := s.remote.UpdateOrderStatus(ctx, id, status); err != nil {
		log.Error().Err(err).Str("component", "UpdateOrderStatus").Str("id", id).Msg("")
		return false
	}

	s.mu.Lock()
	for i, order := range s.orders {
		if order.ID == id {
			s.orders[i].Status = status
			break
		}
	}
	s.mu.Unlock()

	s.publish("order_status_updated", map[string]string{"id": id, "status": string(status)})
	return true
}

// ToggleWishlist flips a product in or out of the wishlist. Purely
// local: the set lives in memory and the snapshot cache only.
func (s *Store) ToggleWishlist(id string) {
	s.mu.Lock()
	found := false
	kept := s.wishlist[:0:0]
	for _, existing := range s.wishlist {
		if existing == id {
			found = true
			continue
		}
		kept = append(kept, existing)
	}
	if !found {
		kept = append(kept, id)
	}
	s.wishlist = kept
	snapshot := append([]string(nil), s.wishlist...)
	s.mu.Unlock()

	s.writeWishlistSnapshot(snapshot)
}
