package cache

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/aevohorology/storefront-service/internal/domain"
	"github.com/rs/zerolog/log"
)

const (
	slotProducts   = "products.json"
	slotBanners    = "banners.json"
	slotCategories = "categories.json"
	slotWishlist   = "wishlist.json"
)

// SnapshotStore persists whole-collection snapshots in four fixed slots
// under a cache directory. There is no eviction; a slot holds the entire
// collection until the next write overwrites it.
type SnapshotStore struct {
	dir string
}

func CreateNewSnapshotStore(dir string) (*SnapshotStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	return &SnapshotStore{dir: dir}, nil
}

func (s *SnapshotStore) ReadProducts() (data []domain.Product, ok bool) {
	ok = s.readSlot(slotProducts, &data)
	return
}

func (s *SnapshotStore) WriteProducts(data []domain.Product) error {
	return s.writeSlot(slotProducts, data)
}

func (s *SnapshotStore) ReadBanners() (data []domain.Banner, ok bool) {
	ok = s.readSlot(slotBanners, &data)
	return
}

func (s *SnapshotStore) WriteBanners(data []domain.Banner) error {
	return s.writeSlot(slotBanners, data)
}

func (s *SnapshotStore) ReadCategories() (data []domain.Category, ok bool) {
	ok = s.readSlot(slotCategories, &data)
	return
}

func (s *SnapshotStore) WriteCategories(data []domain.Category) error {
	return s.writeSlot(slotCategories, data)
}

func (s *SnapshotStore) ReadWishlist() (data []string, ok bool) {
	ok = s.readSlot(slotWishlist, &data)
	return
}

func (s *SnapshotStore) WriteWishlist(data []string) error {
	return s.writeSlot(slotWishlist, data)
}

func (s *SnapshotStore) readSlot(slot string, out interface{}) bool {
	raw, err := os.ReadFile(filepath.Join(s.dir, slot))
	if err != nil {
		return false
	}

	if err := json.Unmarshal(raw, out); err != nil {
		log.Error().Err(err).Str("component", "readSlot").Str("slot", slot).Msg("")
		return false
	}

	return true
}

// writeSlot writes through a temp file and renames so a crashed write
// never leaves a truncated snapshot behind.
func (s *SnapshotStore) writeSlot(slot string, data interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, slot+".*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), filepath.Join(s.dir, slot))
}
