package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aevohorology/storefront-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColdSlotsReportMissing(t *testing.T) {
	s, err := CreateNewSnapshotStore(t.TempDir())
	require.NoError(t, err)

	_, ok := s.ReadProducts()
	assert.False(t, ok)
	_, ok = s.ReadBanners()
	assert.False(t, ok)
	_, ok = s.ReadCategories()
	assert.False(t, ok)
	_, ok = s.ReadWishlist()
	assert.False(t, ok)
}

func TestSnapshotRoundTrip(t *testing.T) {
	s, err := CreateNewSnapshotStore(t.TempDir())
	require.NoError(t, err)

	original := 1200.0
	products := []domain.Product{
		{
			ID:            "p1",
			Name:          "Round Trip Regulator",
			Price:         980,
			OriginalPrice: &original,
			Images:        []string{"https://cdn.aevo.example/p1.jpg"},
			Specs:         map[string]string{"Movement": "8-day"},
			Features:      []domain.Feature{{Title: "Reserve", Description: "Eight days"}},
			Tag:           domain.TagLatest,
			Stock:         2,
		},
	}

	require.NoError(t, s.WriteProducts(products))

	got, ok := s.ReadProducts()
	require.True(t, ok)
	assert.Equal(t, products, got)

	require.NoError(t, s.WriteWishlist([]string{"p1", "p2"}))
	wishlist, ok := s.ReadWishlist()
	require.True(t, ok)
	assert.Equal(t, []string{"p1", "p2"}, wishlist)
}

func TestWriteOverwritesPreviousSnapshot(t *testing.T) {
	s, err := CreateNewSnapshotStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.WriteCategories([]domain.Category{{ID: "c1", Name: "Old"}}))
	require.NoError(t, s.WriteCategories([]domain.Category{{ID: "c2", Name: "New"}}))

	got, ok := s.ReadCategories()
	require.True(t, ok)
	assert.Equal(t, []domain.Category{{ID: "c2", Name: "New"}}, got)
}

func TestCorruptSlotReportsMissing(t *testing.T) {
	dir := t.TempDir()
	s, err := CreateNewSnapshotStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.json"), []byte("{not json"), 0o644))

	_, ok := s.ReadProducts()
	assert.False(t, ok)
}
