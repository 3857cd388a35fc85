package database

import (
	"path/filepath"
	"testing"
	"time"

	"DeviceDB/internal/models"

	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *DeviceRepository {
	t.Helper()
	repo := InitDB(filepath.Join(t.TempDir(), "devices.db"))
	t.Cleanup(repo.Close)
	return repo
}

func sampleDevice(scrapedAt time.Time) models.Device {
	return models.Device{
		Brand:          "samsung",
		Model:          "Galaxy S24",
		Category:       models.CategoryPhone,
		Price:          "₹61,999",
		Specifications: models.JSONStringSlice{"8 GB RAM", "6.2 inches"},
		ImageURL:       "https://cdn.smartprix.com/s24.jpg",
		ProductURL:     "https://www.smartprix.com/mobiles/samsung-galaxy-s24-ppd1abc",
		SiteModelCode:  "samsung-galaxy-s24-ppd1abc",
		ScrapedAt:      scrapedAt,
	}
}

func TestUpsertIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)

	first := time.Now().Add(-time.Hour)
	require.NoError(t, repo.Upsert(sampleDevice(first)))

	// Re-scraping the same (brand, model) must replace the row, not add one.
	second := time.Now()
	updated := sampleDevice(second)
	updated.Price = "₹59,999"
	updated.Specifications = models.JSONStringSlice{"8 GB RAM", "6.2 inches", "5000 mAh"}
	require.NoError(t, repo.Upsert(updated))

	count, err := repo.CountByBrand("samsung")
	require.NoError(t, err)
	require.Equal(t, 1, count)

	got, err := repo.FindMostRecentByBrand("samsung")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "₹59,999", got.Price)
	require.Equal(t, models.JSONStringSlice{"8 GB RAM", "6.2 inches", "5000 mAh"}, got.Specifications)
	require.WithinDuration(t, second, got.ScrapedAt, time.Second)
}

func TestUpsertKeepsDistinctModelsApart(t *testing.T) {
	repo := newTestRepo(t)

	a := sampleDevice(time.Now())
	b := sampleDevice(time.Now())
	b.Model = "Galaxy Tab S9"
	b.Category = models.CategoryTablet

	require.NoError(t, repo.Upsert(a))
	require.NoError(t, repo.Upsert(b))

	count, err := repo.CountByBrand("samsung")
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestFindMostRecentByBrand(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.FindMostRecentByBrand("samsung")
	require.NoError(t, err)
	require.Nil(t, got)

	older := sampleDevice(time.Now().Add(-48 * time.Hour))
	older.Model = "Galaxy A14"
	newer := sampleDevice(time.Now())
	require.NoError(t, repo.Upsert(older))
	require.NoError(t, repo.Upsert(newer))

	got, err = repo.FindMostRecentByBrand("samsung")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Galaxy S24", got.Model)
}

func TestFindByBrandIsCaseInsensitive(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.Upsert(sampleDevice(time.Now())))

	devices, err := repo.FindByBrand("Samsung")
	require.NoError(t, err)
	require.Len(t, devices, 1)
	require.Equal(t, "samsung", devices[0].Brand)

	devices, err = repo.FindByBrand("nokia")
	require.NoError(t, err)
	require.Empty(t, devices)
}
