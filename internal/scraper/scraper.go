package scraper

import "DeviceDB/internal/models"

// Scraper defines the basic behavior for all catalog site scrapers.
// It ensures that any new source we add will follow a standard structure.
type Scraper interface {
	// ScrapeListing renders the brand's listing page for one category,
	// exhausts its pagination and returns the extracted devices.
	ScrapeListing(brand, category string) ([]models.Device, error)
}
