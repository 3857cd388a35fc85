package app

import (
	"fmt"
	"log"
	"time"

	"DeviceDB/internal/models"
	"DeviceDB/internal/observability"
	"DeviceDB/internal/scraper"
	"DeviceDB/pkg/config"
	"DeviceDB/utils"

	"github.com/google/uuid"
)

// DeviceStore is the persistence surface the orchestrator needs: a cooldown
// lookup and an identity-keyed upsert.
type DeviceStore interface {
	FindMostRecentByBrand(brand string) (*models.Device, error)
	Upsert(device models.Device) error
}

// Notifier delivers operator status messages. Implementations are best
// effort and must never fail the caller.
type Notifier interface {
	Notify(subject, body string)
}

// App is the scrape orchestrator holding all pipeline dependencies.
type App struct {
	Config   *config.Config
	Store    DeviceStore
	Scraper  scraper.Scraper
	Notifier Notifier

	now func() time.Time
}

// New creates an orchestrator instance.
func New(cfg *config.Config, store DeviceStore, scr scraper.Scraper, notifier Notifier) *App {
	return &App{
		Config:   cfg,
		Store:    store,
		Scraper:  scr,
		Notifier: notifier,
		now:      time.Now,
	}
}

// RunCrawler executes one full run over the given brands, strictly in
// sequence. A brand's failure is logged and reported, then the run moves
// on: one bad brand never aborts the rest.
func (a *App) RunCrawler(brands []string) {
	runID := uuid.NewString()
	startMsg := fmt.Sprintf("Cron job %s started at %s", runID, a.now().Format(time.RFC3339))
	log.Println(startMsg)
	a.Notifier.Notify("DeviceDB Scraper: Cron Started", startMsg)

	for _, brand := range brands {
		brand = utils.NormalizeBrand(brand)
		if err := a.scrapeBrand(brand); err != nil {
			errMsg := fmt.Sprintf("Error for brand %s at %s:\n%v", brand, a.now().Format(time.RFC3339), err)
			log.Println(errMsg)
			observability.BrandFailures.WithLabelValues(brand).Inc()
			a.Notifier.Notify("DeviceDB Scraper: Error", errMsg)
		}
	}

	endMsg := fmt.Sprintf("Scraping run %s complete at %s", runID, a.now().Format(time.RFC3339))
	log.Println(endMsg)
	a.Notifier.Notify("DeviceDB Scraper: Success", endMsg)
}

// scrapeBrand runs the cooldown gate, both category scrapes and persistence
// for one brand. Any error it returns is that brand's failure and nothing
// more.
func (a *App) scrapeBrand(brand string) error {
	if a.Config.Scraper.CooldownHours > 0 {
		cooldown := time.Duration(a.Config.Scraper.CooldownHours) * time.Hour
		last, err := a.Store.FindMostRecentByBrand(brand)
		if err != nil {
			return fmt.Errorf("cooldown check for %s failed: %w", brand, err)
		}
		if last != nil && a.now().Sub(last.ScrapedAt) < cooldown {
			log.Printf("Skipping %s: last scraped %s ago, cooldown is %s.",
				brand, a.now().Sub(last.ScrapedAt).Round(time.Minute), cooldown)
			observability.CooldownSkips.Inc()
			return nil
		}
	}

	// Accumulator owned by this brand's iteration; nothing outlives the loop.
	var devices []models.Device
	for _, category := range []string{models.CategoryPhone, models.CategoryTablet} {
		items, err := a.Scraper.ScrapeListing(brand, category)
		if err != nil {
			return fmt.Errorf("scrape %s (%s): %w", brand, category, err)
		}
		observability.DevicesScraped.WithLabelValues(brand, category).Add(float64(len(items)))
		devices = append(devices, items...)
	}

	if len(devices) == 0 {
		log.Printf("No devices found for %s, nothing to save.", brand)
		return nil
	}

	scrapedAt := a.now()
	for i, d := range devices {
		d.ScrapedAt = scrapedAt
		if err := a.Store.Upsert(d); err != nil {
			return fmt.Errorf("save %s / %s: %w", d.Brand, d.Model, err)
		}
		log.Printf("Saved %s - %s (%s) [%d/%d]", d.Brand, d.Model, d.Category, i+1, len(devices))
	}
	log.Printf("All data for %s saved to the device store.", brand)
	return nil
}
