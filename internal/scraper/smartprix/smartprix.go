package smartprix

import (
	"fmt"
	"log"
	"time"

	"DeviceDB/internal/models"
	"DeviceDB/pkg/config"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

// Scraper renders smartprix listing pages with a headless browser. Each
// ScrapeListing call owns an isolated browser session; sessions are never
// shared or reused across brand/category pairs.
type Scraper struct {
	ScraperConf   config.ScraperConfig
	SmartprixConf config.SmartprixConfig
}

// New creates a smartprix scraper from its config sections.
func New(scraperConf config.ScraperConfig, smartprixConf config.SmartprixConfig) *Scraper {
	return &Scraper{
		ScraperConf:   scraperConf,
		SmartprixConf: smartprixConf,
	}
}

// listingURL builds the brand listing URL for a category.
func (s *Scraper) listingURL(brand, category string) string {
	base := s.SmartprixConf.PhoneBaseURL
	if category == models.CategoryTablet {
		base = s.SmartprixConf.TabletBaseURL
	}
	return fmt.Sprintf("%smobiles/%s-brand", base, brand)
}

// ScrapeListing navigates to the brand/category listing page, clicks the
// "load more" control until it disappears and extracts every device card
// from the fully rendered document.
func (s *Scraper) ScrapeListing(brand, category string) ([]models.Device, error) {
	url := s.listingURL(brand, category)
	log.Printf("Scraping %s (%s): %s", brand, category, url)

	controlURL, err := launcher.New().Headless(s.ScraperConf.Headless).Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser for %s (%s): %w", brand, category, err)
	}
	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser for %s (%s): %w", brand, category, err)
	}
	defer browser.MustClose()

	page, err := stealth.Page(browser)
	if err != nil {
		return nil, fmt.Errorf("failed to open page for %s (%s): %w", brand, category, err)
	}
	defer page.MustClose()

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
		UserAgent: s.ScraperConf.UserAgent,
	}); err != nil {
		return nil, fmt.Errorf("failed to set user agent: %w", err)
	}

	navTimeout := time.Duration(s.ScraperConf.NavTimeoutSeconds) * time.Second
	if err := page.Timeout(navTimeout).Navigate(url); err != nil {
		return nil, fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	if err := page.Timeout(navTimeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("page load timed out for %s: %w", url, err)
	}
	// Let in-flight requests and the first batch of cards settle.
	page.Timeout(10 * time.Second).WaitStable(time.Second)

	settle := time.Duration(s.ScraperConf.SettleMillis) * time.Millisecond
	clicks, err := exhaustLoadMore(rodPager{page: page}, s.ScraperConf.MaxLoadMoreClicks, settle)
	if err != nil {
		return nil, fmt.Errorf("pagination failed for %s (%s): %w", brand, category, err)
	}
	if clicks > 0 {
		log.Printf("Loaded all results for %s (%s) after %d clicks.", brand, category, clicks)
	}

	html, err := page.HTML()
	if err != nil {
		return nil, fmt.Errorf("failed to read rendered page for %s (%s): %w", brand, category, err)
	}

	devices, err := ExtractDevices(html, brand, category)
	if err != nil {
		return nil, fmt.Errorf("extraction failed for %s (%s): %w", brand, category, err)
	}
	log.Printf("Extracted %d devices for %s (%s).", len(devices), brand, category)
	return devices, nil
}
