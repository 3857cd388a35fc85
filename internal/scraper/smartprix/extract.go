package smartprix

import (
	"strings"

	"DeviceDB/internal/models"
	"DeviceDB/utils"

	"github.com/PuerkitoBio/goquery"
)

const (
	deviceCardSelector = ".sm-product.has-tag.has-features.has-actions"
	siteOrigin         = "https://www.smartprix.com"
)

// ExtractDevices parses the fully rendered listing HTML and returns one
// device per product card. It is a pure transformation: no network access,
// no timing, no browser state.
//
// A missing field yields a zero value for that field only. A card is
// discarded entirely when its model name or product link is missing,
// because (brand, model) is the persistence identity and the product URL
// is the record's only tie back to the source site.
func ExtractDevices(html, brand, category string) ([]models.Device, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	var devices []models.Device
	doc.Find(deviceCardSelector).Each(func(i int, card *goquery.Selection) {
		model := strings.TrimSpace(card.Find(".name h2").First().Text())
		price := strings.TrimSpace(card.Find(".price").First().Text())
		imageURL, _ := card.Find(".sm-img-wrap img").First().Attr("src")

		productURL, _ := card.Find(".name").First().Attr("href")
		if strings.HasPrefix(productURL, "/") {
			productURL = siteOrigin + productURL
		}

		var specs models.JSONStringSlice
		card.Find(".sm-feat.specs li").Each(func(_ int, li *goquery.Selection) {
			if line := strings.TrimSpace(li.Text()); line != "" {
				specs = append(specs, line)
			}
		})

		if model == "" || productURL == "" {
			return
		}

		devices = append(devices, models.Device{
			Brand:          brand,
			Model:          model,
			Category:       category,
			Price:          price,
			Specifications: specs,
			ImageURL:       imageURL,
			ProductURL:     productURL,
			SiteModelCode:  utils.ModelCodeFromURL(productURL),
		})
	})

	return devices, nil
}
