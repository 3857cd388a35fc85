package models

// MobilesResponse is the JSON envelope returned by POST /api/v1/mobiles.
type MobilesResponse struct {
	Status string       `json:"status"`
	Count  int          `json:"count"`
	Data   []DeviceView `json:"data"`
}

// DeviceView is the read-only projection of a Device served by the query API.
type DeviceView struct {
	Model         string `json:"model"`
	Category      string `json:"category"`
	Price         string `json:"price"`
	ImageURL      string `json:"imageUrl"`
	ProductURL    string `json:"productUrl"`
	SiteModelCode string `json:"siteModelCode"`
}

// ErrorResponse is the JSON envelope for client and server errors.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ViewOf maps a stored Device to its API projection.
func ViewOf(d Device) DeviceView {
	return DeviceView{
		Model:         d.Model,
		Category:      d.Category,
		Price:         d.Price,
		ImageURL:      d.ImageURL,
		ProductURL:    d.ProductURL,
		SiteModelCode: d.SiteModelCode,
	}
}
