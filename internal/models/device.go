package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Device categories supported by the catalog site.
const (
	CategoryPhone  = "phone"
	CategoryTablet = "tablet"
)

// Device holds one scraped catalog listing. Identity is (Brand, Model);
// the store never keeps two rows for the same pair.
type Device struct {
	ID             int64           `db:"id"`
	Brand          string          `db:"brand"`
	Model          string          `db:"model"`
	Category       string          `db:"category"`
	Price          string          `db:"price"`
	Specifications JSONStringSlice `db:"specifications"`
	ImageURL       string          `db:"image_url"`
	ProductURL     string          `db:"product_url"`
	SiteModelCode  string          `db:"site_model_code"`
	ScrapedAt      time.Time       `db:"scraped_at"`
}

// JSONStringSlice is a custom type to handle JSON serialization/deserialization for []string
type JSONStringSlice []string

// Value implements the driver.Valuer interface to convert []string to JSON for database storage
func (j JSONStringSlice) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface to convert JSON from database to []string
func (j *JSONStringSlice) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("unsupported type for JSONStringSlice")
	}
	return json.Unmarshal(bytes, j)
}
