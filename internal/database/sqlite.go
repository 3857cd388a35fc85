package database

import (
	"database/sql"
	"errors"
	"log"

	"DeviceDB/internal/models"

	_ "modernc.org/sqlite"
)

// DeviceRepository wraps the device store connection.
type DeviceRepository struct {
	DB *sql.DB
}

// InitDB opens the SQLite device store and ensures the schema exists.
// Any failure here is fatal: the pipeline must not run without persistence.
func InitDB(filepath string) *DeviceRepository {
	db, err := sql.Open("sqlite", filepath)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	if err = db.Ping(); err != nil {
		log.Fatalf("Error pinging database: %v", err)
	}

	createDevicesTableSQL := `
	CREATE TABLE IF NOT EXISTS devices (
		"id" INTEGER NOT NULL PRIMARY KEY AUTOINCREMENT,
		"brand" TEXT NOT NULL,
		"model" TEXT NOT NULL,
		"category" TEXT,
		"price" TEXT,
		"specifications" TEXT,
		"image_url" TEXT,
		"product_url" TEXT,
		"site_model_code" TEXT,
		"scraped_at" DATETIME,
		UNIQUE(brand, model)
	);`

	if _, err = db.Exec(createDevicesTableSQL); err != nil {
		log.Fatalf("Error creating devices table: %v", err)
	}

	log.Println("Device store initialized successfully.")
	return &DeviceRepository{DB: db}
}

// Close closes the store connection.
func (repo *DeviceRepository) Close() {
	repo.DB.Close()
}

// Upsert saves a device, keyed by (brand, model). An existing row for the
// same pair has all of its fields replaced; a run can therefore be repeated
// any number of times without creating duplicates.
func (repo *DeviceRepository) Upsert(device models.Device) error {
	query := `
	INSERT INTO devices (
		brand, model, category, price, specifications,
		image_url, product_url, site_model_code, scraped_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(brand, model) DO UPDATE SET
		category=excluded.category,
		price=excluded.price,
		specifications=excluded.specifications,
		image_url=excluded.image_url,
		product_url=excluded.product_url,
		site_model_code=excluded.site_model_code,
		scraped_at=excluded.scraped_at;
	`

	stmt, err := repo.DB.Prepare(query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.Exec(
		device.Brand, device.Model, device.Category, device.Price,
		device.Specifications, device.ImageURL, device.ProductURL,
		device.SiteModelCode, device.ScrapedAt,
	)
	if err != nil {
		log.Printf("Failed to save device %s / %s: %v", device.Brand, device.Model, err)
		return err
	}
	return nil
}

// FindMostRecentByBrand returns the brand's most recently scraped device,
// or nil when the brand has never been scraped. Used for the cooldown gate.
func (repo *DeviceRepository) FindMostRecentByBrand(brand string) (*models.Device, error) {
	row := repo.DB.QueryRow(`
		SELECT id, brand, model, category, price, specifications,
		       image_url, product_url, site_model_code, scraped_at
		FROM devices
		WHERE brand = ?
		ORDER BY scraped_at DESC
		LIMIT 1
	`, brand)

	var d models.Device
	err := row.Scan(
		&d.ID, &d.Brand, &d.Model, &d.Category, &d.Price, &d.Specifications,
		&d.ImageURL, &d.ProductURL, &d.SiteModelCode, &d.ScrapedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// FindByBrand returns all stored devices for a brand, matched
// case-insensitively, most recently scraped first.
func (repo *DeviceRepository) FindByBrand(brand string) ([]models.Device, error) {
	rows, err := repo.DB.Query(`
		SELECT id, brand, model, category, price, specifications,
		       image_url, product_url, site_model_code, scraped_at
		FROM devices
		WHERE LOWER(brand) = LOWER(?)
		ORDER BY scraped_at DESC, model ASC
	`, brand)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var devices []models.Device
	for rows.Next() {
		var d models.Device
		if err := rows.Scan(
			&d.ID, &d.Brand, &d.Model, &d.Category, &d.Price, &d.Specifications,
			&d.ImageURL, &d.ProductURL, &d.SiteModelCode, &d.ScrapedAt,
		); err != nil {
			log.Printf("Error scanning device row: %v", err)
			continue
		}
		devices = append(devices, d)
	}
	return devices, rows.Err()
}

// CountByBrand reports how many devices are stored for a brand.
func (repo *DeviceRepository) CountByBrand(brand string) (int, error) {
	var count int
	err := repo.DB.QueryRow(
		"SELECT COUNT(*) FROM devices WHERE LOWER(brand) = LOWER(?)", brand,
	).Scan(&count)
	return count, err
}
