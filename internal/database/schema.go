package database

import (
	"database/sql"
	"fmt"
)

// EnsureSchema creates the catalog tables when they do not exist yet
func EnsureSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS listings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL,
			name TEXT NOT NULL,
			city TEXT NOT NULL DEFAULT '',
			district TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			price REAL NOT NULL DEFAULT 0,
			rating REAL NOT NULL DEFAULT 0,
			size_sqm REAL NOT NULL DEFAULT 0,
			distance_km REAL NOT NULL DEFAULT 0,
			latitude REAL NOT NULL DEFAULT 0,
			longitude REAL NOT NULL DEFAULT 0,
			image_url TEXT NOT NULL DEFAULT '',
			sponsored INTEGER NOT NULL DEFAULT 0,
			popular INTEGER NOT NULL DEFAULT 0,
			verified INTEGER NOT NULL DEFAULT 0,
			attributes TEXT NOT NULL DEFAULT '{}',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_listings_kind ON listings(kind)`,
		`CREATE INDEX IF NOT EXISTS idx_listings_city ON listings(kind, city)`,
		`CREATE TABLE IF NOT EXISTS availability_periods (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			listing_id INTEGER NOT NULL REFERENCES listings(id) ON DELETE CASCADE,
			from_date TEXT NOT NULL,
			to_date TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_availability_listing ON availability_periods(listing_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
