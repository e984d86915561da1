package database

import (
	"database/sql"
	"fmt"
	"log"
)

type seedListing struct {
	kind, name, city, district, description string
	price, rating, sizeSqm, distanceKm      float64
	lat, lon                                float64
	sponsored, popular, verified            bool
	attributes                              string
	periods                                 [][2]string
}

var seedCatalog = []seedListing{
	{
		kind: "hotel", name: "Harbor View Hotel", city: "Da Nang", district: "Son Tra",
		description: "Sea-facing rooms five minutes from My Khe beach",
		price: 85, rating: 4.2, distanceKm: 2.1, lat: 16.0678, lon: 108.2208, verified: true,
		attributes: `{"starRating":["3"],"amenity":["WiFi","Pool","Parking"],"accessibility":["Elevator"]}`,
		periods:    [][2]string{{"2025-09-01", "2025-12-20"}},
	},
	{
		kind: "hotel", name: "Old Quarter Inn", city: "Hanoi", district: "Hoan Kiem",
		description: "Boutique hotel in the heart of the old quarter",
		price: 120, rating: 4.7, distanceKm: 0.4, lat: 21.0345, lon: 105.8499, sponsored: true, verified: true,
		attributes: `{"starRating":["4"],"amenity":["WiFi","Spa","Gym","Breakfast"],"accessibility":["Elevator","Wheelchair"]}`,
	},
	{
		kind: "hotel", name: "Riverside Resort", city: "Hoi An", district: "Cam Chau",
		description: "Villas along the Thu Bon river with private pools",
		price: 220, rating: 4.9, distanceKm: 1.5, lat: 15.8794, lon: 108.3350,
		attributes: `{"starRating":["5"],"amenity":["Pool","Spa","Breakfast"]}`,
		periods:    [][2]string{{"2025-09-01", "2025-09-30"}, {"2025-11-01", "2026-01-31"}},
	},
	{
		kind: "room", name: "Deluxe Double, Garden Wing", city: "Hoi An", district: "Cam Chau",
		description: "28 sqm double room overlooking the garden",
		price: 95, rating: 4.5, sizeSqm: 28, popular: true,
		attributes: `{"bedType":["Double"],"view":["Garden"],"amenity":["WiFi","Minibar"]}`,
	},
	{
		kind: "room", name: "Family Suite, River Wing", city: "Hoi An", district: "Cam Chau",
		description: "52 sqm suite with two bedrooms and a river balcony",
		price: 160, rating: 4.6, sizeSqm: 52,
		attributes: `{"bedType":["Twin","Double"],"view":["River"],"amenity":["WiFi","Bathtub","Minibar"]}`,
	},
	{
		kind: "homestay", name: "Lantern House Homestay", city: "Hoi An", district: "Minh An",
		description: "Family-run homestay with cooking classes",
		price: 45, rating: 4.8, distanceKm: 0.9, verified: true,
		attributes: `{"type":["Traditional"],"amenity":["WiFi","Breakfast","Bicycle"]}`,
		periods:    [][2]string{{"2025-09-01", "2026-03-31"}},
	},
	{
		kind: "activity", name: "Basket Boat Tour", city: "Hoi An", district: "Cam Thanh",
		description: "Two-hour coconut forest basket boat ride",
		price: 25, rating: 4.6,
		attributes: `{"type":["Adventure"],"duration":["2h"]}`,
	},
	{
		kind: "activity", name: "Lantern Making Workshop", city: "Hoi An", district: "Minh An",
		description: "Craft your own silk lantern with a local artisan",
		price: 18, rating: 4.8,
		attributes: `{"type":["Cultural"],"duration":["90m"]}`,
	},
	{
		kind: "transport", name: "Airport Shuttle Da Nang", city: "Da Nang", district: "Hai Chau",
		description: "Shared shuttle between the airport and city hotels",
		price: 8, rating: 4.1,
		attributes: `{"type":["Shuttle"]}`,
	},
	{
		kind: "food", name: "Morning Glory Restaurant", city: "Hoi An", district: "Minh An",
		description: "Central Vietnamese dishes in a restored townhouse",
		price: 12, rating: 4.4, distanceKm: 0.3,
		attributes: `{"cuisine":["Vietnamese"],"priceLevel":["$$"]}`,
	},
	{
		kind: "shopping", name: "Hoi An Night Market", city: "Hoi An", district: "An Hoi",
		description: "Riverside stalls for lanterns, silk and street food",
		price: 0, rating: 4.3, distanceKm: 0.6,
		attributes: `{"type":["Market"]}`,
	},
}

// Seed inserts the starter catalog when the listings table is empty,
// so a fresh instance answers searches without an ingestion step
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM listings").Scan(&count); err != nil {
		return fmt.Errorf("failed to count listings: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}

	insert := func(tx *sql.Tx) error {
		for _, l := range seedCatalog {
			res, err := tx.Exec(`INSERT INTO listings
				(kind, name, city, district, description, price, rating, size_sqm, distance_km,
				 latitude, longitude, sponsored, popular, verified, attributes)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				l.kind, l.name, l.city, l.district, l.description, l.price, l.rating,
				l.sizeSqm, l.distanceKm, l.lat, l.lon, l.sponsored, l.popular, l.verified, l.attributes)
			if err != nil {
				return fmt.Errorf("failed to seed listing %q: %w", l.name, err)
			}

			id, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("failed to get seeded listing id: %w", err)
			}
			for _, p := range l.periods {
				if _, err := tx.Exec(
					"INSERT INTO availability_periods (listing_id, from_date, to_date) VALUES (?, ?, ?)",
					id, p[0], p[1]); err != nil {
					return fmt.Errorf("failed to seed availability for %q: %w", l.name, err)
				}
			}
		}
		return nil
	}

	if err := insert(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	log.Printf("Seeded %d catalog listings", len(seedCatalog))
	return nil
}
