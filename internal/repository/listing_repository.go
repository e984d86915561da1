package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vistatrip/listings-backend-go/internal/models"
)

const listingColumns = `id, kind, name, city, district, description, price, rating,
	size_sqm, distance_km, latitude, longitude, image_url,
	sponsored, popular, verified, attributes, created_at`

// ListingRepository handles database operations for catalog listings
type ListingRepository struct {
	db *sql.DB
}

// NewListingRepository creates a new listing repository
func NewListingRepository(db *sql.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// GetListings retrieves the candidate set for one kind, optionally narrowed
// by city. Fine-grained filtering and ordering happen in the query engine;
// the repository only does the coarse cut that keeps candidate sets small.
func (r *ListingRepository) GetListings(kind, city string) ([]models.Listing, error) {
	query := "SELECT " + listingColumns + " FROM listings WHERE kind = ?"
	args := []interface{}{kind}
	if city != "" {
		query += " AND city = ?"
		args = append(args, city)
	}
	query += " ORDER BY id"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	var listings []models.Listing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate listings: %w", err)
	}

	if err := r.attachAvailability(listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// GetListingByID retrieves a single listing, or nil when absent
func (r *ListingRepository) GetListingByID(id int64) (*models.Listing, error) {
	row := r.db.QueryRow("SELECT "+listingColumns+" FROM listings WHERE id = ?", id)

	listing, err := scanListing(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	batch := []models.Listing{listing}
	if err := r.attachAvailability(batch); err != nil {
		return nil, err
	}
	return &batch[0], nil
}

// InsertListing stores a new listing with its availability periods and
// returns the assigned ID
func (r *ListingRepository) InsertListing(listing models.Listing) (int64, error) {
	attrs, err := json.Marshal(listing.Attributes)
	if err != nil {
		return 0, fmt.Errorf("failed to encode attributes: %w", err)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	res, err := tx.Exec(`INSERT INTO listings
		(kind, name, city, district, description, price, rating, size_sqm, distance_km,
		 latitude, longitude, image_url, sponsored, popular, verified, attributes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		listing.Kind, listing.Name, listing.City, listing.District, listing.Description,
		listing.Price, listing.Rating, listing.SizeSqm, listing.DistanceKm,
		listing.Latitude, listing.Longitude, listing.ImageURL,
		listing.Sponsored, listing.Popular, listing.Verified, string(attrs))
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to insert listing: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to get inserted listing id: %w", err)
	}

	for _, p := range listing.Availability {
		if _, err := tx.Exec(
			"INSERT INTO availability_periods (listing_id, from_date, to_date) VALUES (?, ?, ?)",
			id, p.From.Format("2006-01-02"), p.To.Format("2006-01-02")); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("failed to insert availability period: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit listing insert: %w", err)
	}
	return id, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanListing(row rowScanner) (models.Listing, error) {
	var l models.Listing
	var attrs string
	var createdAt sql.NullString

	err := row.Scan(
		&l.ID, &l.Kind, &l.Name, &l.City, &l.District, &l.Description,
		&l.Price, &l.Rating, &l.SizeSqm, &l.DistanceKm, &l.Latitude, &l.Longitude,
		&l.ImageURL, &l.Sponsored, &l.Popular, &l.Verified, &attrs, &createdAt,
	)
	if err == sql.ErrNoRows {
		return l, err
	}
	if err != nil {
		return l, fmt.Errorf("failed to scan listing: %w", err)
	}

	if attrs != "" {
		if err := json.Unmarshal([]byte(attrs), &l.Attributes); err != nil {
			return l, fmt.Errorf("failed to decode attributes for listing %d: %w", l.ID, err)
		}
	}
	l.CreatedAt = createdAt.String
	return l, nil
}

// attachAvailability loads the availability periods for the given listings
// in one query and distributes them by listing ID
func (r *ListingRepository) attachAvailability(listings []models.Listing) error {
	if len(listings) == 0 {
		return nil
	}

	index := make(map[int64]int, len(listings))
	placeholders := ""
	args := make([]interface{}, 0, len(listings))
	for i, l := range listings {
		index[l.ID] = i
		if i > 0 {
			placeholders += ","
		}
		placeholders += "?"
		args = append(args, l.ID)
	}

	rows, err := r.db.Query(
		"SELECT listing_id, from_date, to_date FROM availability_periods WHERE listing_id IN ("+placeholders+") ORDER BY from_date",
		args...)
	if err != nil {
		return fmt.Errorf("failed to query availability periods: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var listingID int64
		var fromDate, toDate string
		if err := rows.Scan(&listingID, &fromDate, &toDate); err != nil {
			return fmt.Errorf("failed to scan availability period: %w", err)
		}

		from, err := time.Parse("2006-01-02", fromDate)
		if err != nil {
			return fmt.Errorf("bad from_date for listing %d: %w", listingID, err)
		}
		to, err := time.Parse("2006-01-02", toDate)
		if err != nil {
			return fmt.Errorf("bad to_date for listing %d: %w", listingID, err)
		}

		if i, ok := index[listingID]; ok {
			listings[i].Availability = append(listings[i].Availability, models.Period{From: from, To: to})
		}
	}
	return rows.Err()
}
