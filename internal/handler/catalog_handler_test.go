package handler

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/vistatrip/listings-backend-go/internal/database"
	"github.com/vistatrip/listings-backend-go/internal/middleware"
	"github.com/vistatrip/listings-backend-go/internal/models"
	"github.com/vistatrip/listings-backend-go/internal/repository"
	"github.com/vistatrip/listings-backend-go/internal/service"

	_ "modernc.org/sqlite"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) (*httptest.Server, *repository.ListingRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// A single connection keeps every query on the same in-memory database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := database.EnsureSchema(db); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}

	repo := repository.NewListingRepository(db)
	catalog := NewCatalogHandler(service.NewCatalogService(repo))

	r := gin.New()
	listings := r.Group("/api/v1/listings")
	listings.GET("/:kind", catalog.SearchListings)
	listings.GET("/:kind/facets", catalog.GetFacets)
	listings.POST("/:kind", middleware.PartnerAuth(testSecret), catalog.CreateListing)
	r.GET("/api/v1/listing/:id", catalog.GetListingByID)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts, repo
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad date %q: %v", value, err)
	}
	return parsed
}

func seedHotels(t *testing.T, repo *repository.ListingRepository) {
	t.Helper()
	hotels := []models.Listing{
		{
			Kind: models.KindHotel, Name: "Harbor View Hotel", City: "Da Nang",
			Price: 85, Rating: 4.2,
			Attributes: map[string][]string{"starRating": {"3"}, "amenity": {"WiFi", "Pool"}},
			Availability: []models.Period{
				{From: day(t, "2025-09-01"), To: day(t, "2025-09-10")},
			},
		},
		{
			Kind: models.KindHotel, Name: "Old Quarter Inn", City: "Hanoi",
			Price: 120, Rating: 4.7, Sponsored: true,
			Attributes: map[string][]string{"starRating": {"4"}, "amenity": {"WiFi", "Spa"}},
		},
		{
			Kind: models.KindHotel, Name: "Riverside Resort", City: "Hoi An",
			Price: 220, Rating: 4.9,
			Attributes: map[string][]string{"starRating": {"5"}, "amenity": {"Pool", "Spa"}},
		},
	}
	for _, h := range hotels {
		if _, err := repo.InsertListing(h); err != nil {
			t.Fatalf("seed listing %q: %v", h.Name, err)
		}
	}
}

type searchResponse struct {
	Code int    `json:"code"`
	Data struct {
		Data   []models.Listing    `json:"data"`
		Total  int                 `json:"total"`
		Facets models.FacetSummary `json:"facets"`
	} `json:"data"`
}

func getSearch(t *testing.T, url string) (int, searchResponse) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	var body searchResponse
	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp.StatusCode, body
}

func TestSearchListingsFiltersAndSorts(t *testing.T) {
	ts, repo := newTestServer(t)
	seedHotels(t, repo)

	status, body := getSearch(t, ts.URL+"/api/v1/listings/hotel?priceMin=50&priceMax=150&sort=price_asc")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if body.Data.Total != 2 {
		t.Fatalf("expected 2 results, got %d", body.Data.Total)
	}
	if body.Data.Data[0].Price != 85 || body.Data.Data[1].Price != 120 {
		t.Fatalf("wrong order: %.0f, %.0f", body.Data.Data[0].Price, body.Data.Data[1].Price)
	}

	// Facets cover the full candidate set, not the filtered result
	if len(body.Data.Facets["starRating"]) != 3 {
		t.Fatalf("expected 3 starRating facet values, got %d", len(body.Data.Facets["starRating"]))
	}
}

func TestSearchListingsRecommendedDefault(t *testing.T) {
	ts, repo := newTestServer(t)
	seedHotels(t, repo)

	status, body := getSearch(t, ts.URL+"/api/v1/listings/hotel")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if body.Data.Total != 3 {
		t.Fatalf("expected 3 results, got %d", body.Data.Total)
	}
	// Sponsored hotel first despite a lower rating than the resort
	if body.Data.Data[0].Name != "Old Quarter Inn" {
		t.Fatalf("expected the sponsored hotel first, got %q", body.Data.Data[0].Name)
	}
}

func TestSearchListingsAvailabilityContainment(t *testing.T) {
	ts, repo := newTestServer(t)
	seedHotels(t, repo)

	// Contained range: the constrained hotel and the two unconstrained ones
	status, body := getSearch(t, ts.URL+"/api/v1/listings/hotel?checkIn=2025-09-02&checkOut=2025-09-09")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if body.Data.Total != 3 {
		t.Fatalf("expected 3 results, got %d", body.Data.Total)
	}

	// Partially overlapping range: the constrained hotel drops out
	status, body = getSearch(t, ts.URL+"/api/v1/listings/hotel?checkIn=2025-08-30&checkOut=2025-09-05")
	if status != http.StatusOK {
		t.Fatalf("status = %d", status)
	}
	if body.Data.Total != 2 {
		t.Fatalf("expected 2 results, got %d", body.Data.Total)
	}
	for _, l := range body.Data.Data {
		if l.Name == "Harbor View Hotel" {
			t.Fatal("partially overlapping request must exclude the constrained hotel")
		}
	}
}

func TestSearchListingsRejectsInvertedRanges(t *testing.T) {
	ts, repo := newTestServer(t)
	seedHotels(t, repo)

	status, _ := getSearch(t, ts.URL+"/api/v1/listings/hotel?checkIn=2025-09-10&checkOut=2025-09-02")
	if status != http.StatusBadRequest {
		t.Fatalf("inverted dates: status = %d, want 400", status)
	}

	status, _ = getSearch(t, ts.URL+"/api/v1/listings/hotel?priceMin=500&priceMax=100")
	if status != http.StatusBadRequest {
		t.Fatalf("inverted prices: status = %d, want 400", status)
	}
}

func TestSearchListingsUnknownKind(t *testing.T) {
	ts, _ := newTestServer(t)

	status, _ := getSearch(t, ts.URL+"/api/v1/listings/spaceship")
	if status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
}

func TestGetListingByID(t *testing.T) {
	ts, repo := newTestServer(t)
	seedHotels(t, repo)

	resp, err := http.Get(ts.URL + "/api/v1/listing/1")
	if err != nil {
		t.Fatalf("GET listing: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	resp2, err := http.Get(ts.URL + "/api/v1/listing/999")
	if err != nil {
		t.Fatalf("GET missing listing: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp2.StatusCode)
	}
}

func TestCreateListingRoundTrip(t *testing.T) {
	ts, _ := newTestServer(t)

	payload := map[string]interface{}{
		"name":   "Lantern House Homestay",
		"city":   "Hoi An",
		"price":  45,
		"rating": 4.8,
		"attributes": map[string][]string{
			"type":    {"Traditional"},
			"amenity": {"WiFi", "Breakfast"},
		},
	}
	b, _ := json.Marshal(payload)

	// Without a token the write endpoint refuses
	resp, err := http.Post(ts.URL+"/api/v1/listings/homestay", "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("POST listing: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/v1/listings/homestay", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+signTestToken(t))

	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("POST listing with token: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	status, body := getSearch(t, ts.URL+"/api/v1/listings/homestay?destination=hoi+an")
	if status != http.StatusOK || body.Data.Total != 1 {
		t.Fatalf("created listing not searchable: status=%d total=%d", status, body.Data.Total)
	}
}

func signTestToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "partner",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}
