package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vistatrip/listings-backend-go/internal/models"
	"github.com/vistatrip/listings-backend-go/internal/service"
	"github.com/vistatrip/listings-backend-go/pkg/response"
)

var validKinds = map[string]bool{
	models.KindHotel:     true,
	models.KindHomestay:  true,
	models.KindRoom:      true,
	models.KindActivity:  true,
	models.KindTransport: true,
	models.KindFood:      true,
	models.KindShopping:  true,
}

// searchRequest mirrors the filter controls of the listing screens.
// Repeated query params bind into the multi-select slices.
type searchRequest struct {
	Destination   string    `form:"destination"`
	CheckIn       time.Time `form:"checkIn" time_format:"2006-01-02"`
	CheckOut      time.Time `form:"checkOut" time_format:"2006-01-02"`
	PriceMin      float64   `form:"priceMin"`
	PriceMax      float64   `form:"priceMax"`
	MinRating     float64   `form:"minRating"`
	Types         []string  `form:"type"`
	StarRatings   []string  `form:"starRating"`
	BedTypes      []string  `form:"bedType"`
	Views         []string  `form:"view"`
	Amenities     []string  `form:"amenity"`
	Accessibility []string  `form:"accessibility"`
	Cuisines      []string  `form:"cuisine"`
	PriceLevels   []string  `form:"priceLevel"`
	Durations     []string  `form:"duration"`
	Sponsored     *bool     `form:"sponsored"`
	Popular       *bool     `form:"popular"`
	Verified      *bool     `form:"verified"`
	Sort          string    `form:"sort"`
	NearLat       *float64  `form:"nearLat"`
	NearLon       *float64  `form:"nearLon"`
}

func (r searchRequest) toFilterQuery() models.FilterQuery {
	selections := map[string][]string{
		"type":          r.Types,
		"starRating":    r.StarRatings,
		"bedType":       r.BedTypes,
		"view":          r.Views,
		"amenity":       r.Amenities,
		"accessibility": r.Accessibility,
		"cuisine":       r.Cuisines,
		"priceLevel":    r.PriceLevels,
		"duration":      r.Durations,
	}

	flags := make(map[string]bool)
	if r.Sponsored != nil {
		flags["sponsored"] = *r.Sponsored
	}
	if r.Popular != nil {
		flags["popular"] = *r.Popular
	}
	if r.Verified != nil {
		flags["verified"] = *r.Verified
	}

	return models.FilterQuery{
		Destination: r.Destination,
		CheckIn:     r.CheckIn,
		CheckOut:    r.CheckOut,
		PriceMin:    r.PriceMin,
		PriceMax:    r.PriceMax,
		Selections:  selections,
		Flags:       flags,
		MinRating:   r.MinRating,
		Sort:        models.SortKey(r.Sort),
	}
}

// CatalogHandler handles HTTP requests for catalog searches
type CatalogHandler struct {
	service *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// SearchListings handles GET /api/v1/listings/:kind
func (h *CatalogHandler) SearchListings(c *gin.Context) {
	kind := c.Param("kind")
	if !validKinds[kind] {
		response.Error(c, http.StatusNotFound, "Unknown listing kind", nil)
		return
	}

	var req searchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	// Range validation belongs to the caller side of the engine: reject
	// here so the engine can assume well-formed input
	if !req.CheckIn.IsZero() && !req.CheckOut.IsZero() && !req.CheckIn.Before(req.CheckOut) {
		response.Error(c, http.StatusBadRequest, "Check-out must be after check-in", nil)
		return
	}
	if req.PriceMax > 0 && req.PriceMin > req.PriceMax {
		response.Error(c, http.StatusBadRequest, "Minimum price exceeds maximum price", nil)
		return
	}

	var origin *service.Origin
	if req.NearLat != nil && req.NearLon != nil {
		origin = &service.Origin{Latitude: *req.NearLat, Longitude: *req.NearLon}
	}

	result, err := h.service.Search(kind, req.toFilterQuery(), origin)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to search listings", err)
		return
	}

	response.Success(c, models.ListingsResponse{
		Data:   result.Items,
		Total:  len(result.Items),
		Facets: result.Facets,
	})
}

// GetFacets handles GET /api/v1/listings/:kind/facets
func (h *CatalogHandler) GetFacets(c *gin.Context) {
	kind := c.Param("kind")
	if !validKinds[kind] {
		response.Error(c, http.StatusNotFound, "Unknown listing kind", nil)
		return
	}

	facets, err := h.service.Facets(kind)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get facets", err)
		return
	}

	response.Success(c, facets)
}

// GetListingByID handles GET /api/v1/listing/:id
func (h *CatalogHandler) GetListingByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid listing ID", err)
		return
	}

	listing, err := h.service.GetListingByID(id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get listing", err)
		return
	}

	if listing == nil {
		response.Error(c, http.StatusNotFound, "Listing not found", nil)
		return
	}

	response.Success(c, listing)
}

// createListingRequest is the partner ingestion payload
type createListingRequest struct {
	Name          string              `json:"name" binding:"required"`
	City          string              `json:"city"`
	District      string              `json:"district"`
	Description   string              `json:"description"`
	Price         float64             `json:"price" binding:"gte=0"`
	Rating        float64             `json:"rating" binding:"gte=0,lte=5"`
	SizeSqm       float64             `json:"sizeSqm"`
	DistanceKm    float64             `json:"distanceKm"`
	Latitude      float64             `json:"latitude"`
	Longitude     float64             `json:"longitude"`
	ImageURL      string              `json:"imageUrl"`
	Sponsored     bool                `json:"sponsored"`
	Popular       bool                `json:"popular"`
	Verified      bool                `json:"verified"`
	Attributes    map[string][]string `json:"attributes"`
	Availability  []models.Period     `json:"availability"`
}

// CreateListing handles POST /api/v1/listings/:kind
func (h *CatalogHandler) CreateListing(c *gin.Context) {
	kind := c.Param("kind")
	if !validKinds[kind] {
		response.Error(c, http.StatusNotFound, "Unknown listing kind", nil)
		return
	}

	var req createListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid listing payload", err)
		return
	}

	for _, p := range req.Availability {
		if p.To.Before(p.From) {
			response.Error(c, http.StatusBadRequest, "Availability period ends before it starts", nil)
			return
		}
	}

	id, err := h.service.CreateListing(models.Listing{
		Kind:         kind,
		Name:         req.Name,
		City:         req.City,
		District:     req.District,
		Description:  req.Description,
		Price:        req.Price,
		Rating:       req.Rating,
		SizeSqm:      req.SizeSqm,
		DistanceKm:   req.DistanceKm,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		ImageURL:     req.ImageURL,
		Sponsored:    req.Sponsored,
		Popular:      req.Popular,
		Verified:     req.Verified,
		Attributes:   req.Attributes,
		Availability: req.Availability,
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to create listing", err)
		return
	}

	c.JSON(http.StatusCreated, response.Response{
		Code:    0,
		Message: "created",
		Data:    gin.H{"id": id},
	})
}
