package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/vistatrip/listings-backend-go/internal/config"
	"github.com/vistatrip/listings-backend-go/pkg/response"
)

// AuthHandler issues partner tokens for the write endpoints
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type tokenRequest struct {
	APIKey string `json:"apiKey" binding:"required"`
}

// IssueToken handles POST /api/v1/auth/token: exchanges the shared partner
// API key for a signed short-lived JWT
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid token request", err)
		return
	}

	if req.APIKey != h.cfg.PartnerAPIKey {
		response.Error(c, http.StatusUnauthorized, "Invalid API key", nil)
		return
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "partner",
		"iat": now.Unix(),
		"exp": now.Add(h.cfg.TokenTTL).Unix(),
	})

	signed, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to sign token", err)
		return
	}

	response.Success(c, gin.H{
		"token":     signed,
		"expiresIn": int64(h.cfg.TokenTTL.Seconds()),
	})
}
