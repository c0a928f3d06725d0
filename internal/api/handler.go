package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/waveguard/risk-engine/internal/fetch"
	"github.com/waveguard/risk-engine/internal/models"
)

// TsunamiAssessor produces the aggregated tsunami verdict.
type TsunamiAssessor interface {
	Assess(ctx context.Context, location models.GeoPoint, selector fetch.FeedSelector) (*models.OverallTsunamiAssessment, error)
}

// CycloneAssessor produces the cyclone verdict.
type CycloneAssessor interface {
	Assess(ctx context.Context, location models.GeoPoint, address string) (*models.CycloneAssessment, error)
}

type Handler struct {
	tsunami TsunamiAssessor
	cyclone CycloneAssessor
}

func NewHandler(tsunami TsunamiAssessor, cyclone CycloneAssessor) *Handler {
	return &Handler{
		tsunami: tsunami,
		cyclone: cyclone,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/assess/tsunami-risk", h.assessTsunamiRisk)
	r.POST("/assess/cyclone-risk", h.assessCycloneRisk)
	r.GET("/health", h.health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

type tsunamiRiskRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	FeedType  string   `json:"feed_type"`
}

type cycloneRiskRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   string   `json:"address"`
}

func (h *Handler) assessTsunamiRisk(c *gin.Context) {
	var req tsunamiRiskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	location, ok := validateLocation(c, req.Latitude, req.Longitude)
	if !ok {
		return
	}

	selector, ok := fetch.ParseFeedSelector(req.FeedType)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "unknown feed_type: " + req.FeedType,
		})
		return
	}

	assessment, err := h.tsunami.Assess(c.Request.Context(), location, selector)
	if err != nil {
		respondFetchFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, assessment)
}

func (h *Handler) assessCycloneRisk(c *gin.Context) {
	var req cycloneRiskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	location, ok := validateLocation(c, req.Latitude, req.Longitude)
	if !ok {
		return
	}

	assessment, err := h.cyclone.Assess(c.Request.Context(), location, req.Address)
	if err != nil {
		respondFetchFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, assessment)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// validateLocation enforces presence and range with field-level
// messages. Returns ok=false after writing the 400 response.
func validateLocation(c *gin.Context, lat, lng *float64) (models.GeoPoint, bool) {
	if lat == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude is required"})
		return models.GeoPoint{}, false
	}
	if lng == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "longitude is required"})
		return models.GeoPoint{}, false
	}
	if *lat < -90 || *lat > 90 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude must be between -90 and 90"})
		return models.GeoPoint{}, false
	}
	if *lng < -180 || *lng > 180 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "longitude must be between -180 and 180"})
		return models.GeoPoint{}, false
	}
	return models.GeoPoint{Latitude: *lat, Longitude: *lng}, true
}

// respondFetchFailure maps a typed fetch failure to a 502 carrying
// the reason code, so callers can tell "assessment unavailable" apart
// from "all clear". Anything else is a plain 500.
func respondFetchFailure(c *gin.Context, err error) {
	var fe *fetch.Error
	if errors.As(err, &fe) {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":  "assessment unavailable - data source unreachable",
			"source": fe.Source,
			"reason": string(fe.Reason),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to assess risk"})
}
