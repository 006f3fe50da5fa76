package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rangeland-tools/grazeplan/internal/domain/models"
	"github.com/rangeland-tools/grazeplan/internal/grazing"
)

// CalculatorHandler exposes the stateless grazing calculators over HTTP.
type CalculatorHandler struct {
	logger *zap.Logger
}

// NewCalculatorHandler constructs the HTTP handler adapter.
func NewCalculatorHandler(logger *zap.Logger) *CalculatorHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalculatorHandler{logger: logger}
}

// AnimalUnits converts a herd description into its animal-unit sizing.
func (h *CalculatorHandler) AnimalUnits(c *gin.Context) {
	var herd models.HerdDescription
	if err := c.ShouldBindJSON(&herd); err != nil {
		h.logger.Warn("invalid herd payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	c.JSON(http.StatusOK, grazing.ComputeAnimalUnits(herd))
}

// Projection compounds a herd's growth rate forward a number of months.
func (h *CalculatorHandler) Projection(c *gin.Context) {
	var req models.ProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid projection payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"months":                 req.Months,
		"projected_animal_units": grazing.ProjectAnimalUnitsGrowth(req.Herd, req.Months),
	})
}

// PastureYield estimates the available dry matter of a described pasture.
func (h *CalculatorHandler) PastureYield(c *gin.Context) {
	var req models.PastureYieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid pasture payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"available_dm_lbs": grazing.ComputePastureYield(req.Pasture, req.Acres),
	})
}

// GrazingPlan computes a rotation recommendation. Climate and season fall back
// to the region/zip classifier and the calendar when omitted.
func (h *CalculatorHandler) GrazingPlan(c *gin.Context) {
	var req models.GrazingPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid grazing plan payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	climate := req.Climate
	if climate == "" {
		switch {
		case req.Region != "":
			climate = grazing.ClimateFromRegion(req.Region)
		case req.Zip != "":
			climate = grazing.ClimateFromZip(req.Zip)
		default:
			climate = models.ClimateTemperate
		}
	}

	season := req.Season
	if season == "" {
		season = grazing.CurrentSeason()
	}

	c.JSON(http.StatusOK, grazing.ComputeGrazingPlan(req.Herd, req.Pasture, req.Acres, climate, season))
}

// Climate classifies a region or zip query into a climate bucket and reports
// the current season and rest period.
func (h *CalculatorHandler) Climate(c *gin.Context) {
	region := c.Query("region")
	zip := c.Query("zip")

	var climate models.ClimateLabel
	switch {
	case region != "":
		climate = grazing.ClimateFromRegion(region)
	case zip != "":
		climate = grazing.ClimateFromZip(zip)
	default:
		climate = models.ClimateTemperate
	}

	c.JSON(http.StatusOK, gin.H{
		"climate":          climate,
		"season":           grazing.CurrentSeason(),
		"rest_period_days": grazing.RestPeriodDays(climate),
	})
}
