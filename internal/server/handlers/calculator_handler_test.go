package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/rangeland-tools/grazeplan/internal/domain/models"
)

func calcRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewCalculatorHandler(nil)
	r := gin.New()
	r.POST("/calc/animal-units", h.AnimalUnits)
	r.POST("/calc/animal-units/projection", h.Projection)
	r.POST("/calc/pasture-yield", h.PastureYield)
	r.POST("/calc/grazing-plan", h.GrazingPlan)
	r.GET("/climate", h.Climate)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnimalUnitsEndpoint(t *testing.T) {
	r := calcRouter()

	w := doJSON(t, r, http.MethodPost, "/calc/animal-units", models.HerdDescription{
		Species:   models.SpeciesCattle,
		HeadCount: 15,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result models.AnimalUnitResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Equal(t, 15.0, result.TotalAnimalUnits)
	require.Equal(t, 0.0, result.ProjectedGrowthMonthly)
}

func TestAnimalUnitsEndpoint_RejectsMissingHeadCount(t *testing.T) {
	r := calcRouter()

	w := doJSON(t, r, http.MethodPost, "/calc/animal-units", map[string]interface{}{
		"species": "cattle",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "invalid request body")
}

func TestProjectionEndpoint(t *testing.T) {
	r := calcRouter()
	age := 3

	w := doJSON(t, r, http.MethodPost, "/calc/animal-units/projection", models.ProjectionRequest{
		Herd: models.HerdDescription{
			Species:   models.SpeciesCattle,
			HeadCount: 10,
			AgeMonths: &age,
		},
		Months: 12,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result struct {
		Months    int     `json:"months"`
		Projected float64 `json:"projected_animal_units"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Equal(t, 12, result.Months)
	require.InDelta(t, 6.05, result.Projected, 0.01)
}

func TestProjectionEndpoint_RejectsNegativeMonths(t *testing.T) {
	r := calcRouter()

	w := doJSON(t, r, http.MethodPost, "/calc/animal-units/projection", map[string]interface{}{
		"herd":   map[string]interface{}{"species": "cattle", "head_count": 10},
		"months": -1,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPastureYieldEndpoint(t *testing.T) {
	r := calcRouter()

	w := doJSON(t, r, http.MethodPost, "/calc/pasture-yield", models.PastureYieldRequest{
		Pasture: models.PastureDescription{
			Type:           models.PastureLush,
			GrassHeightIn:  6,
			GroundCoverPct: 100,
			Composition: []models.SpeciesComposition{
				{Name: "alfalfa", Percent: 80},
			},
		},
		Acres: 10,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result struct {
		AvailableDmLbs float64 `json:"available_dm_lbs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.InDelta(t, 2420, result.AvailableDmLbs, 1e-6)
}

func TestGrazingPlanEndpoint_ExplicitClimateAndSeason(t *testing.T) {
	r := calcRouter()

	w := doJSON(t, r, http.MethodPost, "/calc/grazing-plan", models.GrazingPlanRequest{
		Herd: models.HerdDescription{Species: models.SpeciesCattle, HeadCount: 15},
		Pasture: models.PastureDescription{
			Type:           models.PastureMixed,
			GrassHeightIn:  6,
			GroundCoverPct: 100,
		},
		Acres:   8,
		Climate: models.ClimateTemperate,
		Season:  models.SeasonSummer,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result models.GrazingPlanResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Equal(t, 3.0, result.RecommendedDays)
	require.Equal(t, 28, result.Metrics.RestPeriodDays)
	require.NotEmpty(t, result.Reasoning)
}

func TestGrazingPlanEndpoint_ClassifiesFromZip(t *testing.T) {
	r := calcRouter()

	w := doJSON(t, r, http.MethodPost, "/calc/grazing-plan", models.GrazingPlanRequest{
		Herd: models.HerdDescription{Species: models.SpeciesCattle, HeadCount: 15},
		Pasture: models.PastureDescription{
			Type:           models.PastureMixed,
			GrassHeightIn:  6,
			GroundCoverPct: 100,
		},
		Acres:  8,
		Zip:    "74510",
		Season: models.SeasonFall,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result models.GrazingPlanResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Equal(t, 32, result.Metrics.RestPeriodDays)
}

func TestClimateEndpoint(t *testing.T) {
	r := calcRouter()

	w := doJSON(t, r, http.MethodGet, "/climate?zip=74510", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var result struct {
		Climate        string `json:"climate"`
		Season         string `json:"season"`
		RestPeriodDays int    `json:"rest_period_days"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Equal(t, "southeastern_oklahoma", result.Climate)
	require.Equal(t, 32, result.RestPeriodDays)
	require.NotEmpty(t, result.Season)

	w = doJSON(t, r, http.MethodGet, "/climate?region=Arizona", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "arid")
}
