package grazing

import (
	"strings"

	"github.com/rangeland-tools/grazeplan/internal/domain/models"
)

// compositionTrustThreshold is the minimum raw sum of stand percentages before
// the species-weighted yield is preferred over the coarse type-level estimate.
// A survey covering half the stand or less is treated as too sparse to trust.
const compositionTrustThreshold = 50.0

// pastureBaseYields is lbs of dry matter per acre by pasture type.
var pastureBaseYields = map[models.PastureType]float64{
	models.PastureNative: 200,
	models.PastureMixed:  250,
	models.PastureLush:   300,
}

var pastureTypeAdjustments = map[models.PastureType]float64{
	models.PastureNative: 0.9,
	models.PastureMixed:  1.0,
	models.PastureLush:   1.1,
}

const (
	defaultBaseYield      = 200
	defaultTypeAdjustment = 1.0
	defaultSpeciesYield   = 150
)

// forageSpeciesYields is lbs DM per acre at full stand for common forage
// species. Low-value entries (weeds, thistles) drag a weighted estimate down
// on purpose.
var forageSpeciesYields = map[string]float64{
	"bermudagrass": 300,
	"ryegrass":     280,
	"alfalfa":      275,
	"orchardgrass": 260,
	"fescue":       250,
	"tall fescue":  250,
	"switchgrass":  250,
	"clover":       250,
	"bahiagrass":   240,
	"johnsongrass": 230,
	"bluestem":     225,
	"crabgrass":    220,
	"lespedeza":    200,
	"native mix":   200,
	"weeds":        125,
	"thistles":     100,
}

// ComputePastureYield estimates the standing dry matter of a paddock in lbs.
// When the composition survey covers more than half the stand the estimate is
// species-weighted; otherwise it falls back to the type-level base yield.
func ComputePastureYield(pasture models.PastureDescription, acres float64) float64 {
	baseYield, ok := pastureBaseYields[pasture.Type]
	if !ok {
		baseYield = defaultBaseYield
	}
	typeAdjustment, ok := pastureTypeAdjustments[pasture.Type]
	if !ok {
		typeAdjustment = defaultTypeAdjustment
	}

	var weightedYield, totalPercentage float64
	for _, entry := range pasture.Composition {
		yield := speciesYield(entry)
		weightedYield += yield * entry.Percent / 100
		totalPercentage += entry.Percent
	}

	yield := baseYield
	if totalPercentage > compositionTrustThreshold {
		yield = weightedYield
	}

	heightMultiplier := clamp(pasture.GrassHeightIn/6, 0.3, 1.0)
	coverMultiplier := pasture.GroundCoverPct / 100

	return yield * typeAdjustment * heightMultiplier * coverMultiplier * acres
}

func speciesYield(entry models.SpeciesComposition) float64 {
	if entry.YieldOverride != nil {
		return *entry.YieldOverride
	}
	if yield, ok := forageSpeciesYields[strings.ToLower(strings.TrimSpace(entry.Name))]; ok {
		return yield
	}
	return defaultSpeciesYield
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
