// Package grazing implements the grazing-capacity model: animal-unit
// equivalence, pasture dry-matter yield, rotation recommendations, and the
// climate/season heuristics that feed them. Every function is total over its
// input domain: unknown species, breeds, climates, and seasons fall back to
// documented defaults instead of returning errors, because the output feeds an
// advisory screen where a coarse estimate beats a crash.
package grazing

import (
	"math"
	"strings"

	"github.com/rangeland-tools/grazeplan/internal/domain/models"
)

// maturityAgeMonths is the age past which all species are treated as full
// grown for animal-unit purposes.
const maturityAgeMonths = 24

// baseAnimalUnits maps species to AU per mature head. 1 AU is the forage
// demand of a 1,000 lb cow.
var baseAnimalUnits = map[models.Species]float64{
	models.SpeciesCattle:      1.0,
	models.SpeciesDairyCattle: 1.25,
	models.SpeciesHorses:      1.25,
	models.SpeciesSheep:       0.2,
	models.SpeciesGoats:       0.2,
	models.SpeciesBison:       1.25,
	models.SpeciesLlamas:      0.25,
	models.SpeciesAlpacas:     0.2,
}

const defaultBaseAnimalUnits = 1.0

// monthlyGrowthRates is the fractional AU gain per month for immature stock.
var monthlyGrowthRates = map[models.Species]float64{
	models.SpeciesCattle: 0.025,
	models.SpeciesSheep:  0.035,
	models.SpeciesHorses: 0.015,
	models.SpeciesGoats:  0.040,
}

// cattleBreedFactors scales frame size relative to a 1,000 lb commercial cow.
// Applies to cattle only; anything unrecognized is 1.0.
var cattleBreedFactors = map[string]float64{
	"dexter":          0.40,
	"highland":        0.75,
	"jersey":          0.80,
	"galloway":        0.85,
	"belted galloway": 0.85,
	"texas longhorn":  0.90,
	"longhorn":        0.90,
	"wagyu":           0.95,
	"angus":           1.00,
	"red angus":       1.00,
	"hereford":        1.00,
	"brangus":         1.00,
	"brahman":         1.05,
	"shorthorn":       1.05,
	"limousin":        1.10,
	"gelbvieh":        1.10,
	"simmental":       1.15,
	"charolais":       1.20,
	"maine-anjou":     1.25,
	"holstein":        1.30,
	"chianina":        1.35,
}

var physiologicalFactors = map[models.BreedingStatus]float64{
	models.StatusLactating:         1.20,
	models.StatusPregnant:          1.10,
	models.StatusPregnantLactating: 1.30,
	models.StatusGrowing:           1.10,
	models.StatusMature:            1.00,
	models.StatusBreedingMale:      1.15,
}

// ComputeAnimalUnits converts a herd description into its standardized
// animal-unit sizing. It never fails: unknown tags degrade to cattle-like
// defaults per the table comments above.
func ComputeAnimalUnits(herd models.HerdDescription) models.AnimalUnitResult {
	baseAU, ok := baseAnimalUnits[herd.Species]
	if !ok {
		baseAU = defaultBaseAnimalUnits
	}

	ageFactor := ageMultiplier(herd.Species, herd.AgeMonths)
	breedFactor := breedMultiplier(herd.Species, herd.Breed)
	physioFactor := physiologicalMultiplier(herd)

	auPerHead := baseAU * ageFactor * breedFactor * physioFactor
	totalAU := auPerHead * float64(herd.HeadCount)

	var projected float64
	if herd.AgeMonths != nil && *herd.AgeMonths < maturityAgeMonths {
		projected = totalAU * growthRate(herd.Species)
	}

	return models.AnimalUnitResult{
		TotalAnimalUnits:       round2(totalAU),
		AnimalUnitsPerHead:     round2(auPerHead),
		ProjectedGrowthMonthly: round2(projected),
		AgeFactor:              ageFactor,
		BreedFactor:            breedFactor,
		PhysiologicalFactor:    physioFactor,
	}
}

// ProjectAnimalUnitsGrowth compounds the herd's monthly growth rate forward
// and returns the projected total animal units after the given number of
// months. The projection caps at the herd's theoretical mature sizing (age
// multiplier forced to 1.0) the first month the compounded figure reaches it.
//
// This is a compound-interest approximation: the ratio from the starting month
// is reused each step rather than re-walking the piecewise age curve, so long
// projections converge to the cap faster than a month-by-month recomputation
// would.
func ProjectAnimalUnitsGrowth(herd models.HerdDescription, months int) float64 {
	baseAU, ok := baseAnimalUnits[herd.Species]
	if !ok {
		baseAU = defaultBaseAnimalUnits
	}
	breedFactor := breedMultiplier(herd.Species, herd.Breed)
	physioFactor := physiologicalMultiplier(herd)
	ageFactor := ageMultiplier(herd.Species, herd.AgeMonths)

	// Seed from the raw total: rounding here would both lose precision and,
	// for very small herds, make a growing herd look mature.
	projected := baseAU * ageFactor * breedFactor * physioFactor * float64(herd.HeadCount)
	if months <= 0 || herd.AgeMonths == nil || *herd.AgeMonths >= maturityAgeMonths {
		return round2(projected)
	}

	matureTotal := baseAU * breedFactor * physioFactor * float64(herd.HeadCount)
	rate := growthRate(herd.Species)
	for m := 0; m < months; m++ {
		projected *= 1 + rate
		if projected >= matureTotal {
			return round2(matureTotal)
		}
	}

	return round2(projected)
}

// ageMultiplier ramps AU from a fraction at birth to 1.0 at maturity along a
// per-species piecewise curve. Missing age means mature.
func ageMultiplier(species models.Species, ageMonths *int) float64 {
	if ageMonths == nil {
		return 1.0
	}
	age := float64(*ageMonths)
	if age < 0 {
		age = 0
	}

	switch species {
	case models.SpeciesSheep:
		switch {
		case age < 4:
			return 0.2 + age*0.1
		case age < 12:
			return 0.6 + (age-4)*0.05
		default:
			return 1.0
		}
	case models.SpeciesGoats:
		switch {
		case age < 6:
			return 0.25 + age*0.08
		case age < 12:
			return 0.73 + (age-6)*0.045
		default:
			return 1.0
		}
	case models.SpeciesHorses:
		switch {
		case age < 12:
			return 0.3 + age*0.05
		case age < maturityAgeMonths:
			return 0.9 + (age-12)*(0.1/12)
		default:
			return 1.0
		}
	default:
		// Cattle curve, also the fallback for bison, llamas, alpacas and
		// anything unrecognized.
		switch {
		case age < 6:
			return 0.15 + age*0.1
		case age < 12:
			return 0.75 + (age-6)*0.04
		case age < maturityAgeMonths:
			return 0.99 + (age-12)*(0.01/12)
		default:
			return 1.0
		}
	}
}

func breedMultiplier(species models.Species, breed string) float64 {
	if species != models.SpeciesCattle {
		return 1.0
	}
	if factor, ok := cattleBreedFactors[strings.ToLower(strings.TrimSpace(breed))]; ok {
		return factor
	}
	return 1.0
}

func physiologicalMultiplier(herd models.HerdDescription) float64 {
	if herd.BreedingStatus != "" {
		if factor, ok := physiologicalFactors[herd.BreedingStatus]; ok {
			return factor
		}
		return 1.0
	}
	if herd.Lactating {
		return physiologicalFactors[models.StatusLactating]
	}
	return 1.0
}

func growthRate(species models.Species) float64 {
	if rate, ok := monthlyGrowthRates[species]; ok {
		return rate
	}
	return monthlyGrowthRates[models.SpeciesCattle]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
