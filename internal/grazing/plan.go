package grazing

import (
	"fmt"

	"github.com/rangeland-tools/grazeplan/internal/domain/models"
)

const (
	// dmPerAnimalUnitDay is lbs of dry matter one animal unit eats per day.
	dmPerAnimalUnitDay = 26.0
	// utilizationRate is the fraction of standing forage safe to consume;
	// the rest stays behind for pasture recovery. Not tunable.
	utilizationRate = 0.5
	// maxGrazingDays is the rotational-grazing policy ceiling for one paddock.
	maxGrazingDays = 7.0
	minGrazingDays = 1.0
)

// ComputeGrazingPlan recommends how long a herd can graze a paddock before it
// must move, along with the paddock's minimum rest period. Unknown climates
// and seasons degrade to the temperate table and the 0.15 default rate.
func ComputeGrazingPlan(herd models.HerdDescription, pasture models.PastureDescription, acres float64, climate models.ClimateLabel, season models.SeasonLabel) models.GrazingPlanResult {
	au := ComputeAnimalUnits(herd)
	dailyDmRequired := au.TotalAnimalUnits * dmPerAnimalUnitDay

	totalAvailableDm := ComputePastureYield(pasture, acres)
	utilizableDm := totalAvailableDm * utilizationRate

	basicGrazingDays := 0.0
	if dailyDmRequired > 0 {
		basicGrazingDays = utilizableDm / dailyDmRequired
	}

	growthRate := SeasonalGrowthRate(climate, season)
	adjustedGrazingDays := round2(basicGrazingDays * (1 + growthRate))

	recommendedDays := adjustedGrazingDays
	if recommendedDays > maxGrazingDays {
		recommendedDays = maxGrazingDays
	}
	if recommendedDays < minGrazingDays {
		recommendedDays = minGrazingDays
	}

	restDays := RestPeriodDays(climate)

	reasoning := fmt.Sprintf(
		"%d %s averaging %.0f lbs need %.0f lbs DM/day (%.2f AU). "+
			"%s pasture over %.1f acres offers %.0f lbs DM, %.0f lbs utilizable at %.0f%% utilization. "+
			"With %s %s growth (+%.0f%%), that supports %.1f days of grazing; rest the paddock at least %d days before regrazing.",
		herd.HeadCount, herdLabel(herd), averageWeight(herd, au),
		dailyDmRequired, au.TotalAnimalUnits,
		pastureLabel(pasture.Type), acres, totalAvailableDm, utilizableDm, utilizationRate*100,
		climateLabel(climate), season, growthRate*100, round1(recommendedDays), restDays,
	)

	return models.GrazingPlanResult{
		RecommendedDays: round1(recommendedDays),
		Reasoning:       reasoning,
		Metrics: models.GrazingPlanMetrics{
			DailyDmRequiredLbs:  round2(dailyDmRequired),
			UtilizableDmLbs:     round2(utilizableDm),
			UtilizationRate:     utilizationRate,
			RestPeriodDays:      restDays,
			SeasonalGrowthRate:  growthRate,
			TotalAvailableDmLbs: round2(totalAvailableDm),
		},
	}
}

// averageWeight reports the caller-supplied weight, or estimates one from the
// AU sizing when unset (1 AU = 1,000 lbs).
func averageWeight(herd models.HerdDescription, au models.AnimalUnitResult) float64 {
	if herd.AverageWeightLbs > 0 {
		return herd.AverageWeightLbs
	}
	return au.AnimalUnitsPerHead * 1000
}

func herdLabel(herd models.HerdDescription) string {
	if herd.Species == "" {
		return string(models.SpeciesCattle)
	}
	return string(herd.Species)
}

func pastureLabel(t models.PastureType) string {
	if t == "" {
		return "unclassified"
	}
	return string(t)
}

func climateLabel(c models.ClimateLabel) string {
	if _, ok := seasonalGrowthRates[c]; !ok {
		return string(models.ClimateTemperate)
	}
	return string(c)
}
