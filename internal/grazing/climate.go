package grazing

import (
	"strconv"
	"strings"
	"time"

	"github.com/rangeland-tools/grazeplan/internal/domain/models"
)

// seasonalGrowthRates is the expected fractional forage regrowth per grazing
// period, by climate and season. Standing forage regenerates while animals
// graze, so high-growth seasons extend how long a paddock safely carries a
// herd.
var seasonalGrowthRates = map[models.ClimateLabel]map[models.SeasonLabel]float64{
	models.ClimateTemperate: {
		models.SeasonSpring:     0.35,
		models.SeasonLateSpring: 0.30,
		models.SeasonSummer:     0.15,
		models.SeasonFall:       0.20,
		models.SeasonWinter:     0.05,
	},
	models.ClimateArid: {
		models.SeasonSpring:     0.20,
		models.SeasonLateSpring: 0.15,
		models.SeasonSummer:     0.05,
		models.SeasonFall:       0.10,
		models.SeasonWinter:     0.02,
	},
	models.ClimateHumid: {
		models.SeasonSpring:     0.40,
		models.SeasonLateSpring: 0.35,
		models.SeasonSummer:     0.25,
		models.SeasonFall:       0.20,
		models.SeasonWinter:     0.10,
	},
	models.ClimateSouthernPlains: {
		models.SeasonSpring:     0.30,
		models.SeasonLateSpring: 0.35,
		models.SeasonSummer:     0.20,
		models.SeasonFall:       0.15,
		models.SeasonWinter:     0.02,
	},
	models.ClimateSoutheasternOklahoma: {
		models.SeasonSpring:     0.35,
		models.SeasonLateSpring: 0.40,
		models.SeasonSummer:     0.20,
		models.SeasonFall:       0.18,
		models.SeasonWinter:     0.04,
	},
}

const defaultSeasonalGrowthRate = 0.15

// restPeriods is the minimum days a paddock must rest before regrazing, tuned
// to regional parasite-lifecycle pressure.
var restPeriods = map[models.ClimateLabel]int{
	models.ClimateTemperate:            28,
	models.ClimateArid:                 35,
	models.ClimateHumid:                30,
	models.ClimateSouthernPlains:       30,
	models.ClimateSoutheasternOklahoma: 32,
}

// knownClimateZips pins a handful of anchor zip codes before the prefix
// heuristics run.
var knownClimateZips = map[string]models.ClimateLabel{
	"73101": models.ClimateSouthernPlains,       // Oklahoma City
	"74501": models.ClimateSoutheasternOklahoma, // McAlester
	"74701": models.ClimateSoutheasternOklahoma, // Durant
	"85001": models.ClimateArid,                 // Phoenix
	"89101": models.ClimateArid,                 // Las Vegas
	"33101": models.ClimateHumid,                // Miami
	"70112": models.ClimateHumid,                // New Orleans
	"97201": models.ClimateTemperate,            // Portland
}

// ClimateFromRegion maps a free-text region name onto a climate bucket.
// Checks run in order from most to least specific, so "southeastern oklahoma"
// must match before the bare "oklahoma" check.
func ClimateFromRegion(text string) models.ClimateLabel {
	region := strings.ToLower(strings.TrimSpace(text))

	switch {
	case strings.Contains(region, "southeastern oklahoma") || strings.Contains(region, "southeast oklahoma"):
		return models.ClimateSoutheasternOklahoma
	case strings.Contains(region, "oklahoma") || strings.Contains(region, "southern plains"):
		return models.ClimateSouthernPlains
	case strings.Contains(region, "arizona") || strings.Contains(region, "nevada") || strings.Contains(region, "desert"):
		return models.ClimateArid
	case strings.Contains(region, "florida") || strings.Contains(region, "louisiana") || strings.Contains(region, "humid"):
		return models.ClimateHumid
	default:
		return models.ClimateTemperate
	}
}

// ClimateFromZip maps a 5-digit zip code onto a climate bucket: anchor table
// first, then the Oklahoma prefix rule, then a first-digit heuristic. This is
// a reproducible fallback, not authoritative geodata.
func ClimateFromZip(zip string) models.ClimateLabel {
	zip = strings.TrimSpace(zip)
	if label, ok := knownClimateZips[zip]; ok {
		return label
	}

	zipNum, err := strconv.Atoi(zip)
	if err != nil || len(zip) != 5 {
		return models.ClimateTemperate
	}

	if strings.HasPrefix(zip, "73") || strings.HasPrefix(zip, "74") {
		if zipNum >= 74500 {
			return models.ClimateSoutheasternOklahoma
		}
		return models.ClimateSouthernPlains
	}

	switch zip[0] {
	case '8', '9':
		return models.ClimateArid
	case '3', '4':
		return models.ClimateHumid
	default:
		return models.ClimateTemperate
	}
}

// SeasonAt derives the forage-growth season for a calendar date. The back half
// of May reports as late spring, when warm-season grasses take over.
func SeasonAt(t time.Time) models.SeasonLabel {
	month := t.Month()
	switch {
	case month == time.March || month == time.April:
		return models.SeasonSpring
	case month == time.May:
		if t.Day() >= 15 {
			return models.SeasonLateSpring
		}
		return models.SeasonSpring
	case month >= time.June && month <= time.August:
		return models.SeasonSummer
	case month >= time.September && month <= time.November:
		return models.SeasonFall
	default:
		return models.SeasonWinter
	}
}

// CurrentSeason is SeasonAt against the wall clock.
func CurrentSeason() models.SeasonLabel {
	return SeasonAt(time.Now())
}

// SeasonalGrowthRate returns the regrowth rate for a climate/season pair.
// Unknown climates use the temperate table; unknown seasons use 0.15.
func SeasonalGrowthRate(climate models.ClimateLabel, season models.SeasonLabel) float64 {
	table, ok := seasonalGrowthRates[climate]
	if !ok {
		table = seasonalGrowthRates[models.ClimateTemperate]
	}
	if rate, ok := table[season]; ok {
		return rate
	}
	return defaultSeasonalGrowthRate
}

// RestPeriodDays returns the climate's minimum rest/parasite period.
func RestPeriodDays(climate models.ClimateLabel) int {
	if days, ok := restPeriods[climate]; ok {
		return days
	}
	return restPeriods[models.ClimateTemperate]
}
