package models

// ClimateLabel is one of the five climate buckets the planner understands.
// Each bucket carries its own seasonal growth-rate table and minimum
// parasite-rest period.
type ClimateLabel string

const (
	ClimateTemperate            ClimateLabel = "temperate"
	ClimateArid                 ClimateLabel = "arid"
	ClimateHumid                ClimateLabel = "humid"
	ClimateSouthernPlains       ClimateLabel = "southern_plains"
	ClimateSoutheasternOklahoma ClimateLabel = "southeastern_oklahoma"
)

// SeasonLabel is the forage-growth season. Late spring is split out because
// warm-season grasses in the target regions peak after mid May.
type SeasonLabel string

const (
	SeasonSpring     SeasonLabel = "spring"
	SeasonLateSpring SeasonLabel = "late_spring"
	SeasonSummer     SeasonLabel = "summer"
	SeasonFall       SeasonLabel = "fall"
	SeasonWinter     SeasonLabel = "winter"
)
