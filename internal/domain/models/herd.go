package models

// Species enumerates the domestic livestock kinds the calculator knows about.
// Unrecognized values are treated as cattle downstream.
type Species string

const (
	SpeciesCattle      Species = "cattle"
	SpeciesDairyCattle Species = "dairy_cattle"
	SpeciesHorses      Species = "horses"
	SpeciesSheep       Species = "sheep"
	SpeciesGoats       Species = "goats"
	SpeciesBison       Species = "bison"
	SpeciesLlamas      Species = "llamas"
	SpeciesAlpacas     Species = "alpacas"
)

// BreedingStatus enumerates the physiological states that adjust forage demand.
type BreedingStatus string

const (
	StatusLactating         BreedingStatus = "lactating"
	StatusPregnant          BreedingStatus = "pregnant"
	StatusPregnantLactating BreedingStatus = "pregnant_lactating"
	StatusGrowing           BreedingStatus = "growing"
	StatusMature            BreedingStatus = "mature"
	StatusBreedingMale      BreedingStatus = "breeding_male"
)

// HerdDescription is the caller-supplied picture of a group of animals.
// Everything beyond species and head count is optional; the calculator
// substitutes documented defaults rather than rejecting sparse input.
type HerdDescription struct {
	Species          Species        `bson:"species" json:"species"`
	HeadCount        int            `bson:"head_count" json:"head_count" binding:"required,gt=0"`
	AverageWeightLbs float64        `bson:"average_weight_lbs,omitempty" json:"average_weight_lbs,omitempty"`
	DryMatterIntake  float64        `bson:"dry_matter_intake_pct,omitempty" json:"dry_matter_intake_pct,omitempty"`
	Lactating        bool           `bson:"lactating,omitempty" json:"lactating,omitempty"`
	Breed            string         `bson:"breed,omitempty" json:"breed,omitempty"`
	AgeMonths        *int           `bson:"age_months,omitempty" json:"age_months,omitempty"`
	BreedingStatus   BreedingStatus `bson:"breeding_status,omitempty" json:"breeding_status,omitempty"`
}

// AnimalUnitResult is the standardized sizing of a herd. One animal unit is the
// forage demand of a 1,000 lb mature cow.
type AnimalUnitResult struct {
	TotalAnimalUnits       float64 `bson:"total_animal_units" json:"total_animal_units"`
	AnimalUnitsPerHead     float64 `bson:"animal_units_per_head" json:"animal_units_per_head"`
	ProjectedGrowthMonthly float64 `bson:"projected_growth_monthly" json:"projected_growth_monthly"`
	AgeFactor              float64 `bson:"age_factor" json:"age_factor"`
	BreedFactor            float64 `bson:"breed_factor" json:"breed_factor"`
	PhysiologicalFactor    float64 `bson:"physiological_factor" json:"physiological_factor"`
}
